package summary

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/couchcryptid/hurricane-basin-report/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReport(t *testing.T) domain.Report {
	t.Helper()
	report, err := domain.BuildReport(
		[]domain.Observation{
			{Basin: domain.BasinEast, Year: 1900, Wind: 80, Category: domain.CategoryH1},
			{Basin: domain.BasinEast, Year: 1920, Wind: 100, Category: domain.CategoryH2},
			{Basin: domain.BasinEast, Year: 1930, Wind: 60, Category: domain.CategoryTropicalStorm},
		},
		[]domain.Observation{
			{Basin: domain.BasinWest, Year: 1970, Wind: 85, Category: domain.CategoryH1},
		},
	)
	require.NoError(t, err)
	report.GeneratedAt = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	report.Charts = []domain.Chart{{Name: "wind_trend", Title: "Wind Speed of Caribbean Hurricanes", Path: "charts/wind_trend.png"}}
	return report
}

func TestWrite_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, testReport(t), "text"))
	out := buf.String()

	assert.Contains(t, out, "Eastern Caribbean")
	assert.Contains(t, out, "Western Caribbean")
	assert.Regexp(t, `H1\s+0\.500\s+1\.000`, out)
	assert.Regexp(t, `H2\s+0\.500\s+0\.000`, out)
	assert.Regexp(t, `1850-1949 \(E\)\s+2\s+90\.00\s+10\.00\s+80\.00`, out)
	assert.Regexp(t, `1850-1949 \(W\)\s+0\s+-\s+-\s+-`, out, "empty eras print dashes")
	assert.Contains(t, out, "n=3)")
	assert.Regexp(t, `Chart: Wind Speed of Caribbean Hurricanes\s+charts/wind_trend.png`, out)

	for _, line := range strings.Split(out, "\n") {
		assert.NotContains(t, line, "\t", "tabs are expanded")
	}
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, testReport(t), "json"))

	var got domain.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 3, got.Hurricanes)
	assert.Len(t, got.Basins, 2)
	assert.Len(t, got.Charts, 1)
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, domain.Report{}, "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "yaml")
}
