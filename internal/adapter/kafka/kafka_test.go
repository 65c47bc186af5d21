package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/couchcryptid/hurricane-basin-report/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReport() domain.Report {
	return domain.Report{
		GeneratedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		Basins: []domain.BasinReport{
			{Basin: domain.BasinEast, Label: "Eastern Caribbean", RowsLoaded: 6, TropicalStorms: 1},
			{Basin: domain.BasinWest, Label: "Western Caribbean", RowsLoaded: 4, TropicalStorms: 1},
		},
		Hurricanes: 8,
		Trend:      domain.Trend{Intercept: -100, Slope: 0.1, N: 8},
	}
}

func TestReportMessages(t *testing.T) {
	report := testReport()

	msgs, err := reportMessages(report)
	require.NoError(t, err)
	require.Len(t, msgs, 3)

	assert.Equal(t, []byte("east"), msgs[0].Key)
	assert.Equal(t, []byte("west"), msgs[1].Key)
	assert.Equal(t, []byte("summary"), msgs[2].Key)

	for i, kind := range []string{KindBasin, KindBasin, KindSummary} {
		require.Len(t, msgs[i].Headers, 2)
		assert.Equal(t, "report_kind", msgs[i].Headers[0].Key)
		assert.Equal(t, []byte(kind), msgs[i].Headers[0].Value)
		assert.Equal(t, "generated_at", msgs[i].Headers[1].Key)
		assert.Equal(t, []byte("2024-06-01T12:00:00Z"), msgs[i].Headers[1].Value)
	}

	var basin domain.BasinReport
	require.NoError(t, json.Unmarshal(msgs[0].Value, &basin))
	assert.Equal(t, 6, basin.RowsLoaded)
	assert.Contains(t, string(msgs[0].Value), `"tropical_storms_dropped":1`)

	var summary domain.Report
	require.NoError(t, json.Unmarshal(msgs[2].Value, &summary))
	assert.Equal(t, 8, summary.Hurricanes)
	assert.Len(t, summary.Basins, 2)
}

func TestReportMessages_NoBasins(t *testing.T) {
	msgs, err := reportMessages(domain.Report{})
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, []byte("summary"), msgs[0].Key)
}
