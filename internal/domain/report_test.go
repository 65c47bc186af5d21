package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReport(t *testing.T) {
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(now))
	t.Cleanup(func() { SetClock(nil) })

	report, err := BuildReport(eastFixture(), westFixture())
	require.NoError(t, err)

	assert.Equal(t, now, report.GeneratedAt)
	assert.Equal(t, 8, report.Hurricanes)
	assert.Equal(t, 8, report.Trend.N)
	require.Len(t, report.Basins, 2)

	east := report.Basins[0]
	assert.Equal(t, BasinEast, east.Basin)
	assert.Equal(t, "Eastern Caribbean", east.Label)
	assert.Equal(t, 6, east.RowsLoaded)
	assert.Equal(t, 1, east.TropicalStorms)
	assert.Equal(t, [5]int{1, 2, 1, 1, 0}, east.Frequency.Counts)

	west := report.Basins[1]
	assert.Equal(t, 4, west.RowsLoaded)
	assert.Equal(t, 1, west.TropicalStorms)
	assert.Equal(t, 3, west.Frequency.Total)
	assert.InDelta(t, 2.0/3, west.Frequency.Share[0], delta)
	assert.InDelta(t, 1.0/3, west.Frequency.Share[4], delta)

	require.Len(t, west.Wind, 2)
	assert.InDelta(t, 75.0, west.Wind[0].Mean, delta)
	assert.InDelta(t, 0.0, west.Wind[0].StdDev, delta)
	assert.InDelta(t, 125.0, west.Wind[1].Mean, delta)
	assert.InDelta(t, 40.0, west.Wind[1].StdDev, delta)

	summaries := report.WindSummaries()
	require.Len(t, summaries, 4)
	labels := make([]string, 0, len(summaries))
	for _, s := range summaries {
		labels = append(labels, s.Label())
	}
	assert.Equal(t, []string{"1850-1949 (E)", "1950-Present (E)", "1850-1949 (W)", "1950-Present (W)"}, labels)
	assert.Len(t, report.Frequencies(), 2)
}

func TestBuildReport_NoHurricanes(t *testing.T) {
	_, err := BuildReport(
		[]Observation{obs(BasinEast, 1900, 50, CategoryTropicalStorm)},
		[]Observation{obs(BasinWest, 1901, 50, CategoryTropicalStorm)},
	)
	require.ErrorIs(t, err, ErrInsufficientData)
	assert.Contains(t, err.Error(), "fit wind trend")
}

func TestReport_JSON(t *testing.T) {
	report, err := BuildReport(eastFixture(), westFixture())
	require.NoError(t, err)

	data, err := json.Marshal(report)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"tropical_storms_dropped":1`)
	assert.NotContains(t, string(data), "Samples")
}
