package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delta = 1e-9

func TestFrequencies(t *testing.T) {
	f := Frequencies(BasinEast, DropTropicalStorms(eastFixture()))

	assert.Equal(t, BasinEast, f.Basin)
	assert.Equal(t, 5, f.Total)
	assert.Equal(t, [5]int{1, 2, 1, 1, 0}, f.Counts)

	want := [5]float64{0.2, 0.4, 0.2, 0.2, 0}
	for i := range want {
		assert.InDelta(t, want[i], f.Share[i], delta, "share of %s", HurricaneCategories[i])
	}
}

func TestFrequencies_UnknownMarkerCountsInDenominator(t *testing.T) {
	f := Frequencies(BasinWest, []Observation{
		obs(BasinWest, 1900, 80, CategoryH1),
		obs(BasinWest, 1900, 80, Category("sub")),
	})
	assert.Equal(t, 2, f.Total)
	assert.InDelta(t, 0.5, f.Share[0], delta)
}

func TestFrequencies_Empty(t *testing.T) {
	f := Frequencies(BasinWest, nil)
	assert.Zero(t, f.Total)
	assert.Equal(t, [5]float64{}, f.Share)
}

func TestSummarizeWind(t *testing.T) {
	got := SummarizeWind(BasinEast, eastFixture())
	require.Len(t, got, 2)

	pre := got[0]
	assert.Equal(t, EraPre1950, pre.Era)
	assert.Equal(t, 2, pre.Count)
	assert.InDelta(t, 90.0, pre.Mean, delta)
	assert.InDelta(t, 10.0, pre.StdDev, delta)
	assert.InDelta(t, 80.0, pre.Min, delta)
	assert.InDelta(t, 100.0, pre.Max, delta)
	assert.Equal(t, "1850-1949 (E)", pre.Label())

	modern := got[1]
	assert.Equal(t, EraModern, modern.Era)
	assert.Equal(t, 3, modern.Count)
	assert.InDelta(t, 120.0, modern.Mean, delta)
	assert.InDelta(t, math.Sqrt(800.0/3), modern.StdDev, delta)
	assert.Equal(t, []float64{100, 120, 140}, modern.Samples)
	assert.InDelta(t, 100.0, modern.Q1, delta)
	assert.InDelta(t, 120.0, modern.Median, delta)
	assert.InDelta(t, 140.0, modern.Q3, delta)
}

func TestSummarizeWind_ThresholdAppliesRegardlessOfCategory(t *testing.T) {
	got := SummarizeWind(BasinWest, []Observation{
		obs(BasinWest, 1940, 73, CategoryH1),
		obs(BasinWest, 1940, 80, CategoryTropicalStorm),
	})
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Count)
	assert.InDelta(t, 80.0, got[0].Mean, delta)
	assert.InDelta(t, 0.0, got[0].StdDev, delta)
}

func TestSummarizeWind_EmptyEra(t *testing.T) {
	got := SummarizeWind(BasinWest, []Observation{obs(BasinWest, 1990, 100, CategoryH2)})
	require.Len(t, got, 2)

	assert.Zero(t, got[0].Count)
	assert.Zero(t, got[0].Mean)
	assert.Zero(t, got[0].StdDev)
	assert.Nil(t, got[0].Samples)
	assert.Equal(t, 1, got[1].Count)
}

func TestFitTrend(t *testing.T) {
	trend, err := FitTrend([]Observation{
		obs(BasinEast, 2000, 80, CategoryH1),
		obs(BasinEast, 2001, 90, CategoryH1),
		obs(BasinWest, 2002, 100, CategoryH2),
	})
	require.NoError(t, err)

	assert.InDelta(t, 10.0, trend.Slope, 1e-6)
	assert.InDelta(t, -19920.0, trend.Intercept, 1e-4)
	assert.InDelta(t, 1.0, trend.RSquared, 1e-9)
	assert.Equal(t, 3, trend.N)
	assert.InDelta(t, 95.0, trend.At(2001.5), 1e-4)
}

func TestFitTrend_ConstantWind(t *testing.T) {
	trend, err := FitTrend([]Observation{
		obs(BasinEast, 1950, 100, CategoryH2),
		obs(BasinEast, 1960, 100, CategoryH2),
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, trend.Slope, 1e-9)
	assert.InDelta(t, 100.0, trend.At(1955), 1e-6)
	assert.False(t, math.IsNaN(trend.RSquared))
}

func TestFitTrend_InsufficientData(t *testing.T) {
	tests := []struct {
		name string
		obs  []Observation
	}{
		{"empty", nil},
		{"single row", []Observation{obs(BasinEast, 2000, 80, CategoryH1)}},
		{"single year", []Observation{
			obs(BasinEast, 2000, 80, CategoryH1),
			obs(BasinWest, 2000, 120, CategoryH3),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FitTrend(tt.obs)
			require.ErrorIs(t, err, ErrInsufficientData)
		})
	}
}
