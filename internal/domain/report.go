package domain

import (
	"fmt"
	"slices"
	"time"
)

// BasinReport collects everything computed for one basin.
type BasinReport struct {
	Basin          Basin             `json:"basin"`
	Label          string            `json:"label"`
	Source         string            `json:"source,omitempty"`
	RowsLoaded     int               `json:"rows_loaded"`
	TropicalStorms int               `json:"tropical_storms_dropped"`
	Frequency      CategoryFrequency `json:"frequency"`
	Wind           []WindSummary     `json:"wind"`
}

// Chart describes one rendered visualization.
type Chart struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Path  string `json:"path"`
}

// Report is the full output of one analysis run.
type Report struct {
	GeneratedAt time.Time     `json:"generated_at"`
	Basins      []BasinReport `json:"basins"`
	Hurricanes  int           `json:"hurricanes"`
	Trend       Trend         `json:"trend"`
	Charts      []Chart       `json:"charts,omitempty"`
}

// WindSummaries returns every basin's wind summaries in basin, then era order.
func (r Report) WindSummaries() []WindSummary {
	var out []WindSummary
	for _, b := range r.Basins {
		out = append(out, b.Wind...)
	}
	return out
}

// Frequencies returns every basin's category frequencies in basin order.
func (r Report) Frequencies() []CategoryFrequency {
	out := make([]CategoryFrequency, 0, len(r.Basins))
	for _, b := range r.Basins {
		out = append(out, b.Frequency)
	}
	return out
}

// BuildReport computes category frequencies and wind summaries for each basin
// and a wind-on-year trend across both. Frequencies and the trend use only
// hurricane rows; wind summaries use every row above HurricaneWindThreshold.
func BuildReport(east, west []Observation) (Report, error) {
	report := Report{GeneratedAt: clock.Now().UTC()}

	for _, in := range []struct {
		basin Basin
		obs   []Observation
	}{
		{BasinEast, east},
		{BasinWest, west},
	} {
		hurricanes := DropTropicalStorms(in.obs)
		report.Basins = append(report.Basins, BasinReport{
			Basin:          in.basin,
			Label:          in.basin.Label(),
			RowsLoaded:     len(in.obs),
			TropicalStorms: len(in.obs) - len(hurricanes),
			Frequency:      Frequencies(in.basin, hurricanes),
			Wind:           SummarizeWind(in.basin, in.obs),
		})
	}

	all := DropTropicalStorms(slices.Concat(east, west))
	report.Hurricanes = len(all)

	trend, err := FitTrend(all)
	if err != nil {
		return Report{}, fmt.Errorf("fit wind trend: %w", err)
	}
	report.Trend = trend

	return report, nil
}
