package chart

import (
	"errors"
	"image/color"

	"github.com/couchcryptid/hurricane-basin-report/internal/domain"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var trendColor = color.RGBA{R: 0xff, A: 0xff}

// TrendScatter plots wind against year for every hurricane and overlays the
// fitted trend line across the observed year range.
func TrendScatter(hurricanes []domain.Observation, trend domain.Trend) (*plot.Plot, error) {
	if len(hurricanes) == 0 {
		return nil, errors.New("no hurricanes to plot")
	}

	p := newPlot("Wind Speed of Caribbean Hurricanes", "Year", "Wind Speed (MPH)", vg.Points(20))

	pts := make(plotter.XYs, len(hurricanes))
	minYear, maxYear := hurricanes[0].Year, hurricanes[0].Year
	for i, o := range hurricanes {
		pts[i].X = float64(o.Year)
		pts[i].Y = o.Wind
		minYear = min(minYear, o.Year)
		maxYear = max(maxYear, o.Year)
	}

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	scatter.GlyphStyle.Radius = vg.Points(2)

	line := plotter.NewFunction(trend.At)
	line.XMin = float64(minYear)
	line.XMax = float64(maxYear)
	line.Color = trendColor
	line.Width = vg.Points(2)

	p.Add(scatter, line)
	p.Legend.Add("observed", scatter)
	p.Legend.Add("OLS trend", line)
	p.Legend.Top = true
	return p, nil
}
