package chart

import (
	"errors"

	"github.com/couchcryptid/hurricane-basin-report/internal/domain"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

const barWidth = 20 // points

// FrequencyBar draws a grouped bar chart of H1-H5 shares, one bar group per
// category and one bar per basin.
func FrequencyBar(freqs []domain.CategoryFrequency) (*plot.Plot, error) {
	if len(freqs) == 0 {
		return nil, errors.New("no category frequencies")
	}

	p := newPlot("Total Caribbean Hurricanes", "Category", "Probability", vg.Points(20))
	w := vg.Points(barWidth)

	for i, f := range freqs {
		share := f.Share
		bars, err := plotter.NewBarChart(plotter.Values(share[:]), w)
		if err != nil {
			return nil, err
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = plotutil.Color(i)
		// Center the group on the category tick.
		bars.Offset = w * vg.Length(2*i-len(freqs)+1) / 2
		p.Add(bars)
		p.Legend.Add(f.Basin.Label(), bars)
	}

	p.Legend.Top = true
	p.Y.Min = 0
	labels := make([]string, len(domain.HurricaneCategories))
	for i, c := range domain.HurricaneCategories {
		labels[i] = c.Label()
	}
	p.NominalX(labels...)
	return p, nil
}
