package chart

import (
	"errors"

	"github.com/couchcryptid/hurricane-basin-report/internal/domain"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// WindBox draws one box per non-empty basin/era wind summary.
func WindBox(summaries []domain.WindSummary) (*plot.Plot, error) {
	p := newPlot("Average Wind Speed", "", "Wind Speed (MPH)", vg.Points(20))
	w := vg.Points(30)

	var labels []string
	for i, s := range summaries {
		if s.Count == 0 {
			continue
		}
		box, err := plotter.NewBoxPlot(w, float64(len(labels)), plotter.Values(s.Samples))
		if err != nil {
			return nil, err
		}
		box.FillColor = plotutil.Color(i)
		p.Add(box)
		labels = append(labels, s.Label())
	}
	if len(labels) == 0 {
		return nil, errors.New("no wind samples above the hurricane threshold")
	}

	p.NominalX(labels...)
	return p, nil
}
