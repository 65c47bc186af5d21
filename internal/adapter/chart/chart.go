// Package chart renders the report visualizations with gonum/plot.
package chart

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/couchcryptid/hurricane-basin-report/internal/domain"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// Chart file names, without extension.
const (
	CategoryFrequencyChart = "category_frequency"
	WindByEraChart         = "wind_by_era"
	WindTrendChart         = "wind_trend"
)

// background is the light cyan figure face shared by every chart.
var background = color.RGBA{R: 0xe0, G: 0xff, B: 0xff, A: 0xff}

// Options configures the output of a Renderer.
type Options struct {
	Dir    string
	Format string  // png, svg, or pdf
	Width  float64 // inches
	Height float64 // inches
}

// Renderer writes chart files into a directory.
// It implements pipeline.Renderer.
type Renderer struct {
	opts   Options
	logger *slog.Logger
}

// NewRenderer creates a Renderer. Zero sizes default to 8x6 inches and an
// empty format to png.
func NewRenderer(opts Options, logger *slog.Logger) *Renderer {
	if opts.Width <= 0 {
		opts.Width = 8
	}
	if opts.Height <= 0 {
		opts.Height = 6
	}
	if opts.Format == "" {
		opts.Format = "png"
	}
	return &Renderer{opts: opts, logger: logger}
}

type chartBuilder struct {
	name  string
	build func() (*plot.Plot, error)
}

// Render draws the category frequency bar chart, the wind-by-era box plot,
// and the wind trend scatter plot. hurricanes holds the tropical-storm-free
// rows of both basins behind report.Trend.
func (r *Renderer) Render(ctx context.Context, report domain.Report, hurricanes []domain.Observation) ([]domain.Chart, error) {
	if err := os.MkdirAll(r.opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	builders := []chartBuilder{
		{CategoryFrequencyChart, func() (*plot.Plot, error) { return FrequencyBar(report.Frequencies()) }},
		{WindByEraChart, func() (*plot.Plot, error) { return WindBox(report.WindSummaries()) }},
		{WindTrendChart, func() (*plot.Plot, error) { return TrendScatter(hurricanes, report.Trend) }},
	}

	charts := make([]domain.Chart, 0, len(builders))
	for _, b := range builders {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		p, err := b.build()
		if err != nil {
			return nil, fmt.Errorf("build %s: %w", b.name, err)
		}
		path := filepath.Join(r.opts.Dir, b.name+"."+r.opts.Format)
		if err := p.Save(vg.Length(r.opts.Width)*vg.Inch, vg.Length(r.opts.Height)*vg.Inch, path); err != nil {
			return nil, fmt.Errorf("save %s: %w", path, err)
		}
		r.logger.Debug("chart rendered", "chart", b.name, "path", path)
		charts = append(charts, domain.Chart{Name: b.name, Title: p.Title.Text, Path: path})
	}
	return charts, nil
}

func newPlot(title, xLabel, yLabel string, titleSize vg.Length) *plot.Plot {
	p := plot.New()
	p.BackgroundColor = background
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = titleSize
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	return p
}
