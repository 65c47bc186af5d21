package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/hurricane-basin-report/internal/domain"
	"github.com/couchcryptid/hurricane-basin-report/internal/observability"
)

// Loader reads the observations of one basin from a source file.
type Loader interface {
	Load(ctx context.Context, path string, basin domain.Basin) ([]domain.Observation, error)
}

// Renderer draws the report charts. hurricanes holds the tropical-storm-free
// rows of both basins.
type Renderer interface {
	Render(ctx context.Context, report domain.Report, hurricanes []domain.Observation) ([]domain.Chart, error)
}

// Publisher ships a finished report to an external sink.
type Publisher interface {
	Publish(ctx context.Context, report domain.Report) error
}

// Sources names the spreadsheet behind each basin.
type Sources struct {
	East string
	West string
}

// Pipeline runs the load-aggregate-render sequence once.
type Pipeline struct {
	loader    Loader
	renderer  Renderer
	publisher Publisher
	sources   Sources
	logger    *slog.Logger
	metrics   *observability.Metrics

	ready  atomic.Bool
	mu     sync.RWMutex
	report domain.Report
}

// New creates a Pipeline with the given stages and observability.
// A nil publisher disables publication.
func New(l Loader, r Renderer, pub Publisher, sources Sources, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		loader:    l,
		renderer:  r,
		publisher: pub,
		sources:   sources,
		logger:    logger,
		metrics:   metrics,
	}
}

// CheckReadiness returns nil once a report has been rendered,
// or an error describing why the service is not yet ready.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if !p.ready.Load() {
		return errors.New("report has not been rendered yet")
	}
	return nil
}

// Report returns the last rendered report and whether one exists.
func (p *Pipeline) Report() (domain.Report, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.report, p.ready.Load()
}

// Run loads both basins, builds and renders the report, and publishes it when
// a publisher is configured. Any stage error aborts the run.
func (p *Pipeline) Run(ctx context.Context) (domain.Report, error) {
	p.logger.Info("pipeline started", "eastern", p.sources.East, "western", p.sources.West)

	start := time.Now()
	east, err := p.load(ctx, domain.BasinEast, p.sources.East)
	if err != nil {
		return domain.Report{}, err
	}
	west, err := p.load(ctx, domain.BasinWest, p.sources.West)
	if err != nil {
		return domain.Report{}, err
	}
	p.observe("load", start)

	start = time.Now()
	report, err := domain.BuildReport(east, west)
	if err != nil {
		return domain.Report{}, fmt.Errorf("build report: %w", err)
	}
	report.Basins[0].Source = p.sources.East
	report.Basins[1].Source = p.sources.West
	hurricanes := hurricaneSet(east, west)
	p.observe("aggregate", start)

	start = time.Now()
	charts, err := p.renderer.Render(ctx, report, hurricanes)
	if err != nil {
		return domain.Report{}, fmt.Errorf("render charts: %w", err)
	}
	report.Charts = charts
	p.metrics.ChartsRendered.Add(float64(len(charts)))
	p.observe("render", start)

	if p.publisher != nil {
		start = time.Now()
		if err := p.publisher.Publish(ctx, report); err != nil {
			p.metrics.PublishErrors.Inc()
			return domain.Report{}, err
		}
		p.metrics.ReportsPublished.Inc()
		p.observe("publish", start)
	}

	p.mu.Lock()
	p.report = report
	p.mu.Unlock()
	p.ready.Store(true)
	p.metrics.ReportReady.Set(1)

	p.logger.Info("pipeline finished",
		"hurricanes", report.Hurricanes,
		"charts", len(charts),
		"trend_slope", report.Trend.Slope,
	)
	return report, nil
}

func (p *Pipeline) load(ctx context.Context, basin domain.Basin, path string) ([]domain.Observation, error) {
	obs, err := p.loader.Load(ctx, path, basin)
	if err != nil {
		return nil, fmt.Errorf("load %s basin: %w", basin, err)
	}

	storms := domain.CountTropicalStorms(obs)
	p.metrics.RowsLoaded.WithLabelValues(string(basin)).Add(float64(len(obs)))
	p.metrics.RowsDropped.WithLabelValues(string(basin)).Add(float64(storms))
	p.logger.Info("basin loaded", "basin", basin, "rows", len(obs), "tropical_storms", storms)
	return obs, nil
}

func (p *Pipeline) observe(stage string, start time.Time) {
	p.metrics.StageDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
}
