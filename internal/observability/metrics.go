package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for a report run.
type Metrics struct {
	RowsLoaded       *prometheus.CounterVec // labels: basin
	RowsDropped      *prometheus.CounterVec // labels: basin (tropical storms)
	ChartsRendered   prometheus.Counter
	ReportsPublished prometheus.Counter
	PublishErrors    prometheus.Counter
	ReportReady      prometheus.Gauge

	StageDuration *prometheus.HistogramVec // labels: stage={load,aggregate,render,publish}
}

// NewMetrics creates and registers all report metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()

	prometheus.MustRegister(
		m.RowsLoaded,
		m.RowsDropped,
		m.ChartsRendered,
		m.ReportsPublished,
		m.PublishErrors,
		m.ReportReady,
		m.StageDuration,
	)

	return m
}

// NewMetricsForTesting creates unregistered Metrics to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		RowsLoaded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hurricane_report",
			Name:      "rows_loaded_total",
			Help:      "Spreadsheet rows read, by basin.",
		}, []string{"basin"}),
		RowsDropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hurricane_report",
			Name:      "tropical_storms_dropped_total",
			Help:      "Tropical storm rows excluded from the hurricane analysis, by basin.",
		}, []string{"basin"}),
		ChartsRendered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hurricane_report",
			Name:      "charts_rendered_total",
			Help:      "Chart files written to the output directory.",
		}),
		ReportsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hurricane_report",
			Name:      "reports_published_total",
			Help:      "Reports published to the Kafka topic.",
		}),
		PublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hurricane_report",
			Name:      "publish_errors_total",
			Help:      "Failed report publications.",
		}),
		ReportReady: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "hurricane_report",
			Name:      "report_ready",
			Help:      "1 once a report has been rendered, 0 before.",
		}),
		StageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "hurricane_report",
			Name:      "stage_duration_seconds",
			Help:      "Duration of each pipeline stage.",
			Buckets:   []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5},
		}, []string{"stage"}),
	}
}
