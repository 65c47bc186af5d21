package http

import (
	"context"
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"github.com/couchcryptid/hurricane-basin-report/internal/domain"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ReportSource returns the most recent report, if one has been built.
type ReportSource interface {
	Report() (domain.Report, bool)
}

// Server exposes the rendered charts alongside health, readiness, and metrics endpoints.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

var indexTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head><title>Caribbean Hurricanes</title></head>
<body style="background:#e0ffff;font-family:sans-serif">
<h1>Caribbean Hurricanes</h1>
<p>Generated {{.GeneratedAt.Format "2006-01-02 15:04:05 MST"}} from {{.Hurricanes}} hurricanes.</p>
{{range .Charts}}<h2>{{.Title}}</h2>
<img src="/charts/{{.File}}" alt="{{.Title}}">
{{end}}</body>
</html>
`))

type indexChart struct {
	Title string
	File  string
}

type indexPage struct {
	GeneratedAt time.Time
	Hurricanes  int
	Charts      []indexChart
}

// NewServer creates an HTTP server with /, /report, /charts/, /healthz,
// /readyz, and /metrics routes. chartsDir is served under /charts/.
func NewServer(addr, chartsDir string, ready sharedobs.ReadinessChecker, reports ReportSource, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: logger,
	}

	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(ready))
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.Handle("GET /charts/", http.StripPrefix("/charts/", http.FileServer(http.Dir(chartsDir))))
	mux.HandleFunc("GET /report", handleReport(reports))
	mux.HandleFunc("GET /{$}", s.handleIndex(reports))

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func handleReport(reports ReportSource) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		report, ok := reports.Report()
		if !ok {
			sharedobs.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "report not ready"})
			return
		}
		sharedobs.WriteJSON(w, http.StatusOK, report)
	}
}

func (s *Server) handleIndex(reports ReportSource) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		report, ok := reports.Report()
		if !ok {
			http.Error(w, "report not ready", http.StatusServiceUnavailable)
			return
		}

		page := indexPage{GeneratedAt: report.GeneratedAt, Hurricanes: report.Hurricanes}
		for _, c := range report.Charts {
			page.Charts = append(page.Charts, indexChart{Title: c.Title, File: filepath.Base(c.Path)})
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := indexTmpl.Execute(w, page); err != nil {
			s.logger.Error("render index", "error", err)
		}
	}
}
