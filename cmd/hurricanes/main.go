package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/hurricane-basin-report/internal/adapter/chart"
	httpadapter "github.com/couchcryptid/hurricane-basin-report/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/hurricane-basin-report/internal/adapter/kafka"
	"github.com/couchcryptid/hurricane-basin-report/internal/adapter/xlsx"
	"github.com/couchcryptid/hurricane-basin-report/internal/config"
	"github.com/couchcryptid/hurricane-basin-report/internal/observability"
	"github.com/couchcryptid/hurricane-basin-report/internal/pipeline"
	"github.com/couchcryptid/hurricane-basin-report/internal/summary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)

	if err := run(cfg, logger); err != nil {
		logger.Error("hurricane report failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	metrics := observability.NewMetrics()

	reader := xlsx.NewReader(cfg.SheetName, logger)
	renderer := chart.NewRenderer(chart.Options{
		Dir:    cfg.OutputDir,
		Format: cfg.ChartFormat,
		Width:  cfg.ChartWidth,
		Height: cfg.ChartHeight,
	}, logger)

	// Report publication is feature-flagged via KAFKA_ENABLED / KAFKA_BROKERS.
	var publisher pipeline.Publisher
	if cfg.KafkaEnabled {
		pub := kafkaadapter.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, logger)
		defer func() {
			if err := pub.Close(); err != nil {
				logger.Error("kafka publisher close error", "error", err)
			}
		}()
		publisher = pub
		logger.Info("kafka publication enabled", "topic", cfg.KafkaTopic)
	}

	p := pipeline.New(reader, renderer, publisher, pipeline.Sources{
		East: cfg.EasternDataPath,
		West: cfg.WesternDataPath,
	}, logger, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	report, err := p.Run(ctx)
	if err != nil {
		return err
	}
	if err := summary.Write(os.Stdout, report, cfg.ReportFormat); err != nil {
		return err
	}

	if cfg.PreviewAddr == "" {
		return nil
	}
	return preview(ctx, cfg, p, logger)
}

// preview serves the rendered charts until the process is interrupted.
func preview(ctx context.Context, cfg *config.Config, p *pipeline.Pipeline, logger *slog.Logger) error {
	srv := httpadapter.NewServer(cfg.PreviewAddr, cfg.OutputDir, p, p, logger)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		return err
	}
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
	return nil
}
