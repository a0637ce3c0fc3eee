package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	httpadapter "github.com/couchcryptid/neo-impact-etl/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/neo-impact-etl/internal/adapter/kafka"
	"github.com/couchcryptid/neo-impact-etl/internal/adapter/nasa"
	"github.com/couchcryptid/neo-impact-etl/internal/adapter/usgs"
	"github.com/couchcryptid/neo-impact-etl/internal/config"
	"github.com/couchcryptid/neo-impact-etl/internal/export"
	"github.com/couchcryptid/neo-impact-etl/internal/observability"
	"github.com/couchcryptid/neo-impact-etl/internal/pipeline"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	neoCatalog := nasa.NewClient(cfg.NASABaseURL, cfg.NASAAPIKey, cfg.PageSize, cfg.RatePerMinute, cfg.APITimeout, metrics, logger)
	quakeCatalog := usgs.NewClient(cfg.USGSBaseURL, cfg.APITimeout, metrics, logger)

	p := pipeline.New(neoCatalog, quakeCatalog, logger, metrics, cfg.MaxPages)

	srv := httpadapter.NewServer(cfg.HTTPAddr, p, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Run the collection to completion. A fetch failure ends pagination but
	// leaves the records gathered so far, which still get reported and
	// exported below.
	results, runErr := p.CollectHazardous(ctx)
	if runErr != nil {
		logger.Error("collection stopped early", "error", runErr, "collected", len(results))
	}

	impacts := 0
	for _, rec := range results {
		if rec.PotentialImpact {
			impacts++
		}
	}
	logger.Info("hazardous objects collected",
		"records", len(results),
		"potential_impacts", impacts,
	)

	if cfg.CSVPath != "" {
		if err := export.WriteCSV(cfg.CSVPath, results, metrics, logger); err != nil {
			logger.Error("csv export failed", "error", err)
		}
	}
	if cfg.JSONPath != "" {
		if err := export.WriteJSON(cfg.JSONPath, results, metrics, logger); err != nil {
			logger.Error("json export failed", "error", err)
		}
	}

	if cfg.KafkaEnabled {
		writer := kafkaadapter.NewWriter(cfg, metrics, logger)
		if err := writer.PublishResults(ctx, results); err != nil {
			logger.Error("kafka publish failed", "error", err)
		}
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		os.Exit(1)
	}
}
