package main

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	httpadapter "github.com/planetmode/worldstate/internal/adapter/http"
	kafkaadapter "github.com/planetmode/worldstate/internal/adapter/kafka"
	"github.com/planetmode/worldstate/internal/adapter/openmeteo"
	"github.com/planetmode/worldstate/internal/adapter/usgs"
	"github.com/planetmode/worldstate/internal/broadcast"
	"github.com/planetmode/worldstate/internal/config"
	"github.com/planetmode/worldstate/internal/generator"
	"github.com/planetmode/worldstate/internal/observability"
)

func main() {
	// Local development convenience; absence of a .env file is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	quakes := usgs.NewClient(cfg.USGSBaseURL, cfg.APITimeout, logger, metrics)
	weather := openmeteo.NewClient(cfg.OpenMeteoBaseURL, cfg.APITimeout, logger, metrics)
	synth := generator.New(cfg.EnableCyberEvents, logger)
	if cfg.EnableCyberEvents {
		logger.Info("cyber events enabled")
	}

	opts := broadcast.Options{
		TickMin:       cfg.TickMin,
		TickMax:       cfg.TickMax,
		LiveDataRatio: cfg.LiveDataRatio,
		RNG:           rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}

	var exporter *kafkaadapter.Writer
	if cfg.KafkaExportEnabled() {
		exporter = kafkaadapter.NewWriter(cfg.KafkaBrokers, cfg.KafkaExportTopic, logger)
		opts.Exporter = exporter
		logger.Info("kafka export enabled", "topic", cfg.KafkaExportTopic, "brokers", cfg.KafkaBrokers)
	}

	hub := broadcast.NewHub(quakes, weather, synth, opts, logger, metrics)
	srv := httpadapter.NewServer(cfg.HTTPAddr, hub, quakes, weather, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	go hub.Run(ctx)

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if exporter != nil {
		if err := exporter.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
