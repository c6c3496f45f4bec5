package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/couchcryptid/solar-wind-monitor/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/solar-wind-monitor/internal/adapter/kafka"
	"github.com/couchcryptid/solar-wind-monitor/internal/adapter/swpc"
	"github.com/couchcryptid/solar-wind-monitor/internal/config"
	"github.com/couchcryptid/solar-wind-monitor/internal/observability"
	"github.com/couchcryptid/solar-wind-monitor/internal/pipeline"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	metrics := observability.NewMetrics()

	fetcher := swpc.NewClient(cfg.FeedURL, cfg.FeedTimeout, metrics, logger)

	// Alerts go to Kafka when brokers are configured, otherwise to the log.
	var notifier pipeline.Notifier
	var writer *kafkaadapter.Writer
	if cfg.KafkaEnabled() {
		writer = kafkaadapter.NewWriter(cfg, logger)
		notifier = writer
		logger.Info("kafka alerting enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaAlertTopic)
	} else {
		notifier = pipeline.NewLogNotifier(logger)
		logger.Info("kafka alerting disabled, alerts go to log")
	}

	p := pipeline.New(fetcher, notifier, logger, metrics)

	srv := httpadapter.NewServer(cfg.HTTPAddr, p, p, cfg.StatusRateLimit, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	logger.Info("solar wind monitor started", "feed_url", cfg.FeedURL, "feed_timeout", cfg.FeedTimeout)

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}

// newLogger builds the process logger from LOG_LEVEL and LOG_FORMAT and
// installs it as the slog default.
func newLogger(cfg *config.Config) *slog.Logger {
	return sharedobs.NewLogger(cfg.LogLevel, cfg.LogFormat)
}
