package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/adapters/event"
	"github.com/khoahotran/portfolio-api/adapters/media_storage"
	"github.com/khoahotran/portfolio-api/adapters/persistence"
	"github.com/khoahotran/portfolio-api/internal/application/portfolio"
	"github.com/khoahotran/portfolio-api/internal/application/usecase/snapshot"
	"github.com/khoahotran/portfolio-api/internal/config"
	"github.com/khoahotran/portfolio-api/pkg/logger"
	"github.com/khoahotran/portfolio-api/pkg/tracing"
)

const consumerGroup = "portfolio-snapshot-group"

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()
	appLogger.Info("Starting Portfolio Snapshot Worker...")

	if cfg.DB.Driver != config.DriverPostgres {
		appLogger.Fatal("Snapshot worker requires the postgres driver", nil, zap.String("db_driver", cfg.DB.Driver))
	}
	if len(cfg.Kafka.Brokers) == 0 {
		appLogger.Fatal("Snapshot worker requires kafka brokers", nil)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tp, err := tracing.NewTracerProvider(ctx, cfg, appLogger, "portfolio-worker")
	if err != nil {
		appLogger.Fatal("Cannot initialize tracer", err)
	}
	if tp != nil {
		defer func() { _ = tp.Shutdown(context.Background()) }()
	}

	// Database
	dbPool, err := persistence.NewPostgresPool(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot connect Postgres", err)
	}
	defer dbPool.Close()

	// Cloudinary Uploader
	uploader, err := media_storage.NewCloudinaryAdapter(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize uploader", err)
	}

	// Snapshot reads through the same use cases the API serves. It never writes,
	// so no events are published.
	useCases := portfolio.NewUseCases(portfolio.PostgresStores(dbPool, appLogger), nil, appLogger)
	snapshotUC := snapshot.NewSnapshotUseCase(useCases.SnapshotSources(), uploader, appLogger)

	// Kafka Consumer
	consumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicContentEvents,
		GroupID:  consumerGroup,
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer consumer.Close()

	appLogger.Info("Worker listening", zap.String("topic", event.TopicContentEvents), zap.String("group", consumerGroup))

	for {
		msg, err := consumer.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				appLogger.Info("Worker stopped")
				return
			}
			appLogger.Error("Failed to read message from Kafka", err)
			continue
		}

		ev, err := event.DecodeContentEvent(msg)
		if err != nil {
			appLogger.Warn("Skipping malformed content event", zap.Error(err), zap.Int64("offset", msg.Offset))
			commitMessage(consumer, msg, appLogger)
			continue
		}

		evLog := appLogger.With(
			zap.String("collection", ev.Collection),
			zap.String("action", string(ev.Action)),
			zap.String("id", ev.ID.String()),
		)
		url, err := snapshotUC.Execute(ctx)
		if err != nil {
			evLog.Error("Failed to publish snapshot", err)
			continue
		}
		evLog.Info("Snapshot published", zap.String("url", url))

		commitMessage(consumer, msg, appLogger)
	}
}

func commitMessage(consumer *kafka.Reader, msg kafka.Message, log logger.Logger) {
	if err := consumer.CommitMessages(context.Background(), msg); err != nil {
		log.Error("Failed to commit message", err, zap.Int64("offset", msg.Offset))
	}
}
