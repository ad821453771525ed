package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"regie/internal/amqp"
	"regie/internal/config"
	gsheet "regie/internal/export/google"
	applog "regie/internal/log"
	"regie/internal/storage"
	"regie/internal/worker"
)

func main() {
	_ = godotenv.Load()

	logger := applog.New(slog.LevelInfo, "regie-worker")
	applog.SetDefault(logger)

	logger.Info("Starting regie-worker")

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	if cfg.AMQPURL == "" {
		logger.Error("AMQP_URL is required for the recap worker")
		os.Exit(1)
	}

	// The worker re-reads upserted records from the same database.
	repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
	if err != nil {
		logger.Error("Failed to initialize SQLite repository", "error", err, "path", cfg.SQLiteDBPath)
		os.Exit(1)
	}
	defer repo.Close()

	var recap *gsheet.Client
	if cfg.GoogleSpreadsheetID != "" {
		recap, err = gsheet.NewFromEnv(context.Background())
		if err != nil {
			logger.Error("Failed to initialize Google Sheets client", "error", err)
			os.Exit(1)
		}
		logger.Info("Google Sheets recap export enabled", "spreadsheet_id", cfg.GoogleSpreadsheetID)
	} else {
		logger.Info("Google Sheets disabled - no GOOGLE_SPREADSHEET_ID provided")
	}

	amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", "error", err)
		os.Exit(1)
	}
	defer amqpClient.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Typed nil must not leak into the interface field.
	recapWriter := worker.NewRecapWorker(repo, nil)
	if recap != nil {
		recapWriter = worker.NewRecapWorker(repo, recap)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return amqpClient.ConsumeLedgerUpserts(gctx, recapWriter.HandleUpsertMessage)
	})

	logger.Info("regie-worker started, consuming ledger upsert messages",
		"queue", cfg.AMQPQueue)

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Worker stopped with error", "error", err)
		os.Exit(1)
	}
	logger.Info("regie-worker stopped gracefully")
}
