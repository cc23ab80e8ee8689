package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/logging"
	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/server"
	"github.com/robfig/cron/v3"
)

func main() {
	cfg := config.Load()

	// Structured logging (JSON to stdout)
	stdout := logging.Setup(cfg.SlogLevel())

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Storage
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	store, db, err := database.Open(ctx, cfg)
	cancel()
	if err != nil {
		slog.Error("database connection failed", "driver", cfg.DBDriver, "error", err)
		os.Exit(1)
	}
	slog.Info("store ready", "driver", store.Driver)

	// SQL log handler (ERROR+ async batch) and retention cleanup
	var dbLogHandler *logging.DBHandler
	var cleanup *cron.Cron
	if db != nil {
		dbLogHandler = logging.NewDBHandler(db, 5*time.Second, slog.New(stdout))
		slog.SetDefault(slog.New(logging.NewMultiHandler(stdout, dbLogHandler)))

		cleanup, err = logging.StartCleanup(db, cfg.LogCleanupSchedule, cfg.LogRetention)
		if err != nil {
			slog.Error("log cleanup schedule rejected", "schedule", cfg.LogCleanupSchedule, "error", err)
			os.Exit(1)
		}
	}

	// Sentry error tracking
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      cfg.AppEnv,
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		}
	}

	app := server.New(cfg, store, server.Options{AccessLog: true})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	if cleanup != nil {
		<-cleanup.Stop().Done()
	}
	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}
	if dbLogHandler != nil {
		dbLogHandler.Stop()
	}
	sentry.Flush(2 * time.Second)

	if err := store.Close(context.Background()); err != nil {
		slog.Error("database close error", "error", err)
	}

	slog.Info("server stopped")
}
