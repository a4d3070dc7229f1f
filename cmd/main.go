package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	httpadapter "ad-pacer/internal/adapter/http"
	"ad-pacer/internal/adapter/platform"
	"ad-pacer/internal/adapter/postgres"
	"ad-pacer/internal/adapter/usecase"
	"ad-pacer/internal/config"
	"ad-pacer/internal/db"
)

// main is the entry point of the pacing engine. It loads configuration,
// optionally runs database migrations, initializes the database pool, the
// platform client and the engine workers, then starts the scheduler and the
// HTTP server. On receiving a termination signal it gracefully shuts down.
func main() {
	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	// Optionally run migrations if configured. We use the Psql sub-config.
	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("migrations applied successfully")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.SeedDemo {
		if err := db.Seed(ctx, pool); err != nil {
			logger.Error("seed demo data", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("demo data seeded")
	}

	store := postgres.NewPacingStore(pool)
	client := platform.NewClient(cfg.Platform.BaseURL, cfg.Platform.Token, cfg.Platform.Timeout)

	svc := usecase.NewService(store, client, client, client, usecase.Config{
		Thresholds:       cfg.Pacing.Thresholds(),
		Interval:         cfg.Sched.Interval,
		LeaseTTL:         cfg.Sched.LeaseTTL(),
		ZeroSpendAfter:   cfg.Pacing.ZeroSpendAfter,
		BreachCycles:     cfg.Pacing.BreachCycles,
		StaleAfterCycles: cfg.Pacing.StaleAfterCycles,
		ApprovalExpiry:   cfg.Pacing.ApprovalExpiry,
	}, logger)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		svc.RunNotifier(ctx)
	}()
	go func() {
		defer wg.Done()
		svc.RunCommitWorker(ctx)
	}()

	sched := usecase.NewScheduler(svc, client, cfg.Sched.Interval, cfg.Sched.Concurrency, logger)
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := sched.Run(ctx); err != nil && ctx.Err() == nil {
			logger.Error("scheduler error", slog.Any("error", err))
		}
	}()

	handler := httpadapter.NewHandler(svc, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
	wg.Wait()
}
