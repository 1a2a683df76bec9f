package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/devpoints/codecasino/internal/casino"
	"github.com/devpoints/codecasino/internal/challenge"
	"github.com/devpoints/codecasino/internal/config"
	"github.com/devpoints/codecasino/internal/database"
	"github.com/devpoints/codecasino/internal/database/postgres"
	"github.com/devpoints/codecasino/internal/event"
	"github.com/devpoints/codecasino/internal/metrics"
	"github.com/devpoints/codecasino/internal/server"
	"github.com/devpoints/codecasino/internal/worker"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)
	log := slog.Default()

	pool, err := database.NewPool(cfg.GetDBConnString(), 10, 5*time.Minute, 30*time.Minute)
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := database.ApplySchema(context.Background(), pool); err != nil {
		log.Error("Failed to apply database schema", "error", err)
		os.Exit(1)
	}

	// Repositories
	casinoRepo := postgres.NewCasinoRepository(pool)
	poolRepo := postgres.NewChallengePoolRepository(pool)

	// Event bus with metrics subscriber
	eventBus := event.NewMemoryBus()
	if err := metrics.NewEventMetricsCollector().Register(eventBus); err != nil {
		log.Error("Failed to register metrics collector", "error", err)
		os.Exit(1)
	}

	// Challenge cache and generator with persisted-pool fallback
	cache := challenge.NewCache(cfg.ChallengeCacheSize, challenge.DefaultRetention)
	generator := challenge.NewPoolFallback(challenge.NewStaticGenerator(), poolRepo, cfg.GeneratorTimeout)

	casinoService := casino.NewService(casinoRepo, poolRepo, cache, generator, eventBus)

	pruneWorker := worker.NewCachePruneWorker(cache, eventBus, worker.DefaultPruneInterval)
	pruneWorker.Start()

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, pool, casinoService)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		log.Info("Shutdown signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		log.Error("Server shutdown failed", "error", err)
	}
	if err := pruneWorker.Shutdown(ctx); err != nil {
		log.Error("Worker shutdown failed", "error", err)
	}

	log.Info("Shutdown complete")
}
