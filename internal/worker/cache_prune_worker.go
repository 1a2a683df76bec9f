// Package worker hosts background loops that keep process-wide state tidy.
package worker

import (
	"context"
	"sync"
	"time"

	"github.com/devpoints/codecasino/internal/challenge"
	"github.com/devpoints/codecasino/internal/event"
	"github.com/devpoints/codecasino/internal/logger"
	"github.com/devpoints/codecasino/internal/metrics"
)

// CachePruneWorker periodically drops expired daily entries from the
// challenge cache. The cache also prunes on insert; the worker covers days
// with no daily traffic.
type CachePruneWorker struct {
	cache    *challenge.Cache
	eventBus event.Bus
	interval time.Duration
	shutdown chan struct{}
	wg       sync.WaitGroup
	once     sync.Once
}

// NewCachePruneWorker creates a new CachePruneWorker
func NewCachePruneWorker(cache *challenge.Cache, eventBus event.Bus, interval time.Duration) *CachePruneWorker {
	if interval <= 0 {
		interval = DefaultPruneInterval
	}
	return &CachePruneWorker{
		cache:    cache,
		eventBus: eventBus,
		interval: interval,
		shutdown: make(chan struct{}),
	}
}

// Start launches the prune loop
func (w *CachePruneWorker) Start() {
	log := logger.FromContext(context.Background())
	log.Info(LogMsgCachePruneStarted, "interval", w.interval)

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				w.prune(context.Background())
			case <-w.shutdown:
				return
			}
		}
	}()
}

// prune runs one pass and reports the result
func (w *CachePruneWorker) prune(ctx context.Context) {
	log := logger.FromContext(ctx)

	pruned := w.cache.PruneDaily(time.Now())
	remaining := w.cache.DailyLen()
	metrics.DailyCacheEntries.Set(float64(remaining))

	log.Info(LogMsgCachePruneTick, "pruned", pruned, "remaining", remaining)

	if w.eventBus != nil {
		if err := w.eventBus.Publish(ctx, event.NewDailyCachePrunedEvent(pruned, remaining)); err != nil {
			log.Warn(LogMsgCachePruneEventFailed, "error", err)
		}
	}
}

// Shutdown stops the loop and waits for an in-flight pass to finish
func (w *CachePruneWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCachePruneShutdown)

	w.once.Do(func() { close(w.shutdown) })

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
