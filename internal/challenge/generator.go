package challenge

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/devpoints/codecasino/internal/domain"
	"github.com/devpoints/codecasino/internal/logger"
	"github.com/devpoints/codecasino/internal/metrics"
	"github.com/devpoints/codecasino/internal/repository"
)

// Generator produces challenge content. Implementations may be AI-backed or
// static; the engine treats the capability as opaque. Both methods may return
// (nil, nil) to signal "no result", which callers must handle.
type Generator interface {
	Generate(ctx context.Context, techStack, difficulty string) (*domain.Challenge, error)
	GenerateDaily(ctx context.Context) (*domain.Challenge, error)
}

// PoolFallback decorates a Generator so that generation failure degrades to
// the persisted pool instead of propagating. A user must always be able to
// receive some challenge.
type PoolFallback struct {
	inner   Generator
	pool    repository.ChallengePool
	timeout time.Duration
}

// NewPoolFallback wraps gen with persisted-pool fallback. timeout bounds each
// inner generator call; zero disables the bound.
func NewPoolFallback(gen Generator, pool repository.ChallengePool, timeout time.Duration) *PoolFallback {
	return &PoolFallback{inner: gen, pool: pool, timeout: timeout}
}

// Generate returns a generated challenge, or a random persisted one when the
// inner generator fails, times out, or returns nothing.
func (f *PoolFallback) Generate(ctx context.Context, techStack, difficulty string) (*domain.Challenge, error) {
	ch, err := f.callInner(ctx, func(ctx context.Context) (*domain.Challenge, error) {
		return f.inner.Generate(ctx, techStack, difficulty)
	})
	if err == nil && ch != nil {
		return ch, nil
	}
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgGeneratorFellBack, "error", err, "tech_stack", techStack)
	}
	return f.fromPool(ctx)
}

// GenerateDaily returns today's generated challenge, or a persisted one when
// the generator is unavailable. The identity stays deterministic either way;
// only the content degrades.
func (f *PoolFallback) GenerateDaily(ctx context.Context) (*domain.Challenge, error) {
	ch, err := f.callInner(ctx, f.inner.GenerateDaily)
	if err == nil && ch != nil {
		return ch, nil
	}
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgGeneratorFellBack, "error", err)
	}
	return f.fromPool(ctx)
}

func (f *PoolFallback) callInner(ctx context.Context, call func(context.Context) (*domain.Challenge, error)) (*domain.Challenge, error) {
	if f.inner == nil {
		return nil, domain.ErrGeneratorUnavailable
	}
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}
	ch, err := call(ctx)
	if errors.Is(err, context.DeadlineExceeded) {
		logger.FromContext(ctx).Warn(LogMsgGeneratorTimedOut, "timeout", f.timeout)
		return nil, fmt.Errorf("%w: %s", domain.ErrGeneratorUnavailable, "timed out")
	}
	return ch, err
}

func (f *PoolFallback) fromPool(ctx context.Context) (*domain.Challenge, error) {
	metrics.GeneratorFallbacks.Inc()
	ch, err := f.pool.GetRandom(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgPoolEmpty, err)
	}
	if ch == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrGeneratorUnavailable, ErrMsgPoolEmpty)
	}
	return ch, nil
}
