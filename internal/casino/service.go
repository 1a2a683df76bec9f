// Package casino implements the bet settlement engine: it validates wagers
// against the ledger and the challenge cache, resolves correctness, applies
// the economic effect, and emits an immutable settlement record.
package casino

import (
	"context"
	"fmt"
	"time"

	"github.com/devpoints/codecasino/internal/challenge"
	"github.com/devpoints/codecasino/internal/concurrency"
	"github.com/devpoints/codecasino/internal/domain"
	"github.com/devpoints/codecasino/internal/event"
	"github.com/devpoints/codecasino/internal/logger"
	"github.com/devpoints/codecasino/internal/repository"
	"github.com/devpoints/codecasino/internal/zodiac"
)

// Service defines the interface for casino operations
type Service interface {
	PlaceBet(ctx context.Context, userID string, challengeID int64, pointsBet, chosenOption int) (*domain.BetOutcome, error)
	NewChallenge(ctx context.Context, techStack, difficulty string) (*domain.ChallengeView, error)
	DailyChallenge(ctx context.Context) (*domain.ChallengeView, error)
	GetAccount(ctx context.Context, userID string) (*domain.WagerAccount, error)
	SetZodiacSign(ctx context.Context, userID, sign string) error
	Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
	History(ctx context.Context, userID string, limit int) ([]domain.SettlementRecord, error)
}

type service struct {
	repo      repository.Casino
	pool      repository.ChallengePool
	cache     *challenge.Cache
	generator challenge.Generator
	eventBus  event.Bus
	locks     *concurrency.LockManager
	now       func() time.Time
}

// NewService creates a new casino service
func NewService(repo repository.Casino, pool repository.ChallengePool, cache *challenge.Cache, generator challenge.Generator, eventBus event.Bus) Service {
	return &service{
		repo:      repo,
		pool:      pool,
		cache:     cache,
		generator: generator,
		eventBus:  eventBus,
		locks:     concurrency.NewLockManager(),
		now:       time.Now,
	}
}

// NewChallenge generates a challenge, allocates its identity, and caches the
// answer key. Pool-sourced content keeps its persisted identity; generated
// content gets a fresh ephemeral one.
func (s *service) NewChallenge(ctx context.Context, techStack, difficulty string) (*domain.ChallengeView, error) {
	log := logger.FromContext(ctx)

	ch, err := s.generator.Generate(ctx, techStack, difficulty)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGenerate, err)
	}
	if ch == nil {
		return nil, domain.ErrGeneratorUnavailable
	}

	var view *domain.ChallengeView
	if ch.Source == domain.SourcePersisted {
		// Persisted identities resolve against the pool at settlement, where
		// option one is canonically correct, so the view must not shuffle.
		entry := &challenge.Entry{
			Challenge:     ch,
			CorrectOption: domain.OptionOne,
			IssuedAt:      s.now().UTC(),
		}
		view = entry.View()
	} else {
		id, err := challenge.NewEphemeralID()
		if err != nil {
			return nil, err
		}
		ch.ID = id.Int64()
		ch.Source = domain.SourceEphemeral

		entry, err := s.cache.Put(id, ch)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextFailedToCacheChallenge, err)
		}
		view = entry.View()
	}

	s.publishEvent(ctx, event.NewChallengeGeneratedEvent(ch.ID, ch.Source, ch.TechStack))
	log.Info(LogMsgChallengeIssued, "challengeID", ch.ID, "source", ch.Source, "techStack", ch.TechStack)

	return view, nil
}

// DailyChallenge returns today's shared challenge, generating and caching it
// on first request of the UTC day. All users see the same content and option
// order for a given day.
func (s *service) DailyChallenge(ctx context.Context) (*domain.ChallengeView, error) {
	log := logger.FromContext(ctx)
	id := challenge.DailyID(s.now())

	if entry, ok := s.cache.Get(id); ok {
		log.Debug(LogMsgDailyChallengeReused, "challengeID", id.Int64())
		return entry.View(), nil
	}

	// Serialize first-of-day generation so concurrent callers cannot race to
	// overwrite the day's answer key.
	lock := s.locks.GetLock(id.String())
	lock.Lock()
	defer lock.Unlock()

	if entry, ok := s.cache.Get(id); ok {
		return entry.View(), nil
	}

	ch, err := s.generator.GenerateDaily(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGenerate, err)
	}
	if ch == nil {
		return nil, domain.ErrGeneratorUnavailable
	}

	// The identity is deterministic for the day regardless of where the
	// content came from. Only the content degrades on fallback.
	ch.ID = id.Int64()
	ch.Source = domain.SourceDaily

	entry, err := s.cache.Put(id, ch)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCacheChallenge, err)
	}

	s.publishEvent(ctx, event.NewChallengeGeneratedEvent(ch.ID, ch.Source, ch.TechStack))
	log.Info(LogMsgDailyChallengeIssued, "challengeID", ch.ID)

	return entry.View(), nil
}

// GetAccount fetches a wager account, creating it with defaults on first
// access.
func (s *service) GetAccount(ctx context.Context, userID string) (*domain.WagerAccount, error) {
	account, err := s.repo.GetAccount(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToLoadAccount, err)
	}
	if account != nil {
		return account, nil
	}

	account = newDefaultAccount(userID)
	if err := s.repo.CreateAccount(ctx, account); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCreateAccount, err)
	}
	logger.FromContext(ctx).Info(LogMsgAccountCreated, "userID", userID)
	return account, nil
}

// SetZodiacSign records the sign used for the luck multiplier. The account is
// created lazily if needed.
func (s *service) SetZodiacSign(ctx context.Context, userID, sign string) error {
	if !zodiac.IsValid(sign) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidZodiacSign, sign)
	}

	if _, err := s.GetAccount(ctx, userID); err != nil {
		return err
	}
	if err := s.repo.SetZodiacSign(ctx, userID, sign); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToUpdateAccount, err)
	}

	logger.FromContext(ctx).Info(LogMsgZodiacSignUpdated, "userID", userID, "sign", sign)
	return nil
}

// Leaderboard returns accounts ranked by total points.
func (s *service) Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	limit = clampLimit(limit, DefaultLeaderboardLimit, MaxLeaderboardLimit)

	accounts, err := s.repo.TopAccounts(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToListAccounts, err)
	}

	entries := make([]domain.LeaderboardEntry, len(accounts))
	for i, acc := range accounts {
		entries[i] = domain.LeaderboardEntry{
			Rank:          i + 1,
			UserID:        acc.UserID,
			TotalPoints:   acc.TotalPoints,
			LongestStreak: acc.LongestStreak,
			TotalGamesWon: acc.TotalGamesWon,
		}
	}
	return entries, nil
}

// History returns a user's settlement records, newest first.
func (s *service) History(ctx context.Context, userID string, limit int) ([]domain.SettlementRecord, error) {
	limit = clampLimit(limit, DefaultHistoryLimit, MaxHistoryLimit)

	records, err := s.repo.ListSettlements(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToListHistory, err)
	}
	return records, nil
}

func (s *service) publishEvent(ctx context.Context, evt event.Event) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "type", evt.Type, "error", err)
	}
}

func newDefaultAccount(userID string) *domain.WagerAccount {
	return &domain.WagerAccount{
		UserID:      userID,
		TotalPoints: DefaultStartingPoints,
	}
}

func clampLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}
