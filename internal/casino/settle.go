package casino

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/devpoints/codecasino/internal/challenge"
	"github.com/devpoints/codecasino/internal/domain"
	"github.com/devpoints/codecasino/internal/event"
	"github.com/devpoints/codecasino/internal/logger"
	"github.com/devpoints/codecasino/internal/metrics"
	"github.com/devpoints/codecasino/internal/repository"
	"github.com/devpoints/codecasino/internal/zodiac"
)

// resolution is the outcome of the correctness lookup for one wager.
type resolution struct {
	correctOption  int
	isDaily        bool
	explanation    string
	correctSnippet string
	buggySnippet   string
}

// PlaceBet settles a wager end to end: validate, resolve correctness, apply
// the economic effect, and persist the account update together with the
// settlement record. The read-modify-write is serialized per user; different
// users settle in parallel.
func (s *service) PlaceBet(ctx context.Context, userID string, challengeID int64, pointsBet, chosenOption int) (*domain.BetOutcome, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgPlaceBetCalled, "userID", userID, "challengeID", challengeID, "pointsBet", pointsBet, "chosenOption", chosenOption)

	if pointsBet < MinPointsBet || pointsBet > MaxPointsBet {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidBetAmount, pointsBet)
	}
	if chosenOption != domain.OptionOne && chosenOption != domain.OptionTwo {
		return nil, fmt.Errorf("%w: got %d", domain.ErrInvalidOption, chosenOption)
	}

	id, err := challenge.ParseID(challengeID)
	if err != nil {
		return nil, err
	}

	res, err := s.resolveCorrectness(ctx, id)
	if err != nil {
		return nil, err
	}

	lock := s.locks.GetLock(userID)
	lock.Lock()
	defer lock.Unlock()

	// Ensure the account exists before opening the commit transaction; the
	// per-user lock makes the check-then-create race free in process.
	if _, err := s.GetAccount(ctx, userID); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	outcome, record, err := s.settle(ctx, userID, id, pointsBet, chosenOption, res, now)
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, event.NewBetSettledEvent(domain.BetSettledPayload{
		UserID:          userID,
		ChallengeID:     id.Int64(),
		ChallengeSource: id.Source,
		PointsBet:       pointsBet,
		PointsDelta:     record.PointsDelta,
		IsCorrect:       outcome.IsCorrect,
		IsDaily:         res.isDaily,
		NewTotalPoints:  outcome.NewTotalPoints,
	}))

	log.Info(LogMsgBetSettled,
		"userID", userID,
		"challengeID", id.Int64(),
		"isCorrect", outcome.IsCorrect,
		"pointsDelta", record.PointsDelta,
		"newTotalPoints", outcome.NewTotalPoints,
	)

	return outcome, nil
}

// settle runs steps that touch durable state inside a single transaction so
// the account update and the settlement record land together or not at all.
func (s *service) settle(ctx context.Context, userID string, id challenge.ID, pointsBet, chosenOption int, res *resolution, now time.Time) (*domain.BetOutcome, *domain.SettlementRecord, error) {
	tx, err := s.repo.BeginSettle(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrContextFailedToBeginSettle, err)
	}
	defer repository.SafeRollback(ctx, tx)

	account, err := tx.GetAccountForUpdate(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrContextFailedToLoadAccount, err)
	}
	if account == nil {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, userID)
	}

	if pointsBet > account.TotalPoints {
		return nil, nil, fmt.Errorf("%w: balance %d, bet %d", domain.ErrInsufficientPoints, account.TotalPoints, pointsBet)
	}
	if res.isDaily && account.PlayedDailyOn(now) {
		return nil, nil, domain.ErrDailyAlreadyPlayed
	}

	outcome := applyOutcome(account, pointsBet, chosenOption, res)
	account.TotalGamesPlayed++
	if res.isDaily {
		account.LastDailyPlayedAt = &now
	}

	record := &domain.SettlementRecord{
		ID:              uuid.New().String(),
		UserID:          userID,
		ChallengeID:     id.Int64(),
		ChallengeSource: id.Source,
		PointsBet:       pointsBet,
		ChosenOption:    chosenOption,
		IsCorrect:       outcome.IsCorrect,
		PointsDelta:     outcome.PointsWon - outcome.PointsLost,
		LuckMultiplier:  outcome.LuckMultiplier,
		IsDaily:         res.isDaily,
		PlayedAt:        now,
	}

	if err := tx.UpdateAccount(ctx, account); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrContextFailedToUpdateAccount, err)
	}
	if err := tx.InsertSettlement(ctx, record); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrContextFailedToInsertRecord, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrContextFailedToCommitSettle, err)
	}

	return outcome, record, nil
}

// applyOutcome mutates the account per the wager result and builds the
// caller-facing outcome. A loss subtracts the exact bet; the balance is not
// clamped here because the funds check has already bounded the bet.
func applyOutcome(account *domain.WagerAccount, pointsBet, chosenOption int, res *resolution) *domain.BetOutcome {
	luck := zodiac.Multiplier(account.ZodiacSign)
	base := challenge.BonusMultiplierStandard
	if res.isDaily {
		base = challenge.BonusMultiplierDaily
	}

	isCorrect := chosenOption == res.correctOption
	outcome := &domain.BetOutcome{
		IsCorrect:      isCorrect,
		PointsBet:      pointsBet,
		LuckMultiplier: luck,
		Explanation:    res.explanation,
		CorrectSnippet: res.correctSnippet,
		BuggySnippet:   res.buggySnippet,
	}

	if isCorrect {
		outcome.PointsWon = int(math.Floor(float64(pointsBet) * float64(base) * luck))
		account.TotalPoints += outcome.PointsWon
		account.CurrentStreak++
		if account.CurrentStreak > account.LongestStreak {
			account.LongestStreak = account.CurrentStreak
		}
		account.TotalGamesWon++
	} else {
		outcome.PointsLost = pointsBet
		account.TotalPoints -= pointsBet
		outcome.StreakBroken = account.CurrentStreak > 0
		account.CurrentStreak = 0
	}

	outcome.NewTotalPoints = account.TotalPoints
	outcome.CurrentStreak = account.CurrentStreak
	return outcome
}

// resolveCorrectness branches by identity namespace. Cache-resident
// namespaces degrade to the default policy on a miss; persisted identities
// resolve against the pool, where option one is canonically correct.
func (s *service) resolveCorrectness(ctx context.Context, id challenge.ID) (*resolution, error) {
	if id.Source == domain.SourcePersisted {
		ch, err := s.pool.GetByID(ctx, id.Int64())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextFailedToFetchPool, err)
		}
		if ch == nil {
			return nil, fmt.Errorf("%w: %d", domain.ErrChallengeNotFound, id.Int64())
		}
		return &resolution{
			correctOption:  domain.OptionOne,
			explanation:    ch.Explanation,
			correctSnippet: ch.CorrectSnippet,
			buggySnippet:   ch.BuggySnippet,
		}, nil
	}

	if entry, ok := s.cache.Get(id); ok {
		metrics.CacheHits.Inc()
		return &resolution{
			correctOption:  entry.CorrectOption,
			isDaily:        entry.IsDaily,
			explanation:    entry.Challenge.Explanation,
			correctSnippet: entry.Challenge.CorrectSnippet,
			buggySnippet:   entry.Challenge.BuggySnippet,
		}, nil
	}

	// Entry evicted or never existed. The wager still settles: option one is
	// treated as correct under the default policy.
	metrics.CacheMisses.Inc()
	logger.FromContext(ctx).Warn(LogMsgCacheMissFallback, "challengeID", id.Int64(), "source", id.Source)
	return &resolution{
		correctOption: domain.OptionOne,
		isDaily:       id.IsDaily(),
		explanation:   FallbackExplanation,
	}, nil
}
