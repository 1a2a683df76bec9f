package casino

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/devpoints/codecasino/internal/challenge"
	"github.com/devpoints/codecasino/internal/domain"
	"github.com/devpoints/codecasino/internal/event"
	"github.com/devpoints/codecasino/internal/zodiac"
)

func newTestCache() *challenge.Cache {
	return challenge.NewCache(challenge.DefaultCacheCapacity, challenge.DefaultRetention)
}

func testChallenge() *domain.Challenge {
	return &domain.Challenge{
		Title:          "Off-by-one in pagination",
		Description:    "One of these snippets drops the last page.",
		TechStack:      "go",
		Difficulty:     domain.DifficultyMedium,
		CorrectSnippet: "for i := 0; i < len(pages); i++ {",
		BuggySnippet:   "for i := 0; i < len(pages)-1; i++ {",
		Explanation:    "The loop bound excludes the final element.",
		Topic:          "loops",
	}
}

// expectSettleTx wires the usual happy-path transaction expectations.
func expectSettleTx(repo *MockRepository, tx *MockSettleTx, account *domain.WagerAccount) {
	repo.On("BeginSettle", mock.Anything).Return(tx, nil)
	tx.On("GetAccountForUpdate", mock.Anything, account.UserID).Return(account, nil)
	tx.On("UpdateAccount", mock.Anything, account).Return(nil)
	tx.On("InsertSettlement", mock.Anything, mock.Anything).Return(nil)
	tx.On("Commit", mock.Anything).Return(nil)
	tx.On("Rollback", mock.Anything).Return(errors.New(domain.ErrMsgTxClosed))
}

func TestPlaceBet_DailyWin_PayoutAndStreak(t *testing.T) {
	repo := new(MockRepository)
	tx := new(MockSettleTx)
	cache := newTestCache()
	s := NewService(repo, nil, cache, nil, event.NewMemoryBus())

	ctx := context.Background()
	dailyID := challenge.DailyID(time.Now())
	ch := testChallenge()
	ch.ID = dailyID.Int64()
	ch.Source = domain.SourceDaily
	entry, err := cache.Put(dailyID, ch)
	require.NoError(t, err)

	account := &domain.WagerAccount{UserID: "user1", ZodiacSign: zodiac.SignGemini, TotalPoints: 100}
	repo.On("GetAccount", mock.Anything, "user1").Return(account, nil)
	expectSettleTx(repo, tx, account)

	outcome, err := s.PlaceBet(ctx, "user1", dailyID.Int64(), 20, entry.CorrectOption)
	require.NoError(t, err)

	// floor(20 * 3 * 1.10) = 66
	assert.True(t, outcome.IsCorrect)
	assert.Equal(t, 66, outcome.PointsWon)
	assert.Equal(t, 0, outcome.PointsLost)
	assert.Equal(t, 166, outcome.NewTotalPoints)
	assert.Equal(t, 1, outcome.CurrentStreak)
	assert.False(t, outcome.StreakBroken)
	assert.InDelta(t, 1.10, outcome.LuckMultiplier, 0.001)
	assert.Equal(t, ch.Explanation, outcome.Explanation)

	assert.Equal(t, 166, account.TotalPoints)
	assert.Equal(t, 1, account.CurrentStreak)
	assert.Equal(t, 1, account.LongestStreak)
	assert.Equal(t, 1, account.TotalGamesPlayed)
	assert.Equal(t, 1, account.TotalGamesWon)
	require.NotNil(t, account.LastDailyPlayedAt)
	assert.True(t, account.PlayedDailyOn(time.Now()))

	repo.AssertExpectations(t)
	tx.AssertExpectations(t)
}

func TestPlaceBet_InsufficientPoints(t *testing.T) {
	repo := new(MockRepository)
	tx := new(MockSettleTx)
	cache := newTestCache()
	s := NewService(repo, nil, cache, nil, nil)

	ctx := context.Background()
	dailyID := challenge.DailyID(time.Now())
	ch := testChallenge()
	ch.ID = dailyID.Int64()
	_, err := cache.Put(dailyID, ch)
	require.NoError(t, err)

	account := &domain.WagerAccount{UserID: "user1", TotalPoints: 50}
	repo.On("GetAccount", mock.Anything, "user1").Return(account, nil)
	repo.On("BeginSettle", mock.Anything).Return(tx, nil)
	tx.On("GetAccountForUpdate", mock.Anything, "user1").Return(account, nil)
	tx.On("Rollback", mock.Anything).Return(nil)

	outcome, err := s.PlaceBet(ctx, "user1", dailyID.Int64(), 60, domain.OptionOne)
	assert.Nil(t, outcome)
	assert.ErrorIs(t, err, domain.ErrInsufficientPoints)

	// Rejection mutates nothing.
	assert.Equal(t, 50, account.TotalPoints)
	assert.Equal(t, 0, account.TotalGamesPlayed)
	tx.AssertNotCalled(t, "UpdateAccount", mock.Anything, mock.Anything)
	tx.AssertNotCalled(t, "InsertSettlement", mock.Anything, mock.Anything)
	tx.AssertNotCalled(t, "Commit", mock.Anything)
	tx.AssertCalled(t, "Rollback", mock.Anything)
}

func TestPlaceBet_InvalidInput(t *testing.T) {
	tests := []struct {
		name         string
		pointsBet    int
		chosenOption int
		wantErr      error
	}{
		{"zero bet", 0, domain.OptionOne, domain.ErrInvalidBetAmount},
		{"negative bet", -5, domain.OptionOne, domain.ErrInvalidBetAmount},
		{"bet above maximum", MaxPointsBet + 1, domain.OptionOne, domain.ErrInvalidBetAmount},
		{"option zero", 10, 0, domain.ErrInvalidOption},
		{"option three", 10, 3, domain.ErrInvalidOption},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			s := NewService(repo, nil, newTestCache(), nil, nil)

			outcome, err := s.PlaceBet(context.Background(), "user1", 150_000, tt.pointsBet, tt.chosenOption)
			assert.Nil(t, outcome)
			assert.ErrorIs(t, err, tt.wantErr)
			repo.AssertNotCalled(t, "BeginSettle", mock.Anything)
		})
	}
}

func TestPlaceBet_UnknownIdentity(t *testing.T) {
	s := NewService(new(MockRepository), nil, newTestCache(), nil, nil)

	outcome, err := s.PlaceBet(context.Background(), "user1", 0, 10, domain.OptionOne)
	assert.Nil(t, outcome)
	assert.ErrorIs(t, err, domain.ErrChallengeNotFound)
}

func TestPlaceBet_CacheMissFallback(t *testing.T) {
	// Ephemeral identity never cached: option one is treated as correct.
	const evictedID = int64(4_200_000)

	t.Run("option one wins", func(t *testing.T) {
		repo := new(MockRepository)
		tx := new(MockSettleTx)
		s := NewService(repo, nil, newTestCache(), nil, nil)

		account := &domain.WagerAccount{UserID: "user1", TotalPoints: 100}
		repo.On("GetAccount", mock.Anything, "user1").Return(account, nil)
		expectSettleTx(repo, tx, account)

		outcome, err := s.PlaceBet(context.Background(), "user1", evictedID, 10, domain.OptionOne)
		require.NoError(t, err)
		assert.True(t, outcome.IsCorrect)
		// floor(10 * 2 * 1.00) = 20, no zodiac sign set.
		assert.Equal(t, 20, outcome.PointsWon)
		assert.Equal(t, 120, outcome.NewTotalPoints)
		assert.Equal(t, FallbackExplanation, outcome.Explanation)
	})

	t.Run("option two loses", func(t *testing.T) {
		repo := new(MockRepository)
		tx := new(MockSettleTx)
		s := NewService(repo, nil, newTestCache(), nil, nil)

		account := &domain.WagerAccount{UserID: "user1", TotalPoints: 100}
		repo.On("GetAccount", mock.Anything, "user1").Return(account, nil)
		expectSettleTx(repo, tx, account)

		outcome, err := s.PlaceBet(context.Background(), "user1", evictedID, 10, domain.OptionTwo)
		require.NoError(t, err)
		assert.False(t, outcome.IsCorrect)
		assert.Equal(t, 10, outcome.PointsLost)
		assert.Equal(t, 90, outcome.NewTotalPoints)
	})
}

func TestPlaceBet_DailyLimit(t *testing.T) {
	dailyID := challenge.DailyID(time.Now())

	t.Run("second daily bet today is rejected", func(t *testing.T) {
		repo := new(MockRepository)
		tx := new(MockSettleTx)
		s := NewService(repo, nil, newTestCache(), nil, nil)

		today := time.Now().UTC()
		account := &domain.WagerAccount{UserID: "user1", TotalPoints: 100, LastDailyPlayedAt: &today}
		repo.On("GetAccount", mock.Anything, "user1").Return(account, nil)
		repo.On("BeginSettle", mock.Anything).Return(tx, nil)
		tx.On("GetAccountForUpdate", mock.Anything, "user1").Return(account, nil)
		tx.On("Rollback", mock.Anything).Return(nil)

		outcome, err := s.PlaceBet(context.Background(), "user1", dailyID.Int64(), 10, domain.OptionOne)
		assert.Nil(t, outcome)
		assert.ErrorIs(t, err, domain.ErrDailyAlreadyPlayed)
		tx.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("accepted again the next UTC day", func(t *testing.T) {
		repo := new(MockRepository)
		tx := new(MockSettleTx)
		s := NewService(repo, nil, newTestCache(), nil, nil)

		yesterday := time.Now().UTC().AddDate(0, 0, -1)
		account := &domain.WagerAccount{UserID: "user1", TotalPoints: 100, LastDailyPlayedAt: &yesterday}
		repo.On("GetAccount", mock.Anything, "user1").Return(account, nil)
		expectSettleTx(repo, tx, account)

		outcome, err := s.PlaceBet(context.Background(), "user1", dailyID.Int64(), 10, domain.OptionOne)
		require.NoError(t, err)
		assert.NotNil(t, outcome)
		assert.True(t, account.PlayedDailyOn(time.Now()))
	})
}

func TestPlaceBet_PersistedResolvesAgainstPool(t *testing.T) {
	t.Run("option one is canonical", func(t *testing.T) {
		repo := new(MockRepository)
		tx := new(MockSettleTx)
		pool := new(MockPool)
		s := NewService(repo, pool, newTestCache(), nil, nil)

		ch := testChallenge()
		ch.ID = 42
		ch.Source = domain.SourcePersisted
		pool.On("GetByID", mock.Anything, int64(42)).Return(ch, nil)

		account := &domain.WagerAccount{UserID: "user1", TotalPoints: 100}
		repo.On("GetAccount", mock.Anything, "user1").Return(account, nil)
		expectSettleTx(repo, tx, account)

		outcome, err := s.PlaceBet(context.Background(), "user1", 42, 10, domain.OptionOne)
		require.NoError(t, err)
		assert.True(t, outcome.IsCorrect)
		// floor(10 * 2 * 1.00) = 20, persisted challenges are never daily.
		assert.Equal(t, 20, outcome.PointsWon)
		assert.Equal(t, ch.Explanation, outcome.Explanation)
		assert.Equal(t, ch.CorrectSnippet, outcome.CorrectSnippet)
	})

	t.Run("unknown persisted id", func(t *testing.T) {
		repo := new(MockRepository)
		pool := new(MockPool)
		s := NewService(repo, pool, newTestCache(), nil, nil)

		pool.On("GetByID", mock.Anything, int64(99)).Return(nil, nil)

		outcome, err := s.PlaceBet(context.Background(), "user1", 99, 10, domain.OptionOne)
		assert.Nil(t, outcome)
		assert.ErrorIs(t, err, domain.ErrChallengeNotFound)
		repo.AssertNotCalled(t, "BeginSettle", mock.Anything)
	})
}

func TestPlaceBet_LossResetsStreak(t *testing.T) {
	repo := new(MockRepository)
	tx := new(MockSettleTx)
	s := NewService(repo, nil, newTestCache(), nil, nil)

	account := &domain.WagerAccount{UserID: "user1", TotalPoints: 100, CurrentStreak: 3, LongestStreak: 5}
	repo.On("GetAccount", mock.Anything, "user1").Return(account, nil)
	expectSettleTx(repo, tx, account)

	// Cache miss fallback: option two is the losing pick.
	outcome, err := s.PlaceBet(context.Background(), "user1", 4_200_000, 25, domain.OptionTwo)
	require.NoError(t, err)

	assert.False(t, outcome.IsCorrect)
	assert.True(t, outcome.StreakBroken)
	assert.Equal(t, 0, outcome.CurrentStreak)
	assert.Equal(t, 75, outcome.NewTotalPoints)
	assert.Equal(t, 0, account.CurrentStreak)
	assert.Equal(t, 5, account.LongestStreak)
	assert.GreaterOrEqual(t, account.LongestStreak, account.CurrentStreak)
}

func TestPlaceBet_CommitFailureIsFatal(t *testing.T) {
	repo := new(MockRepository)
	tx := new(MockSettleTx)
	s := NewService(repo, nil, newTestCache(), nil, nil)

	account := &domain.WagerAccount{UserID: "user1", TotalPoints: 100}
	repo.On("GetAccount", mock.Anything, "user1").Return(account, nil)
	repo.On("BeginSettle", mock.Anything).Return(tx, nil)
	tx.On("GetAccountForUpdate", mock.Anything, "user1").Return(account, nil)
	tx.On("UpdateAccount", mock.Anything, account).Return(nil)
	tx.On("InsertSettlement", mock.Anything, mock.Anything).Return(nil)
	tx.On("Commit", mock.Anything).Return(errors.New("connection reset"))
	tx.On("Rollback", mock.Anything).Return(nil)

	outcome, err := s.PlaceBet(context.Background(), "user1", 4_200_000, 10, domain.OptionOne)
	assert.Nil(t, outcome)
	assert.ErrorContains(t, err, ErrContextFailedToCommitSettle)
}

func TestNewChallenge_EphemeralIdentity(t *testing.T) {
	gen := new(MockGenerator)
	cache := newTestCache()
	s := NewService(new(MockRepository), nil, cache, gen, event.NewMemoryBus())

	gen.On("Generate", mock.Anything, "go", domain.DifficultyMedium).Return(testChallenge(), nil)

	view, err := s.NewChallenge(context.Background(), "go", domain.DifficultyMedium)
	require.NoError(t, err)

	id, err := challenge.ParseID(view.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SourceEphemeral, id.Source)
	assert.Equal(t, 2, view.BonusMultiplier)
	assert.False(t, view.IsDaily)
	assert.Equal(t, 1, cache.Len())

	// Exactly one of the presented options is the correct snippet.
	entry, ok := cache.Get(id)
	require.True(t, ok)
	correct := view.OptionA
	if entry.CorrectOption == domain.OptionTwo {
		correct = view.OptionB
	}
	assert.Equal(t, entry.Challenge.CorrectSnippet, correct)
}

func TestNewChallenge_PersistedKeepsCanonicalOrder(t *testing.T) {
	gen := new(MockGenerator)
	cache := newTestCache()
	s := NewService(new(MockRepository), nil, cache, gen, nil)

	ch := testChallenge()
	ch.ID = 42
	ch.Source = domain.SourcePersisted
	gen.On("Generate", mock.Anything, "go", domain.DifficultyMedium).Return(ch, nil)

	view, err := s.NewChallenge(context.Background(), "go", domain.DifficultyMedium)
	require.NoError(t, err)

	assert.Equal(t, int64(42), view.ID)
	assert.Equal(t, ch.CorrectSnippet, view.OptionA)
	assert.Equal(t, ch.BuggySnippet, view.OptionB)
	assert.Equal(t, 0, cache.Len())
}

func TestDailyChallenge_SharedAcrossCalls(t *testing.T) {
	gen := new(MockGenerator)
	s := NewService(new(MockRepository), nil, newTestCache(), gen, event.NewMemoryBus())

	gen.On("GenerateDaily", mock.Anything).Return(testChallenge(), nil).Once()

	first, err := s.DailyChallenge(context.Background())
	require.NoError(t, err)
	second, err := s.DailyChallenge(context.Background())
	require.NoError(t, err)

	assert.Equal(t, challenge.DailyID(time.Now()).Int64(), first.ID)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.OptionA, second.OptionA)
	assert.Equal(t, 3, first.BonusMultiplier)
	assert.True(t, first.IsDaily)
	gen.AssertExpectations(t)
}

func TestGetAccount_LazyCreate(t *testing.T) {
	repo := new(MockRepository)
	s := NewService(repo, nil, newTestCache(), nil, nil)

	repo.On("GetAccount", mock.Anything, "newcomer").Return(nil, nil)
	repo.On("CreateAccount", mock.Anything, mock.Anything).Return(nil)

	account, err := s.GetAccount(context.Background(), "newcomer")
	require.NoError(t, err)
	assert.Equal(t, "newcomer", account.UserID)
	assert.Equal(t, DefaultStartingPoints, account.TotalPoints)
	assert.Equal(t, 0, account.CurrentStreak)
	assert.Nil(t, account.LastDailyPlayedAt)
	repo.AssertCalled(t, "CreateAccount", mock.Anything, mock.Anything)
}

func TestSetZodiacSign(t *testing.T) {
	t.Run("unknown sign rejected", func(t *testing.T) {
		repo := new(MockRepository)
		s := NewService(repo, nil, newTestCache(), nil, nil)

		err := s.SetZodiacSign(context.Background(), "user1", "ophiuchus")
		assert.ErrorIs(t, err, domain.ErrInvalidZodiacSign)
		repo.AssertNotCalled(t, "SetZodiacSign", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("valid sign persisted", func(t *testing.T) {
		repo := new(MockRepository)
		s := NewService(repo, nil, newTestCache(), nil, nil)

		account := &domain.WagerAccount{UserID: "user1", TotalPoints: 100}
		repo.On("GetAccount", mock.Anything, "user1").Return(account, nil)
		repo.On("SetZodiacSign", mock.Anything, "user1", zodiac.SignLeo).Return(nil)

		err := s.SetZodiacSign(context.Background(), "user1", zodiac.SignLeo)
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestLeaderboard_RanksByPoints(t *testing.T) {
	repo := new(MockRepository)
	s := NewService(repo, nil, newTestCache(), nil, nil)

	repo.On("TopAccounts", mock.Anything, DefaultLeaderboardLimit).Return([]domain.WagerAccount{
		{UserID: "first", TotalPoints: 900, LongestStreak: 7},
		{UserID: "second", TotalPoints: 400, LongestStreak: 3},
	}, nil)

	entries, err := s.Leaderboard(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, "first", entries[0].UserID)
	assert.Equal(t, 2, entries[1].Rank)
	assert.Equal(t, 900, entries[0].TotalPoints)
}

func TestHistory_ClampsLimit(t *testing.T) {
	repo := new(MockRepository)
	s := NewService(repo, nil, newTestCache(), nil, nil)

	repo.On("ListSettlements", mock.Anything, "user1", MaxHistoryLimit).Return([]domain.SettlementRecord{}, nil)

	_, err := s.History(context.Background(), "user1", MaxHistoryLimit+500)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}
