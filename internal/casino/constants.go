package casino

// Account defaults
const (
	// DefaultStartingPoints seeds a lazily created wager account.
	DefaultStartingPoints = 100
)

// Bet bounds
const (
	MinPointsBet = 1
	MaxPointsBet = 1_000_000
)

// Projection limits
const (
	DefaultLeaderboardLimit = 10
	MaxLeaderboardLimit     = 100
	DefaultHistoryLimit     = 20
	MaxHistoryLimit         = 100
)

// FallbackExplanation stands in for the real explanation when a cached
// entry was evicted before settlement.
const FallbackExplanation = "This challenge expired before settlement, so the first option was treated as correct."

// Log messages
const (
	LogMsgPlaceBetCalled       = "PlaceBet called"
	LogMsgBetSettled           = "Bet settled"
	LogMsgAccountCreated       = "Wager account created"
	LogMsgCacheMissFallback    = "Challenge cache miss at settlement, applying default correctness policy"
	LogMsgChallengeIssued      = "Challenge issued"
	LogMsgDailyChallengeIssued = "Daily challenge issued"
	LogMsgDailyChallengeReused = "Daily challenge served from cache"
	LogMsgEventPublishFailed   = "Failed to publish event"
	LogMsgZodiacSignUpdated    = "Zodiac sign updated"
)

// Error context strings for wrapped errors
const (
	ErrContextFailedToLoadAccount    = "failed to load wager account"
	ErrContextFailedToCreateAccount  = "failed to create wager account"
	ErrContextFailedToBeginSettle    = "failed to begin settlement"
	ErrContextFailedToCommitSettle   = "failed to commit settlement"
	ErrContextFailedToUpdateAccount  = "failed to update wager account"
	ErrContextFailedToInsertRecord   = "failed to insert settlement record"
	ErrContextFailedToFetchPool      = "failed to fetch persisted challenge"
	ErrContextFailedToGenerate       = "failed to generate challenge"
	ErrContextFailedToCacheChallenge = "failed to cache challenge"
	ErrContextFailedToListAccounts   = "failed to list accounts"
	ErrContextFailedToListHistory    = "failed to list settlement history"
)
