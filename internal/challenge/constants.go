package challenge

import "time"

// Cache sizing
const (
	// DefaultCacheCapacity bounds the ephemeral challenge cache. Oldest
	// entries are evicted once the capacity is exceeded.
	DefaultCacheCapacity = 100

	// DefaultRetention is how long an unsettled ephemeral challenge stays
	// resolvable. A bet placed after this window falls back to the default
	// correctness policy.
	DefaultRetention = 1 * time.Hour

	// DailyRetentionDays is how many UTC days of daily challenges stay
	// resolvable in the long-lived daily cache.
	DailyRetentionDays = 7
)

// Bonus multipliers by challenge kind
const (
	BonusMultiplierStandard = 2
	BonusMultiplierDaily    = 3
)

// dailyKeyLayout keys the daily cache by UTC calendar day.
const dailyKeyLayout = "2006-01-02"

// Log messages
const (
	LogMsgChallengeCached    = "Challenge cached"
	LogMsgDailyEntriesPruned = "Pruned expired daily challenge entries"
	LogMsgGeneratorFellBack  = "Challenge generator unavailable, falling back to persisted pool"
	LogMsgGeneratorTimedOut  = "Challenge generator timed out"
)

// Error message constants
const (
	ErrMsgShuffleFailed    = "failed to shuffle challenge options"
	ErrMsgPoolEmpty        = "persisted challenge pool is empty"
	ErrMsgNoDailyChallenge = "no daily challenge available"
)
