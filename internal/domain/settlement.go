package domain

import "time"

// SettlementRecord is the append-only audit entry for a settled wager.
// Write-once; never mutated after creation.
type SettlementRecord struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	ChallengeID     int64           `json:"challenge_id"`
	ChallengeSource ChallengeSource `json:"challenge_source"`
	PointsBet       int             `json:"points_bet"`
	ChosenOption    int             `json:"chosen_option"`
	IsCorrect       bool            `json:"is_correct"`
	PointsDelta     int             `json:"points_delta"`
	LuckMultiplier  float64         `json:"luck_multiplier"`
	IsDaily         bool            `json:"is_daily"`
	PlayedAt        time.Time       `json:"played_at"`
}

// BetOutcome is returned to the caller after a wager settles. It reveals the
// answer key and explanation for user feedback.
type BetOutcome struct {
	IsCorrect      bool    `json:"is_correct"`
	PointsBet      int     `json:"points_bet"`
	PointsWon      int     `json:"points_won"`
	PointsLost     int     `json:"points_lost"`
	NewTotalPoints int     `json:"new_total_points"`
	CurrentStreak  int     `json:"current_streak"`
	StreakBroken   bool    `json:"streak_broken"`
	LuckMultiplier float64 `json:"luck_multiplier"`
	Explanation    string  `json:"explanation"`
	CorrectSnippet string  `json:"correct_snippet"`
	BuggySnippet   string  `json:"buggy_snippet"`
}

// BetSettledPayload is the event payload for bet.settled events.
type BetSettledPayload struct {
	UserID          string          `json:"user_id"`
	ChallengeID     int64           `json:"challenge_id"`
	ChallengeSource ChallengeSource `json:"challenge_source"`
	PointsBet       int             `json:"points_bet"`
	PointsDelta     int             `json:"points_delta"`
	IsCorrect       bool            `json:"is_correct"`
	IsDaily         bool            `json:"is_daily"`
	NewTotalPoints  int             `json:"new_total_points"`
}
