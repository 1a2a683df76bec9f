package domain

import "time"

// WagerAccount is the durable per-user economic state. It is created lazily
// with default values on first access and mutated only by the settlement
// engine.
type WagerAccount struct {
	UserID            string     `json:"user_id"`
	ZodiacSign        string     `json:"zodiac_sign,omitempty"`
	TotalPoints       int        `json:"total_points"`
	CurrentStreak     int        `json:"current_streak"`
	LongestStreak     int        `json:"longest_streak"`
	TotalGamesPlayed  int        `json:"total_games_played"`
	TotalGamesWon     int        `json:"total_games_won"`
	LastDailyPlayedAt *time.Time `json:"last_daily_played_at,omitempty"`
}

// PlayedDailyOn reports whether the account already settled a daily-challenge
// bet on the given UTC calendar day.
func (a *WagerAccount) PlayedDailyOn(day time.Time) bool {
	if a.LastDailyPlayedAt == nil {
		return false
	}
	y1, m1, d1 := a.LastDailyPlayedAt.UTC().Date()
	y2, m2, d2 := day.UTC().Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// LeaderboardEntry is a ranked projection over wager accounts.
type LeaderboardEntry struct {
	Rank          int    `json:"rank"`
	UserID        string `json:"user_id"`
	TotalPoints   int    `json:"total_points"`
	LongestStreak int    `json:"longest_streak"`
	TotalGamesWon int    `json:"total_games_won"`
}
