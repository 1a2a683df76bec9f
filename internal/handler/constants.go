package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidLimit      = "Invalid limit parameter"

	// Challenge error messages
	ErrMsgInvalidChallengeID   = "Invalid challenge ID"
	ErrMsgNewChallengeFailed   = "Failed to generate challenge"
	ErrMsgDailyChallengeFailed = "Failed to fetch daily challenge"

	// Bet error messages
	ErrMsgPlaceBetFailed = "Failed to place bet"

	// Account error messages
	ErrMsgGetAccountFailed     = "Failed to fetch account"
	ErrMsgGetLeaderboardFailed = "Failed to retrieve leaderboard"
	ErrMsgGetHistoryFailed     = "Failed to retrieve bet history"
	ErrMsgSetZodiacFailed      = "Failed to update zodiac sign"
)

// Success messages for API responses
const (
	MsgZodiacUpdatedSuccess = "Zodiac sign updated successfully"
)
