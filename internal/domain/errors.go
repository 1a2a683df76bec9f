package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Account errors
	ErrMsgAccountNotFound    = "wager account not found"
	ErrMsgInsufficientPoints = "insufficient points"

	// Challenge errors
	ErrMsgChallengeNotFound    = "challenge not found"
	ErrMsgGeneratorUnavailable = "challenge generator unavailable"

	// Bet validation errors
	ErrMsgInvalidBetAmount = "invalid bet amount"
	ErrMsgInvalidOption    = "chosen option must be 1 or 2"

	// Daily limit errors
	ErrMsgDailyAlreadyPlayed = "daily challenge already played today"

	// Zodiac errors
	ErrMsgInvalidZodiacSign = "unknown zodiac sign"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
	ErrMsgTxClosed      = "tx is closed"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Account errors
	ErrAccountNotFound    = errors.New(ErrMsgAccountNotFound)
	ErrInsufficientPoints = errors.New(ErrMsgInsufficientPoints)

	// Challenge errors
	ErrChallengeNotFound    = errors.New(ErrMsgChallengeNotFound)
	ErrGeneratorUnavailable = errors.New(ErrMsgGeneratorUnavailable)

	// Bet validation errors
	ErrInvalidBetAmount = errors.New(ErrMsgInvalidBetAmount)
	ErrInvalidOption    = errors.New(ErrMsgInvalidOption)

	// Daily limit errors
	ErrDailyAlreadyPlayed = errors.New(ErrMsgDailyAlreadyPlayed)

	// Zodiac errors
	ErrInvalidZodiacSign = errors.New(ErrMsgInvalidZodiacSign)

	// Database/System errors
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
)
