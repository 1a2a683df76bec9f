package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/devpoints/codecasino/internal/domain"
	"github.com/devpoints/codecasino/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Encode to a pooled buffer first so a marshal failure never produces a
	// half-written body.
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped
// user-facing error response.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	logger.FromContext(r.Context()).Error(opName+" failed", "error", err)
	statusCode, userMsg := mapServiceErrorToUserMessage(err)
	respondError(w, statusCode, userMsg)
}

// User-facing error messages for service errors
const (
	// Generic messages
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgAuthFailedError     = "Authentication failed. Please check your API key."

	// Wager messages
	ErrMsgInsufficientPointsError = "Not enough points for that bet"
	ErrMsgInvalidBetAmountError   = "Bet amount must be a positive number of points"
	ErrMsgInvalidOptionError      = "Pick option 1 or option 2"
	ErrMsgDailyAlreadyPlayedError = "You already played today's daily challenge. Come back tomorrow!"

	// Challenge messages
	ErrMsgChallengeNotFoundError    = "Challenge not found"
	ErrMsgGeneratorUnavailableError = "No challenges available right now. Please try again later."

	// Account messages
	ErrMsgAccountNotFoundError   = "Account not found"
	ErrMsgInvalidZodiacSignError = "Unknown zodiac sign"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInsufficientPoints):
		return http.StatusBadRequest, ErrMsgInsufficientPointsError
	case errors.Is(err, domain.ErrInvalidBetAmount):
		return http.StatusBadRequest, ErrMsgInvalidBetAmountError
	case errors.Is(err, domain.ErrInvalidOption):
		return http.StatusBadRequest, ErrMsgInvalidOptionError
	case errors.Is(err, domain.ErrInvalidZodiacSign):
		return http.StatusBadRequest, ErrMsgInvalidZodiacSignError
	case errors.Is(err, domain.ErrDailyAlreadyPlayed):
		return http.StatusConflict, ErrMsgDailyAlreadyPlayedError
	case errors.Is(err, domain.ErrChallengeNotFound):
		return http.StatusNotFound, ErrMsgChallengeNotFoundError
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound, ErrMsgAccountNotFoundError
	case errors.Is(err, domain.ErrGeneratorUnavailable):
		return http.StatusServiceUnavailable, ErrMsgGeneratorUnavailableError
	case errors.Is(err, domain.ErrDatabaseError):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	// For wrapped errors with domain errors as the base, try unwrapping
	unwrapped := errors.Unwrap(err)
	if unwrapped != nil && unwrapped != err {
		return mapServiceErrorToUserMessage(unwrapped)
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
