package handler

import (
	"net/http"

	"github.com/devpoints/codecasino/internal/casino"
	"github.com/devpoints/codecasino/internal/domain"
)

// CasinoHandler exposes the wagering API.
type CasinoHandler struct {
	service casino.Service
}

// NewCasinoHandler creates a new CasinoHandler
func NewCasinoHandler(service casino.Service) *CasinoHandler {
	return &CasinoHandler{service: service}
}

type PlaceBetRequest struct {
	UserID       string `json:"user_id" validate:"required"`
	ChallengeID  int64  `json:"challenge_id" validate:"required"`
	PointsBet    int    `json:"points_bet" validate:"required,min=1"`
	ChosenOption int    `json:"chosen_option" validate:"betoption"`
}

func (h *CasinoHandler) HandlePlaceBet(w http.ResponseWriter, r *http.Request) {
	var req PlaceBetRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Place bet"); err != nil {
		return
	}

	outcome, err := h.service.PlaceBet(r.Context(), req.UserID, req.ChallengeID, req.PointsBet, req.ChosenOption)
	if err != nil {
		respondServiceError(w, r, "Place bet", err)
		return
	}

	respondJSON(w, http.StatusOK, outcome)
}

type NewChallengeRequest struct {
	TechStack  string `json:"tech_stack" validate:"required"`
	Difficulty string `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
}

func (h *CasinoHandler) HandleNewChallenge(w http.ResponseWriter, r *http.Request) {
	var req NewChallengeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "New challenge"); err != nil {
		return
	}
	if req.Difficulty == "" {
		req.Difficulty = domain.DifficultyMedium
	}

	view, err := h.service.NewChallenge(r.Context(), req.TechStack, req.Difficulty)
	if err != nil {
		respondServiceError(w, r, "New challenge", err)
		return
	}

	respondJSON(w, http.StatusCreated, view)
}

func (h *CasinoHandler) HandleDailyChallenge(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.DailyChallenge(r.Context())
	if err != nil {
		respondServiceError(w, r, "Daily challenge", err)
		return
	}

	respondJSON(w, http.StatusOK, view)
}

func (h *CasinoHandler) HandleGetAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}

	account, err := h.service.GetAccount(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, "Get account", err)
		return
	}

	respondJSON(w, http.StatusOK, account)
}

type SetZodiacRequest struct {
	UserID     string `json:"user_id" validate:"required"`
	ZodiacSign string `json:"zodiac_sign" validate:"required,zodiac"`
}

func (h *CasinoHandler) HandleSetZodiacSign(w http.ResponseWriter, r *http.Request) {
	var req SetZodiacRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set zodiac sign"); err != nil {
		return
	}

	if err := h.service.SetZodiacSign(r.Context(), req.UserID, req.ZodiacSign); err != nil {
		respondServiceError(w, r, "Set zodiac sign", err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgZodiacUpdatedSuccess})
}

func (h *CasinoHandler) HandleLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit, ok := GetLimitParam(r, w)
	if !ok {
		return
	}

	entries, err := h.service.Leaderboard(r.Context(), limit)
	if err != nil {
		respondServiceError(w, r, "Leaderboard", err)
		return
	}

	respondJSON(w, http.StatusOK, entries)
}

func (h *CasinoHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}
	limit, ok := GetLimitParam(r, w)
	if !ok {
		return
	}

	records, err := h.service.History(r.Context(), userID, limit)
	if err != nil {
		respondServiceError(w, r, "Bet history", err)
		return
	}

	respondJSON(w, http.StatusOK, records)
}
