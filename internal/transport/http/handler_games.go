package httptransport

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"tg-roulette/internal/app/games"
	"tg-roulette/internal/game"
)

type GamesHandlers struct {
	svc *games.Service
}

func NewGamesHandlers(svc *games.Service) *GamesHandlers {
	return &GamesHandlers{svc: svc}
}

func (h *GamesHandlers) Play() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, ok := AccountIDFromContext(r.Context())
		if !ok {
			WriteHTTPError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		var body struct {
			BetAmount int64 `json:"betAmount"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		resp, err := h.svc.Play(r.Context(), accountID, body.BetAmount)
		if err != nil {
			switch {
			case errors.Is(err, game.ErrInvalidBet):
				WriteHTTPError(w, http.StatusBadRequest, "invalid_bet")
			case errors.Is(err, game.ErrInsufficientBalance):
				WriteHTTPError(w, http.StatusBadRequest, "insufficient_balance")
			case errors.Is(err, game.ErrAccountNotFound):
				WriteHTTPError(w, http.StatusNotFound, "account_not_found")
			default:
				WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			}
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func (h *GamesHandlers) History() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, ok := AccountIDFromContext(r.Context())
		if !ok {
			WriteHTTPError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		limit := 0
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				limit = n
			}
		}
		resp, err := h.svc.History(r.Context(), accountID, limit)
		if err != nil {
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func (h *GamesHandlers) Stats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, ok := AccountIDFromContext(r.Context())
		if !ok {
			WriteHTTPError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		resp, err := h.svc.Stats(r.Context(), accountID)
		if err != nil {
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}
