package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ExpiredTokenCleaner deletes refresh tokens older than the given cutoff
type ExpiredTokenCleaner interface {
	DeleteExpiredTokens(ctx context.Context, expiryTime time.Time) (int, error)
}

// TokenCleaningHandler purges expired refresh tokens on demand.
// Called periodically by an external scheduler over the API-key surface.
type TokenCleaningHandler struct {
	BaseHandler
	userTokenRepo ExpiredTokenCleaner
	refreshExpiry time.Duration
}

// NewTokenCleaningHandler creates a new token cleaning handler
func NewTokenCleaningHandler(userTokenRepo ExpiredTokenCleaner, logger *zap.Logger, refreshExpiry time.Duration) *TokenCleaningHandler {
	return &TokenCleaningHandler{
		BaseHandler:   BaseHandler{Logger: logger},
		userTokenRepo: userTokenRepo,
		refreshExpiry: refreshExpiry,
	}
}

// RegisterRoutes registers token cleaning routes on an API-key router
func (h *TokenCleaningHandler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/clean-tokens", h.CleanTokens)
}

// CleanTokens handles POST /auth/clean-tokens
// @Summary Purge expired refresh tokens
// @Tags auth
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]int
// @Failure 500 {object} ErrorResponse
// @Router /auth/clean-tokens [post]
func (h *TokenCleaningHandler) CleanTokens(w http.ResponseWriter, r *http.Request) {
	cutoff := time.Now().Add(-h.refreshExpiry)

	deleted, err := h.userTokenRepo.DeleteExpiredTokens(r.Context(), cutoff)
	if err != nil {
		h.Logger.Error("failed to clean expired tokens", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, CodeInternalError, "internal server error")
		return
	}

	h.Logger.Info("expired refresh tokens cleaned", zap.Int("deleted", deleted))
	h.RespondJSON(w, http.StatusOK, map[string]int{"deleted": deleted})
}
