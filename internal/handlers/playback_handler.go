package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/skillstream/backend/internal/auth/middleware"
	"github.com/skillstream/backend/internal/models"
	"github.com/skillstream/backend/internal/ratelimit"
	"github.com/skillstream/backend/internal/services"
	"go.uber.org/zap"
)

// PlaybackService is the interface that wraps the playback-token pipeline
type PlaybackService interface {
	IssueToken(ctx context.Context, req *services.TokenRequest) (*services.TokenGrant, *ratelimit.Result, error)
}

// PlaybackHandler handles playback-token HTTP requests
type PlaybackHandler struct {
	BaseHandler
	playbackService PlaybackService
}

// NewPlaybackHandler creates a new playback handler
func NewPlaybackHandler(playbackService PlaybackService, logger *zap.Logger) *PlaybackHandler {
	return &PlaybackHandler{
		BaseHandler:     BaseHandler{Logger: logger},
		playbackService: playbackService,
	}
}

// RegisterRoutes registers playback routes on an authenticated router
func (h *PlaybackHandler) RegisterRoutes(r chi.Router) {
	r.Post("/media/{id}/playback-token", h.IssueToken)
}

// IssueToken handles POST /media/{id}/playback-token
// @Summary Issue a signed playback URL
// @Description Mints a short-lived signed manifest URL for a media asset. The caller must hold an active enrollment in the lesson's course and the asset must be ready.
// @Tags playback
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Media asset ID"
// @Param request body models.PlaybackTokenRequest true "Lesson context"
// @Success 200 {object} models.PlaybackTokenResponse
// @Failure 400 {object} ErrorResponse "MISSING_LESSON_ID or MEDIA_MISMATCH"
// @Failure 401 {object} ErrorResponse "UNAUTHORIZED"
// @Failure 403 {object} ErrorResponse "NOT_ENROLLED"
// @Failure 404 {object} ErrorResponse "USER_NOT_FOUND, LESSON_NOT_FOUND or MEDIA_NOT_FOUND"
// @Failure 409 {object} ErrorResponse "MEDIA_NOT_READY"
// @Failure 429 {object} ErrorResponse "RATE_LIMIT_EXCEEDED"
// @Router /media/{id}/playback-token [post]
func (h *PlaybackHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, CodeUnauthorized, "authentication required")
		return
	}

	// The body is decoded exactly once. A missing or malformed body
	// leaves lessonId empty and the pipeline reports MISSING_LESSON_ID
	// in its proper place, after the rate limit check.
	var body models.PlaybackTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		body.LessonID = ""
	}

	req := &services.TokenRequest{
		Email:     session.Email,
		MediaID:   chi.URLParam(r, "id"),
		LessonID:  body.LessonID,
		ClientIP:  r.RemoteAddr,
		UserAgent: r.UserAgent(),
	}

	grant, rate, err := h.playbackService.IssueToken(r.Context(), req)
	if rate != nil {
		setRateLimitHeaders(w, rate)
	}
	if err != nil {
		if rate != nil && !rate.Allowed {
			w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(rate.ResetTime)))
		}
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, models.PlaybackTokenResponse{
		Success:   true,
		SignedURL: grant.SignedURL,
		ExpiresAt: grant.ExpiresAt.UTC().Format(time.RFC3339),
	})
}

// setRateLimitHeaders exposes quota metadata on every metered response
func setRateLimitHeaders(w http.ResponseWriter, rate *ratelimit.Result) {
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rate.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(rate.Remaining))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(rate.ResetTime.Unix(), 10))
}

func retryAfterSeconds(resetTime time.Time) int {
	seconds := int(time.Until(resetTime).Seconds() + 0.5)
	if seconds < 1 {
		seconds = 1
	}
	return seconds
}
