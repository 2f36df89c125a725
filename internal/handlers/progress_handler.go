package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/skillstream/backend/internal/auth/middleware"
	"github.com/skillstream/backend/internal/models"
	"go.uber.org/zap"
)

// ProgressService is the interface that wraps watch-progress business logic
type ProgressService interface {
	Report(ctx context.Context, userID, lessonID int, req *models.ReportProgressRequest) (*models.WatchProgress, error)
	Get(ctx context.Context, userID, lessonID int) (*models.WatchProgress, error)
}

// ProgressHandler handles watch-progress HTTP requests
type ProgressHandler struct {
	BaseHandler
	progressService ProgressService
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(progressService ProgressService, logger *zap.Logger) *ProgressHandler {
	return &ProgressHandler{
		BaseHandler:     BaseHandler{Logger: logger},
		progressService: progressService,
	}
}

// RegisterRoutes registers progress routes on an authenticated router
func (h *ProgressHandler) RegisterRoutes(r chi.Router) {
	r.Post("/lessons/{id}/progress", h.Report)
	r.Get("/lessons/{id}/progress", h.Get)
}

// Report handles POST /lessons/{id}/progress
// @Summary Report playback position for a lesson
// @Description Upserts the caller's position. Completion is inferred at 90% watched and never reverts.
// @Tags progress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lesson ID"
// @Param request body models.ReportProgressRequest true "Playback position"
// @Success 200 {object} models.WatchProgress
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "NOT_ENROLLED"
// @Failure 404 {object} ErrorResponse "LESSON_NOT_FOUND"
// @Router /lessons/{id}/progress [post]
func (h *ProgressHandler) Report(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, CodeUnauthorized, "authentication required")
		return
	}

	lessonID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, http.StatusNotFound, CodeLessonNotFound, "lesson not found")
		return
	}

	var req models.ReportProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, CodeValidationError, "invalid request body")
		return
	}

	progress, err := h.progressService.Report(r.Context(), userID, lessonID, &req)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, progress)
}

// Get handles GET /lessons/{id}/progress
// @Summary Get the caller's last playback position
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lesson ID"
// @Success 200 {object} models.WatchProgress
// @Failure 404 {object} ErrorResponse
// @Router /lessons/{id}/progress [get]
func (h *ProgressHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, CodeUnauthorized, "authentication required")
		return
	}

	lessonID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, http.StatusNotFound, CodeLessonNotFound, "lesson not found")
		return
	}

	progress, err := h.progressService.Get(r.Context(), userID, lessonID)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, progress)
}
