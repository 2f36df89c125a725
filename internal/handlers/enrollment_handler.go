package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/skillstream/backend/internal/auth/middleware"
	"github.com/skillstream/backend/internal/models"
	"go.uber.org/zap"
)

// EnrollmentService is the interface that wraps enrollment business logic
type EnrollmentService interface {
	Enroll(ctx context.Context, userID int, courseSlug string) (*models.Enrollment, error)
	ListEnrollments(ctx context.Context, userID int) ([]models.EnrollmentSummary, error)
}

// EnrollmentHandler handles enrollment HTTP requests
type EnrollmentHandler struct {
	BaseHandler
	enrollmentService EnrollmentService
}

// NewEnrollmentHandler creates a new enrollment handler
func NewEnrollmentHandler(enrollmentService EnrollmentService, logger *zap.Logger) *EnrollmentHandler {
	return &EnrollmentHandler{
		BaseHandler:       BaseHandler{Logger: logger},
		enrollmentService: enrollmentService,
	}
}

// RegisterRoutes registers enrollment routes on an authenticated router
func (h *EnrollmentHandler) RegisterRoutes(r chi.Router) {
	r.Post("/courses/{slug}/enroll", h.Enroll)
	r.Get("/enrollments", h.ListEnrollments)
}

// Enroll handles POST /courses/{slug}/enroll
// @Summary Enroll in a course
// @Tags enrollment
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Course slug"
// @Success 201 {object} models.Enrollment
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "ALREADY_ENROLLED"
// @Router /courses/{slug}/enroll [post]
func (h *EnrollmentHandler) Enroll(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, CodeUnauthorized, "authentication required")
		return
	}

	enrollment, err := h.enrollmentService.Enroll(r.Context(), userID, chi.URLParam(r, "slug"))
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, enrollment)
}

// ListEnrollments handles GET /enrollments
// @Summary List the caller's enrollments with progress
// @Tags enrollment
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.EnrollmentSummary
// @Router /enrollments [get]
func (h *EnrollmentHandler) ListEnrollments(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, CodeUnauthorized, "authentication required")
		return
	}

	enrollments, err := h.enrollmentService.ListEnrollments(r.Context(), userID)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	if enrollments == nil {
		enrollments = []models.EnrollmentSummary{}
	}
	h.RespondJSON(w, http.StatusOK, enrollments)
}
