package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/skillstream/backend/internal/models"
	"go.uber.org/zap"
)

// TestimonialService is the interface that wraps testimonial business logic
type TestimonialService interface {
	ListPublished(ctx context.Context, page, count int) ([]models.Testimonial, error)
	Create(ctx context.Context, req *models.CreateTestimonialRequest) (*models.Testimonial, error)
}

// TestimonialHandler handles testimonial HTTP requests
type TestimonialHandler struct {
	BaseHandler
	testimonialService TestimonialService
}

// NewTestimonialHandler creates a new testimonial handler
func NewTestimonialHandler(testimonialService TestimonialService, logger *zap.Logger) *TestimonialHandler {
	return &TestimonialHandler{
		BaseHandler:        BaseHandler{Logger: logger},
		testimonialService: testimonialService,
	}
}

// RegisterPublicRoutes registers the public listing route
func (h *TestimonialHandler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/testimonials", h.List)
}

// RegisterAdminRoutes registers the API-key protected create route
func (h *TestimonialHandler) RegisterAdminRoutes(r chi.Router) {
	r.Post("/testimonials", h.Create)
}

// List handles GET /testimonials
// @Summary List published testimonials, newest first
// @Tags testimonials
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param count query int false "Page size" default(10)
// @Success 200 {array} models.Testimonial
// @Router /testimonials [get]
func (h *TestimonialHandler) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	count, _ := strconv.Atoi(r.URL.Query().Get("count"))

	testimonials, err := h.testimonialService.ListPublished(r.Context(), page, count)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	if testimonials == nil {
		testimonials = []models.Testimonial{}
	}
	h.RespondJSON(w, http.StatusOK, testimonials)
}

// Create handles POST /testimonials
// @Summary Create a testimonial
// @Tags testimonials
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.CreateTestimonialRequest true "Testimonial"
// @Success 201 {object} models.Testimonial
// @Failure 400 {object} ErrorResponse
// @Router /testimonials [post]
func (h *TestimonialHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTestimonialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, CodeValidationError, "invalid request body")
		return
	}

	testimonial, err := h.testimonialService.Create(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, testimonial)
}
