package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/skillstream/backend/internal/models"
	"go.uber.org/zap"
)

// LeadService is the interface that wraps lead-capture business logic
type LeadService interface {
	Create(ctx context.Context, req *models.CreateLeadRequest) (*models.SalesLead, error)
}

// LeadHandler handles enterprise-sales contact form submissions
type LeadHandler struct {
	BaseHandler
	leadService LeadService
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(leadService LeadService, logger *zap.Logger) *LeadHandler {
	return &LeadHandler{
		BaseHandler: BaseHandler{Logger: logger},
		leadService: leadService,
	}
}

// RegisterRoutes registers lead routes
func (h *LeadHandler) RegisterRoutes(r chi.Router) {
	r.Post("/leads", h.Create)
}

// Create handles POST /leads
// @Summary Submit an enterprise-sales inquiry
// @Tags leads
// @Accept json
// @Produce json
// @Param request body models.CreateLeadRequest true "Contact form payload"
// @Success 201 {object} models.SalesLead
// @Failure 400 {object} ErrorResponse "VALIDATION_ERROR"
// @Router /leads [post]
func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, CodeValidationError, "invalid request body")
		return
	}

	lead, err := h.leadService.Create(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, lead)
}
