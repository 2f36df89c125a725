package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/skillstream/backend/internal/models"
	"go.uber.org/zap"
)

// MediaAdminService is the interface that wraps media asset administration
type MediaAdminService interface {
	Register(ctx context.Context, req *models.RegisterMediaRequest) (*models.MediaAsset, error)
	Get(ctx context.Context, id string) (*models.MediaAsset, error)
	UpdateStatus(ctx context.Context, id string, status models.MediaStatus) error
}

// MediaAdminHandler handles media registration from the packaging pipeline
type MediaAdminHandler struct {
	BaseHandler
	mediaService MediaAdminService
}

// NewMediaAdminHandler creates a new media admin handler
func NewMediaAdminHandler(mediaService MediaAdminService, logger *zap.Logger) *MediaAdminHandler {
	return &MediaAdminHandler{
		BaseHandler:  BaseHandler{Logger: logger},
		mediaService: mediaService,
	}
}

// RegisterRoutes registers media admin routes on an API-key router
func (h *MediaAdminHandler) RegisterRoutes(r chi.Router) {
	r.Post("/media", h.Register)
	r.Get("/media/{id}", h.Get)
	r.Patch("/media/{id}/status", h.UpdateStatus)
}

// Register handles POST /media
// @Summary Register a new media asset
// @Description Records an asset from the packaging pipeline. Status starts as processing.
// @Tags media
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.RegisterMediaRequest true "Asset descriptor"
// @Success 201 {object} models.MediaAsset
// @Failure 400 {object} ErrorResponse
// @Router /media [post]
func (h *MediaAdminHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterMediaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, CodeValidationError, "invalid request body")
		return
	}

	asset, err := h.mediaService.Register(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, asset)
}

// Get handles GET /media/{id}
// @Summary Get media asset metadata
// @Tags media
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Media asset ID"
// @Success 200 {object} models.MediaAsset
// @Failure 404 {object} ErrorResponse
// @Router /media/{id} [get]
func (h *MediaAdminHandler) Get(w http.ResponseWriter, r *http.Request) {
	asset, err := h.mediaService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, asset)
}

// UpdateStatus handles PATCH /media/{id}/status
// @Summary Update media processing status
// @Tags media
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Media asset ID"
// @Param request body models.UpdateMediaStatusRequest true "New status"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /media/{id}/status [patch]
func (h *MediaAdminHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateMediaStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, CodeValidationError, "invalid request body")
		return
	}

	if err := h.mediaService.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status); err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]string{"message": "status updated"})
}
