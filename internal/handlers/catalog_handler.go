package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/skillstream/backend/internal/auth/middleware"
	"github.com/skillstream/backend/internal/models"
	"go.uber.org/zap"
)

// CatalogService is the interface that wraps catalog business logic
type CatalogService interface {
	ListCourses(ctx context.Context, level, search string, page, count int) ([]models.CourseListItem, error)
	GetCourse(ctx context.Context, slug string, userID int) (*models.CourseDetailResponse, error)
	ListLessons(ctx context.Context, courseSlug string, userID int) ([]models.LessonListItem, error)
	GetLesson(ctx context.Context, slug string, userID int) (*models.LessonDetailResponse, error)
}

// CatalogHandler handles course and lesson catalog HTTP requests
type CatalogHandler struct {
	BaseHandler
	catalogService CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		BaseHandler:    BaseHandler{Logger: logger},
		catalogService: catalogService,
	}
}

// RegisterRoutes registers catalog routes. The router should carry
// optional auth so listings can be personalized for signed-in users.
func (h *CatalogHandler) RegisterRoutes(r chi.Router) {
	r.Get("/courses", h.ListCourses)
	r.Get("/courses/{slug}", h.GetCourse)
	r.Get("/courses/{slug}/lessons", h.ListLessons)
	r.Get("/lessons/{slug}", h.GetLesson)
}

// ListCourses handles GET /courses
// @Summary List published courses
// @Tags catalog
// @Produce json
// @Param level query string false "Course level (Beginner/Intermediate/Advanced or b/i/a)"
// @Param search query string false "Title search"
// @Param page query int false "Page number" default(1)
// @Param count query int false "Page size" default(20)
// @Success 200 {array} models.CourseListItem
// @Failure 400 {object} ErrorResponse
// @Router /courses [get]
func (h *CatalogHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	count, _ := strconv.Atoi(r.URL.Query().Get("count"))

	courses, err := h.catalogService.ListCourses(r.Context(),
		r.URL.Query().Get("level"),
		r.URL.Query().Get("search"),
		page, count)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	if courses == nil {
		courses = []models.CourseListItem{}
	}
	h.RespondJSON(w, http.StatusOK, courses)
}

// GetCourse handles GET /courses/{slug}
// @Summary Get course detail
// @Tags catalog
// @Produce json
// @Param slug path string true "Course slug"
// @Success 200 {object} models.CourseDetailResponse
// @Failure 404 {object} ErrorResponse
// @Router /courses/{slug} [get]
func (h *CatalogHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())

	course, err := h.catalogService.GetCourse(r.Context(), chi.URLParam(r, "slug"), userID)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, course)
}

// ListLessons handles GET /courses/{slug}/lessons
// @Summary List a course's lessons in order
// @Tags catalog
// @Produce json
// @Param slug path string true "Course slug"
// @Success 200 {array} models.LessonListItem
// @Failure 404 {object} ErrorResponse
// @Router /courses/{slug}/lessons [get]
func (h *CatalogHandler) ListLessons(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())

	lessons, err := h.catalogService.ListLessons(r.Context(), chi.URLParam(r, "slug"), userID)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	if lessons == nil {
		lessons = []models.LessonListItem{}
	}
	h.RespondJSON(w, http.StatusOK, lessons)
}

// GetLesson handles GET /lessons/{slug}
// @Summary Get lesson detail
// @Description Media descriptor is included only for enrolled users and free-preview lessons.
// @Tags catalog
// @Produce json
// @Param slug path string true "Lesson slug"
// @Success 200 {object} models.LessonDetailResponse
// @Failure 404 {object} ErrorResponse
// @Router /lessons/{slug} [get]
func (h *CatalogHandler) GetLesson(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())

	lesson, err := h.catalogService.GetLesson(r.Context(), chi.URLParam(r, "slug"), userID)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, lesson)
}
