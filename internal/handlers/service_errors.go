package handlers

import (
	"errors"
	"net/http"

	"github.com/skillstream/backend/internal/services"
	"go.uber.org/zap"
)

// RespondServiceError maps service sentinel errors onto HTTP statuses
// and machine-readable codes. Unknown errors become a generic 500 so
// internals never leak to clients.
func (h *BaseHandler) RespondServiceError(w http.ResponseWriter, err error) {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		h.RespondError(w, http.StatusBadRequest, CodeValidationError, validationErr.Message)
		return
	}

	switch {
	case errors.Is(err, services.ErrUserNotFound):
		h.RespondError(w, http.StatusNotFound, CodeUserNotFound, "user not found")
	case errors.Is(err, services.ErrRateLimited):
		h.RespondError(w, http.StatusTooManyRequests, CodeRateLimitExceeded, "too many token requests, slow down")
	case errors.Is(err, services.ErrMissingLessonID):
		h.RespondError(w, http.StatusBadRequest, CodeMissingLessonID, "lessonId is required")
	case errors.Is(err, services.ErrLessonNotFound):
		h.RespondError(w, http.StatusNotFound, CodeLessonNotFound, "lesson not found")
	case errors.Is(err, services.ErrMediaNotFound):
		h.RespondError(w, http.StatusNotFound, CodeMediaNotFound, "media not found")
	case errors.Is(err, services.ErrMediaMismatch):
		h.RespondError(w, http.StatusBadRequest, CodeMediaMismatch, "media does not belong to the requested lesson")
	case errors.Is(err, services.ErrNotEnrolled):
		h.RespondError(w, http.StatusForbidden, CodeNotEnrolled, "active enrollment required")
	case errors.Is(err, services.ErrMediaNotReady):
		h.RespondError(w, http.StatusConflict, CodeMediaNotReady, "media is still processing")
	case errors.Is(err, services.ErrAlreadyEnrolled):
		h.RespondError(w, http.StatusConflict, CodeAlreadyEnrolled, "already enrolled in this course")
	case errors.Is(err, services.ErrAlreadyRegistered):
		h.RespondError(w, http.StatusConflict, CodeValidationError, "email or username already registered")
	case errors.Is(err, services.ErrCourseNotFound):
		h.RespondError(w, http.StatusNotFound, CodeNotFound, "course not found")
	case errors.Is(err, services.ErrProgressNotFound):
		h.RespondError(w, http.StatusNotFound, CodeNotFound, "no progress recorded")
	case errors.Is(err, services.ErrInvalidCredentials):
		h.RespondError(w, http.StatusUnauthorized, CodeUnauthorized, "invalid credentials")
	case errors.Is(err, services.ErrInvalidToken):
		h.RespondError(w, http.StatusUnauthorized, CodeUnauthorized, "invalid or expired refresh token")
	default:
		h.Logger.Error("unhandled service error", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, CodeInternalError, "internal server error")
	}
}
