package services

import "errors"

// Sentinel errors returned by services. Handlers map these onto
// HTTP statuses and machine-readable error codes.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrRateLimited        = errors.New("rate limit exceeded")
	ErrMissingLessonID    = errors.New("lesson id is required")
	ErrLessonNotFound     = errors.New("lesson not found")
	ErrMediaNotFound      = errors.New("media not found")
	ErrMediaMismatch      = errors.New("media does not belong to lesson")
	ErrNotEnrolled        = errors.New("not enrolled in course")
	ErrMediaNotReady      = errors.New("media is not ready for playback")
	ErrAlreadyEnrolled    = errors.New("already enrolled in course")
	ErrCourseNotFound     = errors.New("course not found")
	ErrAlreadyRegistered  = errors.New("email or username already registered")
	ErrProgressNotFound   = errors.New("no progress recorded")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired refresh token")
)

// ValidationError carries a user-facing message for malformed input
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a validation error with the given message
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}
