package handlers

// ErrorCode is a stable machine-readable error identifier
type ErrorCode string

// Error codes returned by the API
const (
	CodeUnauthorized      ErrorCode = "UNAUTHORIZED"
	CodeUserNotFound      ErrorCode = "USER_NOT_FOUND"
	CodeRateLimitExceeded ErrorCode = "RATE_LIMIT_EXCEEDED"
	CodeMissingLessonID   ErrorCode = "MISSING_LESSON_ID"
	CodeLessonNotFound    ErrorCode = "LESSON_NOT_FOUND"
	CodeMediaNotFound     ErrorCode = "MEDIA_NOT_FOUND"
	CodeMediaMismatch     ErrorCode = "MEDIA_MISMATCH"
	CodeNotEnrolled       ErrorCode = "NOT_ENROLLED"
	CodeMediaNotReady     ErrorCode = "MEDIA_NOT_READY"
	CodeAlreadyEnrolled   ErrorCode = "ALREADY_ENROLLED"
	CodeValidationError   ErrorCode = "VALIDATION_ERROR"
	CodeNotFound          ErrorCode = "NOT_FOUND"
	CodeInternalError     ErrorCode = "INTERNAL_ERROR"
)

// ErrorResponse is the JSON envelope for all API failures
type ErrorResponse struct {
	Error   bool      `json:"error"`
	Message string    `json:"message"`
	Code    ErrorCode `json:"code"`
}
