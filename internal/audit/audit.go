package audit

import (
	"go.uber.org/zap"
)

// Logger records security-relevant playback events on a dedicated
// named logger so they can be routed separately from request logs.
type Logger struct {
	logger *zap.Logger
}

// NewLogger creates an audit logger on top of the given zap logger
func NewLogger(base *zap.Logger) *Logger {
	return &Logger{
		logger: base.Named("audit"),
	}
}

// UnauthorizedAccess records a denied playback token request
func (a *Logger) UnauthorizedAccess(actor int, mediaID string, lessonID int, reason, ip, userAgent string) {
	a.logger.Warn("unauthorized media access attempt",
		zap.Int("actor", actor),
		zap.String("media_id", mediaID),
		zap.Int("lesson_id", lessonID),
		zap.String("reason", reason),
		zap.String("ip", ip),
		zap.String("user_agent", userAgent),
	)
}

// ExcessiveTokenRequests records a request rejected by the rate limiter
func (a *Logger) ExcessiveTokenRequests(actor int, route string, count int, ip, userAgent string) {
	a.logger.Warn("excessive token requests",
		zap.Int("actor", actor),
		zap.String("route", route),
		zap.Int("count", count),
		zap.String("ip", ip),
		zap.String("user_agent", userAgent),
	)
}
