package models

import "time"

// CompletionThreshold is the watched fraction at which a lesson counts as completed
const CompletionThreshold = 0.9

// WatchProgress represents a user's playback position in a lesson
type WatchProgress struct {
	UserID          int       `json:"userId"`
	LessonID        int       `json:"lessonId"`
	PositionSeconds float64   `json:"positionSeconds"`
	DurationSeconds float64   `json:"durationSeconds"`
	Completed       bool      `json:"completed"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ReportProgressRequest represents a progress flush from the playback client
type ReportProgressRequest struct {
	PositionSeconds float64 `json:"positionSeconds"`
	DurationSeconds float64 `json:"durationSeconds"`
}
