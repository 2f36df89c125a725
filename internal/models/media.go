package models

import "time"

// MediaStatus represents the processing state of a media asset
type MediaStatus string

const (
	MediaStatusProcessing MediaStatus = "processing"
	MediaStatusReady      MediaStatus = "ready"
	MediaStatusFailed     MediaStatus = "failed"
)

// ValidMediaStatus reports whether s is a known media status
func ValidMediaStatus(s MediaStatus) bool {
	switch s {
	case MediaStatusProcessing, MediaStatusReady, MediaStatusFailed:
		return true
	}
	return false
}

// MediaAsset represents a video asset managed by the packaging pipeline
type MediaAsset struct {
	ID              string      `json:"id"`
	PlaybackKey     string      `json:"playbackKey"`
	DurationSeconds int         `json:"durationSeconds"`
	Status          MediaStatus `json:"status"`
	CreatedAt       time.Time   `json:"createdAt"`
}

// RegisterMediaRequest represents a request to register a new media asset
type RegisterMediaRequest struct {
	PlaybackKey     string `json:"playbackKey"`
	DurationSeconds int    `json:"durationSeconds"`
}

// UpdateMediaStatusRequest represents a processing-status transition
type UpdateMediaStatusRequest struct {
	Status MediaStatus `json:"status"`
}
