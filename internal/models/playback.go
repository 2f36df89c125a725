package models

// PlaybackTokenRequest is the body of POST /media/{id}/playback-token.
// The lesson id travels as a string on the wire.
type PlaybackTokenRequest struct {
	LessonID string `json:"lessonId"`
}

// PlaybackTokenResponse is the success payload of the playback-token endpoint
type PlaybackTokenResponse struct {
	Success   bool   `json:"success"`
	SignedURL string `json:"signedUrl"`
	ExpiresAt string `json:"expiresAt"` // RFC3339
}
