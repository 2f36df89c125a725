package models

// Lesson represents a lesson in a course
type Lesson struct {
	ID          int    `json:"id"`
	Slug        string `json:"slug"`
	CourseID    int    `json:"courseId"`
	MediaID     string `json:"mediaId,omitempty"` // empty when no video is attached yet
	Title       string `json:"title"`
	Position    int    `json:"position"`
	FreePreview bool   `json:"freePreview"`
}

// LessonListItem represents a lesson in course lesson listings
type LessonListItem struct {
	ID          int    `json:"id"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Position    int    `json:"position"`
	FreePreview bool   `json:"freePreview"`
	MediaReady  bool   `json:"mediaReady"`
	Completed   bool   `json:"completed"`
}

// LessonDetailResponse represents a lesson detail page payload.
// Media is only populated for enrolled users (or free-preview lessons).
type LessonDetailResponse struct {
	ID          int              `json:"id"`
	Slug        string           `json:"slug"`
	CourseSlug  string           `json:"courseSlug"`
	Title       string           `json:"title"`
	Position    int              `json:"position"`
	FreePreview bool             `json:"freePreview"`
	Media       *LessonMediaInfo `json:"media,omitempty"`
}

// LessonMediaInfo describes the playable media attached to a lesson
type LessonMediaInfo struct {
	MediaID         string `json:"mediaId"`
	DurationSeconds int    `json:"durationSeconds"`
	Status          string `json:"status"`
}
