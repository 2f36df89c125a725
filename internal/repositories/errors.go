package repositories

import "errors"

// Sentinel errors returned by repositories when a lookup finds nothing.
// Services translate these into API error codes.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrTokenNotFound    = errors.New("token not found")
	ErrCourseNotFound   = errors.New("course not found")
	ErrLessonNotFound   = errors.New("lesson not found")
	ErrMediaNotFound    = errors.New("media asset not found")
	ErrProgressNotFound = errors.New("progress not found")
	ErrDuplicateEntry   = errors.New("duplicate entry")
)
