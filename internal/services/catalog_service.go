package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/skillstream/backend/internal/models"
	"github.com/skillstream/backend/internal/repositories"
)

// CourseRepository is the interface for course data access
type CourseRepository interface {
	GetAll(ctx context.Context, level *models.CourseLevel, search string, page, count int) ([]models.CourseListItem, error)
	GetBySlug(ctx context.Context, slug string) (*models.Course, error)
	GetDetailBySlug(ctx context.Context, slug string, userID int) (*models.CourseDetailResponse, error)
	GetByID(ctx context.Context, id int) (*models.Course, error)
}

// LessonRepository is the interface for lesson data access
type LessonRepository interface {
	GetByID(ctx context.Context, id int) (*models.Lesson, error)
	GetBySlug(ctx context.Context, slug string) (*models.Lesson, error)
	GetByCourseIDWithCompletion(ctx context.Context, courseID, userID int) ([]models.LessonListItem, error)
}

// catalogService serves course and lesson listings
type catalogService struct {
	courseRepo     CourseRepository
	lessonRepo     LessonRepository
	mediaRepo      MediaReader
	enrollmentRepo EnrollmentChecker
}

// NewCatalogService creates a new catalog service
func NewCatalogService(
	courseRepo CourseRepository,
	lessonRepo LessonRepository,
	mediaRepo MediaReader,
	enrollmentRepo EnrollmentChecker,
) *catalogService {
	return &catalogService{
		courseRepo:     courseRepo,
		lessonRepo:     lessonRepo,
		mediaRepo:      mediaRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

// ListCourses returns published courses matching the filter.
// level accepts full names and single-letter abbreviations.
func (s *catalogService) ListCourses(ctx context.Context, level, search string, page, count int) ([]models.CourseListItem, error) {
	var levelFilter *models.CourseLevel
	if level != "" {
		resolved, ok := models.CourseLevelAbbreviation[level]
		if !ok {
			resolved = models.CourseLevel(level)
		}
		switch resolved {
		case models.CourseLevelBeginner, models.CourseLevelIntermediate, models.CourseLevelAdvanced:
			levelFilter = &resolved
		default:
			return nil, NewValidationError(fmt.Sprintf("unknown course level %q", level))
		}
	}

	if page < 1 {
		page = 1
	}
	if count < 1 || count > 100 {
		count = 20
	}

	return s.courseRepo.GetAll(ctx, levelFilter, search, page, count)
}

// GetCourse returns course detail with the caller's enrollment context.
// userID 0 means anonymous.
func (s *catalogService) GetCourse(ctx context.Context, slug string, userID int) (*models.CourseDetailResponse, error) {
	detail, err := s.courseRepo.GetDetailBySlug(ctx, slug, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrCourseNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	if userID != 0 {
		course, err := s.courseRepo.GetBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}
		enrolled, err := s.enrollmentRepo.HasActive(ctx, userID, course.ID)
		if err != nil {
			return nil, fmt.Errorf("enrollment check failed: %w", err)
		}
		detail.Enrolled = enrolled
	}

	return detail, nil
}

// ListLessons returns a course's lessons in order with per-user completion
func (s *catalogService) ListLessons(ctx context.Context, courseSlug string, userID int) ([]models.LessonListItem, error) {
	course, err := s.courseRepo.GetBySlug(ctx, courseSlug)
	if err != nil {
		if errors.Is(err, repositories.ErrCourseNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	return s.lessonRepo.GetByCourseIDWithCompletion(ctx, course.ID, userID)
}

// GetLesson returns lesson detail. The media descriptor is exposed only
// to enrolled users and on free-preview lessons.
func (s *catalogService) GetLesson(ctx context.Context, slug string, userID int) (*models.LessonDetailResponse, error) {
	lesson, err := s.lessonRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repositories.ErrLessonNotFound) {
			return nil, ErrLessonNotFound
		}
		return nil, err
	}

	course, err := s.courseRepo.GetByID(ctx, lesson.CourseID)
	if err != nil {
		return nil, err
	}

	detail := &models.LessonDetailResponse{
		ID:          lesson.ID,
		Slug:        lesson.Slug,
		CourseSlug:  course.Slug,
		Title:       lesson.Title,
		Position:    lesson.Position,
		FreePreview: lesson.FreePreview,
	}

	if lesson.MediaID == "" {
		return detail, nil
	}

	allowed := lesson.FreePreview
	if !allowed && userID != 0 {
		enrolled, err := s.enrollmentRepo.HasActive(ctx, userID, lesson.CourseID)
		if err != nil {
			return nil, fmt.Errorf("enrollment check failed: %w", err)
		}
		allowed = enrolled
	}
	if !allowed {
		return detail, nil
	}

	media, err := s.mediaRepo.GetByID(ctx, lesson.MediaID)
	if err != nil {
		if errors.Is(err, repositories.ErrMediaNotFound) {
			return detail, nil
		}
		return nil, err
	}

	detail.Media = &models.LessonMediaInfo{
		MediaID:         media.ID,
		DurationSeconds: media.DurationSeconds,
		Status:          string(media.Status),
	}

	return detail, nil
}
