package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/skillstream/backend/internal/models"
	"github.com/skillstream/backend/internal/repositories"
)

// ProgressRepository is the interface for watch-progress data access
type ProgressRepository interface {
	Upsert(ctx context.Context, progress *models.WatchProgress) error
	Get(ctx context.Context, userID, lessonID int) (*models.WatchProgress, error)
}

// progressService records and serves lesson watch progress
type progressService struct {
	progressRepo   ProgressRepository
	lessonRepo     LessonReader
	enrollmentRepo EnrollmentChecker
}

// NewProgressService creates a new progress service
func NewProgressService(progressRepo ProgressRepository, lessonRepo LessonReader, enrollmentRepo EnrollmentChecker) *progressService {
	return &progressService{
		progressRepo:   progressRepo,
		lessonRepo:     lessonRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

// Report upserts the user's position in a lesson. A lesson counts as
// completed once the watched fraction reaches the threshold, and stays
// completed on later reports from earlier positions.
func (s *progressService) Report(ctx context.Context, userID, lessonID int, req *models.ReportProgressRequest) (*models.WatchProgress, error) {
	if req.DurationSeconds <= 0 {
		return nil, NewValidationError("durationSeconds must be positive")
	}
	if req.PositionSeconds < 0 || req.PositionSeconds > req.DurationSeconds {
		return nil, NewValidationError("positionSeconds must be within the lesson duration")
	}

	lesson, err := s.lessonRepo.GetByID(ctx, lessonID)
	if err != nil {
		if errors.Is(err, repositories.ErrLessonNotFound) {
			return nil, ErrLessonNotFound
		}
		return nil, err
	}

	if !lesson.FreePreview {
		enrolled, err := s.enrollmentRepo.HasActive(ctx, userID, lesson.CourseID)
		if err != nil {
			return nil, fmt.Errorf("enrollment check failed: %w", err)
		}
		if !enrolled {
			return nil, ErrNotEnrolled
		}
	}

	progress := &models.WatchProgress{
		UserID:          userID,
		LessonID:        lessonID,
		PositionSeconds: req.PositionSeconds,
		DurationSeconds: req.DurationSeconds,
		Completed:       req.PositionSeconds >= req.DurationSeconds*models.CompletionThreshold,
	}
	if err := s.progressRepo.Upsert(ctx, progress); err != nil {
		return nil, err
	}

	return progress, nil
}

// Get returns the user's last recorded position for a lesson
func (s *progressService) Get(ctx context.Context, userID, lessonID int) (*models.WatchProgress, error) {
	progress, err := s.progressRepo.Get(ctx, userID, lessonID)
	if err != nil {
		if errors.Is(err, repositories.ErrProgressNotFound) {
			return nil, ErrProgressNotFound
		}
		return nil, err
	}
	return progress, nil
}
