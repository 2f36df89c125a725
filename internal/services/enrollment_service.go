package services

import (
	"context"
	"errors"

	"github.com/skillstream/backend/internal/models"
	"github.com/skillstream/backend/internal/repositories"
	"go.uber.org/zap"
)

// EnrollmentRepository is the interface for enrollment data access
type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *models.Enrollment) error
	HasActive(ctx context.Context, userID, courseID int) (bool, error)
	GetSummariesByUser(ctx context.Context, userID int) ([]models.EnrollmentSummary, error)
}

// enrollmentService manages course enrollments
type enrollmentService struct {
	enrollmentRepo EnrollmentRepository
	courseRepo     CourseRepository
	logger         *zap.Logger
}

// NewEnrollmentService creates a new enrollment service
func NewEnrollmentService(enrollmentRepo EnrollmentRepository, courseRepo CourseRepository, logger *zap.Logger) *enrollmentService {
	return &enrollmentService{
		enrollmentRepo: enrollmentRepo,
		courseRepo:     courseRepo,
		logger:         logger,
	}
}

// Enroll creates an active enrollment for the user in the course
func (s *enrollmentService) Enroll(ctx context.Context, userID int, courseSlug string) (*models.Enrollment, error) {
	course, err := s.courseRepo.GetBySlug(ctx, courseSlug)
	if err != nil {
		if errors.Is(err, repositories.ErrCourseNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	enrollment := &models.Enrollment{
		UserID:   userID,
		CourseID: course.ID,
		Status:   models.EnrollmentStatusActive,
	}
	if err := s.enrollmentRepo.Create(ctx, enrollment); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEntry) {
			return nil, ErrAlreadyEnrolled
		}
		return nil, err
	}

	s.logger.Info("user enrolled",
		zap.Int("user_id", userID),
		zap.Int("course_id", course.ID),
		zap.String("course_slug", courseSlug),
	)

	return enrollment, nil
}

// ListEnrollments returns the user's enrollments with progress summaries
func (s *enrollmentService) ListEnrollments(ctx context.Context, userID int) ([]models.EnrollmentSummary, error) {
	return s.enrollmentRepo.GetSummariesByUser(ctx, userID)
}
