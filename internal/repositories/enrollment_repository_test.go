package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/skillstream/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnrollmentTestRepository creates an enrollment repository with a mock database
func setupEnrollmentTestRepository(t *testing.T) (*enrollmentRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewEnrollmentRepository(db)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestEnrollmentRepository_Create(t *testing.T) {
	tests := []struct {
		name          string
		enrollment    *models.Enrollment
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
		expectedID    int
	}{
		{
			name: "success",
			enrollment: &models.Enrollment{
				UserID:   7,
				CourseID: 3,
				Status:   models.EnrollmentStatusActive,
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO enrollments`).
					WithArgs(7, 3, models.EnrollmentStatusActive).
					WillReturnResult(sqlmock.NewResult(42, 1))
			},
			expectedID: 42,
		},
		{
			name: "duplicate enrollment",
			enrollment: &models.Enrollment{
				UserID:   7,
				CourseID: 3,
				Status:   models.EnrollmentStatusActive,
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO enrollments`).
					WithArgs(7, 3, models.EnrollmentStatusActive).
					WillReturnError(errors.New("Error 1062: Duplicate entry '7-3' for key 'uq_enrollments_user_course'"))
			},
			expectedError: ErrDuplicateEntry,
		},
		{
			name: "database error",
			enrollment: &models.Enrollment{
				UserID:   7,
				CourseID: 3,
				Status:   models.EnrollmentStatusActive,
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO enrollments`).
					WithArgs(7, 3, models.EnrollmentStatusActive).
					WillReturnError(errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupEnrollmentTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			err := repo.Create(context.Background(), tt.enrollment)

			if tt.expectedError != nil {
				assert.Error(t, err)
				if errors.Is(tt.expectedError, ErrDuplicateEntry) {
					assert.ErrorIs(t, err, ErrDuplicateEntry)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedID, tt.enrollment.ID)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEnrollmentRepository_HasActive(t *testing.T) {
	tests := []struct {
		name           string
		userID         int
		courseID       int
		setupMock      func(sqlmock.Sqlmock)
		expectedError  bool
		expectedExists bool
	}{
		{
			name:     "active enrollment exists",
			userID:   7,
			courseID: 3,
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"exists"}).AddRow(true)
				mock.ExpectQuery(`SELECT EXISTS`).
					WithArgs(7, 3).
					WillReturnRows(rows)
			},
			expectedExists: true,
		},
		{
			name:     "no enrollment",
			userID:   7,
			courseID: 9,
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"exists"}).AddRow(false)
				mock.ExpectQuery(`SELECT EXISTS`).
					WithArgs(7, 9).
					WillReturnRows(rows)
			},
			expectedExists: false,
		},
		{
			name:     "database error",
			userID:   7,
			courseID: 3,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT EXISTS`).
					WithArgs(7, 3).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupEnrollmentTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			exists, err := repo.HasActive(context.Background(), tt.userID, tt.courseID)

			if tt.expectedError {
				assert.Error(t, err)
				assert.False(t, exists)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedExists, exists)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEnrollmentRepository_GetSummariesByUser(t *testing.T) {
	enrolledAt := time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		repo, mock, cleanup := setupEnrollmentTestRepository(t)
		defer cleanup()

		rows := sqlmock.NewRows([]string{"slug", "title", "status", "total_lessons", "completed_lessons", "created_at"}).
			AddRow("go-fundamentals", "Go Fundamentals", models.EnrollmentStatusActive, 12, 5, enrolledAt).
			AddRow("sql-deep-dive", "SQL Deep Dive", models.EnrollmentStatusActive, 8, 8, enrolledAt)
		mock.ExpectQuery(`SELECT .+ FROM enrollments e`).
			WithArgs(7).
			WillReturnRows(rows)

		summaries, err := repo.GetSummariesByUser(context.Background(), 7)

		require.NoError(t, err)
		require.Len(t, summaries, 2)
		assert.Equal(t, "go-fundamentals", summaries[0].CourseSlug)
		assert.Equal(t, 5, summaries[0].CompletedLessons)
		assert.Equal(t, 8, summaries[1].TotalLessons)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no enrollments", func(t *testing.T) {
		repo, mock, cleanup := setupEnrollmentTestRepository(t)
		defer cleanup()

		rows := sqlmock.NewRows([]string{"slug", "title", "status", "total_lessons", "completed_lessons", "created_at"})
		mock.ExpectQuery(`SELECT .+ FROM enrollments e`).
			WithArgs(7).
			WillReturnRows(rows)

		summaries, err := repo.GetSummariesByUser(context.Background(), 7)

		require.NoError(t, err)
		assert.Empty(t, summaries)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		repo, mock, cleanup := setupEnrollmentTestRepository(t)
		defer cleanup()

		mock.ExpectQuery(`SELECT .+ FROM enrollments e`).
			WithArgs(7).
			WillReturnError(errors.New("database error"))

		summaries, err := repo.GetSummariesByUser(context.Background(), 7)

		assert.Error(t, err)
		assert.Nil(t, summaries)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
