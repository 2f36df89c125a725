package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/skillstream/backend/internal/models"
)

// enrollmentRepository implements enrollment data access
type enrollmentRepository struct {
	db *sql.DB
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *sql.DB) *enrollmentRepository {
	return &enrollmentRepository{
		db: db,
	}
}

// Create inserts a new active enrollment
func (r *enrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	query := `
		INSERT INTO enrollments (user_id, course_id, status)
		VALUES (?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		enrollment.UserID,
		enrollment.CourseID,
		enrollment.Status,
	)
	if err != nil {
		// uq_enrollments_user_course guards one enrollment per user and course
		if strings.Contains(err.Error(), "Duplicate entry") {
			return ErrDuplicateEntry
		}
		return fmt.Errorf("failed to create enrollment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	enrollment.ID = int(id)
	return nil
}

// HasActive checks if the user holds an active enrollment in the course
func (r *enrollmentRepository) HasActive(ctx context.Context, userID, courseID int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM enrollments WHERE user_id = ? AND course_id = ? AND status = 'active')`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, userID, courseID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check enrollment: %w", err)
	}

	return exists, nil
}

// GetSummariesByUser retrieves the user's enrollments with per-course progress
func (r *enrollmentRepository) GetSummariesByUser(ctx context.Context, userID int) ([]models.EnrollmentSummary, error) {
	query := `
		SELECT
			c.slug,
			c.title,
			e.status,
			COUNT(DISTINCT l.id) as total_lessons,
			COUNT(DISTINCT wp.lesson_id) as completed_lessons,
			e.created_at
		FROM enrollments e
		JOIN courses c ON c.id = e.course_id
		LEFT JOIN lessons l ON l.course_id = c.id
		LEFT JOIN watch_progress wp ON wp.lesson_id = l.id AND wp.user_id = e.user_id AND wp.completed = TRUE
		WHERE e.user_id = ?
		GROUP BY e.id, c.slug, c.title, e.status, e.created_at
		ORDER BY e.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query enrollments: %w", err)
	}
	defer rows.Close()

	var summaries []models.EnrollmentSummary
	for rows.Next() {
		var summary models.EnrollmentSummary
		err := rows.Scan(
			&summary.CourseSlug,
			&summary.CourseTitle,
			&summary.Status,
			&summary.TotalLessons,
			&summary.CompletedLessons,
			&summary.EnrolledAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan enrollment: %w", err)
		}
		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return summaries, nil
}
