package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/skillstream/backend/internal/models"
)

// lessonRepository implements lesson data access
type lessonRepository struct {
	db *sql.DB
}

// NewLessonRepository creates a new lesson repository
func NewLessonRepository(db *sql.DB) *lessonRepository {
	return &lessonRepository{
		db: db,
	}
}

// GetByID retrieves a lesson by its ID
func (r *lessonRepository) GetByID(ctx context.Context, id int) (*models.Lesson, error) {
	query := `
		SELECT id, slug, course_id, COALESCE(media_id, ''), title, position, free_preview
		FROM lessons
		WHERE id = ?
		LIMIT 1
	`

	var lesson models.Lesson
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&lesson.ID,
		&lesson.Slug,
		&lesson.CourseID,
		&lesson.MediaID,
		&lesson.Title,
		&lesson.Position,
		&lesson.FreePreview,
	)

	if err == sql.ErrNoRows {
		return nil, ErrLessonNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get lesson by id: %w", err)
	}

	return &lesson, nil
}

// GetBySlug retrieves a lesson by its slug
func (r *lessonRepository) GetBySlug(ctx context.Context, slug string) (*models.Lesson, error) {
	query := `
		SELECT id, slug, course_id, COALESCE(media_id, ''), title, position, free_preview
		FROM lessons
		WHERE slug = ?
		LIMIT 1
	`

	var lesson models.Lesson
	err := r.db.QueryRowContext(ctx, query, slug).Scan(
		&lesson.ID,
		&lesson.Slug,
		&lesson.CourseID,
		&lesson.MediaID,
		&lesson.Title,
		&lesson.Position,
		&lesson.FreePreview,
	)

	if err == sql.ErrNoRows {
		return nil, ErrLessonNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get lesson by slug: %w", err)
	}

	return &lesson, nil
}

// GetByCourseIDWithCompletion retrieves ordered lessons for a course with
// media readiness and per-user completion. userID 0 means anonymous.
func (r *lessonRepository) GetByCourseIDWithCompletion(ctx context.Context, courseID, userID int) ([]models.LessonListItem, error) {
	query := `
		SELECT
			l.id,
			l.slug,
			l.title,
			l.position,
			l.free_preview,
			COALESCE(m.status = 'ready', FALSE) as media_ready,
			COALESCE(wp.completed, FALSE) as completed
		FROM lessons l
		LEFT JOIN media_assets m ON m.id = l.media_id
		LEFT JOIN watch_progress wp ON wp.lesson_id = l.id AND wp.user_id = ?
		WHERE l.course_id = ?
		ORDER BY l.position
	`

	rows, err := r.db.QueryContext(ctx, query, userID, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lessons: %w", err)
	}
	defer rows.Close()

	var lessons []models.LessonListItem
	for rows.Next() {
		var lesson models.LessonListItem
		err := rows.Scan(
			&lesson.ID,
			&lesson.Slug,
			&lesson.Title,
			&lesson.Position,
			&lesson.FreePreview,
			&lesson.MediaReady,
			&lesson.Completed,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lesson: %w", err)
		}
		lessons = append(lessons, lesson)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return lessons, nil
}
