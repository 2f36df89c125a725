package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/skillstream/backend/internal/models"
)

// progressRepository implements watch-progress data access
type progressRepository struct {
	db *sql.DB
}

// NewProgressRepository creates a new progress repository
func NewProgressRepository(db *sql.DB) *progressRepository {
	return &progressRepository{
		db: db,
	}
}

// Upsert writes a user's playback position for a lesson.
// Completion is sticky: once a row is completed it never reverts.
func (r *progressRepository) Upsert(ctx context.Context, progress *models.WatchProgress) error {
	query := `
		INSERT INTO watch_progress (user_id, lesson_id, position_seconds, duration_seconds, completed)
		VALUES (?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			position_seconds = VALUES(position_seconds),
			duration_seconds = VALUES(duration_seconds),
			completed = completed OR VALUES(completed)
	`

	_, err := r.db.ExecContext(ctx, query,
		progress.UserID,
		progress.LessonID,
		progress.PositionSeconds,
		progress.DurationSeconds,
		progress.Completed,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert watch progress: %w", err)
	}

	return nil
}

// Get retrieves a user's progress for a lesson
func (r *progressRepository) Get(ctx context.Context, userID, lessonID int) (*models.WatchProgress, error) {
	query := `
		SELECT user_id, lesson_id, position_seconds, duration_seconds, completed, updated_at
		FROM watch_progress
		WHERE user_id = ? AND lesson_id = ?
		LIMIT 1
	`

	progress := &models.WatchProgress{}
	err := r.db.QueryRowContext(ctx, query, userID, lessonID).Scan(
		&progress.UserID,
		&progress.LessonID,
		&progress.PositionSeconds,
		&progress.DurationSeconds,
		&progress.Completed,
		&progress.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrProgressNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get watch progress: %w", err)
	}

	return progress, nil
}
