package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLessonTestRepository(t *testing.T) (*lessonRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewLessonRepository(db)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestLessonRepository_GetByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, mock, cleanup := setupLessonTestRepository(t)
		defer cleanup()

		rows := sqlmock.NewRows([]string{"id", "slug", "course_id", "media_id", "title", "position", "free_preview"}).
			AddRow(21, "goroutines-intro", 3, "med_9f2c", "Introduction to Goroutines", 1, true)
		mock.ExpectQuery(`SELECT id, slug, course_id, COALESCE`).
			WithArgs(21).
			WillReturnRows(rows)

		lesson, err := repo.GetByID(context.Background(), 21)

		require.NoError(t, err)
		assert.Equal(t, 21, lesson.ID)
		assert.Equal(t, "med_9f2c", lesson.MediaID)
		assert.True(t, lesson.FreePreview)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("lesson without media", func(t *testing.T) {
		repo, mock, cleanup := setupLessonTestRepository(t)
		defer cleanup()

		rows := sqlmock.NewRows([]string{"id", "slug", "course_id", "media_id", "title", "position", "free_preview"}).
			AddRow(22, "channels-deep-dive", 3, "", "Channels Deep Dive", 2, false)
		mock.ExpectQuery(`SELECT id, slug, course_id, COALESCE`).
			WithArgs(22).
			WillReturnRows(rows)

		lesson, err := repo.GetByID(context.Background(), 22)

		require.NoError(t, err)
		assert.Empty(t, lesson.MediaID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock, cleanup := setupLessonTestRepository(t)
		defer cleanup()

		mock.ExpectQuery(`SELECT id, slug, course_id, COALESCE`).
			WithArgs(999).
			WillReturnError(sql.ErrNoRows)

		lesson, err := repo.GetByID(context.Background(), 999)

		assert.ErrorIs(t, err, ErrLessonNotFound)
		assert.Nil(t, lesson)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLessonRepository_GetByCourseIDWithCompletion(t *testing.T) {
	columns := []string{"id", "slug", "title", "position", "free_preview", "media_ready", "completed"}

	t.Run("ordered lessons with completion", func(t *testing.T) {
		repo, mock, cleanup := setupLessonTestRepository(t)
		defer cleanup()

		rows := sqlmock.NewRows(columns).
			AddRow(21, "goroutines-intro", "Introduction to Goroutines", 1, true, true, true).
			AddRow(22, "channels-deep-dive", "Channels Deep Dive", 2, false, true, false).
			AddRow(23, "select-patterns", "Select Patterns", 3, false, false, false)
		mock.ExpectQuery(`FROM lessons l`).
			WithArgs(7, 3).
			WillReturnRows(rows)

		lessons, err := repo.GetByCourseIDWithCompletion(context.Background(), 3, 7)

		require.NoError(t, err)
		require.Len(t, lessons, 3)
		assert.True(t, lessons[0].Completed)
		assert.False(t, lessons[1].Completed)
		assert.False(t, lessons[2].MediaReady)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("anonymous user", func(t *testing.T) {
		repo, mock, cleanup := setupLessonTestRepository(t)
		defer cleanup()

		rows := sqlmock.NewRows(columns).
			AddRow(21, "goroutines-intro", "Introduction to Goroutines", 1, true, true, false)
		mock.ExpectQuery(`FROM lessons l`).
			WithArgs(0, 3).
			WillReturnRows(rows)

		lessons, err := repo.GetByCourseIDWithCompletion(context.Background(), 3, 0)

		require.NoError(t, err)
		require.Len(t, lessons, 1)
		assert.False(t, lessons[0].Completed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		repo, mock, cleanup := setupLessonTestRepository(t)
		defer cleanup()

		mock.ExpectQuery(`FROM lessons l`).
			WithArgs(7, 3).
			WillReturnError(errors.New("database error"))

		lessons, err := repo.GetByCourseIDWithCompletion(context.Background(), 3, 7)

		assert.Error(t, err)
		assert.Nil(t, lessons)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
