package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/skillstream/backend/internal/models"
)

// courseRepository implements course data access
type courseRepository struct {
	db *sql.DB
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *sql.DB) *courseRepository {
	return &courseRepository{
		db: db,
	}
}

// GetAll retrieves published courses with filtering and pagination
func (r *courseRepository) GetAll(ctx context.Context, level *models.CourseLevel, search string, page, count int) ([]models.CourseListItem, error) {
	whereClauses := []string{"c.published = TRUE"}
	args := []any{}

	if level != nil {
		whereClauses = append(whereClauses, "c.level = ?")
		args = append(args, *level)
	}

	if search != "" {
		whereClauses = append(whereClauses, "c.title LIKE ?")
		args = append(args, "%"+search+"%")
	}

	whereClause := "WHERE " + strings.Join(whereClauses, " AND ")

	// Calculate offset
	offset := (page - 1) * count

	query := fmt.Sprintf(`
		SELECT
			c.slug,
			c.title,
			c.short_summary,
			c.level,
			c.price_cents,
			COUNT(l.id) as total_lessons
		FROM courses c
		LEFT JOIN lessons l ON l.course_id = c.id
		%s
		GROUP BY c.id, c.slug, c.title, c.short_summary, c.level, c.price_cents
		ORDER BY c.id
		LIMIT ? OFFSET ?
	`, whereClause)

	args = append(args, count, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	var courses []models.CourseListItem
	for rows.Next() {
		var course models.CourseListItem
		err := rows.Scan(
			&course.Slug,
			&course.Title,
			&course.ShortSummary,
			&course.Level,
			&course.PriceCents,
			&course.TotalLessons,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return courses, nil
}

// GetBySlug retrieves a published course by its slug
func (r *courseRepository) GetBySlug(ctx context.Context, slug string) (*models.Course, error) {
	query := `
		SELECT id, slug, title, short_summary, level, price_cents, published
		FROM courses
		WHERE slug = ? AND published = TRUE
		LIMIT 1
	`

	var course models.Course
	err := r.db.QueryRowContext(ctx, query, slug).Scan(
		&course.ID,
		&course.Slug,
		&course.Title,
		&course.ShortSummary,
		&course.Level,
		&course.PriceCents,
		&course.Published,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCourseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get course by slug: %w", err)
	}

	return &course, nil
}

// GetDetailBySlug retrieves a course with lesson totals and per-user completion.
// userID 0 means anonymous: completion stays at zero.
func (r *courseRepository) GetDetailBySlug(ctx context.Context, slug string, userID int) (*models.CourseDetailResponse, error) {
	query := `
		SELECT
			c.slug,
			c.title,
			c.short_summary,
			c.level,
			c.price_cents,
			COUNT(DISTINCT l.id) as total_lessons,
			COUNT(DISTINCT wp.lesson_id) as completed_lessons
		FROM courses c
		LEFT JOIN lessons l ON l.course_id = c.id
		LEFT JOIN watch_progress wp ON wp.lesson_id = l.id AND wp.user_id = ? AND wp.completed = TRUE
		WHERE c.slug = ? AND c.published = TRUE
		GROUP BY c.id, c.slug, c.title, c.short_summary, c.level, c.price_cents
		LIMIT 1
	`

	var course models.CourseDetailResponse
	err := r.db.QueryRowContext(ctx, query, userID, slug).Scan(
		&course.Slug,
		&course.Title,
		&course.ShortSummary,
		&course.Level,
		&course.PriceCents,
		&course.TotalLessons,
		&course.CompletedLessons,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCourseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get course detail by slug: %w", err)
	}

	return &course, nil
}

// GetByID retrieves a course by its ID
func (r *courseRepository) GetByID(ctx context.Context, id int) (*models.Course, error) {
	query := `
		SELECT id, slug, title, short_summary, level, price_cents, published
		FROM courses
		WHERE id = ?
		LIMIT 1
	`

	var course models.Course
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&course.ID,
		&course.Slug,
		&course.Title,
		&course.ShortSummary,
		&course.Level,
		&course.PriceCents,
		&course.Published,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCourseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get course by id: %w", err)
	}

	return &course, nil
}
