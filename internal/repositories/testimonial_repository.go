package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/skillstream/backend/internal/models"
)

// testimonialRepository implements testimonial data access
type testimonialRepository struct {
	db *sql.DB
}

// NewTestimonialRepository creates a new testimonial repository
func NewTestimonialRepository(db *sql.DB) *testimonialRepository {
	return &testimonialRepository{
		db: db,
	}
}

// GetPublished retrieves published testimonials, newest first, with pagination
func (r *testimonialRepository) GetPublished(ctx context.Context, page, count int) ([]models.Testimonial, error) {
	offset := (page - 1) * count

	query := `
		SELECT id, author, role_title, company, quote, rating, published, created_at
		FROM testimonials
		WHERE published = TRUE
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?
	`

	rows, err := r.db.QueryContext(ctx, query, count, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query testimonials: %w", err)
	}
	defer rows.Close()

	var testimonials []models.Testimonial
	for rows.Next() {
		var t models.Testimonial
		err := rows.Scan(
			&t.ID,
			&t.Author,
			&t.RoleTitle,
			&t.Company,
			&t.Quote,
			&t.Rating,
			&t.Published,
			&t.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan testimonial: %w", err)
		}
		testimonials = append(testimonials, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return testimonials, nil
}

// Create inserts a new testimonial
func (r *testimonialRepository) Create(ctx context.Context, t *models.Testimonial) error {
	query := `
		INSERT INTO testimonials (author, role_title, company, quote, rating, published)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		t.Author,
		t.RoleTitle,
		t.Company,
		t.Quote,
		t.Rating,
		t.Published,
	)
	if err != nil {
		return fmt.Errorf("failed to create testimonial: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	t.ID = int(id)
	return nil
}
