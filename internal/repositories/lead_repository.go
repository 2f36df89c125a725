package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/skillstream/backend/internal/models"
)

// leadRepository implements sales-lead data access
type leadRepository struct {
	db *sql.DB
}

// NewLeadRepository creates a new lead repository
func NewLeadRepository(db *sql.DB) *leadRepository {
	return &leadRepository{
		db: db,
	}
}

// Create inserts a new sales lead
func (r *leadRepository) Create(ctx context.Context, lead *models.SalesLead) error {
	query := `
		INSERT INTO sales_leads (name, email, company, phone, team_size, message)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		lead.Name,
		lead.Email,
		lead.Company,
		lead.Phone,
		lead.TeamSize,
		lead.Message,
	)
	if err != nil {
		return fmt.Errorf("failed to create sales lead: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	lead.ID = int(id)
	return nil
}
