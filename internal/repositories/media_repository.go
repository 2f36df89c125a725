package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/skillstream/backend/internal/models"
)

// mediaRepository implements media asset data access
type mediaRepository struct {
	db *sql.DB
}

// NewMediaRepository creates a new media repository
func NewMediaRepository(db *sql.DB) *mediaRepository {
	return &mediaRepository{
		db: db,
	}
}

// Create inserts a new media asset record into the database
func (r *mediaRepository) Create(ctx context.Context, asset *models.MediaAsset) error {
	query := `
		INSERT INTO media_assets (id, playback_key, duration_seconds, status)
		VALUES (?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		asset.ID,
		asset.PlaybackKey,
		asset.DurationSeconds,
		asset.Status,
	)
	if err != nil {
		// uq_media_assets_playback_key guards one asset per playback key
		if strings.Contains(err.Error(), "Duplicate entry") {
			return ErrDuplicateEntry
		}
		return fmt.Errorf("failed to create media asset: %w", err)
	}

	return nil
}

// GetByID retrieves a media asset by ID
func (r *mediaRepository) GetByID(ctx context.Context, id string) (*models.MediaAsset, error) {
	query := `
		SELECT id, playback_key, duration_seconds, status, created_at
		FROM media_assets
		WHERE id = ?
		LIMIT 1
	`

	asset := &models.MediaAsset{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&asset.ID,
		&asset.PlaybackKey,
		&asset.DurationSeconds,
		&asset.Status,
		&asset.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrMediaNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get media asset by id: %w", err)
	}

	return asset, nil
}

// UpdateStatus transitions a media asset's processing status
func (r *mediaRepository) UpdateStatus(ctx context.Context, id string, status models.MediaStatus) error {
	query := `UPDATE media_assets SET status = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update media status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrMediaNotFound
	}

	return nil
}
