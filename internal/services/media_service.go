package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/skillstream/backend/internal/models"
	"github.com/skillstream/backend/internal/repositories"
	"go.uber.org/zap"
)

// MediaRepository is the interface for media asset data access
type MediaRepository interface {
	Create(ctx context.Context, asset *models.MediaAsset) error
	GetByID(ctx context.Context, id string) (*models.MediaAsset, error)
	UpdateStatus(ctx context.Context, id string, status models.MediaStatus) error
}

// mediaService manages assets registered by the packaging pipeline
type mediaService struct {
	mediaRepo MediaRepository
	logger    *zap.Logger
}

// NewMediaService creates a new media service
func NewMediaService(mediaRepo MediaRepository, logger *zap.Logger) *mediaService {
	return &mediaService{
		mediaRepo: mediaRepo,
		logger:    logger,
	}
}

// Register records a new asset. Status starts as processing until the
// packager reports otherwise.
func (s *mediaService) Register(ctx context.Context, req *models.RegisterMediaRequest) (*models.MediaAsset, error) {
	if strings.TrimSpace(req.PlaybackKey) == "" {
		return nil, NewValidationError("playbackKey cannot be empty")
	}
	if req.DurationSeconds <= 0 {
		return nil, NewValidationError("durationSeconds must be positive")
	}

	asset := &models.MediaAsset{
		ID:              uuid.NewString(),
		PlaybackKey:     strings.TrimSpace(req.PlaybackKey),
		DurationSeconds: req.DurationSeconds,
		Status:          models.MediaStatusProcessing,
	}
	if err := s.mediaRepo.Create(ctx, asset); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEntry) {
			return nil, NewValidationError("playbackKey is already registered")
		}
		return nil, err
	}

	s.logger.Info("media asset registered",
		zap.String("media_id", asset.ID),
		zap.String("playback_key", asset.PlaybackKey),
	)

	return asset, nil
}

// Get returns asset metadata
func (s *mediaService) Get(ctx context.Context, id string) (*models.MediaAsset, error) {
	asset, err := s.mediaRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrMediaNotFound) {
			return nil, ErrMediaNotFound
		}
		return nil, err
	}
	return asset, nil
}

// UpdateStatus moves an asset out of processing
func (s *mediaService) UpdateStatus(ctx context.Context, id string, status models.MediaStatus) error {
	if !models.ValidMediaStatus(status) {
		return NewValidationError("status must be processing, ready or failed")
	}

	if err := s.mediaRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repositories.ErrMediaNotFound) {
			return ErrMediaNotFound
		}
		return err
	}

	s.logger.Info("media status updated",
		zap.String("media_id", id),
		zap.String("status", string(status)),
	)

	return nil
}
