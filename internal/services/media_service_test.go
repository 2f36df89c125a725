package services

import (
	"context"
	"errors"
	"testing"

	"github.com/skillstream/backend/internal/models"
	"github.com/skillstream/backend/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockMediaRepository is a mock implementation of MediaRepository
type mockMediaRepository struct {
	created   *models.MediaAsset
	createErr error
	asset     *models.MediaAsset
	getErr    error
	updateErr error
}

func (m *mockMediaRepository) Create(ctx context.Context, asset *models.MediaAsset) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = asset
	return nil
}

func (m *mockMediaRepository) GetByID(ctx context.Context, id string) (*models.MediaAsset, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.asset, nil
}

func (m *mockMediaRepository) UpdateStatus(ctx context.Context, id string, status models.MediaStatus) error {
	return m.updateErr
}

func TestMediaService_Register_Success(t *testing.T) {
	repo := &mockMediaRepository{}
	svc := NewMediaService(repo, zap.NewNop())

	asset, err := svc.Register(context.Background(), &models.RegisterMediaRequest{
		PlaybackKey:     "  lessons/go-basics-01  ",
		DurationSeconds: 845,
	})

	require.NoError(t, err)
	require.NotNil(t, asset)
	assert.NotEmpty(t, asset.ID)
	assert.Equal(t, "lessons/go-basics-01", asset.PlaybackKey)
	assert.Equal(t, models.MediaStatusProcessing, asset.Status)
	require.NotNil(t, repo.created)
	assert.Equal(t, asset.ID, repo.created.ID)
}

func TestMediaService_Register_DuplicatePlaybackKey(t *testing.T) {
	repo := &mockMediaRepository{createErr: repositories.ErrDuplicateEntry}
	svc := NewMediaService(repo, zap.NewNop())

	asset, err := svc.Register(context.Background(), &models.RegisterMediaRequest{
		PlaybackKey:     "lessons/go-basics-01",
		DurationSeconds: 845,
	})

	assert.Nil(t, asset)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "playbackKey is already registered", validationErr.Message)
}

func TestMediaService_Register_RepositoryFailure(t *testing.T) {
	dbErr := errors.New("database error")
	repo := &mockMediaRepository{createErr: dbErr}
	svc := NewMediaService(repo, zap.NewNop())

	asset, err := svc.Register(context.Background(), &models.RegisterMediaRequest{
		PlaybackKey:     "lessons/go-basics-01",
		DurationSeconds: 845,
	})

	assert.Nil(t, asset)
	require.Error(t, err)
	var validationErr *ValidationError
	assert.False(t, errors.As(err, &validationErr))
	assert.ErrorIs(t, err, dbErr)
}

func TestMediaService_Register_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  *models.RegisterMediaRequest
	}{
		{
			name: "empty playback key",
			req:  &models.RegisterMediaRequest{PlaybackKey: "   ", DurationSeconds: 845},
		},
		{
			name: "non positive duration",
			req:  &models.RegisterMediaRequest{PlaybackKey: "lessons/go-basics-01", DurationSeconds: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMediaService(&mockMediaRepository{}, zap.NewNop())

			asset, err := svc.Register(context.Background(), tt.req)

			assert.Nil(t, asset)
			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestMediaService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name          string
		status        models.MediaStatus
		repoErr       error
		expectedError error
	}{
		{
			name:   "processing to ready",
			status: models.MediaStatusReady,
		},
		{
			name:          "unknown asset",
			status:        models.MediaStatusReady,
			repoErr:       repositories.ErrMediaNotFound,
			expectedError: ErrMediaNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockMediaRepository{updateErr: tt.repoErr}
			svc := NewMediaService(repo, zap.NewNop())

			err := svc.UpdateStatus(context.Background(), "asset-123", tt.status)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMediaService_UpdateStatus_InvalidStatus(t *testing.T) {
	svc := NewMediaService(&mockMediaRepository{}, zap.NewNop())

	err := svc.UpdateStatus(context.Background(), "asset-123", models.MediaStatus("archived"))

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}
