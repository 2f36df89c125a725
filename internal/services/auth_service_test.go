package services

import (
	"context"
	"testing"
	"time"

	"github.com/skillstream/backend/internal/auth/service"
	"github.com/skillstream/backend/internal/models"
	"github.com/skillstream/backend/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// mockUserRepository is a mock implementation of UserRepository
type mockUserRepository struct {
	user           *models.User
	emailExists    bool
	usernameExists bool
	err            error
	created        *models.User
}

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.err != nil {
		return m.err
	}
	user.ID = 7
	m.created = user
	return nil
}

func (m *mockUserRepository) GetByEmailOrUsername(ctx context.Context, login string) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.user == nil {
		return nil, repositories.ErrUserNotFound
	}
	return m.user, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.GetByEmailOrUsername(ctx, email)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	return m.GetByEmailOrUsername(ctx, "")
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return m.emailExists, m.err
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return m.usernameExists, m.err
}

// mockUserTokenRepository is a mock implementation of UserTokenRepository
type mockUserTokenRepository struct {
	token   *models.UserToken
	err     error
	deleted []string
}

func (m *mockUserTokenRepository) Create(ctx context.Context, userToken *models.UserToken) error {
	return m.err
}

func (m *mockUserTokenRepository) GetByToken(ctx context.Context, token string) (*models.UserToken, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.token == nil {
		return nil, repositories.ErrTokenNotFound
	}
	return m.token, nil
}

func (m *mockUserTokenRepository) UpdateToken(ctx context.Context, oldToken, newToken string, userID int) error {
	return m.err
}

func (m *mockUserTokenRepository) DeleteByToken(ctx context.Context, token string) error {
	m.deleted = append(m.deleted, token)
	return m.err
}

func testTokenGenerator() *service.TokenGenerator {
	return service.NewTokenGenerator("test-secret-key", 15*time.Minute, 7*24*time.Hour)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		request       *models.RegisterRequest
		userRepo      *mockUserRepository
		expectedError error
	}{
		{
			name: "success",
			request: &models.RegisterRequest{
				Email:    "Dev@Example.com",
				Username: "gopher",
				Password: "Str0ngPass",
			},
			userRepo: &mockUserRepository{},
		},
		{
			name: "email taken",
			request: &models.RegisterRequest{
				Email:    "dev@example.com",
				Username: "gopher",
				Password: "Str0ngPass",
			},
			userRepo:      &mockUserRepository{emailExists: true},
			expectedError: ErrAlreadyRegistered,
		},
		{
			name: "username taken",
			request: &models.RegisterRequest{
				Email:    "dev@example.com",
				Username: "gopher",
				Password: "Str0ngPass",
			},
			userRepo:      &mockUserRepository{usernameExists: true},
			expectedError: ErrAlreadyRegistered,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAuthService(tt.userRepo, &mockUserTokenRepository{}, testTokenGenerator(), zap.NewNop())

			access, refresh, err := svc.Register(context.Background(), tt.request)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, access)
			assert.NotEmpty(t, refresh)
			require.NotNil(t, tt.userRepo.created)
			assert.Equal(t, "dev@example.com", tt.userRepo.created.Email, "email should be normalized")
			assert.NotEqual(t, "Str0ngPass", tt.userRepo.created.PasswordHash)
		})
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	tests := []struct {
		name    string
		request *models.RegisterRequest
	}{
		{"invalid email", &models.RegisterRequest{Email: "nope", Username: "gopher", Password: "Str0ngPass"}},
		{"empty username", &models.RegisterRequest{Email: "dev@example.com", Username: " ", Password: "Str0ngPass"}},
		{"short password", &models.RegisterRequest{Email: "dev@example.com", Username: "gopher", Password: "Ab1"}},
		{"no uppercase", &models.RegisterRequest{Email: "dev@example.com", Username: "gopher", Password: "weakpass1"}},
		{"no digit", &models.RegisterRequest{Email: "dev@example.com", Username: "gopher", Password: "WeakPassword"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAuthService(&mockUserRepository{}, &mockUserTokenRepository{}, testTokenGenerator(), zap.NewNop())

			_, _, err := svc.Register(context.Background(), tt.request)

			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte("Str0ngPass"), bcrypt.DefaultCost)
	require.NoError(t, err)

	existing := &models.User{
		ID:           7,
		Username:     "gopher",
		Email:        "dev@example.com",
		PasswordHash: string(passwordHash),
		Role:         models.RoleUser,
	}

	t.Run("success", func(t *testing.T) {
		svc := NewAuthService(&mockUserRepository{user: existing}, &mockUserTokenRepository{}, testTokenGenerator(), zap.NewNop())

		access, refresh, err := svc.Login(context.Background(), &models.LoginRequest{Login: "gopher", Password: "Str0ngPass"})

		require.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc := NewAuthService(&mockUserRepository{user: existing}, &mockUserTokenRepository{}, testTokenGenerator(), zap.NewNop())

		_, _, err := svc.Login(context.Background(), &models.LoginRequest{Login: "gopher", Password: "WrongPass1"})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc := NewAuthService(&mockUserRepository{}, &mockUserTokenRepository{}, testTokenGenerator(), zap.NewNop())

		_, _, err := svc.Login(context.Background(), &models.LoginRequest{Login: "ghost", Password: "Str0ngPass"})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("empty login", func(t *testing.T) {
		svc := NewAuthService(&mockUserRepository{user: existing}, &mockUserTokenRepository{}, testTokenGenerator(), zap.NewNop())

		_, _, err := svc.Login(context.Background(), &models.LoginRequest{Login: " ", Password: "Str0ngPass"})

		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	existing := &models.User{ID: 7, Username: "gopher", Email: "dev@example.com", Role: models.RoleUser}

	t.Run("success rotates pair", func(t *testing.T) {
		generator := testTokenGenerator()
		_, refreshToken, err := generator.GenerateTokens(7, "dev@example.com", int(models.RoleUser))
		require.NoError(t, err)

		tokenRepo := &mockUserTokenRepository{token: &models.UserToken{ID: 1, UserID: 7, RefreshToken: refreshToken}}
		svc := NewAuthService(&mockUserRepository{user: existing}, tokenRepo, generator, zap.NewNop())

		access, newRefresh, err := svc.Refresh(context.Background(), refreshToken)

		require.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, newRefresh)
		assert.NotEqual(t, refreshToken, newRefresh)
	})

	t.Run("garbage token", func(t *testing.T) {
		tokenRepo := &mockUserTokenRepository{}
		svc := NewAuthService(&mockUserRepository{user: existing}, tokenRepo, testTokenGenerator(), zap.NewNop())

		_, _, err := svc.Refresh(context.Background(), "garbage")

		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.Contains(t, tokenRepo.deleted, "garbage")
	})

	t.Run("valid token unknown to database", func(t *testing.T) {
		generator := testTokenGenerator()
		_, refreshToken, err := generator.GenerateTokens(7, "dev@example.com", int(models.RoleUser))
		require.NoError(t, err)

		svc := NewAuthService(&mockUserRepository{user: existing}, &mockUserTokenRepository{}, generator, zap.NewNop())

		_, _, err = svc.Refresh(context.Background(), refreshToken)

		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestAuthService_Logout(t *testing.T) {
	tokenRepo := &mockUserTokenRepository{}
	svc := NewAuthService(&mockUserRepository{}, tokenRepo, testTokenGenerator(), zap.NewNop())

	err := svc.Logout(context.Background(), " some-refresh-token ")

	require.NoError(t, err)
	assert.Equal(t, []string{"some-refresh-token"}, tokenRepo.deleted)
}
