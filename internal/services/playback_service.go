package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/skillstream/backend/internal/models"
	"github.com/skillstream/backend/internal/ratelimit"
	"github.com/skillstream/backend/internal/repositories"
	"go.uber.org/zap"
)

// PlaybackRoute is the rate limit bucket for the token endpoint
const PlaybackRoute = "playback-token"

// UserByEmailRepository resolves session claims to a user record
type UserByEmailRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// LessonReader is the interface for lesson lookups
type LessonReader interface {
	GetByID(ctx context.Context, id int) (*models.Lesson, error)
}

// MediaReader is the interface for media asset lookups
type MediaReader interface {
	GetByID(ctx context.Context, id string) (*models.MediaAsset, error)
}

// EnrollmentChecker reports whether a user holds an active enrollment
type EnrollmentChecker interface {
	HasActive(ctx context.Context, userID, courseID int) (bool, error)
}

// RateLimiter meters playback-token requests per user
type RateLimiter interface {
	Check(ctx context.Context, userID int, route string) (ratelimit.Result, error)
}

// URLSigner mints signed manifest URLs
type URLSigner interface {
	SignManifestURL(mediaID string, lessonID, userID int, playbackKey string) (string, time.Time, error)
}

// AuditLogger records security-relevant playback events
type AuditLogger interface {
	UnauthorizedAccess(actor int, mediaID string, lessonID int, reason, ip, userAgent string)
	ExcessiveTokenRequests(actor int, route string, count int, ip, userAgent string)
}

// TokenRequest carries everything the handler extracted from the HTTP
// request. The body is parsed once in the handler; LessonID arrives
// here as the raw string from the wire.
type TokenRequest struct {
	Email     string
	MediaID   string
	LessonID  string
	ClientIP  string
	UserAgent string
}

// TokenGrant is a successfully minted playback token
type TokenGrant struct {
	SignedURL string
	ExpiresAt time.Time
}

// playbackService issues signed playback URLs for enrolled users
type playbackService struct {
	userRepo       UserByEmailRepository
	lessonRepo     LessonReader
	mediaRepo      MediaReader
	enrollmentRepo EnrollmentChecker
	limiter        RateLimiter
	signer         URLSigner
	audit          AuditLogger
	logger         *zap.Logger
}

// NewPlaybackService creates a new playback token service
func NewPlaybackService(
	userRepo UserByEmailRepository,
	lessonRepo LessonReader,
	mediaRepo MediaReader,
	enrollmentRepo EnrollmentChecker,
	limiter RateLimiter,
	signer URLSigner,
	audit AuditLogger,
	logger *zap.Logger,
) *playbackService {
	return &playbackService{
		userRepo:       userRepo,
		lessonRepo:     lessonRepo,
		mediaRepo:      mediaRepo,
		enrollmentRepo: enrollmentRepo,
		limiter:        limiter,
		signer:         signer,
		audit:          audit,
		logger:         logger,
	}
}

// IssueToken runs the full authorization pipeline for a playback token.
// The rate limit result is returned whenever the limiter was consulted,
// even on failure, so the handler can always set X-RateLimit headers.
func (s *playbackService) IssueToken(ctx context.Context, req *TokenRequest) (*TokenGrant, *ratelimit.Result, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, fmt.Errorf("failed to resolve user: %w", err)
	}

	rate, err := s.limiter.Check(ctx, user.ID, PlaybackRoute)
	if err != nil {
		// The limiter is authoritative. If Redis is down we refuse
		// rather than serve unmetered tokens.
		return nil, nil, fmt.Errorf("rate limit check failed: %w", err)
	}
	if !rate.Allowed {
		s.audit.ExcessiveTokenRequests(user.ID, PlaybackRoute, rate.Count, req.ClientIP, req.UserAgent)
		return nil, &rate, ErrRateLimited
	}

	if req.LessonID == "" {
		return nil, &rate, ErrMissingLessonID
	}

	lessonID, err := strconv.Atoi(req.LessonID)
	if err != nil {
		return nil, &rate, ErrLessonNotFound
	}

	lesson, err := s.lessonRepo.GetByID(ctx, lessonID)
	if err != nil {
		if errors.Is(err, repositories.ErrLessonNotFound) {
			return nil, &rate, ErrLessonNotFound
		}
		return nil, &rate, fmt.Errorf("failed to get lesson: %w", err)
	}

	if lesson.MediaID == "" {
		return nil, &rate, ErrMediaNotFound
	}

	if lesson.MediaID != req.MediaID {
		return nil, &rate, ErrMediaMismatch
	}

	enrolled, err := s.enrollmentRepo.HasActive(ctx, user.ID, lesson.CourseID)
	if err != nil {
		return nil, &rate, fmt.Errorf("enrollment check failed: %w", err)
	}
	if !enrolled {
		s.audit.UnauthorizedAccess(user.ID, req.MediaID, lesson.ID, "NOT_ENROLLED", req.ClientIP, req.UserAgent)
		return nil, &rate, ErrNotEnrolled
	}

	media, err := s.mediaRepo.GetByID(ctx, req.MediaID)
	if err != nil {
		if errors.Is(err, repositories.ErrMediaNotFound) {
			return nil, &rate, ErrMediaNotFound
		}
		return nil, &rate, fmt.Errorf("failed to get media asset: %w", err)
	}
	if media.Status != models.MediaStatusReady {
		return nil, &rate, ErrMediaNotReady
	}

	signedURL, expiresAt, err := s.signer.SignManifestURL(media.ID, lesson.ID, user.ID, media.PlaybackKey)
	if err != nil {
		return nil, &rate, fmt.Errorf("failed to sign playback url: %w", err)
	}

	s.logger.Info("playback token issued",
		zap.Int("user_id", user.ID),
		zap.String("media_id", media.ID),
		zap.Int("lesson_id", lesson.ID),
		zap.Time("expires_at", expiresAt),
	)

	return &TokenGrant{SignedURL: signedURL, ExpiresAt: expiresAt}, &rate, nil
}
