package services

import (
	"context"
	"strings"

	"github.com/skillstream/backend/internal/models"
)

// TestimonialRepository is the interface for testimonial data access
type TestimonialRepository interface {
	GetPublished(ctx context.Context, page, count int) ([]models.Testimonial, error)
	Create(ctx context.Context, t *models.Testimonial) error
}

// testimonialService serves marketing-page testimonials
type testimonialService struct {
	testimonialRepo TestimonialRepository
}

// NewTestimonialService creates a new testimonial service
func NewTestimonialService(testimonialRepo TestimonialRepository) *testimonialService {
	return &testimonialService{testimonialRepo: testimonialRepo}
}

// ListPublished returns published testimonials, newest first
func (s *testimonialService) ListPublished(ctx context.Context, page, count int) ([]models.Testimonial, error) {
	if page < 1 {
		page = 1
	}
	if count < 1 || count > 50 {
		count = 10
	}
	return s.testimonialRepo.GetPublished(ctx, page, count)
}

// Create stores a testimonial from the content pipeline
func (s *testimonialService) Create(ctx context.Context, req *models.CreateTestimonialRequest) (*models.Testimonial, error) {
	if strings.TrimSpace(req.Author) == "" {
		return nil, NewValidationError("author cannot be empty")
	}
	if strings.TrimSpace(req.Quote) == "" {
		return nil, NewValidationError("quote cannot be empty")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, NewValidationError("rating must be between 1 and 5")
	}

	testimonial := &models.Testimonial{
		Author:    strings.TrimSpace(req.Author),
		RoleTitle: strings.TrimSpace(req.RoleTitle),
		Company:   strings.TrimSpace(req.Company),
		Quote:     strings.TrimSpace(req.Quote),
		Rating:    req.Rating,
		Published: req.Published,
	}
	if err := s.testimonialRepo.Create(ctx, testimonial); err != nil {
		return nil, err
	}

	return testimonial, nil
}
