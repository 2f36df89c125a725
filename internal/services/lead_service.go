package services

import (
	"context"
	"regexp"
	"strings"

	"github.com/skillstream/backend/internal/models"
	"go.uber.org/zap"
)

// LeadRepository is the interface for sales lead data access
type LeadRepository interface {
	Create(ctx context.Context, lead *models.SalesLead) error
}

// phoneRegex accepts digits, spaces, dashes and an optional leading plus
var phoneRegex = regexp.MustCompile(`^\+?[0-9][0-9 \-()]{5,19}$`)

// leadService captures enterprise-sales inquiries
type leadService struct {
	leadRepo LeadRepository
	logger   *zap.Logger
}

// NewLeadService creates a new lead service
func NewLeadService(leadRepo LeadRepository, logger *zap.Logger) *leadService {
	return &leadService{
		leadRepo: leadRepo,
		logger:   logger,
	}
}

// Create validates and stores a contact-form submission
func (s *leadService) Create(ctx context.Context, req *models.CreateLeadRequest) (*models.SalesLead, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(strings.ToLower(req.Email))
	company := strings.TrimSpace(req.Company)
	phone := strings.TrimSpace(req.Phone)

	if name == "" {
		return nil, NewValidationError("name cannot be empty")
	}
	if !emailRegex.MatchString(email) {
		return nil, NewValidationError("invalid email format")
	}
	if company == "" {
		return nil, NewValidationError("company cannot be empty")
	}
	if phone != "" && !phoneRegex.MatchString(phone) {
		return nil, NewValidationError("invalid phone format")
	}
	if req.TeamSize < 0 {
		return nil, NewValidationError("teamSize cannot be negative")
	}

	lead := &models.SalesLead{
		Name:     name,
		Email:    email,
		Company:  company,
		Phone:    phone,
		TeamSize: req.TeamSize,
		Message:  strings.TrimSpace(req.Message),
	}
	if err := s.leadRepo.Create(ctx, lead); err != nil {
		return nil, err
	}

	s.logger.Info("sales lead captured",
		zap.Int("lead_id", lead.ID),
		zap.String("company", lead.Company),
	)

	return lead, nil
}
