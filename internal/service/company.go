package service

import (
	"errors"
	"fmt"
	"time"

	"askhub/internal/database/models"
	apperrors "askhub/internal/errors"
	"askhub/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// CompanyService handles business logic for companies (tenants)
type CompanyService struct {
	repo      repository.CompanyRepositoryInterface
	validator *validator.Validate
}

// Ensure CompanyService implements CompanyServiceInterface
var _ CompanyServiceInterface = (*CompanyService)(nil)

// NewCompanyService creates a new company service
func NewCompanyService(repo repository.CompanyRepositoryInterface, validator *validator.Validate) *CompanyService {
	return &CompanyService{
		repo:      repo,
		validator: validator,
	}
}

// CreateCompanyRequest represents the request to create a company
type CreateCompanyRequest struct {
	Name               string `json:"name" validate:"required,min=1,max=200"`
	Slug               string `json:"slug" validate:"required,min=1,max=100"`
	Logo               string `json:"logo,omitempty" validate:"omitempty,max=500"`
	PrimaryColor       string `json:"primaryColor,omitempty"`
	SecondaryColor     string `json:"secondaryColor,omitempty"`
	IsPro              bool   `json:"isPro,omitempty"`
	SubscriptionStatus string `json:"subscriptionStatus,omitempty" validate:"omitempty,oneof=active inactive trial"`
}

// CompanyResponse represents the response for company operations
type CompanyResponse struct {
	ID                 uint      `json:"id"`
	Name               string    `json:"name"`
	Slug               string    `json:"slug"`
	Logo               string    `json:"logo"`
	PrimaryColor       string    `json:"primaryColor"`
	SecondaryColor     string    `json:"secondaryColor"`
	IsPro              bool      `json:"isPro"`
	SubscriptionStatus string    `json:"subscriptionStatus"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// Create creates a new company
func (s *CompanyService) Create(req *CreateCompanyRequest) (*CompanyResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Check if a company with the same slug exists
	existing, err := s.repo.GetBySlug(req.Slug)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing company by slug: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrCompanySlugExists
	}

	company := &models.Company{
		Name:               req.Name,
		Slug:               req.Slug,
		Logo:               req.Logo,
		PrimaryColor:       req.PrimaryColor,
		SecondaryColor:     req.SecondaryColor,
		IsPro:              req.IsPro,
		SubscriptionStatus: models.SubscriptionStatus(req.SubscriptionStatus),
	}

	// Defaults mirror the column defaults so the response matches a re-read
	if company.PrimaryColor == "" {
		company.PrimaryColor = "#2563eb"
	}
	if company.SecondaryColor == "" {
		company.SecondaryColor = "#1e40af"
	}
	if company.SubscriptionStatus == "" {
		company.SubscriptionStatus = models.SubscriptionTrial
	}

	if err := s.repo.Create(company); err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	return s.toResponse(company), nil
}

// GetBySlug retrieves a company by its URL slug
func (s *CompanyService) GetBySlug(slug string) (*CompanyResponse, error) {
	company, err := s.repo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	return s.toResponse(company), nil
}

// toResponse converts a Company model to API response
func (s *CompanyService) toResponse(company *models.Company) *CompanyResponse {
	return &CompanyResponse{
		ID:                 company.ID,
		Name:               company.Name,
		Slug:               company.Slug,
		Logo:               company.Logo,
		PrimaryColor:       company.PrimaryColor,
		SecondaryColor:     company.SecondaryColor,
		IsPro:              company.IsPro,
		SubscriptionStatus: string(company.SubscriptionStatus),
		CreatedAt:          company.CreatedAt,
		UpdatedAt:          company.UpdatedAt,
	}
}
