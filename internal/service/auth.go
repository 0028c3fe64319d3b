package service

import (
	"errors"
	"fmt"
	"time"

	"askhub/internal/database/models"
	"askhub/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// AuthService handles the Google sign-in identity round trip.
// There is no credential verification here: the endpoint is an idempotent
// find-or-create keyed by email, matching the legacy platform behavior.
type AuthService struct {
	repo      repository.UserRepositoryInterface
	validator *validator.Validate
}

// Ensure AuthService implements AuthServiceInterface
var _ AuthServiceInterface = (*AuthService)(nil)

// NewAuthService creates a new auth service
func NewAuthService(repo repository.UserRepositoryInterface, validator *validator.Validate) *AuthService {
	return &AuthService{
		repo:      repo,
		validator: validator,
	}
}

// GoogleSignInRequest represents the profile posted after a Google sign-in
type GoogleSignInRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Name      string `json:"name" validate:"required,min=1,max=200"`
	Picture   string `json:"picture,omitempty" validate:"omitempty,max=500"`
	GoogleID  string `json:"googleId,omitempty" validate:"omitempty,max=100"`
	CompanyID *uint  `json:"companyId,omitempty"`
}

// UserResponse represents the response for identity operations
type UserResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Picture   string    `json:"picture"`
	GoogleID  string    `json:"googleId"`
	Role      string    `json:"role"`
	CompanyID *uint     `json:"companyId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// GoogleSignIn finds the user by email or creates one from the provided
// profile. Always returns the resulting record.
func (s *AuthService) GoogleSignIn(req *GoogleSignInRequest) (*UserResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up user by email: %w", err)
	}
	if existing != nil {
		return s.toResponse(existing), nil
	}

	user := &models.User{
		Email:     req.Email,
		Name:      req.Name,
		Picture:   req.Picture,
		GoogleID:  req.GoogleID,
		Role:      models.UserRoleUser,
		CompanyID: req.CompanyID,
	}

	if err := s.repo.Create(user); err != nil {
		// Lost a create race: another request inserted the same email first.
		// Re-read so the operation stays idempotent.
		if retry, retryErr := s.repo.GetByEmail(req.Email); retryErr == nil {
			return s.toResponse(retry), nil
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.toResponse(user), nil
}

// toResponse converts a User model to API response
func (s *AuthService) toResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Picture:   user.Picture,
		GoogleID:  user.GoogleID,
		Role:      string(user.Role),
		CompanyID: user.CompanyID,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
