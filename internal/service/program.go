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

// ProgramService handles business logic for programs (question topics)
type ProgramService struct {
	repo      repository.ProgramRepositoryInterface
	validator *validator.Validate
}

// Ensure ProgramService implements ProgramServiceInterface
var _ ProgramServiceInterface = (*ProgramService)(nil)

// NewProgramService creates a new program service
func NewProgramService(repo repository.ProgramRepositoryInterface, validator *validator.Validate) *ProgramService {
	return &ProgramService{
		repo:      repo,
		validator: validator,
	}
}

// CreateProgramRequest represents the request to create a program
type CreateProgramRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description,omitempty"`
	IsOpen      *bool  `json:"isOpen,omitempty"`
	CompanyID   *uint  `json:"companyId,omitempty"`
}

// UpdateProgramRequest represents a partial update; nil fields are untouched
type UpdateProgramRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description,omitempty"`
	IsOpen      *bool   `json:"isOpen,omitempty"`
}

// ProgramResponse represents the response for program operations
type ProgramResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsOpen      bool      `json:"isOpen"`
	CompanyID   *uint     `json:"companyId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// List retrieves programs scoped to the given tenant. A nil companyID
// returns only platform-global programs.
func (s *ProgramService) List(companyID *uint) ([]ProgramResponse, error) {
	programs, err := s.repo.ListByCompany(companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list programs: %w", err)
	}

	responses := make([]ProgramResponse, len(programs))
	for i, p := range programs {
		responses[i] = *s.toResponse(&p)
	}
	return responses, nil
}

// Create creates a new program
func (s *ProgramService) Create(req *CreateProgramRequest) (*ProgramResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	program := &models.Program{
		Name:        req.Name,
		Description: req.Description,
		IsOpen:      true,
		CompanyID:   req.CompanyID,
	}
	if req.IsOpen != nil {
		program.IsOpen = *req.IsOpen
	}

	if err := s.repo.Create(program); err != nil {
		return nil, fmt.Errorf("failed to create program: %w", err)
	}

	return s.toResponse(program), nil
}

// Update applies a partial update to a program
func (s *ProgramService) Update(id uint, req *UpdateProgramRequest) (*ProgramResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.IsOpen != nil {
		updates["is_open"] = *req.IsOpen
	}

	if len(updates) == 0 {
		// Nothing to change; behave like a read so the caller still gets
		// the current record or a not-found signal.
		program, err := s.repo.GetByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrProgramNotFound
			}
			return nil, fmt.Errorf("failed to get program: %w", err)
		}
		return s.toResponse(program), nil
	}

	program, err := s.repo.Update(id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProgramNotFound
		}
		return nil, fmt.Errorf("failed to update program: %w", err)
	}

	return s.toResponse(program), nil
}

// toResponse converts a Program model to API response
func (s *ProgramService) toResponse(program *models.Program) *ProgramResponse {
	return &ProgramResponse{
		ID:          program.ID,
		Name:        program.Name,
		Description: program.Description,
		IsOpen:      program.IsOpen,
		CompanyID:   program.CompanyID,
		CreatedAt:   program.CreatedAt,
		UpdatedAt:   program.UpdatedAt,
	}
}
