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

// QuestionService handles business logic for questions
type QuestionService struct {
	repo      repository.QuestionRepositoryInterface
	validator *validator.Validate
}

// Ensure QuestionService implements QuestionServiceInterface
var _ QuestionServiceInterface = (*QuestionService)(nil)

// NewQuestionService creates a new question service
func NewQuestionService(repo repository.QuestionRepositoryInterface, validator *validator.Validate) *QuestionService {
	return &QuestionService{
		repo:      repo,
		validator: validator,
	}
}

// CreateQuestionRequest represents the request to submit a question
type CreateQuestionRequest struct {
	Title        string `json:"title" validate:"required,min=1,max=300"`
	Text         string `json:"text" validate:"required"`
	AuthorName   string `json:"authorName,omitempty" validate:"omitempty,max=200"`
	AuthorID     string `json:"authorId,omitempty" validate:"omitempty,max=100"`
	AuthorAvatar string `json:"authorAvatar,omitempty" validate:"omitempty,max=500"`
	IsPublic     bool   `json:"isPublic,omitempty"`
	ProgramID    *uint  `json:"programId,omitempty"`
	CompanyID    *uint  `json:"companyId,omitempty"`
}

// AnswerQuestionRequest represents the admin answer submission
type AnswerQuestionRequest struct {
	Answer string `json:"answer" validate:"required"`
}

// QuestionResponse represents the response for question operations
type QuestionResponse struct {
	ID           uint       `json:"id"`
	Title        string     `json:"title"`
	Text         string     `json:"text"`
	AuthorName   string     `json:"authorName"`
	AuthorID     string     `json:"authorId"`
	AuthorAvatar string     `json:"authorAvatar"`
	Answer       *string    `json:"answer"`
	AnsweredAt   *time.Time `json:"answeredAt"`
	IsPublic     bool       `json:"isPublic"`
	ProgramID    *uint      `json:"programId"`
	CompanyID    *uint      `json:"companyId"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// List retrieves questions scoped to the given tenant, newest first.
// A nil companyID returns only tenant-null (global) questions.
func (s *QuestionService) List(companyID *uint) ([]QuestionResponse, error) {
	questions, err := s.repo.ListByCompany(companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	responses := make([]QuestionResponse, len(questions))
	for i, q := range questions {
		responses[i] = *s.toResponse(&q)
	}
	return responses, nil
}

// Create submits a new question under the caller's tenant context
func (s *QuestionService) Create(req *CreateQuestionRequest) (*QuestionResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	question := &models.Question{
		Title:        req.Title,
		Text:         req.Text,
		AuthorName:   req.AuthorName,
		AuthorID:     req.AuthorID,
		AuthorAvatar: req.AuthorAvatar,
		IsPublic:     req.IsPublic,
		ProgramID:    req.ProgramID,
		CompanyID:    req.CompanyID,
	}

	if err := s.repo.Create(question); err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}

	return s.toResponse(question), nil
}

// Answer records the admin answer; text and timestamp are set together
func (s *QuestionService) Answer(id uint, req *AnswerQuestionRequest) (*QuestionResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	question, err := s.repo.Answer(id, req.Answer, time.Now().UTC())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to answer question: %w", err)
	}

	return s.toResponse(question), nil
}

// toResponse converts a Question model to API response
func (s *QuestionService) toResponse(question *models.Question) *QuestionResponse {
	return &QuestionResponse{
		ID:           question.ID,
		Title:        question.Title,
		Text:         question.Text,
		AuthorName:   question.AuthorName,
		AuthorID:     question.AuthorID,
		AuthorAvatar: question.AuthorAvatar,
		Answer:       question.Answer,
		AnsweredAt:   question.AnsweredAt,
		IsPublic:     question.IsPublic,
		ProgramID:    question.ProgramID,
		CompanyID:    question.CompanyID,
		CreatedAt:    question.CreatedAt,
		UpdatedAt:    question.UpdatedAt,
	}
}
