package repository

import (
	"time"

	"askhub/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// CompanyRepositoryInterface defines the interface for company repository operations
type CompanyRepositoryInterface interface {
	Create(company *models.Company) error
	GetByID(id uint) (*models.Company, error)
	GetBySlug(slug string) (*models.Company, error)
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetByGoogleID(googleID string) (*models.User, error)
}

// ProgramRepositoryInterface defines the interface for program repository operations
type ProgramRepositoryInterface interface {
	Create(program *models.Program) error
	GetByID(id uint) (*models.Program, error)
	ListByCompany(companyID *uint) ([]models.Program, error)
	Update(id uint, updates map[string]interface{}) (*models.Program, error)
}

// QuestionRepositoryInterface defines the interface for question repository operations
type QuestionRepositoryInterface interface {
	Create(question *models.Question) error
	GetByID(id uint) (*models.Question, error)
	ListByCompany(companyID *uint) ([]models.Question, error)
	Answer(id uint, answer string, answeredAt time.Time) (*models.Question, error)
}
