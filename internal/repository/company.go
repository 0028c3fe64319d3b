package repository

import (
	"askhub/internal/database/models"

	"gorm.io/gorm"
)

// CompanyRepository handles database operations for companies
type CompanyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// Create creates a new company
func (r *CompanyRepository) Create(company *models.Company) error {
	return r.db.Create(company).Error
}

// GetByID retrieves a company by ID
func (r *CompanyRepository) GetByID(id uint) (*models.Company, error) {
	var company models.Company
	err := r.db.First(&company, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// GetBySlug retrieves a company by its URL slug (exact match)
func (r *CompanyRepository) GetBySlug(slug string) (*models.Company, error) {
	var company models.Company
	err := r.db.First(&company, "slug = ?", slug).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}
