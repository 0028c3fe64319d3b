package repository

import (
	"askhub/internal/database/models"

	"gorm.io/gorm"
)

// ProgramRepository handles database operations for programs
type ProgramRepository struct {
	db *gorm.DB
}

// NewProgramRepository creates a new program repository
func NewProgramRepository(db *gorm.DB) *ProgramRepository {
	return &ProgramRepository{db: db}
}

// Create creates a new program
func (r *ProgramRepository) Create(program *models.Program) error {
	return r.db.Create(program).Error
}

// GetByID retrieves a program by ID
func (r *ProgramRepository) GetByID(id uint) (*models.Program, error) {
	var program models.Program
	err := r.db.First(&program, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &program, nil
}

// ListByCompany retrieves programs scoped to a tenant. A nil companyID
// matches only platform-global programs (company_id IS NULL), never all rows.
func (r *ProgramRepository) ListByCompany(companyID *uint) ([]models.Program, error) {
	var programs []models.Program
	query := r.db.Order("id ASC")
	if companyID != nil {
		query = query.Where("company_id = ?", *companyID)
	} else {
		query = query.Where("company_id IS NULL")
	}
	if err := query.Find(&programs).Error; err != nil {
		return nil, err
	}
	return programs, nil
}

// Update applies a partial field update and returns the updated program.
// Returns gorm.ErrRecordNotFound when no row matches the id.
func (r *ProgramRepository) Update(id uint, updates map[string]interface{}) (*models.Program, error) {
	result := r.db.Model(&models.Program{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(id)
}
