package repository

import (
	"time"

	"askhub/internal/database/models"

	"gorm.io/gorm"
)

// QuestionRepository handles database operations for questions
type QuestionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository creates a new question repository
func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

// Create creates a new question
func (r *QuestionRepository) Create(question *models.Question) error {
	return r.db.Create(question).Error
}

// GetByID retrieves a question by ID
func (r *QuestionRepository) GetByID(id uint) (*models.Question, error) {
	var question models.Question
	err := r.db.First(&question, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

// ListByCompany retrieves questions scoped to a tenant, newest first.
// A nil companyID matches only tenant-null (global) questions.
func (r *QuestionRepository) ListByCompany(companyID *uint) ([]models.Question, error) {
	var questions []models.Question
	query := r.db.Order("created_at DESC")
	if companyID != nil {
		query = query.Where("company_id = ?", *companyID)
	} else {
		query = query.Where("company_id IS NULL")
	}
	if err := query.Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// Answer sets the answer text and timestamp in a single UPDATE so both
// fields are always observed together. Repeated calls overwrite both.
// Returns gorm.ErrRecordNotFound when no row matches the id.
func (r *QuestionRepository) Answer(id uint, answer string, answeredAt time.Time) (*models.Question, error) {
	result := r.db.Model(&models.Question{}).Where("id = ?", id).Updates(map[string]interface{}{
		"answer":      answer,
		"answered_at": answeredAt,
	})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(id)
}
