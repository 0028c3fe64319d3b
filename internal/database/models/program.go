package models

// Program is a topical category questions are asked under. A nil CompanyID
// marks a platform-global program, visible only in the un-tenanted view.
type Program struct {
	BaseModel
	Name        string `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Description string `json:"description" gorm:"type:text"`
	// IsOpen gates new question submission only, never visibility
	IsOpen bool `json:"isOpen" gorm:"default:true"`

	CompanyID *uint    `json:"companyId" gorm:"index"`
	Company   *Company `json:"company,omitempty" gorm:"foreignKey:CompanyID"`
}

// TableName returns the table name for Program
func (Program) TableName() string {
	return "programs"
}
