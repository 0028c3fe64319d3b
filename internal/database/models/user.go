package models

// User represents an identity created by the Google sign-in round trip.
// Users are keyed by email and by the external provider id, both unique.
type User struct {
	BaseModel
	Email    string   `json:"email" gorm:"uniqueIndex;not null;size:200" validate:"required,email"`
	Name     string   `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Picture  string   `json:"picture" gorm:"size:500"`
	GoogleID string   `json:"googleId" gorm:"column:google_id;uniqueIndex;size:100"`
	Role     UserRole `json:"role" gorm:"size:20;default:'user'"`

	// CompanyID scopes the user to a tenant; null means platform-level
	CompanyID *uint    `json:"companyId" gorm:"index"`
	Company   *Company `json:"company,omitempty" gorm:"foreignKey:CompanyID"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
