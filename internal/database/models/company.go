package models

// Company represents a tenant: a white-labeled, slug-scoped partition of
// the platform with its own branding and data.
type Company struct {
	BaseModel
	Name string `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	// Slug is the URL-friendly identifier resolved from /c/:slug paths
	Slug               string             `json:"slug" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	Logo               string             `json:"logo" gorm:"size:500"`
	PrimaryColor       string             `json:"primaryColor" gorm:"size:20;default:'#2563eb'"`
	SecondaryColor     string             `json:"secondaryColor" gorm:"size:20;default:'#1e40af'"`
	IsPro              bool               `json:"isPro" gorm:"default:false"`
	SubscriptionStatus SubscriptionStatus `json:"subscriptionStatus" gorm:"size:20;default:'trial'"`

	// Relationships
	Users     []User     `json:"users,omitempty" gorm:"foreignKey:CompanyID"`
	Programs  []Program  `json:"programs,omitempty" gorm:"foreignKey:CompanyID"`
	Questions []Question `json:"questions,omitempty" gorm:"foreignKey:CompanyID"`
}

// TableName returns the table name for Company
func (Company) TableName() string {
	return "companies"
}
