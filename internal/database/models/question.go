package models

import "time"

// Question is an end-user question, optionally answered by an admin.
// Answer and AnsweredAt are always written together in a single UPDATE so
// no reader can observe a half-answered record.
type Question struct {
	BaseModel
	Title        string `json:"title" gorm:"not null;size:300" validate:"required,min=1,max=300"`
	Text         string `json:"text" gorm:"type:text;not null" validate:"required"`
	AuthorName   string `json:"authorName" gorm:"size:200"`
	AuthorID     string `json:"authorId" gorm:"column:author_id;size:100"`
	AuthorAvatar string `json:"authorAvatar" gorm:"size:500"`

	Answer     *string    `json:"answer" gorm:"type:text"`
	AnsweredAt *time.Time `json:"answeredAt"`
	IsPublic   bool       `json:"isPublic" gorm:"default:false"`

	ProgramID *uint    `json:"programId" gorm:"index"`
	Program   *Program `json:"program,omitempty" gorm:"foreignKey:ProgramID"`
	CompanyID *uint    `json:"companyId" gorm:"index"`
	Company   *Company `json:"company,omitempty" gorm:"foreignKey:CompanyID"`
}

// TableName returns the table name for Question
func (Question) TableName() string {
	return "questions"
}
