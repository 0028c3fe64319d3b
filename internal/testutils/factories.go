package testutils

import (
	"time"

	"askhub/internal/database/models"

	"github.com/google/uuid"
)

// FactorySet bundles the entity factories for convenient use in tests
type FactorySet struct {
	Company  *CompanyFactory
	User     *UserFactory
	Program  *ProgramFactory
	Question *QuestionFactory
}

// NewFactorySet creates a FactorySet with all factories ready to use
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Company:  NewCompanyFactory(),
		User:     NewUserFactory(),
		Program:  NewProgramFactory(),
		Question: NewQuestionFactory(),
	}
}

// CompanyFactory provides methods to create test Company data
type CompanyFactory struct{}

// NewCompanyFactory creates a new CompanyFactory
func NewCompanyFactory() *CompanyFactory {
	return &CompanyFactory{}
}

// Create creates a test Company with default values. The slug carries a
// UUID fragment so parallel suites never collide on the unique index.
func (f *CompanyFactory) Create() *models.Company {
	suffix := uuid.New().String()[:8]
	return &models.Company{
		Name:               "Test Company",
		Slug:               "test-company-" + suffix,
		PrimaryColor:       "#2563eb",
		SecondaryColor:     "#1e40af",
		IsPro:              false,
		SubscriptionStatus: models.SubscriptionTrial,
	}
}

// WithSlug sets a custom slug for the company
func (f *CompanyFactory) WithSlug(slug string) *models.Company {
	company := f.Create()
	company.Slug = slug
	return company
}

// WithBranding sets custom theme colors for the company
func (f *CompanyFactory) WithBranding(primary, secondary string) *models.Company {
	company := f.Create()
	company.PrimaryColor = primary
	company.SecondaryColor = secondary
	return company
}

// Pro creates a pro company with an active subscription
func (f *CompanyFactory) Pro() *models.Company {
	company := f.Create()
	company.IsPro = true
	company.SubscriptionStatus = models.SubscriptionActive
	return company
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values and a unique email
func (f *UserFactory) Create() *models.User {
	suffix := uuid.New().String()[:8]
	return &models.User{
		Email:    "user-" + suffix + "@test.com",
		Name:     "Test User",
		Picture:  "https://example.com/avatar.png",
		GoogleID: "google-" + suffix,
		Role:     models.UserRoleUser,
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WithCompany scopes the user to a company
func (f *UserFactory) WithCompany(companyID uint) *models.User {
	user := f.Create()
	user.CompanyID = &companyID
	return user
}

// Admin creates an admin user
func (f *UserFactory) Admin() *models.User {
	user := f.Create()
	user.Role = models.UserRoleAdmin
	return user
}

// ProgramFactory provides methods to create test Program data
type ProgramFactory struct{}

// NewProgramFactory creates a new ProgramFactory
func NewProgramFactory() *ProgramFactory {
	return &ProgramFactory{}
}

// Create creates a global open test Program with default values
func (f *ProgramFactory) Create() *models.Program {
	return &models.Program{
		Name:        "Test Program",
		Description: "A test program for testing purposes",
		IsOpen:      true,
	}
}

// WithName sets a custom name for the program
func (f *ProgramFactory) WithName(name string) *models.Program {
	program := f.Create()
	program.Name = name
	return program
}

// WithCompany scopes the program to a company
func (f *ProgramFactory) WithCompany(companyID uint) *models.Program {
	program := f.Create()
	program.CompanyID = &companyID
	return program
}

// Closed creates a program that does not accept new questions
func (f *ProgramFactory) Closed() *models.Program {
	program := f.Create()
	program.IsOpen = false
	return program
}

// QuestionFactory provides methods to create test Question data
type QuestionFactory struct{}

// NewQuestionFactory creates a new QuestionFactory
func NewQuestionFactory() *QuestionFactory {
	return &QuestionFactory{}
}

// Create creates an unanswered global test Question with default values
func (f *QuestionFactory) Create() *models.Question {
	return &models.Question{
		Title:      "Test Question",
		Text:       "What is the meaning of this test?",
		AuthorName: "Test Author",
		AuthorID:   "author-" + uuid.New().String()[:8],
		IsPublic:   true,
	}
}

// WithTitle sets a custom title for the question
func (f *QuestionFactory) WithTitle(title string) *models.Question {
	question := f.Create()
	question.Title = title
	return question
}

// WithCompany scopes the question to a company
func (f *QuestionFactory) WithCompany(companyID uint) *models.Question {
	question := f.Create()
	question.CompanyID = &companyID
	return question
}

// WithProgram assigns the question to a program
func (f *QuestionFactory) WithProgram(programID uint) *models.Question {
	question := f.Create()
	question.ProgramID = &programID
	return question
}

// Answered creates a question that already carries an answer
func (f *QuestionFactory) Answered(answer string) *models.Question {
	question := f.Create()
	now := time.Now().UTC()
	question.Answer = &answer
	question.AnsweredAt = &now
	return question
}
