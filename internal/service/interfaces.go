package service

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// CompanyServiceInterface defines the interface for company service
type CompanyServiceInterface interface {
	Create(req *CreateCompanyRequest) (*CompanyResponse, error)
	GetBySlug(slug string) (*CompanyResponse, error)
}

// AuthServiceInterface defines the interface for the identity upsert service
type AuthServiceInterface interface {
	GoogleSignIn(req *GoogleSignInRequest) (*UserResponse, error)
}

// ProgramServiceInterface defines the interface for program service
type ProgramServiceInterface interface {
	List(companyID *uint) ([]ProgramResponse, error)
	Create(req *CreateProgramRequest) (*ProgramResponse, error)
	Update(id uint, req *UpdateProgramRequest) (*ProgramResponse, error)
}

// QuestionServiceInterface defines the interface for question service
type QuestionServiceInterface interface {
	List(companyID *uint) ([]QuestionResponse, error)
	Create(req *CreateQuestionRequest) (*QuestionResponse, error)
	Answer(id uint, req *AnswerQuestionRequest) (*QuestionResponse, error)
}
