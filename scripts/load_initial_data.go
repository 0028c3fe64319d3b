package main

import (
	"askhub/internal/config"
	"askhub/internal/database"
	"askhub/internal/database/models"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"os"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type CompanyData struct {
	Name           string `yaml:"name"`
	Slug           string `yaml:"slug"`
	Logo           string `yaml:"logo,omitempty"`
	PrimaryColor   string `yaml:"primary_color,omitempty"`
	SecondaryColor string `yaml:"secondary_color,omitempty"`
	IsPro          bool   `yaml:"is_pro"`
	Subscription   string `yaml:"subscription_status,omitempty"`
}

type UserData struct {
	Email       string `yaml:"email"`
	Name        string `yaml:"name"`
	Picture     string `yaml:"picture,omitempty"`
	GoogleID    string `yaml:"google_id,omitempty"`
	Role        string `yaml:"role,omitempty"`
	CompanySlug string `yaml:"company_slug,omitempty"`
}

type ProgramData struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	IsOpen      *bool  `yaml:"is_open,omitempty"`
	CompanySlug string `yaml:"company_slug,omitempty"`
}

type QuestionData struct {
	Title       string `yaml:"title"`
	Text        string `yaml:"text"`
	AuthorName  string `yaml:"author_name,omitempty"`
	AuthorEmail string `yaml:"author_email,omitempty"`
	Answer      string `yaml:"answer,omitempty"`
	IsPublic    bool   `yaml:"is_public"`
	ProgramName string `yaml:"program_name,omitempty"`
	CompanySlug string `yaml:"company_slug,omitempty"`
}

// File structures
type CompaniesFile struct {
	Companies []CompanyData `yaml:"companies"`
}

type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type ProgramsFile struct {
	Programs []ProgramData `yaml:"programs"`
}

type QuestionsFile struct {
	Questions []QuestionData `yaml:"questions"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	// Load all data from YAML files
	companies, err := loadCompanies(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load companies: %w", err)
	}

	users, err := loadUsers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	programs, err := loadPrograms(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load programs: %w", err)
	}

	questions, err := loadQuestions(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load questions: %w", err)
	}

	// Create companies first, everything else references them by slug
	companyMap := make(map[string]*models.Company)
	companyCreated := 0
	for _, companyData := range companies {
		company, created, err := createCompany(db, companyData)
		if err != nil {
			return fmt.Errorf("failed to create company %s: %w", companyData.Slug, err)
		}
		companyMap[companyData.Slug] = company
		if created {
			companyCreated++
		}
	}
	log.Printf("📋 Companies: %d created, %d total", companyCreated, len(companies))

	// Create users
	userCreated := 0
	for _, userData := range users {
		_, created, err := createUser(db, userData, companyMap)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Email, err)
		}
		if created {
			userCreated++
		}
	}
	log.Printf("📋 Users: %d created, %d total", userCreated, len(users))

	// Create programs
	programMap := make(map[string]*models.Program)
	programCreated := 0
	for _, programData := range programs {
		program, created, err := createProgram(db, programData, companyMap)
		if err != nil {
			return fmt.Errorf("failed to create program %s: %w", programData.Name, err)
		}
		programMap[programData.Name] = program
		if created {
			programCreated++
		}
	}
	log.Printf("📋 Programs: %d created, %d total", programCreated, len(programs))

	// Create questions
	questionCreated := 0
	for _, questionData := range questions {
		_, created, err := createQuestion(db, questionData, companyMap, programMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create question %s: %v", questionData.Title, err)
			continue // Continue with other questions
		}
		if created {
			questionCreated++
		}
	}
	log.Printf("📋 Questions: %d created, %d total", questionCreated, len(questions))

	return nil
}

func loadCompanies(dataDir string) ([]CompanyData, error) {
	var allCompanies []CompanyData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "companies") {
			var file CompaniesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allCompanies = append(allCompanies, file.Companies...)
		}
		return nil
	})

	return allCompanies, err
}

func loadUsers(dataDir string) ([]UserData, error) {
	var allUsers []UserData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "users") {
			var file UsersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allUsers = append(allUsers, file.Users...)
		}
		return nil
	})

	return allUsers, err
}

func loadPrograms(dataDir string) ([]ProgramData, error) {
	var allPrograms []ProgramData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "programs") {
			var file ProgramsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allPrograms = append(allPrograms, file.Programs...)
		}
		return nil
	})

	return allPrograms, err
}

func loadQuestions(dataDir string) ([]QuestionData, error) {
	var allQuestions []QuestionData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "questions") {
			var file QuestionsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allQuestions = append(allQuestions, file.Questions...)
		}
		return nil
	})

	return allQuestions, err
}

func createCompany(db *gorm.DB, companyData CompanyData) (*models.Company, bool, error) {
	var company models.Company
	if err := db.Where("slug = ?", companyData.Slug).First(&company).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			subscription := models.SubscriptionTrial
			if companyData.Subscription != "" {
				subscription = models.SubscriptionStatus(companyData.Subscription)
			}

			company = models.Company{
				Name:               companyData.Name,
				Slug:               companyData.Slug,
				Logo:               companyData.Logo,
				PrimaryColor:       companyData.PrimaryColor,
				SecondaryColor:     companyData.SecondaryColor,
				IsPro:              companyData.IsPro,
				SubscriptionStatus: subscription,
			}

			if err := db.Create(&company).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create company: %w", err)
			}
			return &company, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query company: %w", err)
		}
	}

	return &company, false, nil // created = false (existing)
}

func createUser(db *gorm.DB, userData UserData, companyMap map[string]*models.Company) (*models.User, bool, error) {
	var companyID *uint
	if userData.CompanySlug != "" {
		company := companyMap[userData.CompanySlug]
		if company == nil {
			return nil, false, fmt.Errorf("company %s not found for user %s", userData.CompanySlug, userData.Email)
		}
		companyID = &company.ID
	}

	var user models.User
	if err := db.Where("email = ?", userData.Email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			role := models.UserRoleUser
			if userData.Role != "" {
				role = models.UserRole(userData.Role)
			}

			user = models.User{
				Email:     userData.Email,
				Name:      userData.Name,
				Picture:   userData.Picture,
				GoogleID:  userData.GoogleID,
				Role:      role,
				CompanyID: companyID,
			}

			if err := db.Create(&user).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create user: %w", err)
			}
			return &user, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query user: %w", err)
		}
	}

	return &user, false, nil // created = false (existing)
}

func createProgram(db *gorm.DB, programData ProgramData, companyMap map[string]*models.Company) (*models.Program, bool, error) {
	var companyID *uint
	if programData.CompanySlug != "" {
		company := companyMap[programData.CompanySlug]
		if company == nil {
			return nil, false, fmt.Errorf("company %s not found for program %s", programData.CompanySlug, programData.Name)
		}
		companyID = &company.ID
	}

	query := db.Where("name = ?", programData.Name)
	if companyID != nil {
		query = query.Where("company_id = ?", *companyID)
	} else {
		query = query.Where("company_id IS NULL")
	}

	var program models.Program
	if err := query.First(&program).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			isOpen := true
			if programData.IsOpen != nil {
				isOpen = *programData.IsOpen
			}

			program = models.Program{
				Name:        programData.Name,
				Description: programData.Description,
				IsOpen:      isOpen,
				CompanyID:   companyID,
			}

			if err := db.Create(&program).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create program: %w", err)
			}
			return &program, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query program: %w", err)
		}
	}

	return &program, false, nil // created = false (existing)
}

func createQuestion(db *gorm.DB, questionData QuestionData, companyMap map[string]*models.Company, programMap map[string]*models.Program) (*models.Question, bool, error) {
	var companyID *uint
	if questionData.CompanySlug != "" {
		company := companyMap[questionData.CompanySlug]
		if company == nil {
			return nil, false, fmt.Errorf("company %s not found for question %s", questionData.CompanySlug, questionData.Title)
		}
		companyID = &company.ID
	}

	var programID *uint
	if questionData.ProgramName != "" {
		if program := programMap[questionData.ProgramName]; program != nil {
			programID = &program.ID
		} else {
			// Program not found, log warning but continue
			log.Printf("⚠️  Warning: program %s not found for question %s", questionData.ProgramName, questionData.Title)
		}
	}

	var question models.Question
	if err := db.Where("title = ?", questionData.Title).First(&question).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			var answer *string
			var answeredAt *time.Time
			if questionData.Answer != "" {
				answer = &questionData.Answer
				now := time.Now().UTC()
				answeredAt = &now
			}

			question = models.Question{
				Title:      questionData.Title,
				Text:       questionData.Text,
				AuthorName: questionData.AuthorName,
				AuthorID:   questionData.AuthorEmail,
				Answer:     answer,
				AnsweredAt: answeredAt,
				IsPublic:   questionData.IsPublic,
				ProgramID:  programID,
				CompanyID:  companyID,
			}

			if err := db.Create(&question).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create question: %w", err)
			}
			return &question, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query question: %w", err)
		}
	}

	return &question, false, nil // created = false (existing)
}
