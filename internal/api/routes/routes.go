package routes

import (
	"askhub/internal/api/handlers"
	"askhub/internal/api/middleware"
	"askhub/internal/config"
	"askhub/internal/repository"
	"askhub/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Metrics())

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	companyRepo := repository.NewCompanyRepository(db)
	userRepo := repository.NewUserRepository(db)
	programRepo := repository.NewProgramRepository(db)
	questionRepo := repository.NewQuestionRepository(db)

	// Initialize services
	companyService := service.NewCompanyService(companyRepo, validator)
	authService := service.NewAuthService(userRepo, validator)
	programService := service.NewProgramService(programRepo, validator)
	questionService := service.NewQuestionService(questionRepo, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	companyHandler := handlers.NewCompanyHandler(companyService)
	authHandler := handlers.NewAuthHandler(authService)
	programHandler := handlers.NewProgramHandler(programService)
	questionHandler := handlers.NewQuestionHandler(questionService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := router.Group("/api")
	{
		companies := api.Group("/companies")
		{
			companies.GET("/:slug", companyHandler.GetCompanyBySlug)
			companies.POST("", companyHandler.CreateCompany)
		}

		auth := api.Group("/auth")
		{
			auth.POST("/google", authHandler.GoogleSignIn)
		}

		programs := api.Group("/programs")
		{
			programs.GET("", programHandler.ListPrograms)
			programs.POST("", programHandler.CreateProgram)
			programs.PATCH("/:id", programHandler.UpdateProgram)
		}

		questions := api.Group("/questions")
		{
			questions.GET("", questionHandler.ListQuestions)
			questions.POST("", questionHandler.CreateQuestion)
			questions.PATCH("/:id/answer", questionHandler.AnswerQuestion)
		}
	}

	return router
}
