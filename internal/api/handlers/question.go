package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "askhub/internal/errors"
	"askhub/internal/logger"
	"askhub/internal/service"

	"github.com/gin-gonic/gin"
)

// QuestionHandler handles HTTP requests for questions
type QuestionHandler struct {
	service service.QuestionServiceInterface
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(service service.QuestionServiceInterface) *QuestionHandler {
	return &QuestionHandler{service: service}
}

// ListQuestions handles GET /api/questions
// @Summary List questions
// @Description List questions filtered by tenant, newest first; absent companyId returns global questions only
// @Tags questions
// @Accept json
// @Produce json
// @Param companyId query int false "Tenant identifier"
// @Success 200 {array} service.QuestionResponse "Questions in scope"
// @Failure 400 {object} MessageResponse "Invalid companyId"
// @Failure 500 {object} MessageResponse "Internal server error"
// @Router /questions [get]
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	companyID, err := parseCompanyID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid companyId"})
		return
	}

	questions, err := h.service.List(companyID)
	if err != nil {
		logger.FromContext(c.Request.Context()).Errorf("Failed to list questions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, questions)
}

// CreateQuestion handles POST /api/questions
// @Summary Submit a question
// @Description Create a new question under the caller's tenant context
// @Tags questions
// @Accept json
// @Produce json
// @Param question body service.CreateQuestionRequest true "Question data"
// @Success 200 {object} service.QuestionResponse "Successfully created question"
// @Failure 400 {object} MessageResponse "Invalid request body"
// @Failure 500 {object} MessageResponse "Internal server error"
// @Router /questions [post]
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req service.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}

	question, err := h.service.Create(&req)
	if err != nil {
		logger.FromContext(c.Request.Context()).Errorf("Failed to create question: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, question)
}

// AnswerQuestion handles PATCH /api/questions/:id/answer
// @Summary Answer a question
// @Description Set the answer text and timestamp together; repeated calls overwrite both
// @Tags questions
// @Accept json
// @Produce json
// @Param id path int true "Question ID"
// @Param answer body service.AnswerQuestionRequest true "Answer text"
// @Success 200 {object} service.QuestionResponse "Updated question"
// @Failure 400 {object} MessageResponse "Invalid question ID or request body"
// @Failure 404 {object} MessageResponse "Question not found"
// @Failure 500 {object} MessageResponse "Internal server error"
// @Router /questions/{id}/answer [patch]
func (h *QuestionHandler) AnswerQuestion(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid question ID"})
		return
	}

	var req service.AnswerQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}

	question, err := h.service.Answer(uint(id), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrQuestionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Question not found"})
			return
		}
		logger.FromContext(c.Request.Context()).Errorf("Failed to answer question: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, question)
}
