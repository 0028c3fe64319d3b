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

// ProgramHandler handles HTTP requests for programs
type ProgramHandler struct {
	service service.ProgramServiceInterface
}

// NewProgramHandler creates a new program handler
func NewProgramHandler(service service.ProgramServiceInterface) *ProgramHandler {
	return &ProgramHandler{service: service}
}

// parseCompanyID reads the optional companyId query parameter. An absent or
// empty parameter means "global records only", never "all tenants".
func parseCompanyID(c *gin.Context) (*uint, error) {
	raw := c.Query("companyId")
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	uid := uint(id)
	return &uid, nil
}

// ListPrograms handles GET /api/programs
// @Summary List programs
// @Description List programs filtered by tenant; absent companyId returns global programs only
// @Tags programs
// @Accept json
// @Produce json
// @Param companyId query int false "Tenant identifier"
// @Success 200 {array} service.ProgramResponse "Programs in scope"
// @Failure 400 {object} MessageResponse "Invalid companyId"
// @Failure 500 {object} MessageResponse "Internal server error"
// @Router /programs [get]
func (h *ProgramHandler) ListPrograms(c *gin.Context) {
	companyID, err := parseCompanyID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid companyId"})
		return
	}

	programs, err := h.service.List(companyID)
	if err != nil {
		logger.FromContext(c.Request.Context()).Errorf("Failed to list programs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, programs)
}

// CreateProgram handles POST /api/programs
// @Summary Create a program
// @Description Create a new program, optionally scoped to a tenant via companyId
// @Tags programs
// @Accept json
// @Produce json
// @Param program body service.CreateProgramRequest true "Program data"
// @Success 200 {object} service.ProgramResponse "Successfully created program"
// @Failure 400 {object} MessageResponse "Invalid request body"
// @Failure 500 {object} MessageResponse "Internal server error"
// @Router /programs [post]
func (h *ProgramHandler) CreateProgram(c *gin.Context) {
	var req service.CreateProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}

	program, err := h.service.Create(&req)
	if err != nil {
		logger.FromContext(c.Request.Context()).Errorf("Failed to create program: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, program)
}

// UpdateProgram handles PATCH /api/programs/:id
// @Summary Update a program
// @Description Apply a partial update (name, description, isOpen) to a program
// @Tags programs
// @Accept json
// @Produce json
// @Param id path int true "Program ID"
// @Param program body service.UpdateProgramRequest true "Fields to update"
// @Success 200 {object} service.ProgramResponse "Updated program"
// @Failure 400 {object} MessageResponse "Invalid program ID or request body"
// @Failure 404 {object} MessageResponse "Program not found"
// @Failure 500 {object} MessageResponse "Internal server error"
// @Router /programs/{id} [patch]
func (h *ProgramHandler) UpdateProgram(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid program ID"})
		return
	}

	var req service.UpdateProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}

	program, err := h.service.Update(uint(id), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrProgramNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Program not found"})
			return
		}
		logger.FromContext(c.Request.Context()).Errorf("Failed to update program: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, program)
}
