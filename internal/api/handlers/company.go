package handlers

import (
	"errors"
	"net/http"

	apperrors "askhub/internal/errors"
	"askhub/internal/logger"
	"askhub/internal/service"

	"github.com/gin-gonic/gin"
)

// CompanyHandler handles HTTP requests for companies (tenants)
type CompanyHandler struct {
	service service.CompanyServiceInterface
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(service service.CompanyServiceInterface) *CompanyHandler {
	return &CompanyHandler{service: service}
}

// GetCompanyBySlug handles GET /api/companies/:slug
// @Summary Get company by slug
// @Description Resolve a tenant by its URL slug (exact match)
// @Tags companies
// @Accept json
// @Produce json
// @Param slug path string true "Company slug"
// @Success 200 {object} service.CompanyResponse "Successfully resolved company"
// @Failure 404 {object} MessageResponse "Company not found"
// @Failure 500 {object} MessageResponse "Internal server error"
// @Router /companies/{slug} [get]
func (h *CompanyHandler) GetCompanyBySlug(c *gin.Context) {
	slug := c.Param("slug")
	ctx := logger.WithTenant(c.Request.Context(), slug)

	company, err := h.service.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, apperrors.ErrCompanyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Company not found"})
			return
		}
		logger.WithContext(ctx).Errorf("Failed to resolve company: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, company)
}

// CreateCompany handles POST /api/companies
// @Summary Create a new company
// @Description Register a new tenant with branding and subscription fields
// @Tags companies
// @Accept json
// @Produce json
// @Param company body service.CreateCompanyRequest true "Company data"
// @Success 200 {object} service.CompanyResponse "Successfully created company"
// @Failure 400 {object} MessageResponse "Invalid request body"
// @Failure 409 {object} MessageResponse "Company slug already taken"
// @Failure 500 {object} MessageResponse "Internal server error"
// @Router /companies [post]
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	var req service.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}

	company, err := h.service.Create(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrCompanySlugExists) {
			c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
			return
		}
		logger.FromContext(c.Request.Context()).Errorf("Failed to create company: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, company)
}
