package handlers

import (
	"net/http"

	"askhub/internal/logger"
	"askhub/internal/service"

	"github.com/gin-gonic/gin"
)

// MessageResponse represents the error body shape used by every endpoint
type MessageResponse struct {
	Message string `json:"message" example:"company not found"`
}

// AuthHandler handles the Google sign-in identity round trip
type AuthHandler struct {
	service service.AuthServiceInterface
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service service.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{service: service}
}

// GoogleSignIn handles POST /api/auth/google
// @Summary Google sign-in
// @Description Find or create a user by email; idempotent, always returns the resulting record
// @Tags auth
// @Accept json
// @Produce json
// @Param profile body service.GoogleSignInRequest true "Google profile"
// @Success 200 {object} service.UserResponse "Resulting user record"
// @Failure 400 {object} MessageResponse "Invalid request body"
// @Failure 500 {object} MessageResponse "Internal server error"
// @Router /auth/google [post]
func (h *AuthHandler) GoogleSignIn(c *gin.Context) {
	var req service.GoogleSignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}

	user, err := h.service.GoogleSignIn(&req)
	if err != nil {
		logger.FromContext(c.Request.Context()).Errorf("Failed to sign in user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}
