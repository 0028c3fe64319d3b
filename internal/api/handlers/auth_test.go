package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"askhub/internal/mocks"
	"askhub/internal/service"
	"askhub/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AuthHandlerTestSuite defines the test suite for AuthHandler
type AuthHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockAuthService *mocks.MockAuthServiceInterface
	handler         *AuthHandler
	httpSuite       *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *AuthHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAuthService = mocks.NewMockAuthServiceInterface(suite.ctrl)

	suite.handler = NewAuthHandler(suite.mockAuthService)

	suite.httpSuite = testutils.SetupHTTPTest()

	api := suite.httpSuite.Router.Group("/api")
	auth := api.Group("/auth")
	{
		auth.POST("/google", suite.handler.GoogleSignIn)
	}
}

// TearDownTest cleans up after each test
func (suite *AuthHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGoogleSignIn tests the identity upsert round trip
func (suite *AuthHandlerTestSuite) TestGoogleSignIn() {
	requestBody := map[string]interface{}{
		"email":    "jane@test.com",
		"name":     "Jane",
		"googleId": "google-123",
	}

	expected := &service.UserResponse{
		ID:       1,
		Email:    "jane@test.com",
		Name:     "Jane",
		GoogleID: "google-123",
		Role:     "user",
	}

	suite.mockAuthService.EXPECT().
		GoogleSignIn(gomock.Any()).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/auth/google", requestBody)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.UserResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "jane@test.com", response.Email)
	assert.Equal(suite.T(), "user", response.Role)
}

// TestGoogleSignInServiceError tests an upstream failure
func (suite *AuthHandlerTestSuite) TestGoogleSignInServiceError() {
	requestBody := map[string]interface{}{
		"email": "jane@test.com",
		"name":  "Jane",
	}

	suite.mockAuthService.EXPECT().
		GoogleSignIn(gomock.Any()).
		Return(nil, fmt.Errorf("failed to look up user by email: connection refused")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/auth/google", requestBody)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "failed to look up user")
}

// TestGoogleSignInInvalidBody tests a malformed request body
func (suite *AuthHandlerTestSuite) TestGoogleSignInInvalidBody() {
	recorder := suite.httpSuite.MakeRequestWithHeaders(
		"POST", "/api/auth/google", nil,
		map[string]string{"Content-Type": "application/json"},
	)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestAuthHandlerTestSuite runs the test suite
func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
