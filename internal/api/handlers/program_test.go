package handlers

import (
	"net/http"
	"testing"

	apperrors "askhub/internal/errors"
	"askhub/internal/mocks"
	"askhub/internal/service"
	"askhub/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ProgramHandlerTestSuite defines the test suite for ProgramHandler
type ProgramHandlerTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockProgramService *mocks.MockProgramServiceInterface
	handler            *ProgramHandler
	httpSuite          *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *ProgramHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockProgramService = mocks.NewMockProgramServiceInterface(suite.ctrl)

	suite.handler = NewProgramHandler(suite.mockProgramService)

	suite.httpSuite = testutils.SetupHTTPTest()

	api := suite.httpSuite.Router.Group("/api")
	programs := api.Group("/programs")
	{
		programs.GET("", suite.handler.ListPrograms)
		programs.POST("", suite.handler.CreateProgram)
		programs.PATCH("/:id", suite.handler.UpdateProgram)
	}
}

// TearDownTest cleans up after each test
func (suite *ProgramHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestListProgramsScoped tests listing with a companyId parameter
func (suite *ProgramHandlerTestSuite) TestListProgramsScoped() {
	companyID := uint(7)
	expected := []service.ProgramResponse{
		{ID: 1, Name: "Health & Wellness", IsOpen: true, CompanyID: &companyID},
	}

	suite.mockProgramService.EXPECT().
		List(gomock.Any()).
		DoAndReturn(func(id *uint) ([]service.ProgramResponse, error) {
			assert.NotNil(suite.T(), id)
			assert.Equal(suite.T(), uint(7), *id)
			return expected, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/programs?companyId=7", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response []service.ProgramResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response, 1)
	assert.Equal(suite.T(), "Health & Wellness", response[0].Name)
}

// TestListProgramsGlobal tests that an absent companyId means global scope
func (suite *ProgramHandlerTestSuite) TestListProgramsGlobal() {
	suite.mockProgramService.EXPECT().
		List(gomock.Nil()).
		Return([]service.ProgramResponse{}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/programs", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestListProgramsInvalidCompanyID tests a non-numeric companyId
func (suite *ProgramHandlerTestSuite) TestListProgramsInvalidCompanyID() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/programs?companyId=abc", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid companyId")
}

// TestCreateProgram tests creating a program
func (suite *ProgramHandlerTestSuite) TestCreateProgram() {
	requestBody := map[string]interface{}{
		"name":        "Health",
		"description": "Wellness topics",
	}

	expected := &service.ProgramResponse{ID: 9, Name: "Health", Description: "Wellness topics", IsOpen: true}

	suite.mockProgramService.EXPECT().
		Create(gomock.Any()).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/programs", requestBody)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.ProgramResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), uint(9), response.ID)
	assert.True(suite.T(), response.IsOpen)
}

// TestUpdateProgram tests a partial update
func (suite *ProgramHandlerTestSuite) TestUpdateProgram() {
	requestBody := map[string]interface{}{
		"isOpen": false,
	}

	expected := &service.ProgramResponse{ID: 3, Name: "Career Advice", IsOpen: false}

	suite.mockProgramService.EXPECT().
		Update(uint(3), gomock.Any()).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PATCH", "/api/programs/3", requestBody)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.ProgramResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.False(suite.T(), response.IsOpen)
}

// TestUpdateProgramNotFound tests updating an unknown program
func (suite *ProgramHandlerTestSuite) TestUpdateProgramNotFound() {
	suite.mockProgramService.EXPECT().
		Update(uint(404), gomock.Any()).
		Return(nil, apperrors.ErrProgramNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PATCH", "/api/programs/404", map[string]interface{}{"isOpen": true})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "Program not found")
}

// TestUpdateProgramInvalidID tests a non-numeric program id
func (suite *ProgramHandlerTestSuite) TestUpdateProgramInvalidID() {
	recorder := suite.httpSuite.MakeRequest("PATCH", "/api/programs/abc", map[string]interface{}{"isOpen": true})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid program ID")
}

// TestProgramHandlerTestSuite runs the test suite
func TestProgramHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProgramHandlerTestSuite))
}
