package repository

import (
	"testing"

	"askhub/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ProgramRepositoryTestSuite tests the ProgramRepository
type ProgramRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ProgramRepository
	companyRepo   *CompanyRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *ProgramRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewProgramRepository(suite.baseTestSuite.DB)
	suite.companyRepo = NewCompanyRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ProgramRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ProgramRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ProgramRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createCompany persists a company and returns its id
func (suite *ProgramRepositoryTestSuite) createCompany() uint {
	company := suite.factories.Company.Create()
	suite.NoError(suite.companyRepo.Create(company))
	return company.ID
}

// TestCreate tests creating a new program
func (suite *ProgramRepositoryTestSuite) TestCreate() {
	program := suite.factories.Program.Create()

	err := suite.repo.Create(program)

	suite.NoError(err)
	suite.NotZero(program.ID)
	suite.True(program.IsOpen)
}

// TestListByCompanyIsolation tests that tenant scoping never leaks records
func (suite *ProgramRepositoryTestSuite) TestListByCompanyIsolation() {
	companyA := suite.createCompany()
	companyB := suite.createCompany()

	suite.NoError(suite.repo.Create(suite.factories.Program.WithCompany(companyA)))
	suite.NoError(suite.repo.Create(suite.factories.Program.WithCompany(companyB)))
	suite.NoError(suite.repo.Create(suite.factories.Program.WithName("Global Program")))

	scoped, err := suite.repo.ListByCompany(&companyA)
	suite.NoError(err)
	suite.Len(scoped, 1)
	suite.Equal(&companyA, scoped[0].CompanyID)

	// Nil scope returns only tenant-null records, never all rows
	global, err := suite.repo.ListByCompany(nil)
	suite.NoError(err)
	suite.Len(global, 1)
	suite.Nil(global[0].CompanyID)
	suite.Equal("Global Program", global[0].Name)
}

// TestUpdatePartial tests that an update touches only the given fields
func (suite *ProgramRepositoryTestSuite) TestUpdatePartial() {
	program := suite.factories.Program.WithName("Career Advice")
	suite.NoError(suite.repo.Create(program))

	updated, err := suite.repo.Update(program.ID, map[string]interface{}{"is_open": false})

	suite.NoError(err)
	suite.False(updated.IsOpen)
	suite.Equal("Career Advice", updated.Name)
}

// TestUpdateToggleTwiceRestores tests that two toggles return the original state
func (suite *ProgramRepositoryTestSuite) TestUpdateToggleTwiceRestores() {
	program := suite.factories.Program.Create()
	suite.NoError(suite.repo.Create(program))
	suite.True(program.IsOpen)

	closed, err := suite.repo.Update(program.ID, map[string]interface{}{"is_open": false})
	suite.NoError(err)
	suite.False(closed.IsOpen)

	reopened, err := suite.repo.Update(program.ID, map[string]interface{}{"is_open": true})
	suite.NoError(err)
	suite.True(reopened.IsOpen)
}

// TestUpdateNotFound tests updating an unknown program
func (suite *ProgramRepositoryTestSuite) TestUpdateNotFound() {
	updated, err := suite.repo.Update(404, map[string]interface{}{"is_open": false})

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(updated)
}

// TestProgramRepositoryTestSuite runs the test suite
func TestProgramRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ProgramRepositoryTestSuite))
}
