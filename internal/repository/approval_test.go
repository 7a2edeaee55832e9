//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"rewards-recognition-backend/internal/database/models"
	"rewards-recognition-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// ApprovalRepositoryTestSuite tests the ApprovalRepository
type ApprovalRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ApprovalRepository

	users       *testutils.UserFactory
	teams       *testutils.TeamFactory
	categories  *testutils.CategoryFactory
	quarters    *testutils.YearQuarterFactory
	nominations *testutils.NominationFactory
	approvals   *testutils.ApprovalFactory
}

// SetupSuite runs before all tests in the suite
func (suite *ApprovalRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewApprovalRepository(suite.baseTestSuite.DB)

	suite.users = testutils.NewUserFactory()
	suite.teams = testutils.NewTeamFactory()
	suite.categories = testutils.NewCategoryFactory()
	suite.quarters = testutils.NewYearQuarterFactory()
	suite.nominations = testutils.NewNominationFactory()
	suite.approvals = testutils.NewApprovalFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *ApprovalRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ApprovalRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ApprovalRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// seed inserts the minimum graph for ledger entries: review chain, team,
// nominee, category, quarter and one nomination
func (suite *ApprovalRepositoryTestSuite) seed() (*models.Nomination, *models.User, *models.User) {
	db := suite.baseTestSuite.DB

	teamLead := suite.users.WithRole(models.RoleTeamLead)
	manager := suite.users.WithRole(models.RoleManager)
	director := suite.users.WithRole(models.RoleDirector)
	suite.Require().NoError(db.Create(teamLead).Error)
	suite.Require().NoError(db.Create(manager).Error)
	suite.Require().NoError(db.Create(director).Error)

	team := suite.teams.Create(teamLead.ID, manager.ID, director.ID)
	suite.Require().NoError(db.Create(team).Error)

	nominee := suite.users.WithTeam(team.ID)
	suite.Require().NoError(db.Create(nominee).Error)

	category := suite.categories.Create()
	suite.Require().NoError(db.Create(category).Error)

	quarter := suite.quarters.Active(2025, 1)
	suite.Require().NoError(db.Create(quarter).Error)

	nomination := suite.nominations.Create(teamLead.ID, nominee.ID, category.ID, quarter.ID)
	suite.Require().NoError(db.Create(nomination).Error)

	return nomination, manager, director
}

// TestCreateAndGetByNomination tests appending entries and reading them in
// action order
func (suite *ApprovalRepositoryTestSuite) TestCreateAndGetByNomination() {
	nomination, manager, director := suite.seed()

	first := suite.approvals.Create(nomination.ID, manager.ID, models.ActionApproved, models.LevelManager)
	first.ActionAt = time.Now().Add(-time.Hour)
	suite.NoError(suite.repo.Create(first))

	second := suite.approvals.Create(nomination.ID, director.ID, models.ActionApproved, models.LevelDirector)
	suite.NoError(suite.repo.Create(second))

	history, err := suite.repo.GetByNomination(nomination.ID)

	suite.NoError(err)
	suite.Len(history, 2)
	suite.Equal(manager.ID, history[0].ApproverID)
	suite.Equal(director.ID, history[1].ApproverID)
	suite.NotNil(history[0].Approver)
}

// TestHasApproverActed tests the read-side duplicate guard
func (suite *ApprovalRepositoryTestSuite) TestHasApproverActed() {
	nomination, manager, director := suite.seed()

	entry := suite.approvals.Create(nomination.ID, manager.ID, models.ActionApproved, models.LevelManager)
	suite.NoError(suite.repo.Create(entry))

	acted, err := suite.repo.HasApproverActed(manager.ID, nomination.ID)
	suite.NoError(err)
	suite.True(acted)

	acted, err = suite.repo.HasApproverActed(director.ID, nomination.ID)
	suite.NoError(err)
	suite.False(acted)
}

// TestUniqueIndexRejectsSecondEntry tests the write-side duplicate guard
func (suite *ApprovalRepositoryTestSuite) TestUniqueIndexRejectsSecondEntry() {
	nomination, manager, _ := suite.seed()

	first := suite.approvals.Create(nomination.ID, manager.ID, models.ActionApproved, models.LevelManager)
	suite.NoError(suite.repo.Create(first))

	second := suite.approvals.Create(nomination.ID, manager.ID, models.ActionRejected, models.LevelManager)
	suite.Error(suite.repo.Create(second))
}

// TestActedNominationIDs tests the ledger-derived dashboard lookup
func (suite *ApprovalRepositoryTestSuite) TestActedNominationIDs() {
	nomination, manager, director := suite.seed()

	// The nomination belongs to 2025 Q1 but the manager only got to it in
	// April. Period attribution follows the nomination, so the late decision
	// still counts.
	late := suite.approvals.Create(nomination.ID, manager.ID, models.ActionApproved, models.LevelManager)
	late.ActionAt = time.Date(2025, 4, 2, 9, 0, 0, 0, time.UTC)
	suite.NoError(suite.repo.Create(late))

	directorEntry := suite.approvals.Create(nomination.ID, director.ID, models.ActionRejected, models.LevelDirector)
	directorEntry.ActionAt = time.Date(2025, 4, 3, 9, 0, 0, 0, time.UTC)
	suite.NoError(suite.repo.Create(directorEntry))

	// A decided nomination outside the requested set must not leak in
	other := suite.nominations.Create(nomination.NominatorID, nomination.NomineeID, nomination.CategoryID, nomination.YearQuarterID)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(other).Error)
	otherEntry := suite.approvals.Create(other.ID, manager.ID, models.ActionApproved, models.LevelManager)
	suite.NoError(suite.repo.Create(otherEntry))

	set := []uuid.UUID{nomination.ID}

	// The manager approval survives in the count even though the director
	// later rejected the nomination
	ids, err := suite.repo.ActedNominationIDs(set, models.LevelManager, models.ActionApproved)
	suite.NoError(err)
	suite.Equal([]uuid.UUID{nomination.ID}, ids)

	// Wrong action yields nothing
	ids, err = suite.repo.ActedNominationIDs(set, models.LevelManager, models.ActionRejected)
	suite.NoError(err)
	suite.Empty(ids)

	// An empty set short-circuits
	ids, err = suite.repo.ActedNominationIDs(nil, models.LevelManager, models.ActionApproved)
	suite.NoError(err)
	suite.Empty(ids)
}

// Run the test suite
func TestApprovalRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ApprovalRepositoryTestSuite))
}
