package handlers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"rewards-recognition-backend/internal/database/models"
	apperrors "rewards-recognition-backend/internal/errors"
	"rewards-recognition-backend/internal/mocks"
	"rewards-recognition-backend/internal/service"
	"rewards-recognition-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupDashboardRouter(t *testing.T, viewer *models.User) (*testutils.HTTPTestSuite, *mocks.MockDashboardServiceInterface) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockDashboardServiceInterface(ctrl)
	handler := NewDashboardHandler(svc)

	suite := testutils.SetupHTTPTest()
	group := suite.Router.Group("/", injectUser(viewer))
	group.GET("/dashboard/summary", handler.GetSummary)
	group.GET("/dashboard/manager", handler.GetManagerDashboard)
	group.GET("/dashboard/director", handler.GetDirectorDashboard)
	group.GET("/dashboard/director/managers", handler.GetDirectorManagers)
	group.GET("/dashboard/team-lead", handler.GetTeamLeadDashboard)
	group.GET("/dashboard/employee", handler.GetEmployeeDashboard)
	group.GET("/dashboard/teams/:id/nominations", handler.GetTeamNominations)
	group.GET("/dashboard/orphaned", handler.GetOrphanedNominations)

	return suite, svc
}

func TestGetSummaryHandler(t *testing.T) {
	viewer := testViewer(models.RoleManager)
	suite, svc := setupDashboardRouter(t, viewer)

	svc.EXPECT().Summary(viewer).Return(&service.DashboardSummaryResponse{
		Counts:               service.StatusCounts{Total: 12, Approved: 5},
		Recent:               []service.NominationResponse{{}},
		PendingApproval:      []service.NominationResponse{{}, {}},
		PendingApprovalCount: 2,
	}, nil)

	recorder := suite.MakeRequest(http.MethodGet, "/dashboard/summary", nil)

	var resp service.DashboardSummaryResponse
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &resp)
	assert.Equal(t, int64(12), resp.Counts.Total)
	assert.Equal(t, int64(5), resp.Counts.Approved)
	assert.Len(t, resp.Recent, 1)
	assert.Len(t, resp.PendingApproval, 2)
	assert.Equal(t, 2, resp.PendingApprovalCount)
}

func TestGetManagerDashboardHandler(t *testing.T) {
	viewer := testViewer(models.RoleManager)
	suite, svc := setupDashboardRouter(t, viewer)

	t.Run("explicit period", func(t *testing.T) {
		svc.EXPECT().ManagerSummary(viewer, 2026, 2).
			Return(&service.ApproverDashboardResponse{Period: "2026 Q2", Pending: 3}, nil)

		recorder := suite.MakeRequest(http.MethodGet, "/dashboard/manager?year=2026&quarter=2", nil)

		var resp service.ApproverDashboardResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &resp)
		assert.Equal(t, "2026 Q2", resp.Period)
		assert.Equal(t, 3, resp.Pending)
	})

	t.Run("defaults to the current quarter", func(t *testing.T) {
		now := time.Now().UTC()
		year := now.Year()
		quarter := int(now.Month()-1)/3 + 1

		svc.EXPECT().ManagerSummary(viewer, year, quarter).
			Return(&service.ApproverDashboardResponse{Period: fmt.Sprintf("%d Q%d", year, quarter)}, nil)

		recorder := suite.MakeRequest(http.MethodGet, "/dashboard/manager", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("invalid quarter", func(t *testing.T) {
		recorder := suite.MakeRequest(http.MethodGet, "/dashboard/manager?quarter=9", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid quarter")
	})

	t.Run("wrong role maps to 403", func(t *testing.T) {
		svc.EXPECT().ManagerSummary(viewer, 2026, 1).Return(nil, apperrors.ErrForbiddenRole)

		recorder := suite.MakeRequest(http.MethodGet, "/dashboard/manager?year=2026&quarter=1", nil)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
}

func TestGetDirectorDashboardHandler(t *testing.T) {
	viewer := testViewer(models.RoleDirector)
	suite, svc := setupDashboardRouter(t, viewer)

	svc.EXPECT().DirectorSummary(viewer, 2026, 4).
		Return(&service.ApproverDashboardResponse{Period: "2026 Q4", Total: 9, Approved: 7}, nil)

	recorder := suite.MakeRequest(http.MethodGet, "/dashboard/director?year=2026&quarter=4", nil)

	var resp service.ApproverDashboardResponse
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &resp)
	assert.Equal(t, 9, resp.Total)
	assert.Equal(t, 7, resp.Approved)
}

func TestGetTeamLeadDashboardHandler(t *testing.T) {
	viewer := testViewer(models.RoleTeamLead)
	suite, svc := setupDashboardRouter(t, viewer)
	quarterID := uuid.New()

	t.Run("period summary", func(t *testing.T) {
		svc.EXPECT().TeamLeadSummary(viewer, quarterID).
			Return(&service.TeamLeadDashboardResponse{Period: "2026 Q1", Submitted: 4}, nil)

		recorder := suite.MakeRequest(http.MethodGet, "/dashboard/team-lead?year_quarter_id="+quarterID.String(), nil)

		var resp service.TeamLeadDashboardResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &resp)
		assert.Equal(t, int64(4), resp.Submitted)
	})

	t.Run("missing period id", func(t *testing.T) {
		recorder := suite.MakeRequest(http.MethodGet, "/dashboard/team-lead", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid year quarter ID")
	})
}

func TestGetEmployeeDashboardHandler(t *testing.T) {
	viewer := testViewer(models.RoleEmployee)
	suite, svc := setupDashboardRouter(t, viewer)

	svc.EXPECT().EmployeeSummary(viewer).Return(&service.EmployeeDashboardResponse{
		ActivePeriod: "2026 Q3",
		Authored:     []service.NominationResponse{{}},
		Received:     []service.NominationResponse{},
	}, nil)

	recorder := suite.MakeRequest(http.MethodGet, "/dashboard/employee", nil)

	var resp service.EmployeeDashboardResponse
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &resp)
	assert.Equal(t, "2026 Q3", resp.ActivePeriod)
	assert.Len(t, resp.Authored, 1)
}

func TestGetTeamNominationsHandler(t *testing.T) {
	viewer := testViewer(models.RoleManager)
	suite, svc := setupDashboardRouter(t, viewer)
	teamID := uuid.New()
	quarterID := uuid.New()

	t.Run("listed", func(t *testing.T) {
		svc.EXPECT().TeamNominations(viewer, teamID, quarterID).
			Return([]service.NominationResponse{{}, {}}, nil)

		recorder := suite.MakeRequest(http.MethodGet,
			"/dashboard/teams/"+teamID.String()+"/nominations?year_quarter_id="+quarterID.String(), nil)

		var resp []service.NominationResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &resp)
		assert.Len(t, resp, 2)
	})

	t.Run("outside the chain maps to 403", func(t *testing.T) {
		svc.EXPECT().TeamNominations(viewer, teamID, quarterID).
			Return(nil, apperrors.NewAuthorizationError("viewer does not manage this team"))

		recorder := suite.MakeRequest(http.MethodGet,
			"/dashboard/teams/"+teamID.String()+"/nominations?year_quarter_id="+quarterID.String(), nil)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	t.Run("invalid team id", func(t *testing.T) {
		recorder := suite.MakeRequest(http.MethodGet,
			"/dashboard/teams/nope/nominations?year_quarter_id="+quarterID.String(), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid team ID")
	})
}

func TestGetDirectorManagersHandler(t *testing.T) {
	viewer := testViewer(models.RoleDirector)
	suite, svc := setupDashboardRouter(t, viewer)

	svc.EXPECT().DirectorManagers(viewer).Return([]service.UserSummary{
		{ID: uuid.New(), Name: "Manager One", Role: models.RoleManager},
	}, nil)

	recorder := suite.MakeRequest(http.MethodGet, "/dashboard/director/managers", nil)

	var resp []service.UserSummary
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &resp)
	assert.Len(t, resp, 1)
}

func TestGetOrphanedNominationsHandler(t *testing.T) {
	t.Run("admin sees the queue", func(t *testing.T) {
		viewer := testViewer(models.RoleAdmin)
		suite, svc := setupDashboardRouter(t, viewer)

		svc.EXPECT().Orphaned(viewer).Return([]service.NominationResponse{{}}, nil)

		recorder := suite.MakeRequest(http.MethodGet, "/dashboard/orphaned", nil)

		var resp []service.NominationResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &resp)
		assert.Len(t, resp, 1)
	})

	t.Run("non-admin maps to 403", func(t *testing.T) {
		viewer := testViewer(models.RoleManager)
		suite, svc := setupDashboardRouter(t, viewer)

		svc.EXPECT().Orphaned(viewer).Return(nil, apperrors.ErrForbiddenRole)

		recorder := suite.MakeRequest(http.MethodGet, "/dashboard/orphaned", nil)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
}
