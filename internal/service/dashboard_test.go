package service_test

import (
	"testing"
	"time"

	"rewards-recognition-backend/internal/database/models"
	apperrors "rewards-recognition-backend/internal/errors"
	"rewards-recognition-backend/internal/mocks"
	"rewards-recognition-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type dashboardServiceMocks struct {
	nominations *mocks.MockNominationRepositoryInterface
	approvals   *mocks.MockApprovalRepositoryInterface
	teams       *mocks.MockTeamRepositoryInterface
	users       *mocks.MockUserRepositoryInterface
	quarters    *mocks.MockYearQuarterRepositoryInterface
	visibility  *mocks.MockNominationServiceInterface
}

func newDashboardService(t *testing.T) (*service.DashboardService, *dashboardServiceMocks) {
	ctrl := gomock.NewController(t)
	m := &dashboardServiceMocks{
		nominations: mocks.NewMockNominationRepositoryInterface(ctrl),
		approvals:   mocks.NewMockApprovalRepositoryInterface(ctrl),
		teams:       mocks.NewMockTeamRepositoryInterface(ctrl),
		users:       mocks.NewMockUserRepositoryInterface(ctrl),
		quarters:    mocks.NewMockYearQuarterRepositoryInterface(ctrl),
		visibility:  mocks.NewMockNominationServiceInterface(ctrl),
	}
	svc := service.NewDashboardService(m.nominations, m.approvals, m.teams, m.users, m.quarters, m.visibility)
	return svc, m
}

func quarterNominations(statuses ...models.NominationStatus) ([]models.Nomination, []uuid.UUID) {
	nominations := make([]models.Nomination, 0, len(statuses))
	ids := make([]uuid.UUID, 0, len(statuses))
	for _, status := range statuses {
		n := models.Nomination{BaseModel: models.BaseModel{ID: uuid.New()}, Status: status}
		nominations = append(nominations, n)
		ids = append(ids, n.ID)
	}
	return nominations, ids
}

func TestSummaryRollsUpStatusCounts(t *testing.T) {
	t.Run("admin gets the exact global breakdown", func(t *testing.T) {
		svc, m := newDashboardService(t)
		admin := newUser(models.RoleAdmin, nil)

		m.visibility.EXPECT().ListVisible(admin).Return([]service.NominationResponse{
			{ID: uuid.New(), Status: models.StatusPendingManager},
		}, nil)
		m.nominations.EXPECT().CountByStatus().Return(map[models.NominationStatus]int64{
			models.StatusDraft:            2,
			models.StatusPendingManager:   3,
			models.StatusPendingDirector:  1,
			models.StatusManagerApproved:  4,
			models.StatusManagerRejected:  1,
			models.StatusDirectorApproved: 5,
			models.StatusDirectorRejected: 2,
		}, nil)

		summary, err := svc.Summary(admin)
		require.NoError(t, err)
		assert.Equal(t, int64(18), summary.Counts.Total)
		assert.Equal(t, int64(4), summary.Counts.Pending)
		assert.Equal(t, int64(9), summary.Counts.Approved)
		assert.Equal(t, int64(3), summary.Counts.Rejected)
		assert.Equal(t, int64(2), summary.Counts.Drafts)
		assert.Len(t, summary.Recent, 1)
		assert.Empty(t, summary.PendingApproval)
	})

	t.Run("manager counts the visible set and gets a capped queue", func(t *testing.T) {
		svc, m := newDashboardService(t)
		manager := newUser(models.RoleManager, nil)

		base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
		visible := make([]service.NominationResponse, 0, 12)
		for i := 0; i < 12; i++ {
			visible = append(visible, service.NominationResponse{
				ID:        uuid.New(),
				Status:    models.StatusPendingManager,
				CreatedAt: base.Add(time.Duration(i) * time.Minute),
			})
		}
		m.visibility.EXPECT().ListVisible(manager).Return(visible, nil)
		m.visibility.EXPECT().PendingForApprover(manager).Return(visible, nil)

		summary, err := svc.Summary(manager)
		require.NoError(t, err)
		assert.Equal(t, int64(12), summary.Counts.Total)
		assert.Equal(t, int64(12), summary.Counts.Pending)
		assert.Len(t, summary.Recent, 10)
		assert.Equal(t, visible[11].ID, summary.Recent[0].ID)
		// The list is capped but the count is the full queue size
		assert.Len(t, summary.PendingApproval, 10)
		assert.Equal(t, 12, summary.PendingApprovalCount)
	})
}

func TestManagerSummary(t *testing.T) {
	manager := newUser(models.RoleManager, nil)
	quarter := &models.YearQuarter{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Year:      2026,
		Quarter:   3,
	}

	t.Run("counts follow the quarter's nominations", func(t *testing.T) {
		svc, m := newDashboardService(t)
		teams := []models.Team{
			{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Platform"},
			{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Payments"},
		}
		teamIDs := []uuid.UUID{teams[0].ID, teams[1].ID}

		// Five submissions for the period: two still on the manager's desk,
		// two approved, one rejected. The rejected one was later overturned by
		// a director, which must not erase the manager's count.
		nominations, ids := quarterNominations(
			models.StatusPendingManager,
			models.StatusPendingManager,
			models.StatusManagerApproved,
			models.StatusDirectorApproved,
			models.StatusDirectorApproved,
		)

		m.teams.EXPECT().GetByManager(manager.ID).Return(teams, nil)
		m.quarters.EXPECT().GetByYearAndQuarter(2026, 3).Return(quarter, nil)
		m.nominations.EXPECT().GetByTeamsAndQuarter(teamIDs, quarter.ID).Return(nominations, nil)
		m.approvals.EXPECT().ActedNominationIDs(ids, models.LevelManager, models.ActionApproved).
			Return([]uuid.UUID{ids[2], ids[3]}, nil)
		m.approvals.EXPECT().ActedNominationIDs(ids, models.LevelManager, models.ActionRejected).
			Return([]uuid.UUID{ids[4]}, nil)

		dashboard, err := svc.ManagerSummary(manager, 2026, 3)
		require.NoError(t, err)
		assert.Equal(t, "2026 Q3", dashboard.Period)
		assert.Equal(t, 5, dashboard.Total)
		assert.Equal(t, 2, dashboard.Pending)
		assert.Equal(t, 2, dashboard.Approved)
		assert.Equal(t, 1, dashboard.Rejected)
		assert.Len(t, dashboard.Teams, 2)
	})

	t.Run("period with no record yields zero counts", func(t *testing.T) {
		svc, m := newDashboardService(t)
		teams := []models.Team{{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Platform"}}

		m.teams.EXPECT().GetByManager(manager.ID).Return(teams, nil)
		m.quarters.EXPECT().GetByYearAndQuarter(2031, 1).Return(nil, gorm.ErrRecordNotFound)

		dashboard, err := svc.ManagerSummary(manager, 2031, 1)
		require.NoError(t, err)
		assert.Equal(t, 0, dashboard.Total)
		assert.Equal(t, 0, dashboard.Pending)
		assert.Len(t, dashboard.Teams, 1)
	})

	t.Run("invalid quarter", func(t *testing.T) {
		svc, m := newDashboardService(t)

		m.teams.EXPECT().GetByManager(manager.ID).Return(nil, nil)

		_, err := svc.ManagerSummary(manager, 2026, 5)
		assert.ErrorIs(t, err, apperrors.ErrInvalidQuarter)
	})

	t.Run("only managers", func(t *testing.T) {
		svc, _ := newDashboardService(t)

		_, err := svc.ManagerSummary(newUser(models.RoleDirector, nil), 2026, 3)
		assert.ErrorIs(t, err, apperrors.ErrForbiddenRole)
	})
}

func TestDirectorSummary(t *testing.T) {
	director := newUser(models.RoleDirector, nil)
	quarter := &models.YearQuarter{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Year:      2026,
		Quarter:   1,
	}

	t.Run("counts reconcile with the quarter's total", func(t *testing.T) {
		svc, m := newDashboardService(t)
		teams := []models.Team{{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Platform"}}

		// Pending means no director entry yet, whatever the status says: the
		// manager-approved and pending-manager nominations both still await a
		// final decision.
		nominations, ids := quarterNominations(
			models.StatusDirectorApproved,
			models.StatusDirectorApproved,
			models.StatusDirectorRejected,
			models.StatusManagerApproved,
			models.StatusPendingManager,
		)

		m.teams.EXPECT().GetByDirector(director.ID).Return(teams, nil)
		m.quarters.EXPECT().GetByYearAndQuarter(2026, 1).Return(quarter, nil)
		m.nominations.EXPECT().GetByTeamsAndQuarter([]uuid.UUID{teams[0].ID}, quarter.ID).Return(nominations, nil)
		m.approvals.EXPECT().ActedNominationIDs(ids, models.LevelDirector, models.ActionApproved).
			Return([]uuid.UUID{ids[0], ids[1]}, nil)
		m.approvals.EXPECT().ActedNominationIDs(ids, models.LevelDirector, models.ActionRejected).
			Return([]uuid.UUID{ids[2]}, nil)

		dashboard, err := svc.DirectorSummary(director, 2026, 1)
		require.NoError(t, err)
		assert.Equal(t, 5, dashboard.Total)
		assert.Equal(t, 2, dashboard.Approved)
		assert.Equal(t, 1, dashboard.Rejected)
		assert.Equal(t, 2, dashboard.Pending)
		assert.Equal(t, dashboard.Total, dashboard.Approved+dashboard.Rejected+dashboard.Pending)
	})

	t.Run("no teams short-circuits", func(t *testing.T) {
		svc, m := newDashboardService(t)

		m.teams.EXPECT().GetByDirector(director.ID).Return(nil, nil)
		m.quarters.EXPECT().GetByYearAndQuarter(2026, 1).Return(quarter, nil)

		dashboard, err := svc.DirectorSummary(director, 2026, 1)
		require.NoError(t, err)
		assert.Equal(t, 0, dashboard.Total)
		assert.Empty(t, dashboard.Teams)
	})

	t.Run("only directors", func(t *testing.T) {
		svc, _ := newDashboardService(t)

		_, err := svc.DirectorSummary(newUser(models.RoleManager, nil), 2026, 1)
		assert.ErrorIs(t, err, apperrors.ErrForbiddenRole)
	})
}

func TestTeamLeadSummary(t *testing.T) {
	teamLead := newUser(models.RoleTeamLead, nil)
	quarter := &models.YearQuarter{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Year:      2026,
		Quarter:   2,
	}

	t.Run("submitted nominations in the period", func(t *testing.T) {
		svc, m := newDashboardService(t)
		nominations := []models.Nomination{
			{BaseModel: models.BaseModel{ID: uuid.New()}, Status: models.StatusPendingManager},
			{BaseModel: models.BaseModel{ID: uuid.New()}, Status: models.StatusDirectorApproved},
			{BaseModel: models.BaseModel{ID: uuid.New()}, Status: models.StatusDirectorApproved},
		}

		m.quarters.EXPECT().GetByID(quarter.ID).Return(quarter, nil)
		m.nominations.EXPECT().GetByQuarterAndNominators(quarter.ID, []uuid.UUID{teamLead.ID}).Return(nominations, nil)

		dashboard, err := svc.TeamLeadSummary(teamLead, quarter.ID)
		require.NoError(t, err)
		assert.Equal(t, "2026 Q2", dashboard.Period)
		assert.Equal(t, int64(3), dashboard.Submitted)
		assert.Equal(t, int64(2), dashboard.Counts.Approved)
		assert.Equal(t, int64(1), dashboard.Counts.Pending)
		assert.Len(t, dashboard.Nominations, 3)
	})

	t.Run("unknown period", func(t *testing.T) {
		svc, m := newDashboardService(t)

		m.quarters.EXPECT().GetByID(quarter.ID).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.TeamLeadSummary(teamLead, quarter.ID)
		assert.ErrorIs(t, err, apperrors.ErrYearQuarterNotFound)
	})

	t.Run("only team leads", func(t *testing.T) {
		svc, _ := newDashboardService(t)

		_, err := svc.TeamLeadSummary(newUser(models.RoleEmployee, nil), quarter.ID)
		assert.ErrorIs(t, err, apperrors.ErrForbiddenRole)
	})
}

func TestEmployeeSummary(t *testing.T) {
	employee := newUser(models.RoleEmployee, nil)

	t.Run("authored and received with active period", func(t *testing.T) {
		svc, m := newDashboardService(t)

		m.nominations.EXPECT().GetByNominator(employee.ID).Return([]models.Nomination{{}}, nil)
		m.nominations.EXPECT().GetForNominee(employee.ID).Return([]models.Nomination{{}, {}}, nil)
		m.quarters.EXPECT().GetActive().Return(&models.YearQuarter{Year: 2026, Quarter: 3}, nil)

		dashboard, err := svc.EmployeeSummary(employee)
		require.NoError(t, err)
		assert.Equal(t, "2026 Q3", dashboard.ActivePeriod)
		assert.Len(t, dashboard.Authored, 1)
		assert.Len(t, dashboard.Received, 2)
	})

	t.Run("no active period is not an error", func(t *testing.T) {
		svc, m := newDashboardService(t)

		m.nominations.EXPECT().GetByNominator(employee.ID).Return(nil, nil)
		m.nominations.EXPECT().GetForNominee(employee.ID).Return(nil, nil)
		m.quarters.EXPECT().GetActive().Return(nil, gorm.ErrRecordNotFound)

		dashboard, err := svc.EmployeeSummary(employee)
		require.NoError(t, err)
		assert.Empty(t, dashboard.ActivePeriod)
	})
}

func TestTeamNominations(t *testing.T) {
	team := &models.Team{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		Name:       "Platform",
		ManagerID:  uuid.New(),
		DirectorID: uuid.New(),
	}
	quarterID := uuid.New()

	t.Run("chain manager may list", func(t *testing.T) {
		svc, m := newDashboardService(t)
		manager := newUser(models.RoleManager, nil)
		manager.ID = team.ManagerID

		m.teams.EXPECT().GetByID(team.ID).Return(team, nil)
		m.nominations.EXPECT().GetByTeamsAndQuarter([]uuid.UUID{team.ID}, quarterID).Return([]models.Nomination{{}}, nil)

		nominations, err := svc.TeamNominations(manager, team.ID, quarterID)
		require.NoError(t, err)
		assert.Len(t, nominations, 1)
	})

	t.Run("admin may list any team", func(t *testing.T) {
		svc, m := newDashboardService(t)

		m.teams.EXPECT().GetByID(team.ID).Return(team, nil)
		m.nominations.EXPECT().GetByTeamsAndQuarter([]uuid.UUID{team.ID}, quarterID).Return(nil, nil)

		_, err := svc.TeamNominations(newUser(models.RoleAdmin, nil), team.ID, quarterID)
		assert.NoError(t, err)
	})

	t.Run("manager outside the chain is refused", func(t *testing.T) {
		svc, m := newDashboardService(t)

		m.teams.EXPECT().GetByID(team.ID).Return(team, nil)

		_, err := svc.TeamNominations(newUser(models.RoleManager, nil), team.ID, quarterID)
		assert.True(t, apperrors.IsAuthorization(err))
	})

	t.Run("members cannot list through the dashboard", func(t *testing.T) {
		svc, m := newDashboardService(t)

		m.teams.EXPECT().GetByID(team.ID).Return(team, nil)

		_, err := svc.TeamNominations(newUser(models.RoleEmployee, nil), team.ID, quarterID)
		assert.ErrorIs(t, err, apperrors.ErrForbiddenRole)
	})

	t.Run("unknown team", func(t *testing.T) {
		svc, m := newDashboardService(t)

		m.teams.EXPECT().GetByID(team.ID).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.TeamNominations(newUser(models.RoleAdmin, nil), team.ID, quarterID)
		assert.ErrorIs(t, err, apperrors.ErrTeamNotFound)
	})
}

func TestDirectorManagers(t *testing.T) {
	director := newUser(models.RoleDirector, nil)
	sharedManager := newUser(models.RoleManager, nil)

	t.Run("deduplicates managers across teams", func(t *testing.T) {
		svc, m := newDashboardService(t)
		teams := []models.Team{
			{BaseModel: models.BaseModel{ID: uuid.New()}, ManagerID: sharedManager.ID},
			{BaseModel: models.BaseModel{ID: uuid.New()}, ManagerID: sharedManager.ID},
		}

		m.teams.EXPECT().GetByDirector(director.ID).Return(teams, nil)
		m.users.EXPECT().GetByID(sharedManager.ID).Return(sharedManager, nil)

		managers, err := svc.DirectorManagers(director)
		require.NoError(t, err)
		require.Len(t, managers, 1)
		assert.Equal(t, sharedManager.ID, managers[0].ID)
	})

	t.Run("skips managers that no longer exist", func(t *testing.T) {
		svc, m := newDashboardService(t)
		goneID := uuid.New()
		teams := []models.Team{
			{BaseModel: models.BaseModel{ID: uuid.New()}, ManagerID: goneID},
			{BaseModel: models.BaseModel{ID: uuid.New()}, ManagerID: sharedManager.ID},
		}

		m.teams.EXPECT().GetByDirector(director.ID).Return(teams, nil)
		m.users.EXPECT().GetByID(goneID).Return(nil, gorm.ErrRecordNotFound)
		m.users.EXPECT().GetByID(sharedManager.ID).Return(sharedManager, nil)

		managers, err := svc.DirectorManagers(director)
		require.NoError(t, err)
		assert.Len(t, managers, 1)
	})

	t.Run("only directors", func(t *testing.T) {
		svc, _ := newDashboardService(t)

		_, err := svc.DirectorManagers(newUser(models.RoleManager, nil))
		assert.ErrorIs(t, err, apperrors.ErrForbiddenRole)
	})
}

func TestOrphanedAdminOnly(t *testing.T) {
	t.Run("admin sees the repair queue", func(t *testing.T) {
		svc, m := newDashboardService(t)

		m.nominations.EXPECT().GetOrphaned().Return([]models.Nomination{{}}, nil)

		orphaned, err := svc.Orphaned(newUser(models.RoleAdmin, nil))
		require.NoError(t, err)
		assert.Len(t, orphaned, 1)
	})

	t.Run("everyone else is refused", func(t *testing.T) {
		svc, _ := newDashboardService(t)

		_, err := svc.Orphaned(newUser(models.RoleDirector, nil))
		assert.ErrorIs(t, err, apperrors.ErrForbiddenRole)
	})
}
