package service_test

import (
	"testing"

	"rewards-recognition-backend/internal/database/models"
	apperrors "rewards-recognition-backend/internal/errors"
	"rewards-recognition-backend/internal/mocks"
	"rewards-recognition-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type nominationServiceMocks struct {
	nominations *mocks.MockNominationRepositoryInterface
	approvals   *mocks.MockApprovalRepositoryInterface
	users       *mocks.MockUserRepositoryInterface
	categories  *mocks.MockCategoryRepositoryInterface
	quarters    *mocks.MockYearQuarterRepositoryInterface
	notifier    *mocks.MockNotifier
}

func newNominationService(t *testing.T, requireManagerFirst bool) (*service.NominationService, *nominationServiceMocks) {
	ctrl := gomock.NewController(t)
	m := &nominationServiceMocks{
		nominations: mocks.NewMockNominationRepositoryInterface(ctrl),
		approvals:   mocks.NewMockApprovalRepositoryInterface(ctrl),
		users:       mocks.NewMockUserRepositoryInterface(ctrl),
		categories:  mocks.NewMockCategoryRepositoryInterface(ctrl),
		quarters:    mocks.NewMockYearQuarterRepositoryInterface(ctrl),
		notifier:    mocks.NewMockNotifier(ctrl),
	}
	svc := service.NewNominationService(
		m.nominations, m.approvals, m.users, m.categories, m.quarters,
		m.notifier, validator.New(), requireManagerFirst,
	)
	return svc, m
}

func newUser(role models.Role, teamID *uuid.UUID) *models.User {
	return &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Test User",
		Email:     "user@test.com",
		Role:      role,
		TeamID:    teamID,
		IsActive:  true,
	}
}

// reviewFixture wires a nominee, their team and both approvers so scope checks
// resolve against a consistent chain.
type reviewFixture struct {
	manager    *models.User
	director   *models.User
	nominee    *models.User
	team       *models.Team
	nomination *models.Nomination
}

func newReviewFixture(status models.NominationStatus, version int) *reviewFixture {
	manager := newUser(models.RoleManager, nil)
	director := newUser(models.RoleDirector, nil)

	team := &models.Team{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		Name:       "Platform",
		TeamLeadID: uuid.New(),
		ManagerID:  manager.ID,
		DirectorID: director.ID,
	}
	nominee := newUser(models.RoleEmployee, &team.ID)
	nominee.Team = team

	nomination := &models.Nomination{
		BaseModel:     models.BaseModel{ID: uuid.New()},
		NominatorID:   uuid.New(),
		NomineeID:     nominee.ID,
		CategoryID:    uuid.New(),
		YearQuarterID: uuid.New(),
		Description:   "desc",
		Achievements:  "achievements",
		Status:        status,
		Version:       version,
		Nominee:       nominee,
	}

	return &reviewFixture{
		manager:    manager,
		director:   director,
		nominee:    nominee,
		team:       team,
		nomination: nomination,
	}
}

func TestCreateNomination(t *testing.T) {
	nominator := newUser(models.RoleTeamLead, nil)
	fx := newReviewFixture(models.StatusPendingManager, 0)
	quarterID := uuid.New()

	req := &service.CreateNominationRequest{
		NomineeID:     fx.nominee.ID,
		CategoryID:    uuid.New(),
		YearQuarterID: &quarterID,
		Description:   "shipped the migration",
		Achievements:  "zero downtime cutover",
	}

	t.Run("submitted nomination enters the manager queue", func(t *testing.T) {
		svc, m := newNominationService(t, false)
		createdID := uuid.New()

		m.users.EXPECT().GetWithTeam(fx.nominee.ID).Return(fx.nominee, nil)
		m.categories.EXPECT().GetByID(req.CategoryID).Return(&models.Category{}, nil)
		m.quarters.EXPECT().GetByID(quarterID).Return(&models.YearQuarter{BaseModel: models.BaseModel{ID: quarterID}}, nil)
		m.nominations.EXPECT().Create(gomock.Any()).DoAndReturn(func(n *models.Nomination) error {
			assert.Equal(t, models.StatusPendingManager, n.Status)
			assert.Equal(t, nominator.ID, n.NominatorID)
			assert.Equal(t, quarterID, n.YearQuarterID)
			n.ID = createdID
			return nil
		})
		m.nominations.EXPECT().GetByID(createdID).Return(&models.Nomination{
			BaseModel: models.BaseModel{ID: createdID},
			Status:    models.StatusPendingManager,
		}, nil)

		resp, err := svc.Create(nominator, req)
		require.NoError(t, err)
		assert.Equal(t, createdID, resp.ID)
		assert.Equal(t, models.StatusPendingManager, resp.Status)
	})

	t.Run("draft stays out of the review queue", func(t *testing.T) {
		svc, m := newNominationService(t, false)
		createdID := uuid.New()

		draftReq := *req
		draftReq.AsDraft = true

		m.users.EXPECT().GetWithTeam(fx.nominee.ID).Return(fx.nominee, nil)
		m.categories.EXPECT().GetByID(req.CategoryID).Return(&models.Category{}, nil)
		m.quarters.EXPECT().GetByID(quarterID).Return(&models.YearQuarter{BaseModel: models.BaseModel{ID: quarterID}}, nil)
		m.nominations.EXPECT().Create(gomock.Any()).DoAndReturn(func(n *models.Nomination) error {
			assert.Equal(t, models.StatusDraft, n.Status)
			n.ID = createdID
			return nil
		})
		m.nominations.EXPECT().GetByID(createdID).Return(&models.Nomination{
			BaseModel: models.BaseModel{ID: createdID},
			Status:    models.StatusDraft,
		}, nil)

		resp, err := svc.Create(nominator, &draftReq)
		require.NoError(t, err)
		assert.Equal(t, models.StatusDraft, resp.Status)
	})

	t.Run("missing period falls back to the active quarter", func(t *testing.T) {
		svc, m := newNominationService(t, false)
		activeID := uuid.New()
		createdID := uuid.New()

		fallbackReq := *req
		fallbackReq.YearQuarterID = nil

		m.users.EXPECT().GetWithTeam(fx.nominee.ID).Return(fx.nominee, nil)
		m.categories.EXPECT().GetByID(req.CategoryID).Return(&models.Category{}, nil)
		m.quarters.EXPECT().GetActive().Return(&models.YearQuarter{BaseModel: models.BaseModel{ID: activeID}}, nil)
		m.nominations.EXPECT().Create(gomock.Any()).DoAndReturn(func(n *models.Nomination) error {
			assert.Equal(t, activeID, n.YearQuarterID)
			n.ID = createdID
			return nil
		})
		m.nominations.EXPECT().GetByID(createdID).Return(&models.Nomination{BaseModel: models.BaseModel{ID: createdID}}, nil)

		_, err := svc.Create(nominator, &fallbackReq)
		require.NoError(t, err)
	})

	t.Run("no active quarter rejects the fallback", func(t *testing.T) {
		svc, m := newNominationService(t, false)

		fallbackReq := *req
		fallbackReq.YearQuarterID = nil

		m.users.EXPECT().GetWithTeam(fx.nominee.ID).Return(fx.nominee, nil)
		m.categories.EXPECT().GetByID(req.CategoryID).Return(&models.Category{}, nil)
		m.quarters.EXPECT().GetActive().Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Create(nominator, &fallbackReq)
		assert.ErrorIs(t, err, apperrors.ErrInvalidPeriod)
	})

	t.Run("unknown nominee", func(t *testing.T) {
		svc, m := newNominationService(t, false)

		m.users.EXPECT().GetWithTeam(fx.nominee.ID).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Create(nominator, req)
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})

	t.Run("unknown category", func(t *testing.T) {
		svc, m := newNominationService(t, false)

		m.users.EXPECT().GetWithTeam(fx.nominee.ID).Return(fx.nominee, nil)
		m.categories.EXPECT().GetByID(req.CategoryID).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Create(nominator, req)
		assert.ErrorIs(t, err, apperrors.ErrCategoryNotFound)
	})
}

func TestSubmitReviewManagerApproves(t *testing.T) {
	svc, m := newNominationService(t, false)
	fx := newReviewFixture(models.StatusPendingManager, 2)
	req := &service.ReviewRequest{Action: models.ActionApproved, Remarks: "well earned"}

	m.nominations.EXPECT().GetByID(fx.nomination.ID).Return(fx.nomination, nil)
	m.approvals.EXPECT().HasApproverActed(fx.manager.ID, fx.nomination.ID).Return(false, nil)
	m.nominations.EXPECT().ApplyReview(fx.nomination.ID, 2, models.StatusManagerApproved, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, _ int, _ models.NominationStatus, entry *models.Approval) error {
			assert.Equal(t, fx.manager.ID, entry.ApproverID)
			assert.Equal(t, models.LevelManager, entry.Level)
			assert.Equal(t, models.ActionApproved, entry.Action)
			assert.Equal(t, "well earned", entry.Remarks)
			return nil
		})
	m.nominations.EXPECT().GetByID(fx.nomination.ID).Return(&models.Nomination{
		BaseModel: models.BaseModel{ID: fx.nomination.ID},
		Status:    models.StatusManagerApproved,
		Version:   3,
	}, nil)

	resp, err := svc.SubmitReview(fx.manager, fx.nomination.ID, req)
	require.NoError(t, err)
	assert.Equal(t, models.StatusManagerApproved, resp.Status)
	assert.Equal(t, 3, resp.Version)
}

func TestSubmitReviewDirectorApprovalNotifies(t *testing.T) {
	svc, m := newNominationService(t, false)
	fx := newReviewFixture(models.StatusManagerApproved, 1)
	req := &service.ReviewRequest{Action: models.ActionApproved}

	final := &models.Nomination{
		BaseModel: models.BaseModel{ID: fx.nomination.ID},
		Status:    models.StatusDirectorApproved,
		Version:   2,
	}

	m.nominations.EXPECT().GetByID(fx.nomination.ID).Return(fx.nomination, nil)
	m.approvals.EXPECT().HasApproverActed(fx.director.ID, fx.nomination.ID).Return(false, nil)
	m.nominations.EXPECT().ApplyReview(fx.nomination.ID, 1, models.StatusDirectorApproved, gomock.Any()).Return(nil)
	m.nominations.EXPECT().GetByID(fx.nomination.ID).Return(final, nil)
	m.notifier.EXPECT().NominationApproved(final)

	resp, err := svc.SubmitReview(fx.director, fx.nomination.ID, req)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDirectorApproved, resp.Status)
}

func TestSubmitReviewRejectionDoesNotNotify(t *testing.T) {
	svc, m := newNominationService(t, false)
	fx := newReviewFixture(models.StatusPendingManager, 0)
	req := &service.ReviewRequest{Action: models.ActionRejected}

	m.nominations.EXPECT().GetByID(fx.nomination.ID).Return(fx.nomination, nil)
	m.approvals.EXPECT().HasApproverActed(fx.director.ID, fx.nomination.ID).Return(false, nil)
	m.nominations.EXPECT().ApplyReview(fx.nomination.ID, 0, models.StatusDirectorRejected, gomock.Any()).Return(nil)
	m.nominations.EXPECT().GetByID(fx.nomination.ID).Return(&models.Nomination{
		BaseModel: models.BaseModel{ID: fx.nomination.ID},
		Status:    models.StatusDirectorRejected,
		Version:   1,
	}, nil)

	resp, err := svc.SubmitReview(fx.director, fx.nomination.ID, req)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDirectorRejected, resp.Status)
}

func TestSubmitReviewOutsideChain(t *testing.T) {
	svc, m := newNominationService(t, false)
	fx := newReviewFixture(models.StatusPendingManager, 0)
	otherManager := newUser(models.RoleManager, nil)

	m.nominations.EXPECT().GetByID(fx.nomination.ID).Return(fx.nomination, nil)

	_, err := svc.SubmitReview(otherManager, fx.nomination.ID, &service.ReviewRequest{Action: models.ActionApproved})
	assert.True(t, apperrors.IsAuthorization(err))
}

func TestSubmitReviewDuplicateApprover(t *testing.T) {
	svc, m := newNominationService(t, false)
	fx := newReviewFixture(models.StatusPendingDirector, 1)

	m.nominations.EXPECT().GetByID(fx.nomination.ID).Return(fx.nomination, nil)
	m.approvals.EXPECT().HasApproverActed(fx.director.ID, fx.nomination.ID).Return(true, nil)

	_, err := svc.SubmitReview(fx.director, fx.nomination.ID, &service.ReviewRequest{Action: models.ActionApproved})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateApproval)
}

func TestSubmitReviewFinalizedBeatsDuplicate(t *testing.T) {
	// A repeat approver on a closed nomination hears "finalized", not
	// "duplicate": the terminal state check runs before the ledger lookup.
	svc, m := newNominationService(t, false)
	fx := newReviewFixture(models.StatusDirectorApproved, 2)

	m.nominations.EXPECT().GetByID(fx.nomination.ID).Return(fx.nomination, nil)

	_, err := svc.SubmitReview(fx.director, fx.nomination.ID, &service.ReviewRequest{Action: models.ActionRejected})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyFinalized)
}

func TestSubmitReviewRetriesLostRace(t *testing.T) {
	svc, m := newNominationService(t, false)
	fx := newReviewFixture(models.StatusPendingManager, 2)
	req := &service.ReviewRequest{Action: models.ActionApproved}

	refreshed := newReviewFixture(models.StatusPendingManager, 3)
	refreshed.nomination.BaseModel.ID = fx.nomination.ID
	refreshed.nomination.Nominee = fx.nominee
	refreshed.nomination.NomineeID = fx.nominee.ID

	gomock.InOrder(
		m.nominations.EXPECT().GetByID(fx.nomination.ID).Return(fx.nomination, nil),
		m.nominations.EXPECT().ApplyReview(fx.nomination.ID, 2, models.StatusManagerApproved, gomock.Any()).
			Return(apperrors.ErrConcurrentModification),
		m.nominations.EXPECT().GetByID(fx.nomination.ID).Return(refreshed.nomination, nil),
		m.nominations.EXPECT().ApplyReview(fx.nomination.ID, 3, models.StatusManagerApproved, gomock.Any()).Return(nil),
		m.nominations.EXPECT().GetByID(fx.nomination.ID).Return(&models.Nomination{
			BaseModel: models.BaseModel{ID: fx.nomination.ID},
			Status:    models.StatusManagerApproved,
			Version:   4,
		}, nil),
	)
	m.approvals.EXPECT().HasApproverActed(fx.manager.ID, fx.nomination.ID).Return(false, nil).Times(2)

	resp, err := svc.SubmitReview(fx.manager, fx.nomination.ID, req)
	require.NoError(t, err)
	assert.Equal(t, models.StatusManagerApproved, resp.Status)
}

func TestSubmitReviewSurfacesRepeatedRace(t *testing.T) {
	svc, m := newNominationService(t, false)
	fx := newReviewFixture(models.StatusPendingManager, 0)
	req := &service.ReviewRequest{Action: models.ActionApproved}

	m.nominations.EXPECT().GetByID(fx.nomination.ID).Return(fx.nomination, nil).Times(2)
	m.approvals.EXPECT().HasApproverActed(fx.manager.ID, fx.nomination.ID).Return(false, nil).Times(2)
	m.nominations.EXPECT().ApplyReview(fx.nomination.ID, 0, models.StatusManagerApproved, gomock.Any()).
		Return(apperrors.ErrConcurrentModification).Times(2)

	_, err := svc.SubmitReview(fx.manager, fx.nomination.ID, req)
	assert.ErrorIs(t, err, apperrors.ErrConcurrentModification)
}

func TestSubmitReviewTeamlessNominee(t *testing.T) {
	svc, m := newNominationService(t, false)
	fx := newReviewFixture(models.StatusPendingManager, 0)
	fx.nominee.Team = nil
	fx.nominee.TeamID = nil

	m.nominations.EXPECT().GetByID(fx.nomination.ID).Return(fx.nomination, nil)

	_, err := svc.SubmitReview(fx.manager, fx.nomination.ID, &service.ReviewRequest{Action: models.ActionApproved})
	assert.ErrorIs(t, err, apperrors.ErrNomineeHasNoTeam)
}

func TestSubmitReviewNonReviewingRole(t *testing.T) {
	svc, _ := newNominationService(t, false)
	employee := newUser(models.RoleEmployee, nil)

	_, err := svc.SubmitReview(employee, uuid.New(), &service.ReviewRequest{Action: models.ActionApproved})
	assert.ErrorIs(t, err, apperrors.ErrForbiddenRole)
}

func TestSubmitReviewStrictPolicyBlocksDirector(t *testing.T) {
	svc, m := newNominationService(t, true)
	fx := newReviewFixture(models.StatusPendingManager, 0)

	m.nominations.EXPECT().GetByID(fx.nomination.ID).Return(fx.nomination, nil)

	_, err := svc.SubmitReview(fx.director, fx.nomination.ID, &service.ReviewRequest{Action: models.ActionApproved})
	assert.ErrorIs(t, err, apperrors.ErrManagerReviewRequired)
}

func TestListVisibleMemberUnion(t *testing.T) {
	svc, m := newNominationService(t, false)
	teamID := uuid.New()
	employee := newUser(models.RoleEmployee, &teamID)

	a := models.Nomination{BaseModel: models.BaseModel{ID: uuid.New()}}
	b := models.Nomination{BaseModel: models.BaseModel{ID: uuid.New()}}
	c := models.Nomination{BaseModel: models.BaseModel{ID: uuid.New()}}
	d := models.Nomination{BaseModel: models.BaseModel{ID: uuid.New()}}

	m.nominations.EXPECT().GetByNominator(employee.ID).Return([]models.Nomination{a, b}, nil)
	m.nominations.EXPECT().GetForNominee(employee.ID).Return([]models.Nomination{b, c}, nil)
	m.nominations.EXPECT().GetByTeam(teamID).Return([]models.Nomination{c, d}, nil)

	visible, err := svc.ListVisible(employee)
	require.NoError(t, err)
	assert.Len(t, visible, 4)

	seen := make(map[uuid.UUID]bool)
	for _, n := range visible {
		assert.False(t, seen[n.ID], "nomination %s duplicated in union", n.ID)
		seen[n.ID] = true
	}
}

func TestListVisibleAdminSeesAll(t *testing.T) {
	svc, m := newNominationService(t, false)
	admin := newUser(models.RoleAdmin, nil)

	m.nominations.EXPECT().GetAll(1000, 0).Return([]models.Nomination{{}, {}}, int64(2), nil)

	visible, err := svc.ListVisible(admin)
	require.NoError(t, err)
	assert.Len(t, visible, 2)
}

func TestListVisibleManagerScope(t *testing.T) {
	svc, m := newNominationService(t, false)
	manager := newUser(models.RoleManager, nil)

	m.nominations.EXPECT().GetForManager(manager.ID).Return([]models.Nomination{{}}, nil)

	visible, err := svc.ListVisible(manager)
	require.NoError(t, err)
	assert.Len(t, visible, 1)
}

func TestPendingForApprover(t *testing.T) {
	t.Run("director queue honors the active policy", func(t *testing.T) {
		svc, m := newNominationService(t, true)
		director := newUser(models.RoleDirector, nil)

		m.nominations.EXPECT().GetPendingForDirector(director.ID, true).Return([]models.Nomination{{}}, nil)

		pending, err := svc.PendingForApprover(director)
		require.NoError(t, err)
		assert.Len(t, pending, 1)
	})

	t.Run("employees have no queue", func(t *testing.T) {
		svc, _ := newNominationService(t, false)

		_, err := svc.PendingForApprover(newUser(models.RoleEmployee, nil))
		assert.ErrorIs(t, err, apperrors.ErrForbiddenRole)
	})
}

func TestUpdateDraft(t *testing.T) {
	nominator := newUser(models.RoleTeamLead, nil)

	newDraft := func(status models.NominationStatus) *models.Nomination {
		return &models.Nomination{
			BaseModel:     models.BaseModel{ID: uuid.New()},
			NominatorID:   nominator.ID,
			NomineeID:     uuid.New(),
			CategoryID:    uuid.New(),
			YearQuarterID: uuid.New(),
			Description:   "draft desc",
			Achievements:  "draft achievements",
			Status:        status,
		}
	}

	t.Run("submitted nominations cannot be edited", func(t *testing.T) {
		svc, m := newNominationService(t, false)
		nomination := newDraft(models.StatusPendingManager)

		m.nominations.EXPECT().GetByID(nomination.ID).Return(nomination, nil)

		_, err := svc.UpdateDraft(nominator, nomination.ID, &service.UpdateDraftRequest{})
		assert.ErrorIs(t, err, apperrors.ErrNotDraft)
	})

	t.Run("only the owner may edit", func(t *testing.T) {
		svc, m := newNominationService(t, false)
		nomination := newDraft(models.StatusDraft)
		stranger := newUser(models.RoleEmployee, nil)

		m.nominations.EXPECT().GetByID(nomination.ID).Return(nomination, nil)

		_, err := svc.UpdateDraft(stranger, nomination.ID, &service.UpdateDraftRequest{})
		assert.ErrorIs(t, err, apperrors.ErrNotDraftOwner)
	})

	t.Run("incomplete draft cannot be submitted", func(t *testing.T) {
		svc, m := newNominationService(t, false)
		nomination := newDraft(models.StatusDraft)
		nomination.Description = ""

		m.nominations.EXPECT().GetByID(nomination.ID).Return(nomination, nil)

		_, err := svc.UpdateDraft(nominator, nomination.ID, &service.UpdateDraftRequest{Submit: true})
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("submitting moves the draft into the manager queue", func(t *testing.T) {
		svc, m := newNominationService(t, false)
		nomination := newDraft(models.StatusDraft)

		m.nominations.EXPECT().GetByID(nomination.ID).Return(nomination, nil)
		m.nominations.EXPECT().Update(gomock.Any()).DoAndReturn(func(n *models.Nomination) error {
			assert.Equal(t, models.StatusPendingManager, n.Status)
			return nil
		})
		m.nominations.EXPECT().GetByID(nomination.ID).Return(&models.Nomination{
			BaseModel: models.BaseModel{ID: nomination.ID},
			Status:    models.StatusPendingManager,
		}, nil)

		resp, err := svc.UpdateDraft(nominator, nomination.ID, &service.UpdateDraftRequest{Submit: true})
		require.NoError(t, err)
		assert.Equal(t, models.StatusPendingManager, resp.Status)
	})

	t.Run("changed nominee is verified", func(t *testing.T) {
		svc, m := newNominationService(t, false)
		nomination := newDraft(models.StatusDraft)
		newNominee := uuid.New()

		m.nominations.EXPECT().GetByID(nomination.ID).Return(nomination, nil)
		m.users.EXPECT().GetByID(newNominee).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.UpdateDraft(nominator, nomination.ID, &service.UpdateDraftRequest{NomineeID: &newNominee})
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

func TestLatestDraftNotFound(t *testing.T) {
	svc, m := newNominationService(t, false)
	nominatorID := uuid.New()

	m.nominations.EXPECT().GetLatestDraft(nominatorID).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.LatestDraft(nominatorID)
	assert.ErrorIs(t, err, apperrors.ErrDraftNotFound)
}

func TestDeleteNomination(t *testing.T) {
	t.Run("admin deletes any nomination", func(t *testing.T) {
		svc, m := newNominationService(t, false)
		admin := newUser(models.RoleAdmin, nil)
		nomination := &models.Nomination{
			BaseModel:   models.BaseModel{ID: uuid.New()},
			NominatorID: uuid.New(),
			Status:      models.StatusDirectorApproved,
		}

		m.nominations.EXPECT().GetByID(nomination.ID).Return(nomination, nil)
		m.nominations.EXPECT().SoftDelete(nomination.ID).Return(nil)

		assert.NoError(t, svc.Delete(admin, nomination.ID))
	})

	t.Run("owner deletes their own draft", func(t *testing.T) {
		svc, m := newNominationService(t, false)
		owner := newUser(models.RoleEmployee, nil)
		nomination := &models.Nomination{
			BaseModel:   models.BaseModel{ID: uuid.New()},
			NominatorID: owner.ID,
			Status:      models.StatusDraft,
		}

		m.nominations.EXPECT().GetByID(nomination.ID).Return(nomination, nil)
		m.nominations.EXPECT().SoftDelete(nomination.ID).Return(nil)

		assert.NoError(t, svc.Delete(owner, nomination.ID))
	})

	t.Run("owner cannot delete a submitted nomination", func(t *testing.T) {
		svc, m := newNominationService(t, false)
		owner := newUser(models.RoleEmployee, nil)
		nomination := &models.Nomination{
			BaseModel:   models.BaseModel{ID: uuid.New()},
			NominatorID: owner.ID,
			Status:      models.StatusPendingManager,
		}

		m.nominations.EXPECT().GetByID(nomination.ID).Return(nomination, nil)

		err := svc.Delete(owner, nomination.ID)
		assert.True(t, apperrors.IsAuthorization(err))
	})
}

func TestGetByIDVisibility(t *testing.T) {
	t.Run("out of scope reads like missing", func(t *testing.T) {
		svc, m := newNominationService(t, false)
		fx := newReviewFixture(models.StatusPendingManager, 0)
		outsider := newUser(models.RoleEmployee, nil)

		m.nominations.EXPECT().GetByID(fx.nomination.ID).Return(fx.nomination, nil)

		_, err := svc.GetByID(outsider, fx.nomination.ID)
		assert.ErrorIs(t, err, apperrors.ErrNominationNotFound)
	})

	t.Run("nominee always sees their own", func(t *testing.T) {
		svc, m := newNominationService(t, false)
		fx := newReviewFixture(models.StatusPendingManager, 0)

		m.nominations.EXPECT().GetByID(fx.nomination.ID).Return(fx.nomination, nil)

		resp, err := svc.GetByID(fx.nominee, fx.nomination.ID)
		require.NoError(t, err)
		assert.Equal(t, fx.nomination.ID, resp.ID)
	})

	t.Run("chain manager sees team nominations", func(t *testing.T) {
		svc, m := newNominationService(t, false)
		fx := newReviewFixture(models.StatusPendingManager, 0)

		m.nominations.EXPECT().GetByID(fx.nomination.ID).Return(fx.nomination, nil)

		_, err := svc.GetByID(fx.manager, fx.nomination.ID)
		assert.NoError(t, err)
	})
}
