package service

import (
	"rewards-recognition-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// Notifier delivers notifications when a nomination reaches its final
// approved state. Implementations must not block the review path; delivery
// failures are logged, never surfaced to the reviewer.
type Notifier interface {
	NominationApproved(nomination *models.Nomination)
}

// NominationServiceInterface defines the interface for nomination service
type NominationServiceInterface interface {
	Create(nominator *models.User, req *CreateNominationRequest) (*NominationResponse, error)
	GetByID(viewer *models.User, id uuid.UUID) (*NominationResponse, error)
	History(viewer *models.User, id uuid.UUID) ([]ApprovalResponse, error)
	ListVisible(viewer *models.User) ([]NominationResponse, error)
	PendingForApprover(viewer *models.User) ([]NominationResponse, error)
	SubmitReview(approver *models.User, nominationID uuid.UUID, req *ReviewRequest) (*NominationResponse, error)
	Drafts(nominatorID uuid.UUID) ([]NominationResponse, error)
	LatestDraft(nominatorID uuid.UUID) (*NominationResponse, error)
	UpdateDraft(nominator *models.User, draftID uuid.UUID, req *UpdateDraftRequest) (*NominationResponse, error)
	Delete(viewer *models.User, id uuid.UUID) error
}

// DashboardServiceInterface defines the interface for dashboard service
type DashboardServiceInterface interface {
	Summary(viewer *models.User) (*DashboardSummaryResponse, error)
	ManagerSummary(manager *models.User, year, quarter int) (*ApproverDashboardResponse, error)
	DirectorSummary(director *models.User, year, quarter int) (*ApproverDashboardResponse, error)
	TeamLeadSummary(teamLead *models.User, yearQuarterID uuid.UUID) (*TeamLeadDashboardResponse, error)
	EmployeeSummary(employee *models.User) (*EmployeeDashboardResponse, error)
	TeamNominations(viewer *models.User, teamID, yearQuarterID uuid.UUID) ([]NominationResponse, error)
	DirectorManagers(director *models.User) ([]UserSummary, error)
	Orphaned(viewer *models.User) ([]NominationResponse, error)
}
