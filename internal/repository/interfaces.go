package repository

import (
	"rewards-recognition-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// NominationRepositoryInterface defines the interface for nomination repository operations
type NominationRepositoryInterface interface {
	Create(nomination *models.Nomination) error
	GetByID(id uuid.UUID) (*models.Nomination, error)
	GetAll(limit, offset int) ([]models.Nomination, int64, error)
	Update(nomination *models.Nomination) error
	SoftDelete(id uuid.UUID) error
	GetByNominator(nominatorID uuid.UUID) ([]models.Nomination, error)
	GetForNominee(nomineeID uuid.UUID) ([]models.Nomination, error)
	GetByTeam(teamID uuid.UUID) ([]models.Nomination, error)
	GetForManager(managerID uuid.UUID) ([]models.Nomination, error)
	GetForDirector(directorID uuid.UUID) ([]models.Nomination, error)
	GetPendingForManager(managerID uuid.UUID) ([]models.Nomination, error)
	GetPendingForDirector(directorID uuid.UUID, requireManagerFirst bool) ([]models.Nomination, error)
	GetDrafts(nominatorID uuid.UUID) ([]models.Nomination, error)
	GetLatestDraft(nominatorID uuid.UUID) (*models.Nomination, error)
	GetByQuarterAndNominators(yearQuarterID uuid.UUID, nominatorIDs []uuid.UUID) ([]models.Nomination, error)
	GetByTeamsAndQuarter(teamIDs []uuid.UUID, yearQuarterID uuid.UUID) ([]models.Nomination, error)
	GetOrphaned() ([]models.Nomination, error)
	CountByStatus() (map[models.NominationStatus]int64, error)
	ApplyReview(nominationID uuid.UUID, expectedVersion int, newStatus models.NominationStatus, entry *models.Approval) error
}

// ApprovalRepositoryInterface defines the interface for approval ledger operations
type ApprovalRepositoryInterface interface {
	Create(approval *models.Approval) error
	GetByID(id uuid.UUID) (*models.Approval, error)
	GetByNomination(nominationID uuid.UUID) ([]models.Approval, error)
	GetByApprover(approverID uuid.UUID) ([]models.Approval, error)
	HasApproverActed(approverID, nominationID uuid.UUID) (bool, error)
	ActedNominationIDs(nominationIDs []uuid.UUID, level models.ApprovalLevel, action models.ApprovalAction) ([]uuid.UUID, error)
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetWithTeam(id uuid.UUID) (*models.User, error)
	GetAll(limit, offset int) ([]models.User, int64, error)
	GetByTeamID(teamID uuid.UUID) ([]models.User, error)
	GetByRole(role models.Role) ([]models.User, error)
	GetUnassigned() ([]models.User, error)
	GetDeleted() ([]models.User, error)
	Update(user *models.User) error
	SoftDelete(id uuid.UUID) error
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetByName(name string) (*models.Team, error)
	GetAll(limit, offset int) ([]models.Team, int64, error)
	GetWithMembers(id uuid.UUID) (*models.Team, error)
	GetByManager(managerID uuid.UUID) ([]models.Team, error)
	GetByDirector(directorID uuid.UUID) ([]models.Team, error)
	GetDeleted() ([]models.Team, error)
	Update(team *models.Team) error
	SoftDelete(id uuid.UUID) error
}

// CategoryRepositoryInterface defines the interface for category repository operations
type CategoryRepositoryInterface interface {
	Create(category *models.Category) error
	GetByID(id uuid.UUID) (*models.Category, error)
	GetByName(name string) (*models.Category, error)
	GetAll(limit, offset int) ([]models.Category, int64, error)
	Update(category *models.Category) error
	SoftDelete(id uuid.UUID) error
}

// YearQuarterRepositoryInterface defines the interface for year quarter repository operations
type YearQuarterRepositoryInterface interface {
	Create(yq *models.YearQuarter) error
	GetByID(id uuid.UUID) (*models.YearQuarter, error)
	GetByYearAndQuarter(year, quarter int) (*models.YearQuarter, error)
	GetActive() (*models.YearQuarter, error)
	GetAll(limit, offset int) ([]models.YearQuarter, int64, error)
	Update(yq *models.YearQuarter) error
	SetActive(id uuid.UUID) error
	SoftDelete(id uuid.UUID) error
}
