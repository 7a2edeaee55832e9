package testutils

import (
	"fmt"
	"time"

	"rewards-recognition-backend/internal/database/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values. Each user gets a unique
// email derived from its ID so the partial unique index never trips in tests.
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	hash, _ := bcrypt.GenerateFromPassword([]byte("test-password"), bcrypt.MinCost)
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:         "Jordan Reyes",
		Email:        fmt.Sprintf("user-%s@test.com", id.String()[:8]),
		PasswordHash: string(hash),
		Role:         models.RoleEmployee,
		IsActive:     true,
	}
}

// WithRole sets a custom role for the user
func (f *UserFactory) WithRole(role models.Role) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// WithTeam sets the team assignment for the user
func (f *UserFactory) WithTeam(teamID uuid.UUID) *models.User {
	user := f.Create()
	user.TeamID = &teamID
	return user
}

// WithRoleAndTeam sets both role and team assignment
func (f *UserFactory) WithRoleAndTeam(role models.Role, teamID uuid.UUID) *models.User {
	user := f.Create()
	user.Role = role
	user.TeamID = &teamID
	return user
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team wired to the given review chain
func (f *TeamFactory) Create(teamLeadID, managerID, directorID uuid.UUID) *models.Team {
	id := uuid.New()
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:       fmt.Sprintf("Team %s", id.String()[:8]),
		TeamLeadID: teamLeadID,
		ManagerID:  managerID,
		DirectorID: directorID,
	}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string, teamLeadID, managerID, directorID uuid.UUID) *models.Team {
	team := f.Create(teamLeadID, managerID, directorID)
	team.Name = name
	return team
}

// CategoryFactory provides methods to create test Category data
type CategoryFactory struct{}

// NewCategoryFactory creates a new CategoryFactory
func NewCategoryFactory() *CategoryFactory {
	return &CategoryFactory{}
}

// Create creates a test Category with a unique name
func (f *CategoryFactory) Create() *models.Category {
	id := uuid.New()
	return &models.Category{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        fmt.Sprintf("Category %s", id.String()[:8]),
		Description: "A test award category",
	}
}

// YearQuarterFactory provides methods to create test YearQuarter data
type YearQuarterFactory struct{}

// NewYearQuarterFactory creates a new YearQuarterFactory
func NewYearQuarterFactory() *YearQuarterFactory {
	return &YearQuarterFactory{}
}

// Create creates a test YearQuarter for 2025 Q1, inactive by default
func (f *YearQuarterFactory) Create() *models.YearQuarter {
	return f.ForPeriod(2025, 1)
}

// ForPeriod creates a test YearQuarter for a specific year and quarter
func (f *YearQuarterFactory) ForPeriod(year, quarter int) *models.YearQuarter {
	start, end, _ := models.QuarterDateRange(year, quarter)
	return &models.YearQuarter{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Year:      year,
		Quarter:   quarter,
		StartDate: &start,
		EndDate:   &end,
	}
}

// Active creates an active test YearQuarter
func (f *YearQuarterFactory) Active(year, quarter int) *models.YearQuarter {
	yq := f.ForPeriod(year, quarter)
	yq.IsActive = true
	return yq
}

// NominationFactory provides methods to create test Nomination data
type NominationFactory struct{}

// NewNominationFactory creates a new NominationFactory
func NewNominationFactory() *NominationFactory {
	return &NominationFactory{}
}

// Create creates a test Nomination in pending_manager status
func (f *NominationFactory) Create(nominatorID, nomineeID, categoryID, yearQuarterID uuid.UUID) *models.Nomination {
	return &models.Nomination{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		NominatorID:   nominatorID,
		NomineeID:     nomineeID,
		CategoryID:    categoryID,
		YearQuarterID: yearQuarterID,
		Description:   "Outstanding contribution to the quarterly release",
		Achievements:  "Shipped the migration ahead of schedule with zero incidents",
		Status:        models.StatusPendingManager,
	}
}

// WithStatus creates a test Nomination in a specific status
func (f *NominationFactory) WithStatus(status models.NominationStatus, nominatorID, nomineeID, categoryID, yearQuarterID uuid.UUID) *models.Nomination {
	nomination := f.Create(nominatorID, nomineeID, categoryID, yearQuarterID)
	nomination.Status = status
	return nomination
}

// ApprovalFactory provides methods to create test Approval ledger entries
type ApprovalFactory struct{}

// NewApprovalFactory creates a new ApprovalFactory
func NewApprovalFactory() *ApprovalFactory {
	return &ApprovalFactory{}
}

// Create creates a test Approval entry
func (f *ApprovalFactory) Create(nominationID, approverID uuid.UUID, action models.ApprovalAction, level models.ApprovalLevel) *models.Approval {
	return &models.Approval{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		NominationID: nominationID,
		ApproverID:   approverID,
		Action:       action,
		Level:        level,
		ActionAt:     time.Now(),
		Remarks:      "Well deserved",
	}
}
