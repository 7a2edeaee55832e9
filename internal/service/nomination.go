package service

import (
	"errors"
	"fmt"
	"time"

	"rewards-recognition-backend/internal/database/models"
	apperrors "rewards-recognition-backend/internal/errors"
	"rewards-recognition-backend/internal/logger"
	"rewards-recognition-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NominationService handles business logic for nominations and reviews
type NominationService struct {
	nominationRepo  repository.NominationRepositoryInterface
	approvalRepo    repository.ApprovalRepositoryInterface
	userRepo        repository.UserRepositoryInterface
	categoryRepo    repository.CategoryRepositoryInterface
	yearQuarterRepo repository.YearQuarterRepositoryInterface
	notifier        Notifier
	validator       *validator.Validate

	// requireManagerFirst blocks director decisions until a manager has
	// approved. Off by default: directors may finalize any open nomination.
	requireManagerFirst bool
}

// NewNominationService creates a new nomination service
func NewNominationService(
	nominationRepo repository.NominationRepositoryInterface,
	approvalRepo repository.ApprovalRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	categoryRepo repository.CategoryRepositoryInterface,
	yearQuarterRepo repository.YearQuarterRepositoryInterface,
	notifier Notifier,
	validator *validator.Validate,
	requireManagerFirst bool,
) *NominationService {
	return &NominationService{
		nominationRepo:      nominationRepo,
		approvalRepo:        approvalRepo,
		userRepo:            userRepo,
		categoryRepo:        categoryRepo,
		yearQuarterRepo:     yearQuarterRepo,
		notifier:            notifier,
		validator:           validator,
		requireManagerFirst: requireManagerFirst,
	}
}

// CreateNominationRequest represents the request to create a nomination
type CreateNominationRequest struct {
	NomineeID     uuid.UUID  `json:"nominee_id" validate:"required"`
	CategoryID    uuid.UUID  `json:"category_id" validate:"required"`
	YearQuarterID *uuid.UUID `json:"year_quarter_id,omitempty"`
	Description   string     `json:"description" validate:"required,max=2000"`
	Achievements  string     `json:"achievements" validate:"required,max=2000"`
	AsDraft       bool       `json:"as_draft"`
}

// UpdateDraftRequest represents the request to update or submit a draft
type UpdateDraftRequest struct {
	NomineeID     *uuid.UUID `json:"nominee_id,omitempty"`
	CategoryID    *uuid.UUID `json:"category_id,omitempty"`
	YearQuarterID *uuid.UUID `json:"year_quarter_id,omitempty"`
	Description   *string    `json:"description,omitempty" validate:"omitempty,max=2000"`
	Achievements  *string    `json:"achievements,omitempty" validate:"omitempty,max=2000"`
	Submit        bool       `json:"submit"`
}

// ReviewRequest represents a manager or director decision on a nomination
type ReviewRequest struct {
	Action  models.ApprovalAction `json:"action" validate:"required,oneof=approved rejected"`
	Remarks string                `json:"remarks" validate:"max=1000"`
}

// UserSummary is the compact user shape embedded in nomination responses
type UserSummary struct {
	ID    uuid.UUID   `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

// ApprovalResponse represents one ledger entry in a nomination's history
type ApprovalResponse struct {
	ID       uuid.UUID             `json:"id"`
	Approver *UserSummary          `json:"approver,omitempty"`
	Action   models.ApprovalAction `json:"action"`
	Level    models.ApprovalLevel  `json:"level"`
	ActionAt time.Time             `json:"action_at"`
	Remarks  string                `json:"remarks,omitempty"`
}

// NominationResponse represents the response for nomination operations
type NominationResponse struct {
	ID           uuid.UUID               `json:"id"`
	Nominator    *UserSummary            `json:"nominator,omitempty"`
	Nominee      *UserSummary            `json:"nominee,omitempty"`
	TeamName     string                  `json:"team_name,omitempty"`
	CategoryName string                  `json:"category_name,omitempty"`
	Period       string                  `json:"period,omitempty"`
	Description  string                  `json:"description"`
	Achievements string                  `json:"achievements"`
	Status       models.NominationStatus `json:"status"`
	Version      int                     `json:"version"`
	Approvals    []ApprovalResponse      `json:"approvals,omitempty"`
	CreatedAt    time.Time               `json:"created_at"`
	UpdatedAt    time.Time               `json:"updated_at"`
}

// Create files a new nomination, either as a draft or straight into the
// manager's queue
func (s *NominationService) Create(nominator *models.User, req *CreateNominationRequest) (*NominationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	nominee, err := s.userRepo.GetWithTeam(req.NomineeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load nominee: %w", err)
	}

	if _, err := s.categoryRepo.GetByID(req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to verify category: %w", err)
	}

	yearQuarterID, err := s.resolveYearQuarter(req.YearQuarterID)
	if err != nil {
		return nil, err
	}

	status := models.StatusPendingManager
	if req.AsDraft {
		status = models.StatusDraft
	}

	nomination := &models.Nomination{
		NominatorID:   nominator.ID,
		NomineeID:     req.NomineeID,
		CategoryID:    req.CategoryID,
		YearQuarterID: yearQuarterID,
		Description:   req.Description,
		Achievements:  req.Achievements,
		Status:        status,
	}

	if err := s.nominationRepo.Create(nomination); err != nil {
		return nil, fmt.Errorf("failed to create nomination: %w", err)
	}

	if !nominee.HasTeam() && !req.AsDraft {
		logger.New().WithFields(map[string]interface{}{
			"nomination_id": nomination.ID,
			"nominee_id":    nominee.ID,
		}).Warn("Nomination submitted for a nominee without a team; no approver can act on it")
	}

	created, err := s.nominationRepo.GetByID(nomination.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload nomination: %w", err)
	}
	return toNominationResponse(created), nil
}

// GetByID loads a nomination the viewer is allowed to see
func (s *NominationService) GetByID(viewer *models.User, id uuid.UUID) (*NominationResponse, error) {
	nomination, err := s.loadVisible(viewer, id)
	if err != nil {
		return nil, err
	}
	return toNominationResponse(nomination), nil
}

// History returns a nomination's full decision ledger, oldest first
func (s *NominationService) History(viewer *models.User, id uuid.UUID) ([]ApprovalResponse, error) {
	if _, err := s.loadVisible(viewer, id); err != nil {
		return nil, err
	}

	approvals, err := s.approvalRepo.GetByNomination(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load approval history: %w", err)
	}

	history := make([]ApprovalResponse, 0, len(approvals))
	for i := range approvals {
		history = append(history, toApprovalResponse(&approvals[i]))
	}
	return history, nil
}

// ListVisible resolves the viewer's visibility scope and returns every
// nomination inside it
func (s *NominationService) ListVisible(viewer *models.User) ([]NominationResponse, error) {
	var (
		nominations []models.Nomination
		err         error
	)

	switch viewer.Role {
	case models.RoleAdmin:
		nominations, _, err = s.nominationRepo.GetAll(listAllLimit, 0)

	case models.RoleManager:
		nominations, err = s.nominationRepo.GetForManager(viewer.ID)

	case models.RoleDirector:
		nominations, err = s.nominationRepo.GetForDirector(viewer.ID)

	case models.RoleEmployee, models.RoleTeamLead:
		nominations, err = s.listForMember(viewer)

	default:
		return nil, apperrors.ErrInvalidRole
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list nominations: %w", err)
	}

	return toNominationResponses(nominations), nil
}

// listAllLimit caps the admin's unscoped listing
const listAllLimit = 1000

// listForMember unions the three member scopes: authored, received, and
// same-team, deduplicated by nomination ID
func (s *NominationService) listForMember(viewer *models.User) ([]models.Nomination, error) {
	authored, err := s.nominationRepo.GetByNominator(viewer.ID)
	if err != nil {
		return nil, err
	}
	received, err := s.nominationRepo.GetForNominee(viewer.ID)
	if err != nil {
		return nil, err
	}

	var teamScoped []models.Nomination
	if viewer.HasTeam() {
		teamScoped, err = s.nominationRepo.GetByTeam(*viewer.TeamID)
		if err != nil {
			return nil, err
		}
	}

	seen := make(map[uuid.UUID]bool)
	var union []models.Nomination
	for _, batch := range [][]models.Nomination{authored, received, teamScoped} {
		for _, n := range batch {
			if seen[n.ID] {
				continue
			}
			seen[n.ID] = true
			union = append(union, n)
		}
	}
	return union, nil
}

// PendingForApprover returns the viewer's actionable review queue
func (s *NominationService) PendingForApprover(viewer *models.User) ([]NominationResponse, error) {
	var (
		nominations []models.Nomination
		err         error
	)

	switch viewer.Role {
	case models.RoleManager:
		nominations, err = s.nominationRepo.GetPendingForManager(viewer.ID)
	case models.RoleDirector:
		nominations, err = s.nominationRepo.GetPendingForDirector(viewer.ID, s.requireManagerFirst)
	default:
		return nil, apperrors.ErrForbiddenRole
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load pending queue: %w", err)
	}

	return toNominationResponses(nominations), nil
}

// SubmitReview records an approver's decision. The status transition and the
// ledger append commit atomically; a lost version race is retried once against
// the fresh state before the conflict is surfaced to the caller.
func (s *NominationService) SubmitReview(approver *models.User, nominationID uuid.UUID, req *ReviewRequest) (*NominationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	level, err := LevelForRole(approver.Role)
	if err != nil {
		return nil, err
	}

	err = s.tryReview(approver, nominationID, level, req)
	if errors.Is(err, apperrors.ErrConcurrentModification) {
		err = s.tryReview(approver, nominationID, level, req)
	}
	if err != nil {
		return nil, err
	}

	nomination, err := s.nominationRepo.GetByID(nominationID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload nomination: %w", err)
	}

	if nomination.Status == models.StatusDirectorApproved && s.notifier != nil {
		s.notifier.NominationApproved(nomination)
	}

	return toNominationResponse(nomination), nil
}

// tryReview performs a single optimistic review attempt at the version
// currently in the database
func (s *NominationService) tryReview(approver *models.User, nominationID uuid.UUID, level models.ApprovalLevel, req *ReviewRequest) error {
	nomination, err := s.nominationRepo.GetByID(nominationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNominationNotFound
		}
		return fmt.Errorf("failed to load nomination: %w", err)
	}

	if err := s.checkApproverScope(approver, nomination); err != nil {
		return err
	}

	newStatus, err := NextStatus(nomination.Status, approver.Role, req.Action, s.requireManagerFirst)
	if err != nil {
		return err
	}

	acted, err := s.approvalRepo.HasApproverActed(approver.ID, nomination.ID)
	if err != nil {
		return fmt.Errorf("failed to check approval history: %w", err)
	}
	if acted {
		return apperrors.ErrDuplicateApproval
	}

	entry := &models.Approval{
		NominationID: nomination.ID,
		ApproverID:   approver.ID,
		Action:       req.Action,
		Level:        level,
		ActionAt:     time.Now().UTC(),
		Remarks:      req.Remarks,
	}

	return s.nominationRepo.ApplyReview(nomination.ID, nomination.Version, newStatus, entry)
}

// checkApproverScope verifies the approver sits in the nominee's review chain
func (s *NominationService) checkApproverScope(approver *models.User, nomination *models.Nomination) error {
	if nomination.Nominee == nil || nomination.Nominee.Team == nil || nomination.Nominee.Team.IsDeleted {
		return apperrors.ErrNomineeHasNoTeam
	}

	team := nomination.Nominee.Team
	switch approver.Role {
	case models.RoleManager:
		if team.ManagerID != approver.ID {
			return apperrors.NewAuthorizationError("approver does not manage the nominee's team")
		}
	case models.RoleDirector:
		if team.DirectorID != approver.ID {
			return apperrors.NewAuthorizationError("approver does not direct the nominee's team")
		}
	default:
		return apperrors.ErrForbiddenRole
	}
	return nil
}

// Drafts returns the nominator's draft nominations, most recently edited first
func (s *NominationService) Drafts(nominatorID uuid.UUID) ([]NominationResponse, error) {
	drafts, err := s.nominationRepo.GetDrafts(nominatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list drafts: %w", err)
	}
	return toNominationResponses(drafts), nil
}

// LatestDraft returns the nominator's most recently edited draft
func (s *NominationService) LatestDraft(nominatorID uuid.UUID) (*NominationResponse, error) {
	draft, err := s.nominationRepo.GetLatestDraft(nominatorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDraftNotFound
		}
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}
	return toNominationResponse(draft), nil
}

// UpdateDraft edits a draft in place and optionally submits it into the
// manager's queue
func (s *NominationService) UpdateDraft(nominator *models.User, draftID uuid.UUID, req *UpdateDraftRequest) (*NominationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	nomination, err := s.nominationRepo.GetByID(draftID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDraftNotFound
		}
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}

	if nomination.Status != models.StatusDraft {
		return nil, apperrors.ErrNotDraft
	}
	if nomination.NominatorID != nominator.ID {
		return nil, apperrors.ErrNotDraftOwner
	}

	if req.NomineeID != nil {
		if _, err := s.userRepo.GetByID(*req.NomineeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrUserNotFound
			}
			return nil, fmt.Errorf("failed to verify nominee: %w", err)
		}
		nomination.NomineeID = *req.NomineeID
	}
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(*req.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrCategoryNotFound
			}
			return nil, fmt.Errorf("failed to verify category: %w", err)
		}
		nomination.CategoryID = *req.CategoryID
	}
	if req.YearQuarterID != nil {
		if _, err := s.yearQuarterRepo.GetByID(*req.YearQuarterID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrYearQuarterNotFound
			}
			return nil, fmt.Errorf("failed to verify year quarter: %w", err)
		}
		nomination.YearQuarterID = *req.YearQuarterID
	}
	if req.Description != nil {
		nomination.Description = *req.Description
	}
	if req.Achievements != nil {
		nomination.Achievements = *req.Achievements
	}

	if req.Submit {
		if nomination.Description == "" || nomination.Achievements == "" {
			return nil, apperrors.NewValidationError("description", "draft is incomplete and cannot be submitted")
		}
		nomination.Status = models.StatusPendingManager
	}

	// Clear preloaded associations so Save only writes the nomination row
	nomination.Nominator = nil
	nomination.Nominee = nil
	nomination.Category = nil
	nomination.YearQuarter = nil
	nomination.Approvals = nil

	if err := s.nominationRepo.Update(nomination); err != nil {
		return nil, fmt.Errorf("failed to update draft: %w", err)
	}

	updated, err := s.nominationRepo.GetByID(nomination.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload nomination: %w", err)
	}
	return toNominationResponse(updated), nil
}

// Delete soft-deletes a nomination. Admins may delete any nomination; other
// users only their own drafts.
func (s *NominationService) Delete(viewer *models.User, id uuid.UUID) error {
	nomination, err := s.nominationRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNominationNotFound
		}
		return fmt.Errorf("failed to load nomination: %w", err)
	}

	if viewer.Role != models.RoleAdmin {
		if nomination.Status != models.StatusDraft || nomination.NominatorID != viewer.ID {
			return apperrors.NewAuthorizationError("only admins may delete submitted nominations")
		}
	}

	if err := s.nominationRepo.SoftDelete(id); err != nil {
		return fmt.Errorf("failed to delete nomination: %w", err)
	}
	return nil
}

// loadVisible loads a nomination and enforces the viewer's visibility scope
func (s *NominationService) loadVisible(viewer *models.User, id uuid.UUID) (*models.Nomination, error) {
	nomination, err := s.nominationRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNominationNotFound
		}
		return nil, fmt.Errorf("failed to load nomination: %w", err)
	}

	if !s.canView(viewer, nomination) {
		// Out-of-scope nominations are indistinguishable from missing ones
		return nil, apperrors.ErrNominationNotFound
	}
	return nomination, nil
}

// canView applies the role-based visibility rules to a single nomination
func (s *NominationService) canView(viewer *models.User, nomination *models.Nomination) bool {
	if viewer.Role == models.RoleAdmin {
		return true
	}
	if nomination.NominatorID == viewer.ID || nomination.NomineeID == viewer.ID {
		return true
	}

	team := nominationTeam(nomination)
	if team == nil {
		return false
	}

	switch viewer.Role {
	case models.RoleManager:
		return team.ManagerID == viewer.ID
	case models.RoleDirector:
		return team.DirectorID == viewer.ID
	case models.RoleEmployee, models.RoleTeamLead:
		return viewer.HasTeam() && *viewer.TeamID == team.ID
	}
	return false
}

// nominationTeam returns the nominee's team if it is loaded and not deleted
func nominationTeam(nomination *models.Nomination) *models.Team {
	if nomination.Nominee == nil || nomination.Nominee.Team == nil {
		return nil
	}
	if nomination.Nominee.Team.IsDeleted {
		return nil
	}
	return nomination.Nominee.Team
}

// resolveYearQuarter returns the requested period or falls back to the active one
func (s *NominationService) resolveYearQuarter(requested *uuid.UUID) (uuid.UUID, error) {
	if requested != nil {
		yq, err := s.yearQuarterRepo.GetByID(*requested)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return uuid.Nil, apperrors.ErrYearQuarterNotFound
			}
			return uuid.Nil, fmt.Errorf("failed to verify year quarter: %w", err)
		}
		return yq.ID, nil
	}

	active, err := s.yearQuarterRepo.GetActive()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, apperrors.ErrInvalidPeriod
		}
		return uuid.Nil, fmt.Errorf("failed to resolve active year quarter: %w", err)
	}
	return active.ID, nil
}

// ------------------------------
// Response mapping
// ------------------------------

func toNominationResponse(n *models.Nomination) *NominationResponse {
	resp := &NominationResponse{
		ID:           n.ID,
		Nominator:    toUserSummary(n.Nominator),
		Nominee:      toUserSummary(n.Nominee),
		Description:  n.Description,
		Achievements: n.Achievements,
		Status:       n.Status,
		Version:      n.Version,
		CreatedAt:    n.CreatedAt,
		UpdatedAt:    n.UpdatedAt,
	}
	if n.Category != nil {
		resp.CategoryName = n.Category.Name
	}
	if n.YearQuarter != nil {
		resp.Period = n.YearQuarter.Label()
	}
	if team := nominationTeam(n); team != nil {
		resp.TeamName = team.Name
	}
	for i := range n.Approvals {
		resp.Approvals = append(resp.Approvals, toApprovalResponse(&n.Approvals[i]))
	}
	return resp
}

func toNominationResponses(nominations []models.Nomination) []NominationResponse {
	responses := make([]NominationResponse, 0, len(nominations))
	for i := range nominations {
		responses = append(responses, *toNominationResponse(&nominations[i]))
	}
	return responses
}

func toApprovalResponse(a *models.Approval) ApprovalResponse {
	return ApprovalResponse{
		ID:       a.ID,
		Approver: toUserSummary(a.Approver),
		Action:   a.Action,
		Level:    a.Level,
		ActionAt: a.ActionAt,
		Remarks:  a.Remarks,
	}
}

func toUserSummary(u *models.User) *UserSummary {
	if u == nil {
		return nil
	}
	return &UserSummary{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}
