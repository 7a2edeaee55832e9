package service

import (
	"errors"
	"fmt"
	"sort"

	"rewards-recognition-backend/internal/database/models"
	apperrors "rewards-recognition-backend/internal/errors"
	"rewards-recognition-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DashboardService aggregates per-role counts and summaries. Generic counts
// are derived from nomination statuses; approver counts come from the approval
// ledger so a later director decision never erases a manager's numbers.
type DashboardService struct {
	nominationRepo  repository.NominationRepositoryInterface
	approvalRepo    repository.ApprovalRepositoryInterface
	teamRepo        repository.TeamRepositoryInterface
	userRepo        repository.UserRepositoryInterface
	yearQuarterRepo repository.YearQuarterRepositoryInterface
	visibility      NominationServiceInterface
}

// NewDashboardService creates a new dashboard service. The nomination service
// is the visibility resolver: the generic summary is scoped by it.
func NewDashboardService(
	nominationRepo repository.NominationRepositoryInterface,
	approvalRepo repository.ApprovalRepositoryInterface,
	teamRepo repository.TeamRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	yearQuarterRepo repository.YearQuarterRepositoryInterface,
	visibility NominationServiceInterface,
) *DashboardService {
	return &DashboardService{
		nominationRepo:  nominationRepo,
		approvalRepo:    approvalRepo,
		teamRepo:        teamRepo,
		userRepo:        userRepo,
		yearQuarterRepo: yearQuarterRepo,
		visibility:      visibility,
	}
}

// StatusCounts breaks nominations down by lifecycle status, with the rolled-up
// pending/approved/rejected views most dashboards render
type StatusCounts struct {
	Total            int64 `json:"total"`
	Drafts           int64 `json:"drafts"`
	PendingManager   int64 `json:"pending_manager"`
	PendingDirector  int64 `json:"pending_director"`
	ManagerApproved  int64 `json:"manager_approved"`
	ManagerRejected  int64 `json:"manager_rejected"`
	DirectorApproved int64 `json:"director_approved"`
	DirectorRejected int64 `json:"director_rejected"`
	Pending          int64 `json:"pending"`
	Approved         int64 `json:"approved"`
	Rejected         int64 `json:"rejected"`
}

// TeamSummary is the compact team shape embedded in dashboard responses
type TeamSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ApproverDashboardResponse summarizes one approver's quarter. Total is every
// submitted nomination for the approver's teams in that period; Approved and
// Rejected are ledger-derived at the approver's level. At the director level
// Approved+Rejected+Pending always equals Total.
type ApproverDashboardResponse struct {
	Period   string        `json:"period"`
	Total    int           `json:"total"`
	Pending  int           `json:"pending"`
	Approved int           `json:"approved"`
	Rejected int           `json:"rejected"`
	Teams    []TeamSummary `json:"teams"`
}

// TeamLeadDashboardResponse summarizes the nominations a team lead has
// submitted in a period
type TeamLeadDashboardResponse struct {
	Period      string               `json:"period"`
	Submitted   int64                `json:"submitted"`
	Counts      StatusCounts         `json:"counts"`
	Nominations []NominationResponse `json:"nominations"`
}

// EmployeeDashboardResponse summarizes an employee's own nominations
type EmployeeDashboardResponse struct {
	ActivePeriod string               `json:"active_period,omitempty"`
	Authored     []NominationResponse `json:"authored"`
	Received     []NominationResponse `json:"received"`
}

// DashboardSummaryResponse is the generic per-viewer dashboard: status-based
// counts over the viewer's visible nominations, the newest of those, and the
// head of the viewer's review queue. PendingApprovalCount is the full queue
// size even when the list itself is capped.
type DashboardSummaryResponse struct {
	Counts               StatusCounts         `json:"counts"`
	Recent               []NominationResponse `json:"recent"`
	PendingApproval      []NominationResponse `json:"pending_approval"`
	PendingApprovalCount int                  `json:"pending_approval_count"`
}

// summaryListLimit caps the recent and pending lists on the generic summary
const summaryListLimit = 10

// Summary returns the viewer's generic dashboard. Counts use the nomination
// status field over the viewer's visible set; admins get the exact global
// breakdown. The pending list is filled only for reviewing roles.
func (s *DashboardService) Summary(viewer *models.User) (*DashboardSummaryResponse, error) {
	visible, err := s.visibility.ListVisible(viewer)
	if err != nil {
		return nil, err
	}

	var counts *StatusCounts
	if viewer.Role == models.RoleAdmin {
		byStatus, err := s.nominationRepo.CountByStatus()
		if err != nil {
			return nil, fmt.Errorf("failed to count nominations: %w", err)
		}
		counts = rollUpCounts(byStatus)
	} else {
		byStatus := make(map[models.NominationStatus]int64)
		for _, n := range visible {
			byStatus[n.Status]++
		}
		counts = rollUpCounts(byStatus)
	}

	recent := make([]NominationResponse, len(visible))
	copy(recent, visible)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > summaryListLimit {
		recent = recent[:summaryListLimit]
	}

	resp := &DashboardSummaryResponse{
		Counts:          *counts,
		Recent:          recent,
		PendingApproval: []NominationResponse{},
	}

	if viewer.Role == models.RoleManager || viewer.Role == models.RoleDirector {
		pending, err := s.visibility.PendingForApprover(viewer)
		if err != nil {
			return nil, err
		}
		resp.PendingApprovalCount = len(pending)
		if len(pending) > summaryListLimit {
			pending = pending[:summaryListLimit]
		}
		resp.PendingApproval = pending
	}

	return resp, nil
}

// ManagerSummary returns a manager's dashboard for one quarter
func (s *DashboardService) ManagerSummary(manager *models.User, year, quarter int) (*ApproverDashboardResponse, error) {
	if manager.Role != models.RoleManager {
		return nil, apperrors.ErrForbiddenRole
	}

	teams, err := s.teamRepo.GetByManager(manager.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load managed teams: %w", err)
	}

	return s.approverSummary(models.LevelManager, year, quarter, teams)
}

// DirectorSummary returns a director's dashboard for one quarter
func (s *DashboardService) DirectorSummary(director *models.User, year, quarter int) (*ApproverDashboardResponse, error) {
	if director.Role != models.RoleDirector {
		return nil, apperrors.ErrForbiddenRole
	}

	teams, err := s.teamRepo.GetByDirector(director.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load directed teams: %w", err)
	}

	return s.approverSummary(models.LevelDirector, year, quarter, teams)
}

// approverSummary aggregates one quarter for a review chain level. The base
// set is every submitted nomination whose nominee sits in one of the teams and
// whose period is the requested quarter; decisions recorded after the quarter
// closed still belong to it. Pending at the manager level means awaiting the
// first decision; at the director level it means no director entry yet.
func (s *DashboardService) approverSummary(level models.ApprovalLevel, year, quarter int, teams []models.Team) (*ApproverDashboardResponse, error) {
	if quarter < 1 || quarter > 4 {
		return nil, apperrors.ErrInvalidQuarter
	}

	resp := &ApproverDashboardResponse{
		Period: fmt.Sprintf("%d Q%d", year, quarter),
		Teams:  make([]TeamSummary, 0, len(teams)),
	}
	teamIDs := make([]uuid.UUID, 0, len(teams))
	for _, team := range teams {
		resp.Teams = append(resp.Teams, TeamSummary{ID: team.ID, Name: team.Name})
		teamIDs = append(teamIDs, team.ID)
	}

	yq, err := s.yearQuarterRepo.GetByYearAndQuarter(year, quarter)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return resp, nil
		}
		return nil, fmt.Errorf("failed to load year quarter: %w", err)
	}
	if len(teamIDs) == 0 {
		return resp, nil
	}

	nominations, err := s.nominationRepo.GetByTeamsAndQuarter(teamIDs, yq.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load quarter nominations: %w", err)
	}

	nominationIDs := make([]uuid.UUID, 0, len(nominations))
	for _, n := range nominations {
		nominationIDs = append(nominationIDs, n.ID)
	}

	approvedIDs, err := s.approvalRepo.ActedNominationIDs(nominationIDs, level, models.ActionApproved)
	if err != nil {
		return nil, fmt.Errorf("failed to count approvals: %w", err)
	}
	rejectedIDs, err := s.approvalRepo.ActedNominationIDs(nominationIDs, level, models.ActionRejected)
	if err != nil {
		return nil, fmt.Errorf("failed to count rejections: %w", err)
	}

	acted := make(map[uuid.UUID]bool, len(approvedIDs)+len(rejectedIDs))
	for _, id := range approvedIDs {
		acted[id] = true
	}
	for _, id := range rejectedIDs {
		acted[id] = true
	}

	resp.Total = len(nominations)
	resp.Approved = len(approvedIDs)
	resp.Rejected = len(rejectedIDs)
	for _, n := range nominations {
		switch level {
		case models.LevelManager:
			if n.Status == models.StatusPendingManager {
				resp.Pending++
			}
		case models.LevelDirector:
			if !acted[n.ID] {
				resp.Pending++
			}
		}
	}
	return resp, nil
}

// TeamLeadSummary returns the nominations a team lead submitted in a period
func (s *DashboardService) TeamLeadSummary(teamLead *models.User, yearQuarterID uuid.UUID) (*TeamLeadDashboardResponse, error) {
	if teamLead.Role != models.RoleTeamLead {
		return nil, apperrors.ErrForbiddenRole
	}

	yq, err := s.yearQuarterRepo.GetByID(yearQuarterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrYearQuarterNotFound
		}
		return nil, fmt.Errorf("failed to load year quarter: %w", err)
	}

	nominations, err := s.nominationRepo.GetByQuarterAndNominators(yq.ID, []uuid.UUID{teamLead.ID})
	if err != nil {
		return nil, fmt.Errorf("failed to load nominations: %w", err)
	}

	byStatus := make(map[models.NominationStatus]int64)
	for _, n := range nominations {
		byStatus[n.Status]++
	}

	return &TeamLeadDashboardResponse{
		Period:      yq.Label(),
		Submitted:   int64(len(nominations)),
		Counts:      *rollUpCounts(byStatus),
		Nominations: toNominationResponses(nominations),
	}, nil
}

// EmployeeSummary returns an employee's own authored and received nominations
func (s *DashboardService) EmployeeSummary(employee *models.User) (*EmployeeDashboardResponse, error) {
	authored, err := s.nominationRepo.GetByNominator(employee.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load authored nominations: %w", err)
	}
	received, err := s.nominationRepo.GetForNominee(employee.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load received nominations: %w", err)
	}

	resp := &EmployeeDashboardResponse{
		Authored: toNominationResponses(authored),
		Received: toNominationResponses(received),
	}

	if active, err := s.yearQuarterRepo.GetActive(); err == nil {
		resp.ActivePeriod = active.Label()
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load active year quarter: %w", err)
	}

	return resp, nil
}

// TeamNominations lists one team's nominations in a period for an approver in
// that team's review chain
func (s *DashboardService) TeamNominations(viewer *models.User, teamID, yearQuarterID uuid.UUID) ([]NominationResponse, error) {
	team, err := s.teamRepo.GetByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to load team: %w", err)
	}

	switch viewer.Role {
	case models.RoleAdmin:
	case models.RoleManager:
		if team.ManagerID != viewer.ID {
			return nil, apperrors.NewAuthorizationError("viewer does not manage this team")
		}
	case models.RoleDirector:
		if team.DirectorID != viewer.ID {
			return nil, apperrors.NewAuthorizationError("viewer does not direct this team")
		}
	default:
		return nil, apperrors.ErrForbiddenRole
	}

	nominations, err := s.nominationRepo.GetByTeamsAndQuarter([]uuid.UUID{team.ID}, yearQuarterID)
	if err != nil {
		return nil, fmt.Errorf("failed to load team nominations: %w", err)
	}
	return toNominationResponses(nominations), nil
}

// DirectorManagers returns the distinct managers of the teams a director
// oversees
func (s *DashboardService) DirectorManagers(director *models.User) ([]UserSummary, error) {
	if director.Role != models.RoleDirector {
		return nil, apperrors.ErrForbiddenRole
	}

	teams, err := s.teamRepo.GetByDirector(director.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load directed teams: %w", err)
	}

	seen := make(map[uuid.UUID]bool)
	managers := make([]UserSummary, 0, len(teams))
	for _, team := range teams {
		if seen[team.ManagerID] {
			continue
		}
		seen[team.ManagerID] = true

		manager, err := s.userRepo.GetByID(team.ManagerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to load manager: %w", err)
		}
		managers = append(managers, *toUserSummary(manager))
	}
	return managers, nil
}

// Orphaned returns pending nominations whose nominee has no team. Only admins
// see this repair queue.
func (s *DashboardService) Orphaned(viewer *models.User) ([]NominationResponse, error) {
	if viewer.Role != models.RoleAdmin {
		return nil, apperrors.ErrForbiddenRole
	}

	nominations, err := s.nominationRepo.GetOrphaned()
	if err != nil {
		return nil, fmt.Errorf("failed to load orphaned nominations: %w", err)
	}
	return toNominationResponses(nominations), nil
}

// rollUpCounts folds a per-status map into the dashboard count shape
func rollUpCounts(byStatus map[models.NominationStatus]int64) *StatusCounts {
	counts := &StatusCounts{
		Drafts:           byStatus[models.StatusDraft],
		PendingManager:   byStatus[models.StatusPendingManager],
		PendingDirector:  byStatus[models.StatusPendingDirector],
		ManagerApproved:  byStatus[models.StatusManagerApproved],
		ManagerRejected:  byStatus[models.StatusManagerRejected],
		DirectorApproved: byStatus[models.StatusDirectorApproved],
		DirectorRejected: byStatus[models.StatusDirectorRejected],
	}
	counts.Pending = counts.PendingManager + counts.PendingDirector
	counts.Approved = counts.ManagerApproved + counts.DirectorApproved
	counts.Rejected = counts.ManagerRejected + counts.DirectorRejected
	for _, n := range byStatus {
		counts.Total += n
	}
	return counts
}
