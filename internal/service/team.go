package service

import (
	"errors"
	"fmt"
	"time"

	"rewards-recognition-backend/internal/database/models"
	apperrors "rewards-recognition-backend/internal/errors"
	"rewards-recognition-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamService handles business logic for teams and their review chains
type TeamService struct {
	repo      repository.TeamRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, userRepo repository.UserRepositoryInterface, validator *validator.Validate) *TeamService {
	return &TeamService{
		repo:      repo,
		userRepo:  userRepo,
		validator: validator,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name       string    `json:"name" validate:"required,min=1,max=100"`
	TeamLeadID uuid.UUID `json:"team_lead_id" validate:"required"`
	ManagerID  uuid.UUID `json:"manager_id" validate:"required"`
	DirectorID uuid.UUID `json:"director_id" validate:"required"`
}

// UpdateTeamRequest represents the request to update a team
type UpdateTeamRequest struct {
	Name       *string    `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	TeamLeadID *uuid.UUID `json:"team_lead_id,omitempty"`
	ManagerID  *uuid.UUID `json:"manager_id,omitempty"`
	DirectorID *uuid.UUID `json:"director_id,omitempty"`
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	ID        uuid.UUID    `json:"id"`
	Name      string       `json:"name"`
	TeamLead  *UserSummary `json:"team_lead,omitempty"`
	Manager   *UserSummary `json:"manager,omitempty"`
	Director  *UserSummary `json:"director,omitempty"`
	Members   []UserSummary `json:"members,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// TeamListResponse represents a paginated list of teams
type TeamListResponse struct {
	Teams    []TeamResponse `json:"teams"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// Create creates a new team after verifying its review chain holds the
// expected roles
func (s *TeamService) Create(req *CreateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByName(req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing team: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrTeamExists
	}

	if err := s.verifyChain(req.TeamLeadID, req.ManagerID, req.DirectorID); err != nil {
		return nil, err
	}

	team := &models.Team{
		Name:       req.Name,
		TeamLeadID: req.TeamLeadID,
		ManagerID:  req.ManagerID,
		DirectorID: req.DirectorID,
	}

	if err := s.repo.Create(team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	created, err := s.repo.GetByID(team.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload team: %w", err)
	}
	return toTeamResponse(created), nil
}

// GetByID retrieves a team with its members and review chain
func (s *TeamService) GetByID(id uuid.UUID) (*TeamResponse, error) {
	team, err := s.repo.GetWithMembers(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to load team: %w", err)
	}
	return toTeamResponse(team), nil
}

// GetAll retrieves teams with pagination
func (s *TeamService) GetAll(page, pageSize int) (*TeamListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	teams, total, err := s.repo.GetAll(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	responses := make([]TeamResponse, 0, len(teams))
	for i := range teams {
		responses = append(responses, *toTeamResponse(&teams[i]))
	}

	return &TeamListResponse{
		Teams:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a team's name or review chain
func (s *TeamService) Update(id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	team, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to load team: %w", err)
	}

	if req.Name != nil && *req.Name != team.Name {
		existing, err := s.repo.GetByName(*req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check existing team: %w", err)
		}
		if existing != nil {
			return nil, apperrors.ErrTeamExists
		}
		team.Name = *req.Name
	}
	if req.TeamLeadID != nil {
		if err := s.verifyRole(*req.TeamLeadID, models.RoleTeamLead); err != nil {
			return nil, err
		}
		team.TeamLeadID = *req.TeamLeadID
	}
	if req.ManagerID != nil {
		if err := s.verifyRole(*req.ManagerID, models.RoleManager); err != nil {
			return nil, err
		}
		team.ManagerID = *req.ManagerID
	}
	if req.DirectorID != nil {
		if err := s.verifyRole(*req.DirectorID, models.RoleDirector); err != nil {
			return nil, err
		}
		team.DirectorID = *req.DirectorID
	}

	// Clear preloaded associations so Save only writes the team row
	team.TeamLead = nil
	team.Manager = nil
	team.Director = nil
	team.Members = nil

	if err := s.repo.Update(team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	updated, err := s.repo.GetByID(team.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload team: %w", err)
	}
	return toTeamResponse(updated), nil
}

// Deleted lists soft-deleted teams for the admin audit view
func (s *TeamService) Deleted() ([]TeamResponse, error) {
	teams, err := s.repo.GetDeleted()
	if err != nil {
		return nil, fmt.Errorf("failed to list deleted teams: %w", err)
	}

	responses := make([]TeamResponse, 0, len(teams))
	for i := range teams {
		responses = append(responses, *toTeamResponse(&teams[i]))
	}
	return responses, nil
}

// Delete soft-deletes a team and detaches its members
func (s *TeamService) Delete(id uuid.UUID) error {
	if err := s.repo.SoftDelete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return nil
}

func (s *TeamService) verifyChain(teamLeadID, managerID, directorID uuid.UUID) error {
	if err := s.verifyRole(teamLeadID, models.RoleTeamLead); err != nil {
		return err
	}
	if err := s.verifyRole(managerID, models.RoleManager); err != nil {
		return err
	}
	return s.verifyRole(directorID, models.RoleDirector)
}

func (s *TeamService) verifyRole(userID uuid.UUID, role models.Role) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to verify user: %w", err)
	}
	if user.Role != role {
		return apperrors.NewValidationError(string(role)+"_id", fmt.Sprintf("user must hold the %s role", role))
	}
	return nil
}

func toTeamResponse(t *models.Team) *TeamResponse {
	resp := &TeamResponse{
		ID:        t.ID,
		Name:      t.Name,
		TeamLead:  toUserSummary(t.TeamLead),
		Manager:   toUserSummary(t.Manager),
		Director:  toUserSummary(t.Director),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
	for i := range t.Members {
		resp.Members = append(resp.Members, *toUserSummary(&t.Members[i]))
	}
	return resp
}
