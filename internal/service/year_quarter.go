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

// YearQuarterService handles business logic for reporting periods
type YearQuarterService struct {
	repo      repository.YearQuarterRepositoryInterface
	validator *validator.Validate
}

// NewYearQuarterService creates a new year quarter service
func NewYearQuarterService(repo repository.YearQuarterRepositoryInterface, validator *validator.Validate) *YearQuarterService {
	return &YearQuarterService{
		repo:      repo,
		validator: validator,
	}
}

// CreateYearQuarterRequest represents the request to create a period
type CreateYearQuarterRequest struct {
	Year     int  `json:"year" validate:"required,min=2000,max=2100"`
	Quarter  int  `json:"quarter" validate:"required,min=1,max=4"`
	Activate bool `json:"activate"`
}

// YearQuarterResponse represents the response for year quarter operations
type YearQuarterResponse struct {
	ID        uuid.UUID  `json:"id"`
	Year      int        `json:"year"`
	Quarter   int        `json:"quarter"`
	Label     string     `json:"label"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// YearQuarterListResponse represents a paginated list of periods
type YearQuarterListResponse struct {
	YearQuarters []YearQuarterResponse `json:"year_quarters"`
	Total        int64                 `json:"total"`
	Page         int                   `json:"page"`
	PageSize     int                   `json:"page_size"`
}

// Create creates a new period with calendar dates derived from the quarter
func (s *YearQuarterService) Create(req *CreateYearQuarterRequest) (*YearQuarterResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByYearAndQuarter(req.Year, req.Quarter)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing year quarter: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrYearQuarterExists
	}

	start, end, err := models.QuarterDateRange(req.Year, req.Quarter)
	if err != nil {
		return nil, apperrors.ErrInvalidQuarter
	}

	yq := &models.YearQuarter{
		Year:      req.Year,
		Quarter:   req.Quarter,
		StartDate: &start,
		EndDate:   &end,
	}
	if err := s.repo.Create(yq); err != nil {
		return nil, fmt.Errorf("failed to create year quarter: %w", err)
	}

	if req.Activate {
		if err := s.repo.SetActive(yq.ID); err != nil {
			return nil, fmt.Errorf("failed to activate year quarter: %w", err)
		}
		yq.IsActive = true
	}

	return toYearQuarterResponse(yq), nil
}

// GetByID retrieves a period by ID
func (s *YearQuarterService) GetByID(id uuid.UUID) (*YearQuarterResponse, error) {
	yq, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrYearQuarterNotFound
		}
		return nil, fmt.Errorf("failed to load year quarter: %w", err)
	}
	return toYearQuarterResponse(yq), nil
}

// GetActive retrieves the currently active period
func (s *YearQuarterService) GetActive() (*YearQuarterResponse, error) {
	yq, err := s.repo.GetActive()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrYearQuarterNotFound
		}
		return nil, fmt.Errorf("failed to load active year quarter: %w", err)
	}
	return toYearQuarterResponse(yq), nil
}

// GetAll retrieves periods with pagination, newest first
func (s *YearQuarterService) GetAll(page, pageSize int) (*YearQuarterListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	quarters, total, err := s.repo.GetAll(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list year quarters: %w", err)
	}

	responses := make([]YearQuarterResponse, 0, len(quarters))
	for i := range quarters {
		responses = append(responses, *toYearQuarterResponse(&quarters[i]))
	}

	return &YearQuarterListResponse{
		YearQuarters: responses,
		Total:        total,
		Page:         page,
		PageSize:     pageSize,
	}, nil
}

// SetActive activates a period and deactivates every other
func (s *YearQuarterService) SetActive(id uuid.UUID) (*YearQuarterResponse, error) {
	if err := s.repo.SetActive(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrYearQuarterNotFound
		}
		return nil, fmt.Errorf("failed to activate year quarter: %w", err)
	}

	yq, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload year quarter: %w", err)
	}
	return toYearQuarterResponse(yq), nil
}

// Delete soft-deletes a period
func (s *YearQuarterService) Delete(id uuid.UUID) error {
	yq, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrYearQuarterNotFound
		}
		return fmt.Errorf("failed to load year quarter: %w", err)
	}
	if yq.IsActive {
		return apperrors.NewValidationError("year_quarter", "the active period cannot be deleted")
	}

	if err := s.repo.SoftDelete(id); err != nil {
		return fmt.Errorf("failed to delete year quarter: %w", err)
	}
	return nil
}

func toYearQuarterResponse(yq *models.YearQuarter) *YearQuarterResponse {
	return &YearQuarterResponse{
		ID:        yq.ID,
		Year:      yq.Year,
		Quarter:   yq.Quarter,
		Label:     yq.Label(),
		StartDate: yq.StartDate,
		EndDate:   yq.EndDate,
		IsActive:  yq.IsActive,
		CreatedAt: yq.CreatedAt,
		UpdatedAt: yq.UpdatedAt,
	}
}
