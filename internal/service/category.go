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

// CategoryService handles business logic for award categories
type CategoryService struct {
	repo      repository.CategoryRepositoryInterface
	validator *validator.Validate
}

// NewCategoryService creates a new category service
func NewCategoryService(repo repository.CategoryRepositoryInterface, validator *validator.Validate) *CategoryService {
	return &CategoryService{
		repo:      repo,
		validator: validator,
	}
}

// CreateCategoryRequest represents the request to create a category
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=500"`
}

// UpdateCategoryRequest represents the request to update a category
type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
}

// CategoryResponse represents the response for category operations
type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategoryListResponse represents a paginated list of categories
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
}

// Create creates a new category
func (s *CategoryService) Create(req *CreateCategoryRequest) (*CategoryResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByName(req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing category: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrCategoryExists
	}

	category := &models.Category{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.Create(category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return toCategoryResponse(category), nil
}

// GetByID retrieves a category by ID
func (s *CategoryService) GetByID(id uuid.UUID) (*CategoryResponse, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to load category: %w", err)
	}
	return toCategoryResponse(category), nil
}

// GetAll retrieves categories with pagination
func (s *CategoryService) GetAll(page, pageSize int) (*CategoryListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	categories, total, err := s.repo.GetAll(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	responses := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		responses = append(responses, *toCategoryResponse(&categories[i]))
	}

	return &CategoryListResponse{
		Categories: responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

// Update updates a category
func (s *CategoryService) Update(id uuid.UUID, req *UpdateCategoryRequest) (*CategoryResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	category, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to load category: %w", err)
	}

	if req.Name != nil && *req.Name != category.Name {
		existing, err := s.repo.GetByName(*req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check existing category: %w", err)
		}
		if existing != nil {
			return nil, apperrors.ErrCategoryExists
		}
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}

	if err := s.repo.Update(category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return toCategoryResponse(category), nil
}

// Delete soft-deletes a category
func (s *CategoryService) Delete(id uuid.UUID) error {
	if err := s.repo.SoftDelete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCategoryNotFound
		}
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

func toCategoryResponse(c *models.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
