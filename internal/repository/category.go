package repository

import (
	"rewards-recognition-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryRepository handles database operations for award categories
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create creates a new category
func (r *CategoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

// GetByID retrieves a category by ID
func (r *CategoryRepository) GetByID(id uuid.UUID) (*models.Category, error) {
	var category models.Category
	err := r.db.First(&category, "id = ? AND is_deleted = false", id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// GetByName retrieves a category by name
func (r *CategoryRepository) GetByName(name string) (*models.Category, error) {
	var category models.Category
	err := r.db.First(&category, "name = ? AND is_deleted = false", name).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// GetAll retrieves all categories with pagination
func (r *CategoryRepository) GetAll(limit, offset int) ([]models.Category, int64, error) {
	var categories []models.Category
	var total int64

	if err := r.db.Model(&models.Category{}).Where("is_deleted = false").Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("is_deleted = false").
		Order("name ASC").
		Limit(limit).Offset(offset).
		Find(&categories).Error
	if err != nil {
		return nil, 0, err
	}

	return categories, total, nil
}

// Update updates a category
func (r *CategoryRepository) Update(category *models.Category) error {
	return r.db.Save(category).Error
}

// SoftDelete marks a category as deleted
func (r *CategoryRepository) SoftDelete(id uuid.UUID) error {
	result := r.db.Model(&models.Category{}).
		Where("id = ? AND is_deleted = false", id).
		Update("is_deleted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
