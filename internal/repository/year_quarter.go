package repository

import (
	"rewards-recognition-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// YearQuarterRepository handles database operations for reporting periods
type YearQuarterRepository struct {
	db *gorm.DB
}

// NewYearQuarterRepository creates a new year quarter repository
func NewYearQuarterRepository(db *gorm.DB) *YearQuarterRepository {
	return &YearQuarterRepository{db: db}
}

// Create creates a new year quarter
func (r *YearQuarterRepository) Create(yq *models.YearQuarter) error {
	return r.db.Create(yq).Error
}

// GetByID retrieves a year quarter by ID
func (r *YearQuarterRepository) GetByID(id uuid.UUID) (*models.YearQuarter, error) {
	var yq models.YearQuarter
	err := r.db.First(&yq, "id = ? AND is_deleted = false", id).Error
	if err != nil {
		return nil, err
	}
	return &yq, nil
}

// GetByYearAndQuarter retrieves the period for a specific year and quarter
func (r *YearQuarterRepository) GetByYearAndQuarter(year, quarter int) (*models.YearQuarter, error) {
	var yq models.YearQuarter
	err := r.db.First(&yq, "year = ? AND quarter = ? AND is_deleted = false", year, quarter).Error
	if err != nil {
		return nil, err
	}
	return &yq, nil
}

// GetActive retrieves the currently active period
func (r *YearQuarterRepository) GetActive() (*models.YearQuarter, error) {
	var yq models.YearQuarter
	err := r.db.First(&yq, "is_active = true AND is_deleted = false").Error
	if err != nil {
		return nil, err
	}
	return &yq, nil
}

// GetAll retrieves all year quarters with pagination, newest first
func (r *YearQuarterRepository) GetAll(limit, offset int) ([]models.YearQuarter, int64, error) {
	var quarters []models.YearQuarter
	var total int64

	if err := r.db.Model(&models.YearQuarter{}).Where("is_deleted = false").Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("is_deleted = false").
		Order("year DESC, quarter DESC").
		Limit(limit).Offset(offset).
		Find(&quarters).Error
	if err != nil {
		return nil, 0, err
	}

	return quarters, total, nil
}

// Update updates a year quarter
func (r *YearQuarterRepository) Update(yq *models.YearQuarter) error {
	return r.db.Save(yq).Error
}

// SetActive activates one period and deactivates every other in a single
// transaction, preserving the at-most-one-active invariant
func (r *YearQuarterRepository) SetActive(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.YearQuarter{}).
			Where("is_active = true AND id <> ?", id).
			Update("is_active", false).Error; err != nil {
			return err
		}
		result := tx.Model(&models.YearQuarter{}).
			Where("id = ? AND is_deleted = false", id).
			Update("is_active", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// SoftDelete marks a year quarter as deleted
func (r *YearQuarterRepository) SoftDelete(id uuid.UUID) error {
	result := r.db.Model(&models.YearQuarter{}).
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
