package repository

import (
	"rewards-recognition-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.
		Preload("TeamLead").
		Preload("Manager").
		Preload("Director").
		First(&team, "id = ? AND is_deleted = false", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByName retrieves a team by name
func (r *TeamRepository) GetByName(name string) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "name = ? AND is_deleted = false", name).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetAll retrieves all teams with pagination
func (r *TeamRepository) GetAll(limit, offset int) ([]models.Team, int64, error) {
	var teams []models.Team
	var total int64

	if err := r.db.Model(&models.Team{}).Where("is_deleted = false").Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.
		Preload("TeamLead").
		Preload("Manager").
		Preload("Director").
		Where("is_deleted = false").
		Order("name ASC").
		Limit(limit).Offset(offset).
		Find(&teams).Error
	if err != nil {
		return nil, 0, err
	}

	return teams, total, nil
}

// GetWithMembers retrieves a team with all its members
func (r *TeamRepository) GetWithMembers(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.
		Preload("Members", "is_deleted = false").
		Preload("TeamLead").
		Preload("Manager").
		Preload("Director").
		First(&team, "id = ? AND is_deleted = false", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByManager retrieves the teams a user manages
func (r *TeamRepository) GetByManager(managerID uuid.UUID) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.Where("manager_id = ? AND is_deleted = false", managerID).
		Order("name ASC").
		Find(&teams).Error
	return teams, err
}

// GetByDirector retrieves the teams a user directs
func (r *TeamRepository) GetByDirector(directorID uuid.UUID) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.Where("director_id = ? AND is_deleted = false", directorID).
		Order("name ASC").
		Find(&teams).Error
	return teams, err
}

// GetDeleted retrieves soft-deleted teams
func (r *TeamRepository) GetDeleted() ([]models.Team, error) {
	var teams []models.Team
	err := r.db.
		Preload("TeamLead").
		Preload("Manager").
		Preload("Director").
		Where("is_deleted = true").
		Order("name ASC").
		Find(&teams).Error
	return teams, err
}

// Update updates a team
func (r *TeamRepository) Update(team *models.Team) error {
	return r.db.Save(team).Error
}

// SoftDelete marks a team as deleted and detaches its members so their future
// nominations fall out of the old review chain
func (r *TeamRepository) SoftDelete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Team{}).
			Where("id = ? AND is_deleted = false", id).
			Update("is_deleted", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Model(&models.User{}).
			Where("team_id = ?", id).
			Update("team_id", nil).Error
	})
}
