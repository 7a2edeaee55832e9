package repository

import (
	"rewards-recognition-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ? AND is_deleted = false", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ? AND is_deleted = false", email).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetWithTeam retrieves a user with team details
func (r *UserRepository) GetWithTeam(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Team").First(&user, "id = ? AND is_deleted = false", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetAll retrieves all users with pagination
func (r *UserRepository) GetAll(limit, offset int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	if err := r.db.Model(&models.User{}).Where("is_deleted = false").Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Team").
		Where("is_deleted = false").
		Order("name ASC").
		Limit(limit).Offset(offset).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// GetByTeamID retrieves all users assigned to a team
func (r *UserRepository) GetByTeamID(teamID uuid.UUID) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("team_id = ? AND is_deleted = false", teamID).
		Order("name ASC").
		Find(&users).Error
	return users, err
}

// GetUnassigned retrieves active users without a team assignment
func (r *UserRepository) GetUnassigned() ([]models.User, error) {
	var users []models.User
	err := r.db.Where("team_id IS NULL AND is_deleted = false").
		Order("name ASC").
		Find(&users).Error
	return users, err
}

// GetDeleted retrieves soft-deleted users
func (r *UserRepository) GetDeleted() ([]models.User, error) {
	var users []models.User
	err := r.db.Where("is_deleted = true").
		Order("name ASC").
		Find(&users).Error
	return users, err
}

// GetByRole retrieves all users holding a role
func (r *UserRepository) GetByRole(role models.Role) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("role = ? AND is_deleted = false", role).
		Order("name ASC").
		Find(&users).Error
	return users, err
}

// Update updates a user
func (r *UserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// SoftDelete marks a user as deleted
func (r *UserRepository) SoftDelete(id uuid.UUID) error {
	result := r.db.Model(&models.User{}).
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
