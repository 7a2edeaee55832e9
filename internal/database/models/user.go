package models

import (
	"github.com/google/uuid"
)

// User represents an application user. Role is single-valued: visibility and
// review authority are both decided from this one column.
type User struct {
	BaseModel
	Name         string     `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Email        string     `json:"email" gorm:"uniqueIndex:idx_users_email_active,where:is_deleted = false;not null;size:255" validate:"required,email,max=255"` // Partial unique index excludes soft-deleted records so an address can be re-registered
	PasswordHash string     `json:"-" gorm:"not null;size:100"`
	Role         Role       `json:"role" gorm:"type:varchar(20);not null;default:'employee'" validate:"required"`
	TeamID       *uuid.UUID `json:"team_id,omitempty" gorm:"type:uuid;index"`
	IsActive     bool       `json:"is_active" gorm:"default:true"`
	IsDeleted    bool       `json:"is_deleted" gorm:"not null;default:false;index"`

	// Relationships
	Team *Team `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// HasTeam reports whether the user is assigned to a team. Nominations for
// users without a team have no resolvable approver.
func (u *User) HasTeam() bool {
	return u.TeamID != nil && *u.TeamID != uuid.Nil
}
