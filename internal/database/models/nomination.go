package models

import (
	"github.com/google/uuid"
)

// Nomination proposes that a nominee receive recognition. Its status is only
// ever changed through the review engine; the version column is the optimistic
// concurrency token for status transitions.
type Nomination struct {
	BaseModel
	NominatorID   uuid.UUID        `json:"nominator_id" gorm:"type:uuid;not null;index" validate:"required"`
	NomineeID     uuid.UUID        `json:"nominee_id" gorm:"type:uuid;not null;index" validate:"required"`
	CategoryID    uuid.UUID        `json:"category_id" gorm:"type:uuid;not null;index" validate:"required"`
	YearQuarterID uuid.UUID        `json:"year_quarter_id" gorm:"type:uuid;not null;index" validate:"required"`
	Description   string           `json:"description" gorm:"type:text;not null" validate:"required"`
	Achievements  string           `json:"achievements" gorm:"type:text;not null" validate:"required"`
	Status        NominationStatus `json:"status" gorm:"type:varchar(30);not null;default:'pending_manager';index"`
	Version       int              `json:"version" gorm:"not null;default:0"`
	IsDeleted     bool             `json:"is_deleted" gorm:"not null;default:false;index"`

	// Relationships
	Nominator   *User        `json:"nominator,omitempty" gorm:"foreignKey:NominatorID"`
	Nominee     *User        `json:"nominee,omitempty" gorm:"foreignKey:NomineeID"`
	Category    *Category    `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	YearQuarter *YearQuarter `json:"year_quarter,omitempty" gorm:"foreignKey:YearQuarterID"`
	Approvals   []Approval   `json:"approvals,omitempty" gorm:"foreignKey:NominationID"`
}

// TableName returns the table name for Nomination
func (Nomination) TableName() string {
	return "nominations"
}
