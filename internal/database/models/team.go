package models

import (
	"github.com/google/uuid"
)

// Team assigns the review chain for its members: the manager reviews first,
// the director finalizes. A nominee's team routes the nomination.
type Team struct {
	BaseModel
	Name       string    `json:"name" gorm:"uniqueIndex:idx_teams_name_active,where:is_deleted = false;not null;size:100" validate:"required,min=1,max=100"`
	TeamLeadID uuid.UUID `json:"team_lead_id" gorm:"type:uuid;not null;index" validate:"required"`
	ManagerID  uuid.UUID `json:"manager_id" gorm:"type:uuid;not null;index" validate:"required"`
	DirectorID uuid.UUID `json:"director_id" gorm:"type:uuid;not null;index" validate:"required"`
	IsDeleted  bool      `json:"is_deleted" gorm:"not null;default:false;index"`

	// Relationships
	TeamLead *User `json:"team_lead,omitempty" gorm:"foreignKey:TeamLeadID"`
	Manager  *User `json:"manager,omitempty" gorm:"foreignKey:ManagerID"`
	Director *User `json:"director,omitempty" gorm:"foreignKey:DirectorID"`
	Members  []User `json:"members,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
