package models

import (
	"time"

	"github.com/google/uuid"
)

// Approval is one append-only ledger entry: a single approve/reject action by
// one approver at one level. Rows are never updated or deleted in normal flow.
// The composite unique index enforces the one-action-per-approver invariant at
// write time, closing the check-then-act race of a read-side existence check.
type Approval struct {
	BaseModel
	NominationID uuid.UUID      `json:"nomination_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_approvals_approver_nomination" validate:"required"`
	ApproverID   uuid.UUID      `json:"approver_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_approvals_approver_nomination" validate:"required"`
	Action       ApprovalAction `json:"action" gorm:"type:varchar(20);not null" validate:"required"`
	Level        ApprovalLevel  `json:"level" gorm:"type:varchar(20);not null;index" validate:"required"`
	ActionAt     time.Time      `json:"action_at" gorm:"not null"`
	Remarks      string         `json:"remarks" gorm:"size:1000"`

	// Relationships
	Nomination *Nomination `json:"nomination,omitempty" gorm:"foreignKey:NominationID"`
	Approver   *User       `json:"approver,omitempty" gorm:"foreignKey:ApproverID"`
}

// TableName returns the table name for Approval
func (Approval) TableName() string {
	return "approvals"
}
