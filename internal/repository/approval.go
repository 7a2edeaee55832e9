package repository

import (
	"rewards-recognition-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ApprovalRepository handles database operations for the approval ledger.
// The ledger is append-only: there are no update or delete operations here.
type ApprovalRepository struct {
	db *gorm.DB
}

// NewApprovalRepository creates a new approval repository
func NewApprovalRepository(db *gorm.DB) *ApprovalRepository {
	return &ApprovalRepository{db: db}
}

// Create appends a ledger entry
func (r *ApprovalRepository) Create(approval *models.Approval) error {
	return r.db.Create(approval).Error
}

// GetByID retrieves a ledger entry by ID
func (r *ApprovalRepository) GetByID(id uuid.UUID) (*models.Approval, error) {
	var approval models.Approval
	err := r.db.Preload("Approver").First(&approval, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &approval, nil
}

// GetByNomination retrieves a nomination's full decision history in order
func (r *ApprovalRepository) GetByNomination(nominationID uuid.UUID) ([]models.Approval, error) {
	var approvals []models.Approval
	err := r.db.Preload("Approver").
		Where("nomination_id = ?", nominationID).
		Order("action_at ASC").
		Find(&approvals).Error
	return approvals, err
}

// GetByApprover retrieves every decision a user has recorded
func (r *ApprovalRepository) GetByApprover(approverID uuid.UUID) ([]models.Approval, error) {
	var approvals []models.Approval
	err := r.db.Preload("Nomination").
		Where("approver_id = ?", approverID).
		Order("action_at DESC").
		Find(&approvals).Error
	return approvals, err
}

// HasApproverActed reports whether the user already has a ledger entry for the
// nomination. The composite unique index remains the authoritative guard; this
// read exists so the common case fails before opening a write transaction.
func (r *ApprovalRepository) HasApproverActed(approverID, nominationID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Approval{}).
		Where("approver_id = ? AND nomination_id = ?", approverID, nominationID).
		Count(&count).Error
	return count > 0, err
}

// ActedNominationIDs filters the given nominations down to those carrying a
// ledger entry with the given action at the given level. Dashboard approval
// counts are ledger-derived so later decisions at other levels do not erase
// them, and they follow the nomination's period, not the decision timestamp.
func (r *ApprovalRepository) ActedNominationIDs(nominationIDs []uuid.UUID, level models.ApprovalLevel, action models.ApprovalAction) ([]uuid.UUID, error) {
	ids := []uuid.UUID{}
	if len(nominationIDs) == 0 {
		return ids, nil
	}
	err := r.db.Model(&models.Approval{}).
		Distinct("nomination_id").
		Where("nomination_id IN ? AND level = ? AND action = ?", nominationIDs, level, action).
		Pluck("nomination_id", &ids).Error
	return ids, err
}
