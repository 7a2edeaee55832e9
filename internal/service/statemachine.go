package service

import (
	"rewards-recognition-backend/internal/database/models"
	apperrors "rewards-recognition-backend/internal/errors"
)

// NextStatus computes the status a nomination moves to when a reviewer acts.
// It is a pure function: the caller supplies the current status, the actor's
// role, the decision, and the active review policy.
//
// Managers only act on nominations awaiting their first decision. Directors
// finalize from any non-final state under the permissive policy; under the
// strict policy they may only act once a manager has approved or the
// nomination is explicitly queued for them. Every other role is refused.
func NextStatus(current models.NominationStatus, role models.Role, action models.ApprovalAction, requireManagerFirst bool) (models.NominationStatus, error) {
	if !current.IsValid() {
		return "", apperrors.ErrInvalidStatus
	}
	if !action.IsValid() {
		return "", apperrors.ErrInvalidAction
	}

	// A final director decision closes the nomination for everyone,
	// regardless of who asks.
	if current.IsFinal() {
		return "", apperrors.ErrAlreadyFinalized
	}

	switch role {
	case models.RoleManager:
		if current != models.StatusPendingManager {
			return "", apperrors.ErrForbiddenRole
		}
		if action == models.ActionApproved {
			return models.StatusManagerApproved, nil
		}
		return models.StatusManagerRejected, nil

	case models.RoleDirector:
		if requireManagerFirst &&
			current != models.StatusManagerApproved &&
			current != models.StatusPendingDirector {
			return "", apperrors.ErrManagerReviewRequired
		}
		if action == models.ActionApproved {
			return models.StatusDirectorApproved, nil
		}
		return models.StatusDirectorRejected, nil

	case models.RoleAdmin, models.RoleTeamLead, models.RoleEmployee:
		return "", apperrors.ErrForbiddenRole

	default:
		return "", apperrors.ErrInvalidRole
	}
}

// LevelForRole maps a reviewing role to the ledger level it records at.
func LevelForRole(role models.Role) (models.ApprovalLevel, error) {
	switch role {
	case models.RoleManager:
		return models.LevelManager, nil
	case models.RoleDirector:
		return models.LevelDirector, nil
	}
	return "", apperrors.ErrForbiddenRole
}
