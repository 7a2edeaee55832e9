package models

// Role represents the single application role of a user. The identity layer
// resolves exactly one role per user; the approval engine never re-derives it.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleDirector Role = "director"
	RoleManager  Role = "manager"
	RoleTeamLead Role = "team_lead"
	RoleEmployee Role = "employee"
)

// IsValid checks if the Role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleDirector, RoleManager, RoleTeamLead, RoleEmployee:
		return true
	}
	return false
}

// NominationStatus represents the lifecycle status of a nomination
type NominationStatus string

const (
	StatusDraft            NominationStatus = "draft"
	StatusPendingManager   NominationStatus = "pending_manager"
	StatusPendingDirector  NominationStatus = "pending_director"
	StatusManagerApproved  NominationStatus = "manager_approved"
	StatusManagerRejected  NominationStatus = "manager_rejected"
	StatusDirectorApproved NominationStatus = "director_approved"
	StatusDirectorRejected NominationStatus = "director_rejected"
)

// IsValid checks if the NominationStatus is valid
func (s NominationStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusPendingManager, StatusPendingDirector,
		StatusManagerApproved, StatusManagerRejected,
		StatusDirectorApproved, StatusDirectorRejected:
		return true
	}
	return false
}

// IsFinal reports whether the Director has made a final decision.
// Final statuses permit no further review action.
func (s NominationStatus) IsFinal() bool {
	return s == StatusDirectorApproved || s == StatusDirectorRejected
}

// IsApproved reports whether the status counts as approved in generic
// (status-based) dashboard summaries.
func (s NominationStatus) IsApproved() bool {
	return s == StatusManagerApproved || s == StatusDirectorApproved
}

// IsRejected reports whether the status counts as rejected in generic
// (status-based) dashboard summaries.
func (s NominationStatus) IsRejected() bool {
	return s == StatusManagerRejected || s == StatusDirectorRejected
}

// ApprovalAction represents the decision recorded by a reviewer
type ApprovalAction string

const (
	ActionApproved ApprovalAction = "approved"
	ActionRejected ApprovalAction = "rejected"
)

// IsValid checks if the ApprovalAction is valid
func (a ApprovalAction) IsValid() bool {
	return a == ActionApproved || a == ActionRejected
}

// ApprovalLevel represents the review tier at which an action was taken
type ApprovalLevel string

const (
	LevelManager  ApprovalLevel = "manager"
	LevelDirector ApprovalLevel = "director"
)

// IsValid checks if the ApprovalLevel is valid
func (l ApprovalLevel) IsValid() bool {
	return l == LevelManager || l == LevelDirector
}
