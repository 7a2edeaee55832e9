package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this email"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConflictError represents a rejected review action: the request was well
// formed but the nomination's review state does not admit it.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrNominationNotFound  = &NotFoundError{Entity: "nomination"}
	ErrApprovalNotFound    = &NotFoundError{Entity: "approval"}
	ErrUserNotFound        = &NotFoundError{Entity: "user"}
	ErrTeamNotFound        = &NotFoundError{Entity: "team"}
	ErrCategoryNotFound    = &NotFoundError{Entity: "category"}
	ErrYearQuarterNotFound = &NotFoundError{Entity: "year quarter"}
	ErrDraftNotFound       = &NotFoundError{Entity: "draft nomination"}
)

// Already Exists Errors
var (
	ErrUserExists        = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrTeamExists        = &AlreadyExistsError{Entity: "team", Context: "with this name"}
	ErrCategoryExists    = &AlreadyExistsError{Entity: "category", Context: "with this name"}
	ErrYearQuarterExists = &AlreadyExistsError{Entity: "year quarter", Context: "for this year and quarter"}
)

// Review Engine Errors
var (
	// ErrForbiddenRole: the actor's role carries no review authority for the
	// requested transition (team leads and employees can never review;
	// managers can only act on pending_manager nominations).
	ErrForbiddenRole = &AuthorizationError{Message: "role has no authority for this review action"}

	// ErrManagerReviewRequired: director action blocked by the
	// require-manager-approval-before-director policy.
	ErrManagerReviewRequired = &AuthorizationError{Message: "manager review is required before director review"}

	// ErrAlreadyFinalized: the nomination is in a terminal state.
	ErrAlreadyFinalized = &ConflictError{Message: "nomination has already received a final director decision"}

	// ErrDuplicateApproval: this approver already has a ledger entry for the
	// nomination.
	ErrDuplicateApproval = &ConflictError{Message: "approver has already acted on this nomination"}

	// ErrConcurrentModification: the versioned status update lost a race with
	// another reviewer. Retried once automatically before being surfaced.
	ErrConcurrentModification = &ConflictError{Message: "nomination was modified concurrently"}
)

// Business Logic Errors
var (
	ErrInvalidStatus      = errors.New("invalid nomination status")
	ErrInvalidAction      = errors.New("invalid action: must be 'approved' or 'rejected'")
	ErrInvalidRole        = errors.New("invalid role")
	ErrNotDraft           = errors.New("only nominations in draft status can be updated")
	ErrNotDraftOwner      = errors.New("only the nominator may update a draft")
	ErrNomineeHasNoTeam   = errors.New("nominee has no team assignment; no approver can be resolved")
	ErrInvalidQuarter     = errors.New("invalid quarter: must be 1-4")
	ErrInvalidPeriod      = errors.New("invalid year quarter reference")
	ErrTeamMemberConflict = errors.New("user is still assigned to a team")
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid email or password"}
	ErrInvalidToken       = &AuthenticationError{Message: "invalid or expired token"}
	ErrUserInactive       = &AuthenticationError{Message: "user account is inactive"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}
