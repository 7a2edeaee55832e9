package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "nomination"}
		assert.Equal(t, "nomination not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "nomination"}
		err2 := &NotFoundError{Entity: "nomination"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(ErrNominationNotFound, ErrTeamNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrNominationNotFound))
		assert.True(t, IsNotFound(fmt.Errorf("load: %w", ErrUserNotFound)))
		assert.False(t, IsNotFound(ErrInvalidAction))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		assert.Equal(t, "user already exists with this email", ErrUserExists.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "team"}
		assert.Equal(t, "team already exists", err.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrTeamExists))
		assert.False(t, IsAlreadyExists(ErrTeamNotFound))
	})
}

func TestReviewEngineErrors(t *testing.T) {
	t.Run("conflict errors are ConflictError", func(t *testing.T) {
		assert.True(t, IsConflict(ErrDuplicateApproval))
		assert.True(t, IsConflict(ErrAlreadyFinalized))
		assert.True(t, IsConflict(ErrConcurrentModification))
		assert.False(t, IsConflict(ErrForbiddenRole))
	})

	t.Run("authority errors are AuthorizationError", func(t *testing.T) {
		assert.True(t, IsAuthorization(ErrForbiddenRole))
		assert.True(t, IsAuthorization(ErrManagerReviewRequired))
		assert.False(t, IsAuthorization(ErrDuplicateApproval))
	})

	t.Run("wrapped sentinels survive errors.Is", func(t *testing.T) {
		wrapped := fmt.Errorf("submit review: %w", ErrDuplicateApproval)
		assert.True(t, errors.Is(wrapped, ErrDuplicateApproval))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "nominee_id", Message: "required"}
		assert.Equal(t, "validation error: nominee_id - required", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "bad request"}
		assert.Equal(t, "validation error: bad request", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("description", "required")))
		assert.False(t, IsValidation(ErrNominationNotFound))
	})
}

func TestAuthenticationErrors(t *testing.T) {
	assert.True(t, IsAuthentication(ErrInvalidCredentials))
	assert.True(t, IsAuthentication(ErrInvalidToken))
	assert.False(t, IsAuthentication(ErrForbiddenRole))
}
