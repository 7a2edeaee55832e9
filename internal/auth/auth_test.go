package auth

import (
	"testing"

	"rewards-recognition-backend/internal/database/models"
	apperrors "rewards-recognition-backend/internal/errors"
	"rewards-recognition-backend/internal/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newTestUser(password string) *models.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return &models.User{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		Name:         "Sam Okafor",
		Email:        "sam@example.com",
		PasswordHash: string(hash),
		Role:         models.RoleManager,
		IsActive:     true,
	}
}

func TestJWTOperations(t *testing.T) {
	service := NewAuthService(nil, "test-signing-key", 12)
	user := newTestUser("secret-password")

	token, expiresIn, err := service.GenerateJWT(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresIn, int64(0))

	claims, err := service.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, models.RoleManager, claims.Role)

	_, err = service.ValidateJWT("not-a-token")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestJWTRejectsWrongKey(t *testing.T) {
	issuer := NewAuthService(nil, "key-one", 12)
	verifier := NewAuthService(nil, "key-two", 12)

	token, _, err := issuer.GenerateJWT(newTestUser("pw"))
	require.NoError(t, err)

	_, err = verifier.ValidateJWT(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestLogin(t *testing.T) {
	t.Run("valid credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := mocks.NewMockUserRepositoryInterface(ctrl)
		service := NewAuthService(userRepo, "test-key", 12)

		user := newTestUser("correct-horse")
		userRepo.EXPECT().GetByEmail(user.Email).Return(user, nil)

		resp, err := service.Login(user.Email, "correct-horse")
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, "bearer", resp.TokenType)
		assert.Equal(t, user.ID, resp.UserID)
		assert.Equal(t, models.RoleManager, resp.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := mocks.NewMockUserRepositoryInterface(ctrl)
		service := NewAuthService(userRepo, "test-key", 12)

		user := newTestUser("correct-horse")
		userRepo.EXPECT().GetByEmail(user.Email).Return(user, nil)

		_, err := service.Login(user.Email, "battery-staple")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := mocks.NewMockUserRepositoryInterface(ctrl)
		service := NewAuthService(userRepo, "test-key", 12)

		userRepo.EXPECT().GetByEmail("ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

		_, err := service.Login("ghost@example.com", "anything")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("inactive account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := mocks.NewMockUserRepositoryInterface(ctrl)
		service := NewAuthService(userRepo, "test-key", 12)

		user := newTestUser("correct-horse")
		user.IsActive = false
		userRepo.EXPECT().GetByEmail(user.Email).Return(user, nil)

		_, err := service.Login(user.Email, "correct-horse")
		assert.ErrorIs(t, err, apperrors.ErrUserInactive)
	})
}

func TestCurrentUserReflectsDatabaseState(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepositoryInterface(ctrl)
	service := NewAuthService(userRepo, "test-key", 12)

	user := newTestUser("pw")
	token, _, err := service.GenerateJWT(user)
	require.NoError(t, err)
	claims, err := service.ValidateJWT(token)
	require.NoError(t, err)

	// Role changed after the token was issued; the fresh database state wins
	promoted := *user
	promoted.Role = models.RoleDirector
	userRepo.EXPECT().GetWithTeam(user.ID).Return(&promoted, nil)

	current, err := service.CurrentUser(claims)
	require.NoError(t, err)
	assert.Equal(t, models.RoleDirector, current.Role)
}
