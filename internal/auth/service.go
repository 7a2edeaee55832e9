package auth

import (
	"errors"
	"fmt"
	"time"

	"rewards-recognition-backend/internal/database/models"
	apperrors "rewards-recognition-backend/internal/errors"
	"rewards-recognition-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const tokenIssuer = "rewards-recognition-backend"

// AuthService provides password authentication and JWT issuance
type AuthService struct {
	userRepo    repository.UserRepositoryInterface
	jwtSecret   []byte
	expiryHours int
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID uuid.UUID   `json:"user_id"`
	Email  string      `json:"email"`
	Role   models.Role `json:"role"`
	jwt.RegisteredClaims
}

// LoginResponse represents the response for a successful login
type LoginResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	ExpiresIn   int64       `json:"expires_in"`
	UserID      uuid.UUID   `json:"user_id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Role        models.Role `json:"role"`
}

// NewAuthService creates a new authentication service
func NewAuthService(userRepo repository.UserRepositoryInterface, jwtSecret string, expiryHours int) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		jwtSecret:   []byte(jwtSecret),
		expiryHours: expiryHours,
	}
}

// Login verifies credentials and issues a signed token. Inactive and deleted
// accounts are refused.
func (s *AuthService) Login(email, password string) (*LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, apperrors.ErrUserInactive
	}

	token, expiresIn, err := s.GenerateJWT(user)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   expiresIn,
		UserID:      user.ID,
		Name:        user.Name,
		Email:       user.Email,
		Role:        user.Role,
	}, nil
}

// GenerateJWT creates a signed token for a user
func (s *AuthService) GenerateJWT(user *models.User) (string, int64, error) {
	now := time.Now()
	expiry := now.Add(time.Duration(s.expiryHours) * time.Hour)

	claims := &AuthClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiry),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, int64(time.Until(expiry).Seconds()), nil
}

// ValidateJWT parses and verifies a token, returning its claims
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}

// CurrentUser loads the account behind validated claims. The role and active
// flag always come from the database, never from the token, so a role change
// or deactivation takes effect on the next request.
func (s *AuthService) CurrentUser(claims *AuthClaims) (*models.User, error) {
	user, err := s.userRepo.GetWithTeam(claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if !user.IsActive {
		return nil, apperrors.ErrUserInactive
	}
	return user, nil
}
