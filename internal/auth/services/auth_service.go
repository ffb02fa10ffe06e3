package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go-armada/internal/auth/models"
	"go-armada/pkg/config"
	"go-armada/pkg/database"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrEmailInUse is returned when registering with an already taken email
	ErrEmailInUse = errors.New("email already in use")

	// ErrInvalidCredentials covers both unknown email and wrong password so
	// the login surface does not leak which one failed
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ProfileInitializer ensures the game profile exists for an identity.
// Implemented by the profiles module.
type ProfileInitializer interface {
	EnsureProfile(ctx context.Context, userID string) error
}

// AuthService provides email/password authentication and session tokens
type AuthService struct {
	repository *Repository
	profiles   ProfileInitializer
	jwtSecret  []byte
}

// NewAuthService creates a new auth service instance
func NewAuthService(mongodb *database.MongoDB, profiles ProfileInitializer) *AuthService {
	return &AuthService{
		repository: NewRepository(mongodb.Database),
		profiles:   profiles,
		jwtSecret:  config.GetJWTSecret(),
	}
}

// Repository exposes the underlying repository for migrations and tests
func (s *AuthService) Repository() *Repository {
	return s.repository
}

// Register creates credentials for a new identity, ensures its game profile
// exists and issues a session token.
func (s *AuthService) Register(ctx context.Context, email, password string) (*models.User, string, time.Time, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", time.Time{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		UserID:       uuid.New().String(),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: string(hash),
	}

	if err := s.repository.CreateUser(ctx, user); err != nil {
		return nil, "", time.Time{}, err
	}

	if err := s.profiles.EnsureProfile(ctx, user.UserID); err != nil {
		// The profile is created lazily on the next load; the account itself
		// is already usable.
		slog.Warn("Failed to create profile at registration", "user_id", user.UserID, "error", err)
	}

	token, expiresAt, err := s.GenerateJWT(user)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	slog.Info("User registered", "user_id", user.UserID)
	return user, token, expiresAt, nil
}

// Login verifies credentials, ensures the game profile exists and issues a
// session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, time.Time, error) {
	user, err := s.repository.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, "", time.Time{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	if err := s.repository.UpdateLastLogin(ctx, user.UserID); err != nil {
		slog.Warn("Failed to update last login", "user_id", user.UserID, "error", err)
	}

	if err := s.profiles.EnsureProfile(ctx, user.UserID); err != nil {
		slog.Warn("Failed to ensure profile at login", "user_id", user.UserID, "error", err)
	}

	token, expiresAt, err := s.GenerateJWT(user)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	return user, token, expiresAt, nil
}

// GenerateJWT creates a session token for the authenticated identity
func (s *AuthService) GenerateJWT(user *models.User) (string, time.Time, error) {
	expiresAt := time.Now().Add(config.GetCookieDuration())

	claims := jwt.MapClaims{
		"user_id": user.UserID,
		"email":   user.Email,
		"exp":     expiresAt.Unix(),
		"iat":     time.Now().Unix(),
		"iss":     "go-armada",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign JWT: %w", err)
	}

	return tokenString, expiresAt, nil
}

// ValidateJWT validates a session token and returns the identity it carries
func (s *AuthService) ValidateJWT(tokenString string) (*models.AuthenticatedUser, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse JWT: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("invalid JWT token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid JWT claims")
	}

	userID, _ := claims["user_id"].(string)
	email, _ := claims["email"].(string)
	if userID == "" {
		return nil, errors.New("JWT missing user identity")
	}

	return &models.AuthenticatedUser{
		UserID: userID,
		Email:  email,
	}, nil
}
