package middleware

import (
	"strings"

	"go-armada/internal/auth/models"
	"go-armada/pkg/config"

	"github.com/danielgtaylor/huma/v2"
)

// JWTValidator interface for session token validation
type JWTValidator interface {
	ValidateJWT(token string) (*models.AuthenticatedUser, error)
}

// HumaAuthMiddleware provides authentication utilities for Huma operations.
// Tokens are accepted from the Authorization header (Bearer) or the session
// cookie, in that order.
type HumaAuthMiddleware struct {
	jwtValidator JWTValidator
}

// NewHumaAuthMiddleware creates a new Huma authentication middleware
func NewHumaAuthMiddleware(validator JWTValidator) *HumaAuthMiddleware {
	return &HumaAuthMiddleware{
		jwtValidator: validator,
	}
}

// ValidateAuthFromHeaders validates authentication from request headers
func (m *HumaAuthMiddleware) ValidateAuthFromHeaders(authHeader, cookieHeader string) (*models.AuthenticatedUser, error) {
	token := m.ExtractTokenFromHeaders(authHeader)

	if token == "" && cookieHeader != "" {
		token = m.ExtractTokenFromCookie(cookieHeader)
	}

	if token == "" {
		return nil, huma.Error401Unauthorized("Authentication required")
	}

	user, err := m.jwtValidator.ValidateJWT(token)
	if err != nil {
		return nil, huma.Error401Unauthorized("Invalid authentication token", err)
	}

	return user, nil
}

// ExtractTokenFromHeaders extracts a bearer token from the Authorization header
func (m *HumaAuthMiddleware) ExtractTokenFromHeaders(authHeader string) string {
	if strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[7:]
	}
	return ""
}

// ExtractTokenFromCookie extracts the session token from a Cookie header
func (m *HumaAuthMiddleware) ExtractTokenFromCookie(cookieHeader string) string {
	prefix := config.GetCookieName() + "="
	for _, cookie := range strings.Split(cookieHeader, ";") {
		cookie = strings.TrimSpace(cookie)
		if strings.HasPrefix(cookie, prefix) {
			return strings.TrimPrefix(cookie, prefix)
		}
	}
	return ""
}
