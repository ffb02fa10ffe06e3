package routes

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-armada/internal/auth/dto"
	"go-armada/internal/auth/services"
	"go-armada/pkg/app"
	"go-armada/pkg/config"
	"go-armada/pkg/middleware"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-playground/validator/v10"
)

// Routes registers the auth endpoints
type Routes struct {
	service  *services.AuthService
	auth     *middleware.HumaAuthMiddleware
	validate *validator.Validate
}

// NewRoutes creates an auth routes module
func NewRoutes(service *services.AuthService, auth *middleware.HumaAuthMiddleware) *Routes {
	validate := validator.New()
	dto.RegisterCustomValidators(validate)

	return &Routes{
		service:  service,
		auth:     auth,
		validate: validate,
	}
}

// RegisterUnifiedRoutes registers auth routes on the shared Huma API
func (r *Routes) RegisterUnifiedRoutes(api huma.API, basePath string) {
	huma.Post(api, basePath+"/register", r.registerHandler)
	huma.Post(api, basePath+"/login", r.loginHandler)
	huma.Get(api, basePath+"/status", r.statusHandler)
	huma.Post(api, basePath+"/logout", r.logoutHandler)
}

func (r *Routes) registerHandler(ctx context.Context, input *dto.RegisterInput) (*dto.SessionOutput, error) {
	if err := dto.ValidateCredentials(r.validate, input.Body.Email, input.Body.Password); err != nil {
		return nil, huma.Error422UnprocessableEntity("Invalid email or password format", err)
	}

	user, token, expiresAt, err := r.service.Register(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailInUse) {
			return nil, huma.Error409Conflict("This email is already in use")
		}
		return nil, huma.Error500InternalServerError("Registration failed", err)
	}

	return sessionOutput(user.UserID, user.Email, token, expiresAt), nil
}

func (r *Routes) loginHandler(ctx context.Context, input *dto.LoginInput) (*dto.SessionOutput, error) {
	user, token, expiresAt, err := r.service.Login(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return nil, huma.Error401Unauthorized("Incorrect email or password")
		}
		return nil, huma.Error500InternalServerError("Login failed", err)
	}

	return sessionOutput(user.UserID, user.Email, token, expiresAt), nil
}

func (r *Routes) statusHandler(ctx context.Context, input *dto.AuthStatusInput) (*dto.AuthStatusOutput, error) {
	out := &dto.AuthStatusOutput{}

	user, err := r.auth.ValidateAuthFromHeaders(input.Authorization, input.Cookie)
	if err != nil {
		out.Body = dto.AuthStatusResponse{Authenticated: false}
		return out, nil
	}

	out.Body = dto.AuthStatusResponse{
		Authenticated: true,
		UserID:        &user.UserID,
		Email:         &user.Email,
	}
	return out, nil
}

func (r *Routes) logoutHandler(ctx context.Context, input *dto.LogoutInput) (*dto.LogoutOutput, error) {
	out := &dto.LogoutOutput{
		SetCookie: fmt.Sprintf("%s=; Path=/; HttpOnly; Max-Age=0", config.GetCookieName()),
	}
	out.Body.Message = "Signed out"
	return out, nil
}

func sessionOutput(userID, email, token string, expiresAt time.Time) *dto.SessionOutput {
	cookie := fmt.Sprintf("%s=%s; Path=/; HttpOnly; SameSite=Lax; Expires=%s",
		config.GetCookieName(), token, expiresAt.UTC().Format(time.RFC1123))
	if app.IsProduction() {
		cookie += "; Secure"
	}

	return &dto.SessionOutput{
		SetCookie: cookie,
		Body: dto.SessionResponse{
			UserID:    userID,
			Email:     email,
			Token:     token,
			ExpiresAt: expiresAt,
		},
	}
}
