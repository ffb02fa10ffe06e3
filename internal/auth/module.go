package auth

import (
	"log/slog"

	"go-armada/internal/auth/routes"
	"go-armada/internal/auth/services"
	"go-armada/pkg/database"
	"go-armada/pkg/middleware"
	"go-armada/pkg/module"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
)

// Module provides email/password authentication and session validation
type Module struct {
	*module.BaseModule
	service *services.AuthService
	routes  *routes.Routes
}

// New creates a new auth module. The profiles dependency is used to create
// the game profile on first authentication.
func New(mongodb *database.MongoDB, redis *database.Redis, profiles services.ProfileInitializer) *Module {
	service := services.NewAuthService(mongodb, profiles)
	authMiddleware := middleware.NewHumaAuthMiddleware(service)

	return &Module{
		BaseModule: module.NewBaseModule("auth", mongodb, redis),
		service:    service,
		routes:     routes.NewRoutes(service, authMiddleware),
	}
}

// Routes implements module.Module; auth only uses the unified API
func (m *Module) Routes(r chi.Router) {
	m.RegisterHealthRoute(r)
}

// RegisterUnifiedRoutes registers auth routes on the shared Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API, basePath string) {
	slog.Info("Registering auth routes", "base_path", basePath)
	m.routes.RegisterUnifiedRoutes(api, basePath)
}

// GetAuthService returns the auth service for use by other modules
func (m *Module) GetAuthService() *services.AuthService {
	return m.service
}
