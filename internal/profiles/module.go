package profiles

import (
	"go-armada/internal/profiles/routes"
	"go-armada/internal/profiles/services"
	"go-armada/pkg/database"
	"go-armada/pkg/middleware"
	"go-armada/pkg/module"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
)

// Module owns user profile persistence and the profile read endpoints
type Module struct {
	*module.BaseModule
	service *services.Service
	routes  *routes.Routes
}

// New creates the profiles module. The auth middleware is attached later
// with SetAuth because the auth module itself depends on this module's
// service for profile bootstrapping.
func New(mongodb *database.MongoDB, redis *database.Redis) *Module {
	service := services.NewService(mongodb, redis)

	return &Module{
		BaseModule: module.NewBaseModule("profiles", mongodb, redis),
		service:    service,
	}
}

// SetAuth wires the JWT validator once the auth module exists
func (m *Module) SetAuth(validator middleware.JWTValidator) {
	auth := middleware.NewHumaAuthMiddleware(validator)
	m.routes = routes.NewRoutes(m.service, auth)
}

// GetService exposes the profile service for dependent modules
func (m *Module) GetService() *services.Service {
	return m.service
}

// Routes registers chi-level routes (health only, API routes are Huma)
func (m *Module) Routes(r chi.Router) {
	m.RegisterHealthRoute(r)
}

// RegisterUnifiedRoutes registers the profile endpoints on the shared API
func (m *Module) RegisterUnifiedRoutes(api huma.API, basePath string) {
	m.routes.RegisterUnifiedRoutes(api, basePath)
}
