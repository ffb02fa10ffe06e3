package fleet

import (
	"go-armada/internal/fleet/routes"
	"go-armada/internal/fleet/services"
	"go-armada/pkg/database"
	"go-armada/pkg/middleware"
	"go-armada/pkg/module"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
)

// Module owns ship purchase and maintenance
type Module struct {
	*module.BaseModule
	service *services.Service
	routes  *routes.Routes
}

// New creates the fleet module wired to the profile store and ship catalog
func New(mongodb *database.MongoDB, redis *database.Redis, profiles services.ProfileStore, catalog services.ShipCatalog, validator middleware.JWTValidator) *Module {
	service := services.NewService(profiles, catalog)
	auth := middleware.NewHumaAuthMiddleware(validator)

	return &Module{
		BaseModule: module.NewBaseModule("fleet", mongodb, redis),
		service:    service,
		routes:     routes.NewRoutes(service, auth),
	}
}

// GetService exposes the fleet service for dependent modules
func (m *Module) GetService() *services.Service {
	return m.service
}

// Routes registers chi-level routes (health only, API routes are Huma)
func (m *Module) Routes(r chi.Router) {
	m.RegisterHealthRoute(r)
}

// RegisterUnifiedRoutes registers the fleet endpoints on the shared API
func (m *Module) RegisterUnifiedRoutes(api huma.API, basePath string) {
	m.routes.RegisterUnifiedRoutes(api, basePath)
}
