package catalog

import (
	"context"
	"log/slog"

	"go-armada/internal/catalog/routes"
	"go-armada/internal/catalog/services"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
)

// Module serves the static ship and mission catalogs
type Module struct {
	service *services.Service
	routes  *routes.Routes
}

// New creates a new catalog module
func New() *Module {
	service := services.NewService()
	return &Module{
		service: service,
		routes:  routes.NewRoutes(service),
	}
}

// Routes implements module.Module; the catalog only uses the unified API
func (m *Module) Routes(r chi.Router) {}

// StartBackgroundTasks implements module.Module; the catalog is static
func (m *Module) StartBackgroundTasks(ctx context.Context) {}

// Stop implements module.Module
func (m *Module) Stop() {}

// Name implements module.Module
func (m *Module) Name() string {
	return "catalog"
}

// RegisterUnifiedRoutes registers catalog routes on the shared Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API, basePath string) {
	slog.Info("Registering catalog routes", "base_path", basePath)
	m.routes.RegisterUnifiedRoutes(api, basePath)
}

// GetService returns the catalog service for use by other modules
func (m *Module) GetService() *services.Service {
	return m.service
}
