package missions

import (
	"context"
	"log/slog"

	"go-armada/internal/missions/routes"
	"go-armada/internal/missions/services"
	"go-armada/pkg/config"
	"go-armada/pkg/database"
	"go-armada/pkg/middleware"
	"go-armada/pkg/module"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
	"github.com/robfig/cron/v3"
)

// ProfileService is the slice of the profiles module this module consumes
type ProfileService interface {
	services.ProfileStore
	services.ProfileRanker
}

// Module owns the mission lifecycle: the tick runner, the completion log,
// and the leaderboard snapshot job.
type Module struct {
	*module.BaseModule
	runner  *services.Runner
	service *services.Service
	routes  *routes.Routes
	cron    *cron.Cron
}

// New creates the missions module wired to the profile store and catalog
func New(mongodb *database.MongoDB, redis *database.Redis, profiles ProfileService, catalog services.MissionCatalog, validator middleware.JWTValidator) *Module {
	service := services.NewService(mongodb, redis, profiles)
	runner := services.NewRunner(profiles, catalog, service.Repository(), config.GetMissionTickInterval())
	auth := middleware.NewHumaAuthMiddleware(validator)

	return &Module{
		BaseModule: module.NewBaseModule("missions", mongodb, redis),
		runner:     runner,
		service:    service,
		routes:     routes.NewRoutes(runner, service, auth),
		cron:       cron.New(),
	}
}

// GetRunner exposes the mission runner for tests and dependent modules
func (m *Module) GetRunner() *services.Runner {
	return m.runner
}

// Routes registers chi-level routes (health only, API routes are Huma)
func (m *Module) Routes(r chi.Router) {
	m.RegisterHealthRoute(r)
}

// RegisterUnifiedRoutes registers the mission endpoints on the shared API
func (m *Module) RegisterUnifiedRoutes(api huma.API, basePath string) {
	m.routes.RegisterUnifiedRoutes(api, basePath)
}

// StartBackgroundTasks launches the mission tick loop and the hourly
// leaderboard snapshot.
func (m *Module) StartBackgroundTasks(ctx context.Context) {
	slog.Info("Starting background tasks", "module", m.Name())

	runnerCtx, cancel := context.WithCancel(ctx)
	go m.runner.Run(runnerCtx)

	if _, err := m.cron.AddFunc("@hourly", func() {
		if _, err := m.service.RefreshLeaderboard(context.Background()); err != nil {
			slog.Warn("Leaderboard refresh failed", "error", err)
		}
	}); err != nil {
		slog.Error("Failed to schedule leaderboard refresh", "error", err)
	}
	m.cron.Start()

	// Warm the snapshot so the first leaderboard read is served from cache
	if _, err := m.service.RefreshLeaderboard(ctx); err != nil {
		slog.Warn("Initial leaderboard refresh failed", "error", err)
	}

	select {
	case <-ctx.Done():
	case <-m.StopChannel():
	}
	cancel()
	<-m.cron.Stop().Done()
	slog.Info("Background tasks stopped", "module", m.Name())
}
