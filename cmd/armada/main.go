package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"go-armada/internal/auth"
	"go-armada/internal/catalog"
	"go-armada/internal/fleet"
	"go-armada/internal/missions"
	"go-armada/internal/profiles"
	"go-armada/pkg/app"
	"go-armada/pkg/config"
	"go-armada/pkg/handlers"
	armadaMiddleware "go-armada/pkg/middleware"
	"go-armada/pkg/module"
	"go-armada/pkg/version"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	_ "go.uber.org/automaxprocs"
)

// customLoggerMiddleware logs requests but excludes health check endpoints
func customLoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/health") {
			next.ServeHTTP(w, r)
			return
		}

		middleware.Logger(next).ServeHTTP(w, r)
	})
}

// corsMiddleware allows the game frontend to call the API with credentials
func corsMiddleware(next http.Handler) http.Handler {
	frontendURL := config.GetFrontendURL()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		if origin == frontendURL {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		}

		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Authorization, Content-Type")
		w.Header().Set("Access-Control-Max-Age", "86400")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func main() {
	versionInfo := version.Get()
	log.Printf("go-armada %s | build %s", version.GetVersionString(), versionInfo.BuildDate)
	log.Printf("CPUs: %d | GOMAXPROCS: %d", runtime.NumCPU(), runtime.GOMAXPROCS(0))

	ctx := context.Background()

	appCtx, err := app.InitializeApp("armada")
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer appCtx.Shutdown(ctx)

	r := chi.NewRouter()

	r.Use(customLoggerMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(corsMiddleware)
	r.Use(armadaMiddleware.TracingMiddleware)

	r.Get("/health", healthHandler)

	// Module wiring. Profiles comes first because both auth and the game
	// modules consume its service; the JWT validator is attached once the
	// auth module exists.
	catalogModule := catalog.New()
	profilesModule := profiles.New(appCtx.MongoDB, appCtx.Redis)
	authModule := auth.New(appCtx.MongoDB, appCtx.Redis, profilesModule.GetService())
	profilesModule.SetAuth(authModule.GetAuthService())
	fleetModule := fleet.New(appCtx.MongoDB, appCtx.Redis, profilesModule.GetService(), catalogModule.GetService(), authModule.GetAuthService())
	missionsModule := missions.New(appCtx.MongoDB, appCtx.Redis, profilesModule.GetService(), catalogModule.GetService(), authModule.GetAuthService())

	modules := []module.Module{catalogModule, profilesModule, authModule, fleetModule, missionsModule}

	apiPrefix := config.GetAPIPrefix()

	humaConfig := huma.DefaultConfig("Go Armada API Server", "1.0.0")
	humaConfig.Info.Description = "Spaceship mission game backend"
	if apiPrefix == "" {
		humaConfig.Servers = []*huma.Server{
			{URL: config.GetFrontendURL(), Description: "Production server"},
			{URL: "http://localhost:8080", Description: "Local development"},
		}
	} else {
		humaConfig.Servers = []*huma.Server{
			{URL: config.GetFrontendURL() + apiPrefix, Description: "Production server"},
			{URL: "http://localhost:8080" + apiPrefix, Description: "Local development"},
		}
	}

	var unifiedAPI huma.API
	if apiPrefix == "" {
		unifiedAPI = humachi.New(r, humaConfig)
	} else {
		r.Route(apiPrefix, func(prefixRouter chi.Router) {
			unifiedAPI = humachi.New(prefixRouter, humaConfig)
		})
	}

	authModule.RegisterUnifiedRoutes(unifiedAPI, "/auth")
	catalogModule.RegisterUnifiedRoutes(unifiedAPI, "/catalog")
	profilesModule.RegisterUnifiedRoutes(unifiedAPI, "/profiles")
	fleetModule.RegisterUnifiedRoutes(unifiedAPI, "/fleet")
	missionsModule.RegisterUnifiedRoutes(unifiedAPI, "/missions")

	for _, mod := range modules {
		go mod.StartBackgroundTasks(ctx)
	}

	port := app.GetPort("8080")
	host := config.GetHost()

	var handler http.Handler = r
	if config.GetBoolEnv("ENABLE_TELEMETRY", false) {
		handler = otelhttp.NewHandler(r, "armada")
	}

	srv := &http.Server{
		Addr:         host + ":" + port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("Starting armada server", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Received shutdown signal, initiating graceful shutdown...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	for _, mod := range modules {
		mod.Stop()
	}

	appCtx.Shutdown(shutdownCtx)

	slog.Info("Armada shutdown completed successfully")
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	// Health checks are excluded from logging to reduce noise
	versionInfo := version.Get()
	handlers.JSONResponse(w, map[string]string{
		"status":     "healthy",
		"service":    "armada",
		"version":    versionInfo.Version,
		"git_commit": versionInfo.GitCommit,
		"build_date": versionInfo.BuildDate,
		"go_version": versionInfo.GoVersion,
		"platform":   versionInfo.Platform,
	}, http.StatusOK)
}
