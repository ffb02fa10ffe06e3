package routes

import (
	"context"
	"errors"

	"go-armada/internal/missions/dto"
	"go-armada/internal/missions/models"
	"go-armada/internal/missions/services"
	profileservices "go-armada/internal/profiles/services"
	"go-armada/pkg/middleware"

	"github.com/danielgtaylor/huma/v2"
)

// Routes registers the mission endpoints
type Routes struct {
	runner  *services.Runner
	service *services.Service
	auth    *middleware.HumaAuthMiddleware
}

// NewRoutes creates a missions routes module
func NewRoutes(runner *services.Runner, service *services.Service, auth *middleware.HumaAuthMiddleware) *Routes {
	return &Routes{
		runner:  runner,
		service: service,
		auth:    auth,
	}
}

// RegisterUnifiedRoutes registers mission routes on the shared Huma API
func (r *Routes) RegisterUnifiedRoutes(api huma.API, basePath string) {
	huma.Post(api, basePath+"/start", r.startHandler)
	huma.Get(api, basePath+"/active", r.activeHandler)
	huma.Get(api, basePath+"/history", r.historyHandler)
	huma.Get(api, basePath+"/leaderboard", r.leaderboardHandler)
}

func (r *Routes) startHandler(ctx context.Context, input *dto.StartMissionInput) (*dto.StartMissionOutput, error) {
	user, err := r.auth.ValidateAuthFromHeaders(input.Authorization, input.Cookie)
	if err != nil {
		return nil, err
	}

	mission, err := r.runner.Start(ctx, user.UserID, input.Body.MissionID, input.Body.ShipInstanceID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissionAlreadyRunning):
			return nil, huma.Error409Conflict("A mission is already running")
		case errors.Is(err, services.ErrUnknownMission):
			return nil, huma.Error404NotFound("Mission not found")
		case errors.Is(err, services.ErrNoShipSelected):
			return nil, huma.Error400BadRequest("Select a ship you own")
		case errors.Is(err, services.ErrShipGrounded):
			return nil, huma.Error409Conflict("Ship needs maintenance before its next flight")
		case errors.Is(err, services.ErrInsufficientLevel):
			return nil, huma.Error403Forbidden("Player level too low for this mission")
		case errors.Is(err, profileservices.ErrStoreUnavailable):
			return nil, huma.Error503ServiceUnavailable("Profile store is unavailable, please try again")
		default:
			return nil, huma.Error500InternalServerError("Failed to start mission", err)
		}
	}

	return &dto.StartMissionOutput{Body: *mission}, nil
}

func (r *Routes) activeHandler(ctx context.Context, input *dto.GetActiveMissionInput) (*dto.ActiveMissionOutput, error) {
	user, err := r.auth.ValidateAuthFromHeaders(input.Authorization, input.Cookie)
	if err != nil {
		return nil, err
	}

	active, result, err := r.runner.Active(user.UserID)
	if err != nil {
		if errors.Is(err, services.ErrNoActiveMission) {
			return nil, huma.Error404NotFound("No active mission")
		}
		return nil, huma.Error500InternalServerError("Failed to read mission state", err)
	}

	return &dto.ActiveMissionOutput{Body: dto.ActiveMissionResponse{
		Active: active,
		Result: result,
	}}, nil
}

func (r *Routes) historyHandler(ctx context.Context, input *dto.GetHistoryInput) (*dto.HistoryOutput, error) {
	user, err := r.auth.ValidateAuthFromHeaders(input.Authorization, input.Cookie)
	if err != nil {
		return nil, err
	}

	records, total, err := r.service.History(ctx, user.UserID, input.Page, input.PageSize)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to load mission history", err)
	}
	if records == nil {
		records = []models.CompletionRecord{}
	}

	return &dto.HistoryOutput{Body: dto.HistoryResponse{
		Records:  records,
		Total:    total,
		Page:     input.Page,
		PageSize: input.PageSize,
	}}, nil
}

func (r *Routes) leaderboardHandler(ctx context.Context, input *dto.GetLeaderboardInput) (*dto.LeaderboardOutput, error) {
	if _, err := r.auth.ValidateAuthFromHeaders(input.Authorization, input.Cookie); err != nil {
		return nil, err
	}

	entries, err := r.service.Leaderboard(ctx)
	if err != nil {
		if errors.Is(err, profileservices.ErrStoreUnavailable) {
			return nil, huma.Error503ServiceUnavailable("Profile store is unavailable, please try again")
		}
		return nil, huma.Error500InternalServerError("Failed to load leaderboard", err)
	}

	return &dto.LeaderboardOutput{Body: dto.LeaderboardResponse{Entries: entries}}, nil
}
