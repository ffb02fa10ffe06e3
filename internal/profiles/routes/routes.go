package routes

import (
	"context"
	"errors"

	"go-armada/internal/profiles/dto"
	"go-armada/internal/profiles/models"
	"go-armada/internal/profiles/services"
	"go-armada/pkg/middleware"

	"github.com/danielgtaylor/huma/v2"
)

// Routes registers the profile endpoints
type Routes struct {
	service *services.Service
	auth    *middleware.HumaAuthMiddleware
}

// NewRoutes creates a profiles routes module
func NewRoutes(service *services.Service, auth *middleware.HumaAuthMiddleware) *Routes {
	return &Routes{
		service: service,
		auth:    auth,
	}
}

// RegisterUnifiedRoutes registers profile routes on the shared Huma API
func (r *Routes) RegisterUnifiedRoutes(api huma.API, basePath string) {
	huma.Get(api, basePath+"/me", r.getProfileHandler)
	huma.Get(api, basePath+"/me/stats", r.getStatsHandler)
}

func (r *Routes) getProfileHandler(ctx context.Context, input *dto.GetProfileInput) (*dto.ProfileOutput, error) {
	user, err := r.auth.ValidateAuthFromHeaders(input.Authorization, input.Cookie)
	if err != nil {
		return nil, err
	}

	profile, err := r.service.Get(ctx, user.UserID)
	if err != nil {
		if errors.Is(err, services.ErrStoreUnavailable) {
			return nil, huma.Error503ServiceUnavailable("Profile store is unavailable, please try again")
		}
		return nil, huma.Error500InternalServerError("Failed to load profile", err)
	}

	return &dto.ProfileOutput{Body: *profile}, nil
}

func (r *Routes) getStatsHandler(ctx context.Context, input *dto.GetProfileStatsInput) (*dto.ProfileStatsOutput, error) {
	user, err := r.auth.ValidateAuthFromHeaders(input.Authorization, input.Cookie)
	if err != nil {
		return nil, err
	}

	profile, err := r.service.Get(ctx, user.UserID)
	if err != nil {
		if errors.Is(err, services.ErrStoreUnavailable) {
			return nil, huma.Error503ServiceUnavailable("Profile store is unavailable, please try again")
		}
		return nil, huma.Error500InternalServerError("Failed to load profile", err)
	}

	return &dto.ProfileStatsOutput{Body: buildStats(profile)}, nil
}

func buildStats(profile *models.UserProfile) dto.ProfileStatsResponse {
	threshold := models.ExperienceToNextLevel(profile.PlayerLevel)

	ships := make([]dto.ShipPerformance, len(profile.OwnedShips))
	for i, ship := range profile.OwnedShips {
		ships[i] = dto.ShipPerformance{
			InstanceID:      ship.InstanceID,
			Name:            ship.Name,
			UsageCount:      ship.UsageCount,
			Grounded:        ship.Grounded(),
			MissionsFlown:   ship.MissionsCompleted,
			TotalRewards:    ship.TotalRewards,
			PerformancePct:  shipPerformance(ship),
			MaintenanceCost: ship.MaintenanceCost(),
		}
	}

	return dto.ProfileStatsResponse{
		PlayerLevel:           profile.PlayerLevel,
		Experience:            profile.Experience,
		ExperienceToNextLevel: threshold,
		LevelProgressPct:      float64(profile.Experience) / float64(threshold) * 100,
		Points:                profile.Points,
		Artifacts:             profile.Artifacts,
		MissionsCompleted:     profile.MissionsCompleted,
		FleetSize:             len(profile.OwnedShips),
		Ships:                 ships,
	}
}

// shipPerformance is total income over total spend, as a percentage
func shipPerformance(ship models.ShipInstance) float64 {
	if ship.TotalRewards == 0 {
		return 0
	}
	totalCost := ship.Cost + ship.MaintenanceCost()*ship.MissionsCompleted
	if totalCost == 0 {
		return 0
	}
	return float64(ship.TotalRewards) / float64(totalCost) * 100
}
