package routes

import (
	"context"
	"errors"

	"go-armada/internal/fleet/dto"
	"go-armada/internal/fleet/services"
	profileservices "go-armada/internal/profiles/services"
	"go-armada/pkg/middleware"

	"github.com/danielgtaylor/huma/v2"
)

// Routes registers the fleet endpoints
type Routes struct {
	service *services.Service
	auth    *middleware.HumaAuthMiddleware
}

// NewRoutes creates a fleet routes module
func NewRoutes(service *services.Service, auth *middleware.HumaAuthMiddleware) *Routes {
	return &Routes{
		service: service,
		auth:    auth,
	}
}

// RegisterUnifiedRoutes registers fleet routes on the shared Huma API
func (r *Routes) RegisterUnifiedRoutes(api huma.API, basePath string) {
	huma.Get(api, basePath, r.getFleetHandler)
	huma.Post(api, basePath+"/purchase", r.purchaseHandler)
	huma.Post(api, basePath+"/maintain", r.maintainHandler)
}

func (r *Routes) getFleetHandler(ctx context.Context, input *dto.GetFleetInput) (*dto.FleetOutput, error) {
	user, err := r.auth.ValidateAuthFromHeaders(input.Authorization, input.Cookie)
	if err != nil {
		return nil, err
	}

	ships, err := r.service.Fleet(ctx, user.UserID)
	if err != nil {
		return nil, mapFleetError(err, "Failed to load fleet")
	}

	fleetShips := make([]dto.FleetShip, len(ships))
	for i, ship := range ships {
		fleetShips[i] = dto.FleetShip{
			ShipInstance:    ship,
			Grounded:        ship.Grounded(),
			MaintenanceCost: ship.MaintenanceCost(),
		}
	}

	return &dto.FleetOutput{Body: dto.FleetResponse{
		Ships:     fleetShips,
		FleetSize: len(fleetShips),
	}}, nil
}

func (r *Routes) purchaseHandler(ctx context.Context, input *dto.PurchaseShipInput) (*dto.PurchaseOutput, error) {
	user, err := r.auth.ValidateAuthFromHeaders(input.Authorization, input.Cookie)
	if err != nil {
		return nil, err
	}

	profile, ship, err := r.service.Purchase(ctx, user.UserID, input.Body.ArchetypeID)
	if err != nil {
		return nil, mapFleetError(err, "Failed to purchase ship")
	}

	return &dto.PurchaseOutput{Body: dto.PurchaseResponse{
		Ship:   *ship,
		Points: profile.Points,
	}}, nil
}

func (r *Routes) maintainHandler(ctx context.Context, input *dto.MaintainShipInput) (*dto.MaintainOutput, error) {
	user, err := r.auth.ValidateAuthFromHeaders(input.Authorization, input.Cookie)
	if err != nil {
		return nil, err
	}

	profile, err := r.service.Maintain(ctx, user.UserID, input.Body.InstanceID)
	if err != nil {
		return nil, mapFleetError(err, "Failed to maintain ship")
	}

	ship, ok := profile.Ship(input.Body.InstanceID)
	if !ok {
		return nil, huma.Error500InternalServerError("Maintained ship missing from profile")
	}

	return &dto.MaintainOutput{Body: dto.MaintainResponse{
		Ship:   *ship,
		Points: profile.Points,
	}}, nil
}

func mapFleetError(err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrUnknownArchetype):
		return huma.Error404NotFound("Ship archetype not found")
	case errors.Is(err, services.ErrShipNotFound):
		return huma.Error404NotFound("Ship instance not found")
	case errors.Is(err, services.ErrInsufficientFunds):
		return huma.Error400BadRequest("Not enough points")
	case errors.Is(err, services.ErrMaintenanceNotNeeded):
		return huma.Error409Conflict("Ship does not need maintenance yet")
	case errors.Is(err, profileservices.ErrStoreUnavailable):
		return huma.Error503ServiceUnavailable("Profile store is unavailable, please try again")
	default:
		return huma.Error500InternalServerError(fallback, err)
	}
}
