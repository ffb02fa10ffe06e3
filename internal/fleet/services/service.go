package services

import (
	"context"
	"errors"
	"time"

	catalogmodels "go-armada/internal/catalog/models"
	"go-armada/internal/profiles/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Fleet operation errors
var (
	ErrUnknownArchetype     = errors.New("unknown ship archetype")
	ErrInsufficientFunds    = errors.New("insufficient points")
	ErrShipNotFound         = errors.New("ship instance not found")
	ErrMaintenanceNotNeeded = errors.New("ship does not need maintenance")
)

// ShipCatalog resolves purchasable archetypes
type ShipCatalog interface {
	ShipByID(id string) (catalogmodels.ShipArchetype, bool)
}

// ProfileStore is the slice of the profiles service this module consumes
type ProfileStore interface {
	Get(ctx context.Context, userID string) (*models.UserProfile, error)
	Save(ctx context.Context, userID string, update bson.M) (*models.UserProfile, error)
}

// Service implements fleet purchase and maintenance on top of the profile
// store. All mutations are assembled in memory and committed as a single
// partial update so a store failure leaves the profile untouched.
type Service struct {
	profiles ProfileStore
	catalog  ShipCatalog
	now      func() time.Time
	newID    func() string
}

// NewService creates a new fleet service
func NewService(profiles ProfileStore, catalog ShipCatalog) *Service {
	return &Service{
		profiles: profiles,
		catalog:  catalog,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Fleet returns the user's owned ships
func (s *Service) Fleet(ctx context.Context, userID string) ([]models.ShipInstance, error) {
	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return profile.OwnedShips, nil
}

// Purchase buys a new instance of the given archetype. Duplicate archetypes
// are allowed; each purchase mints a fresh instance with zero wear.
func (s *Service) Purchase(ctx context.Context, userID, archetypeID string) (*models.UserProfile, *models.ShipInstance, error) {
	archetype, ok := s.catalog.ShipByID(archetypeID)
	if !ok {
		return nil, nil, ErrUnknownArchetype
	}

	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	if profile.Points < archetype.Cost {
		return nil, nil, ErrInsufficientFunds
	}

	instance := models.ShipInstance{
		InstanceID:          s.newID(),
		ArchetypeID:         archetype.ID,
		Name:                archetype.Name,
		Rarity:              archetype.Rarity,
		Cost:                archetype.Cost,
		MaintenanceBaseCost: archetype.MaintenanceBaseCost,
		AcquiredAt:          s.now().UTC(),
	}

	owned := append(profile.OwnedShips, instance)

	updated, err := s.profiles.Save(ctx, userID, bson.M{
		"points":      profile.Points - archetype.Cost,
		"owned_ships": owned,
	})
	if err != nil {
		return nil, nil, err
	}

	saved, _ := updated.Ship(instance.InstanceID)
	return updated, saved, nil
}

// Maintain resets a grounded ship's wear in exchange for points. The price
// scales with rarity via the archetype's maintenance multiplier.
func (s *Service) Maintain(ctx context.Context, userID, instanceID string) (*models.UserProfile, error) {
	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	ship, ok := profile.Ship(instanceID)
	if !ok {
		return nil, ErrShipNotFound
	}

	if !ship.Grounded() {
		return nil, ErrMaintenanceNotNeeded
	}

	cost := ship.MaintenanceCost()
	if profile.Points < cost {
		return nil, ErrInsufficientFunds
	}

	ship.UsageCount = 0

	return s.profiles.Save(ctx, userID, bson.M{
		"points":      profile.Points - cost,
		"owned_ships": profile.OwnedShips,
	})
}
