package services

import (
	"go-armada/internal/catalog/models"
)

// Service provides lookups over the static ship and mission catalogs
type Service struct {
	ships    map[string]models.ShipArchetype
	missions map[int]models.MissionDefinition
}

// NewService creates a catalog service seeded with the built-in catalogs
func NewService() *Service {
	s := &Service{
		ships:    make(map[string]models.ShipArchetype, len(models.StarterShips)),
		missions: make(map[int]models.MissionDefinition, len(models.StandardMissions)),
	}
	for _, ship := range models.StarterShips {
		s.ships[ship.ID] = ship
	}
	for _, mission := range models.StandardMissions {
		s.missions[mission.ID] = mission
	}
	return s
}

// Ships returns all purchasable ship archetypes in catalog order
func (s *Service) Ships() []models.ShipArchetype {
	return models.StarterShips
}

// Missions returns all mission definitions in catalog order
func (s *Service) Missions() []models.MissionDefinition {
	return models.StandardMissions
}

// ShipByID looks up a ship archetype
func (s *Service) ShipByID(id string) (models.ShipArchetype, bool) {
	ship, ok := s.ships[id]
	return ship, ok
}

// MissionByID looks up a mission definition
func (s *Service) MissionByID(id int) (models.MissionDefinition, bool) {
	mission, ok := s.missions[id]
	return mission, ok
}
