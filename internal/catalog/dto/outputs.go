package dto

import "go-armada/internal/catalog/models"

// ListShipsOutput is the response for the ship catalog
type ListShipsOutput struct {
	Body struct {
		Ships []models.ShipArchetype `json:"ships" description:"Purchasable ship archetypes"`
	}
}

// ListMissionsOutput is the response for the mission catalog
type ListMissionsOutput struct {
	Body struct {
		Missions []models.MissionDefinition `json:"missions" description:"Available mission definitions"`
	}
}
