package dto

import "go-armada/internal/profiles/models"

// FleetShip is an owned ship with its derived maintenance state
type FleetShip struct {
	models.ShipInstance
	Grounded        bool  `json:"grounded"`
	MaintenanceCost int64 `json:"maintenance_cost" description:"Points required for the next maintenance cycle"`
}

// FleetResponse lists the user's owned ships
type FleetResponse struct {
	Ships     []FleetShip `json:"ships"`
	FleetSize int         `json:"fleet_size"`
}

// FleetOutput wraps a fleet listing
type FleetOutput struct {
	Body FleetResponse
}

// PurchaseResponse reports a completed purchase
type PurchaseResponse struct {
	Ship   models.ShipInstance `json:"ship"`
	Points int64               `json:"points" description:"Point balance after the purchase"`
}

// PurchaseOutput wraps a purchase response
type PurchaseOutput struct {
	Body PurchaseResponse
}

// MaintainResponse reports a completed maintenance cycle
type MaintainResponse struct {
	Ship   models.ShipInstance `json:"ship"`
	Points int64               `json:"points" description:"Point balance after maintenance"`
}

// MaintainOutput wraps a maintenance response
type MaintainOutput struct {
	Body MaintainResponse
}
