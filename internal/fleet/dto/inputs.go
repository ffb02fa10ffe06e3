package dto

// GetFleetInput carries the credentials for listing owned ships
type GetFleetInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing the session token"`
}

// PurchaseShipInput buys a new instance of a catalog archetype
type PurchaseShipInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing the session token"`
	Body          struct {
		ArchetypeID string `json:"archetype_id" minLength:"1" required:"true" description:"Catalog ship archetype ID"`
	}
}

// MaintainShipInput pays down the wear on an owned ship
type MaintainShipInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing the session token"`
	Body          struct {
		InstanceID string `json:"instance_id" minLength:"1" required:"true" description:"Owned ship instance ID"`
	}
}
