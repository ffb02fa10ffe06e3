package dto

// StartMissionInput launches a catalog mission with an owned ship
type StartMissionInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing the session token"`
	Body          struct {
		MissionID      int    `json:"mission_id" minimum:"1" required:"true" description:"Catalog mission ID"`
		ShipInstanceID string `json:"ship_instance_id" minLength:"1" required:"true" description:"Owned ship instance to fly"`
	}
}

// GetActiveMissionInput carries the credentials for polling mission state
type GetActiveMissionInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing the session token"`
}

// GetHistoryInput pages through the user's completed missions
type GetHistoryInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing the session token"`
	Page          int    `query:"page" default:"1" minimum:"1" description:"Page number"`
	PageSize      int    `query:"page_size" default:"20" minimum:"1" maximum:"100" description:"Records per page"`
}

// GetLeaderboardInput carries the credentials for the leaderboard view
type GetLeaderboardInput struct {
	Authorization string `header:"Authorization" description:"Bearer token for authentication"`
	Cookie        string `header:"Cookie" description:"Cookie header containing the session token"`
}
