package dto

import "go-armada/internal/profiles/models"

// ProfileOutput wraps the current user profile
type ProfileOutput struct {
	Body models.UserProfile
}

// ShipPerformance summarizes one owned ship's economics
type ShipPerformance struct {
	InstanceID       string  `json:"instance_id"`
	Name             string  `json:"name"`
	UsageCount       int     `json:"usage_count"`
	Grounded         bool    `json:"grounded"`
	MissionsFlown    int64   `json:"missions_flown"`
	TotalRewards     int64   `json:"total_rewards"`
	PerformancePct   float64 `json:"performance_pct" description:"Reward-to-cost ratio as a percentage"`
	MaintenanceCost  int64   `json:"maintenance_cost" description:"Points required for the next maintenance cycle"`
}

// ProfileStatsResponse is the derived-statistics view of a profile
type ProfileStatsResponse struct {
	PlayerLevel           int               `json:"player_level"`
	Experience            int64             `json:"experience"`
	ExperienceToNextLevel int64             `json:"experience_to_next_level"`
	LevelProgressPct      float64           `json:"level_progress_pct"`
	Points                int64             `json:"points"`
	Artifacts             int64             `json:"artifacts"`
	MissionsCompleted     int64             `json:"missions_completed"`
	FleetSize             int               `json:"fleet_size"`
	Ships                 []ShipPerformance `json:"ships"`
}

// ProfileStatsOutput wraps a profile statistics response
type ProfileStatsOutput struct {
	Body ProfileStatsResponse
}
