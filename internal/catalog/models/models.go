package models

import "math"

// Rarity grades a ship archetype and drives its maintenance pricing
type Rarity string

const (
	RarityCommon   Rarity = "Common"
	RarityUncommon Rarity = "Uncommon"
	RarityRare     Rarity = "Rare"
)

// MaintenanceMultiplier returns the rarity factor applied to the base
// maintenance cost of an archetype.
func (r Rarity) MaintenanceMultiplier() float64 {
	switch r {
	case RarityUncommon:
		return 1.5
	case RarityRare:
		return 2
	default:
		return 1
	}
}

// ShipArchetype is a catalog-defined ship template. Archetypes are immutable
// and seeded at build time; purchased copies live on the user profile.
type ShipArchetype struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Description         string   `json:"description"`
	Abilities           []string `json:"abilities"`
	Cost                int64    `json:"cost"`
	MaintenanceBaseCost int64    `json:"maintenance_base_cost"`
	Production          int      `json:"production"`
	ROI                 int      `json:"roi"`
	Rarity              Rarity   `json:"rarity"`
	ImageURL            string   `json:"image_url"`
}

// MaintenanceCost returns the points price of one maintenance cycle,
// rounded to the nearest whole point.
func (a ShipArchetype) MaintenanceCost() int64 {
	return int64(math.Round(float64(a.MaintenanceBaseCost) * a.Rarity.MaintenanceMultiplier()))
}

// MissionDefinition describes one catalog mission
type MissionDefinition struct {
	ID                 int     `json:"id"`
	Name               string  `json:"name"`
	DurationSeconds    int     `json:"duration_seconds"`
	PointReward        int64   `json:"point_reward"`
	ArtifactDropChance float64 `json:"artifact_drop_chance"`
	ExperienceReward   int64   `json:"experience_reward"`
	RequiredLevel      int     `json:"required_level"`
}

// StarterShips is the purchasable ship catalog
var StarterShips = []ShipArchetype{
	{
		ID:                  "starter-ship1",
		Name:                "Explorer I",
		Description:         "A reliable starter ship for new space adventurers.",
		Abilities:           []string{"Basic Scanning", "Short-range Travel"},
		Cost:                1000,
		MaintenanceBaseCost: 50,
		Production:          100,
		ROI:                 10,
		Rarity:              RarityCommon,
		ImageURL:            "/images/ships/explorer-i.png",
	},
	{
		ID:                  "starter-ship2",
		Name:                "Miner X",
		Description:         "Specialized for resource gathering in asteroid fields.",
		Abilities:           []string{"Advanced Scanning", "Resource Extraction"},
		Cost:                2000,
		MaintenanceBaseCost: 100,
		Production:          250,
		ROI:                 15,
		Rarity:              RarityUncommon,
		ImageURL:            "/images/ships/miner-x.png",
	},
	{
		ID:                  "starter-ship3",
		Name:                "Voyager Elite",
		Description:         "Long-range ship capable of deep space exploration.",
		Abilities:           []string{"Long-range Travel", "Advanced Life Support"},
		Cost:                3000,
		MaintenanceBaseCost: 150,
		Production:          300,
		ROI:                 20,
		Rarity:              RarityRare,
		ImageURL:            "/images/ships/voyager-elite.png",
	},
}

// StandardMissions is the mission catalog. Duration is wall-clock seconds;
// the runner advances progress by 100/duration per one-second tick.
var StandardMissions = []MissionDefinition{
	{ID: 1, Name: "Lunar Survey", DurationSeconds: 10, PointReward: 100, ArtifactDropChance: 0.2, ExperienceReward: 50, RequiredLevel: 1},
	{ID: 2, Name: "Asteroid Mining Run", DurationSeconds: 20, PointReward: 200, ArtifactDropChance: 0.3, ExperienceReward: 100, RequiredLevel: 2},
	{ID: 3, Name: "Deep Space Rescue", DurationSeconds: 30, PointReward: 300, ArtifactDropChance: 0.4, ExperienceReward: 150, RequiredLevel: 3},
}
