package models

import (
	"math"
	"time"

	"go-armada/internal/catalog/models"
)

// Collection name
const UserProfilesCollection = "user_profiles"

// DefaultStartingPoints is granted to every freshly created profile
const DefaultStartingPoints int64 = 5000

// MaxUsageBeforeMaintenance grounds a ship once its usage count reaches it
const MaxUsageBeforeMaintenance = 5

// ExperienceToNextLevel returns the experience threshold for leaving the
// given level. The profile invariant is experience < this value.
func ExperienceToNextLevel(playerLevel int) int64 {
	return int64(playerLevel) * 1000
}

// ShipInstance is an owned copy of a catalog archetype plus mutable play
// state. Identity is the instance ID; a profile may own several instances
// of the same archetype.
type ShipInstance struct {
	InstanceID          string        `bson:"instance_id" json:"instance_id"`
	ArchetypeID         string        `bson:"archetype_id" json:"archetype_id"`
	Name                string        `bson:"name" json:"name"`
	Rarity              models.Rarity `bson:"rarity" json:"rarity"`
	Cost                int64         `bson:"cost" json:"cost"`
	MaintenanceBaseCost int64         `bson:"maintenance_base_cost" json:"maintenance_base_cost"`
	UsageCount          int           `bson:"usage_count" json:"usage_count"`
	MissionsCompleted   int64         `bson:"missions_completed" json:"missions_completed"`
	TotalRewards        int64         `bson:"total_rewards" json:"total_rewards"`
	AcquiredAt          time.Time     `bson:"acquired_at" json:"acquired_at"`
}

// Grounded reports whether the ship needs maintenance before it can fly
func (s ShipInstance) Grounded() bool {
	return s.UsageCount >= MaxUsageBeforeMaintenance
}

// MaintenanceCost returns the points price of one maintenance cycle for
// this instance, rounded to the nearest whole point.
func (s ShipInstance) MaintenanceCost() int64 {
	return int64(math.Round(float64(s.MaintenanceBaseCost) * s.Rarity.MaintenanceMultiplier()))
}

// UserProfile is the single remote-backed game record per identity
type UserProfile struct {
	UserID            string         `bson:"user_id" json:"user_id"`
	Points            int64          `bson:"points" json:"points"`
	Artifacts         int64          `bson:"artifacts" json:"artifacts"`
	PlayerLevel       int            `bson:"player_level" json:"player_level"`
	Experience        int64          `bson:"experience" json:"experience"`
	MissionsCompleted int64          `bson:"missions_completed" json:"missions_completed"`
	OwnedShips        []ShipInstance `bson:"owned_ships" json:"owned_ships"`
	CreatedAt         time.Time      `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time      `bson:"updated_at" json:"updated_at"`
}

// Ship finds an owned ship instance by its instance ID. The returned pointer
// aliases the profile's slice so callers can mutate the instance in place
// before assembling a save.
func (p *UserProfile) Ship(instanceID string) (*ShipInstance, bool) {
	for i := range p.OwnedShips {
		if p.OwnedShips[i].InstanceID == instanceID {
			return &p.OwnedShips[i], true
		}
	}
	return nil, false
}
