package models

import (
	"testing"

	catalogmodels "go-armada/internal/catalog/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExperienceToNextLevel(t *testing.T) {
	assert.Equal(t, int64(1000), ExperienceToNextLevel(1))
	assert.Equal(t, int64(2000), ExperienceToNextLevel(2))
	assert.Equal(t, int64(10000), ExperienceToNextLevel(10))
}

func TestShipGrounded(t *testing.T) {
	ship := ShipInstance{}
	for usage := 0; usage < MaxUsageBeforeMaintenance; usage++ {
		ship.UsageCount = usage
		assert.False(t, ship.Grounded(), "usage %d", usage)
	}

	ship.UsageCount = MaxUsageBeforeMaintenance
	assert.True(t, ship.Grounded())
}

func TestShipMaintenanceCost(t *testing.T) {
	ship := ShipInstance{Rarity: catalogmodels.RarityRare, MaintenanceBaseCost: 150}
	assert.Equal(t, int64(300), ship.MaintenanceCost())

	ship = ShipInstance{Rarity: catalogmodels.RarityUncommon, MaintenanceBaseCost: 75}
	// 112.5 rounds to the nearest whole point
	assert.Equal(t, int64(113), ship.MaintenanceCost())
}

func TestProfileShipLookup(t *testing.T) {
	profile := &UserProfile{
		OwnedShips: []ShipInstance{
			{InstanceID: "a"},
			{InstanceID: "b"},
		},
	}

	ship, ok := profile.Ship("b")
	require.True(t, ok)

	// The pointer aliases the slice so in-place mutation sticks
	ship.UsageCount = 4
	assert.Equal(t, 4, profile.OwnedShips[1].UsageCount)

	_, ok = profile.Ship("c")
	assert.False(t, ok)
}
