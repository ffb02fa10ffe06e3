package services

import (
	"testing"

	"go-armada/internal/catalog/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogShips(t *testing.T) {
	service := NewService()

	ships := service.Ships()
	require.Len(t, ships, 3)

	ship, ok := service.ShipByID("starter-ship2")
	require.True(t, ok)
	assert.Equal(t, "Miner X", ship.Name)
	assert.Equal(t, models.RarityUncommon, ship.Rarity)
	assert.Equal(t, int64(2000), ship.Cost)

	_, ok = service.ShipByID("no-such-ship")
	assert.False(t, ok)
}

func TestCatalogMissions(t *testing.T) {
	service := NewService()

	missions := service.Missions()
	require.Len(t, missions, 3)

	mission, ok := service.MissionByID(3)
	require.True(t, ok)
	assert.Equal(t, "Deep Space Rescue", mission.Name)
	assert.Equal(t, 30, mission.DurationSeconds)
	assert.Equal(t, 3, mission.RequiredLevel)

	_, ok = service.MissionByID(42)
	assert.False(t, ok)
}

func TestMaintenanceCostScalesWithRarity(t *testing.T) {
	tests := []struct {
		rarity   models.Rarity
		baseCost int64
		want     int64
	}{
		{models.RarityCommon, 50, 50},
		{models.RarityUncommon, 100, 150},
		{models.RarityRare, 150, 300},
		{models.RarityUncommon, 75, 113}, // 112.5 rounds up
	}

	for _, tt := range tests {
		archetype := models.ShipArchetype{Rarity: tt.rarity, MaintenanceBaseCost: tt.baseCost}
		assert.Equal(t, tt.want, archetype.MaintenanceCost(), "rarity %s base %d", tt.rarity, tt.baseCost)
	}
}
