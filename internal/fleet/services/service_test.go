package services

import (
	"context"
	"testing"
	"time"

	catalogmodels "go-armada/internal/catalog/models"
	catalogservices "go-armada/internal/catalog/services"
	"go-armada/internal/profiles/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// fakeProfileStore applies partial updates in memory the way the mongo
// repository merges them field by field.
type fakeProfileStore struct {
	profile *models.UserProfile
	getErr  error
	saveErr error
	saves   []bson.M
}

func (f *fakeProfileStore) Get(ctx context.Context, userID string) (*models.UserProfile, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	copied := *f.profile
	copied.OwnedShips = append([]models.ShipInstance(nil), f.profile.OwnedShips...)
	return &copied, nil
}

func (f *fakeProfileStore) Save(ctx context.Context, userID string, update bson.M) (*models.UserProfile, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	f.saves = append(f.saves, update)
	for field, value := range update {
		switch field {
		case "points":
			f.profile.Points = value.(int64)
		case "owned_ships":
			f.profile.OwnedShips = value.([]models.ShipInstance)
		}
	}
	return f.Get(ctx, userID)
}

func newTestService(profile *models.UserProfile) (*Service, *fakeProfileStore) {
	store := &fakeProfileStore{profile: profile}
	service := NewService(store, catalogservices.NewService())
	service.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	id := 0
	service.newID = func() string {
		id++
		return "instance-" + string(rune('a'+id-1))
	}
	return service, store
}

func freshProfile(points int64) *models.UserProfile {
	return &models.UserProfile{
		UserID:      "user-1",
		Points:      points,
		PlayerLevel: 1,
		OwnedShips:  []models.ShipInstance{},
	}
}

func TestPurchase(t *testing.T) {
	t.Run("deducts cost and adds instance with zero wear", func(t *testing.T) {
		service, store := newTestService(freshProfile(5000))

		profile, ship, err := service.Purchase(context.Background(), "user-1", "starter-ship1")
		require.NoError(t, err)

		assert.Equal(t, int64(4000), profile.Points)
		assert.Len(t, profile.OwnedShips, 1)
		assert.Equal(t, "starter-ship1", ship.ArchetypeID)
		assert.Equal(t, "Explorer I", ship.Name)
		assert.Equal(t, 0, ship.UsageCount)
		assert.Equal(t, int64(0), ship.TotalRewards)
		assert.Len(t, store.saves, 1)
	})

	t.Run("allows duplicate archetypes with distinct instance IDs", func(t *testing.T) {
		service, _ := newTestService(freshProfile(5000))

		_, first, err := service.Purchase(context.Background(), "user-1", "starter-ship1")
		require.NoError(t, err)
		profile, second, err := service.Purchase(context.Background(), "user-1", "starter-ship1")
		require.NoError(t, err)

		assert.Len(t, profile.OwnedShips, 2)
		assert.NotEqual(t, first.InstanceID, second.InstanceID)
		assert.Equal(t, int64(3000), profile.Points)
	})

	t.Run("rejects unknown archetype", func(t *testing.T) {
		service, store := newTestService(freshProfile(5000))

		_, _, err := service.Purchase(context.Background(), "user-1", "no-such-ship")
		assert.ErrorIs(t, err, ErrUnknownArchetype)
		assert.Empty(t, store.saves)
	})

	t.Run("rejects purchase the balance cannot cover", func(t *testing.T) {
		service, store := newTestService(freshProfile(999))

		_, _, err := service.Purchase(context.Background(), "user-1", "starter-ship1")
		assert.ErrorIs(t, err, ErrInsufficientFunds)
		assert.Empty(t, store.saves)
		assert.Equal(t, int64(999), store.profile.Points)
	})

	t.Run("exact balance is enough", func(t *testing.T) {
		service, _ := newTestService(freshProfile(1000))

		profile, _, err := service.Purchase(context.Background(), "user-1", "starter-ship1")
		require.NoError(t, err)
		assert.Equal(t, int64(0), profile.Points)
	})
}

func TestMaintain(t *testing.T) {
	groundedShip := func(rarity catalogmodels.Rarity, baseCost int64) models.ShipInstance {
		return models.ShipInstance{
			InstanceID:          "ship-1",
			ArchetypeID:         "starter-ship1",
			Name:                "Explorer I",
			Rarity:              rarity,
			Cost:                1000,
			MaintenanceBaseCost: baseCost,
			UsageCount:          5,
		}
	}

	t.Run("resets wear and charges the rarity-scaled cost", func(t *testing.T) {
		profile := freshProfile(500)
		profile.OwnedShips = []models.ShipInstance{groundedShip(catalogmodels.RarityUncommon, 100)}
		service, _ := newTestService(profile)

		updated, err := service.Maintain(context.Background(), "user-1", "ship-1")
		require.NoError(t, err)

		// 100 * 1.5 = 150
		assert.Equal(t, int64(350), updated.Points)
		ship, ok := updated.Ship("ship-1")
		require.True(t, ok)
		assert.Equal(t, 0, ship.UsageCount)
		assert.False(t, ship.Grounded())
	})

	t.Run("rejects maintenance on a ship that is not grounded", func(t *testing.T) {
		profile := freshProfile(500)
		ship := groundedShip(catalogmodels.RarityCommon, 50)
		ship.UsageCount = 3
		profile.OwnedShips = []models.ShipInstance{ship}
		service, store := newTestService(profile)

		_, err := service.Maintain(context.Background(), "user-1", "ship-1")
		assert.ErrorIs(t, err, ErrMaintenanceNotNeeded)
		assert.Empty(t, store.saves)
	})

	t.Run("rejects maintenance the balance cannot cover", func(t *testing.T) {
		profile := freshProfile(100)
		profile.OwnedShips = []models.ShipInstance{groundedShip(catalogmodels.RarityRare, 150)}
		service, store := newTestService(profile)

		// 150 * 2 = 300 > 100
		_, err := service.Maintain(context.Background(), "user-1", "ship-1")
		assert.ErrorIs(t, err, ErrInsufficientFunds)
		assert.Empty(t, store.saves)
		assert.Equal(t, 5, store.profile.OwnedShips[0].UsageCount)
	})

	t.Run("rejects unknown instance", func(t *testing.T) {
		service, _ := newTestService(freshProfile(5000))

		_, err := service.Maintain(context.Background(), "user-1", "ghost-ship")
		assert.ErrorIs(t, err, ErrShipNotFound)
	})
}

func TestFleet(t *testing.T) {
	profile := freshProfile(5000)
	profile.OwnedShips = []models.ShipInstance{
		{InstanceID: "a", Name: "Explorer I"},
		{InstanceID: "b", Name: "Miner X"},
	}
	service, _ := newTestService(profile)

	ships, err := service.Fleet(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Len(t, ships, 2)
}
