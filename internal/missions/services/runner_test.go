package services

import (
	"context"
	"errors"
	"testing"
	"time"

	catalogservices "go-armada/internal/catalog/services"
	"go-armada/internal/missions/models"
	profilemodels "go-armada/internal/profiles/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// fakeProfileStore applies partial updates in memory the way the mongo
// repository merges them field by field.
type fakeProfileStore struct {
	profile  *profilemodels.UserProfile
	getErr   error
	saveErr  error
	getCalls int
	saves    []bson.M
}

func (f *fakeProfileStore) Get(ctx context.Context, userID string) (*profilemodels.UserProfile, error) {
	f.getCalls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	copied := *f.profile
	copied.OwnedShips = append([]profilemodels.ShipInstance(nil), f.profile.OwnedShips...)
	return &copied, nil
}

func (f *fakeProfileStore) Save(ctx context.Context, userID string, update bson.M) (*profilemodels.UserProfile, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	f.saves = append(f.saves, update)
	for field, value := range update {
		switch field {
		case "points":
			f.profile.Points = value.(int64)
		case "artifacts":
			f.profile.Artifacts = value.(int64)
		case "player_level":
			f.profile.PlayerLevel = value.(int)
		case "experience":
			f.profile.Experience = value.(int64)
		case "missions_completed":
			f.profile.MissionsCompleted = value.(int64)
		case "owned_ships":
			f.profile.OwnedShips = value.([]profilemodels.ShipInstance)
		}
	}
	return f.Get(ctx, userID)
}

type fakeCompletionLog struct {
	records []models.CompletionRecord
	err     error
}

func (f *fakeCompletionLog) Append(ctx context.Context, record models.CompletionRecord) error {
	if f.err != nil {
		return f.err
	}
	f.records = append(f.records, record)
	return nil
}

type fixedClock struct{ at time.Time }

func (c fixedClock) Now() time.Time { return c.at }

func runnerTestProfile() *profilemodels.UserProfile {
	return &profilemodels.UserProfile{
		UserID:      "user-1",
		Points:      5000,
		PlayerLevel: 1,
		OwnedShips: []profilemodels.ShipInstance{
			{InstanceID: "ship-1", ArchetypeID: "starter-ship1", Name: "Explorer I"},
		},
	}
}

func newTestRunner(profile *profilemodels.UserProfile) (*Runner, *fakeProfileStore, *fakeCompletionLog) {
	store := &fakeProfileStore{profile: profile}
	log := &fakeCompletionLog{}
	runner := NewRunner(store, catalogservices.NewService(), log, time.Second)
	runner.clock = fixedClock{at: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	runner.roll = func() float64 { return 0.99 }
	return runner, store, log
}

func TestRunnerStart(t *testing.T) {
	ctx := context.Background()

	t.Run("registers a running mission at zero progress", func(t *testing.T) {
		runner, _, _ := newTestRunner(runnerTestProfile())

		am, err := runner.Start(ctx, "user-1", 1, "ship-1")
		require.NoError(t, err)

		assert.Equal(t, models.StateRunning, am.State)
		assert.Equal(t, float64(0), am.Progress)
		assert.Equal(t, "Lunar Survey", am.Mission.Name)
	})

	t.Run("rejects a second mission while one is running", func(t *testing.T) {
		runner, _, _ := newTestRunner(runnerTestProfile())

		_, err := runner.Start(ctx, "user-1", 1, "ship-1")
		require.NoError(t, err)

		_, err = runner.Start(ctx, "user-1", 1, "ship-1")
		assert.ErrorIs(t, err, ErrMissionAlreadyRunning)
	})

	t.Run("different users run missions independently", func(t *testing.T) {
		runner, store, _ := newTestRunner(runnerTestProfile())
		store.profile.UserID = "user-1"

		_, err := runner.Start(ctx, "user-1", 1, "ship-1")
		require.NoError(t, err)
		_, err = runner.Start(ctx, "user-2", 1, "ship-1")
		require.NoError(t, err)
	})

	t.Run("rejects an unknown mission", func(t *testing.T) {
		runner, _, _ := newTestRunner(runnerTestProfile())

		_, err := runner.Start(ctx, "user-1", 42, "ship-1")
		assert.ErrorIs(t, err, ErrUnknownMission)
	})

	t.Run("rejects a ship the user does not own", func(t *testing.T) {
		runner, _, _ := newTestRunner(runnerTestProfile())

		_, err := runner.Start(ctx, "user-1", 1, "ghost-ship")
		assert.ErrorIs(t, err, ErrNoShipSelected)
	})

	t.Run("rejects a grounded ship", func(t *testing.T) {
		profile := runnerTestProfile()
		profile.OwnedShips[0].UsageCount = 5
		runner, _, _ := newTestRunner(profile)

		_, err := runner.Start(ctx, "user-1", 1, "ship-1")
		assert.ErrorIs(t, err, ErrShipGrounded)
	})

	t.Run("rejects a mission above the player level", func(t *testing.T) {
		runner, _, _ := newTestRunner(runnerTestProfile())

		_, err := runner.Start(ctx, "user-1", 3, "ship-1")
		assert.ErrorIs(t, err, ErrInsufficientLevel)
	})
}

func TestRunnerTick(t *testing.T) {
	ctx := context.Background()

	t.Run("progress advances by the mission rate each tick", func(t *testing.T) {
		runner, _, _ := newTestRunner(runnerTestProfile())

		_, err := runner.Start(ctx, "user-1", 1, "ship-1")
		require.NoError(t, err)

		for i := 0; i < 3; i++ {
			runner.tick(ctx)
		}

		am, _, err := runner.Active("user-1")
		require.NoError(t, err)
		assert.InDelta(t, 30, am.Progress, 0.001)
		assert.Equal(t, models.StateRunning, am.State)
	})

	t.Run("completes and applies rewards after the full duration", func(t *testing.T) {
		runner, store, log := newTestRunner(runnerTestProfile())

		_, err := runner.Start(ctx, "user-1", 1, "ship-1")
		require.NoError(t, err)

		for i := 0; i < 10; i++ {
			runner.tick(ctx)
		}

		_, result, err := runner.Active("user-1")
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.True(t, result.Succeeded)
		assert.Equal(t, int64(100), result.PointsAwarded)
		assert.Equal(t, int64(50), result.ExperienceAwarded)

		assert.Equal(t, int64(5100), store.profile.Points)
		assert.Equal(t, int64(50), store.profile.Experience)
		assert.Equal(t, int64(1), store.profile.MissionsCompleted)
		assert.Equal(t, 1, store.profile.OwnedShips[0].UsageCount)
		assert.Equal(t, int64(100), store.profile.OwnedShips[0].TotalRewards)

		require.Len(t, log.records, 1)
		assert.Equal(t, "Lunar Survey", log.records[0].MissionName)
		assert.Equal(t, "Explorer I", log.records[0].ShipName)
	})

	t.Run("the terminal result is consumed by one read", func(t *testing.T) {
		runner, _, _ := newTestRunner(runnerTestProfile())

		_, err := runner.Start(ctx, "user-1", 1, "ship-1")
		require.NoError(t, err)
		for i := 0; i < 10; i++ {
			runner.tick(ctx)
		}

		_, result, err := runner.Active("user-1")
		require.NoError(t, err)
		require.NotNil(t, result)

		_, _, err = runner.Active("user-1")
		assert.ErrorIs(t, err, ErrNoActiveMission)
	})

	t.Run("a new mission can start once the previous one settled", func(t *testing.T) {
		runner, _, _ := newTestRunner(runnerTestProfile())

		_, err := runner.Start(ctx, "user-1", 1, "ship-1")
		require.NoError(t, err)
		for i := 0; i < 10; i++ {
			runner.tick(ctx)
		}

		_, err = runner.Start(ctx, "user-1", 1, "ship-1")
		require.NoError(t, err)
	})

	t.Run("the artifact roll happens at completion and counts once", func(t *testing.T) {
		runner, store, _ := newTestRunner(runnerTestProfile())
		rolls := 0
		runner.roll = func() float64 {
			rolls++
			return 0.1
		}

		_, err := runner.Start(ctx, "user-1", 1, "ship-1")
		require.NoError(t, err)

		for i := 0; i < 9; i++ {
			runner.tick(ctx)
		}
		assert.Zero(t, rolls)

		runner.tick(ctx)
		assert.Equal(t, 1, rolls)
		assert.Equal(t, int64(1), store.profile.Artifacts)
	})

	t.Run("five flights ground the ship", func(t *testing.T) {
		runner, store, _ := newTestRunner(runnerTestProfile())

		for flight := 0; flight < 5; flight++ {
			_, err := runner.Start(ctx, "user-1", 1, "ship-1")
			require.NoError(t, err)
			for i := 0; i < 10; i++ {
				runner.tick(ctx)
			}
			runner.Active("user-1")
		}

		assert.Equal(t, 5, store.profile.OwnedShips[0].UsageCount)
		_, err := runner.Start(ctx, "user-1", 1, "ship-1")
		assert.ErrorIs(t, err, ErrShipGrounded)
	})
}

func TestRunnerSaveRetry(t *testing.T) {
	ctx := context.Background()

	t.Run("retries the identical grant and recovers", func(t *testing.T) {
		runner, store, _ := newTestRunner(runnerTestProfile())
		rolls := 0
		runner.roll = func() float64 {
			rolls++
			return 0.1
		}
		store.saveErr = errors.New("store down")

		_, err := runner.Start(ctx, "user-1", 1, "ship-1")
		require.NoError(t, err)
		for i := 0; i < 10; i++ {
			runner.tick(ctx)
		}

		// Completed but unsaved; mission stays in flight
		am, _, err := runner.Active("user-1")
		require.NoError(t, err)
		assert.Equal(t, models.StateCompleting, am.State)

		store.saveErr = nil
		runner.tick(ctx)

		_, result, err := runner.Active("user-1")
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.True(t, result.Succeeded)
		assert.True(t, result.ArtifactFound)
		assert.Equal(t, 1, rolls)
		assert.Equal(t, int64(5100), store.profile.Points)
	})

	t.Run("forfeits after exhausting the retry budget without touching the profile", func(t *testing.T) {
		runner, store, log := newTestRunner(runnerTestProfile())
		store.saveErr = errors.New("store down")

		_, err := runner.Start(ctx, "user-1", 1, "ship-1")
		require.NoError(t, err)

		// 10 ticks to complete plus two more failed attempts
		for i := 0; i < 12; i++ {
			runner.tick(ctx)
		}

		_, result, err := runner.Active("user-1")
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.False(t, result.Succeeded)
		assert.NotEmpty(t, result.Error)

		assert.Equal(t, int64(5000), store.profile.Points)
		assert.Equal(t, int64(0), store.profile.MissionsCompleted)
		assert.Equal(t, 0, store.profile.OwnedShips[0].UsageCount)
		assert.Empty(t, log.records)
	})

	t.Run("a profile read failure counts against the retry budget", func(t *testing.T) {
		runner, store, _ := newTestRunner(runnerTestProfile())

		_, err := runner.Start(ctx, "user-1", 1, "ship-1")
		require.NoError(t, err)
		for i := 0; i < 9; i++ {
			runner.tick(ctx)
		}

		store.getErr = errors.New("store down")
		for i := 0; i < 3; i++ {
			runner.tick(ctx)
		}

		_, result, err := runner.Active("user-1")
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.False(t, result.Succeeded)
	})
}
