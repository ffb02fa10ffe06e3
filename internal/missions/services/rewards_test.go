package services

import (
	"testing"

	catalogmodels "go-armada/internal/catalog/models"
	profilemodels "go-armada/internal/profiles/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rewardTestProfile() *profilemodels.UserProfile {
	return &profilemodels.UserProfile{
		UserID:      "user-1",
		Points:      5000,
		PlayerLevel: 1,
		OwnedShips: []profilemodels.ShipInstance{
			{InstanceID: "ship-1", Name: "Explorer I", UsageCount: 2, MissionsCompleted: 2, TotalRewards: 200},
		},
	}
}

func rewardTestMission() catalogmodels.MissionDefinition {
	return catalogmodels.MissionDefinition{
		ID:                 1,
		Name:               "Lunar Survey",
		DurationSeconds:    10,
		PointReward:        100,
		ArtifactDropChance: 0.2,
		ExperienceReward:   50,
		RequiredLevel:      1,
	}
}

func TestComputeRewards(t *testing.T) {
	t.Run("awards points and experience and wears the ship", func(t *testing.T) {
		profile := rewardTestProfile()

		grant, err := ComputeRewards(profile, "ship-1", rewardTestMission(), 0.99)
		require.NoError(t, err)

		assert.Equal(t, int64(5100), grant.Points)
		assert.Equal(t, int64(50), grant.Experience)
		assert.Equal(t, 1, grant.PlayerLevel)
		assert.Equal(t, int64(1), grant.MissionsCompleted)
		assert.Equal(t, 3, grant.OwnedShips[0].UsageCount)
		assert.Equal(t, int64(3), grant.OwnedShips[0].MissionsCompleted)
		assert.Equal(t, int64(300), grant.OwnedShips[0].TotalRewards)
	})

	t.Run("does not mutate the input profile", func(t *testing.T) {
		profile := rewardTestProfile()

		_, err := ComputeRewards(profile, "ship-1", rewardTestMission(), 0.99)
		require.NoError(t, err)

		assert.Equal(t, int64(5000), profile.Points)
		assert.Equal(t, 2, profile.OwnedShips[0].UsageCount)
	})

	t.Run("awards an artifact when the roll is under the drop chance", func(t *testing.T) {
		grant, err := ComputeRewards(rewardTestProfile(), "ship-1", rewardTestMission(), 0.1)
		require.NoError(t, err)

		assert.True(t, grant.ArtifactFound)
		assert.Equal(t, int64(1), grant.Artifacts)
	})

	t.Run("a certain drop always lands and a zero chance never does", func(t *testing.T) {
		mission := rewardTestMission()

		mission.ArtifactDropChance = 1.0
		for _, roll := range []float64{0, 0.5, 0.999999} {
			grant, err := ComputeRewards(rewardTestProfile(), "ship-1", mission, roll)
			require.NoError(t, err)
			assert.True(t, grant.ArtifactFound, "roll %f", roll)
		}

		mission.ArtifactDropChance = 0
		for _, roll := range []float64{0, 0.5, 0.999999} {
			grant, err := ComputeRewards(rewardTestProfile(), "ship-1", mission, roll)
			require.NoError(t, err)
			assert.False(t, grant.ArtifactFound, "roll %f", roll)
		}
	})

	t.Run("a roll equal to the drop chance misses", func(t *testing.T) {
		grant, err := ComputeRewards(rewardTestProfile(), "ship-1", rewardTestMission(), 0.2)
		require.NoError(t, err)

		assert.False(t, grant.ArtifactFound)
		assert.Equal(t, int64(0), grant.Artifacts)
	})

	t.Run("levels up once when the threshold is crossed", func(t *testing.T) {
		profile := rewardTestProfile()
		profile.Experience = 990

		grant, err := ComputeRewards(profile, "ship-1", rewardTestMission(), 0.99)
		require.NoError(t, err)

		assert.Equal(t, 2, grant.PlayerLevel)
		assert.Equal(t, 2, grant.LevelledUpTo)
		// 990 + 50 - 1000
		assert.Equal(t, int64(40), grant.Experience)
	})

	t.Run("never levels twice in one completion", func(t *testing.T) {
		profile := rewardTestProfile()
		profile.Experience = 999
		mission := rewardTestMission()
		mission.ExperienceReward = 2001

		grant, err := ComputeRewards(profile, "ship-1", mission, 0.99)
		require.NoError(t, err)

		// Surplus experience carries over, even past the next threshold
		assert.Equal(t, 2, grant.PlayerLevel)
		assert.Equal(t, int64(2000), grant.Experience)
	})

	t.Run("higher levels need proportionally more experience", func(t *testing.T) {
		profile := rewardTestProfile()
		profile.PlayerLevel = 3
		profile.Experience = 2900
		mission := rewardTestMission()
		mission.ExperienceReward = 150

		grant, err := ComputeRewards(profile, "ship-1", mission, 0.99)
		require.NoError(t, err)

		assert.Equal(t, 4, grant.PlayerLevel)
		assert.Equal(t, int64(50), grant.Experience)
	})

	t.Run("rejects a ship not on the profile", func(t *testing.T) {
		_, err := ComputeRewards(rewardTestProfile(), "ghost-ship", rewardTestMission(), 0.5)
		assert.Error(t, err)
	})
}
