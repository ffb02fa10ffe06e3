package services

import (
	"fmt"

	catalogmodels "go-armada/internal/catalog/models"
	profilemodels "go-armada/internal/profiles/models"

	"go.mongodb.org/mongo-driver/bson"
)

// RewardGrant is the complete profile mutation for one finished mission,
// computed in memory and only applied once the store accepts it.
type RewardGrant struct {
	Points            int64
	Artifacts         int64
	PlayerLevel       int
	Experience        int64
	MissionsCompleted int64
	OwnedShips        []profilemodels.ShipInstance

	ArtifactFound bool
	LevelledUpTo  int
}

// ComputeRewards derives the post-mission profile state. The artifact roll
// is a uniform [0,1) sample taken exactly once, at completion. Levelling is
// a single step per mission; surplus experience carries into the new level
// but never triggers a second level in the same completion.
func ComputeRewards(profile *profilemodels.UserProfile, shipInstanceID string, mission catalogmodels.MissionDefinition, roll float64) (RewardGrant, error) {
	ships := append([]profilemodels.ShipInstance(nil), profile.OwnedShips...)

	shipIdx := -1
	for i := range ships {
		if ships[i].InstanceID == shipInstanceID {
			shipIdx = i
			break
		}
	}
	if shipIdx < 0 {
		return RewardGrant{}, fmt.Errorf("ship instance %s not on profile %s", shipInstanceID, profile.UserID)
	}

	ships[shipIdx].UsageCount++
	ships[shipIdx].MissionsCompleted++
	ships[shipIdx].TotalRewards += mission.PointReward

	level := profile.PlayerLevel
	experience := profile.Experience + mission.ExperienceReward
	levelledUpTo := 0
	if threshold := profilemodels.ExperienceToNextLevel(level); experience >= threshold {
		experience -= threshold
		level++
		levelledUpTo = level
	}

	artifacts := profile.Artifacts
	artifactFound := roll < mission.ArtifactDropChance
	if artifactFound {
		artifacts++
	}

	return RewardGrant{
		Points:            profile.Points + mission.PointReward,
		Artifacts:         artifacts,
		PlayerLevel:       level,
		Experience:        experience,
		MissionsCompleted: profile.MissionsCompleted + 1,
		OwnedShips:        ships,
		ArtifactFound:     artifactFound,
		LevelledUpTo:      levelledUpTo,
	}, nil
}

// SaveFields assembles the partial update that commits the grant
func (g RewardGrant) SaveFields() bson.M {
	return bson.M{
		"points":             g.Points,
		"artifacts":          g.Artifacts,
		"player_level":       g.PlayerLevel,
		"experience":         g.Experience,
		"missions_completed": g.MissionsCompleted,
		"owned_ships":        g.OwnedShips,
	}
}
