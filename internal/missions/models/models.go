package models

import (
	"time"

	catalogmodels "go-armada/internal/catalog/models"
)

// MissionLogCollection stores one record per completed mission
const MissionLogCollection = "mission_log"

// MissionState tracks where an active mission is in its lifecycle
type MissionState string

const (
	// StateRunning means the mission is accruing progress each tick
	StateRunning MissionState = "running"
	// StateCompleting means progress hit 100 and the reward save is pending
	StateCompleting MissionState = "completing"
)

// ActiveMission is the in-memory record of one user's mission in flight.
// At most one exists per user; it never touches the document store until
// the reward save at completion.
type ActiveMission struct {
	UserID         string                          `json:"user_id"`
	Mission        catalogmodels.MissionDefinition `json:"mission"`
	ShipInstanceID string                          `json:"ship_instance_id"`
	Progress       float64                         `json:"progress"`
	State          MissionState                    `json:"state"`
	StartedAt      time.Time                       `json:"started_at"`
	SaveAttempts   int                             `json:"-"`
}

// MissionResult is the terminal outcome handed back to the user once the
// active mission leaves the runner.
type MissionResult struct {
	UserID            string    `json:"user_id"`
	MissionID         int       `json:"mission_id"`
	MissionName       string    `json:"mission_name"`
	ShipInstanceID    string    `json:"ship_instance_id"`
	Succeeded         bool      `json:"succeeded"`
	PointsAwarded     int64     `json:"points_awarded"`
	ExperienceAwarded int64     `json:"experience_awarded"`
	ArtifactFound     bool      `json:"artifact_found"`
	LevelledUpTo      int       `json:"levelled_up_to,omitempty" description:"New player level, zero when no level was gained"`
	CompletedAt       time.Time `json:"completed_at"`
	Error             string    `json:"error,omitempty"`
}

// CompletionRecord is the persisted mission log entry
type CompletionRecord struct {
	UserID            string    `bson:"user_id" json:"user_id"`
	MissionID         int       `bson:"mission_id" json:"mission_id"`
	MissionName       string    `bson:"mission_name" json:"mission_name"`
	ShipInstanceID    string    `bson:"ship_instance_id" json:"ship_instance_id"`
	ShipName          string    `bson:"ship_name" json:"ship_name"`
	PointsAwarded     int64     `bson:"points_awarded" json:"points_awarded"`
	ExperienceAwarded int64     `bson:"experience_awarded" json:"experience_awarded"`
	ArtifactFound     bool      `bson:"artifact_found" json:"artifact_found"`
	CompletedAt       time.Time `bson:"completed_at" json:"completed_at"`
}

// LeaderboardEntry is one row of the mission leaderboard
type LeaderboardEntry struct {
	Rank              int    `json:"rank"`
	UserID            string `json:"user_id"`
	MissionsCompleted int64  `json:"missions_completed"`
	Points            int64  `json:"points"`
	PlayerLevel       int    `json:"player_level"`
}
