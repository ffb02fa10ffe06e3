package services

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	catalogmodels "go-armada/internal/catalog/models"
	"go-armada/internal/missions/models"
	profilemodels "go-armada/internal/profiles/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Mission start and lifecycle errors
var (
	ErrMissionAlreadyRunning = errors.New("a mission is already running")
	ErrUnknownMission        = errors.New("unknown mission")
	ErrNoShipSelected        = errors.New("no owned ship selected")
	ErrShipGrounded          = errors.New("ship needs maintenance")
	ErrInsufficientLevel     = errors.New("player level too low")
	ErrNoActiveMission       = errors.New("no active mission")
)

// maxSaveAttempts bounds how many ticks a finished mission retries its
// reward save before it is forfeited.
const maxSaveAttempts = 3

// ProfileStore is the slice of the profiles service the runner consumes
type ProfileStore interface {
	Get(ctx context.Context, userID string) (*profilemodels.UserProfile, error)
	Save(ctx context.Context, userID string, update bson.M) (*profilemodels.UserProfile, error)
}

// MissionCatalog resolves startable mission definitions
type MissionCatalog interface {
	MissionByID(id int) (catalogmodels.MissionDefinition, bool)
}

// CompletionLog persists one record per successfully completed mission
type CompletionLog interface {
	Append(ctx context.Context, record models.CompletionRecord) error
}

// Clock abstracts wall-clock time so tests can drive the runner
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// Runner drives every user's active mission through its lifecycle on a
// fixed tick. Active state lives only in memory; the profile document is
// touched exactly once per mission, at the reward save. If that save keeps
// failing the mission is forfeited and the profile is left untouched.
type Runner struct {
	profiles ProfileStore
	catalog  MissionCatalog
	log      CompletionLog
	clock    Clock
	roll     func() float64
	interval time.Duration

	mu      sync.Mutex
	active  map[string]*models.ActiveMission
	grants  map[string]*RewardGrant
	results map[string]*models.MissionResult
}

// NewRunner creates a mission runner with the standard clock, artifact
// roller, and tick interval.
func NewRunner(profiles ProfileStore, catalog MissionCatalog, log CompletionLog, interval time.Duration) *Runner {
	return &Runner{
		profiles: profiles,
		catalog:  catalog,
		log:      log,
		clock:    systemClock{},
		roll:     rand.Float64,
		interval: interval,
		active:   make(map[string]*models.ActiveMission),
		grants:   make(map[string]*RewardGrant),
		results:  make(map[string]*models.MissionResult),
	}
}

// Start validates and registers a new active mission for the user
func (r *Runner) Start(ctx context.Context, userID string, missionID int, shipInstanceID string) (*models.ActiveMission, error) {
	r.mu.Lock()
	_, running := r.active[userID]
	r.mu.Unlock()
	if running {
		return nil, ErrMissionAlreadyRunning
	}

	mission, ok := r.catalog.MissionByID(missionID)
	if !ok {
		return nil, ErrUnknownMission
	}

	profile, err := r.profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if profile.PlayerLevel < mission.RequiredLevel {
		return nil, ErrInsufficientLevel
	}

	ship, ok := profile.Ship(shipInstanceID)
	if !ok {
		return nil, ErrNoShipSelected
	}
	if ship.Grounded() {
		return nil, ErrShipGrounded
	}

	am := &models.ActiveMission{
		UserID:         userID,
		Mission:        mission,
		ShipInstanceID: shipInstanceID,
		State:          models.StateRunning,
		StartedAt:      r.clock.Now(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, running := r.active[userID]; running {
		return nil, ErrMissionAlreadyRunning
	}
	r.active[userID] = am
	delete(r.results, userID)

	copied := *am
	return &copied, nil
}

// Active returns the user's mission in flight, or the buffered terminal
// result of the last one. The result is consumed by the read.
func (r *Runner) Active(userID string) (*models.ActiveMission, *models.MissionResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if am, ok := r.active[userID]; ok {
		copied := *am
		return &copied, nil, nil
	}
	if result, ok := r.results[userID]; ok {
		delete(r.results, userID)
		return nil, result, nil
	}
	return nil, nil, ErrNoActiveMission
}

// Run ticks the runner until the context is cancelled
func (r *Runner) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	slog.Info("Mission runner started", "tick_interval", r.interval)
	for {
		select {
		case <-ctx.Done():
			slog.Info("Mission runner stopped")
			return
		case <-ticker.C:
			r.tick(ctx)
		}
	}
}

// tick advances every active mission by one interval and settles the ones
// that reached completion.
func (r *Runner) tick(ctx context.Context) {
	r.mu.Lock()
	completing := make([]*models.ActiveMission, 0)
	for _, am := range r.active {
		if am.State == models.StateRunning {
			am.Progress += 100 / float64(am.Mission.DurationSeconds)
			if am.Progress >= 100 {
				am.Progress = 100
				am.State = models.StateCompleting
			}
		}
		if am.State == models.StateCompleting {
			completing = append(completing, am)
		}
	}
	r.mu.Unlock()

	for _, am := range completing {
		r.settle(ctx, am)
	}
}

// settle attempts the reward save for a finished mission. The grant is
// computed and the artifact rolled exactly once; store failures retry the
// identical grant on later ticks.
func (r *Runner) settle(ctx context.Context, am *models.ActiveMission) {
	r.mu.Lock()
	grant := r.grants[am.UserID]
	r.mu.Unlock()

	if grant == nil {
		profile, err := r.profiles.Get(ctx, am.UserID)
		if err != nil {
			r.saveFailed(am, err)
			return
		}

		computed, err := ComputeRewards(profile, am.ShipInstanceID, am.Mission, r.roll())
		if err != nil {
			// The flown ship left the profile mid-mission; nothing to award
			r.finish(am, &models.MissionResult{
				UserID:         am.UserID,
				MissionID:      am.Mission.ID,
				MissionName:    am.Mission.Name,
				ShipInstanceID: am.ShipInstanceID,
				CompletedAt:    r.clock.Now(),
				Error:          err.Error(),
			})
			return
		}

		grant = &computed
		r.mu.Lock()
		r.grants[am.UserID] = grant
		r.mu.Unlock()
	}

	if _, err := r.profiles.Save(ctx, am.UserID, grant.SaveFields()); err != nil {
		r.saveFailed(am, err)
		return
	}

	completedAt := r.clock.Now()
	record := models.CompletionRecord{
		UserID:            am.UserID,
		MissionID:         am.Mission.ID,
		MissionName:       am.Mission.Name,
		ShipInstanceID:    am.ShipInstanceID,
		PointsAwarded:     am.Mission.PointReward,
		ExperienceAwarded: am.Mission.ExperienceReward,
		ArtifactFound:     grant.ArtifactFound,
		CompletedAt:       completedAt,
	}
	if ship := shipName(grant.OwnedShips, am.ShipInstanceID); ship != "" {
		record.ShipName = ship
	}
	if r.log != nil {
		if err := r.log.Append(ctx, record); err != nil {
			slog.Warn("Failed to append mission log", "user_id", am.UserID, "mission_id", am.Mission.ID, "error", err)
		}
	}

	r.finish(am, &models.MissionResult{
		UserID:            am.UserID,
		MissionID:         am.Mission.ID,
		MissionName:       am.Mission.Name,
		ShipInstanceID:    am.ShipInstanceID,
		Succeeded:         true,
		PointsAwarded:     am.Mission.PointReward,
		ExperienceAwarded: am.Mission.ExperienceReward,
		ArtifactFound:     grant.ArtifactFound,
		LevelledUpTo:      grant.LevelledUpTo,
		CompletedAt:       completedAt,
	})
}

// saveFailed counts one failed settlement attempt, forfeiting the mission
// once the retry budget is spent. The profile is never mutated on forfeit.
func (r *Runner) saveFailed(am *models.ActiveMission, err error) {
	r.mu.Lock()
	am.SaveAttempts++
	attempts := am.SaveAttempts
	r.mu.Unlock()

	if attempts < maxSaveAttempts {
		slog.Warn("Mission reward save failed, will retry", "user_id", am.UserID, "mission_id", am.Mission.ID, "attempt", attempts, "error", err)
		return
	}

	slog.Error("Mission forfeited after repeated save failures", "user_id", am.UserID, "mission_id", am.Mission.ID, "error", err)
	r.finish(am, &models.MissionResult{
		UserID:         am.UserID,
		MissionID:      am.Mission.ID,
		MissionName:    am.Mission.Name,
		ShipInstanceID: am.ShipInstanceID,
		CompletedAt:    r.clock.Now(),
		Error:          "mission rewards could not be saved",
	})
}

func (r *Runner) finish(am *models.ActiveMission, result *models.MissionResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.active, am.UserID)
	delete(r.grants, am.UserID)
	r.results[am.UserID] = result
}

func shipName(ships []profilemodels.ShipInstance, instanceID string) string {
	for i := range ships {
		if ships[i].InstanceID == instanceID {
			return ships[i].Name
		}
	}
	return ""
}
