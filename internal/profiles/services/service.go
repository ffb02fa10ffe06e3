package services

import (
	"context"
	"log/slog"
	"time"

	"go-armada/internal/profiles/models"
	"go-armada/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
)

const (
	profileCacheKeyPrefix = "profile:"
	profileCacheTTL       = 24 * time.Hour
)

// Service provides business logic for profile operations. Every write goes
// through the mongo repository and is mirrored into the Redis cache so a
// read can be served before the next remote round-trip; the cache degrades
// gracefully when Redis is down.
type Service struct {
	repository *Repository
	redis      *database.Redis
}

// NewService creates a new service instance
func NewService(mongodb *database.MongoDB, redis *database.Redis) *Service {
	return &Service{
		repository: NewRepository(mongodb.Database),
		redis:      redis,
	}
}

// Repository exposes the underlying repository for migrations and tests
func (s *Service) Repository() *Repository {
	return s.repository
}

// Load fetches the profile from the remote store, creating it with default
// values on first sign-in, and refreshes the cache mirror.
func (s *Service) Load(ctx context.Context, userID string) (*models.UserProfile, error) {
	profile, err := s.repository.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.cacheProfile(ctx, profile)
	return profile, nil
}

// Get serves the profile from the cache mirror when present, falling back
// to a remote load.
func (s *Service) Get(ctx context.Context, userID string) (*models.UserProfile, error) {
	if s.redis != nil {
		var cached models.UserProfile
		if err := s.redis.GetJSON(ctx, profileCacheKeyPrefix+userID, &cached); err == nil {
			return &cached, nil
		}
	}
	return s.Load(ctx, userID)
}

// Save merges the given fields into the remote document and mirrors the
// merged result into the cache. On store failure nothing is cached and the
// caller's in-memory state is left untouched.
func (s *Service) Save(ctx context.Context, userID string, update bson.M) (*models.UserProfile, error) {
	profile, err := s.repository.Merge(ctx, userID, update)
	if err != nil {
		return nil, err
	}

	s.cacheProfile(ctx, profile)
	return profile, nil
}

// EnsureProfile guarantees the profile exists for a freshly authenticated
// identity. Used by the auth module on register and login.
func (s *Service) EnsureProfile(ctx context.Context, userID string) error {
	_, err := s.Load(ctx, userID)
	return err
}

// TopByMissions returns profiles ranked by completed missions for the
// leaderboard.
func (s *Service) TopByMissions(ctx context.Context, limit int) ([]models.UserProfile, error) {
	return s.repository.TopByMissions(ctx, limit)
}

// Evict drops the cache mirror for an identity, forcing the next read to
// hit the remote store.
func (s *Service) Evict(ctx context.Context, userID string) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Delete(ctx, profileCacheKeyPrefix+userID); err != nil {
		slog.Warn("Failed to evict profile cache", "user_id", userID, "error", err)
	}
}

func (s *Service) cacheProfile(ctx context.Context, profile *models.UserProfile) {
	if s.redis == nil {
		return
	}
	key := profileCacheKeyPrefix + profile.UserID
	if err := s.redis.SetJSON(ctx, key, profile, profileCacheTTL); err != nil {
		slog.Warn("Failed to cache profile", "user_id", profile.UserID, "error", err)
	}
}
