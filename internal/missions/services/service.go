package services

import (
	"context"
	"log/slog"
	"time"

	"go-armada/internal/missions/models"
	profilemodels "go-armada/internal/profiles/models"
	"go-armada/pkg/database"
)

const (
	leaderboardCacheKey = "leaderboard:missions"
	leaderboardCacheTTL = time.Hour
	leaderboardSize     = 20
	defaultPageSize     = 20
	maxPageSize         = 100
)

// ProfileRanker serves the leaderboard source data
type ProfileRanker interface {
	TopByMissions(ctx context.Context, limit int) ([]profilemodels.UserProfile, error)
}

// Service provides mission history and leaderboard reads on top of the
// runner and the mission log.
type Service struct {
	repository *Repository
	ranker     ProfileRanker
	redis      *database.Redis
}

// NewService creates a new service instance
func NewService(mongodb *database.MongoDB, redis *database.Redis, ranker ProfileRanker) *Service {
	return &Service{
		repository: NewRepository(mongodb.Database),
		ranker:     ranker,
		redis:      redis,
	}
}

// Repository exposes the underlying repository for migrations and the runner
func (s *Service) Repository() *Repository {
	return s.repository
}

// History returns a page of the user's completed missions, newest first
func (s *Service) History(ctx context.Context, userID string, page, pageSize int) ([]models.CompletionRecord, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return s.repository.History(ctx, userID, page, pageSize)
}

// Leaderboard returns the current mission ranking, preferring the hourly
// cached snapshot and falling back to a live query.
func (s *Service) Leaderboard(ctx context.Context) ([]models.LeaderboardEntry, error) {
	if s.redis != nil {
		var cached []models.LeaderboardEntry
		if err := s.redis.GetJSON(ctx, leaderboardCacheKey, &cached); err == nil {
			return cached, nil
		}
	}
	return s.RefreshLeaderboard(ctx)
}

// RefreshLeaderboard rebuilds the ranking from the profile store and
// replaces the cached snapshot. Run hourly by the module's cron job.
func (s *Service) RefreshLeaderboard(ctx context.Context) ([]models.LeaderboardEntry, error) {
	profiles, err := s.ranker.TopByMissions(ctx, leaderboardSize)
	if err != nil {
		return nil, err
	}

	entries := make([]models.LeaderboardEntry, len(profiles))
	for i, p := range profiles {
		entries[i] = models.LeaderboardEntry{
			Rank:              i + 1,
			UserID:            p.UserID,
			MissionsCompleted: p.MissionsCompleted,
			Points:            p.Points,
			PlayerLevel:       p.PlayerLevel,
		}
	}

	if s.redis != nil {
		if err := s.redis.SetJSON(ctx, leaderboardCacheKey, entries, leaderboardCacheTTL); err != nil {
			slog.Warn("Failed to cache leaderboard", "error", err)
		}
	}

	return entries, nil
}
