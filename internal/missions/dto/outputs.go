package dto

import "go-armada/internal/missions/models"

// StartMissionOutput wraps the freshly started mission
type StartMissionOutput struct {
	Body models.ActiveMission
}

// ActiveMissionResponse reports the mission in flight or, once it settles,
// the terminal result of the last one.
type ActiveMissionResponse struct {
	Active *models.ActiveMission `json:"active,omitempty"`
	Result *models.MissionResult `json:"result,omitempty"`
}

// ActiveMissionOutput wraps an active-mission poll
type ActiveMissionOutput struct {
	Body ActiveMissionResponse
}

// HistoryResponse is one page of completed missions
type HistoryResponse struct {
	Records  []models.CompletionRecord `json:"records"`
	Total    int64                     `json:"total"`
	Page     int                       `json:"page"`
	PageSize int                       `json:"page_size"`
}

// HistoryOutput wraps a history page
type HistoryOutput struct {
	Body HistoryResponse
}

// LeaderboardResponse ranks players by completed missions
type LeaderboardResponse struct {
	Entries []models.LeaderboardEntry `json:"entries"`
}

// LeaderboardOutput wraps the leaderboard
type LeaderboardOutput struct {
	Body LeaderboardResponse
}
