package services

import (
	"testing"
	"time"

	"go-armada/internal/profiles/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultProfileDoc(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	doc := defaultProfileDoc("user-1", now)

	assert.Equal(t, "user-1", doc["user_id"])
	assert.Equal(t, int64(5000), doc["points"])
	assert.Equal(t, int64(0), doc["artifacts"])
	assert.Equal(t, 1, doc["player_level"])
	assert.Equal(t, int64(0), doc["experience"])
	assert.Equal(t, int64(0), doc["missions_completed"])
	assert.Equal(t, now, doc["created_at"])
	assert.Equal(t, now, doc["updated_at"])

	ships, ok := doc["owned_ships"].([]models.ShipInstance)
	require.True(t, ok)
	assert.Empty(t, ships)
}
