package services

import (
	"testing"
	"time"

	"snakescores/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaderboardEntries(t *testing.T) {
	scores := []models.Score{
		{
			ID:         3,
			Score:      90,
			UserID:     7,
			DatePlayed: timeDate(2024, time.June, 2),
			Gamer:      models.Gamer{ID: 7, Name: "Thomas Edison", UID: "toby"},
		},
		{
			ID:         4,
			Score:      15,
			UserID:     9,
			DatePlayed: timeDate(2024, time.June, 5),
			Gamer:      models.Gamer{ID: 9, Name: "Nicholas Tesla", UID: "niko"},
		},
	}

	entries := LeaderboardEntries(scores)
	require.Len(t, entries, 2)

	assert.Equal(t, uint(7), entries[0].Gamer.ID)
	assert.Equal(t, "toby", entries[0].Gamer.UID)
	assert.Equal(t, uint(7), entries[0].Score.UserID)
	assert.Equal(t, 90, entries[0].Score.Score)
	assert.Equal(t, "2024-06-02", entries[0].Score.DatePlayed)
}

func TestHubBroadcastWithoutClients(t *testing.T) {
	db := setupTestDB(t)
	gamers := NewGamerService(db)
	scores := NewScoreService(db)

	gamer := mustGamer(t, "Thomas Edison", "toby")
	require.NoError(t, gamers.Create(gamer))
	require.NoError(t, scores.Create(models.NewScore(gamer.ID, 42, time.Time{})))

	hub := NewHub(scores)
	go hub.Run()

	// No subscribers: the broadcast must still drain without blocking.
	done := make(chan struct{})
	go func() {
		hub.BroadcastBoard()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("broadcast blocked with no clients connected")
	}
	assert.Equal(t, 0, hub.ClientCount())
}
