//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/label-service/internal/circuitbreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestLogsRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := setupTestDB(t)
	require.NoError(t, db.SetLogsTTL(ctx, 30*24*time.Hour))

	repo := NewLogsRepository(db)
	base := time.Now().Add(-time.Hour).UTC().Truncate(time.Millisecond)

	t.Run("create log entry", func(t *testing.T) {
		entry := &LogEntryDocument{
			ID:         primitive.NewObjectID(),
			Timestamp:  base,
			Level:      "info",
			Message:    "POST /api/label",
			RequestID:  "req-label-1",
			Method:     "POST",
			Path:       "/api/label",
			StatusCode: 200,
			Duration:   812,
			IP:         "127.0.0.1",
			UserAgent:  "test-agent",
		}

		require.NoError(t, repo.Create(ctx, entry))
		assert.False(t, entry.ID.IsZero())
	})

	t.Run("create many fills ids and timestamps", func(t *testing.T) {
		entries := []*LogEntryDocument{
			{Level: "warn", Message: "Label request rejected", RequestID: "req-2", ActionType: "label.purchase", StatusCode: 400},
			{Level: "error", Message: "Label purchase failed", RequestID: "req-3", ActionType: "label.purchase", StatusCode: 500},
			{Level: "info", Message: "Label purchased", RequestID: "req-4", ActionType: "label.purchase", StatusCode: 200},
		}

		require.NoError(t, repo.CreateMany(ctx, entries))
		for _, e := range entries {
			assert.False(t, e.ID.IsZero())
			assert.False(t, e.Timestamp.IsZero())
		}
	})

	t.Run("create many with no entries", func(t *testing.T) {
		assert.NoError(t, repo.CreateMany(ctx, nil))
	})

	t.Run("query by request ID", func(t *testing.T) {
		entries, err := repo.Query(ctx, LogQueryOptions{RequestID: "req-label-1"})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "/api/label", entries[0].Path)
		assert.Equal(t, int64(812), entries[0].Duration)
	})

	t.Run("query by action type is newest first", func(t *testing.T) {
		entries, err := repo.Query(ctx, LogQueryOptions{ActionType: "label.purchase"})
		require.NoError(t, err)
		require.Len(t, entries, 3)
		for i := 1; i < len(entries); i++ {
			assert.False(t, entries[i].Timestamp.After(entries[i-1].Timestamp))
		}
	})

	t.Run("query with limit and skip", func(t *testing.T) {
		entries, err := repo.Query(ctx, LogQueryOptions{Limit: 2, Skip: 1})
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("query by time range", func(t *testing.T) {
		end := base.Add(time.Minute)
		entries, err := repo.Query(ctx, LogQueryOptions{EndTime: &end})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "req-label-1", entries[0].RequestID)
	})

	t.Run("count", func(t *testing.T) {
		count, err := repo.Count(ctx, LogQueryOptions{})
		require.NoError(t, err)
		assert.Equal(t, int64(4), count)

		count, err = repo.Count(ctx, LogQueryOptions{Level: "error"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}

func TestLogsRepositoryWithCircuitBreaker_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := setupTestDB(t)

	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	wrapped := NewLogsRepositoryWithCircuitBreaker(NewLogsRepository(db), cb)

	require.NoError(t, wrapped.Create(ctx, &LogEntryDocument{Level: "info", Message: "GET /healthz"}))
	require.NoError(t, wrapped.CreateMany(ctx, []*LogEntryDocument{{Level: "info", Message: "GET /"}}))

	count, err := wrapped.Count(ctx, LogQueryOptions{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	stats := cb.GetStats()
	assert.Equal(t, "closed", stats.State)
	assert.True(t, stats.IsHealthy)
}
