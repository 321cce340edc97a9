package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/transport-admin/internal/domain"
	redisRepo "github.com/transport-admin/internal/repository/redis"
)

// getTestRedisClient creates a Redis client for testing
func getTestRedisClient(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     "localhost:6379",
		Password: "",
		DB:       1, // Use DB 1 for tests
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err := client.Ping(ctx).Err()
	if err != nil {
		t.Skipf("Redis not available for integration tests: %v", err)
	}

	// Start every test from a clean keyspace
	client.FlushDB(ctx)

	return client
}

func TestPresenceRepository_Markers(t *testing.T) {
	client := getTestRedisClient(t)
	defer client.Close()

	repo := redisRepo.NewPresenceRepository(client, zap.NewNop())
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	marker := &domain.PresenceMarker{UserID: "op-1", Online: true, LastSeen: now}

	err := repo.SetMarker(ctx, marker, time.Minute)
	require.NoError(t, err)

	err = repo.SetMarker(ctx, &domain.PresenceMarker{UserID: "op-2", Online: false, LastSeen: now}, time.Minute)
	require.NoError(t, err)

	markers, err := repo.GetMarkers(ctx)
	require.NoError(t, err)
	require.Len(t, markers, 2)

	byUser := make(map[string]*domain.PresenceMarker)
	for _, m := range markers {
		byUser[m.UserID] = m
	}
	assert.True(t, byUser["op-1"].Online)
	assert.False(t, byUser["op-2"].Online)
	assert.Equal(t, now, byUser["op-1"].LastSeen.UTC())
}

func TestPresenceRepository_MarkerExpiresByTTL(t *testing.T) {
	client := getTestRedisClient(t)
	defer client.Close()

	repo := redisRepo.NewPresenceRepository(client, zap.NewNop())
	ctx := context.Background()

	err := repo.SetMarker(ctx, &domain.PresenceMarker{UserID: "op-1", Online: true}, 50*time.Millisecond)
	require.NoError(t, err)

	time.Sleep(150 * time.Millisecond)

	markers, err := repo.GetMarkers(ctx)
	require.NoError(t, err)
	assert.Empty(t, markers)
}

func TestPresenceRepository_UserLogs(t *testing.T) {
	client := getTestRedisClient(t)
	defer client.Close()

	repo := redisRepo.NewPresenceRepository(client, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.WriteUserLog(ctx, "op-1", "2024-01-01T10:05"))
	require.NoError(t, repo.WriteUserLog(ctx, "op-1", "2024-01-01T10:04"))
	require.NoError(t, repo.WriteUserLog(ctx, "op-2", "2024-01-01T10:05"))

	logs, err := repo.ReadUserLogs(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 2)

	// Корзины отсортированы, двоеточие внутри ISO-минуты не ломает разбор ключа
	assert.Equal(t, []string{"2024-01-01T10:04", "2024-01-01T10:05"}, logs["op-1"])
	assert.Equal(t, []string{"2024-01-01T10:05"}, logs["op-2"])
}

func TestPresenceRepository_Aggregate(t *testing.T) {
	client := getTestRedisClient(t)
	defer client.Close()

	repo := redisRepo.NewPresenceRepository(client, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.WriteAggregate(ctx, "2024-01-01", "10:10", 3))
	require.NoError(t, repo.WriteAggregate(ctx, "2024-01-01", "10:05", 2))
	require.NoError(t, repo.WriteAggregate(ctx, "2024-01-02", "10:05", 7))

	entries, err := repo.ReadAggregate(ctx, "2024-01-01")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Записи другой даты не попадают в выборку, порядок по времени
	assert.Equal(t, domain.PresenceSummaryEntry{Time: "10:05", Count: 2}, entries[0])
	assert.Equal(t, domain.PresenceSummaryEntry{Time: "10:10", Count: 3}, entries[1])
}

func TestPresenceRepository_AggregateOverwritesSameMinute(t *testing.T) {
	client := getTestRedisClient(t)
	defer client.Close()

	repo := redisRepo.NewPresenceRepository(client, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.WriteAggregate(ctx, "2024-01-01", "10:05", 2))
	require.NoError(t, repo.WriteAggregate(ctx, "2024-01-01", "10:05", 5))

	entries, err := repo.ReadAggregate(ctx, "2024-01-01")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 5, entries[0].Count)
}
