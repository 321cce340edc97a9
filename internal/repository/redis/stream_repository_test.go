package redis_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/transport-admin/internal/domain"
	redisRepo "github.com/transport-admin/internal/repository/redis"
)

// TestStreamRepository_CreateConsumerGroup tests consumer group creation
func TestStreamRepository_CreateConsumerGroup(t *testing.T) {
	client := getTestRedisClient(t)
	defer client.Close()

	logger := zap.NewNop()
	repo := redisRepo.NewStreamRepository(client, 500*time.Millisecond, logger)
	ctx := context.Background()

	streamName := "test:stream:notifications"
	groupName := "test-group"

	defer func() {
		client.Del(ctx, streamName)
	}()

	err := repo.CreateConsumerGroup(ctx, streamName, groupName)
	require.NoError(t, err)

	groups, err := client.XInfoGroups(ctx, streamName).Result()
	require.NoError(t, err)
	assert.Len(t, groups, 1)
	assert.Equal(t, groupName, groups[0].Name)

	// Creating again should not error (BUSYGROUP handled)
	err = repo.CreateConsumerGroup(ctx, streamName, groupName)
	assert.NoError(t, err)
}

// TestStreamRepository_PublishToStream tests event publishing
func TestStreamRepository_PublishToStream(t *testing.T) {
	client := getTestRedisClient(t)
	defer client.Close()

	logger := zap.NewNop()
	repo := redisRepo.NewStreamRepository(client, 500*time.Millisecond, logger)
	ctx := context.Background()

	streamName := "test:stream:notifications"

	defer func() {
		client.Del(ctx, streamName)
	}()

	event := &domain.NotificationEvent{
		Type:       domain.NotificationRouteAdded,
		Message:    "Добавлен маршрут №23",
		UserID:     "op-1",
		UserName:   "Мария",
		Timestamp:  1704103500000,
		EntityID:   "route-1",
		EntityType: domain.EntityRoute,
	}

	err := repo.PublishToStream(ctx, streamName, event)
	require.NoError(t, err)

	messages, err := client.XRead(ctx, &redis.XReadArgs{
		Streams: []string{streamName, "0"},
		Count:   1,
	}).Result()
	require.NoError(t, err)
	assert.Len(t, messages, 1)
	assert.Len(t, messages[0].Messages, 1)

	msg := messages[0].Messages[0]
	dataStr, ok := msg.Values["data"].(string)
	require.True(t, ok)

	var received domain.NotificationEvent
	err = json.Unmarshal([]byte(dataStr), &received)
	require.NoError(t, err)
	assert.Equal(t, domain.NotificationRouteAdded, received.Type)
	assert.Equal(t, "Добавлен маршрут №23", received.Message)
	assert.Equal(t, "op-1", received.UserID)
	assert.Equal(t, int64(1704103500000), received.Timestamp)
}

// TestStreamRepository_ConsumeStream tests message consumption
func TestStreamRepository_ConsumeStream(t *testing.T) {
	client := getTestRedisClient(t)
	defer client.Close()

	logger := zap.NewNop()
	repo := redisRepo.NewStreamRepository(client, 500*time.Millisecond, logger)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	streamName := "test:stream:notifications"
	groupName := "test-consumer-group"
	consumerName := "test-consumer"

	defer func() {
		client.Del(context.Background(), streamName)
	}()

	err := repo.CreateConsumerGroup(ctx, streamName, groupName)
	require.NoError(t, err)

	event := &domain.NotificationEvent{
		Type:    domain.NotificationStopAdded,
		Message: "Добавлена остановка «Театральная»",
		UserID:  "op-2",
	}
	err = repo.PublishToStream(ctx, streamName, event)
	require.NoError(t, err)

	msgChan, err := repo.ConsumeStream(ctx, streamName, groupName, consumerName)
	require.NoError(t, err)

	select {
	case msg := <-msgChan:
		assert.NotEmpty(t, msg.ID)

		var received domain.NotificationEvent
		err = json.Unmarshal([]byte(msg.Data), &received)
		require.NoError(t, err)
		assert.Equal(t, domain.NotificationStopAdded, received.Type)
		assert.Equal(t, "op-2", received.UserID)

	case <-time.After(3 * time.Second):
		t.Fatal("Timeout waiting for message")
	}
}

// TestStreamRepository_AckMessage tests message acknowledgment
func TestStreamRepository_AckMessage(t *testing.T) {
	client := getTestRedisClient(t)
	defer client.Close()

	logger := zap.NewNop()
	repo := redisRepo.NewStreamRepository(client, 500*time.Millisecond, logger)
	ctx := context.Background()

	streamName := "test:stream:notifications"
	groupName := "test-ack-group"
	consumerName := "test-consumer"

	defer func() {
		client.Del(ctx, streamName)
	}()

	err := repo.CreateConsumerGroup(ctx, streamName, groupName)
	require.NoError(t, err)

	err = repo.PublishToStream(ctx, streamName, &domain.NotificationEvent{
		Type:    domain.NotificationOther,
		Message: "x",
	})
	require.NoError(t, err)

	messages, err := client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    groupName,
		Consumer: consumerName,
		Streams:  []string{streamName, ">"},
		Count:    1,
	}).Result()
	require.NoError(t, err)
	require.Len(t, messages, 1)
	require.Len(t, messages[0].Messages, 1)

	messageID := messages[0].Messages[0].ID

	pending, err := client.XPending(ctx, streamName, groupName).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), pending.Count)

	err = repo.AckMessage(ctx, streamName, groupName, messageID)
	require.NoError(t, err)

	pending, err = client.XPending(ctx, streamName, groupName).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(0), pending.Count)
}

// TestStreamRepository_ConsumeStream_ContextCancellation tests graceful shutdown
func TestStreamRepository_ConsumeStream_ContextCancellation(t *testing.T) {
	client := getTestRedisClient(t)
	defer client.Close()

	logger := zap.NewNop()
	repo := redisRepo.NewStreamRepository(client, 500*time.Millisecond, logger)
	ctx, cancel := context.WithCancel(context.Background())

	streamName := "test:stream:notifications"
	groupName := "test-cancel-group"
	consumerName := "test-consumer"

	defer func() {
		client.Del(context.Background(), streamName)
	}()

	err := repo.CreateConsumerGroup(ctx, streamName, groupName)
	require.NoError(t, err)

	msgChan, err := repo.ConsumeStream(ctx, streamName, groupName, consumerName)
	require.NoError(t, err)

	go func() {
		time.Sleep(100 * time.Millisecond)
		cancel()
	}()

	timeout := time.After(2 * time.Second)
	select {
	case _, ok := <-msgChan:
		if ok {
			select {
			case _, ok := <-msgChan:
				assert.False(t, ok, "Channel should be closed")
			case <-timeout:
				t.Fatal("Channel not closed after context cancellation")
			}
		} else {
			assert.False(t, ok)
		}
	case <-timeout:
		t.Fatal("Timeout waiting for channel to close")
	}
}
