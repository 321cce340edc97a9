package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/transport-admin/internal/domain"
	"github.com/transport-admin/internal/domain/repository"
	"go.uber.org/zap"
)

const (
	dashboardStatsKey = "stats:dashboard"
	latencyListKey    = "stats:latency"
	latencyMaxSamples = 200
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

// GetDashboardStats получает сводные метрики из кеша
func (r *cacheRepository) GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	data, err := r.Get(ctx, dashboardStatsKey)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var stats domain.DashboardStats
	if err := json.Unmarshal(data, &stats); err != nil {
		r.logger.Error("Failed to unmarshal stats from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal stats: %w", err)
	}

	return &stats, nil
}

// SetDashboardStats сохраняет сводные метрики в кеше
func (r *cacheRepository) SetDashboardStats(ctx context.Context, stats *domain.DashboardStats, ttl time.Duration) error {
	data, err := json.Marshal(stats)
	if err != nil {
		r.logger.Error("Failed to marshal stats", zap.Error(err))
		return fmt.Errorf("marshal stats: %w", err)
	}

	return r.Set(ctx, dashboardStatsKey, data, ttl)
}

// PushLatencySample добавляет измерение задержки в капированный список
func (r *cacheRepository) PushLatencySample(ctx context.Context, millis float64) error {
	pipe := r.client.Pipeline()
	pipe.LPush(ctx, latencyListKey, strconv.FormatFloat(millis, 'f', 2, 64))
	pipe.LTrim(ctx, latencyListKey, 0, latencyMaxSamples-1)
	if _, err := pipe.Exec(ctx); err != nil {
		r.logger.Warn("Failed to record latency sample", zap.Error(err))
		return fmt.Errorf("latency push error: %w", err)
	}
	return nil
}

// LatencySamples возвращает сохранённые измерения задержки
func (r *cacheRepository) LatencySamples(ctx context.Context) ([]float64, error) {
	values, err := r.client.LRange(ctx, latencyListKey, 0, latencyMaxSamples-1).Result()
	if err != nil {
		r.logger.Error("Failed to read latency samples", zap.Error(err))
		return nil, fmt.Errorf("latency read error: %w", err)
	}

	samples := make([]float64, 0, len(values))
	for _, v := range values {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			continue
		}
		samples = append(samples, f)
	}

	return samples, nil
}
