package repository

import (
	"context"
	"time"

	"github.com/transport-admin/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// GetDashboardStats получает сводные метрики из кеша
	GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error)

	// SetDashboardStats сохраняет сводные метрики в кеше
	SetDashboardStats(ctx context.Context, stats *domain.DashboardStats, ttl time.Duration) error

	// PushLatencySample добавляет измерение задержки запроса (мс),
	// список обрезается до фиксированного размера
	PushLatencySample(ctx context.Context, millis float64) error

	// LatencySamples возвращает сохранённые измерения задержки
	LatencySamples(ctx context.Context) ([]float64, error)
}
