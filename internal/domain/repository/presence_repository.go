package repository

import (
	"context"
	"time"

	"github.com/transport-admin/internal/domain"
)

// PresenceRepository - маркеры присутствия и логи активности в Redis.
// Маркер живёт с TTL: истечение ключа и есть "last-will" при обрыве сессии.
type PresenceRepository interface {
	// SetMarker перезаписывает маркер присутствия целиком с TTL
	SetMarker(ctx context.Context, marker *domain.PresenceMarker, ttl time.Duration) error

	// GetMarkers читает все маркеры одним проходом
	GetMarkers(ctx context.Context) ([]*domain.PresenceMarker, error)

	// WriteUserLog отмечает присутствие пользователя в минутной корзине
	// (per-user детальный лог)
	WriteUserLog(ctx context.Context, userID, minuteBucket string) error

	// ReadUserLogs читает весь детальный лог: userID -> множество минутных корзин
	ReadUserLogs(ctx context.Context) (map[string][]string, error)

	// WriteAggregate пишет скалярный счётчик за минуту запуска агрегатора,
	// перезаписывая прежнее значение этой минуты
	WriteAggregate(ctx context.Context, dateKey, timeKey string, count int) error

	// ReadAggregate читает скалярный лог за календарную дату
	ReadAggregate(ctx context.Context, dateKey string) ([]domain.PresenceSummaryEntry, error)
}
