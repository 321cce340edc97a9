package repository

import (
	"context"

	"github.com/transport-admin/internal/domain"
)

// NotificationRepository определяет методы для работы с лентой уведомлений
type NotificationRepository interface {
	// List возвращает всю коллекцию, отсортированную по убыванию времени
	List(ctx context.Context) ([]*domain.Notification, error)

	// Insert сохраняет новое уведомление
	Insert(ctx context.Context, n *domain.Notification) error

	// MarkRead выставляет read=true одной записи; идемпотентно
	MarkRead(ctx context.Context, id string) error

	// MarkAllRead выставляет read=true всем непрочитанным одной операцией
	// ("set true where false"), возвращает число затронутых записей
	MarkAllRead(ctx context.Context) (int64, error)

	// CountUnread возвращает число непрочитанных уведомлений
	CountUnread(ctx context.Context) (int, error)
}
