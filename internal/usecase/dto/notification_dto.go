package dto

import "github.com/transport-admin/internal/domain"

// NotificationFilter - предикаты выборки ленты уведомлений.
// Пустое значение означает отсутствие фильтра по соответствующему полю.
type NotificationFilter struct {
	Tab    string `json:"tab" validate:"omitempty,oneof=all unread important"`
	Type   string `json:"type" validate:"omitempty,oneof=route_added stop_added schedule_changed invalid_record other"`
	UserID string `json:"user_id"`
}

// NotificationListResponse - страница ленты уведомлений с числом
// непрочитанных
type NotificationListResponse struct {
	Items  []*domain.Notification `json:"items"`
	Unread int                    `json:"unread"`
}

// MarkAllReadResponse - результат массового прочтения
type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}
