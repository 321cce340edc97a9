package domain

// Stream names (должны совпадать с подписчиками ленты)
const (
	StreamNotifications = "stream:notifications"
)

// NotificationEvent - событие ввода данных, публикуемое в стрим при
// создании маршрута/остановки или изменении расписания. Воркер ленты
// превращает его в Notification.
type NotificationEvent struct {
	Type       NotificationType `json:"type"`
	Message    string           `json:"message"`
	Details    string           `json:"details,omitempty"`
	UserID     string           `json:"user_id"`
	UserName   string           `json:"user_name"`
	Timestamp  int64            `json:"timestamp"` // unix millis
	EntityID   string           `json:"entity_id,omitempty"`
	EntityType EntityType       `json:"entity_type,omitempty"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
