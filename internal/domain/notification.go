package domain

// NotificationType - тип события в ленте уведомлений
type NotificationType string

const (
	NotificationRouteAdded      NotificationType = "route_added"
	NotificationStopAdded       NotificationType = "stop_added"
	NotificationScheduleChanged NotificationType = "schedule_changed"
	NotificationInvalidRecord   NotificationType = "invalid_record"
	NotificationOther           NotificationType = "other"
)

// EntityType - сущность, к которой относится уведомление
type EntityType string

const (
	EntityRoute EntityType = "route"
	EntityStop  EntityType = "stop"
)

// Notification - запись ленты уведомлений. Никогда не удаляется;
// мутируется только флаг Read.
type Notification struct {
	ID         string           `json:"id" db:"id"`
	Type       NotificationType `json:"type" db:"type"`
	Message    string           `json:"message" db:"message"`
	Details    string           `json:"details,omitempty" db:"details"`
	UserID     string           `json:"user_id" db:"user_id"`
	UserName   string           `json:"user_name" db:"user_name"`
	Timestamp  int64            `json:"timestamp" db:"timestamp"` // unix millis
	Read       bool             `json:"read" db:"read"`
	EntityID   string           `json:"entity_id,omitempty" db:"entity_id"`
	EntityType EntityType       `json:"entity_type,omitempty" db:"entity_type"`
}

// IsImportant - важными считаются уведомления об ошибках данных
func (n *Notification) IsImportant() bool {
	return n.Type == NotificationInvalidRecord
}

// ValidType проверяет, что тип уведомления известен системе
func ValidNotificationType(t string) bool {
	switch NotificationType(t) {
	case NotificationRouteAdded, NotificationStopAdded,
		NotificationScheduleChanged, NotificationInvalidRecord,
		NotificationOther:
		return true
	}
	return false
}
