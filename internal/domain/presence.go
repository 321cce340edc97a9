package domain

import "time"

// PresenceMarker - маркер присутствия одной сессии оператора.
// Перезаписывается целиком при каждом изменении состояния; при обрыве
// соединения маркер исчезает по TTL хранилища.
type PresenceMarker struct {
	UserID   string    `json:"user_id"`
	Online   bool      `json:"online"`
	LastSeen time.Time `json:"last_seen"`
}

// ActivityPoint - точка временного ряда активности операторов,
// полученная инверсией per-user лога: минута -> число уникальных операторов
type ActivityPoint struct {
	Bucket string `json:"bucket"` // ISO-минута "2006-01-02T15:04"
	Online int    `json:"online"`
}

// PresenceSummaryEntry - запись агрегированного скалярного лога,
// которую пишет периодический воркер
type PresenceSummaryEntry struct {
	Time  string `json:"time"` // "HH:mm"
	Count int    `json:"count"`
}
