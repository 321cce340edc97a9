package dto

import "github.com/transport-admin/internal/domain"

// HeartbeatRequest - периодический сигнал активной сессии оператора.
// UserID заполняется обработчиком из токена аутентификации.
type HeartbeatRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

// OfflineRequest - явный сигнал завершения сессии.
// UserID заполняется обработчиком из токена аутентификации.
type OfflineRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

// PresenceResponse - текущее число операторов онлайн
type PresenceResponse struct {
	Online  int                      `json:"online"`
	Markers []*domain.PresenceMarker `json:"markers"`
}

// PresenceHistoryResponse - временной ряд активности из детального лога
type PresenceHistoryResponse struct {
	Points []domain.ActivityPoint `json:"points"`
}

// PresenceSummaryRequest - запрос агрегированного лога за дату
type PresenceSummaryRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

// PresenceSummaryResponse - агрегированный скалярный лог за дату
type PresenceSummaryResponse struct {
	Date    string                        `json:"date"`
	Entries []domain.PresenceSummaryEntry `json:"entries"`
}
