package domain

import (
	"strings"
	"time"
)

// Route - запись маршрута. Строковые ID справочников (type_id, size_id) и
// числовой city_id сохранены как в исходных данных.
type Route struct {
	ID             string `json:"id" db:"id"`
	Number         string `json:"number" db:"number"`
	Title          string `json:"title" db:"title"`
	CarrierCompany string `json:"carrier_company" db:"carrier_company"`
	Description    string `json:"description" db:"description"`
	Following      string `json:"following" db:"following"`
	Fare           string `json:"fare" db:"fare"`
	CityID         int    `json:"city_id" db:"city_id"`

	// Расписания
	DepartureTimes        []string `json:"departure_times" db:"departure_times"`
	WeekendDepartureTimes []string `json:"weekend_departure_times" db:"weekend_departure_times"`

	// Интервалы и список остановок
	IntervalBetweenStops []int    `json:"interval_between_stops" db:"interval_between_stops"`
	Stops                []string `json:"stops" db:"stops"`

	// Флаги особенностей
	IsCashAccepted    bool `json:"is_cash_accepted" db:"is_cash_accepted"`
	IsEcological      bool `json:"is_ecological" db:"is_ecological"`
	IsLowFloor        bool `json:"is_low_floor" db:"is_low_floor"`
	IsQRCodeAvailable bool `json:"is_qr_code_available" db:"is_qr_code_available"`
	IsWifiAvailable   bool `json:"is_wifi_available" db:"is_wifi_available"`

	// Внешние связи
	SizeID string `json:"size_id" db:"size_id"`
	TypeID string `json:"type_id" db:"type_id"`

	// Дополнительная информация
	TechInfo     string    `json:"tech_info" db:"tech_info"`
	WorkingHours string    `json:"working_hours" db:"working_hours"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Normalize приводит nil-массивы к пустым, чтобы запись читалась обратно
// с теми же типами полей
func (r *Route) Normalize() {
	if r.DepartureTimes == nil {
		r.DepartureTimes = []string{}
	}
	if r.WeekendDepartureTimes == nil {
		r.WeekendDepartureTimes = []string{}
	}
	if r.IntervalBetweenStops == nil {
		r.IntervalBetweenStops = []int{}
	}
	if r.Stops == nil {
		r.Stops = []string{}
	}
}

// IsComplete - проверка полноты маршрута по ключевым полям
// (метрика качества данных)
func (r *Route) IsComplete() bool {
	return strings.TrimSpace(r.Number) != "" &&
		strings.TrimSpace(r.Title) != "" &&
		strings.TrimSpace(r.Fare) != "" &&
		r.DepartureTimes != nil &&
		r.IntervalBetweenStops != nil &&
		r.Stops != nil
}

// HasScheduleChange сравнивает поля расписания с другой версией маршрута
func (r *Route) HasScheduleChange(other *Route) bool {
	return !equalStrings(r.DepartureTimes, other.DepartureTimes) ||
		!equalStrings(r.WeekendDepartureTimes, other.WeekendDepartureTimes) ||
		!equalInts(r.IntervalBetweenStops, other.IntervalBetweenStops)
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
