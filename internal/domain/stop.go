package domain

import (
	"strconv"
	"strings"
	"time"
)

// Stop - запись остановки. Координаты хранятся строками, как вводятся
// оператором; числовые значения извлекаются при расчётах.
type Stop struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Direction   string    `json:"direction" db:"direction"`
	CityID      int       `json:"city_id" db:"city_id"`
	KindRouteID int       `json:"kind_route_id" db:"kind_route_id"`
	Latitude    string    `json:"latitude" db:"latitude"`
	Longitude   string    `json:"longitude" db:"longitude"`
	TypeID      int       `json:"type_id" db:"type_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Coordinates возвращает числовые координаты остановки.
// ok == false, если координаты пустые или не парсятся.
func (s *Stop) Coordinates() (lat, lon float64, ok bool) {
	lat, err1 := strconv.ParseFloat(strings.TrimSpace(s.Latitude), 64)
	lon, err2 := strconv.ParseFloat(strings.TrimSpace(s.Longitude), 64)
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return lat, lon, true
}

// HasValidCoordinates - проверка координат для метрики ошибок данных
func (s *Stop) HasValidCoordinates() bool {
	lat, lon, ok := s.Coordinates()
	return ok && lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// IsComplete - проверка полноты остановки по ключевым полям
func (s *Stop) IsComplete() bool {
	return strings.TrimSpace(s.Name) != "" && s.HasValidCoordinates()
}
