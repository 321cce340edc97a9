package dto

// StopRequest - запрос на создание или обновление остановки.
// Координаты принимаются строками и валидируются как числа в допустимых
// диапазонах.
type StopRequest struct {
	Name        string `json:"name" validate:"required"`
	Direction   string `json:"direction"`
	CityID      int    `json:"city_id" validate:"required,min=1"`
	KindRouteID int    `json:"kind_route_id"`
	Latitude    string `json:"latitude" validate:"required,latitude_str"`
	Longitude   string `json:"longitude" validate:"required,longitude_str"`
	TypeID      int    `json:"type_id"`
}
