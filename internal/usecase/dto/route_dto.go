package dto

// RouteRequest - запрос на создание или обновление маршрута.
// Ключевые поля карточки обязательны, маршрут без остановок не принимается;
// следование и габарит подвижного состава по умолчанию сохраняются пустыми.
type RouteRequest struct {
	Number         string `json:"number" validate:"required"`
	Title          string `json:"title" validate:"required"`
	CarrierCompany string `json:"carrier_company" validate:"required"`
	Description    string `json:"description" validate:"required"`
	Following      string `json:"following"`
	Fare           string `json:"fare" validate:"required"`
	CityID         int    `json:"city_id" validate:"required,min=1"`

	DepartureTimes        []string `json:"departure_times" validate:"omitempty,dive,hhmm"`
	WeekendDepartureTimes []string `json:"weekend_departure_times" validate:"omitempty,dive,hhmm"`
	IntervalBetweenStops  []int    `json:"interval_between_stops" validate:"omitempty,dive,min=0"`
	Stops                 []string `json:"stops" validate:"min=1"`

	IsCashAccepted    bool `json:"is_cash_accepted"`
	IsEcological      bool `json:"is_ecological"`
	IsLowFloor        bool `json:"is_low_floor"`
	IsQRCodeAvailable bool `json:"is_qr_code_available"`
	IsWifiAvailable   bool `json:"is_wifi_available"`

	SizeID string `json:"size_id"`
	TypeID string `json:"type_id" validate:"required"`

	TechInfo     string `json:"tech_info"`
	WorkingHours string `json:"working_hours"`
}
