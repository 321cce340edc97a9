package domain

import "time"

// DashboardStats - сводные метрики для панели управления.
// Считаются за один проход по данным и кешируются с TTL.
type DashboardStats struct {
	TotalRoutes      int     `json:"total_routes"`
	TotalStops       int     `json:"total_stops"`
	TotalMileageKm   float64 `json:"total_mileage_km"`
	AvgRouteLengthKm float64 `json:"avg_route_length_km"`
	AvgStopsPerRoute float64 `json:"avg_stops_per_route"`

	TypeDistribution []TypeCount `json:"type_distribution"`
	DataQuality      DataQuality `json:"data_quality"`
	ValidationErrors int         `json:"validation_errors"`
	OnlineOperators  int         `json:"online_operators"`

	GeneratedAt time.Time `json:"generated_at"`
}

// TypeCount - число маршрутов одного типа транспорта
type TypeCount struct {
	TypeID string `json:"type_id"`
	Name   string `json:"name"`
	Count  int    `json:"count"`
}

// DataQuality - доля полных записей в процентах
type DataQuality struct {
	CompleteRoutes int     `json:"complete_routes"`
	CompleteStops  int     `json:"complete_stops"`
	RoutesPercent  float64 `json:"routes_percent"`
	StopsPercent   float64 `json:"stops_percent"`
}

// LatencyStats - средняя задержка запросов по последним измерениям
type LatencyStats struct {
	AvgMillis float64 `json:"avg_ms"`
	Samples   int     `json:"samples"`
}
