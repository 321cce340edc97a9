package domain

// Справочники: типы транспорта, города, размеры подвижного состава.
// Плоские коллекции, читаются целиком.

type RouteType struct {
	ID    string `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Color string `json:"color" db:"color"`
}

type City struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

type VehicleSize struct {
	ID   string `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
