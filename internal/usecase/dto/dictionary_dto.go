package dto

// TypeRequest - запрос на сохранение типа транспорта
type TypeRequest struct {
	ID    string `json:"id" validate:"required"`
	Name  string `json:"name" validate:"required"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
}

// CityRequest - запрос на сохранение города
type CityRequest struct {
	ID   int    `json:"id" validate:"required,min=1"`
	Name string `json:"name" validate:"required"`
}

// SizeRequest - запрос на сохранение размера подвижного состава
type SizeRequest struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name" validate:"required"`
}
