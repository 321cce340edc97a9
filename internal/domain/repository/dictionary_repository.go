package repository

import (
	"context"

	"github.com/transport-admin/internal/domain"
)

// DictionaryRepository - справочные коллекции (типы, города, размеры).
// Каждая читается и пишется целыми записями без частичных апдейтов.
type DictionaryRepository interface {
	ListTypes(ctx context.Context) ([]*domain.RouteType, error)
	SaveType(ctx context.Context, t *domain.RouteType) error
	DeleteType(ctx context.Context, id string) error

	ListCities(ctx context.Context) ([]*domain.City, error)
	SaveCity(ctx context.Context, c *domain.City) error
	DeleteCity(ctx context.Context, id int) error

	ListSizes(ctx context.Context) ([]*domain.VehicleSize, error)
	SaveSize(ctx context.Context, s *domain.VehicleSize) error
	DeleteSize(ctx context.Context, id string) error
}
