package repository

import (
	"context"

	"github.com/transport-admin/internal/domain"
)

// RouteRepository определяет методы для работы с маршрутами
type RouteRepository interface {
	// List возвращает все маршруты
	List(ctx context.Context) ([]*domain.Route, error)

	// GetByID возвращает маршрут по ID
	GetByID(ctx context.Context, id string) (*domain.Route, error)

	// Create сохраняет новый маршрут
	Create(ctx context.Context, route *domain.Route) error

	// Update перезаписывает маршрут целиком
	Update(ctx context.Context, route *domain.Route) error

	// Delete удаляет маршрут
	Delete(ctx context.Context, id string) error
}
