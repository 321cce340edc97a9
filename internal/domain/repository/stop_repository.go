package repository

import (
	"context"

	"github.com/transport-admin/internal/domain"
)

// StopRepository определяет методы для работы с остановками
type StopRepository interface {
	// List возвращает все остановки
	List(ctx context.Context) ([]*domain.Stop, error)

	// GetByID возвращает остановку по ID
	GetByID(ctx context.Context, id string) (*domain.Stop, error)

	// GetByIDs возвращает остановки по списку ID
	GetByIDs(ctx context.Context, ids []string) (map[string]*domain.Stop, error)

	// Create сохраняет новую остановку
	Create(ctx context.Context, stop *domain.Stop) error

	// Update перезаписывает остановку целиком
	Update(ctx context.Context, stop *domain.Stop) error

	// Delete удаляет остановку
	Delete(ctx context.Context, id string) error
}
