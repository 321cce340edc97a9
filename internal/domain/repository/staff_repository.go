package repository

import (
	"context"

	"github.com/transport-admin/internal/domain"
)

// StaffRepository определяет методы для работы с сотрудниками
type StaffRepository interface {
	// List возвращает всех сотрудников
	List(ctx context.Context) ([]*domain.StaffUser, error)

	// GetByID возвращает сотрудника по ID
	GetByID(ctx context.Context, id string) (*domain.StaffUser, error)

	// GetByEmail возвращает сотрудника по email (для входа)
	GetByEmail(ctx context.Context, email string) (*domain.StaffUser, error)

	// Create сохраняет нового сотрудника
	Create(ctx context.Context, user *domain.StaffUser) error

	// Update перезаписывает запись сотрудника
	Update(ctx context.Context, user *domain.StaffUser) error

	// Delete удаляет сотрудника
	Delete(ctx context.Context, id string) error
}
