package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/transport-admin/internal/domain"
	"github.com/transport-admin/internal/domain/repository"
	"github.com/transport-admin/internal/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type StaffUseCase struct {
	staffRepo repository.StaffRepository
	logger    *zap.Logger
}

func NewStaffUseCase(staffRepo repository.StaffRepository, logger *zap.Logger) *StaffUseCase {
	return &StaffUseCase{
		staffRepo: staffRepo,
		logger:    logger,
	}
}

// List возвращает всех сотрудников
func (uc *StaffUseCase) List(ctx context.Context) ([]*domain.StaffUser, error) {
	return uc.staffRepo.List(ctx)
}

// GetByID возвращает сотрудника по ID
func (uc *StaffUseCase) GetByID(ctx context.Context, id string) (*domain.StaffUser, error) {
	return uc.staffRepo.GetByID(ctx, id)
}

// Create заводит нового сотрудника; пароль хранится только как bcrypt-хеш
func (uc *StaffUseCase) Create(ctx context.Context, user *domain.StaffUser, password string) (*domain.StaffUser, error) {
	if len(password) < 6 {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"password": "must be at least 6 characters",
		})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password", zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	now := time.Now().UTC()
	user.ID = uuid.New().String()
	user.PasswordHash = string(hash)
	user.CreatedAt = now
	user.UpdatedAt = now

	if err := uc.staffRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	uc.logger.Info("Staff user created", zap.String("id", user.ID))
	return user, nil
}

// Update перезаписывает профиль сотрудника, не трогая хеш пароля
func (uc *StaffUseCase) Update(ctx context.Context, user *domain.StaffUser) (*domain.StaffUser, error) {
	existing, err := uc.staffRepo.GetByID(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = existing.PasswordHash
	user.CreatedAt = existing.CreatedAt
	user.UpdatedAt = time.Now().UTC()

	if err := uc.staffRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	uc.logger.Info("Staff user updated", zap.String("id", user.ID))
	return user, nil
}

// Delete удаляет сотрудника
func (uc *StaffUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.staffRepo.Delete(ctx, id); err != nil {
		return err
	}
	uc.logger.Info("Staff user deleted", zap.String("id", id))
	return nil
}
