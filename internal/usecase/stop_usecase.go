package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/transport-admin/internal/domain"
	"github.com/transport-admin/internal/domain/repository"
	"github.com/transport-admin/internal/pkg/errors"
	"github.com/transport-admin/internal/pkg/validator"
	"github.com/transport-admin/internal/usecase/dto"
	"go.uber.org/zap"
)

type StopUseCase struct {
	stopRepo   repository.StopRepository
	streamRepo repository.StreamRepository
	logger     *zap.Logger
}

func NewStopUseCase(
	stopRepo repository.StopRepository,
	streamRepo repository.StreamRepository,
	logger *zap.Logger,
) *StopUseCase {
	return &StopUseCase{
		stopRepo:   stopRepo,
		streamRepo: streamRepo,
		logger:     logger,
	}
}

// List возвращает все остановки
func (uc *StopUseCase) List(ctx context.Context) ([]*domain.Stop, error) {
	return uc.stopRepo.List(ctx)
}

// GetByID возвращает остановку по ID
func (uc *StopUseCase) GetByID(ctx context.Context, id string) (*domain.Stop, error) {
	return uc.stopRepo.GetByID(ctx, id)
}

// Create валидирует и сохраняет новую остановку. Координаты вне
// диапазонов или не парсящиеся как числа отклоняют запись.
func (uc *StopUseCase) Create(ctx context.Context, req dto.StopRequest, actor Actor) (*domain.Stop, error) {
	if err := validator.Validate(req); err != nil {
		uc.logger.Warn("Stop validation failed", zap.Error(err))
		return nil, errors.ErrInvalidCoordinates.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		})
	}

	now := time.Now().UTC()
	stop := uc.buildStop(uuid.New().String(), req, now, now)

	if err := uc.stopRepo.Create(ctx, stop); err != nil {
		return nil, err
	}

	uc.logger.Info("Stop created",
		zap.String("id", stop.ID),
		zap.String("name", stop.Name))

	uc.publish(ctx, domain.NotificationEvent{
		Type:       domain.NotificationStopAdded,
		Message:    fmt.Sprintf("Добавлена остановка «%s»", stop.Name),
		UserID:     actor.UserID,
		UserName:   actor.UserName,
		Timestamp:  now.UnixMilli(),
		EntityID:   stop.ID,
		EntityType: domain.EntityStop,
	})

	return stop, nil
}

// Update перезаписывает остановку целиком
func (uc *StopUseCase) Update(ctx context.Context, id string, req dto.StopRequest) (*domain.Stop, error) {
	if err := validator.Validate(req); err != nil {
		uc.logger.Warn("Stop validation failed", zap.String("id", id), zap.Error(err))
		return nil, errors.ErrInvalidCoordinates.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		})
	}

	existing, err := uc.stopRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	stop := uc.buildStop(id, req, existing.CreatedAt, time.Now().UTC())

	if err := uc.stopRepo.Update(ctx, stop); err != nil {
		return nil, err
	}

	uc.logger.Info("Stop updated", zap.String("id", id))
	return stop, nil
}

// Delete удаляет остановку
func (uc *StopUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.stopRepo.Delete(ctx, id); err != nil {
		return err
	}
	uc.logger.Info("Stop deleted", zap.String("id", id))
	return nil
}

func (uc *StopUseCase) buildStop(id string, req dto.StopRequest, createdAt, updatedAt time.Time) *domain.Stop {
	return &domain.Stop{
		ID:          id,
		Name:        req.Name,
		Direction:   req.Direction,
		CityID:      req.CityID,
		KindRouteID: req.KindRouteID,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		TypeID:      req.TypeID,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

func (uc *StopUseCase) publish(ctx context.Context, event domain.NotificationEvent) {
	if err := uc.streamRepo.PublishToStream(ctx, domain.StreamNotifications, event); err != nil {
		uc.logger.Warn("Failed to publish notification event",
			zap.String("type", string(event.Type)),
			zap.Error(err))
	}
}
