package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/transport-admin/internal/domain"
	"github.com/transport-admin/internal/domain/repository"
	"github.com/transport-admin/internal/pkg/errors"
	"github.com/transport-admin/internal/pkg/utils"
	"github.com/transport-admin/internal/pkg/validator"
	"github.com/transport-admin/internal/usecase/dto"
	"go.uber.org/zap"
)

// Actor - оператор, от имени которого выполняется запись
// (берётся из токена аутентификации)
type Actor struct {
	UserID   string
	UserName string
}

type RouteUseCase struct {
	routeRepo  repository.RouteRepository
	streamRepo repository.StreamRepository
	logger     *zap.Logger
}

func NewRouteUseCase(
	routeRepo repository.RouteRepository,
	streamRepo repository.StreamRepository,
	logger *zap.Logger,
) *RouteUseCase {
	return &RouteUseCase{
		routeRepo:  routeRepo,
		streamRepo: streamRepo,
		logger:     logger,
	}
}

// List возвращает все маршруты
func (uc *RouteUseCase) List(ctx context.Context) ([]*domain.Route, error) {
	return uc.routeRepo.List(ctx)
}

// GetByID возвращает маршрут по ID
func (uc *RouteUseCase) GetByID(ctx context.Context, id string) (*domain.Route, error) {
	return uc.routeRepo.GetByID(ctx, id)
}

// Create валидирует и сохраняет новый маршрут. Запись, не прошедшая
// валидацию, отклоняется и в хранилище не попадает.
func (uc *RouteUseCase) Create(ctx context.Context, req dto.RouteRequest, actor Actor) (*domain.Route, error) {
	if err := validator.Validate(req); err != nil {
		uc.logger.Warn("Route validation failed", zap.Error(err))
		return nil, errors.ErrValidationFailed.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		})
	}
	if !utils.ValidTimeList(req.DepartureTimes) || !utils.ValidTimeList(req.WeekendDepartureTimes) {
		return nil, errors.ErrInvalidSchedule
	}

	now := time.Now().UTC()
	route := uc.buildRoute(uuid.New().String(), req, now, now)

	if err := uc.routeRepo.Create(ctx, route); err != nil {
		return nil, err
	}

	uc.logger.Info("Route created",
		zap.String("id", route.ID),
		zap.String("number", route.Number))

	uc.publish(ctx, domain.NotificationEvent{
		Type:       domain.NotificationRouteAdded,
		Message:    fmt.Sprintf("Добавлен маршрут №%s «%s»", route.Number, route.Title),
		UserID:     actor.UserID,
		UserName:   actor.UserName,
		Timestamp:  now.UnixMilli(),
		EntityID:   route.ID,
		EntityType: domain.EntityRoute,
	})

	return route, nil
}

// Update перезаписывает маршрут. Если изменились поля расписания,
// публикуется отдельное событие schedule_changed.
func (uc *RouteUseCase) Update(ctx context.Context, id string, req dto.RouteRequest, actor Actor) (*domain.Route, error) {
	if err := validator.Validate(req); err != nil {
		uc.logger.Warn("Route validation failed", zap.String("id", id), zap.Error(err))
		return nil, errors.ErrValidationFailed.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		})
	}
	if !utils.ValidTimeList(req.DepartureTimes) || !utils.ValidTimeList(req.WeekendDepartureTimes) {
		return nil, errors.ErrInvalidSchedule
	}

	existing, err := uc.routeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	route := uc.buildRoute(id, req, existing.CreatedAt, now)

	if err := uc.routeRepo.Update(ctx, route); err != nil {
		return nil, err
	}

	uc.logger.Info("Route updated", zap.String("id", id))

	if existing.HasScheduleChange(route) {
		uc.publish(ctx, domain.NotificationEvent{
			Type:       domain.NotificationScheduleChanged,
			Message:    fmt.Sprintf("Изменено расписание маршрута №%s", route.Number),
			UserID:     actor.UserID,
			UserName:   actor.UserName,
			Timestamp:  now.UnixMilli(),
			EntityID:   route.ID,
			EntityType: domain.EntityRoute,
		})
	}

	return route, nil
}

// Delete удаляет маршрут
func (uc *RouteUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.routeRepo.Delete(ctx, id); err != nil {
		return err
	}
	uc.logger.Info("Route deleted", zap.String("id", id))
	return nil
}

func (uc *RouteUseCase) buildRoute(id string, req dto.RouteRequest, createdAt, updatedAt time.Time) *domain.Route {
	route := &domain.Route{
		ID:                    id,
		Number:                req.Number,
		Title:                 req.Title,
		CarrierCompany:        req.CarrierCompany,
		Description:           req.Description,
		Following:             req.Following,
		Fare:                  req.Fare,
		CityID:                req.CityID,
		DepartureTimes:        req.DepartureTimes,
		WeekendDepartureTimes: req.WeekendDepartureTimes,
		IntervalBetweenStops:  req.IntervalBetweenStops,
		Stops:                 req.Stops,
		IsCashAccepted:        req.IsCashAccepted,
		IsEcological:          req.IsEcological,
		IsLowFloor:            req.IsLowFloor,
		IsQRCodeAvailable:     req.IsQRCodeAvailable,
		IsWifiAvailable:       req.IsWifiAvailable,
		SizeID:                req.SizeID,
		TypeID:                req.TypeID,
		TechInfo:              req.TechInfo,
		WorkingHours:          req.WorkingHours,
		CreatedAt:             createdAt,
		UpdatedAt:             updatedAt,
	}
	route.Normalize()
	return route
}

// publish отправляет событие в стрим уведомлений. Сбой публикации не
// откатывает запись данных, лента просто не получит это событие.
func (uc *RouteUseCase) publish(ctx context.Context, event domain.NotificationEvent) {
	if err := uc.streamRepo.PublishToStream(ctx, domain.StreamNotifications, event); err != nil {
		uc.logger.Warn("Failed to publish notification event",
			zap.String("type", string(event.Type)),
			zap.Error(err))
	}
}
