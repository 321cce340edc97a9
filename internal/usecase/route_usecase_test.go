package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/transport-admin/internal/domain"
	"github.com/transport-admin/internal/pkg/errors"
	"github.com/transport-admin/internal/usecase"
	"github.com/transport-admin/internal/usecase/dto"
)

// routeRequestFixture возвращает минимально полный запрос маршрута
func routeRequestFixture() dto.RouteRequest {
	return dto.RouteRequest{
		Number:         "23",
		Title:          "Вокзал - Аэропорт",
		CarrierCompany: "ГорТранс",
		Description:    "Прямой маршрут до аэропорта",
		Fare:           "30",
		CityID:         1,
		TypeID:         "bus",
		Stops:          []string{"s-1", "s-2"},
	}
}

func TestRouteUseCase_Create(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	actor := usecase.Actor{UserID: "op-1", UserName: "Мария"}

	t.Run("optional fields default to empty values", func(t *testing.T) {
		routeRepo := &MockRouteRepository{}
		streamRepo := &MockStreamRepository{}
		uc := usecase.NewRouteUseCase(routeRepo, streamRepo, logger)

		var saved *domain.Route
		routeRepo.On("Create", ctx, mock.AnythingOfType("*domain.Route")).
			Run(func(args mock.Arguments) {
				saved = args.Get(1).(*domain.Route)
			}).
			Return(nil)
		streamRepo.On("PublishToStream", ctx, domain.StreamNotifications, mock.Anything).
			Return(nil)

		route, err := uc.Create(ctx, routeRequestFixture(), actor)

		assert.NoError(t, err)
		assert.NotNil(t, route)
		assert.NotEmpty(t, route.ID)
		assert.Equal(t, "", saved.Following)
		assert.Equal(t, "", saved.SizeID)
		assert.Equal(t, "", saved.TechInfo)
		assert.Equal(t, "", saved.WorkingHours)
		assert.Equal(t, []string{}, saved.DepartureTimes)
		assert.Equal(t, []string{}, saved.WeekendDepartureTimes)
		assert.Equal(t, []int{}, saved.IntervalBetweenStops)

		routeRepo.AssertExpectations(t)
		streamRepo.AssertExpectations(t)
	})

	t.Run("publishes route_added event", func(t *testing.T) {
		routeRepo := &MockRouteRepository{}
		streamRepo := &MockStreamRepository{}
		uc := usecase.NewRouteUseCase(routeRepo, streamRepo, logger)

		routeRepo.On("Create", ctx, mock.AnythingOfType("*domain.Route")).Return(nil)
		streamRepo.On("PublishToStream", ctx, domain.StreamNotifications,
			mock.MatchedBy(func(data interface{}) bool {
				ev, ok := data.(domain.NotificationEvent)
				return ok && ev.Type == domain.NotificationRouteAdded && ev.UserID == "op-1"
			})).Return(nil)

		req := routeRequestFixture()
		req.Number = "5А"
		req.Title = "Центр - Депо"
		req.DepartureTimes = []string{"06:30", "07:00"}

		_, err := uc.Create(ctx, req, actor)

		assert.NoError(t, err)
		streamRepo.AssertExpectations(t)
	})

	t.Run("malformed departure time rejects the record", func(t *testing.T) {
		routeRepo := &MockRouteRepository{}
		streamRepo := &MockStreamRepository{}
		uc := usecase.NewRouteUseCase(routeRepo, streamRepo, logger)

		req := routeRequestFixture()
		req.DepartureTimes = []string{"25:00"}

		route, err := uc.Create(ctx, req, actor)

		assert.Error(t, err)
		assert.Nil(t, route)
		routeRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		streamRepo.AssertNotCalled(t, "PublishToStream", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing required fields rejected", func(t *testing.T) {
		routeRepo := &MockRouteRepository{}
		streamRepo := &MockStreamRepository{}
		uc := usecase.NewRouteUseCase(routeRepo, streamRepo, logger)

		_, err := uc.Create(ctx, dto.RouteRequest{Title: "Без номера", CityID: 1}, actor)

		assert.Equal(t, errors.ErrValidationFailed, err)
	})

	t.Run("route without carrier fare type or stops rejected", func(t *testing.T) {
		routeRepo := &MockRouteRepository{}
		streamRepo := &MockStreamRepository{}
		uc := usecase.NewRouteUseCase(routeRepo, streamRepo, logger)

		// Заполнены только номер, название и город: перевозчик, описание,
		// тариф, тип и остановки пустые
		req := dto.RouteRequest{
			Number: "12",
			Title:  "Центр - Вокзал",
			CityID: 1,
		}

		route, err := uc.Create(ctx, req, actor)

		assert.Equal(t, errors.ErrValidationFailed, err)
		assert.Nil(t, route)
		routeRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		streamRepo.AssertNotCalled(t, "PublishToStream", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("empty stops list rejected", func(t *testing.T) {
		routeRepo := &MockRouteRepository{}
		streamRepo := &MockStreamRepository{}
		uc := usecase.NewRouteUseCase(routeRepo, streamRepo, logger)

		req := routeRequestFixture()
		req.Stops = []string{}

		_, err := uc.Create(ctx, req, actor)

		assert.Equal(t, errors.ErrValidationFailed, err)
		routeRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestRouteUseCase_Update(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	actor := usecase.Actor{UserID: "op-2", UserName: "Иван"}

	existing := &domain.Route{
		ID:             "route-1",
		Number:         "12",
		Title:          "Порт - Рынок",
		CityID:         1,
		DepartureTimes: []string{"08:00"},
	}

	updateRequest := func() dto.RouteRequest {
		req := routeRequestFixture()
		req.Number = "12"
		req.Title = "Порт - Рынок"
		req.DepartureTimes = []string{"08:00"}
		return req
	}

	t.Run("schedule change publishes schedule_changed", func(t *testing.T) {
		routeRepo := &MockRouteRepository{}
		streamRepo := &MockStreamRepository{}
		uc := usecase.NewRouteUseCase(routeRepo, streamRepo, logger)

		routeRepo.On("GetByID", ctx, "route-1").Return(existing, nil)
		routeRepo.On("Update", ctx, mock.AnythingOfType("*domain.Route")).Return(nil)
		streamRepo.On("PublishToStream", ctx, domain.StreamNotifications,
			mock.MatchedBy(func(data interface{}) bool {
				ev, ok := data.(domain.NotificationEvent)
				return ok && ev.Type == domain.NotificationScheduleChanged && ev.EntityID == "route-1"
			})).Return(nil)

		req := updateRequest()
		req.DepartureTimes = []string{"08:00", "09:00"}

		route, err := uc.Update(ctx, "route-1", req, actor)

		assert.NoError(t, err)
		assert.Equal(t, []string{"08:00", "09:00"}, route.DepartureTimes)
		streamRepo.AssertExpectations(t)
	})

	t.Run("unchanged schedule publishes nothing", func(t *testing.T) {
		routeRepo := &MockRouteRepository{}
		streamRepo := &MockStreamRepository{}
		uc := usecase.NewRouteUseCase(routeRepo, streamRepo, logger)

		routeRepo.On("GetByID", ctx, "route-1").Return(existing, nil)
		routeRepo.On("Update", ctx, mock.AnythingOfType("*domain.Route")).Return(nil)

		req := updateRequest()
		req.Title = "Порт - Рынок (новое описание)"

		_, err := uc.Update(ctx, "route-1", req, actor)

		assert.NoError(t, err)
		streamRepo.AssertNotCalled(t, "PublishToStream", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing route propagates not found", func(t *testing.T) {
		routeRepo := &MockRouteRepository{}
		streamRepo := &MockStreamRepository{}
		uc := usecase.NewRouteUseCase(routeRepo, streamRepo, logger)

		routeRepo.On("GetByID", ctx, "ghost").Return(nil, errors.ErrRouteNotFound)

		_, err := uc.Update(ctx, "ghost", updateRequest(), actor)

		assert.Equal(t, errors.ErrRouteNotFound, err)
	})
}
