package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/transport-admin/internal/delivery/http/middleware"
	"github.com/transport-admin/internal/pkg/errors"
	"github.com/transport-admin/internal/pkg/utils"
	"github.com/transport-admin/internal/usecase"
	"github.com/transport-admin/internal/usecase/dto"
	"go.uber.org/zap"
)

// RouteHandler - обработчик CRUD маршрутов
type RouteHandler struct {
	routeUC *usecase.RouteUseCase
	logger  *zap.Logger
}

// NewRouteHandler - создание нового RouteHandler
func NewRouteHandler(routeUC *usecase.RouteUseCase, logger *zap.Logger) *RouteHandler {
	return &RouteHandler{
		routeUC: routeUC,
		logger:  logger,
	}
}

// List godoc
// @Summary Список маршрутов
// @Tags Routes
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Route}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/routes [get]
func (h *RouteHandler) List(c *fiber.Ctx) error {
	routes, err := h.routeUC.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, routes, &utils.Meta{Total: len(routes)})
}

// Get godoc
// @Summary Маршрут по ID
// @Tags Routes
// @Produce json
// @Param id path string true "ID маршрута"
// @Success 200 {object} utils.SuccessResponse{data=domain.Route}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/routes/{id} [get]
func (h *RouteHandler) Get(c *fiber.Ctx) error {
	route, err := h.routeUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, route, nil)
}

// Create godoc
// @Summary Создание маршрута
// @Description Валидирует и сохраняет новый маршрут; событие попадает в ленту уведомлений
// @Tags Routes
// @Accept json
// @Produce json
// @Param request body dto.RouteRequest true "Данные маршрута"
// @Success 201 {object} utils.SuccessResponse{data=domain.Route}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/routes [post]
func (h *RouteHandler) Create(c *fiber.Ctx) error {
	var req dto.RouteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	route, err := h.routeUC.Create(c.Context(), req, middleware.ActorFromCtx(c))
	if err != nil {
		return utils.SendError(c, err)
	}

	c.Status(fiber.StatusCreated)
	return utils.SendSuccess(c, route, nil)
}

// Update godoc
// @Summary Обновление маршрута
// @Description Перезаписывает маршрут; изменение расписания публикуется отдельным событием
// @Tags Routes
// @Accept json
// @Produce json
// @Param id path string true "ID маршрута"
// @Param request body dto.RouteRequest true "Данные маршрута"
// @Success 200 {object} utils.SuccessResponse{data=domain.Route}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/routes/{id} [put]
func (h *RouteHandler) Update(c *fiber.Ctx) error {
	var req dto.RouteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	route, err := h.routeUC.Update(c.Context(), c.Params("id"), req, middleware.ActorFromCtx(c))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, route, nil)
}

// Delete godoc
// @Summary Удаление маршрута
// @Tags Routes
// @Produce json
// @Param id path string true "ID маршрута"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/routes/{id} [delete]
func (h *RouteHandler) Delete(c *fiber.Ctx) error {
	if err := h.routeUC.Delete(c.Context(), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"deleted": true}, nil)
}
