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

// StopHandler - обработчик CRUD остановок
type StopHandler struct {
	stopUC *usecase.StopUseCase
	logger *zap.Logger
}

// NewStopHandler - создание нового StopHandler
func NewStopHandler(stopUC *usecase.StopUseCase, logger *zap.Logger) *StopHandler {
	return &StopHandler{
		stopUC: stopUC,
		logger: logger,
	}
}

// List godoc
// @Summary Список остановок
// @Tags Stops
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Stop}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/stops [get]
func (h *StopHandler) List(c *fiber.Ctx) error {
	stops, err := h.stopUC.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, stops, &utils.Meta{Total: len(stops)})
}

// Get godoc
// @Summary Остановка по ID
// @Tags Stops
// @Produce json
// @Param id path string true "ID остановки"
// @Success 200 {object} utils.SuccessResponse{data=domain.Stop}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/stops/{id} [get]
func (h *StopHandler) Get(c *fiber.Ctx) error {
	stop, err := h.stopUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, stop, nil)
}

// Create godoc
// @Summary Создание остановки
// @Description Координаты принимаются строками и валидируются как числа в допустимых диапазонах
// @Tags Stops
// @Accept json
// @Produce json
// @Param request body dto.StopRequest true "Данные остановки"
// @Success 201 {object} utils.SuccessResponse{data=domain.Stop}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/stops [post]
func (h *StopHandler) Create(c *fiber.Ctx) error {
	var req dto.StopRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	stop, err := h.stopUC.Create(c.Context(), req, middleware.ActorFromCtx(c))
	if err != nil {
		return utils.SendError(c, err)
	}

	c.Status(fiber.StatusCreated)
	return utils.SendSuccess(c, stop, nil)
}

// Update godoc
// @Summary Обновление остановки
// @Tags Stops
// @Accept json
// @Produce json
// @Param id path string true "ID остановки"
// @Param request body dto.StopRequest true "Данные остановки"
// @Success 200 {object} utils.SuccessResponse{data=domain.Stop}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/stops/{id} [put]
func (h *StopHandler) Update(c *fiber.Ctx) error {
	var req dto.StopRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	stop, err := h.stopUC.Update(c.Context(), c.Params("id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, stop, nil)
}

// Delete godoc
// @Summary Удаление остановки
// @Tags Stops
// @Produce json
// @Param id path string true "ID остановки"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/stops/{id} [delete]
func (h *StopHandler) Delete(c *fiber.Ctx) error {
	if err := h.stopUC.Delete(c.Context(), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"deleted": true}, nil)
}
