package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/transport-admin/internal/pkg/errors"
	"github.com/transport-admin/internal/pkg/utils"
	"github.com/transport-admin/internal/usecase"
	"github.com/transport-admin/internal/usecase/dto"
	"go.uber.org/zap"
)

// DictionaryHandler - обработчик справочных коллекций
type DictionaryHandler struct {
	dictUC *usecase.DictionaryUseCase
	logger *zap.Logger
}

// NewDictionaryHandler - создание нового DictionaryHandler
func NewDictionaryHandler(dictUC *usecase.DictionaryUseCase, logger *zap.Logger) *DictionaryHandler {
	return &DictionaryHandler{
		dictUC: dictUC,
		logger: logger,
	}
}

// ListTypes godoc
// @Summary Типы транспорта
// @Tags Dictionaries
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.RouteType}
// @Router /api/v1/types [get]
func (h *DictionaryHandler) ListTypes(c *fiber.Ctx) error {
	types, err := h.dictUC.ListTypes(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, types, &utils.Meta{Total: len(types)})
}

// SaveType godoc
// @Summary Сохранение типа транспорта
// @Tags Dictionaries
// @Accept json
// @Produce json
// @Param request body dto.TypeRequest true "Тип транспорта"
// @Success 200 {object} utils.SuccessResponse{data=domain.RouteType}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/types [put]
func (h *DictionaryHandler) SaveType(c *fiber.Ctx) error {
	var req dto.TypeRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	t, err := h.dictUC.SaveType(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, t, nil)
}

// DeleteType godoc
// @Summary Удаление типа транспорта
// @Tags Dictionaries
// @Produce json
// @Param id path string true "ID типа"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/types/{id} [delete]
func (h *DictionaryHandler) DeleteType(c *fiber.Ctx) error {
	if err := h.dictUC.DeleteType(c.Context(), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, fiber.Map{"deleted": true}, nil)
}

// ListCities godoc
// @Summary Города
// @Tags Dictionaries
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.City}
// @Router /api/v1/cities [get]
func (h *DictionaryHandler) ListCities(c *fiber.Ctx) error {
	cities, err := h.dictUC.ListCities(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, cities, &utils.Meta{Total: len(cities)})
}

// SaveCity godoc
// @Summary Сохранение города
// @Tags Dictionaries
// @Accept json
// @Produce json
// @Param request body dto.CityRequest true "Город"
// @Success 200 {object} utils.SuccessResponse{data=domain.City}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/cities [put]
func (h *DictionaryHandler) SaveCity(c *fiber.Ctx) error {
	var req dto.CityRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	city, err := h.dictUC.SaveCity(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, city, nil)
}

// DeleteCity godoc
// @Summary Удаление города
// @Tags Dictionaries
// @Produce json
// @Param id path int true "ID города"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/cities/{id} [delete]
func (h *DictionaryHandler) DeleteCity(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := h.dictUC.DeleteCity(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, fiber.Map{"deleted": true}, nil)
}

// ListSizes godoc
// @Summary Размеры подвижного состава
// @Tags Dictionaries
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.VehicleSize}
// @Router /api/v1/sizes [get]
func (h *DictionaryHandler) ListSizes(c *fiber.Ctx) error {
	sizes, err := h.dictUC.ListSizes(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, sizes, &utils.Meta{Total: len(sizes)})
}

// SaveSize godoc
// @Summary Сохранение размера подвижного состава
// @Tags Dictionaries
// @Accept json
// @Produce json
// @Param request body dto.SizeRequest true "Размер"
// @Success 200 {object} utils.SuccessResponse{data=domain.VehicleSize}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/sizes [put]
func (h *DictionaryHandler) SaveSize(c *fiber.Ctx) error {
	var req dto.SizeRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	size, err := h.dictUC.SaveSize(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, size, nil)
}

// DeleteSize godoc
// @Summary Удаление размера подвижного состава
// @Tags Dictionaries
// @Produce json
// @Param id path string true "ID размера"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/sizes/{id} [delete]
func (h *DictionaryHandler) DeleteSize(c *fiber.Ctx) error {
	if err := h.dictUC.DeleteSize(c.Context(), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, fiber.Map{"deleted": true}, nil)
}
