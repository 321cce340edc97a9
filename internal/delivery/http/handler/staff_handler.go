package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/transport-admin/internal/domain"
	"github.com/transport-admin/internal/pkg/errors"
	"github.com/transport-admin/internal/pkg/utils"
	"github.com/transport-admin/internal/usecase"
	"go.uber.org/zap"
)

// StaffHandler - обработчик управления сотрудниками
type StaffHandler struct {
	staffUC *usecase.StaffUseCase
	logger  *zap.Logger
}

// NewStaffHandler - создание нового StaffHandler
func NewStaffHandler(staffUC *usecase.StaffUseCase, logger *zap.Logger) *StaffHandler {
	return &StaffHandler{
		staffUC: staffUC,
		logger:  logger,
	}
}

// staffRequest - тело запроса на создание/обновление сотрудника
type staffRequest struct {
	Username   string `json:"username" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password,omitempty"`
	IconURL    string `json:"icon_url"`
	ProfileURL string `json:"profile_url"`
}

// List godoc
// @Summary Список сотрудников
// @Tags Staff
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.StaffUser}
// @Router /api/v1/staff [get]
func (h *StaffHandler) List(c *fiber.Ctx) error {
	users, err := h.staffUC.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, users, &utils.Meta{Total: len(users)})
}

// Get godoc
// @Summary Сотрудник по ID
// @Tags Staff
// @Produce json
// @Param id path string true "ID сотрудника"
// @Success 200 {object} utils.SuccessResponse{data=domain.StaffUser}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/staff/{id} [get]
func (h *StaffHandler) Get(c *fiber.Ctx) error {
	user, err := h.staffUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, user, nil)
}

// Create godoc
// @Summary Создание сотрудника
// @Tags Staff
// @Accept json
// @Produce json
// @Param request body handler.staffRequest true "Данные сотрудника"
// @Success 201 {object} utils.SuccessResponse{data=domain.StaffUser}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/staff [post]
func (h *StaffHandler) Create(c *fiber.Ctx) error {
	var req staffRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	user := &domain.StaffUser{
		Username:   req.Username,
		Email:      req.Email,
		IconURL:    req.IconURL,
		ProfileURL: req.ProfileURL,
	}

	created, err := h.staffUC.Create(c.Context(), user, req.Password)
	if err != nil {
		return utils.SendError(c, err)
	}

	c.Status(fiber.StatusCreated)
	return utils.SendSuccess(c, created, nil)
}

// Update godoc
// @Summary Обновление профиля сотрудника
// @Tags Staff
// @Accept json
// @Produce json
// @Param id path string true "ID сотрудника"
// @Param request body handler.staffRequest true "Данные сотрудника"
// @Success 200 {object} utils.SuccessResponse{data=domain.StaffUser}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/staff/{id} [put]
func (h *StaffHandler) Update(c *fiber.Ctx) error {
	var req staffRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	user := &domain.StaffUser{
		ID:         c.Params("id"),
		Username:   req.Username,
		Email:      req.Email,
		IconURL:    req.IconURL,
		ProfileURL: req.ProfileURL,
	}

	updated, err := h.staffUC.Update(c.Context(), user)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, updated, nil)
}

// Delete godoc
// @Summary Удаление сотрудника
// @Tags Staff
// @Produce json
// @Param id path string true "ID сотрудника"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/staff/{id} [delete]
func (h *StaffHandler) Delete(c *fiber.Ctx) error {
	if err := h.staffUC.Delete(c.Context(), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, fiber.Map{"deleted": true}, nil)
}
