package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/transport-admin/internal/pkg/errors"
	"github.com/transport-admin/internal/pkg/utils"
	"github.com/transport-admin/internal/usecase"
	"github.com/transport-admin/internal/usecase/dto"
	"go.uber.org/zap"
)

// AuthHandler - обработчик аутентификации
type AuthHandler struct {
	authUC *usecase.AuthUseCase
	logger *zap.Logger
}

// NewAuthHandler - создание нового AuthHandler
func NewAuthHandler(authUC *usecase.AuthUseCase, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
		logger: logger,
	}
}

// SignIn godoc
// @Summary Вход в панель управления
// @Description Проверяет учётные данные и возвращает токен доступа
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.SignInRequest true "Учётные данные"
// @Success 200 {object} utils.SuccessResponse{data=dto.SignInResponse}
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/auth/sign-in [post]
func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	var req dto.SignInRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.authUC.SignIn(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
