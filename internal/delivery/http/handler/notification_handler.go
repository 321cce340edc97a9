package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/transport-admin/internal/pkg/utils"
	"github.com/transport-admin/internal/usecase"
	"github.com/transport-admin/internal/usecase/dto"
	"go.uber.org/zap"
)

// NotificationHandler - обработчик ленты уведомлений
type NotificationHandler struct {
	notifUC *usecase.NotificationUseCase
	logger  *zap.Logger
}

// NewNotificationHandler - создание нового NotificationHandler
func NewNotificationHandler(notifUC *usecase.NotificationUseCase, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{
		notifUC: notifUC,
		logger:  logger,
	}
}

// List godoc
// @Summary Лента уведомлений
// @Description Возвращает ленту по убыванию времени. Вкладка important эквивалентна фильтру type=invalid_record.
// @Tags Notifications
// @Produce json
// @Param tab query string false "Вкладка (all, unread, important)" default(all)
// @Param type query string false "Фильтр по типу события"
// @Param user_id query string false "Фильтр по автору"
// @Success 200 {object} utils.SuccessResponse{data=dto.NotificationListResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	filter := dto.NotificationFilter{
		Tab:    c.Query("tab", "all"),
		Type:   c.Query("type"),
		UserID: c.Query("user_id"),
	}

	result, err := h.notifUC.List(c.Context(), filter)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total:  len(result.Items),
		Unread: result.Unread,
	})
}

// MarkRead godoc
// @Summary Прочтение одного уведомления
// @Description Идемпотентно: повторный вызов возвращает успех без изменений
// @Tags Notifications
// @Produce json
// @Param id path string true "ID уведомления"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	if err := h.notifUC.MarkRead(c.Context(), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"read": true}, nil)
}

// MarkAllRead godoc
// @Summary Прочтение всех уведомлений
// @Description Помечает все непрочитанные одной операцией
// @Tags Notifications
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.MarkAllReadResponse}
// @Router /api/v1/notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	result, err := h.notifUC.MarkAllRead(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
