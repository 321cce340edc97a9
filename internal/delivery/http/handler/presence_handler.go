package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/transport-admin/internal/delivery/http/middleware"
	"github.com/transport-admin/internal/pkg/utils"
	"github.com/transport-admin/internal/usecase"
	"github.com/transport-admin/internal/usecase/dto"
	"go.uber.org/zap"
)

// PresenceHandler - обработчик присутствия операторов
type PresenceHandler struct {
	presenceUC *usecase.PresenceUseCase
	logger     *zap.Logger
}

// NewPresenceHandler - создание нового PresenceHandler
func NewPresenceHandler(presenceUC *usecase.PresenceUseCase, logger *zap.Logger) *PresenceHandler {
	return &PresenceHandler{
		presenceUC: presenceUC,
		logger:     logger,
	}
}

// Heartbeat godoc
// @Summary Сигнал активной сессии
// @Description Продлевает маркер присутствия и отмечает активность в детальном логе. Оператор определяется по токену.
// @Tags Presence
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/presence/heartbeat [post]
func (h *PresenceHandler) Heartbeat(c *fiber.Ctx) error {
	// Сессия пишет только собственный маркер: id берётся из токена,
	// телу запроса здесь доверять нельзя
	actor := middleware.ActorFromCtx(c)
	req := dto.HeartbeatRequest{UserID: actor.UserID}

	if err := h.presenceUC.Heartbeat(c.Context(), req); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"ok": true}, nil)
}

// Offline godoc
// @Summary Явное завершение сессии
// @Description Помечает сессию текущего оператора завершённой. Оператор определяется по токену.
// @Tags Presence
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/presence/offline [post]
func (h *PresenceHandler) Offline(c *fiber.Ctx) error {
	actor := middleware.ActorFromCtx(c)
	req := dto.OfflineRequest{UserID: actor.UserID}

	if err := h.presenceUC.Offline(c.Context(), req); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"ok": true}, nil)
}

// Current godoc
// @Summary Текущее присутствие
// @Description Возвращает маркеры сессий и число операторов онлайн
// @Tags Presence
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.PresenceResponse}
// @Router /api/v1/presence [get]
func (h *PresenceHandler) Current(c *fiber.Ctx) error {
	result, err := h.presenceUC.Current(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// History godoc
// @Summary Временной ряд активности
// @Description Инвертирует детальный лог в ряд "минута - число уникальных операторов"
// @Tags Presence
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.PresenceHistoryResponse}
// @Router /api/v1/presence/history [get]
func (h *PresenceHandler) History(c *fiber.Ctx) error {
	result, err := h.presenceUC.History(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Summary godoc
// @Summary Агрегированный лог за дату
// @Tags Presence
// @Produce json
// @Param date query string true "Дата в формате YYYY-MM-DD"
// @Success 200 {object} utils.SuccessResponse{data=dto.PresenceSummaryResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/presence/summary [get]
func (h *PresenceHandler) Summary(c *fiber.Ctx) error {
	req := dto.PresenceSummaryRequest{Date: c.Query("date")}

	result, err := h.presenceUC.Summary(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
