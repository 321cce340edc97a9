package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/transport-admin/internal/pkg/utils"
	"github.com/transport-admin/internal/usecase"
	"go.uber.org/zap"
)

// StatsHandler - обработчик сводных метрик панели управления
type StatsHandler struct {
	statsUC *usecase.StatsUseCase
	logger  *zap.Logger
}

// NewStatsHandler - создание нового StatsHandler
func NewStatsHandler(statsUC *usecase.StatsUseCase, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		statsUC: statsUC,
		logger:  logger,
	}
}

// Dashboard godoc
// @Summary Сводные метрики панели
// @Description Возвращает пробег, распределение по типам, качество данных и число операторов онлайн; результат кешируется с TTL
// @Tags Statistics
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=domain.DashboardStats}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/stats/dashboard [get]
func (h *StatsHandler) Dashboard(c *fiber.Ctx) error {
	stats, err := h.statsUC.Dashboard(c.Context())
	if err != nil {
		h.logger.Error("Failed to build dashboard stats", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, stats, nil)
}

// Latency godoc
// @Summary Средняя задержка запросов
// @Tags Statistics
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=domain.LatencyStats}
// @Router /api/v1/stats/latency [get]
func (h *StatsHandler) Latency(c *fiber.Ctx) error {
	stats, err := h.statsUC.Latency(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, stats, nil)
}
