package presence

import (
	"context"
	"time"

	"github.com/transport-admin/internal/domain/repository"
	"github.com/transport-admin/internal/pkg/utils"
	"github.com/transport-admin/internal/worker"
	"go.uber.org/zap"
)

// AggregatorWorker периодически снимает срез присутствия: считает
// операторов онлайн по маркерам и пишет скалярный счётчик в
// агрегированный лог минуты запуска. Пустой набор маркеров - это
// валидный срез со значением 0.
type AggregatorWorker struct {
	*worker.BaseWorker
	presenceRepo repository.PresenceRepository
	interval     time.Duration
	now          func() time.Time
}

// NewAggregatorWorker создает новый AggregatorWorker
func NewAggregatorWorker(
	presenceRepo repository.PresenceRepository,
	interval time.Duration,
	logger *zap.Logger,
) *AggregatorWorker {
	return &AggregatorWorker{
		BaseWorker:   worker.NewBaseWorker("presence-aggregator", "", logger),
		presenceRepo: presenceRepo,
		interval:     interval,
		now:          time.Now,
	}
}

// Start запускает периодическую агрегацию
func (w *AggregatorWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting AggregatorWorker",
		zap.Duration("interval", w.interval))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		case <-ticker.C:
			// Сбой одного запуска не останавливает воркер,
			// минута просто останется без записи
			if err := w.runOnce(ctx, w.now()); err != nil {
				logger.Error("Presence aggregation failed", zap.Error(err))
			}
		}
	}
}

// runOnce выполняет один запуск агрегации на момент времени t
func (w *AggregatorWorker) runOnce(ctx context.Context, t time.Time) error {
	markers, err := w.presenceRepo.GetMarkers(ctx)
	if err != nil {
		return err
	}

	count := 0
	for _, m := range markers {
		if m.Online {
			count++
		}
	}

	dateKey := utils.PresenceDateKey(t)
	timeKey := utils.PresenceTimeKey(t)

	if err := w.presenceRepo.WriteAggregate(ctx, dateKey, timeKey, count); err != nil {
		return err
	}

	w.Logger().Debug("Presence snapshot aggregated",
		zap.String("date", dateKey),
		zap.String("time", timeKey),
		zap.Int("online", count))

	return nil
}
