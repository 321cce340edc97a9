package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/transport-admin/internal/domain"
	"github.com/transport-admin/internal/domain/repository"
	"github.com/transport-admin/internal/worker"
	"go.uber.org/zap"
)

// FeedWorker читает события ввода данных из стрима и превращает их в
// записи ленты уведомлений
type FeedWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	notifRepo    repository.NotificationRepository
	consumerName string
}

// NewFeedWorker создает новый FeedWorker
func NewFeedWorker(
	streamRepo repository.StreamRepository,
	notifRepo repository.NotificationRepository,
	consumerGroup string,
	logger *zap.Logger,
) *FeedWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &FeedWorker{
		BaseWorker:   worker.NewBaseWorker("notification-feed", consumerGroup, logger),
		streamRepo:   streamRepo,
		notifRepo:    notifRepo,
		consumerName: consumerName,
	}
}

// Start запускает воркер
func (w *FeedWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting FeedWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamNotifications, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	consumeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	msgChan, err := w.streamRepo.ConsumeStream(consumeCtx, domain.StreamNotifications, w.ConsumerGroup(), w.consumerName)
	if err != nil {
		return fmt.Errorf("failed to consume stream: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		case msg, ok := <-msgChan:
			if !ok {
				logger.Info("Stream channel closed")
				return nil
			}
			w.handleMessage(ctx, msg)
		}
	}
}

// handleMessage превращает событие в запись ленты. Битые сообщения
// подтверждаются и пропускаются, чтобы не блокировать группу; сбой
// записи оставляет сообщение неподтверждённым для повторной доставки.
func (w *FeedWorker) handleMessage(ctx context.Context, msg domain.StreamMessage) {
	logger := w.Logger()

	var event domain.NotificationEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		logger.Warn("Failed to parse notification event, skipping",
			zap.String("message_id", msg.ID),
			zap.Error(err))
		_ = w.streamRepo.AckMessage(ctx, domain.StreamNotifications, w.ConsumerGroup(), msg.ID)
		return
	}

	n := &domain.Notification{
		ID:         uuid.New().String(),
		Type:       event.Type,
		Message:    event.Message,
		Details:    event.Details,
		UserID:     event.UserID,
		UserName:   event.UserName,
		Timestamp:  event.Timestamp,
		Read:       false,
		EntityID:   event.EntityID,
		EntityType: event.EntityType,
	}

	if err := w.notifRepo.Insert(ctx, n); err != nil {
		logger.Error("Failed to persist notification",
			zap.String("message_id", msg.ID),
			zap.Error(err))
		return
	}

	if err := w.streamRepo.AckMessage(ctx, domain.StreamNotifications, w.ConsumerGroup(), msg.ID); err != nil {
		logger.Warn("Failed to ack message",
			zap.String("message_id", msg.ID),
			zap.Error(err))
	}

	logger.Debug("Notification persisted",
		zap.String("id", n.ID),
		zap.String("type", string(n.Type)))
}
