package usecase

import (
	"context"

	"github.com/transport-admin/internal/domain"
	"github.com/transport-admin/internal/domain/repository"
	"github.com/transport-admin/internal/pkg/errors"
	"github.com/transport-admin/internal/pkg/validator"
	"github.com/transport-admin/internal/usecase/dto"
	"go.uber.org/zap"
)

type NotificationUseCase struct {
	notifRepo repository.NotificationRepository
	logger    *zap.Logger
}

func NewNotificationUseCase(notifRepo repository.NotificationRepository, logger *zap.Logger) *NotificationUseCase {
	return &NotificationUseCase{
		notifRepo: notifRepo,
		logger:    logger,
	}
}

// List возвращает ленту по убыванию времени с применением фильтров.
// Вкладка "important" эквивалентна фильтру type=invalid_record.
func (uc *NotificationUseCase) List(ctx context.Context, filter dto.NotificationFilter) (*dto.NotificationListResponse, error) {
	if err := validator.Validate(filter); err != nil {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		})
	}

	items, err := uc.notifRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]*domain.Notification, 0, len(items))
	for _, n := range items {
		if !matchNotification(n, filter) {
			continue
		}
		filtered = append(filtered, n)
	}

	unread, err := uc.notifRepo.CountUnread(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.NotificationListResponse{
		Items:  filtered,
		Unread: unread,
	}, nil
}

// MarkRead помечает одно уведомление прочитанным; повторный вызов
// возвращает успех без изменений
func (uc *NotificationUseCase) MarkRead(ctx context.Context, id string) error {
	return uc.notifRepo.MarkRead(ctx, id)
}

// MarkAllRead помечает прочитанными все непрочитанные одной операцией
func (uc *NotificationUseCase) MarkAllRead(ctx context.Context) (*dto.MarkAllReadResponse, error) {
	updated, err := uc.notifRepo.MarkAllRead(ctx)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Notifications marked read", zap.Int64("updated", updated))
	return &dto.MarkAllReadResponse{Updated: updated}, nil
}

func matchNotification(n *domain.Notification, f dto.NotificationFilter) bool {
	switch f.Tab {
	case "unread":
		if n.Read {
			return false
		}
	case "important":
		if !n.IsImportant() {
			return false
		}
	}
	if f.Type != "" && string(n.Type) != f.Type {
		return false
	}
	if f.UserID != "" && n.UserID != f.UserID {
		return false
	}
	return true
}
