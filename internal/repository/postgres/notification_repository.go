package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/transport-admin/internal/domain"
	"github.com/transport-admin/internal/domain/repository"
	"github.com/transport-admin/internal/pkg/errors"
	"go.uber.org/zap"
)

type notificationRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewNotificationRepository(db *DB) repository.NotificationRepository {
	return &notificationRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *notificationRepository) List(ctx context.Context) ([]*domain.Notification, error) {
	query := `
		SELECT id, type, message, details, user_id, user_name, timestamp, read,
		       entity_id, entity_type
		FROM notifications
		ORDER BY timestamp DESC
	`

	var items []*domain.Notification
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		r.logger.Error("Failed to list notifications", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return items, nil
}

func (r *notificationRepository) Insert(ctx context.Context, n *domain.Notification) error {
	query := `
		INSERT INTO notifications (id, type, message, details, user_id, user_name,
		                           timestamp, read, entity_id, entity_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.ExecContext(ctx, query,
		n.ID, n.Type, n.Message, n.Details, n.UserID, n.UserName,
		n.Timestamp, n.Read, n.EntityID, n.EntityType,
	)
	if err != nil {
		r.logger.Error("Failed to insert notification", zap.String("id", n.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, id string) error {
	// Флип булевого флага коммутативен: повторный вызов ничего не меняет
	result, err := r.db.ExecContext(ctx,
		`UPDATE notifications SET read = TRUE WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to mark notification read", zap.String("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return errors.ErrNotificationNotFound
	}

	return nil
}

func (r *notificationRepository) MarkAllRead(ctx context.Context) (int64, error) {
	// Атомарный "set true where false": записи, появившиеся после начала
	// запроса, останутся непрочитанными до следующего вызова
	result, err := r.db.ExecContext(ctx,
		`UPDATE notifications SET read = TRUE WHERE read = FALSE`)
	if err != nil {
		r.logger.Error("Failed to mark all notifications read", zap.Error(err))
		return 0, errors.ErrDatabaseError
	}

	affected, _ := result.RowsAffected()
	return affected, nil
}

func (r *notificationRepository) CountUnread(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM notifications WHERE read = FALSE`)
	if err != nil {
		r.logger.Error("Failed to count unread notifications", zap.Error(err))
		return 0, errors.ErrDatabaseError
	}

	return count, nil
}
