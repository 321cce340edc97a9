package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/transport-admin/internal/domain"
	"github.com/transport-admin/internal/domain/repository"
	"go.uber.org/zap"
)

// Ключи присутствия. Детальный per-user лог и агрегированный скалярный лог
// делят общий префикс presence:log:, но второй сегмент у них разный
// (user id против календарной даты) - два независимых набора данных.
const (
	markerKeyPrefix  = "presence:marker:"
	userLogKeyPrefix = "presence:log:user:"
	aggLogKeyPrefix  = "presence:log:agg:"

	scanBatchSize = 100
)

type presenceRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewPresenceRepository создает новый экземпляр PresenceRepository
func NewPresenceRepository(client *redis.Client, logger *zap.Logger) repository.PresenceRepository {
	return &presenceRepository{
		client: client,
		logger: logger,
	}
}

// SetMarker перезаписывает маркер присутствия целиком. TTL играет роль
// "last-will": сессия, переставшая слать heartbeat, исчезает из маркеров
// и читается как offline.
func (r *presenceRepository) SetMarker(ctx context.Context, marker *domain.PresenceMarker, ttl time.Duration) error {
	data, err := json.Marshal(marker)
	if err != nil {
		return fmt.Errorf("marshal presence marker: %w", err)
	}

	key := markerKeyPrefix + marker.UserID
	if err := r.client.Set(ctx, key, data, ttl).Err(); err != nil {
		r.logger.Error("Failed to set presence marker",
			zap.String("user_id", marker.UserID),
			zap.Error(err))
		return fmt.Errorf("set presence marker: %w", err)
	}

	r.logger.Debug("Presence marker written",
		zap.String("user_id", marker.UserID),
		zap.Bool("online", marker.Online))
	return nil
}

// GetMarkers читает все маркеры одним проходом SCAN. Снимок не
// транзакционен: маркеры, меняющиеся во время обхода, могут быть
// учтены по-старому или по-новому.
func (r *presenceRepository) GetMarkers(ctx context.Context) ([]*domain.PresenceMarker, error) {
	keys, err := r.scanKeys(ctx, markerKeyPrefix+"*")
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return []*domain.PresenceMarker{}, nil
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		r.logger.Error("Failed to read presence markers", zap.Error(err))
		return nil, fmt.Errorf("read presence markers: %w", err)
	}

	markers := make([]*domain.PresenceMarker, 0, len(values))
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			continue // ключ истёк между SCAN и MGET
		}
		var m domain.PresenceMarker
		if err := json.Unmarshal([]byte(s), &m); err != nil {
			r.logger.Warn("Skipping malformed presence marker",
				zap.String("key", keys[i]),
				zap.Error(err))
			continue
		}
		markers = append(markers, &m)
	}

	return markers, nil
}

// WriteUserLog отмечает присутствие пользователя в минутной корзине
func (r *presenceRepository) WriteUserLog(ctx context.Context, userID, minuteBucket string) error {
	key := userLogKeyPrefix + userID + ":" + minuteBucket
	if err := r.client.Set(ctx, key, "1", 0).Err(); err != nil {
		r.logger.Error("Failed to write presence log entry",
			zap.String("user_id", userID),
			zap.String("bucket", minuteBucket),
			zap.Error(err))
		return fmt.Errorf("write presence log: %w", err)
	}
	return nil
}

// ReadUserLogs читает весь детальный лог: userID -> минутные корзины
func (r *presenceRepository) ReadUserLogs(ctx context.Context) (map[string][]string, error) {
	keys, err := r.scanKeys(ctx, userLogKeyPrefix+"*")
	if err != nil {
		return nil, err
	}

	logs := make(map[string][]string)
	for _, key := range keys {
		rest := strings.TrimPrefix(key, userLogKeyPrefix)
		// uid и корзина разделены последним двоеточием перед ISO-минутой
		idx := strings.LastIndex(rest, ":")
		if idx <= 0 || idx == len(rest)-1 {
			continue
		}
		// ISO-минута сама содержит двоеточие ("2006-01-02T15:04"),
		// поэтому отступаем на два сегмента
		timeIdx := strings.LastIndex(rest[:idx], ":")
		if timeIdx <= 0 {
			continue
		}
		uid := rest[:timeIdx]
		bucket := rest[timeIdx+1:]
		logs[uid] = append(logs[uid], bucket)
	}

	for uid := range logs {
		sort.Strings(logs[uid])
	}

	return logs, nil
}

// WriteAggregate пишет скалярный счётчик за минуту запуска,
// перезаписывая прежнее значение этой минуты
func (r *presenceRepository) WriteAggregate(ctx context.Context, dateKey, timeKey string, count int) error {
	key := aggLogKeyPrefix + dateKey + ":" + timeKey
	if err := r.client.Set(ctx, key, count, 0).Err(); err != nil {
		r.logger.Error("Failed to write aggregated presence count",
			zap.String("date", dateKey),
			zap.String("time", timeKey),
			zap.Error(err))
		return fmt.Errorf("write aggregated presence: %w", err)
	}

	r.logger.Debug("Aggregated presence count written",
		zap.String("date", dateKey),
		zap.String("time", timeKey),
		zap.Int("count", count))
	return nil
}

// ReadAggregate читает скалярный лог за календарную дату
func (r *presenceRepository) ReadAggregate(ctx context.Context, dateKey string) ([]domain.PresenceSummaryEntry, error) {
	prefix := aggLogKeyPrefix + dateKey + ":"
	keys, err := r.scanKeys(ctx, prefix+"*")
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return []domain.PresenceSummaryEntry{}, nil
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		r.logger.Error("Failed to read aggregated presence log", zap.Error(err))
		return nil, fmt.Errorf("read aggregated presence: %w", err)
	}

	entries := make([]domain.PresenceSummaryEntry, 0, len(keys))
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			continue
		}
		var count int
		if _, err := fmt.Sscanf(s, "%d", &count); err != nil {
			continue
		}
		entries = append(entries, domain.PresenceSummaryEntry{
			Time:  strings.TrimPrefix(keys[i], prefix),
			Count: count,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Time < entries[j].Time
	})

	return entries, nil
}

func (r *presenceRepository) scanKeys(ctx context.Context, pattern string) ([]string, error) {
	var keys []string
	var cursor uint64

	for {
		batch, next, err := r.client.Scan(ctx, cursor, pattern, scanBatchSize).Result()
		if err != nil {
			r.logger.Error("Failed to scan presence keys",
				zap.String("pattern", pattern),
				zap.Error(err))
			return nil, fmt.Errorf("scan presence keys: %w", err)
		}
		keys = append(keys, batch...)
		cursor = next
		if cursor == 0 {
			break
		}
	}

	return keys, nil
}
