package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/transport-admin/internal/domain"
	"github.com/transport-admin/internal/domain/repository"
	"github.com/transport-admin/internal/pkg/errors"
	"github.com/transport-admin/internal/pkg/utils"
	"github.com/transport-admin/internal/pkg/validator"
	"github.com/transport-admin/internal/usecase/dto"
	"go.uber.org/zap"
)

type PresenceUseCase struct {
	presenceRepo repository.PresenceRepository
	markerTTL    time.Duration
	logger       *zap.Logger
}

func NewPresenceUseCase(
	presenceRepo repository.PresenceRepository,
	markerTTL time.Duration,
	logger *zap.Logger,
) *PresenceUseCase {
	return &PresenceUseCase{
		presenceRepo: presenceRepo,
		markerTTL:    markerTTL,
		logger:       logger,
	}
}

// Heartbeat продлевает маркер присутствия и отмечает активность в
// детальном логе текущей минуты
func (uc *PresenceUseCase) Heartbeat(ctx context.Context, req dto.HeartbeatRequest) error {
	if err := validator.Validate(req); err != nil {
		return errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		})
	}

	now := time.Now().UTC()
	marker := &domain.PresenceMarker{
		UserID:   req.UserID,
		Online:   true,
		LastSeen: now,
	}

	if err := uc.presenceRepo.SetMarker(ctx, marker, uc.markerTTL); err != nil {
		return err
	}

	if err := uc.presenceRepo.WriteUserLog(ctx, req.UserID, utils.PresenceMinuteBucket(now)); err != nil {
		// Детальный лог вторичен, heartbeat уже принят
		uc.logger.Warn("Failed to write presence log",
			zap.String("user_id", req.UserID),
			zap.Error(err))
	}

	return nil
}

// Offline явно помечает сессию завершённой. Маркер остаётся с тем же
// TTL, чтобы чтения видели offline, а не отсутствие записи.
func (uc *PresenceUseCase) Offline(ctx context.Context, req dto.OfflineRequest) error {
	if err := validator.Validate(req); err != nil {
		return errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		})
	}

	marker := &domain.PresenceMarker{
		UserID:   req.UserID,
		Online:   false,
		LastSeen: time.Now().UTC(),
	}

	return uc.presenceRepo.SetMarker(ctx, marker, uc.markerTTL)
}

// Current возвращает текущие маркеры и число операторов онлайн
func (uc *PresenceUseCase) Current(ctx context.Context) (*dto.PresenceResponse, error) {
	markers, err := uc.presenceRepo.GetMarkers(ctx)
	if err != nil {
		return nil, err
	}

	online := 0
	for _, m := range markers {
		if m.Online {
			online++
		}
	}

	return &dto.PresenceResponse{
		Online:  online,
		Markers: markers,
	}, nil
}

// History инвертирует детальный per-user лог во временной ряд:
// минута -> число уникальных операторов, по возрастанию времени
func (uc *PresenceUseCase) History(ctx context.Context) (*dto.PresenceHistoryResponse, error) {
	logs, err := uc.presenceRepo.ReadUserLogs(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, buckets := range logs {
		seen := make(map[string]struct{}, len(buckets))
		for _, b := range buckets {
			// Один пользователь считается в минуте один раз
			if _, ok := seen[b]; ok {
				continue
			}
			seen[b] = struct{}{}
			counts[b]++
		}
	}

	points := make([]domain.ActivityPoint, 0, len(counts))
	for bucket, online := range counts {
		points = append(points, domain.ActivityPoint{Bucket: bucket, Online: online})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Bucket < points[j].Bucket
	})

	return &dto.PresenceHistoryResponse{Points: points}, nil
}

// Summary возвращает агрегированный скалярный лог за дату
func (uc *PresenceUseCase) Summary(ctx context.Context, req dto.PresenceSummaryRequest) (*dto.PresenceSummaryResponse, error) {
	if err := validator.Validate(req); err != nil {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		})
	}

	entries, err := uc.presenceRepo.ReadAggregate(ctx, req.Date)
	if err != nil {
		return nil, err
	}

	return &dto.PresenceSummaryResponse{
		Date:    req.Date,
		Entries: entries,
	}, nil
}
