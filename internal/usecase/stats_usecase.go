package usecase

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/transport-admin/internal/domain"
	"github.com/transport-admin/internal/domain/repository"
	"github.com/transport-admin/internal/pkg/utils"
	"go.uber.org/zap"
)

// StatsUseCase считает сводные метрики панели управления за один проход
// по коллекциям и кеширует результат с TTL
type StatsUseCase struct {
	routeRepo    repository.RouteRepository
	stopRepo     repository.StopRepository
	dictRepo     repository.DictionaryRepository
	presenceRepo repository.PresenceRepository
	cacheRepo    repository.CacheRepository
	cacheTTL     time.Duration
	logger       *zap.Logger
}

func NewStatsUseCase(
	routeRepo repository.RouteRepository,
	stopRepo repository.StopRepository,
	dictRepo repository.DictionaryRepository,
	presenceRepo repository.PresenceRepository,
	cacheRepo repository.CacheRepository,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *StatsUseCase {
	return &StatsUseCase{
		routeRepo:    routeRepo,
		stopRepo:     stopRepo,
		dictRepo:     dictRepo,
		presenceRepo: presenceRepo,
		cacheRepo:    cacheRepo,
		cacheTTL:     cacheTTL,
		logger:       logger,
	}
}

// Dashboard возвращает сводные метрики, при возможности из кеша
func (uc *StatsUseCase) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	cached, err := uc.cacheRepo.GetDashboardStats(ctx)
	if err != nil {
		uc.logger.Warn("Dashboard stats cache read failed", zap.Error(err))
	}
	if cached != nil {
		return cached, nil
	}

	stats, err := uc.compute(ctx)
	if err != nil {
		return nil, err
	}

	if err := uc.cacheRepo.SetDashboardStats(ctx, stats, uc.cacheTTL); err != nil {
		uc.logger.Warn("Dashboard stats cache write failed", zap.Error(err))
	}

	return stats, nil
}

// Latency возвращает среднюю задержку запросов по сохранённым измерениям
func (uc *StatsUseCase) Latency(ctx context.Context) (*domain.LatencyStats, error) {
	samples, err := uc.cacheRepo.LatencySamples(ctx)
	if err != nil {
		return nil, err
	}

	if len(samples) == 0 {
		return &domain.LatencyStats{}, nil
	}

	var sum float64
	for _, s := range samples {
		sum += s
	}

	return &domain.LatencyStats{
		AvgMillis: math.Round(sum/float64(len(samples))*100) / 100,
		Samples:   len(samples),
	}, nil
}

func (uc *StatsUseCase) compute(ctx context.Context) (*domain.DashboardStats, error) {
	routes, err := uc.routeRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	stops, err := uc.stopRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	stopsByID := make(map[string]*domain.Stop, len(stops))
	for _, s := range stops {
		stopsByID[s.ID] = s
	}

	stats := &domain.DashboardStats{
		TotalRoutes: len(routes),
		TotalStops:  len(stops),
		GeneratedAt: time.Now().UTC(),
	}

	var totalStopsOnRoutes int
	var routesWithLength int
	typeCounts := make(map[string]int)

	for _, r := range routes {
		totalStopsOnRoutes += len(r.Stops)
		if r.TypeID != "" {
			typeCounts[r.TypeID]++
		}
		if r.IsComplete() {
			stats.DataQuality.CompleteRoutes++
		}
		if !utils.ValidTimeList(r.DepartureTimes) || !utils.ValidTimeList(r.WeekendDepartureTimes) {
			stats.ValidationErrors++
		}

		length := routeLengthKm(r, stopsByID)
		if length > 0 {
			stats.TotalMileageKm += length
			routesWithLength++
		}
	}

	for _, s := range stops {
		if s.IsComplete() {
			stats.DataQuality.CompleteStops++
		}
		if !s.HasValidCoordinates() {
			stats.ValidationErrors++
		}
	}

	if len(routes) > 0 {
		stats.AvgStopsPerRoute = round2(float64(totalStopsOnRoutes) / float64(len(routes)))
		stats.DataQuality.RoutesPercent = round2(float64(stats.DataQuality.CompleteRoutes) / float64(len(routes)) * 100)
	}
	if routesWithLength > 0 {
		stats.AvgRouteLengthKm = round2(stats.TotalMileageKm / float64(routesWithLength))
	}
	if len(stops) > 0 {
		stats.DataQuality.StopsPercent = round2(float64(stats.DataQuality.CompleteStops) / float64(len(stops)) * 100)
	}
	stats.TotalMileageKm = round2(stats.TotalMileageKm)

	stats.TypeDistribution = uc.typeDistribution(ctx, typeCounts)

	markers, err := uc.presenceRepo.GetMarkers(ctx)
	if err != nil {
		// Панель полезна и без счётчика онлайна
		uc.logger.Warn("Failed to read presence markers for stats", zap.Error(err))
	} else {
		for _, m := range markers {
			if m.Online {
				stats.OnlineOperators++
			}
		}
	}

	return stats, nil
}

// routeLengthKm суммирует длину ломаной по остановкам маршрута.
// Остановки без валидных координат пропускаются, не обрывая сумму.
func routeLengthKm(r *domain.Route, stopsByID map[string]*domain.Stop) float64 {
	points := make([][2]float64, 0, len(r.Stops))
	for _, stopID := range r.Stops {
		stop, ok := stopsByID[stopID]
		if !ok {
			continue
		}
		lat, lon, ok := stop.Coordinates()
		if !ok || !utils.ValidateCoordinates(lat, lon) {
			continue
		}
		points = append(points, [2]float64{lat, lon})
	}
	return utils.PolylineLengthKm(points)
}

func (uc *StatsUseCase) typeDistribution(ctx context.Context, counts map[string]int) []domain.TypeCount {
	names := make(map[string]string)
	types, err := uc.dictRepo.ListTypes(ctx)
	if err != nil {
		uc.logger.Warn("Failed to load route types for stats", zap.Error(err))
	} else {
		for _, t := range types {
			names[t.ID] = t.Name
		}
	}

	result := make([]domain.TypeCount, 0, len(counts))
	for typeID, count := range counts {
		result = append(result, domain.TypeCount{
			TypeID: typeID,
			Name:   names[typeID],
			Count:  count,
		})
	}

	// Стабильный порядок: по убыванию числа маршрутов, затем по ID
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].TypeID < result[j].TypeID
	})

	return result
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
