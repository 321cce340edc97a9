package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/transport-admin/internal/domain"
	"github.com/transport-admin/internal/domain/repository"
	"github.com/transport-admin/internal/pkg/errors"
	"go.uber.org/zap"
)

type routeRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewRouteRepository(db *DB) repository.RouteRepository {
	return &routeRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

const routeColumns = `
	id, number, title, carrier_company, description, following, fare, city_id,
	departure_times, weekend_departure_times, interval_between_stops, stops,
	is_cash_accepted, is_ecological, is_low_floor, is_qr_code_available, is_wifi_available,
	size_id, type_id, tech_info, working_hours, created_at, updated_at
`

func (r *routeRepository) List(ctx context.Context) ([]*domain.Route, error) {
	query := `SELECT ` + routeColumns + ` FROM routes ORDER BY number, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to list routes", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	var routes []*domain.Route
	for rows.Next() {
		route, err := scanRoute(rows)
		if err != nil {
			r.logger.Error("Failed to scan route", zap.Error(err))
			continue
		}
		routes = append(routes, route)
	}

	return routes, nil
}

func (r *routeRepository) GetByID(ctx context.Context, id string) (*domain.Route, error) {
	query := `SELECT ` + routeColumns + ` FROM routes WHERE id = $1`

	row := r.db.QueryRowContext(ctx, query, id)
	route, err := scanRoute(row)
	if err == sql.ErrNoRows {
		return nil, errors.ErrRouteNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get route by ID", zap.String("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return route, nil
}

func (r *routeRepository) Create(ctx context.Context, route *domain.Route) error {
	query := `
		INSERT INTO routes (
			id, number, title, carrier_company, description, following, fare, city_id,
			departure_times, weekend_departure_times, interval_between_stops, stops,
			is_cash_accepted, is_ecological, is_low_floor, is_qr_code_available, is_wifi_available,
			size_id, type_id, tech_info, working_hours
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8,
			$9, $10, $11, $12,
			$13, $14, $15, $16, $17,
			$18, $19, $20, $21
		)
	`

	_, err := r.db.ExecContext(ctx, query,
		route.ID, route.Number, route.Title, route.CarrierCompany,
		route.Description, route.Following, route.Fare, route.CityID,
		pq.Array(route.DepartureTimes), pq.Array(route.WeekendDepartureTimes),
		pq.Array(route.IntervalBetweenStops), pq.Array(route.Stops),
		route.IsCashAccepted, route.IsEcological, route.IsLowFloor,
		route.IsQRCodeAvailable, route.IsWifiAvailable,
		route.SizeID, route.TypeID, route.TechInfo, route.WorkingHours,
	)
	if err != nil {
		r.logger.Error("Failed to create route", zap.String("id", route.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *routeRepository) Update(ctx context.Context, route *domain.Route) error {
	query := `
		UPDATE routes SET
			number = $2, title = $3, carrier_company = $4, description = $5,
			following = $6, fare = $7, city_id = $8,
			departure_times = $9, weekend_departure_times = $10,
			interval_between_stops = $11, stops = $12,
			is_cash_accepted = $13, is_ecological = $14, is_low_floor = $15,
			is_qr_code_available = $16, is_wifi_available = $17,
			size_id = $18, type_id = $19, tech_info = $20, working_hours = $21,
			updated_at = now()
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		route.ID, route.Number, route.Title, route.CarrierCompany,
		route.Description, route.Following, route.Fare, route.CityID,
		pq.Array(route.DepartureTimes), pq.Array(route.WeekendDepartureTimes),
		pq.Array(route.IntervalBetweenStops), pq.Array(route.Stops),
		route.IsCashAccepted, route.IsEcological, route.IsLowFloor,
		route.IsQRCodeAvailable, route.IsWifiAvailable,
		route.SizeID, route.TypeID, route.TechInfo, route.WorkingHours,
	)
	if err != nil {
		r.logger.Error("Failed to update route", zap.String("id", route.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return errors.ErrRouteNotFound
	}

	return nil
}

func (r *routeRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM routes WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete route", zap.String("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return errors.ErrRouteNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRoute(row rowScanner) (*domain.Route, error) {
	var route domain.Route
	var departureTimes, weekendTimes, stops pq.StringArray
	var intervals pq.Int64Array

	err := row.Scan(
		&route.ID, &route.Number, &route.Title, &route.CarrierCompany,
		&route.Description, &route.Following, &route.Fare, &route.CityID,
		&departureTimes, &weekendTimes, &intervals, &stops,
		&route.IsCashAccepted, &route.IsEcological, &route.IsLowFloor,
		&route.IsQRCodeAvailable, &route.IsWifiAvailable,
		&route.SizeID, &route.TypeID, &route.TechInfo, &route.WorkingHours,
		&route.CreatedAt, &route.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	route.DepartureTimes = departureTimes
	route.WeekendDepartureTimes = weekendTimes
	route.Stops = stops
	route.IntervalBetweenStops = make([]int, len(intervals))
	for i, v := range intervals {
		route.IntervalBetweenStops[i] = int(v)
	}
	route.Normalize()

	return &route, nil
}
