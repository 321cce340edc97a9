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

type stopRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewStopRepository(db *DB) repository.StopRepository {
	return &stopRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

const stopColumns = `
	id, name, direction, city_id, kind_route_id, latitude, longitude, type_id,
	created_at, updated_at
`

func (r *stopRepository) List(ctx context.Context) ([]*domain.Stop, error) {
	query := `SELECT ` + stopColumns + ` FROM stops ORDER BY name, id`

	var stops []*domain.Stop
	if err := r.db.SelectContext(ctx, &stops, query); err != nil {
		r.logger.Error("Failed to list stops", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return stops, nil
}

func (r *stopRepository) GetByID(ctx context.Context, id string) (*domain.Stop, error) {
	query := `SELECT ` + stopColumns + ` FROM stops WHERE id = $1`

	var stop domain.Stop
	err := r.db.GetContext(ctx, &stop, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrStopNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get stop by ID", zap.String("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &stop, nil
}

func (r *stopRepository) GetByIDs(ctx context.Context, ids []string) (map[string]*domain.Stop, error) {
	if len(ids) == 0 {
		return map[string]*domain.Stop{}, nil
	}

	query := `SELECT ` + stopColumns + ` FROM stops WHERE id = ANY($1)`

	var stops []*domain.Stop
	if err := r.db.SelectContext(ctx, &stops, query, pq.Array(ids)); err != nil {
		r.logger.Error("Failed to get stops by IDs", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	result := make(map[string]*domain.Stop, len(stops))
	for _, s := range stops {
		result[s.ID] = s
	}

	return result, nil
}

func (r *stopRepository) Create(ctx context.Context, stop *domain.Stop) error {
	query := `
		INSERT INTO stops (id, name, direction, city_id, kind_route_id, latitude, longitude, type_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		stop.ID, stop.Name, stop.Direction, stop.CityID,
		stop.KindRouteID, stop.Latitude, stop.Longitude, stop.TypeID,
	)
	if err != nil {
		r.logger.Error("Failed to create stop", zap.String("id", stop.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *stopRepository) Update(ctx context.Context, stop *domain.Stop) error {
	query := `
		UPDATE stops SET
			name = $2, direction = $3, city_id = $4, kind_route_id = $5,
			latitude = $6, longitude = $7, type_id = $8, updated_at = now()
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		stop.ID, stop.Name, stop.Direction, stop.CityID,
		stop.KindRouteID, stop.Latitude, stop.Longitude, stop.TypeID,
	)
	if err != nil {
		r.logger.Error("Failed to update stop", zap.String("id", stop.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return errors.ErrStopNotFound
	}

	return nil
}

func (r *stopRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM stops WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete stop", zap.String("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return errors.ErrStopNotFound
	}

	return nil
}
