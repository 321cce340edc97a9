package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/transport-admin/internal/domain"
	"github.com/transport-admin/internal/domain/repository"
	"github.com/transport-admin/internal/pkg/errors"
	"go.uber.org/zap"
)

type dictionaryRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewDictionaryRepository(db *DB) repository.DictionaryRepository {
	return &dictionaryRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// Справочники маленькие, поэтому все операции - простые запросы
// без пагинации; upsert перезаписывает запись целиком.

func (r *dictionaryRepository) ListTypes(ctx context.Context) ([]*domain.RouteType, error) {
	var types []*domain.RouteType
	if err := r.db.SelectContext(ctx, &types, `SELECT id, name, color FROM types ORDER BY name`); err != nil {
		r.logger.Error("Failed to list types", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return types, nil
}

func (r *dictionaryRepository) SaveType(ctx context.Context, t *domain.RouteType) error {
	query := `
		INSERT INTO types (id, name, color) VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, color = EXCLUDED.color
	`
	if _, err := r.db.ExecContext(ctx, query, t.ID, t.Name, t.Color); err != nil {
		r.logger.Error("Failed to save type", zap.String("id", t.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

func (r *dictionaryRepository) DeleteType(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM types WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete type", zap.String("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return errors.ErrDictionaryNotFound
	}
	return nil
}

func (r *dictionaryRepository) ListCities(ctx context.Context) ([]*domain.City, error) {
	var cities []*domain.City
	if err := r.db.SelectContext(ctx, &cities, `SELECT id, name FROM cities ORDER BY name`); err != nil {
		r.logger.Error("Failed to list cities", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return cities, nil
}

func (r *dictionaryRepository) SaveCity(ctx context.Context, c *domain.City) error {
	query := `
		INSERT INTO cities (id, name) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name
	`
	if _, err := r.db.ExecContext(ctx, query, c.ID, c.Name); err != nil {
		r.logger.Error("Failed to save city", zap.Int("id", c.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

func (r *dictionaryRepository) DeleteCity(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM cities WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete city", zap.Int("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return errors.ErrDictionaryNotFound
	}
	return nil
}

func (r *dictionaryRepository) ListSizes(ctx context.Context) ([]*domain.VehicleSize, error) {
	var sizes []*domain.VehicleSize
	if err := r.db.SelectContext(ctx, &sizes, `SELECT id, name FROM sizes ORDER BY name`); err != nil {
		r.logger.Error("Failed to list sizes", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return sizes, nil
}

func (r *dictionaryRepository) SaveSize(ctx context.Context, s *domain.VehicleSize) error {
	query := `
		INSERT INTO sizes (id, name) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name
	`
	if _, err := r.db.ExecContext(ctx, query, s.ID, s.Name); err != nil {
		r.logger.Error("Failed to save size", zap.String("id", s.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

func (r *dictionaryRepository) DeleteSize(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM sizes WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete size", zap.String("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return errors.ErrDictionaryNotFound
	}
	return nil
}
