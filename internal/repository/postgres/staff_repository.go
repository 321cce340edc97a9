package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/transport-admin/internal/domain"
	"github.com/transport-admin/internal/domain/repository"
	"github.com/transport-admin/internal/pkg/errors"
	"go.uber.org/zap"
)

type staffRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewStaffRepository(db *DB) repository.StaffRepository {
	return &staffRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

const staffColumns = `
	id, auth_uid, username, email, password_hash, icon_url, profile_url,
	created_at, updated_at
`

func (r *staffRepository) List(ctx context.Context) ([]*domain.StaffUser, error) {
	query := `SELECT ` + staffColumns + ` FROM staff ORDER BY username`

	var users []*domain.StaffUser
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		r.logger.Error("Failed to list staff", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return users, nil
}

func (r *staffRepository) GetByID(ctx context.Context, id string) (*domain.StaffUser, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE id = $1`

	var user domain.StaffUser
	err := r.db.GetContext(ctx, &user, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrStaffNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get staff by ID", zap.String("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &user, nil
}

func (r *staffRepository) GetByEmail(ctx context.Context, email string) (*domain.StaffUser, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE email = $1`

	var user domain.StaffUser
	err := r.db.GetContext(ctx, &user, query, email)
	if err == sql.ErrNoRows {
		return nil, errors.ErrStaffNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get staff by email", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &user, nil
}

func (r *staffRepository) Create(ctx context.Context, user *domain.StaffUser) error {
	query := `
		INSERT INTO staff (id, auth_uid, username, email, password_hash, icon_url, profile_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.AuthUID, user.Username, user.Email,
		user.PasswordHash, user.IconURL, user.ProfileURL,
	)
	if err != nil {
		r.logger.Error("Failed to create staff user", zap.String("id", user.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *staffRepository) Update(ctx context.Context, user *domain.StaffUser) error {
	query := `
		UPDATE staff SET
			auth_uid = $2, username = $3, email = $4, password_hash = $5,
			icon_url = $6, profile_url = $7, updated_at = now()
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		user.ID, user.AuthUID, user.Username, user.Email,
		user.PasswordHash, user.IconURL, user.ProfileURL,
	)
	if err != nil {
		r.logger.Error("Failed to update staff user", zap.String("id", user.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return errors.ErrStaffNotFound
	}

	return nil
}

func (r *staffRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM staff WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete staff user", zap.String("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return errors.ErrStaffNotFound
	}

	return nil
}
