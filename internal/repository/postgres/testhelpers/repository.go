package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"github.com/transport-admin/internal/domain/repository"
	"github.com/transport-admin/internal/repository/postgres"
	"go.uber.org/zap"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewRouteRepositoryForTest creates a route repository with test database and logger
func NewRouteRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.RouteRepository {
	return postgres.NewRouteRepository(NewDBForTest(db, logger))
}

// NewStopRepositoryForTest creates a stop repository with test database and logger
func NewStopRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.StopRepository {
	return postgres.NewStopRepository(NewDBForTest(db, logger))
}

// NewStaffRepositoryForTest creates a staff repository with test database and logger
func NewStaffRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.StaffRepository {
	return postgres.NewStaffRepository(NewDBForTest(db, logger))
}

// NewDictionaryRepositoryForTest creates a dictionary repository with test database and logger
func NewDictionaryRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.DictionaryRepository {
	return postgres.NewDictionaryRepository(NewDBForTest(db, logger))
}

// NewNotificationRepositoryForTest creates a notification repository with test database and logger
func NewNotificationRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.NotificationRepository {
	return postgres.NewNotificationRepository(NewDBForTest(db, logger))
}
