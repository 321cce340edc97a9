package postgres_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/transport-admin/internal/domain"
	"github.com/transport-admin/internal/domain/repository"
	"github.com/transport-admin/internal/pkg/errors"
	"github.com/transport-admin/internal/repository/postgres/testhelpers"
)

// RouteRepositoryTestSuite tests all methods of RouteRepository
type RouteRepositoryTestSuite struct {
	suite.Suite
	testDB *testhelpers.TestDB
	repo   repository.RouteRepository
	ctx    context.Context
}

// SetupSuite runs once before all tests in the suite
func (s *RouteRepositoryTestSuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())

	err := testhelpers.ApplyMigrations(s.testDB.DB.DB, "../../../migrations")
	s.NoError(err, "Failed to apply migrations")

	s.repo = testhelpers.NewRouteRepositoryForTest(s.testDB.DB, s.testDB.Logger)
}

// TearDownSuite runs once after all tests in the suite
func (s *RouteRepositoryTestSuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

// SetupTest runs before each test
func (s *RouteRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	err := s.testDB.Cleanup(s.ctx)
	s.NoError(err)
}

func (s *RouteRepositoryTestSuite) newRoute(number, title string) *domain.Route {
	r := &domain.Route{
		ID:                   uuid.New().String(),
		Number:               number,
		Title:                title,
		Fare:                 "30",
		CityID:               1,
		DepartureTimes:       []string{"06:30", "07:00"},
		IntervalBetweenStops: []int{5, 7},
		Stops:                []string{"s-1", "s-2"},
		IsLowFloor:           true,
	}
	r.Normalize()
	return r
}

func (s *RouteRepositoryTestSuite) TestCreateAndGetByID() {
	route := s.newRoute("23", "Вокзал - Аэропорт")

	err := s.repo.Create(s.ctx, route)
	s.NoError(err)

	got, err := s.repo.GetByID(s.ctx, route.ID)
	s.NoError(err)
	s.Equal(route.Number, got.Number)
	s.Equal(route.Title, got.Title)
	s.Equal([]string{"06:30", "07:00"}, got.DepartureTimes)
	s.Equal([]int{5, 7}, got.IntervalBetweenStops)
	s.Equal([]string{"s-1", "s-2"}, got.Stops)
	s.True(got.IsLowFloor)
	s.False(got.CreatedAt.IsZero())
}

func (s *RouteRepositoryTestSuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(s.ctx, uuid.New().String())
	s.Equal(errors.ErrRouteNotFound, err)
}

func (s *RouteRepositoryTestSuite) TestCreate_EmptyArraysRoundTrip() {
	route := s.newRoute("7", "Кольцевой")
	route.DepartureTimes = []string{}
	route.WeekendDepartureTimes = []string{}
	route.IntervalBetweenStops = []int{}
	route.Stops = []string{}

	err := s.repo.Create(s.ctx, route)
	s.NoError(err)

	got, err := s.repo.GetByID(s.ctx, route.ID)
	s.NoError(err)
	s.Equal([]string{}, got.DepartureTimes)
	s.Equal([]string{}, got.WeekendDepartureTimes)
	s.Equal([]int{}, got.IntervalBetweenStops)
	s.Equal([]string{}, got.Stops)
}

func (s *RouteRepositoryTestSuite) TestList_OrderedByNumber() {
	s.NoError(s.repo.Create(s.ctx, s.newRoute("7", "Кольцевой")))
	s.NoError(s.repo.Create(s.ctx, s.newRoute("23", "Вокзал - Аэропорт")))

	routes, err := s.repo.List(s.ctx)
	s.NoError(err)
	s.Len(routes, 2)
	s.Equal("23", routes[0].Number)
	s.Equal("7", routes[1].Number)
}

func (s *RouteRepositoryTestSuite) TestUpdate() {
	route := s.newRoute("23", "Вокзал - Аэропорт")
	s.NoError(s.repo.Create(s.ctx, route))

	route.Title = "Вокзал - Аэропорт (экспресс)"
	route.DepartureTimes = []string{"06:00"}
	err := s.repo.Update(s.ctx, route)
	s.NoError(err)

	got, err := s.repo.GetByID(s.ctx, route.ID)
	s.NoError(err)
	s.Equal("Вокзал - Аэропорт (экспресс)", got.Title)
	s.Equal([]string{"06:00"}, got.DepartureTimes)
	s.True(got.UpdatedAt.After(got.CreatedAt) || got.UpdatedAt.Equal(got.CreatedAt))
}

func (s *RouteRepositoryTestSuite) TestUpdate_NotFound() {
	route := s.newRoute("99", "Несуществующий")
	err := s.repo.Update(s.ctx, route)
	s.Equal(errors.ErrRouteNotFound, err)
}

func (s *RouteRepositoryTestSuite) TestDelete() {
	route := s.newRoute("23", "Вокзал - Аэропорт")
	s.NoError(s.repo.Create(s.ctx, route))

	err := s.repo.Delete(s.ctx, route.ID)
	s.NoError(err)

	_, err = s.repo.GetByID(s.ctx, route.ID)
	s.Equal(errors.ErrRouteNotFound, err)

	err = s.repo.Delete(s.ctx, route.ID)
	s.Equal(errors.ErrRouteNotFound, err)
}

func TestRouteRepositorySuite(t *testing.T) {
	suite.Run(t, new(RouteRepositoryTestSuite))
}
