package presence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/transport-admin/internal/domain"
)

// MockPresenceRepository is a mock of PresenceRepository
type MockPresenceRepository struct {
	mock.Mock
}

func (m *MockPresenceRepository) SetMarker(ctx context.Context, marker *domain.PresenceMarker, ttl time.Duration) error {
	args := m.Called(ctx, marker, ttl)
	return args.Error(0)
}

func (m *MockPresenceRepository) GetMarkers(ctx context.Context) ([]*domain.PresenceMarker, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PresenceMarker), args.Error(1)
}

func (m *MockPresenceRepository) WriteUserLog(ctx context.Context, userID, minuteBucket string) error {
	args := m.Called(ctx, userID, minuteBucket)
	return args.Error(0)
}

func (m *MockPresenceRepository) ReadUserLogs(ctx context.Context) (map[string][]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]string), args.Error(1)
}

func (m *MockPresenceRepository) WriteAggregate(ctx context.Context, dateKey, timeKey string, count int) error {
	args := m.Called(ctx, dateKey, timeKey, count)
	return args.Error(0)
}

func (m *MockPresenceRepository) ReadAggregate(ctx context.Context, dateKey string) ([]domain.PresenceSummaryEntry, error) {
	args := m.Called(ctx, dateKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PresenceSummaryEntry), args.Error(1)
}

func TestAggregatorWorker_RunOnce(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	at := time.Date(2024, 1, 1, 10, 5, 23, 0, time.UTC)

	t.Run("writes online count into the run minute", func(t *testing.T) {
		repo := &MockPresenceRepository{}
		w := NewAggregatorWorker(repo, 5*time.Minute, logger)

		repo.On("GetMarkers", ctx).Return([]*domain.PresenceMarker{
			{UserID: "u1", Online: true},
			{UserID: "u2", Online: true},
			{UserID: "u3", Online: false},
		}, nil)
		repo.On("WriteAggregate", ctx, "2024-01-01", "10:05", 2).Return(nil)

		err := w.runOnce(ctx, at)

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("no markers writes explicit zero", func(t *testing.T) {
		repo := &MockPresenceRepository{}
		w := NewAggregatorWorker(repo, 5*time.Minute, logger)

		repo.On("GetMarkers", ctx).Return([]*domain.PresenceMarker{}, nil)
		repo.On("WriteAggregate", ctx, "2024-01-01", "10:05", 0).Return(nil)

		err := w.runOnce(ctx, at)

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("read failure leaves the minute without a record", func(t *testing.T) {
		repo := &MockPresenceRepository{}
		w := NewAggregatorWorker(repo, 5*time.Minute, logger)

		repo.On("GetMarkers", ctx).Return(nil, assert.AnError)

		err := w.runOnce(ctx, at)

		assert.Error(t, err)
		repo.AssertNotCalled(t, "WriteAggregate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("local timezone input still produces UTC keys", func(t *testing.T) {
		repo := &MockPresenceRepository{}
		w := NewAggregatorWorker(repo, 5*time.Minute, logger)

		loc := time.FixedZone("UTC+3", 3*60*60)
		localAt := time.Date(2024, 1, 2, 1, 30, 0, 0, loc) // 2024-01-01 22:30 UTC

		repo.On("GetMarkers", ctx).Return([]*domain.PresenceMarker{
			{UserID: "u1", Online: true},
		}, nil)
		repo.On("WriteAggregate", ctx, "2024-01-01", "22:30", 1).Return(nil)

		err := w.runOnce(ctx, localAt)

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestAggregatorWorker_StopBeforeTick(t *testing.T) {
	logger := zap.NewNop()

	repo := &MockPresenceRepository{}
	w := NewAggregatorWorker(repo, time.Hour, logger)

	done := make(chan error, 1)
	go func() {
		done <- w.Start(context.Background())
	}()

	assert.NoError(t, w.Stop())

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop in time")
	}

	repo.AssertNotCalled(t, "GetMarkers", mock.Anything)
}
