package calls

import (
	"context"
	"healthcal-service/internal/app/services/core/calendar"
	"healthcal-service/internal/pkg/dto/requests"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockCallRepository struct {
	mock.Mock
}

func (m *MockCallRepository) LoadAll(ctx context.Context) ([]calendar.Call, error) {
	args := m.Called(ctx)
	calls, _ := args.Get(0).([]calendar.Call)
	return calls, args.Error(1)
}

func (m *MockCallRepository) CreateOneTime(ctx context.Context, clientID, clientName string, startTime time.Time) (string, error) {
	args := m.Called(ctx, clientID, clientName, startTime)
	return args.String(0), args.Error(1)
}

func (m *MockCallRepository) CreateRecurring(ctx context.Context, clientID, clientName string, dayOfWeek time.Weekday, timeOfDay calendar.TimeOfDay) (string, error) {
	args := m.Called(ctx, clientID, clientName, dayOfWeek, timeOfDay)
	return args.String(0), args.Error(1)
}

func (m *MockCallRepository) Delete(ctx context.Context, callID string, kind calendar.CallKind) (calendar.Call, error) {
	args := m.Called(ctx, callID, kind)
	call, _ := args.Get(0).(calendar.Call)
	return call, args.Error(1)
}

type MockLocker struct {
	mock.Mock
}

func (m *MockLocker) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockLocker) Unlock(ctx context.Context, key, lockValue string) error {
	args := m.Called(ctx, key, lockValue)
	return args.Error(0)
}

func (m *MockLocker) Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error {
	args := m.Called(ctx, key, lockValue, expiration)
	return args.Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) PublishCallEvent(ctx context.Context, event *requests.CallEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockNotifier) PublishAgenda(ctx context.Context, agenda *requests.AgendaEvent) error {
	args := m.Called(ctx, agenda)
	return args.Error(0)
}
