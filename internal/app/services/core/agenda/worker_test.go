package agenda

import (
	"context"
	"errors"
	"healthcal-service/internal/app/config"
	"healthcal-service/internal/app/services/core/calendar"
	"healthcal-service/internal/pkg/constvars"
	"healthcal-service/internal/pkg/dto/requests"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeLocker struct {
	mu       sync.Mutex
	held     bool
	unlocked int
	err      error
}

func (l *fakeLocker) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.err != nil {
		return false, "", l.err
	}
	if l.held {
		return false, "", nil
	}
	l.held = true
	return true, "leader-token", nil
}

func (l *fakeLocker) Unlock(ctx context.Context, key, lockValue string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.held = false
	l.unlocked++
	return nil
}

func (l *fakeLocker) Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error {
	return nil
}

type fakeCalls struct {
	calls []calendar.Call
	err   error
}

func (f *fakeCalls) LoadAll(ctx context.Context) ([]calendar.Call, error) {
	return f.calls, f.err
}

func (f *fakeCalls) CreateOneTime(ctx context.Context, clientID, clientName string, startTime time.Time) (string, error) {
	return "", errors.New("not supported")
}

func (f *fakeCalls) CreateRecurring(ctx context.Context, clientID, clientName string, dayOfWeek time.Weekday, timeOfDay calendar.TimeOfDay) (string, error) {
	return "", errors.New("not supported")
}

func (f *fakeCalls) Delete(ctx context.Context, callID string, kind calendar.CallKind) (calendar.Call, error) {
	return nil, errors.New("not supported")
}

type fakeNotifier struct {
	agendas []*requests.AgendaEvent
}

func (n *fakeNotifier) PublishCallEvent(ctx context.Context, event *requests.CallEvent) error {
	return nil
}

func (n *fakeNotifier) PublishAgenda(ctx context.Context, agenda *requests.AgendaEvent) error {
	n.agendas = append(n.agendas, agenda)
	return nil
}

func wednesdayCalls() []calendar.Call {
	return []calendar.Call{
		calendar.RecurringCall{
			CallBase:  calendar.CallBase{ID: "rec", ClientID: "4", ClientName: "Priya"},
			DayOfWeek: time.Wednesday,
			TimeOfDay: calendar.TimeOfDay{Hour: 14, Minute: 10},
		},
		calendar.OneTimeCall{
			CallBase:  calendar.CallBase{ID: "one", ClientID: "1", ClientName: "Sriram"},
			StartTime: time.Date(2024, 5, 15, 10, 30, 0, 0, time.Local),
		},
		calendar.OneTimeCall{
			CallBase:  calendar.CallBase{ID: "other-day", ClientID: "2", ClientName: "Shilpa"},
			StartTime: time.Date(2024, 5, 16, 10, 30, 0, 0, time.Local),
		},
	}
}

func newTestWorker(locker *fakeLocker, calls *fakeCalls, notifier *fakeNotifier) *Worker {
	cfg := &config.InternalConfig{App: config.App{AgendaCronSpec: "0 8 * * *"}}
	w := NewWorker(zap.NewNop(), cfg, locker, calls, notifier)
	w.now = func() time.Time { return time.Date(2024, 5, 15, 8, 0, 0, 0, time.Local) }
	return w
}

func TestBuildAgenda(t *testing.T) {
	day := time.Date(2024, 5, 15, 0, 0, 0, 0, time.Local)
	agenda := BuildAgenda(wednesdayCalls(), day, day)

	assert.Equal(t, constvars.EventAgendaDaily, agenda.Event)
	assert.Equal(t, "2024-05-15", agenda.Date)
	assert.Equal(t, "Today's calls", agenda.Title)
	assert.Equal(t, "2 call(s) scheduled for 2024-05-15.", agenda.Description)
	require.Len(t, agenda.Calls, 2)

	assert.Equal(t, "Sriram", agenda.Calls[0].ClientName)
	assert.Equal(t, "onboarding", agenda.Calls[0].CallType)
	assert.Equal(t, time.Date(2024, 5, 15, 11, 10, 0, 0, time.Local), agenda.Calls[0].EndTime)
	assert.Equal(t, "Priya", agenda.Calls[1].ClientName)
	assert.Equal(t, "recurring", agenda.Calls[1].Kind)
	assert.Equal(t, time.Date(2024, 5, 15, 14, 10, 0, 0, time.Local), agenda.Calls[1].StartTime)
}

func TestBuildAgendaEmptyDay(t *testing.T) {
	day := time.Date(2024, 5, 14, 0, 0, 0, 0, time.Local)
	agenda := BuildAgenda(wednesdayCalls(), day, day)

	assert.Empty(t, agenda.Calls)
	assert.Equal(t, "0 call(s) scheduled for 2024-05-14.", agenda.Description)
}

func TestRunOncePublishesTodaysAgenda(t *testing.T) {
	locker := &fakeLocker{}
	notifier := &fakeNotifier{}
	w := newTestWorker(locker, &fakeCalls{calls: wednesdayCalls()}, notifier)

	w.runOnce(context.Background())

	require.Len(t, notifier.agendas, 1)
	assert.Equal(t, "2024-05-15", notifier.agendas[0].Date)
	assert.Len(t, notifier.agendas[0].Calls, 2)
	assert.Equal(t, 1, locker.unlocked)
	assert.False(t, locker.held)
}

func TestRunOnceSkipsWithoutLeadership(t *testing.T) {
	notifier := &fakeNotifier{}

	held := &fakeLocker{held: true}
	newTestWorker(held, &fakeCalls{calls: wednesdayCalls()}, notifier).runOnce(context.Background())
	assert.Empty(t, notifier.agendas)
	assert.Zero(t, held.unlocked)

	broken := &fakeLocker{err: errors.New("redis down")}
	newTestWorker(broken, &fakeCalls{calls: wednesdayCalls()}, notifier).runOnce(context.Background())
	assert.Empty(t, notifier.agendas)
}

func TestRunOnceLoadFailureReleasesLock(t *testing.T) {
	locker := &fakeLocker{}
	notifier := &fakeNotifier{}
	w := newTestWorker(locker, &fakeCalls{err: errors.New("no reachable servers")}, notifier)

	w.runOnce(context.Background())

	assert.Empty(t, notifier.agendas)
	assert.Equal(t, 1, locker.unlocked)
}

func TestStartFallsBackOnInvalidSpec(t *testing.T) {
	w := newTestWorker(&fakeLocker{}, &fakeCalls{}, &fakeNotifier{})
	w.cfg.App.AgendaCronSpec = "not a cron spec"

	w.Start(context.Background())
	defer w.Stop()

	require.NotNil(t, w.cron)
	assert.Len(t, w.cron.Entries(), 1)
}

func TestStopIsIdempotent(t *testing.T) {
	w := newTestWorker(&fakeLocker{}, &fakeCalls{}, &fakeNotifier{})
	w.Start(context.Background())

	w.Stop()
	assert.NotPanics(t, w.Stop)
}
