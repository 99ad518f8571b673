package agenda

import (
	"context"
	"fmt"
	"healthcal-service/internal/app/config"
	"healthcal-service/internal/app/contracts"
	"healthcal-service/internal/app/services/core/calendar"
	"healthcal-service/internal/pkg/constvars"
	"healthcal-service/internal/pkg/dto/requests"
	"healthcal-service/internal/pkg/utils"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const leaderLockTTL = 2 * time.Minute

// Worker publishes the coach's agenda for the current day on a cron schedule.
// Only the instance holding the leader lock publishes.
type Worker struct {
	log      *zap.Logger
	cfg      *config.InternalConfig
	locker   contracts.LockerService
	calls    contracts.CallRepository
	notifier contracts.NotifierService
	now      func() time.Time
	stop     chan struct{}
	cron     *cron.Cron
	runCtx   context.Context
	cancel   context.CancelFunc
}

func NewWorker(log *zap.Logger, cfg *config.InternalConfig, lockerSvc contracts.LockerService, callRepository contracts.CallRepository, notifier contracts.NotifierService) *Worker {
	return &Worker{
		log:      log,
		cfg:      cfg,
		locker:   lockerSvc,
		calls:    callRepository,
		notifier: notifier,
		now:      time.Now,
		stop:     make(chan struct{}),
	}
}

func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New(cron.WithLocation(time.Local))
	_, err := c.AddFunc(w.cfg.App.AgendaCronSpec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("agenda.worker: invalid cron spec, falling back to @daily",
			zap.String("cron_spec", w.cfg.App.AgendaCronSpec),
			zap.Error(err),
		)
		c = cron.New(cron.WithLocation(time.Local))
		_, _ = c.AddFunc("@daily", func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
	w.log.Info("agenda.worker: started", zap.String("cron_spec", w.cfg.App.AgendaCronSpec))
}

// Stop waits for a running publish to finish.
func (w *Worker) Stop() {
	select {
	case <-w.stop:
	default:
		close(w.stop)
	}
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		<-w.cron.Stop().Done()
	}
}

func (w *Worker) runOnce(ctx context.Context) {
	acquired, token, err := w.locker.TryLock(ctx, constvars.RedisKeyAgendaLock, leaderLockTTL)
	if err != nil {
		w.log.Warn("agenda.worker: leader lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Info("agenda.worker: leader lock held by another instance")
		return
	}
	defer func() {
		if err := w.locker.Unlock(context.WithoutCancel(ctx), constvars.RedisKeyAgendaLock, token); err != nil {
			w.log.Warn("agenda.worker: failed to release leader lock", zap.Error(err))
		}
	}()

	refreshCtx, cancelRefresh := context.WithCancel(ctx)
	defer cancelRefresh()
	go w.refreshLeaderLock(refreshCtx, token)

	calls, err := w.calls.LoadAll(ctx)
	if err != nil {
		w.log.Warn("agenda.worker: loading calls failed", zap.Error(err))
		return
	}

	agenda := BuildAgenda(calls, utils.StartOfDay(w.now()), w.now())
	err = w.notifier.PublishAgenda(ctx, agenda)
	if err != nil {
		w.log.Warn("agenda.worker: publishing agenda failed",
			zap.String(constvars.LoggingDateKey, agenda.Date),
			zap.Error(err),
		)
		return
	}
	w.log.Info("agenda.worker: agenda published",
		zap.String(constvars.LoggingDateKey, agenda.Date),
		zap.Int(constvars.LoggingCallCountKey, len(agenda.Calls)),
	)
}

func (w *Worker) refreshLeaderLock(ctx context.Context, token string) {
	tick := time.NewTicker(leaderLockTTL / 2)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stop:
			return
		case <-tick.C:
			if err := w.locker.Refresh(ctx, constvars.RedisKeyAgendaLock, token, leaderLockTTL); err != nil {
				w.log.Warn("agenda.worker: failed to refresh leader lock", zap.Error(err))
			}
		}
	}
}

// BuildAgenda lists the occurrences of day in start order.
func BuildAgenda(calls []calendar.Call, day, occurredAt time.Time) *requests.AgendaEvent {
	occurrences := calendar.Materialize(calls, day)
	date := day.Format(constvars.DateLayout)

	entries := make([]requests.AgendaEntry, len(occurrences))
	for i, occurrence := range occurrences {
		info := occurrence.Call.Info()
		entries[i] = requests.AgendaEntry{
			CallID:     info.ID,
			Kind:       string(occurrence.Call.Kind()),
			CallType:   string(occurrence.Type()),
			ClientID:   info.ClientID,
			ClientName: info.ClientName,
			StartTime:  occurrence.Start,
			EndTime:    occurrence.End(),
		}
	}

	return &requests.AgendaEvent{
		Event:       constvars.EventAgendaDaily,
		Date:        date,
		Title:       constvars.NotificationTitleDailyAgenda,
		Description: fmt.Sprintf(constvars.NotificationDescriptionDailyAgenda, len(entries), date),
		Calls:       entries,
		OccurredAt:  occurredAt,
	}
}
