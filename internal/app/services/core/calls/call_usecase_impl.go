package calls

import (
	"context"
	"errors"
	"fmt"
	"healthcal-service/internal/app/config"
	"healthcal-service/internal/app/contracts"
	"healthcal-service/internal/app/models"
	"healthcal-service/internal/app/services/core/calendar"
	"healthcal-service/internal/pkg/constvars"
	"healthcal-service/internal/pkg/dto/requests"
	"healthcal-service/internal/pkg/dto/responses"
	"healthcal-service/internal/pkg/exceptions"
	"healthcal-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

type callUsecase struct {
	CallRepository contracts.CallRepository
	Roster         contracts.ClientRoster
	Locker         contracts.LockerService
	Notifier       contracts.NotifierService
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
	state          *calendarState
	now            func() time.Time
}

var (
	callUsecaseInstance contracts.CallUsecase
	onceCallUsecase     sync.Once
)

func NewCallUsecase(
	callRepository contracts.CallRepository,
	roster contracts.ClientRoster,
	locker contracts.LockerService,
	notifier contracts.NotifierService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.CallUsecase {
	onceCallUsecase.Do(func() {
		callUsecaseInstance = newCallUsecase(callRepository, roster, locker, notifier, internalConfig, logger)
	})
	return callUsecaseInstance
}

func newCallUsecase(
	callRepository contracts.CallRepository,
	roster contracts.ClientRoster,
	locker contracts.LockerService,
	notifier contracts.NotifierService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) *callUsecase {
	return &callUsecase{
		CallRepository: callRepository,
		Roster:         roster,
		Locker:         locker,
		Notifier:       notifier,
		InternalConfig: internalConfig,
		Log:            logger,
		state:          &calendarState{},
		now:            time.Now,
	}
}

// GetDay never fails on a store error: it falls back to the last loaded call
// set and flags the view as stale.
func (uc *callUsecase) GetDay(ctx context.Context, day time.Time) (*responses.DayView, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("callUsecase.GetDay called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKey, day.Format(constvars.DateLayout)),
	)

	day = utils.StartOfDay(day)
	calls, err := uc.reload(ctx)
	if err != nil {
		cached, loadedAt := uc.state.snapshot()
		uc.Log.Warn("callUsecase.GetDay serving cached calls after load failure",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingCallCountKey, len(cached)),
			zap.Time("loaded_at", loadedAt),
			zap.Error(err),
		)
		view := BuildDayView(day, cached, true, constvars.ErrClientCallsLoadFailed)
		return &view, nil
	}

	view := BuildDayView(day, calls, false, "")
	uc.Log.Info("callUsecase.GetDay succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCallCountKey, len(calls)),
	)
	return &view, nil
}

func (uc *callUsecase) BookCall(ctx context.Context, input contracts.BookCallInput) (*responses.BookingResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("callUsecase.BookCall called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClientIDKey, input.ClientID),
		zap.String(constvars.LoggingCallTypeKey, string(input.CallType)),
		zap.Time(constvars.LoggingStartTimeKey, input.StartTime),
	)

	client := uc.Roster.FindByID(input.ClientID)
	if client == nil {
		return nil, exceptions.ErrUnknownBookingClient(fmt.Errorf("client %s", input.ClientID))
	}

	start := input.StartTime.In(time.Local)
	if !calendar.OnGrid(start) {
		return nil, exceptions.ErrSlotNotOnGrid(fmt.Errorf("start %s", start.Format(time.RFC3339)))
	}

	lockTTL := time.Duration(uc.InternalConfig.App.BookingLockTTLInSeconds) * time.Second
	acquired, lockValue, err := uc.Locker.TryLock(ctx, constvars.RedisKeyBookingLock, lockTTL)
	if err != nil {
		uc.Log.Error("callUsecase.BookCall error acquiring booking lock",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrBookingLockNotAcquired(nil)
	}
	defer uc.releaseBookingLock(ctx, lockValue)

	calls, err := uc.reload(ctx)
	if err != nil {
		uc.Log.Error("callUsecase.BookCall error loading calls before validation",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCallsLoad(err)
	}

	day := utils.StartOfDay(start)
	candidate := calendar.Candidate{
		ClientID:   client.ID,
		ClientName: client.Name,
		Type:       input.CallType,
		Start:      start,
	}
	err = calendar.ValidateBooking(candidate, calendar.Materialize(calls, day))
	if err != nil {
		var conflict *calendar.ConflictError
		if errors.As(err, &conflict) {
			uc.Log.Info("callUsecase.BookCall rejected overlapping booking",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingCallIDKey, conflict.CallID),
			)
			return nil, exceptions.ErrBookingConflict(err, conflict.ClientName)
		}
		return nil, exceptions.ErrServerProcess(err)
	}

	callID, err := uc.persist(ctx, calendar.NewCall("", candidate))
	if err != nil {
		uc.Log.Error("callUsecase.BookCall error persisting booking",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrBookingSave(err)
	}
	booked := calendar.NewCall(callID, candidate)

	result := &responses.BookingResult{
		CallID: callID,
		Kind:   string(booked.Kind()),
	}
	calls, err = uc.reload(ctx)
	if err != nil {
		uc.Log.Warn("callUsecase.BookCall call stored but reload failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCallIDKey, callID),
			zap.Error(err),
		)
	} else {
		view := BuildDayView(day, calls, false, "")
		result.Day = &view
	}

	uc.publish(ctx, uc.buildCallEvent(constvars.EventCallBooked, booked,
		constvars.NotificationTitleCallBooked,
		fmt.Sprintf(constvars.NotificationDescriptionCallBooked, booked.Type(), client.Name),
	))

	uc.Log.Info("callUsecase.BookCall succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCallIDKey, callID),
		zap.String(constvars.LoggingCallKindKey, string(booked.Kind())),
	)
	return result, nil
}

func (uc *callUsecase) DeleteCall(ctx context.Context, input contracts.DeleteCallInput) (*responses.DeleteResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("callUsecase.DeleteCall called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCallIDKey, input.CallID),
		zap.String(constvars.LoggingCallKindKey, string(input.Kind)),
	)

	deleted, err := uc.CallRepository.Delete(ctx, input.CallID, input.Kind)
	if err != nil {
		uc.Log.Error("callUsecase.DeleteCall error deleting call",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if isClientError(err) {
			return nil, err
		}
		return nil, exceptions.ErrBookingDelete(err)
	}

	result := &responses.DeleteResult{}
	calls, err := uc.reload(ctx)
	if err != nil {
		uc.Log.Warn("callUsecase.DeleteCall call deleted but reload failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	} else if input.Day != nil {
		view := BuildDayView(utils.StartOfDay(*input.Day), calls, false, "")
		result.Day = &view
	}

	clientName := deleted.Info().ClientName
	uc.publish(ctx, uc.buildCallEvent(constvars.EventCallDeleted, deleted,
		constvars.NotificationTitleCallDeleted,
		fmt.Sprintf(constvars.NotificationDescriptionCallDeleted, clientName),
	))

	uc.Log.Info("callUsecase.DeleteCall succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCallIDKey, input.CallID),
	)
	return result, nil
}

func (uc *callUsecase) ListCalls(ctx context.Context) ([]responses.Call, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("callUsecase.ListCalls called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	calls, err := uc.reload(ctx)
	if err != nil {
		uc.Log.Error("callUsecase.ListCalls error loading calls",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCallsLoad(err)
	}

	response := make([]responses.Call, len(calls))
	for i, eachCall := range calls {
		response[i] = ConvertCallIntoResponse(eachCall)
	}
	return response, nil
}

// reload replaces the cached call set only when the store answers.
func (uc *callUsecase) reload(ctx context.Context) ([]calendar.Call, error) {
	calls, err := uc.CallRepository.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	uc.state.replace(calls, uc.now())
	return calls, nil
}

func (uc *callUsecase) persist(ctx context.Context, call calendar.Call) (string, error) {
	info := call.Info()
	switch c := call.(type) {
	case calendar.OneTimeCall:
		return uc.CallRepository.CreateOneTime(ctx, info.ClientID, info.ClientName, c.StartTime)
	case calendar.RecurringCall:
		return uc.CallRepository.CreateRecurring(ctx, info.ClientID, info.ClientName, c.DayOfWeek, c.TimeOfDay)
	}
	return "", fmt.Errorf("unsupported call %T", call)
}

func (uc *callUsecase) releaseBookingLock(ctx context.Context, lockValue string) {
	err := uc.Locker.Unlock(context.WithoutCancel(ctx), constvars.RedisKeyBookingLock, lockValue)
	if err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Warn("callUsecase.releaseBookingLock error releasing booking lock",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
}

func (uc *callUsecase) buildCallEvent(eventName string, call calendar.Call, title, description string) *requests.CallEvent {
	info := call.Info()
	event := &requests.CallEvent{
		Event:       eventName,
		CallID:      info.ID,
		Kind:        string(call.Kind()),
		CallType:    string(call.Type()),
		ClientID:    info.ClientID,
		ClientName:  info.ClientName,
		Title:       title,
		Description: description,
		OccurredAt:  uc.now(),
	}
	switch c := call.(type) {
	case calendar.OneTimeCall:
		startTime := c.StartTime
		event.StartTime = &startTime
	case calendar.RecurringCall:
		dayOfWeek := int(c.DayOfWeek)
		event.DayOfWeek = &dayOfWeek
		event.TimeOfDay = c.TimeOfDay.String()
	case models.UnreadableRecurringCall:
		dayOfWeek := c.StoredDayOfWeek
		event.DayOfWeek = &dayOfWeek
		event.TimeOfDay = c.StoredTimeOfDay
	}
	return event
}

// publish logs a failed notification; the mutation it reports has already happened.
func (uc *callUsecase) publish(ctx context.Context, event *requests.CallEvent) {
	err := uc.Notifier.PublishCallEvent(ctx, event)
	if err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Warn("callUsecase.publish error publishing call event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventKey, event.Event),
			zap.Error(err),
		)
		return
	}
	utils.LogBusinessEvent(uc.Log, event.Event, utils.GetRequestID(ctx),
		zap.String(constvars.LoggingCallIDKey, event.CallID),
	)
}

func isClientError(err error) bool {
	var customErr *exceptions.CustomError
	return errors.As(err, &customErr) && customErr.StatusCode < constvars.StatusInternalServerError
}
