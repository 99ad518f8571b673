package exports

import (
	"context"
	"fmt"
	"healthcal-service/internal/app/config"
	"healthcal-service/internal/app/contracts"
	"healthcal-service/internal/app/services/core/calendar"
	"healthcal-service/internal/pkg/constvars"
	"healthcal-service/internal/pkg/dto/responses"
	"healthcal-service/internal/pkg/exceptions"
	"healthcal-service/internal/pkg/utils"
	"sync"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/teambition/rrule-go"
	"go.uber.org/zap"
)

type exportUsecase struct {
	CallRepository contracts.CallRepository
	Roster         contracts.ClientRoster
	Storage        contracts.Storage
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
	now            func() time.Time
}

var (
	exportUsecaseInstance contracts.ExportUsecase
	onceExportUsecase     sync.Once
)

func NewExportUsecase(
	callRepository contracts.CallRepository,
	roster contracts.ClientRoster,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ExportUsecase {
	onceExportUsecase.Do(func() {
		exportUsecaseInstance = newExportUsecase(callRepository, roster, storage, internalConfig, logger)
	})
	return exportUsecaseInstance
}

func newExportUsecase(
	callRepository contracts.CallRepository,
	roster contracts.ClientRoster,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) *exportUsecase {
	return &exportUsecase{
		CallRepository: callRepository,
		Roster:         roster,
		Storage:        storage,
		InternalConfig: internalConfig,
		Log:            logger,
		now:            time.Now,
	}
}

func (uc *exportUsecase) ExportDay(ctx context.Context, day time.Time) (*responses.Export, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("exportUsecase.ExportDay called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKey, day.Format(constvars.DateLayout)),
	)

	day = utils.StartOfDay(day)
	calls, err := uc.CallRepository.LoadAll(ctx)
	if err != nil {
		uc.Log.Error("exportUsecase.ExportDay error loading calls",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCallsLoad(err)
	}

	content := uc.BuildCalendar(day, calendar.Materialize(calls, day))

	bucketName := uc.InternalConfig.Minio.ExportBucketName
	objectName, err := uc.Storage.UploadObject(ctx, []byte(content), bucketName, utils.GenerateExportObjectName(day), constvars.MIMETextCalendar)
	if err != nil {
		uc.Log.Error("exportUsecase.ExportDay error uploading calendar",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBucketKey, bucketName),
			zap.Error(err),
		)
		return nil, err
	}

	expiry := time.Duration(uc.InternalConfig.Minio.ExportUrlExpiryInMinutes) * time.Minute
	url, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, bucketName, objectName, expiry)
	if err != nil {
		uc.Log.Error("exportUsecase.ExportDay error presigning calendar",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("exportUsecase.ExportDay succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)
	return &responses.Export{
		URL:        url,
		ObjectName: objectName,
		ExpiresAt:  uc.now().Add(expiry),
	}, nil
}

// BuildCalendar renders occurrences as a PUBLISH calendar. Recurring calls
// repeat weekly from this day's occurrence.
func (uc *exportUsecase) BuildCalendar(day time.Time, occurrences []calendar.Occurrence) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(constvars.ExportProductID)

	date := day.Format(constvars.DateLayout)
	for _, occurrence := range occurrences {
		info := occurrence.Call.Info()
		event := cal.AddEvent(fmt.Sprintf(constvars.ExportEventUIDFormat, info.ID, date))
		event.SetDtStampTime(uc.now())
		weekday := setEventTimes(event, occurrence.Start, occurrence.End())
		event.SetSummary(fmt.Sprintf(constvars.ExportEventSummaryFormat, occurrence.Type().Label(), info.ClientName))
		if client := uc.Roster.FindByID(info.ClientID); client != nil {
			event.SetDescription(client.Phone)
		}
		if _, ok := occurrence.Call.(calendar.RecurringCall); ok {
			event.AddRrule(weeklyRule(weekday))
		}
	}
	return cal.Serialize()
}

// setEventTimes writes DTSTART and DTEND and returns the weekday BYDAY must
// use. Named zones are written as local times with a TZID so the rule repeats
// in that zone. Unnamed zones fall back to UTC and the UTC weekday.
func setEventTimes(event *ical.VEvent, start, end time.Time) time.Weekday {
	tzid := start.Location().String()
	if tzid == "" || tzid == "Local" || tzid == "UTC" {
		event.SetStartAt(start)
		event.SetEndAt(end)
		return start.UTC().Weekday()
	}
	event.SetProperty(ical.ComponentPropertyDtStart, start.Format(constvars.ExportLocalTimestampLayout), ical.WithTZID(tzid))
	event.SetProperty(ical.ComponentPropertyDtEnd, end.Format(constvars.ExportLocalTimestampLayout), ical.WithTZID(tzid))
	return start.Weekday()
}

var rruleWeekdays = map[time.Weekday]rrule.Weekday{
	time.Sunday:    rrule.SU,
	time.Monday:    rrule.MO,
	time.Tuesday:   rrule.TU,
	time.Wednesday: rrule.WE,
	time.Thursday:  rrule.TH,
	time.Friday:    rrule.FR,
	time.Saturday:  rrule.SA,
}

func weeklyRule(dayOfWeek time.Weekday) string {
	option := rrule.ROption{
		Freq:      rrule.WEEKLY,
		Byweekday: []rrule.Weekday{rruleWeekdays[dayOfWeek]},
	}
	return option.RRuleString()
}
