package exports

import (
	"context"
	"errors"
	"healthcal-service/internal/app/config"
	"healthcal-service/internal/app/services/core/calendar"
	"healthcal-service/internal/app/services/core/clients"
	"healthcal-service/internal/pkg/constvars"
	"healthcal-service/internal/pkg/exceptions"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teambition/rrule-go"
	"go.uber.org/zap"
)

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

type fakeStorage struct {
	uploaded    map[string][]byte
	contentType string
	expiry      time.Duration
	uploadErr   error
}

func (s *fakeStorage) UploadObject(ctx context.Context, content []byte, bucketName, objectName, contentType string) (string, error) {
	if s.uploadErr != nil {
		return "", s.uploadErr
	}
	if s.uploaded == nil {
		s.uploaded = make(map[string][]byte)
	}
	s.uploaded[bucketName+"/"+objectName] = content
	s.contentType = contentType
	return objectName, nil
}

func (s *fakeStorage) GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error) {
	s.expiry = expiryTime
	return "https://storage.local/" + bucketName + "/" + objectName + "?signature=abc", nil
}

var wednesday = time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)

func wednesdayCalls() []calendar.Call {
	return []calendar.Call{
		calendar.OneTimeCall{
			CallBase:  calendar.CallBase{ID: "one", ClientID: "1", ClientName: "Sriram"},
			StartTime: time.Date(2024, 5, 15, 10, 30, 0, 0, time.UTC),
		},
		calendar.RecurringCall{
			CallBase:  calendar.CallBase{ID: "rec", ClientID: "4", ClientName: "Priya"},
			DayOfWeek: time.Wednesday,
			TimeOfDay: calendar.TimeOfDay{Hour: 14, Minute: 10},
		},
	}
}

func newTestUsecase(t *testing.T, calls *fakeCalls, storage *fakeStorage) *exportUsecase {
	t.Helper()
	roster, err := clients.LoadRoster("")
	require.NoError(t, err)
	cfg := &config.InternalConfig{Minio: config.AppMinio{ExportBucketName: "healthcal-exports", ExportUrlExpiryInMinutes: 60}}
	uc := newExportUsecase(calls, roster, storage, cfg, zap.NewNop())
	uc.now = func() time.Time { return time.Date(2024, 5, 15, 9, 0, 0, 0, time.UTC) }
	return uc
}

func icsTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

func TestBuildCalendar(t *testing.T) {
	uc := newTestUsecase(t, &fakeCalls{}, &fakeStorage{})
	content := uc.BuildCalendar(wednesday, calendar.Materialize(wednesdayCalls(), wednesday))

	assert.Contains(t, content, "BEGIN:VCALENDAR")
	assert.Contains(t, content, "METHOD:PUBLISH")
	assert.Equal(t, 2, strings.Count(content, "BEGIN:VEVENT"))
	assert.Contains(t, content, "UID:one@2024-05-15")
	assert.Contains(t, content, "UID:rec@2024-05-15")
	assert.Contains(t, content, "SUMMARY:Onboarding call with Sriram")
	assert.Contains(t, content, "SUMMARY:Follow-up call with Priya")
	assert.Contains(t, content, "DESCRIPTION:123-456-7890")
	assert.Contains(t, content, "DTSTART:"+icsTime(time.Date(2024, 5, 15, 10, 30, 0, 0, time.UTC)))
	assert.Contains(t, content, "DTEND:"+icsTime(time.Date(2024, 5, 15, 11, 10, 0, 0, time.UTC)))
	assert.Contains(t, content, "RRULE:FREQ=WEEKLY;BYDAY=WE")
	assert.Equal(t, 1, strings.Count(content, "RRULE:"))
}

func eveningFollowUp(loc *time.Location) (time.Time, []calendar.Call) {
	day := time.Date(2024, 1, 17, 0, 0, 0, 0, loc)
	return day, []calendar.Call{
		calendar.RecurringCall{
			CallBase:  calendar.CallBase{ID: "rec", ClientID: "4", ClientName: "Priya"},
			DayOfWeek: time.Wednesday,
			TimeOfDay: calendar.TimeOfDay{Hour: 19, Minute: 10},
		},
	}
}

// expandWeekly reads the DTSTART and RRULE lines back with rrule-go.
func expandWeekly(t *testing.T, content string, from, to time.Time) []time.Time {
	t.Helper()
	var dtstart, rule string
	for _, line := range strings.Split(content, "\r\n") {
		switch {
		case strings.HasPrefix(line, "DTSTART"):
			dtstart = line
		case strings.HasPrefix(line, "RRULE:"):
			rule = line
		}
	}
	require.NotEmpty(t, dtstart)
	require.NotEmpty(t, rule)

	set, err := rrule.StrToRRuleSet(dtstart + "\n" + rule)
	require.NoError(t, err)
	return set.Between(from, to, true)
}

func TestBuildCalendarRepeatsInNamedZone(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	uc := newTestUsecase(t, &fakeCalls{}, &fakeStorage{})
	day, calls := eveningFollowUp(newYork)
	content := uc.BuildCalendar(day, calendar.Materialize(calls, day))

	assert.Contains(t, content, "DTSTART;TZID=America/New_York:20240117T191000")
	assert.Contains(t, content, "DTEND;TZID=America/New_York:20240117T193000")
	assert.Contains(t, content, "RRULE:FREQ=WEEKLY;BYDAY=WE")

	occurrences := expandWeekly(t, content, day, day.AddDate(0, 0, 21))
	require.Len(t, occurrences, 3)
	for _, occurrence := range occurrences {
		local := occurrence.In(newYork)
		assert.Equal(t, time.Wednesday, local.Weekday())
		assert.Equal(t, 19, local.Hour())
		assert.Equal(t, 10, local.Minute())
	}
}

func TestBuildCalendarUnnamedZoneUsesUTCWeekday(t *testing.T) {
	offset := time.FixedZone("", -5*60*60)

	uc := newTestUsecase(t, &fakeCalls{}, &fakeStorage{})
	day, calls := eveningFollowUp(offset)
	content := uc.BuildCalendar(day, calendar.Materialize(calls, day))

	assert.Contains(t, content, "DTSTART:20240118T001000Z")
	assert.Contains(t, content, "RRULE:FREQ=WEEKLY;BYDAY=TH")

	occurrences := expandWeekly(t, content, day, day.AddDate(0, 0, 21))
	require.Len(t, occurrences, 3)
	for _, occurrence := range occurrences {
		assert.Equal(t, time.Wednesday, occurrence.In(offset).Weekday())
	}
}

func TestBuildCalendarEmptyDay(t *testing.T) {
	uc := newTestUsecase(t, &fakeCalls{}, &fakeStorage{})
	tuesday := wednesday.AddDate(0, 0, -1)
	content := uc.BuildCalendar(tuesday, calendar.Materialize(wednesdayCalls(), tuesday))

	assert.Contains(t, content, "BEGIN:VCALENDAR")
	assert.NotContains(t, content, "BEGIN:VEVENT")
}

func TestWeeklyRule(t *testing.T) {
	assert.Equal(t, "FREQ=WEEKLY;BYDAY=WE", weeklyRule(time.Wednesday))
	assert.Equal(t, "FREQ=WEEKLY;BYDAY=SU", weeklyRule(time.Sunday))
}

func TestExportDay(t *testing.T) {
	storage := &fakeStorage{}
	uc := newTestUsecase(t, &fakeCalls{calls: wednesdayCalls()}, storage)

	export, err := uc.ExportDay(context.Background(), wednesday.Add(15*time.Hour))
	require.NoError(t, err)

	assert.Equal(t, "agendas/2024-05-15.ics", export.ObjectName)
	assert.Contains(t, export.URL, "healthcal-exports/agendas/2024-05-15.ics")
	assert.Equal(t, time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC), export.ExpiresAt)
	assert.Equal(t, 60*time.Minute, storage.expiry)
	assert.Equal(t, constvars.MIMETextCalendar, storage.contentType)
	assert.Contains(t, string(storage.uploaded["healthcal-exports/agendas/2024-05-15.ics"]), "RRULE:FREQ=WEEKLY;BYDAY=WE")
}

func TestExportDayErrors(t *testing.T) {
	t.Run("load failure", func(t *testing.T) {
		uc := newTestUsecase(t, &fakeCalls{err: errors.New("timeout")}, &fakeStorage{})
		_, err := uc.ExportDay(context.Background(), wednesday)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusServiceUnavailable, customErr.StatusCode)
	})

	t.Run("upload failure", func(t *testing.T) {
		storage := &fakeStorage{uploadErr: exceptions.ErrMinioCreateObject(errors.New("bucket missing"), "healthcal-exports")}
		uc := newTestUsecase(t, &fakeCalls{calls: wednesdayCalls()}, storage)
		_, err := uc.ExportDay(context.Background(), wednesday)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.ErrClientExportFailed, customErr.ClientMessage)
	})
}
