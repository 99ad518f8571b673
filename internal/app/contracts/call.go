package contracts

import (
	"context"
	"healthcal-service/internal/app/services/core/calendar"
	"healthcal-service/internal/pkg/dto/responses"
	"time"
)

type CallRepository interface {
	// LoadAll returns every stored call. Records that cannot be read as a
	// valid call are skipped.
	LoadAll(ctx context.Context) ([]calendar.Call, error)
	CreateOneTime(ctx context.Context, clientID, clientName string, startTime time.Time) (string, error)
	CreateRecurring(ctx context.Context, clientID, clientName string, dayOfWeek time.Weekday, timeOfDay calendar.TimeOfDay) (string, error)
	// Delete removes the call and returns it as it was stored.
	Delete(ctx context.Context, callID string, kind calendar.CallKind) (calendar.Call, error)
}

type BookCallInput struct {
	ClientID  string
	CallType  calendar.CallType
	StartTime time.Time
}

type DeleteCallInput struct {
	CallID string
	Kind   calendar.CallKind
	// Day is optional; when set the result carries that day's view.
	Day *time.Time
}

type CallUsecase interface {
	GetDay(ctx context.Context, day time.Time) (*responses.DayView, error)
	BookCall(ctx context.Context, input BookCallInput) (*responses.BookingResult, error)
	DeleteCall(ctx context.Context, input DeleteCallInput) (*responses.DeleteResult, error)
	ListCalls(ctx context.Context) ([]responses.Call, error)
}
