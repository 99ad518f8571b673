package calendar

import (
	"fmt"
	"time"
)

// Candidate is a booking that has not been stored yet.
type Candidate struct {
	ClientID   string
	ClientName string
	Type       CallType
	Start      time.Time
}

func (c Candidate) End() time.Time {
	return c.Start.Add(c.Type.Duration())
}

// ConflictError names the existing call a candidate overlaps.
type ConflictError struct {
	ClientName string
	CallID     string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("booking overlaps call %s for %s", e.CallID, e.ClientName)
}

// Overlaps treats both intervals as half-open, so touching endpoints do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// ValidateBooking rejects the candidate when it overlaps any occurrence of the
// same day. Occurrences are checked in order and the first overlap wins.
func ValidateBooking(candidate Candidate, occurrences []Occurrence) error {
	end := candidate.End()
	for _, existing := range occurrences {
		if Overlaps(candidate.Start, end, existing.Start, existing.End()) {
			info := existing.Call.Info()
			return &ConflictError{ClientName: info.ClientName, CallID: info.ID}
		}
	}
	return nil
}

// NewCall returns the stored shape of an accepted candidate: onboarding is a
// one-time call at Start, follow-up repeats weekly on Start's weekday and
// wall-clock time.
func NewCall(id string, candidate Candidate) Call {
	base := CallBase{ID: id, ClientID: candidate.ClientID, ClientName: candidate.ClientName}
	if candidate.Type == CallTypeOnboarding {
		return OneTimeCall{CallBase: base, StartTime: candidate.Start}
	}
	return RecurringCall{
		CallBase:  base,
		DayOfWeek: candidate.Start.Weekday(),
		TimeOfDay: TimeOfDayOf(candidate.Start),
	}
}
