package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type CallType string

const (
	CallTypeOnboarding CallType = "onboarding"
	CallTypeFollowUp   CallType = "follow-up"
)

const (
	OnboardingDuration = 40 * time.Minute
	FollowUpDuration   = 20 * time.Minute
)

// Duration is fixed by the call type and never stored independently.
func (t CallType) Duration() time.Duration {
	if t == CallTypeOnboarding {
		return OnboardingDuration
	}
	return FollowUpDuration
}

func (t CallType) Minutes() int {
	return int(t.Duration() / time.Minute)
}

// Label is the capitalized form used in summaries.
func (t CallType) Label() string {
	if t == CallTypeOnboarding {
		return "Onboarding"
	}
	return "Follow-up"
}

// Kind reports the storage kind a call of this type is booked as.
func (t CallType) Kind() CallKind {
	if t == CallTypeOnboarding {
		return CallKindOneTime
	}
	return CallKindRecurring
}

func ParseCallType(value string) (CallType, error) {
	switch CallType(value) {
	case CallTypeOnboarding, CallTypeFollowUp:
		return CallType(value), nil
	}
	return "", fmt.Errorf("unknown call type %q", value)
}

type CallKind string

const (
	CallKindOneTime   CallKind = "one-time"
	CallKindRecurring CallKind = "recurring"
)

func ParseCallKind(value string) (CallKind, error) {
	switch CallKind(value) {
	case CallKindOneTime, CallKindRecurring:
		return CallKind(value), nil
	}
	return "", fmt.Errorf("unknown call kind %q", value)
}

// CallBase holds the identity shared by both call shapes.
type CallBase struct {
	ID         string
	ClientID   string
	ClientName string
}

func (b CallBase) Info() CallBase {
	return b
}

// Call is either a OneTimeCall or a RecurringCall. The set is closed: an
// onboarding call can only be one-time and a follow-up only recurring.
type Call interface {
	Info() CallBase
	Type() CallType
	Kind() CallKind
	isCall()
}

type OneTimeCall struct {
	CallBase
	StartTime time.Time
}

func (OneTimeCall) Type() CallType { return CallTypeOnboarding }
func (OneTimeCall) Kind() CallKind { return CallKindOneTime }
func (OneTimeCall) isCall() {}

type RecurringCall struct {
	CallBase
	DayOfWeek time.Weekday
	TimeOfDay TimeOfDay
}

func (RecurringCall) Type() CallType { return CallTypeFollowUp }
func (RecurringCall) Kind() CallKind { return CallKindRecurring }
func (RecurringCall) isCall() {}

// TimeOfDay is a wall-clock hour and minute without a date.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay accepts the stored "HH:mm" form only.
func ParseTimeOfDay(value string) (TimeOfDay, error) {
	hh, mm, found := strings.Cut(value, ":")
	if !found || !twoDigits(hh) || !twoDigits(mm) {
		return TimeOfDay{}, fmt.Errorf("time of day %q is not HH:mm", value)
	}
	hour, _ := strconv.Atoi(hh)
	minute, _ := strconv.Atoi(mm)
	if hour > 23 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("time of day %q is out of range", value)
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

func twoDigits(value string) bool {
	return len(value) == 2 && value[0] >= '0' && value[0] <= '9' && value[1] >= '0' && value[1] <= '9'
}

func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// On combines the date of day with this wall-clock time in day's location.
func (t TimeOfDay) On(day time.Time) time.Time {
	year, month, date := day.Date()
	return time.Date(year, month, date, t.Hour, t.Minute, 0, 0, day.Location())
}

// Occurrence is a call projected onto one concrete day.
type Occurrence struct {
	Call     Call
	Start    time.Time
	Duration time.Duration
}

func (o Occurrence) End() time.Time {
	return o.Start.Add(o.Duration)
}

func (o Occurrence) Type() CallType {
	return o.Call.Type()
}

type Slot struct {
	Time       time.Time
	Occurrence *Occurrence
	Covered    bool
}

// Bookable is true only for a slot that is neither occupied nor covered.
func (s Slot) Bookable() bool {
	return s.Occurrence == nil && !s.Covered
}
