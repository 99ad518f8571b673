package calendar

import (
	"sort"
	"time"
)

// Materialize returns the occurrences of calls on day, ordered by start and
// then by call id. The input calls are not modified.
func Materialize(calls []Call, day time.Time) []Occurrence {
	occurrences := make([]Occurrence, 0, len(calls))
	for _, call := range calls {
		occurrence, ok := occurrenceOn(call, day)
		if !ok {
			continue
		}
		occurrences = append(occurrences, occurrence)
	}

	sort.SliceStable(occurrences, func(i, j int) bool {
		if !occurrences[i].Start.Equal(occurrences[j].Start) {
			return occurrences[i].Start.Before(occurrences[j].Start)
		}
		return occurrences[i].Call.Info().ID < occurrences[j].Call.Info().ID
	})
	return occurrences
}

func occurrenceOn(call Call, day time.Time) (Occurrence, bool) {
	switch c := call.(type) {
	case OneTimeCall:
		start := c.StartTime.In(day.Location())
		if !sameDate(start, day) {
			return Occurrence{}, false
		}
		return Occurrence{Call: c, Start: start, Duration: c.Type().Duration()}, true
	case RecurringCall:
		if c.DayOfWeek != day.Weekday() {
			return Occurrence{}, false
		}
		return Occurrence{Call: c, Start: c.TimeOfDay.On(day), Duration: c.Type().Duration()}, true
	}
	return Occurrence{}, false
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
