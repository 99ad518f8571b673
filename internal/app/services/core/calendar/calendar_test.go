package calendar

import (
	"time"
)

var testLocation = time.FixedZone("IST", 5*3600+30*60)

// wednesday is 2024-05-15 and tuesday the day before.
var (
	wednesday = time.Date(2024, 5, 15, 0, 0, 0, 0, testLocation)
	tuesday   = time.Date(2024, 5, 14, 0, 0, 0, 0, testLocation)
)

func at(day time.Time, hour, minute int) time.Time {
	return TimeOfDay{Hour: hour, Minute: minute}.On(day)
}

func onboarding(id, clientName string, start time.Time) OneTimeCall {
	return OneTimeCall{
		CallBase:  CallBase{ID: id, ClientID: id + "-client", ClientName: clientName},
		StartTime: start,
	}
}

func followUp(id, clientName string, weekday time.Weekday, hour, minute int) RecurringCall {
	return RecurringCall{
		CallBase:  CallBase{ID: id, ClientID: id + "-client", ClientName: clientName},
		DayOfWeek: weekday,
		TimeOfDay: TimeOfDay{Hour: hour, Minute: minute},
	}
}

func slotAt(slots []Slot, t time.Time) (Slot, bool) {
	for _, slot := range slots {
		if slot.Time.Equal(t) {
			return slot, true
		}
	}
	return Slot{}, false
}
