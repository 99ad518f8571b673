package calls

import (
	"healthcal-service/internal/app/services/core/calendar"
	"healthcal-service/internal/pkg/constvars"
	"healthcal-service/internal/pkg/dto/responses"
	"time"
)

func ConvertCallIntoResponse(call calendar.Call) responses.Call {
	info := call.Info()
	response := responses.Call{
		ID:         info.ID,
		Kind:       string(call.Kind()),
		CallType:   string(call.Type()),
		ClientID:   info.ClientID,
		ClientName: info.ClientName,
		Duration:   call.Type().Minutes(),
	}

	switch c := call.(type) {
	case calendar.OneTimeCall:
		startTime := c.StartTime
		response.StartTime = &startTime
	case calendar.RecurringCall:
		dayOfWeek := int(c.DayOfWeek)
		response.DayOfWeek = &dayOfWeek
		response.TimeOfDay = c.TimeOfDay.String()
	}
	return response
}

// BuildDayView materializes calls on day and lays them over the slot grid.
func BuildDayView(day time.Time, calls []calendar.Call, stale bool, warning string) responses.DayView {
	slots := calendar.AssembleSlots(calendar.SlotGrid(day), calendar.Materialize(calls, day))

	view := responses.DayView{
		Date:    day.Format(constvars.DateLayout),
		Stale:   stale,
		Warning: warning,
		Slots:   make([]responses.Slot, len(slots)),
	}
	for i, slot := range slots {
		view.Slots[i] = responses.Slot{
			Time:     slot.Time,
			Bookable: slot.Bookable(),
			Covered:  slot.Covered,
		}
		if slot.Occurrence != nil {
			call := ConvertCallIntoResponse(slot.Occurrence.Call)
			view.Slots[i].Call = &call
		}
	}
	return view
}
