package models

import (
	"fmt"
	"healthcal-service/internal/app/services/core/calendar"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OneTimeCall is a document of the oneTimeCalls collection.
type OneTimeCall struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	ClientID   string             `bson:"clientId"`
	ClientName string             `bson:"clientName"`
	Type       string             `bson:"type"`
	StartTime  time.Time          `bson:"startTime"`
	Duration   int                `bson:"duration"`
}

func NewOneTimeCall(clientID, clientName string, startTime time.Time) OneTimeCall {
	return OneTimeCall{
		ClientID:   clientID,
		ClientName: clientName,
		Type:       string(calendar.CallTypeOnboarding),
		StartTime:  startTime,
		Duration:   calendar.CallTypeOnboarding.Minutes(),
	}
}

func (c OneTimeCall) ConvertIntoCall() calendar.Call {
	return calendar.OneTimeCall{
		CallBase: calendar.CallBase{
			ID:         c.ID.Hex(),
			ClientID:   c.ClientID,
			ClientName: c.ClientName,
		},
		StartTime: c.StartTime,
	}
}

// RecurringCall is a document of the recurringCalls collection.
type RecurringCall struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	ClientID   string             `bson:"clientId"`
	ClientName string             `bson:"clientName"`
	Type       string             `bson:"type"`
	DayOfWeek  int                `bson:"dayOfWeek"`
	TimeOfDay  string             `bson:"timeOfDay"`
	Duration   int                `bson:"duration"`
}

func NewRecurringCall(clientID, clientName string, dayOfWeek time.Weekday, timeOfDay calendar.TimeOfDay) RecurringCall {
	return RecurringCall{
		ClientID:   clientID,
		ClientName: clientName,
		Type:       string(calendar.CallTypeFollowUp),
		DayOfWeek:  int(dayOfWeek),
		TimeOfDay:  timeOfDay.String(),
		Duration:   calendar.CallTypeFollowUp.Minutes(),
	}
}

func (c RecurringCall) ConvertIntoCall() (calendar.Call, error) {
	if c.DayOfWeek < int(time.Sunday) || c.DayOfWeek > int(time.Saturday) {
		return nil, fmt.Errorf("day of week %d is out of range", c.DayOfWeek)
	}
	timeOfDay, err := calendar.ParseTimeOfDay(c.TimeOfDay)
	if err != nil {
		return nil, err
	}
	return calendar.RecurringCall{
		CallBase: calendar.CallBase{
			ID:         c.ID.Hex(),
			ClientID:   c.ClientID,
			ClientName: c.ClientName,
		},
		DayOfWeek: time.Weekday(c.DayOfWeek),
		TimeOfDay: timeOfDay,
	}, nil
}

// UnreadableRecurringCall is a deleted recurring document whose schedule did
// not parse. It keeps the stored values as they were.
type UnreadableRecurringCall struct {
	calendar.RecurringCall
	StoredDayOfWeek int
	StoredTimeOfDay string
}

// ConvertIntoDeletedCall reports an unreadable schedule with its stored values.
func (c RecurringCall) ConvertIntoDeletedCall() calendar.Call {
	call, err := c.ConvertIntoCall()
	if err == nil {
		return call
	}
	return UnreadableRecurringCall{
		RecurringCall: calendar.RecurringCall{CallBase: calendar.CallBase{
			ID:         c.ID.Hex(),
			ClientID:   c.ClientID,
			ClientName: c.ClientName,
		}},
		StoredDayOfWeek: c.DayOfWeek,
		StoredTimeOfDay: c.TimeOfDay,
	}
}
