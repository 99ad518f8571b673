package requests

import "time"

// CallEvent is published when a call is booked or deleted.
type CallEvent struct {
	Event       string     `json:"event"`
	CallID      string     `json:"callId"`
	Kind        string     `json:"kind"`
	CallType    string     `json:"callType"`
	ClientID    string     `json:"clientId"`
	ClientName  string     `json:"clientName"`
	StartTime   *time.Time `json:"startTime,omitempty"`
	DayOfWeek   *int       `json:"dayOfWeek,omitempty"`
	TimeOfDay   string     `json:"timeOfDay,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	OccurredAt  time.Time  `json:"occurredAt"`
}

type AgendaEntry struct {
	CallID     string    `json:"callId"`
	Kind       string    `json:"kind"`
	CallType   string    `json:"callType"`
	ClientID   string    `json:"clientId"`
	ClientName string    `json:"clientName"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
}

// AgendaEvent lists the calls of one day in start order.
type AgendaEvent struct {
	Event       string        `json:"event"`
	Date        string        `json:"date"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Calls       []AgendaEntry `json:"calls"`
	OccurredAt  time.Time     `json:"occurredAt"`
}
