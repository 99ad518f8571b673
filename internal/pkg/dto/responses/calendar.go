package responses

import "time"

type Call struct {
	ID         string     `json:"id"`
	Kind       string     `json:"kind"`
	CallType   string     `json:"callType"`
	ClientID   string     `json:"clientId"`
	ClientName string     `json:"clientName"`
	Duration   int        `json:"duration"`
	StartTime  *time.Time `json:"startTime,omitempty"`
	DayOfWeek  *int       `json:"dayOfWeek,omitempty"`
	TimeOfDay  string     `json:"timeOfDay,omitempty"`
}

type Slot struct {
	Time     time.Time `json:"time"`
	Bookable bool      `json:"bookable"`
	Covered  bool      `json:"covered"`
	Call     *Call     `json:"call,omitempty"`
}

type DayView struct {
	Date    string `json:"date"`
	Stale   bool   `json:"stale"`
	Warning string `json:"warning,omitempty"`
	Slots   []Slot `json:"slots"`
}

type BookingResult struct {
	CallID string   `json:"callId"`
	Kind   string   `json:"kind"`
	Day    *DayView `json:"day,omitempty"`
}

type DeleteResult struct {
	Day *DayView `json:"day,omitempty"`
}

type Export struct {
	URL        string    `json:"url"`
	ObjectName string    `json:"objectName"`
	ExpiresAt  time.Time `json:"expiresAt"`
}
