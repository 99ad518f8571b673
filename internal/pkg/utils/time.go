package utils

import (
	"healthcal-service/internal/pkg/constvars"
	"time"
)

// ParseDate reads a YYYY-MM-DD value as local midnight.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(constvars.DateLayout, value, time.Local)
}

func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
