package calendar

import "time"

const (
	SlotInterval = 20 * time.Minute

	gridStartHour   = 10
	gridStartMinute = 30
	gridEndHour     = 19
	gridEndMinute   = 30
)

// SlotGrid returns the bookable instants of day: 10:30 up to but excluding
// 19:30, every 20 minutes, in day's location.
func SlotGrid(day time.Time) []time.Time {
	start := TimeOfDay{Hour: gridStartHour, Minute: gridStartMinute}.On(day)
	end := TimeOfDay{Hour: gridEndHour, Minute: gridEndMinute}.On(day)

	grid := make([]time.Time, 0, int(end.Sub(start)/SlotInterval))
	for t := start; t.Before(end); t = t.Add(SlotInterval) {
		grid = append(grid, t)
	}
	return grid
}

// OnGrid reports whether t is one of the grid points of its own day.
func OnGrid(t time.Time) bool {
	for _, point := range SlotGrid(t) {
		if point.Equal(t) {
			return true
		}
	}
	return false
}
