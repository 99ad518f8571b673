package calendar

import "time"

// AssembleSlots attaches each occurrence to the grid point it starts on
// exactly, then marks the slot after every onboarding occurrence as covered.
// Occurrences that start between grid points attach to nothing.
func AssembleSlots(grid []time.Time, occurrences []Occurrence) []Slot {
	byStart := make(map[int64]*Occurrence, len(occurrences))
	for i := range occurrences {
		key := occurrences[i].Start.UnixNano()
		if _, taken := byStart[key]; taken {
			continue
		}
		byStart[key] = &occurrences[i]
	}

	slots := make([]Slot, len(grid))
	for i, point := range grid {
		slots[i] = Slot{Time: point, Occurrence: byStart[point.UnixNano()]}
	}

	// Coverage is one slot deep: no call is longer than two grid units.
	for i := 0; i+1 < len(slots); i++ {
		if slots[i].Occurrence != nil && slots[i].Occurrence.Type() == CallTypeOnboarding {
			slots[i+1].Covered = true
		}
	}
	return slots
}
