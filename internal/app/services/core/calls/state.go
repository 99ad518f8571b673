package calls

import (
	"healthcal-service/internal/app/services/core/calendar"
	"sync"
	"time"
)

// calendarState is the last call set loaded successfully from the store.
// Only a successful reload writes it.
type calendarState struct {
	mu       sync.RWMutex
	calls    []calendar.Call
	loadedAt time.Time
}

func (s *calendarState) replace(calls []calendar.Call, loadedAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = calls
	s.loadedAt = loadedAt
}

func (s *calendarState) snapshot() ([]calendar.Call, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	calls := make([]calendar.Call, len(s.calls))
	copy(calls, s.calls)
	return calls, s.loadedAt
}
