package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// CreateRateLimiters returns the per-second limiter applied to every route and
// the stricter per-minute limiter for booking mutations.
func (m *Middlewares) CreateRateLimiters() (generalLimiter func(next http.Handler) http.Handler, mutationLimiter *RateLimiter) {
	app := m.InternalConfig.App
	generalLimiter = httprate.LimitByIP(app.MaxRequests, time.Second)
	mutationLimiter = NewRateLimiter(
		m.Log,
		app.MaxMutationRequestsPerMinute,
		time.Minute,
		time.Duration(app.MutationBlockTimeInSeconds)*time.Second,
	)
	return generalLimiter, mutationLimiter
}
