package middlewares

import (
	"fmt"
	"healthcal-service/internal/pkg/exceptions"
	"healthcal-service/internal/pkg/utils"
	"net"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter is a per-IP token bucket that blocks an IP for blockTime once
// its bucket runs dry. Buckets idle for a full refill period are swept.
type RateLimiter struct {
	log       *zap.Logger
	limiters  map[string]*ipLimiter
	blocked   map[string]time.Time
	mu        sync.Mutex
	requests  int
	per       time.Duration
	blockTime time.Duration
	lastSweep time.Time
	now       func() time.Time
}

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewRateLimiter(log *zap.Logger, requests int, per, blockTime time.Duration) *RateLimiter {
	if requests < 1 {
		requests = 1
	}
	return &RateLimiter{
		log:       log,
		limiters:  make(map[string]*ipLimiter),
		blocked:   make(map[string]time.Time),
		requests:  requests,
		per:       per,
		blockTime: blockTime,
		now:       time.Now,
	}
}

func (r *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ip, _, err := net.SplitHostPort(req.RemoteAddr)
		if err != nil {
			ip = req.RemoteAddr
		}

		if !r.allow(ip) {
			utils.BuildErrorResponse(r.log, w, exceptions.ErrTooManyRequests(fmt.Errorf("ip %s", ip)))
			return
		}

		next.ServeHTTP(w, req)
	})
}

func (r *RateLimiter) allow(ip string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if now.Sub(r.lastSweep) >= r.per {
		r.sweep(now)
	}

	if blockedUntil, found := r.blocked[ip]; found {
		if now.Before(blockedUntil) {
			return false
		}
		delete(r.blocked, ip)
	}

	entry, exists := r.limiters[ip]
	if !exists {
		entry = &ipLimiter{limiter: rate.NewLimiter(rate.Every(r.per/time.Duration(r.requests)), r.requests)}
		r.limiters[ip] = entry
	}
	entry.lastSeen = now

	if !entry.limiter.AllowN(now, 1) {
		r.blocked[ip] = now.Add(r.blockTime)
		return false
	}
	return true
}

// sweep drops expired blocks and buckets that have refilled completely. The
// caller holds mu.
func (r *RateLimiter) sweep(now time.Time) {
	for ip, blockedUntil := range r.blocked {
		if !now.Before(blockedUntil) {
			delete(r.blocked, ip)
		}
	}
	for ip, entry := range r.limiters {
		if now.Sub(entry.lastSeen) >= r.per {
			delete(r.limiters, ip)
		}
	}
	r.lastSweep = now
}
