package middlewares

import (
	"fmt"
	"healthcal-service/internal/app/config"
	"healthcal-service/internal/pkg/constvars"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestMiddlewares() *Middlewares {
	return NewMiddlewares(zap.NewNop(), &config.InternalConfig{
		App: config.App{
			MaxRequests:                  10,
			MaxMutationRequestsPerMinute: 2,
			MutationBlockTimeInSeconds:   60,
			RequestBodyLimitInMegabyte:   1,
		},
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	m := newTestMiddlewares()

	var seen string
	var fromClient bool
	handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		fromClient, _ = r.Context().Value(constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY).(bool)
	}))

	t.Run("Generated", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/calls", nil))

		assert.True(t, strings.HasPrefix(seen, constvars.REQUEST_ID_PREFIX))
		assert.False(t, fromClient)
		assert.Equal(t, seen, rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("Client supplied", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/calls", nil)
		req.Header.Set(constvars.HeaderXRequestID, "abc-123")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, "abc-123", seen)
		assert.True(t, fromClient)
		assert.Equal(t, "abc-123", rr.Header().Get(constvars.HeaderXRequestID))
	})
}

func TestErrorHandlerRecoversPanic(t *testing.T) {
	m := newTestMiddlewares()
	handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, constvars.ErrClientCannotProcessRequest, body["message"])
}

func TestLoggingRecordsStatus(t *testing.T) {
	m := newTestMiddlewares()
	handler := m.Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/calls", nil))
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestRateLimiterBlocksAfterBurst(t *testing.T) {
	limiter := NewRateLimiter(zap.NewNop(), 2, time.Minute, time.Minute)
	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	handler := limiter.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	call := func(remoteAddr string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/calls", nil)
		req.RemoteAddr = remoteAddr
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr.Code
	}

	assert.Equal(t, http.StatusCreated, call("10.0.0.1:5000"))
	assert.Equal(t, http.StatusCreated, call("10.0.0.1:5001"))
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1:5002"))
	assert.Equal(t, http.StatusCreated, call("10.0.0.2:5000"))

	now = now.Add(30 * time.Second)
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1:5003"), "still blocked")

	now = now.Add(61 * time.Second)
	assert.Equal(t, http.StatusCreated, call("10.0.0.1:5004"))
}

func TestRateLimiterSweepsIdleIPs(t *testing.T) {
	limiter := NewRateLimiter(zap.NewNop(), 1, time.Minute, time.Minute)
	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	assert.True(t, limiter.allow("10.0.0.1"))
	assert.False(t, limiter.allow("10.0.0.1"))
	for i := 2; i <= 50; i++ {
		assert.True(t, limiter.allow(fmt.Sprintf("10.0.1.%d", i)))
	}
	assert.Len(t, limiter.limiters, 50)
	assert.Len(t, limiter.blocked, 1)

	now = now.Add(2 * time.Minute)
	assert.True(t, limiter.allow("10.0.0.9"))

	assert.Len(t, limiter.limiters, 1)
	assert.Contains(t, limiter.limiters, "10.0.0.9")
	assert.Empty(t, limiter.blocked)
}

func TestBodyLimit(t *testing.T) {
	m := newTestMiddlewares()

	var readErr error
	handler := m.BodyLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
	}))

	small := httptest.NewRequest(http.MethodPost, "/api/v1/calls", strings.NewReader(`{"clientId":"1"}`))
	handler.ServeHTTP(httptest.NewRecorder(), small)
	assert.NoError(t, readErr)

	large := httptest.NewRequest(http.MethodPost, "/api/v1/calls", strings.NewReader(strings.Repeat("a", 2<<20)))
	handler.ServeHTTP(httptest.NewRecorder(), large)
	assert.Error(t, readErr)
}
