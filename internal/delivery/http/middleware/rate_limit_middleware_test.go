package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"videotube/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func (m *RateLimitMiddleware) size() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.clients)
}

func serveFrom(m *RateLimitMiddleware, ip string) int {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/login", nil)
	req.Header.Set(echo.HeaderXRealIP, ip)
	c, rec := newEchoContext(req)

	_ = m.Handle(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)

	return rec.Code
}

func TestRateLimitMiddleware_Disabled(t *testing.T) {
	m := NewRateLimitMiddleware(&config.Config{}, newDiscardLogger())

	for range 20 {
		assert.Equal(t, http.StatusOK, serveFrom(m, "10.0.0.1"))
	}
	assert.Equal(t, 0, m.size())
}

func TestRateLimitMiddleware_BurstPerClient(t *testing.T) {
	cfg := &config.Config{RateLimit: &config.RateLimitConfig{Enabled: true, RequestsPerSecond: 1, Burst: 2}}
	m := NewRateLimitMiddleware(cfg, newDiscardLogger())
	frozen := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return frozen }

	assert.Equal(t, http.StatusOK, serveFrom(m, "10.0.0.1"))
	assert.Equal(t, http.StatusOK, serveFrom(m, "10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, serveFrom(m, "10.0.0.1"))

	// Other clients have their own bucket
	assert.Equal(t, http.StatusOK, serveFrom(m, "10.0.0.2"))

	// Tokens refill over time
	frozen = frozen.Add(time.Second)
	assert.Equal(t, http.StatusOK, serveFrom(m, "10.0.0.1"))
}

func TestRateLimitMiddleware_RejectionEnvelope(t *testing.T) {
	cfg := &config.Config{RateLimit: &config.RateLimitConfig{Enabled: true, RequestsPerSecond: 1, Burst: 1}}
	m := NewRateLimitMiddleware(cfg, newDiscardLogger())
	m.now = func() time.Time { return time.Unix(0, 0) }

	_ = serveFrom(m, "10.0.0.9")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/login", nil)
	req.Header.Set(echo.HeaderXRealIP, "10.0.0.9")
	c, rec := newEchoContext(req)
	_ = m.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get(echo.HeaderRetryAfter))
	body := decodeBody(t, rec)
	assert.Equal(t, "RATE_LIMITED", body["errorCode"])
	assert.Equal(t, false, body["success"])
}

func TestRateLimitMiddleware_EvictsIdleClients(t *testing.T) {
	cfg := &config.Config{RateLimit: &config.RateLimitConfig{Enabled: true}}
	m := NewRateLimitMiddleware(cfg, newDiscardLogger())
	current := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return current }

	serveFrom(m, "10.0.0.1")
	serveFrom(m, "10.0.0.2")
	assert.Equal(t, 2, m.size())

	current = current.Add(limiterIdleTTL + time.Second)
	serveFrom(m, "10.0.0.3")

	assert.Equal(t, 1, m.size())
}
