package middleware

import (
	"log/slog"
	"sync"
	"time"

	"videotube/config"
	deliverycontext "videotube/internal/delivery/context"
	"videotube/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	defaultRequestsPerSecond = 1
	defaultBurst             = 5
	limiterIdleTTL           = 3 * time.Minute
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitMiddleware throttles requests per client IP with a token bucket.
type RateLimitMiddleware struct {
	enabled bool
	limit   rate.Limit
	burst   int
	logger  *slog.Logger
	now     func() time.Time

	mu        sync.Mutex
	clients   map[string]*clientLimiter
	lastSweep time.Time
}

// NewRateLimitMiddleware creates the limiter from config.RateLimit. A nil or
// disabled section lets every request through.
func NewRateLimitMiddleware(cfg *config.Config, logger *slog.Logger) *RateLimitMiddleware {
	m := &RateLimitMiddleware{
		limit:   defaultRequestsPerSecond,
		burst:   defaultBurst,
		logger:  logger,
		now:     time.Now,
		clients: make(map[string]*clientLimiter),
	}

	if rl := cfg.RateLimit; rl != nil {
		m.enabled = rl.Enabled
		if rl.RequestsPerSecond > 0 {
			m.limit = rate.Limit(rl.RequestsPerSecond)
		}
		if rl.Burst > 0 {
			m.burst = rl.Burst
		}
	}

	return m
}

// Handle rejects the request with 429 once the client's bucket is empty.
func (m *RateLimitMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.enabled {
			return next(c)
		}

		ip := c.RealIP()
		if !m.allow(ip) {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Warn("Rate limit exceeded",
				slog.String("remote_ip", ip),
				slog.String("path", c.Request().URL.Path),
			)
			c.Response().Header().Set(echo.HeaderRetryAfter, "1")

			return response.TooManyRequests(c, "RATE_LIMITED", "Too many requests, please try again later")
		}

		return next(c)
	}
}

func (m *RateLimitMiddleware) allow(ip string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.evictIdle(now)

	client, ok := m.clients[ip]
	if !ok {
		client = &clientLimiter{limiter: rate.NewLimiter(m.limit, m.burst)}
		m.clients[ip] = client
	}
	client.lastSeen = now

	return client.limiter.AllowN(now, 1)
}

// evictIdle drops clients unseen for limiterIdleTTL. It runs at most once per TTL.
func (m *RateLimitMiddleware) evictIdle(now time.Time) {
	if now.Sub(m.lastSweep) < limiterIdleTTL {
		return
	}
	m.lastSweep = now

	for ip, client := range m.clients {
		if now.Sub(client.lastSeen) >= limiterIdleTTL {
			delete(m.clients, ip)
		}
	}
}
