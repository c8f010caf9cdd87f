// Package context carries request scoped values between the HTTP middleware,
// the handlers and the usecases.
package context

import (
	"context"
	"log/slog"

	"videotube/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID holds the request id in both echo.Context and context.Context.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger holds the request scoped logger in context.Context.
	KeyLogger ContextKey = "logger"

	// KeyIdentity holds the authenticated caller in echo.Context.
	KeyIdentity = "identity"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = echo.HeaderXRequestID
)

// SetRequestID stores the request id in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestID returns the id assigned by the request id middleware, or "" before it ran.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok {
		return id
	}

	return GetRequestIDFromContext(c.Request().Context())
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetRequestIDFromContext returns the request id of ctx, or "".
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// GetLogger returns the request scoped logger, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(KeyLogger).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault returns the request scoped logger, falling back to the given one
// for calls made outside an HTTP request.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// SetIdentity stores the authenticated caller in echo.Context.
func SetIdentity(c echo.Context, identity *entity.Identity) {
	c.Set(KeyIdentity, identity)
}

// GetIdentity returns the authenticated caller, if the session middleware ran.
func GetIdentity(c echo.Context) (*entity.Identity, bool) {
	identity, ok := c.Get(KeyIdentity).(*entity.Identity)
	if !ok || identity == nil || identity.UserID == "" {
		return nil, false
	}

	return identity, true
}
