// Package context carries request-scoped values (request id, cart session, logger)
// from the delivery layer down to the usecases.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

type contextKey int

const (
	requestIDKey contextKey = iota
	sessionIDKey
	loggerKey
)

// HeaderXRequestID is the HTTP header name for request ID.
const HeaderXRequestID = "X-Request-Id"

func value[T any](ctx context.Context, key contextKey) T {
	v, _ := ctx.Value(key).(T)

	return v
}

// Update replaces the request context of c with fn applied to it.
func Update(c echo.Context, fn func(ctx context.Context) context.Context) {
	req := c.Request()
	c.SetRequest(req.WithContext(fn(req.Context())))
}

// GetRequestID returns the request ID of the echo request, empty when none was assigned.
func GetRequestID(c echo.Context) string {
	return GetRequestIDFromContext(c.Request().Context())
}

// GetRequestIDFromContext returns the request ID, empty when none was assigned.
func GetRequestIDFromContext(ctx context.Context) string {
	return value[string](ctx, requestIDKey)
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetSessionIDFromContext returns the cart session of the request, empty outside cart routes.
func GetSessionIDFromContext(ctx context.Context) string {
	return value[string](ctx, sessionIDKey)
}

// WithSessionID returns a new context with the cart session ID.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

// GetLogger returns the request-scoped logger, nil when none was set.
func GetLogger(ctx context.Context) *slog.Logger {
	return value[*slog.Logger](ctx, loggerKey)
}

// GetLoggerOrDefault returns the request-scoped logger or fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}
