package middleware

import (
	"context"
	"log/slog"

	"hafood/config"
	"hafood/internal/delivery/api/response"
	deliverycontext "hafood/internal/delivery/context"
	"hafood/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SessionMiddleware resolves the cart session of a request from its session token.
// Requests without a valid token get a fresh session; the token is always echoed back.
type SessionMiddleware struct {
	tokenSvc service.SessionTokenService
	header   string
	logger   *slog.Logger
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(tokenSvc service.SessionTokenService, cfg *config.Config, logger *slog.Logger) *SessionMiddleware {
	return &SessionMiddleware{
		tokenSvc: tokenSvc,
		header:   cfg.Session.Header,
		logger:   logger,
	}
}

// Resolve sets the session ID on the context for handlers to use.
func (m *SessionMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
		token := c.Request().Header.Get(m.header)

		sessionID := ""
		if token != "" {
			parsed, err := m.tokenSvc.Parse(token)
			if err != nil {
				logger.Debug("Discarding invalid cart session token", slog.Any("error", err))
			} else {
				sessionID = parsed
			}
		}

		if sessionID == "" {
			sessionID = uuid.NewString()

			issued, err := m.tokenSvc.Issue(sessionID)
			if err != nil {
				logger.Error("Failed to issue cart session token", slog.Any("error", err))

				return response.InternalServerError(c)
			}
			token = issued
		}

		c.Response().Header().Set(m.header, token)
		deliverycontext.Update(c, func(ctx context.Context) context.Context {
			ctx = deliverycontext.WithSessionID(ctx, sessionID)

			return deliverycontext.WithLogger(ctx, logger.With(slog.String("session_id", sessionID)))
		})

		return next(c)
	}
}

// GetSessionID extracts the cart session ID set by Resolve.
func GetSessionID(c echo.Context) (string, bool) {
	sessionID := deliverycontext.GetSessionIDFromContext(c.Request().Context())

	return sessionID, sessionID != ""
}
