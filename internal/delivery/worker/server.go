// Package worker serves the cart activity sink: Pub/Sub pushes in, session activity out.
package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"hafood/config"
	"hafood/internal/delivery"
	"hafood/internal/delivery/middleware"
	"hafood/internal/delivery/worker/handler"
	"hafood/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type workerServer struct {
	hostPort string
	logger   *slog.Logger
	server   *echo.Echo
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer creates the worker HTTP server and stops it with the application
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &workerServer{
		hostPort: net.JoinHostPort("0.0.0.0", strconv.Itoa(params.Cfg.HTTP.Port)),
		logger:   params.Logger,
		server:   newEcho(params.Cfg, params.Logger, params.PushHandler),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func newEcho(cfg *config.Config, logger *slog.Logger, pushHandler *handler.PushHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	e.Use(middleware.NewLoggerMiddleware(logger, cfg, "/health").Handle)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.POST("/push", pushHandler.HandlePush)
	e.GET("/sessions/:sessionId/activity", pushHandler.ListSessionActivity)

	return e
}

// Serve blocks until the server stops
func (s *workerServer) Serve(_ context.Context) error {
	s.logger.Info("Starting cart worker HTTP server", slog.String("host_port", s.hostPort))
	if err := s.server.Start(s.hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down cart worker HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
