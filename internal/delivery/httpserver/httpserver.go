// Package httpserver builds the echo servers shared by the API and the dispatcher.
package httpserver

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"pavilion/config"
	"pavilion/internal/delivery/middleware"
	"pavilion/internal/domain/lifecycle"
	"pavilion/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// Server is an echo server bound to the configured port
type Server struct {
	name   string
	cfg    *config.Config
	logger *slog.Logger
	echo   *echo.Echo
}

// New creates an echo server with timeouts and the common middleware chain,
// and registers its graceful shutdown on the lifecycle
func New(lc fx.Lifecycle, name string, cfg *config.Config, logger *slog.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	// 1. Recover middleware first (to catch panics early)
	e.Use(echomiddleware.Recover())

	// 2. Request ID middleware (must be before logger to include in logs)
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)

	// 3. Logger middleware
	e.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)

	// 4. Request body size limit
	e.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))

	s := &Server{
		name:   name,
		cfg:    cfg,
		logger: logger,
		echo:   e,
	}

	lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s
}

// Echo exposes the underlying echo instance for routes and handlers
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

// Serve listens with cleartext HTTP/2 support until shutdown
func (s *Server) Serve(_ context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting "+s.name+" HTTP server", slog.String("host_port", hostPort))

	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.echo.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *Server) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down " + s.name + " HTTP server")

	return errors.WithStack(s.echo.Shutdown(shutdownCtx))
}
