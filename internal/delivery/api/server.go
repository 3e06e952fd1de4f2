// Package api serves the notification ingress and management endpoints.
package api

import (
	"log/slog"

	"pavilion/config"
	"pavilion/internal/delivery"
	apimiddleware "pavilion/internal/delivery/api/middleware"
	"pavilion/internal/delivery/api/router"
	"pavilion/internal/delivery/api/validator"
	"pavilion/internal/delivery/httpserver"

	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

// NewServer builds the API server on top of the shared middleware chain.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := httpserver.New(params.Lc, "API", params.Cfg, params.Logger)
	e := srv.Echo()

	// Browser clients call the ingress directly
	e.Use(echomiddleware.CORS())

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(params.Logger).HandleHTTPError
	e.Validator = validator.New()

	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	return srv, nil
}
