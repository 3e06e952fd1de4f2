// Package worker serves the Pub/Sub push endpoint of the dispatcher.
package worker

import (
	"log/slog"
	"net/http"

	"pavilion/config"
	"pavilion/internal/delivery"
	"pavilion/internal/delivery/httpserver"
	"pavilion/internal/delivery/worker/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PushPath is where Pub/Sub and the local publisher deliver queue entry events
const PushPath = "/push"

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer creates the dispatcher HTTP server
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := httpserver.New(params.Lc, "Dispatcher", params.Cfg, params.Logger)
	e := srv.Echo()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.POST(PushPath, params.PushHandler.HandlePush)

	return srv, nil
}
