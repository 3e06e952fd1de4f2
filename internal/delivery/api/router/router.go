// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pavilion/internal/delivery/api/middleware"
	"pavilion/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	NotificationHandler *handler.NotificationHandler
	DeviceTokenHandler  *handler.DeviceTokenHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	notificationHandler *handler.NotificationHandler
	deviceTokenHandler  *handler.DeviceTokenHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		notificationHandler: params.NotificationHandler,
		deviceTokenHandler:  params.DeviceTokenHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Ingress is called by trusted backends and stays unauthenticated
	e.POST("/notifications", r.notificationHandler.SendNotification)

	// Reconciliation reads
	e.GET("/notifications/failures", r.notificationHandler.ListFailures, r.authMiddleware.Authenticate)
	e.GET("/notifications/:id", r.notificationHandler.GetQueueEntry, r.authMiddleware.Authenticate)

	// Token Store management, restricted to the token owner
	usersGroup := e.Group("/users/:userId")
	usersGroup.Use(r.authMiddleware.Authenticate)
	usersGroup.Use(r.authMiddleware.RequireSelf("userId"))
	{
		usersGroup.POST("/tokens", r.deviceTokenHandler.RegisterToken)
		usersGroup.GET("/tokens", r.deviceTokenHandler.ListTokens)
		usersGroup.DELETE("/tokens/:tokenId", r.deviceTokenHandler.RemoveToken)
	}
}
