// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"locator/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProfileHandler *handler.ProfileHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	profileHandler *handler.ProfileHandler
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		profileHandler: params.ProfileHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.GET("/settings", r.profileHandler.GetSettings)

	locationGroup := e.Group("/locations")
	{
		locationGroup.POST("/open", r.profileHandler.BatchOpenState)
		locationGroup.GET("/:id/fields", r.profileHandler.GetFields)
		locationGroup.GET("/:id/hours", r.profileHandler.GetWeek)
		locationGroup.GET("/:id/hours/:day", r.profileHandler.GetDay)
		locationGroup.GET("/:id/open", r.profileHandler.GetOpenState)
		locationGroup.GET("/:id/profile", r.profileHandler.GetProfile)
	}
}
