// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"firetrace/internal/delivery/http/middleware"
	"firetrace/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ScanHandler      *handler.ScanHandler
	DashboardHandler *handler.DashboardHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	scanHandler      *handler.ScanHandler
	dashboardHandler *handler.DashboardHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		scanHandler:      params.ScanHandler,
		dashboardHandler: params.DashboardHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Everything else requires a valid access token. Role-based scoping
	// happens inside the usecases, not at the routing layer.
	api := e.Group("/api")
	api.Use(r.authMiddleware.Authenticate)
	{
		api.POST("/scans", r.scanHandler.SubmitScan)
		api.DELETE("/scans/:id", r.scanHandler.DeleteScan)
		api.GET("/dashboard", r.dashboardHandler.GetDashboard)
		api.GET("/history", r.dashboardHandler.GetHistory)
	}
}
