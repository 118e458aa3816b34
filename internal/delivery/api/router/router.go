// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/Bilal-EZ-ZAIM/devopes/internal/delivery/api/middleware"
	"github.com/Bilal-EZ-ZAIM/devopes/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	PharmacyHandler *handler.PharmacyHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	pharmacyHandler *handler.PharmacyHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		pharmacyHandler: params.PharmacyHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/reset-password", r.authHandler.ResetPassword)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// Pharmacy directory, reads are public and writes require an access token
	pharmaciesGroup := e.Group("/pharmacies")
	{
		pharmaciesGroup.GET("", r.pharmacyHandler.List)
		pharmaciesGroup.GET("/search", r.pharmacyHandler.Search)
		pharmaciesGroup.GET("/guard", r.pharmacyHandler.FindGuard)
		pharmaciesGroup.GET("/:id", r.pharmacyHandler.Get)
		pharmaciesGroup.GET("/:id/qrcode", r.pharmacyHandler.QRCode)

		pharmaciesGroup.POST("", r.pharmacyHandler.Create, r.authMiddleware.Authenticate)
		pharmaciesGroup.PATCH("/:id", r.pharmacyHandler.Update, r.authMiddleware.Authenticate)
		pharmaciesGroup.DELETE("/:id", r.pharmacyHandler.Delete, r.authMiddleware.Authenticate)
		pharmaciesGroup.PATCH("/:id/duty", r.pharmacyHandler.SetOnDuty, r.authMiddleware.Authenticate)
	}
}
