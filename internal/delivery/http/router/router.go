// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	ProductHandler *handler.ProductHandler
	OrderHandler   *handler.OrderHandler
	ReportHandler  *handler.ReportHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	productHandler *handler.ProductHandler
	orderHandler   *handler.OrderHandler
	reportHandler  *handler.ReportHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		productHandler: params.ProductHandler,
		orderHandler:   params.OrderHandler,
		reportHandler:  params.ReportHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	e.POST("/auth/login", r.userHandler.Login)

	// User routes. Registration is public; the listing is admin only.
	userGroup := e.Group("/users")
	{
		userGroup.POST("", r.userHandler.RegisterUser)
		userGroup.GET("", r.userHandler.ListUsers,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireAdmin)
		userGroup.GET("/me", r.userHandler.GetMe, r.authMiddleware.Authenticate)
		userGroup.PUT("/me", r.userHandler.UpdateMe, r.authMiddleware.Authenticate)
		userGroup.DELETE("/me", r.userHandler.DeleteMe, r.authMiddleware.Authenticate)
		userGroup.GET("/:id", r.userHandler.GetUser,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireAdmin)
	}

	// Catalog routes. Reads are public, with an optional token so admins can
	// see unavailable products; writes require the admin role.
	productGroup := e.Group("/products")
	{
		productGroup.GET("", r.productHandler.ListProducts, r.authMiddleware.OptionalAuthenticate)
		productGroup.GET("/:id", r.productHandler.GetProduct)
		productGroup.POST("", r.productHandler.CreateProduct,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireAdmin)
		productGroup.PUT("/:id", r.productHandler.UpdateProduct,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireAdmin)
		productGroup.DELETE("/:id", r.productHandler.DeleteProduct,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireAdmin)
	}

	// Order routes all require authentication.
	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.POST("", r.orderHandler.PlaceOrder)
		orderGroup.GET("", r.orderHandler.ListMyOrders)
		orderGroup.GET("/all", r.orderHandler.ListAllOrders, r.authMiddleware.RequireAdmin)
		orderGroup.POST("/verify", r.orderHandler.VerifyPickup, r.authMiddleware.RequireAdmin)
		orderGroup.GET("/:id", r.orderHandler.GetOrder)
		orderGroup.GET("/:id/qrcode", r.orderHandler.PickupQR)
	}

	// Reporting is admin only.
	reportGroup := e.Group("/reports")
	reportGroup.Use(r.authMiddleware.Authenticate, r.authMiddleware.RequireAdmin)
	{
		reportGroup.GET("/sales", r.reportHandler.SalesReport)
	}
}
