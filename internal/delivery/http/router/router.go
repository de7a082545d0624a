// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

// RouterParams holds all handlers that need to be registered, injected by Fx.
type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	CatalogHandler      *handler.CatalogHandler
	CartHandler         *handler.CartHandler
	OrderHandler        *handler.OrderHandler
	SupportHandler      *handler.SupportHandler
	NotificationHandler *handler.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Operational endpoints
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Public catalog
	e.GET("/products", r.params.CatalogHandler.ListProducts)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.params.UserHandler.Register)
		authGroup.POST("/login", r.params.UserHandler.Login)
		authGroup.POST("/refresh", r.params.UserHandler.Refresh)
	}

	// Customer routes that require authentication
	authenticate := r.params.AuthMiddleware.Authenticate

	cartGroup := e.Group("/cart", authenticate)
	{
		cartGroup.GET("", r.params.CartHandler.Get)
		cartGroup.DELETE("", r.params.CartHandler.Clear)
		cartGroup.POST("/items", r.params.CartHandler.AddItem)
		cartGroup.POST("/items/:productID/increase", r.params.CartHandler.IncreaseItem)
		cartGroup.POST("/items/:productID/decrease", r.params.CartHandler.DecreaseItem)
	}

	checkoutGroup := e.Group("/checkout", authenticate)
	{
		checkoutGroup.GET("", r.params.OrderHandler.CheckoutView)
		checkoutGroup.POST("", r.params.OrderHandler.Checkout)
		checkoutGroup.POST("/continue", r.params.OrderHandler.ContinueCheckout)
	}

	orderGroup := e.Group("/orders", authenticate)
	{
		orderGroup.GET("", r.params.OrderHandler.ListOrders)
		orderGroup.GET("/active", r.params.OrderHandler.GetActiveOrder)
	}

	e.GET("/notifications", r.params.NotificationHandler.ListMine, authenticate)

	supportGroup := e.Group("/support", authenticate)
	{
		supportGroup.POST("", r.params.SupportHandler.Send)
		supportGroup.GET("", r.params.SupportHandler.ListMine)
	}

	// Admin routes require authentication and the "admin" role
	adminGroup := e.Group("/admin", authenticate, r.params.AuthMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/orders", r.params.OrderHandler.ListAllOrders)
		adminGroup.POST("/orders/:id/approve", r.params.OrderHandler.Approve)
		adminGroup.POST("/orders/:id/reject", r.params.OrderHandler.Reject)

		adminGroup.POST("/products", r.params.CatalogHandler.CreateProduct)
		adminGroup.PUT("/products/:id", r.params.CatalogHandler.EditProduct)
		adminGroup.DELETE("/products/:id", r.params.CatalogHandler.DeleteProduct)

		adminGroup.GET("/support", r.params.SupportHandler.ListAll)
		adminGroup.POST("/support/:id/reply", r.params.SupportHandler.Reply)

		adminGroup.GET("/users", r.params.UserHandler.ListUsers)
	}
}
