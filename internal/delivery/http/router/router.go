// Package router contains routing setup for the HTTP delivery.
package router

import (
	"github.com/OtooCodes/ecommerce-api/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProductHandler *handler.ProductHandler
	UserHandler    *handler.UserHandler
	CartHandler    *handler.CartHandler
	OrderHandler   *handler.OrderHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	productHandler *handler.ProductHandler
	userHandler    *handler.UserHandler
	cartHandler    *handler.CartHandler
	orderHandler   *handler.OrderHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		productHandler: params.ProductHandler,
		userHandler:    params.UserHandler,
		cartHandler:    params.CartHandler,
		orderHandler:   params.OrderHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Welcome and health endpoints
	e.GET("/", handler.Root)
	e.GET("/health", handler.HealthCheck)

	// Catalog routes
	e.GET("/products", r.productHandler.ListProducts)
	e.GET("/products/:id", r.productHandler.GetProduct)

	// Identity routes
	e.POST("/register", r.userHandler.Register)
	e.POST("/login", r.userHandler.Login)

	// Cart routes
	e.POST("/cart", r.cartHandler.AddToCart)
	e.GET("/cart/:user_id", r.cartHandler.GetCart)

	// Checkout and order history routes
	e.POST("/checkout/:user_id", r.orderHandler.Checkout)
	e.GET("/orders/:user_id", r.orderHandler.ListOrders)
}
