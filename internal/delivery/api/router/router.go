// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"hafood/internal/delivery/api/middleware"
	"hafood/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CartHandler       *handler.CartHandler
	DiscountHandler   *handler.DiscountHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cartHandler       *handler.CartHandler
	discountHandler   *handler.DiscountHandler
	sessionMiddleware *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cartHandler:       params.CartHandler,
		discountHandler:   params.DiscountHandler,
		sessionMiddleware: params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	// Cart routes, scoped to the session carried by the session header
	cartGroup := apiV1.Group("/cart")
	cartGroup.Use(r.sessionMiddleware.Resolve)
	{
		cartGroup.GET("", r.cartHandler.GetSummary)
		cartGroup.DELETE("", r.cartHandler.ClearCart)
		cartGroup.GET("/count", r.cartHandler.GetCount)
		cartGroup.GET("/total", r.cartHandler.GetTotal)
		cartGroup.GET("/discounted-total", r.cartHandler.GetDiscountedTotal)

		cartGroup.GET("/items", r.cartHandler.ListItems)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.GET("/items/:sku", r.cartHandler.GetItem)
		cartGroup.GET("/items/:sku/exists", r.cartHandler.ItemExists)
		cartGroup.PUT("/items/:sku", r.cartHandler.UpdateItem)
		cartGroup.DELETE("/items/:sku", r.cartHandler.RemoveItem)
	}

	// Discount catalog routes
	discountsGroup := apiV1.Group("/discounts")
	{
		discountsGroup.GET("", r.discountHandler.ListDiscounts)
		discountsGroup.POST("/refresh", r.discountHandler.RefreshDiscounts)
	}
}
