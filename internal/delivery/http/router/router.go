// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"neocart/internal/delivery/http/middleware"
	"neocart/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler    *handler.SessionHandler
	CatalogHandler    *handler.CatalogHandler
	CartHandler       *handler.CartHandler
	WishlistHandler   *handler.WishlistHandler
	OrderHandler      *handler.OrderHandler
	AdminHandler      *handler.AdminHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler    *handler.SessionHandler
	catalogHandler    *handler.CatalogHandler
	cartHandler       *handler.CartHandler
	wishlistHandler   *handler.WishlistHandler
	orderHandler      *handler.OrderHandler
	adminHandler      *handler.AdminHandler
	sessionMiddleware *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler:    params.SessionHandler,
		catalogHandler:    params.CatalogHandler,
		cartHandler:       params.CartHandler,
		wishlistHandler:   params.WishlistHandler,
		orderHandler:      params.OrderHandler,
		adminHandler:      params.AdminHandler,
		sessionMiddleware: params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	api.Use(r.sessionMiddleware.Attach) // Every route gets a session, anonymous or not

	// Session routes; login and the current-session projection are public so
	// visitors can bootstrap.
	sessionGroup := api.Group("/session")
	{
		sessionGroup.POST("/login", r.sessionHandler.Login)
		sessionGroup.GET("", r.sessionHandler.Current)
		sessionGroup.GET("/theme", r.sessionHandler.Theme)
		sessionGroup.PUT("/theme", r.sessionHandler.SetTheme)
		sessionGroup.GET("/ui", r.sessionHandler.UIState)
		sessionGroup.PUT("/ui", r.sessionHandler.SetUIState)
	}

	sessionAuthGroup := api.Group("/session")
	sessionAuthGroup.Use(r.sessionMiddleware.RequireAuth)
	{
		sessionAuthGroup.POST("/logout", r.sessionHandler.Logout)
		sessionAuthGroup.PUT("/profile", r.sessionHandler.UpdateProfile)
		sessionAuthGroup.PUT("/admin-view", r.sessionHandler.SetAdminView)
	}

	// Catalog browsing is open to visitors.
	productGroup := api.Group("/products")
	{
		productGroup.GET("", r.catalogHandler.Browse)
		productGroup.GET("/more", r.catalogHandler.LoadMore)
		productGroup.GET("/:id", r.catalogHandler.Detail)
	}

	api.GET("/reviews/:id", r.catalogHandler.ListReviews)

	reviewGroup := api.Group("/reviews")
	reviewGroup.Use(r.sessionMiddleware.RequireAuth)
	{
		reviewGroup.POST("", r.catalogHandler.CreateReview)
	}

	// Cart, wishlist and orders require a resolved account session.
	cartGroup := api.Group("/cart")
	cartGroup.Use(r.sessionMiddleware.RequireAuth)
	{
		cartGroup.GET("", r.cartHandler.Summary)
		cartGroup.POST("/items", r.cartHandler.Add)
		cartGroup.PATCH("/items/:id", r.cartHandler.AdjustQuantity)
		cartGroup.DELETE("/items/:id", r.cartHandler.Remove)
		cartGroup.POST("/coupon", r.cartHandler.ApplyCoupon)
	}

	wishlistGroup := api.Group("/wishlist")
	wishlistGroup.Use(r.sessionMiddleware.RequireAuth)
	{
		wishlistGroup.GET("", r.wishlistHandler.Lines)
		wishlistGroup.POST("/items", r.wishlistHandler.Add)
		wishlistGroup.DELETE("/items/:id", r.wishlistHandler.Remove)
		wishlistGroup.POST("/items/:id/move-to-cart", r.wishlistHandler.MoveToCart)
	}

	orderGroup := api.Group("/orders")
	orderGroup.Use(r.sessionMiddleware.RequireAuth)
	{
		orderGroup.POST("/checkout", r.orderHandler.Checkout)
		orderGroup.GET("", r.orderHandler.History)
	}

	// Admin routes; the usecase layer enforces the admin identity check.
	adminGroup := api.Group("/admin")
	adminGroup.Use(r.sessionMiddleware.RequireAuth)
	{
		adminGroup.POST("/products", r.adminHandler.CreateProduct)
		adminGroup.PUT("/products/:id", r.adminHandler.UpdateProduct)
		adminGroup.DELETE("/products/:id", r.adminHandler.DeleteProduct)
		adminGroup.DELETE("/products", r.adminHandler.DeleteAllProducts)
		adminGroup.POST("/products/import", r.adminHandler.ImportCatalog)
		adminGroup.GET("/products/export", r.adminHandler.ExportCatalog)
		adminGroup.GET("/users", r.adminHandler.ListUsers)
		adminGroup.POST("/users/:id/verify", r.adminHandler.VerifyUser)
	}
}
