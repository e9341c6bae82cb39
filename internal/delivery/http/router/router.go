// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/config"
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config             *config.Config
	UserHandler        *handler.UserHandler
	ProductHandler     *handler.ProductHandler
	CartHandler        *handler.CartHandler
	OrderHandler       *handler.OrderHandler
	AdminHandler       *handler.AdminHandler
	AuthMiddleware     *middleware.AuthMiddleware
	IdentityMiddleware *middleware.IdentityMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg                *config.Config
	userHandler        *handler.UserHandler
	productHandler     *handler.ProductHandler
	cartHandler        *handler.CartHandler
	orderHandler       *handler.OrderHandler
	adminHandler       *handler.AdminHandler
	authMiddleware     *middleware.AuthMiddleware
	identityMiddleware *middleware.IdentityMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:                params.Config,
		userHandler:        params.UserHandler,
		productHandler:     params.ProductHandler,
		cartHandler:        params.CartHandler,
		orderHandler:       params.OrderHandler,
		adminHandler:       params.AdminHandler,
		authMiddleware:     params.AuthMiddleware,
		identityMiddleware: params.IdentityMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Uploaded product images are served straight off disk.
	e.Static(r.cfg.Uploads.BaseURL, r.cfg.Uploads.Dir)

	// Public catalog routes
	e.GET("/products", r.productHandler.ListProducts)
	e.GET("/products/:id", r.productHandler.GetProduct)
	e.GET("/categories", r.productHandler.ListCategories)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.Refresh)
	}
	e.POST("/auth/logout", r.userHandler.Logout, r.authMiddleware.Authenticate)

	// Cart routes are shared by guests and logged-in users: authentication is
	// optional, then the identity middleware resolves the cart owner from the
	// userID or the X-Guest-Id header.
	cartGroup := e.Group("/cart")
	cartGroup.Use(r.authMiddleware.OptionalAuthenticate)
	cartGroup.Use(r.identityMiddleware.ResolveOwner)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.POST("/add", r.cartHandler.AddItem)
		cartGroup.PUT("/:productId", r.cartHandler.UpdateItem)
		cartGroup.DELETE("/:productId", r.cartHandler.RemoveItem)
		cartGroup.DELETE("/clear", r.cartHandler.ClearCart)
	}
	e.POST("/cart/merge", r.cartHandler.MergeCart, r.authMiddleware.Authenticate)

	// Routes that require authentication
	e.GET("/me", r.userHandler.GetProfile, r.authMiddleware.Authenticate)

	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.POST("", r.orderHandler.CreateOrder)
		orderGroup.GET("", r.orderHandler.ListOrders)
		orderGroup.GET("/:id", r.orderHandler.GetOrder)
		orderGroup.POST("/:id/cancel", r.orderHandler.CancelOrder)
	}

	// Back-office routes require authentication and the "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/products", r.adminHandler.ListProducts)
		adminGroup.POST("/products", r.adminHandler.CreateProduct)
		adminGroup.GET("/products/:id", r.adminHandler.GetProduct)
		adminGroup.PUT("/products/:id", r.adminHandler.UpdateProduct)
		adminGroup.DELETE("/products/:id", r.adminHandler.DeleteProduct)
		adminGroup.GET("/categories", r.adminHandler.ListCategories)
		adminGroup.POST("/categories", r.adminHandler.CreateCategory)
		adminGroup.PUT("/categories/:id", r.adminHandler.UpdateCategory)
		adminGroup.DELETE("/categories/:id", r.adminHandler.DeleteCategory)
		adminGroup.POST("/images", r.adminHandler.UploadProductImage)
	}
}
