// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"agriconnect/internal/delivery/http/middleware"
	"agriconnect/internal/delivery/http/router/handler"
	"agriconnect/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler        *handler.AuthHandler
	CropHandler        *handler.CropHandler
	TransactionHandler *handler.TransactionHandler
	CommunityHandler   *handler.CommunityHandler
	AssistantHandler   *handler.AssistantHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler        *handler.AuthHandler
	cropHandler        *handler.CropHandler
	transactionHandler *handler.TransactionHandler
	communityHandler   *handler.CommunityHandler
	assistantHandler   *handler.AssistantHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:        params.AuthHandler,
		cropHandler:        params.CropHandler,
		transactionHandler: params.TransactionHandler,
		communityHandler:   params.CommunityHandler,
		assistantHandler:   params.AssistantHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.PUT("/role", r.authHandler.AssignRole, r.authMiddleware.Authenticate)
	}

	// Profile routes
	meGroup := e.Group("/users/me")
	meGroup.Use(r.authMiddleware.Authenticate)
	{
		meGroup.GET("", r.authHandler.GetProfile)
		meGroup.PUT("", r.authHandler.CompleteProfile)
	}

	// User verification and trust routes
	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.POST("/:id/verification-request", r.communityHandler.RequestUserVerification)
		userGroup.POST("/:id/verify", r.communityHandler.VerifyUser,
			r.authMiddleware.RequireRole(string(entity.RoleCommunity)))
		userGroup.GET("/:id/trust-score", r.communityHandler.TrustScore)
	}

	// Marketplace routes
	cropGroup := e.Group("/crops")
	{
		cropGroup.GET("", r.cropHandler.Browse)
		cropGroup.POST("", r.cropHandler.Add,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(string(entity.RoleFarmer)))
		cropGroup.GET("/mine", r.cropHandler.Mine,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(string(entity.RoleFarmer)))
		cropGroup.GET("/:id/qr", r.cropHandler.ShareQR)
		cropGroup.POST("/:id/verification-request", r.cropHandler.RequestVerification,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(string(entity.RoleFarmer)))
		cropGroup.POST("/:id/verify", r.cropHandler.Verify,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(string(entity.RoleCommunity)))
	}

	// Purchase lifecycle routes
	txGroup := e.Group("/transactions")
	txGroup.Use(r.authMiddleware.Authenticate)
	{
		txGroup.POST("", r.transactionHandler.Create,
			r.authMiddleware.RequireRole(string(entity.RoleVendor)))
		txGroup.PATCH("/:id/status", r.transactionHandler.AdvanceStatus)
		txGroup.GET("", r.transactionHandler.List)
	}

	// Community agent routes
	communityGroup := e.Group("/community")
	communityGroup.Use(r.authMiddleware.Authenticate)
	communityGroup.Use(r.authMiddleware.RequireRole(string(entity.RoleCommunity)))
	{
		communityGroup.POST("/farmers", r.communityHandler.EnrollFarmer)
		communityGroup.POST("/crops", r.communityHandler.ListCrop)
		communityGroup.GET("/overview", r.communityHandler.Overview)
	}

	// Assistant routes
	e.POST("/assistant/ask", r.assistantHandler.Ask, r.authMiddleware.Authenticate)
}
