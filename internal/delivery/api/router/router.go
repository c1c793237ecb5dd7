// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"clientverse/internal/delivery/api/middleware"
	"clientverse/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ClientHandler  *handler.ClientHandler
	StreamHandler  *handler.StreamHandler
	FlowHandler    *handler.FlowHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	clientHandler  *handler.ClientHandler
	streamHandler  *handler.StreamHandler
	flowHandler    *handler.FlowHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		clientHandler:  params.ClientHandler,
		streamHandler:  params.StreamHandler,
		flowHandler:    params.FlowHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Browsers cannot send headers on a WebSocket upgrade, so the stream has its own auth
	e.GET("/api/v1/clients/stream", r.streamHandler.StreamClients, r.authMiddleware.AuthenticateStream)

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	// Client management routes
	clientsGroup := apiV1.Group("/clients")
	{
		clientsGroup.GET("", r.clientHandler.ListClients)
		clientsGroup.POST("", r.clientHandler.CreateClient)
		clientsGroup.GET("/:id", r.clientHandler.GetClient)
		clientsGroup.PUT("/:id", r.clientHandler.UpdateClient)
		clientsGroup.DELETE("/:id", r.clientHandler.DeleteClient)
		clientsGroup.GET("/:id/contact-card.png", r.clientHandler.GetContactCard)
	}

	// AI flow routes
	flowsGroup := apiV1.Group("/flows")
	{
		flowsGroup.POST("/autofillData", r.flowHandler.AutofillData)
		flowsGroup.POST("/getProductRecommendations", r.flowHandler.GetProductRecommendations)
	}
}
