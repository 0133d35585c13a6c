// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"amptrack/internal/delivery/http/middleware"
	"amptrack/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler        *handler.AuthHandler
	ProjectHandler     *handler.ProjectHandler
	CostCodeHandler    *handler.CostCodeHandler
	CostEntryHandler   *handler.CostEntryHandler
	ChangeOrderHandler *handler.ChangeOrderHandler
	AttachmentHandler  *handler.AttachmentHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler        *handler.AuthHandler
	projectHandler     *handler.ProjectHandler
	costCodeHandler    *handler.CostCodeHandler
	costEntryHandler   *handler.CostEntryHandler
	changeOrderHandler *handler.ChangeOrderHandler
	attachmentHandler  *handler.AttachmentHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:        params.AuthHandler,
		projectHandler:     params.ProjectHandler,
		costCodeHandler:    params.CostCodeHandler,
		costEntryHandler:   params.CostEntryHandler,
		changeOrderHandler: params.ChangeOrderHandler,
		attachmentHandler:  params.AttachmentHandler,
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
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Everything under /api requires an authenticated identity.
	api := e.Group("/api")
	api.Use(r.authMiddleware.Authenticate)

	projects := api.Group("/projects")
	{
		projects.POST("", r.projectHandler.Create)
		projects.GET("", r.projectHandler.List)
		projects.GET("/:id", r.projectHandler.Get)
		projects.PUT("/:id", r.projectHandler.Update)
		projects.DELETE("/:id", r.projectHandler.Delete)
		projects.GET("/:id/cost-summary", r.projectHandler.GetCostSummary)
	}

	costCodes := api.Group("/cost-codes")
	{
		costCodes.POST("", r.costCodeHandler.Create)
		costCodes.GET("", r.costCodeHandler.List)
		costCodes.PUT("/:id", r.costCodeHandler.Update)
	}

	costEntries := api.Group("/cost-entries")
	{
		costEntries.POST("", r.costEntryHandler.Create)
		costEntries.GET("", r.costEntryHandler.List)
		costEntries.PUT("/:id", r.costEntryHandler.Update)
		costEntries.DELETE("/:id", r.costEntryHandler.Delete)
	}

	changeOrders := api.Group("/change-orders")
	{
		changeOrders.POST("", r.changeOrderHandler.Create)
		changeOrders.GET("", r.changeOrderHandler.List)
		changeOrders.PUT("/:id", r.changeOrderHandler.Update)
	}

	attachments := api.Group("/attachments")
	{
		attachments.POST("/upload-url", r.attachmentHandler.IssueUploadURL)
		attachments.GET("/download-url", r.attachmentHandler.IssueDownloadURL)
	}
}
