package api

import (
	"github.com/gin-gonic/gin"

	"github.com/gigdash/gigdash/internal/handler"
	"github.com/gigdash/gigdash/internal/metrics"
)

// Handlers bundles the route dependencies for SetupRoutes.
type Handlers struct {
	Jobs      *handler.JobHandler
	Routes    *handler.RouteHandler
	Earnings  *handler.EarningHandler
	Analytics *handler.AnalyticsHandler
	Health    *handler.HealthHandler
}

// SetupRoutes configures all API routes. The metrics middleware wraps only
// the /api group so health probes and scrapes do not count themselves.
func SetupRoutes(router *gin.Engine, h Handlers, m *metrics.Metrics) {
	router.GET("/health", h.Health.Health)
	router.HEAD("/health", h.Health.Health)
	router.GET("/metrics", gin.WrapH(m.Handler()))

	api := router.Group("/api")
	api.Use(m.Middleware())

	jobs := api.Group("/jobs")
	jobs.GET("", h.Jobs.List)
	jobs.POST("", h.Jobs.Create)
	jobs.POST("/parse", h.Jobs.Parse)
	jobs.GET("/:id", h.Jobs.GetByID)
	jobs.PATCH("/:id", h.Jobs.Update)
	jobs.DELETE("/:id", h.Jobs.Delete)

	routes := api.Group("/routes")
	routes.GET("", h.Routes.List)
	routes.POST("", h.Routes.Create)
	routes.POST("/optimize", h.Routes.Optimize)
	routes.GET("/:id", h.Routes.GetByID)
	routes.GET("/:id/metrics", h.Routes.Metrics)
	routes.DELETE("/:id", h.Routes.Delete)

	earnings := api.Group("/earnings")
	earnings.GET("", h.Earnings.List)
	earnings.POST("", h.Earnings.Create)

	api.GET("/analytics/dashboard", h.Analytics.Dashboard)
}
