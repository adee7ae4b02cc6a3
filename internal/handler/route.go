package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gigdash/gigdash/internal/domain"
	"github.com/gigdash/gigdash/internal/events"
	"github.com/gigdash/gigdash/internal/logger"
	"github.com/gigdash/gigdash/internal/metrics"
	"github.com/gigdash/gigdash/internal/optimizer"
	"github.com/gigdash/gigdash/internal/storage"
)

// RouteHandler handles route CRUD and optimization.
type RouteHandler struct {
	routes    storage.RouteStore
	jobs      storage.JobStore
	publisher *events.Publisher
	metrics   *metrics.Metrics
	logger    logger.Logger
}

// NewRouteHandler creates a RouteHandler. Publisher and metrics may be nil.
func NewRouteHandler(routes storage.RouteStore, jobs storage.JobStore, publisher *events.Publisher, m *metrics.Metrics, log logger.Logger) *RouteHandler {
	return &RouteHandler{
		routes:    routes,
		jobs:      jobs,
		publisher: publisher,
		metrics:   m,
		logger:    log,
	}
}

// List returns all routes, newest first.
func (h *RouteHandler) List(c *gin.Context) {
	routes, err := h.routes.List(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list routes", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list routes"})
		return
	}

	c.JSON(http.StatusOK, routes)
}

// GetByID returns a single route.
func (h *RouteHandler) GetByID(c *gin.Context) {
	route, err := h.routes.GetByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
		return
	}
	if err != nil {
		h.logger.Error("Failed to get route", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get route"})
		return
	}

	c.JSON(http.StatusOK, route)
}

// Create persists a route as-is, without optimization.
func (h *RouteHandler) Create(c *gin.Context) {
	var route domain.Route
	if err := c.ShouldBindJSON(&route); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.routes.Create(c.Request.Context(), &route); err != nil {
		h.logger.Error("Failed to create route", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create route"})
		return
	}

	c.JSON(http.StatusCreated, route)
}

// Delete removes a route.
func (h *RouteHandler) Delete(c *gin.Context) {
	err := h.routes.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
		return
	}
	if err != nil {
		h.logger.Error("Failed to delete route", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete route"})
		return
	}

	c.Status(http.StatusNoContent)
}

// optimizeRequest is the body for POST /api/routes/optimize.
type optimizeRequest struct {
	JobIDs        []string           `json:"jobIds" binding:"required,min=1"`
	StartLocation *domain.Coordinate `json:"startLocation"`
	Name          string             `json:"name"`
}

// Optimize loads the requested jobs, runs the route optimizer, persists the
// result, and marks member jobs selected.
func (h *RouteHandler) Optimize(c *gin.Context) {
	var req optimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	jobs := make([]domain.Job, 0, len(req.JobIDs))
	for _, id := range req.JobIDs {
		job, err := h.jobs.GetByID(ctx, id)
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "job not found: " + id})
			return
		}
		if err != nil {
			h.logger.Error("Failed to load job for optimization", logger.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to optimize route"})
			return
		}
		jobs = append(jobs, *job)
	}

	route := optimizer.Optimize(jobs, req.StartLocation, time.Now())
	route.Name = req.Name
	if route.Name == "" {
		route.Name = fmt.Sprintf("Route %s", time.Now().Format("Jan 2 3:04 PM"))
	}

	if err := h.routes.Create(ctx, &route); err != nil {
		h.logger.Error("Failed to persist optimized route", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to optimize route"})
		return
	}

	for i := range jobs {
		jobs[i].Status = domain.StatusSelected
		if err := h.jobs.Update(ctx, &jobs[i]); err != nil {
			h.logger.Warn("Failed to mark job selected",
				logger.String("job_id", jobs[i].ID),
				logger.Error(err),
			)
		}
	}

	h.publisher.PublishAsync(events.Event{
		EventType: events.RouteOptimized,
		EntityID:  route.ID,
		Payload: events.RouteOptimizedPayload{
			JobCount:      len(route.JobIDs),
			TotalDistance: route.TotalDistance,
			TotalDuration: route.TotalDuration,
			TotalEarnings: route.TotalEarnings,
		},
	})
	if h.metrics != nil {
		h.metrics.RoutesOptimized.Inc()
		h.metrics.RouteJobCount.Observe(float64(len(route.JobIDs)))
	}

	c.JSON(http.StatusCreated, route)
}

// Metrics returns aggregate statistics for a route's job set. Jobs deleted
// since the route was built are skipped.
func (h *RouteHandler) Metrics(c *gin.Context) {
	ctx := c.Request.Context()

	route, err := h.routes.GetByID(ctx, c.Param("id"))
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
		return
	}
	if err != nil {
		h.logger.Error("Failed to get route", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get route metrics"})
		return
	}

	jobs := make([]domain.Job, 0, len(route.JobIDs))
	for _, id := range route.JobIDs {
		job, jobErr := h.jobs.GetByID(ctx, id)
		if errors.Is(jobErr, storage.ErrNotFound) {
			continue
		}
		if jobErr != nil {
			h.logger.Error("Failed to load route job", logger.Error(jobErr))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get route metrics"})
			return
		}
		jobs = append(jobs, *job)
	}

	c.JSON(http.StatusOK, optimizer.Metrics(jobs))
}
