package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gigdash/gigdash/internal/domain"
	"github.com/gigdash/gigdash/internal/logger"
	"github.com/gigdash/gigdash/internal/storage"
)

// AnalyticsHandler serves the dashboard summary card.
type AnalyticsHandler struct {
	store  storage.Store
	logger logger.Logger
}

func NewAnalyticsHandler(store storage.Store, log logger.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		store:  store,
		logger: log,
	}
}

// DashboardSummary aggregates today's activity.
type DashboardSummary struct {
	TodayEarnings  float64 `json:"todayEarnings"`
	CompletedJobs  int     `json:"completedJobs"`
	AvailableJobs  int     `json:"availableJobs"`
	ActiveRoutes   int     `json:"activeRoutes"`
	TodayJobsCount int     `json:"todayJobsCount"`
}

// Dashboard computes the summary. Amounts are permissively coerced, so a
// malformed stored amount counts as zero rather than failing the request.
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()
	startOfDay := startOfToday()

	earnings, err := h.store.Earnings().List(ctx, storage.EarningFilter{From: &startOfDay})
	if err != nil {
		h.logger.Error("Failed to load earnings for dashboard", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build dashboard"})
		return
	}

	var summary DashboardSummary
	var todayJobs = map[string]struct{}{}
	for _, e := range earnings {
		summary.TodayEarnings += domain.ParseAmount(e.Amount) + domain.ParseAmount(e.Tips)
		if e.JobID != "" {
			todayJobs[e.JobID] = struct{}{}
		}
	}
	summary.TodayJobsCount = len(todayJobs)

	completed, err := h.store.Jobs().List(ctx, storage.JobFilter{Status: string(domain.StatusCompleted)})
	if err != nil {
		h.logger.Error("Failed to count completed jobs", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build dashboard"})
		return
	}
	summary.CompletedJobs = len(completed)

	available, err := h.store.Jobs().List(ctx, storage.JobFilter{Status: string(domain.StatusAvailable)})
	if err != nil {
		h.logger.Error("Failed to count available jobs", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build dashboard"})
		return
	}
	summary.AvailableJobs = len(available)

	routes, err := h.store.Routes().List(ctx)
	if err != nil {
		h.logger.Error("Failed to count active routes", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build dashboard"})
		return
	}
	for _, route := range routes {
		if route.Status == domain.RouteStatusActive {
			summary.ActiveRoutes++
		}
	}

	c.JSON(http.StatusOK, summary)
}

func startOfToday() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
