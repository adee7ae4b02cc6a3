package bootstrap

import (
	"github.com/gin-gonic/gin"

	"github.com/gigdash/gigdash/internal/api"
	"github.com/gigdash/gigdash/internal/config"
	"github.com/gigdash/gigdash/internal/events"
	"github.com/gigdash/gigdash/internal/handler"
	"github.com/gigdash/gigdash/internal/logger"
	"github.com/gigdash/gigdash/internal/metrics"
	"github.com/gigdash/gigdash/internal/scheduler"
	"github.com/gigdash/gigdash/internal/storage"
)

// SetupHTTPServer wires handlers, metrics, and the expiry scheduler.
func SetupHTTPServer(
	cfg *config.Config,
	store storage.Store,
	publisher *events.Publisher,
	log logger.Logger,
) (*api.Server, *scheduler.Scheduler) {
	m := metrics.New()

	handlers := api.Handlers{
		Jobs:      handler.NewJobHandler(store.Jobs(), publisher, m, log),
		Routes:    handler.NewRouteHandler(store.Routes(), store.Jobs(), publisher, m, log),
		Earnings:  handler.NewEarningHandler(store.Earnings(), log),
		Analytics: handler.NewAnalyticsHandler(store, log),
		Health:    handler.NewHealthHandler(store),
	}

	server := api.NewServer(cfg.Server, cfg.Debug, log, func(router *gin.Engine) {
		api.SetupRoutes(router, handlers, m)
	})

	sched := scheduler.New(store.Jobs(), publisher, m, log, cfg.Scheduler.ExpirySchedule)

	return server, sched
}
