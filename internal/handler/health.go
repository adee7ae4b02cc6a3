package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gigdash/gigdash/internal/storage"
)

// HealthHandler reports service and storage health.
type HealthHandler struct {
	store     storage.Store
	startedAt time.Time
}

func NewHealthHandler(store storage.Store) *HealthHandler {
	return &HealthHandler{
		store:     store,
		startedAt: time.Now(),
	}
}

// Health returns 200 when the backing store is reachable, 503 otherwise.
func (h *HealthHandler) Health(c *gin.Context) {
	status := "ok"
	code := http.StatusOK

	if err := h.store.Ping(c.Request.Context()); err != nil {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	if c.Request.Method == http.MethodHead {
		c.Status(code)
		return
	}

	c.JSON(code, gin.H{
		"status": status,
		"uptime": time.Since(h.startedAt).String(),
	})
}
