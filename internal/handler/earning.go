package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gigdash/gigdash/internal/domain"
	"github.com/gigdash/gigdash/internal/logger"
	"github.com/gigdash/gigdash/internal/storage"
)

// EarningHandler handles earning records.
type EarningHandler struct {
	earnings storage.EarningStore
	logger   logger.Logger
}

func NewEarningHandler(earnings storage.EarningStore, log logger.Logger) *EarningHandler {
	return &EarningHandler{
		earnings: earnings,
		logger:   log,
	}
}

// List returns earnings, optionally bounded by start and end query params
// (RFC 3339 or YYYY-MM-DD).
func (h *EarningHandler) List(c *gin.Context) {
	from, ok := parseDateParam(c, "start")
	if !ok {
		return
	}
	to, ok := parseDateParam(c, "end")
	if !ok {
		return
	}

	earnings, err := h.earnings.List(c.Request.Context(), storage.EarningFilter{
		From: from,
		To:   to,
	})
	if err != nil {
		h.logger.Error("Failed to list earnings", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list earnings"})
		return
	}

	c.JSON(http.StatusOK, earnings)
}

// Create records an earning.
func (h *EarningHandler) Create(c *gin.Context) {
	var earning domain.Earning
	if err := c.ShouldBindJSON(&earning); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.earnings.Create(c.Request.Context(), &earning); err != nil {
		h.logger.Error("Failed to create earning", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create earning"})
		return
	}

	c.JSON(http.StatusCreated, earning)
}

// parseDateParam reads an optional date query parameter. On a malformed
// value it writes a 400 response and returns ok=false.
func parseDateParam(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, true
		}
	}

	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name + " date"})
	return nil, false
}
