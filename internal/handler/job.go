// Package handler contains the HTTP handlers for the dashboard API.
package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gigdash/gigdash/internal/domain"
	"github.com/gigdash/gigdash/internal/events"
	"github.com/gigdash/gigdash/internal/logger"
	"github.com/gigdash/gigdash/internal/metrics"
	"github.com/gigdash/gigdash/internal/parser"
	"github.com/gigdash/gigdash/internal/storage"
)

// JobHandler handles job CRUD and clipboard parsing.
type JobHandler struct {
	jobs      storage.JobStore
	publisher *events.Publisher
	metrics   *metrics.Metrics
	logger    logger.Logger
}

// NewJobHandler creates a JobHandler. Publisher and metrics may be nil.
func NewJobHandler(jobs storage.JobStore, publisher *events.Publisher, m *metrics.Metrics, log logger.Logger) *JobHandler {
	return &JobHandler{
		jobs:      jobs,
		publisher: publisher,
		metrics:   m,
		logger:    log,
	}
}

// List returns jobs, optionally filtered by status and platform query params.
func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.jobs.List(c.Request.Context(), storage.JobFilter{
		Status:   c.Query("status"),
		Platform: c.Query("platform"),
	})
	if err != nil {
		h.logger.Error("Failed to list jobs", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list jobs"})
		return
	}

	c.JSON(http.StatusOK, jobs)
}

// GetByID returns a single job.
func (h *JobHandler) GetByID(c *gin.Context) {
	job, err := h.jobs.GetByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
		return
	}
	if err != nil {
		h.logger.Error("Failed to get job", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get job"})
		return
	}

	c.JSON(http.StatusOK, job)
}

// Create adds a job to the board and announces it.
func (h *JobHandler) Create(c *gin.Context) {
	var job domain.Job
	if err := c.ShouldBindJSON(&job); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.jobs.Create(c.Request.Context(), &job); err != nil {
		h.logger.Error("Failed to create job", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create job"})
		return
	}

	h.publisher.PublishAsync(events.Event{
		EventType: events.JobCreated,
		EntityID:  job.ID,
		Payload: events.JobPayload{
			Title:    job.Title,
			Platform: job.Platform,
			Payout:   job.Payout,
			Status:   string(job.Status),
		},
	})
	if h.metrics != nil {
		h.metrics.JobsCreated.WithLabelValues(job.Platform).Inc()
	}

	c.JSON(http.StatusCreated, job)
}

// jobPatch is the partial-update body for PATCH. Pointer fields distinguish
// "absent" from zero values.
type jobPatch struct {
	Title             *string    `json:"title"`
	Description       *string    `json:"description"`
	Platform          *string    `json:"platform"`
	Payout            *string    `json:"payout"`
	Reimbursement     *string    `json:"reimbursement"`
	TipEstimate       *string    `json:"tipEstimate"`
	Address           *string    `json:"address"`
	Latitude          *string    `json:"latitude"`
	Longitude         *string    `json:"longitude"`
	TimeWindowStart   *time.Time `json:"timeWindowStart"`
	TimeWindowEnd     *time.Time `json:"timeWindowEnd"`
	EstimatedDuration *int       `json:"estimatedDuration"`
	Status            *string    `json:"status"`
	Priority          *int       `json:"priority"`
	Tags              *[]string  `json:"tags"`
	ROI               *string    `json:"roi"`
}

// Update applies a partial update to a job.
func (h *JobHandler) Update(c *gin.Context) {
	var patch jobPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job, err := h.jobs.GetByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
		return
	}
	if err != nil {
		h.logger.Error("Failed to load job for update", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update job"})
		return
	}

	applyJobPatch(job, patch)

	if err := h.jobs.Update(c.Request.Context(), job); err != nil {
		h.logger.Error("Failed to update job", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update job"})
		return
	}

	h.publisher.PublishAsync(events.Event{
		EventType: events.JobUpdated,
		EntityID:  job.ID,
		Payload: events.JobPayload{
			Title:    job.Title,
			Platform: job.Platform,
			Payout:   job.Payout,
			Status:   string(job.Status),
		},
	})

	c.JSON(http.StatusOK, job)
}

// Delete removes a job.
func (h *JobHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	err := h.jobs.Delete(c.Request.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
		return
	}
	if err != nil {
		h.logger.Error("Failed to delete job", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete job"})
		return
	}

	h.publisher.PublishAsync(events.Event{
		EventType: events.JobDeleted,
		EntityID:  id,
	})

	c.Status(http.StatusNoContent)
}

// parseRequest is the body for POST /api/jobs/parse.
type parseRequest struct {
	Text     string `json:"text" binding:"required"`
	Platform string `json:"platform"`
}

// Parse extracts a job draft from pasted text. Always succeeds for non-empty
// text; unknown platforms are handled generically.
func (h *JobHandler) Parse(c *gin.Context) {
	var req parseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	draft := parser.Parse(req.Text, req.Platform)

	if h.metrics != nil {
		h.metrics.JobsParsed.WithLabelValues(draft.Platform).Inc()
	}

	c.JSON(http.StatusOK, draft)
}

func applyJobPatch(job *domain.Job, patch jobPatch) {
	if patch.Title != nil {
		job.Title = *patch.Title
	}
	if patch.Description != nil {
		job.Description = *patch.Description
	}
	if patch.Platform != nil {
		job.Platform = *patch.Platform
	}
	if patch.Payout != nil {
		job.Payout = *patch.Payout
	}
	if patch.Reimbursement != nil {
		job.Reimbursement = *patch.Reimbursement
	}
	if patch.TipEstimate != nil {
		job.TipEstimate = *patch.TipEstimate
	}
	if patch.Address != nil {
		job.Address = *patch.Address
	}
	if patch.Latitude != nil {
		job.Latitude = *patch.Latitude
	}
	if patch.Longitude != nil {
		job.Longitude = *patch.Longitude
	}
	if patch.TimeWindowStart != nil {
		job.TimeWindowStart = patch.TimeWindowStart
	}
	if patch.TimeWindowEnd != nil {
		job.TimeWindowEnd = patch.TimeWindowEnd
	}
	if patch.EstimatedDuration != nil {
		job.EstimatedDuration = *patch.EstimatedDuration
	}
	if patch.Status != nil {
		job.Status = domain.JobStatus(*patch.Status)
	}
	if patch.Priority != nil {
		job.Priority = *patch.Priority
	}
	if patch.Tags != nil {
		job.Tags = *patch.Tags
	}
	if patch.ROI != nil {
		job.ROI = *patch.ROI
	}
}
