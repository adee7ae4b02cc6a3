// Package events publishes job and route lifecycle events to Redis Streams
// so downstream consumers (notifiers, analytics pipelines) can react to
// dashboard activity.
package events

import (
	"time"

	"github.com/google/uuid"
)

// DefaultStream is the Redis stream events are published to unless
// configured otherwise.
const DefaultStream = "gigdash:events"

// EventType represents the type of dashboard event.
type EventType string

const (
	// JobCreated indicates a new job was added to the board.
	JobCreated EventType = "JOB_CREATED"
	// JobUpdated indicates an existing job was modified.
	JobUpdated EventType = "JOB_UPDATED"
	// JobDeleted indicates a job was removed.
	JobDeleted EventType = "JOB_DELETED"
	// JobExpired indicates a job's time window closed before completion.
	JobExpired EventType = "JOB_EXPIRED"
	// RouteOptimized indicates a route was built by the optimizer.
	RouteOptimized EventType = "ROUTE_OPTIMIZED"
)

// Event is the envelope for all dashboard events.
type Event struct {
	EventID   uuid.UUID `json:"event_id"`
	EventType EventType `json:"event_type"`
	EntityID  string    `json:"entity_id"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload"`
}

// JobPayload carries job details for JOB_* events.
type JobPayload struct {
	Title    string `json:"title"`
	Platform string `json:"platform"`
	Payout   string `json:"payout"`
	Status   string `json:"status"`
}

// RouteOptimizedPayload carries rollups for ROUTE_OPTIMIZED events.
type RouteOptimizedPayload struct {
	JobCount      int     `json:"job_count"`
	TotalDistance float64 `json:"total_distance"`
	TotalDuration float64 `json:"total_duration"`
	TotalEarnings float64 `json:"total_earnings"`
}
