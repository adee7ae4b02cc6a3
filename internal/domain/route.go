package domain

import "time"

// RouteStatus is the lifecycle state of a planned route.
type RouteStatus string

const (
	RouteStatusDraft     RouteStatus = "draft"
	RouteStatusActive    RouteStatus = "active"
	RouteStatusCompleted RouteStatus = "completed"
)

// RouteStep is one job's position within an optimized route. Travel metrics
// are attributed to the hop from the previous stop and are zero for the
// first stop.
type RouteStep struct {
	JobID                string    `json:"jobId"`
	Job                  Job       `json:"job"`
	Order                int       `json:"order"`
	EstimatedArrival     time.Time `json:"estimatedArrival"`
	DistanceFromPrevious float64   `json:"distanceFromPrevious"`
	DurationFromPrevious float64   `json:"durationFromPrevious"`
}

// Route is an ordered sequence of jobs with travel, time, and earnings
// rollups. Totals are exact sums of the per-step contributions.
type Route struct {
	ID                      string      `json:"id"`
	Name                    string      `json:"name"`
	JobIDs                  []string    `json:"jobIds"`
	TotalDistance           float64     `json:"totalDistance"`
	TotalDuration           float64     `json:"totalDuration"`
	TotalEarnings           float64     `json:"totalEarnings"`
	EstimatedCompletionTime time.Time   `json:"estimatedCompletionTime"`
	Optimized               bool        `json:"optimized"`
	Status                  RouteStatus `json:"status"`
	Steps                   []RouteStep `json:"steps,omitempty"`
	StartedAt               *time.Time  `json:"startedAt,omitempty"`
	CompletedAt             *time.Time  `json:"completedAt,omitempty"`
	CreatedAt               time.Time   `json:"createdAt"`
}

// RouteMetrics summarizes a job set without ordering it. Used for
// route-summary displays.
type RouteMetrics struct {
	TotalEarnings       float64 `json:"totalEarnings"`
	TotalDuration       float64 `json:"totalDuration"`
	AverageROI          float64 `json:"averageROI"`
	EstimatedHourlyRate float64 `json:"estimatedHourlyRate"`
}
