// Package domain defines the data structures shared across the service.
package domain

import "time"

// JobStatus is the lifecycle state of a job posting.
type JobStatus string

const (
	StatusAvailable  JobStatus = "available"
	StatusSelected   JobStatus = "selected"
	StatusInProgress JobStatus = "in_progress"
	StatusCompleted  JobStatus = "completed"
	StatusExpired    JobStatus = "expired"
)

// Known source platforms. Unrecognized platform strings are accepted and
// treated generically, so this list is advisory rather than exhaustive.
const (
	PlatformInstacart     = "instacart"
	PlatformDoorDash      = "doordash"
	PlatformUber          = "uber"
	PlatformFieldAgent    = "fieldagent"
	PlatformEPMS          = "epms"
	PlatformEllis         = "ellis"
	PlatformAlt360        = "alt360"
	PlatformPrestoShopper = "prestoshopper"
	PlatformManual        = "manual"
)

// Job is a gig posting aggregated from an external platform.
//
// Monetary and coordinate fields are decimal strings, mirroring the decimal
// columns they are stored in. Consumers coerce them permissively: a value
// that fails to parse is treated as zero (or the city-center fallback for
// coordinates), never as an error.
type Job struct {
	ID                string     `json:"id" db:"id"`
	Title             string     `json:"title" db:"title" binding:"required"`
	Description       string     `json:"description" db:"description"`
	Platform          string     `json:"platform" db:"platform" binding:"required"`
	Source            string     `json:"source" db:"source"`
	Payout            string     `json:"payout" db:"payout" binding:"required"`
	Reimbursement     string     `json:"reimbursement" db:"reimbursement"`
	TipEstimate       string     `json:"tipEstimate" db:"tip_estimate"`
	Address           string     `json:"address" db:"address" binding:"required"`
	Latitude          string     `json:"latitude,omitempty" db:"latitude"`
	Longitude         string     `json:"longitude,omitempty" db:"longitude"`
	TimeWindowStart   *time.Time `json:"timeWindowStart,omitempty" db:"time_window_start"`
	TimeWindowEnd     *time.Time `json:"timeWindowEnd,omitempty" db:"time_window_end"`
	EstimatedDuration int        `json:"estimatedDuration" db:"estimated_duration"`
	Status            JobStatus  `json:"status" db:"status"`
	Priority          int        `json:"priority" db:"priority"`
	Tags              []string   `json:"tags" db:"tags"`
	ROI               string     `json:"roi,omitempty" db:"roi"`
	CreatedAt         time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time  `json:"updatedAt" db:"updated_at"`
}

// Draft is a partially populated job produced by the text parser, prior to
// review and persistence. Every field is always populated, falling back to
// generic defaults when nothing could be extracted.
type Draft struct {
	Title             string `json:"title"`
	Description       string `json:"description"`
	Platform          string `json:"platform"`
	Source            string `json:"source"`
	Payout            string `json:"payout"`
	Address           string `json:"address"`
	EstimatedDuration int    `json:"estimatedDuration"`
}

// Coordinate is a geographic point in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
