// Package storage persists jobs, routes, and earnings. The interfaces here
// are the seams between HTTP handlers and the backing store; postgres.go is
// the production implementation and memory.go backs tests and local runs
// without a database.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/gigdash/gigdash/internal/domain"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// JobFilter narrows job listings. Zero values mean "all".
type JobFilter struct {
	Status   string
	Platform string
}

// JobStore persists gig jobs.
type JobStore interface {
	Create(ctx context.Context, job *domain.Job) error
	GetByID(ctx context.Context, id string) (*domain.Job, error)
	List(ctx context.Context, filter JobFilter) ([]domain.Job, error)
	Update(ctx context.Context, job *domain.Job) error
	Delete(ctx context.Context, id string) error
	// ExpireBefore marks open jobs (available or selected) whose time window
	// closed before the cutoff as expired and returns their IDs.
	ExpireBefore(ctx context.Context, cutoff time.Time) ([]string, error)
}

// RouteStore persists optimized routes.
type RouteStore interface {
	Create(ctx context.Context, route *domain.Route) error
	GetByID(ctx context.Context, id string) (*domain.Route, error)
	List(ctx context.Context) ([]domain.Route, error)
	Update(ctx context.Context, route *domain.Route) error
	Delete(ctx context.Context, id string) error
}

// EarningFilter narrows earning listings to a date range. Nil bounds are
// open-ended.
type EarningFilter struct {
	From *time.Time
	To   *time.Time
}

// EarningStore persists completed-job earnings.
type EarningStore interface {
	Create(ctx context.Context, earning *domain.Earning) error
	List(ctx context.Context, filter EarningFilter) ([]domain.Earning, error)
}

// Store bundles the per-entity stores behind a single dependency.
type Store interface {
	Jobs() JobStore
	Routes() RouteStore
	Earnings() EarningStore
	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
	Close() error
}
