// Package scheduler runs the periodic job-expiry sweep: open jobs whose
// time window has closed are transitioned to expired so they drop off the
// board without user action.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/gigdash/gigdash/internal/events"
	"github.com/gigdash/gigdash/internal/logger"
	"github.com/gigdash/gigdash/internal/metrics"
	"github.com/gigdash/gigdash/internal/storage"
)

const sweepTimeout = 30 * time.Second

// Scheduler wraps robfig/cron and manages the expiry sweep.
type Scheduler struct {
	cron      *cron.Cron
	jobs      storage.JobStore
	publisher *events.Publisher
	metrics   *metrics.Metrics
	log       logger.Logger
	spec      string
}

// New creates a Scheduler firing on the given cron spec.
// The publisher and metrics may be nil.
func New(jobs storage.JobStore, publisher *events.Publisher, m *metrics.Metrics, log logger.Logger, spec string) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		jobs:      jobs,
		publisher: publisher,
		metrics:   m,
		log:       log,
		spec:      spec,
	}
}

// Start registers the sweep and starts the scheduler. One sweep runs
// immediately so stale jobs clear without waiting for the first tick.
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.spec, s.sweep)
	if err != nil {
		return fmt.Errorf("register expiry sweep: %w", err)
	}

	s.cron.Start()
	s.log.Info("Expiry scheduler started", logger.String("spec", s.spec))

	go s.sweep()

	return nil
}

// Stop shuts down the scheduler and waits for a running sweep to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info("Expiry scheduler stopped")
}

// Sweep expires jobs whose window closed before now. Exported for handlers
// and tests that need an on-demand sweep.
func (s *Scheduler) Sweep(ctx context.Context) (int, error) {
	ids, err := s.jobs.ExpireBefore(ctx, time.Now())
	if err != nil {
		return 0, fmt.Errorf("expire jobs: %w", err)
	}

	for _, id := range ids {
		s.publisher.PublishAsync(events.Event{
			EventType: events.JobExpired,
			EntityID:  id,
		})
	}
	if s.metrics != nil {
		s.metrics.JobsExpired.Add(float64(len(ids)))
	}

	return len(ids), nil
}

func (s *Scheduler) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	count, err := s.Sweep(ctx)
	if err != nil {
		s.log.Error("Expiry sweep failed", logger.Error(err))
		return
	}
	if count > 0 {
		s.log.Info("Expired stale jobs", logger.Int("count", count))
	}
}
