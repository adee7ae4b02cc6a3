package scheduler_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gigdash/gigdash/internal/domain"
	"github.com/gigdash/gigdash/internal/logger"
	"github.com/gigdash/gigdash/internal/metrics"
	"github.com/gigdash/gigdash/internal/scheduler"
	"github.com/gigdash/gigdash/internal/storage"
)

func seedJob(t *testing.T, store *storage.MemoryStore, status domain.JobStatus, windowEnd *time.Time) string {
	t.Helper()

	job := &domain.Job{
		Title:         "sweep target",
		Platform:      "manual",
		Payout:        "10.00",
		Address:       "somewhere",
		Status:        status,
		TimeWindowEnd: windowEnd,
	}
	require.NoError(t, store.Jobs().Create(context.Background(), job))
	return job.ID
}

func TestSweep_ExpiresStaleJobs(t *testing.T) {
	store := storage.NewMemory()
	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)

	stale := seedJob(t, store, domain.StatusAvailable, &past)
	staleSelected := seedJob(t, store, domain.StatusSelected, &past)
	fresh := seedJob(t, store, domain.StatusAvailable, &future)
	windowless := seedJob(t, store, domain.StatusAvailable, nil)

	s := scheduler.New(store.Jobs(), nil, metrics.New(), logger.NewNop(), "*/5 * * * *")

	count, err := s.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	for id, want := range map[string]domain.JobStatus{
		stale:         domain.StatusExpired,
		staleSelected: domain.StatusExpired,
		fresh:         domain.StatusAvailable,
		windowless:    domain.StatusAvailable,
	} {
		job, err := store.Jobs().GetByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, want, job.Status, "job %s", id)
	}
}

func TestSweep_NothingToExpire(t *testing.T) {
	store := storage.NewMemory()
	s := scheduler.New(store.Jobs(), nil, nil, logger.NewNop(), "*/5 * * * *")

	count, err := s.Sweep(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestStartAndStop(t *testing.T) {
	store := storage.NewMemory()
	past := time.Now().Add(-time.Minute)
	stale := seedJob(t, store, domain.StatusAvailable, &past)

	s := scheduler.New(store.Jobs(), nil, nil, logger.NewNop(), "*/5 * * * *")
	require.NoError(t, s.Start())

	// Start kicks off an immediate sweep; give it a moment to land.
	require.Eventually(t, func() bool {
		job, err := store.Jobs().GetByID(context.Background(), stale)
		return err == nil && job.Status == domain.StatusExpired
	}, 2*time.Second, 10*time.Millisecond)

	s.Stop()
}

func TestStart_BadCronSpec(t *testing.T) {
	s := scheduler.New(storage.NewMemory().Jobs(), nil, nil, logger.NewNop(), "not a cron spec")
	assert.Error(t, s.Start())
}
