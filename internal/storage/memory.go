package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gigdash/gigdash/internal/domain"
)

// MemoryStore is an in-memory Store used by tests and database-less local
// runs. Safe for concurrent use.
type MemoryStore struct {
	jobs     *memoryJobStore
	routes   *memoryRouteStore
	earnings *memoryEarningStore
}

func NewMemory() *MemoryStore {
	return &MemoryStore{
		jobs:     &memoryJobStore{jobs: make(map[string]domain.Job)},
		routes:   &memoryRouteStore{routes: make(map[string]domain.Route)},
		earnings: &memoryEarningStore{},
	}
}

func (s *MemoryStore) Jobs() JobStore         { return s.jobs }
func (s *MemoryStore) Routes() RouteStore     { return s.routes }
func (s *MemoryStore) Earnings() EarningStore { return s.earnings }

func (s *MemoryStore) Ping(_ context.Context) error { return nil }

func (s *MemoryStore) Close() error { return nil }

// ─── Jobs ───

type memoryJobStore struct {
	mu   sync.RWMutex
	jobs map[string]domain.Job
}

func (m *memoryJobStore) Create(_ context.Context, job *domain.Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	job.ID = uuid.New().String()
	job.CreatedAt = time.Now()
	job.UpdatedAt = job.CreatedAt
	if job.Status == "" {
		job.Status = domain.StatusAvailable
	}
	if job.Tags == nil {
		job.Tags = []string{}
	}

	m.jobs[job.ID] = *job
	return nil
}

func (m *memoryJobStore) GetByID(_ context.Context, id string) (*domain.Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	job, ok := m.jobs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &job, nil
}

func (m *memoryJobStore) List(_ context.Context, filter JobFilter) ([]domain.Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	jobs := make([]domain.Job, 0, len(m.jobs))
	for _, job := range m.jobs {
		if filter.Status != "" && string(job.Status) != filter.Status {
			continue
		}
		if filter.Platform != "" && job.Platform != filter.Platform {
			continue
		}
		jobs = append(jobs, job)
	}
	sort.Slice(jobs, func(i, j int) bool {
		return jobs[i].CreatedAt.After(jobs[j].CreatedAt)
	})
	return jobs, nil
}

func (m *memoryJobStore) Update(_ context.Context, job *domain.Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.jobs[job.ID]; !ok {
		return ErrNotFound
	}
	job.UpdatedAt = time.Now()
	if job.Tags == nil {
		job.Tags = []string{}
	}
	m.jobs[job.ID] = *job
	return nil
}

func (m *memoryJobStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.jobs[id]; !ok {
		return ErrNotFound
	}
	delete(m.jobs, id)
	return nil
}

func (m *memoryJobStore) ExpireBefore(_ context.Context, cutoff time.Time) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make([]string, 0)
	for id, job := range m.jobs {
		if job.Status != domain.StatusAvailable && job.Status != domain.StatusSelected {
			continue
		}
		if job.TimeWindowEnd == nil {
			continue
		}
		if job.TimeWindowEnd.Before(cutoff) {
			job.Status = domain.StatusExpired
			job.UpdatedAt = time.Now()
			m.jobs[id] = job
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

// ─── Routes ───

type memoryRouteStore struct {
	mu     sync.RWMutex
	routes map[string]domain.Route
}

func (m *memoryRouteStore) Create(_ context.Context, route *domain.Route) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	route.ID = uuid.New().String()
	route.CreatedAt = time.Now()
	if route.Status == "" {
		route.Status = domain.RouteStatusDraft
	}
	if route.JobIDs == nil {
		route.JobIDs = []string{}
	}

	m.routes[route.ID] = *route
	return nil
}

func (m *memoryRouteStore) GetByID(_ context.Context, id string) (*domain.Route, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	route, ok := m.routes[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &route, nil
}

func (m *memoryRouteStore) List(_ context.Context) ([]domain.Route, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	routes := make([]domain.Route, 0, len(m.routes))
	for _, route := range m.routes {
		routes = append(routes, route)
	}
	sort.Slice(routes, func(i, j int) bool {
		return routes[i].CreatedAt.After(routes[j].CreatedAt)
	})
	return routes, nil
}

func (m *memoryRouteStore) Update(_ context.Context, route *domain.Route) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.routes[route.ID]; !ok {
		return ErrNotFound
	}
	if route.JobIDs == nil {
		route.JobIDs = []string{}
	}
	m.routes[route.ID] = *route
	return nil
}

func (m *memoryRouteStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.routes[id]; !ok {
		return ErrNotFound
	}
	delete(m.routes, id)
	return nil
}

// ─── Earnings ───

type memoryEarningStore struct {
	mu       sync.RWMutex
	earnings []domain.Earning
}

func (m *memoryEarningStore) Create(_ context.Context, earning *domain.Earning) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	earning.ID = uuid.New().String()
	if earning.Date.IsZero() {
		earning.Date = time.Now()
	}
	m.earnings = append(m.earnings, *earning)
	return nil
}

func (m *memoryEarningStore) List(_ context.Context, filter EarningFilter) ([]domain.Earning, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	earnings := make([]domain.Earning, 0, len(m.earnings))
	for _, e := range m.earnings {
		if filter.From != nil && e.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && e.Date.After(*filter.To) {
			continue
		}
		earnings = append(earnings, e)
	}
	sort.Slice(earnings, func(i, j int) bool {
		return earnings[i].Date.After(earnings[j].Date)
	})
	return earnings, nil
}
