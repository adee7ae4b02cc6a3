package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/gigdash/gigdash/internal/domain"
	"github.com/gigdash/gigdash/internal/logger"
)

const routeColumns = `id, name, job_ids, total_distance, total_duration,
	       total_earnings, estimated_completion_time, optimized, status,
	       steps, started_at, completed_at, created_at`

// RouteRepository persists routes in PostgreSQL. Steps are stored as JSONB
// since they are written and read whole, never queried individually.
type RouteRepository struct {
	db     *sql.DB
	logger logger.Logger
}

func NewRouteRepository(db *sql.DB, log logger.Logger) *RouteRepository {
	return &RouteRepository{
		db:     db,
		logger: log,
	}
}

func (r *RouteRepository) Create(ctx context.Context, route *domain.Route) error {
	route.ID = uuid.New().String()
	route.CreatedAt = time.Now()
	if route.Status == "" {
		route.Status = domain.RouteStatusDraft
	}
	if route.JobIDs == nil {
		route.JobIDs = []string{}
	}

	stepsJSON, err := json.Marshal(route.Steps)
	if err != nil {
		return fmt.Errorf("marshal steps: %w", err)
	}

	query := `
		INSERT INTO routes (
			id, name, job_ids, total_distance, total_duration,
			total_earnings, estimated_completion_time, optimized, status,
			steps, started_at, completed_at, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err = r.db.ExecContext(ctx,
		query,
		route.ID,
		route.Name,
		pq.Array(route.JobIDs),
		route.TotalDistance,
		route.TotalDuration,
		route.TotalEarnings,
		route.EstimatedCompletionTime,
		route.Optimized,
		route.Status,
		stepsJSON,
		nullTime(route.StartedAt),
		nullTime(route.CompletedAt),
		route.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("insert route: %w", err)
	}

	return nil
}

func (r *RouteRepository) GetByID(ctx context.Context, id string) (*domain.Route, error) {
	query := `
		SELECT ` + routeColumns + `
		FROM routes
		WHERE id = $1
	`

	route, err := scanRoute(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query route: %w", err)
	}

	return route, nil
}

func (r *RouteRepository) List(ctx context.Context) ([]domain.Route, error) {
	query := `
		SELECT ` + routeColumns + `
		FROM routes
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query routes: %w", err)
	}
	defer rows.Close()

	routes := make([]domain.Route, 0)
	for rows.Next() {
		route, scanErr := scanRoute(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("scan route: %w", scanErr)
		}
		routes = append(routes, *route)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate routes: %w", err)
	}

	return routes, nil
}

func (r *RouteRepository) Update(ctx context.Context, route *domain.Route) error {
	if route.JobIDs == nil {
		route.JobIDs = []string{}
	}

	stepsJSON, err := json.Marshal(route.Steps)
	if err != nil {
		return fmt.Errorf("marshal steps: %w", err)
	}

	query := `
		UPDATE routes
		SET name = $2, job_ids = $3, total_distance = $4, total_duration = $5,
		    total_earnings = $6, estimated_completion_time = $7, optimized = $8,
		    status = $9, steps = $10, started_at = $11, completed_at = $12
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx,
		query,
		route.ID,
		route.Name,
		pq.Array(route.JobIDs),
		route.TotalDistance,
		route.TotalDuration,
		route.TotalEarnings,
		route.EstimatedCompletionTime,
		route.Optimized,
		route.Status,
		stepsJSON,
		nullTime(route.StartedAt),
		nullTime(route.CompletedAt),
	)

	if err != nil {
		return fmt.Errorf("update route: %w", err)
	}

	return requireRowAffected(result)
}

func (r *RouteRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM routes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete route: %w", err)
	}

	return requireRowAffected(result)
}

func scanRoute(row rowScanner) (*domain.Route, error) {
	var route domain.Route
	var stepsJSON []byte
	var startedAt, completedAt sql.NullTime

	err := row.Scan(
		&route.ID,
		&route.Name,
		pq.Array(&route.JobIDs),
		&route.TotalDistance,
		&route.TotalDuration,
		&route.TotalEarnings,
		&route.EstimatedCompletionTime,
		&route.Optimized,
		&route.Status,
		&stepsJSON,
		&startedAt,
		&completedAt,
		&route.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(stepsJSON) > 0 {
		if unmarshalErr := json.Unmarshal(stepsJSON, &route.Steps); unmarshalErr != nil {
			return nil, fmt.Errorf("unmarshal steps: %w", unmarshalErr)
		}
	}
	route.StartedAt = timePtr(startedAt)
	route.CompletedAt = timePtr(completedAt)
	if route.JobIDs == nil {
		route.JobIDs = []string{}
	}

	return &route, nil
}
