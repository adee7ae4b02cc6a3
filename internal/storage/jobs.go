package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/gigdash/gigdash/internal/domain"
	"github.com/gigdash/gigdash/internal/logger"
)

const jobColumns = `id, title, description, platform, source, payout,
	       reimbursement, tip_estimate, address, latitude, longitude,
	       time_window_start, time_window_end, estimated_duration,
	       status, priority, tags, roi, created_at, updated_at`

// JobRepository persists jobs in PostgreSQL.
type JobRepository struct {
	db     *sql.DB
	logger logger.Logger
}

func NewJobRepository(db *sql.DB, log logger.Logger) *JobRepository {
	return &JobRepository{
		db:     db,
		logger: log,
	}
}

func (r *JobRepository) Create(ctx context.Context, job *domain.Job) error {
	job.ID = uuid.New().String()
	job.CreatedAt = time.Now()
	job.UpdatedAt = job.CreatedAt
	if job.Status == "" {
		job.Status = domain.StatusAvailable
	}
	if job.Tags == nil {
		job.Tags = []string{}
	}

	query := `
		INSERT INTO jobs (
			id, title, description, platform, source, payout,
			reimbursement, tip_estimate, address, latitude, longitude,
			time_window_start, time_window_end, estimated_duration,
			status, priority, tags, roi, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
		          $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
	`

	_, err := r.db.ExecContext(ctx,
		query,
		job.ID,
		job.Title,
		job.Description,
		job.Platform,
		job.Source,
		nullString(job.Payout),
		nullString(job.Reimbursement),
		nullString(job.TipEstimate),
		job.Address,
		nullString(job.Latitude),
		nullString(job.Longitude),
		nullTime(job.TimeWindowStart),
		nullTime(job.TimeWindowEnd),
		job.EstimatedDuration,
		job.Status,
		job.Priority,
		pq.Array(job.Tags),
		nullString(job.ROI),
		job.CreatedAt,
		job.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("insert job: %w", err)
	}

	return nil
}

func (r *JobRepository) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	query := `
		SELECT ` + jobColumns + `
		FROM jobs
		WHERE id = $1
	`

	job, err := scanJob(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query job: %w", err)
	}

	return job, nil
}

func (r *JobRepository) List(ctx context.Context, filter JobFilter) ([]domain.Job, error) {
	whereClause, args := buildJobWhere(filter)
	query := `
		SELECT ` + jobColumns + `
		FROM jobs
		WHERE 1=1` + whereClause + `
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query jobs: %w", err)
	}
	defer rows.Close()

	jobs := make([]domain.Job, 0)
	for rows.Next() {
		job, scanErr := scanJob(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("scan job: %w", scanErr)
		}
		jobs = append(jobs, *job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate jobs: %w", err)
	}

	return jobs, nil
}

func (r *JobRepository) Update(ctx context.Context, job *domain.Job) error {
	job.UpdatedAt = time.Now()
	if job.Tags == nil {
		job.Tags = []string{}
	}

	query := `
		UPDATE jobs
		SET title = $2, description = $3, platform = $4, source = $5,
		    payout = $6, reimbursement = $7, tip_estimate = $8, address = $9,
		    latitude = $10, longitude = $11, time_window_start = $12,
		    time_window_end = $13, estimated_duration = $14, status = $15,
		    priority = $16, tags = $17, roi = $18, updated_at = $19
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx,
		query,
		job.ID,
		job.Title,
		job.Description,
		job.Platform,
		job.Source,
		nullString(job.Payout),
		nullString(job.Reimbursement),
		nullString(job.TipEstimate),
		job.Address,
		nullString(job.Latitude),
		nullString(job.Longitude),
		nullTime(job.TimeWindowStart),
		nullTime(job.TimeWindowEnd),
		job.EstimatedDuration,
		job.Status,
		job.Priority,
		pq.Array(job.Tags),
		nullString(job.ROI),
		job.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("update job: %w", err)
	}

	return requireRowAffected(result)
}

func (r *JobRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}

	return requireRowAffected(result)
}

// ExpireBefore transitions open jobs whose window closed before the cutoff
// to expired and returns the affected IDs.
func (r *JobRepository) ExpireBefore(ctx context.Context, cutoff time.Time) ([]string, error) {
	query := `
		UPDATE jobs
		SET status = $1, updated_at = $2
		WHERE status IN ($3, $4) AND time_window_end IS NOT NULL AND time_window_end < $5
		RETURNING id
	`

	rows, err := r.db.QueryContext(ctx, query,
		domain.StatusExpired, time.Now(), domain.StatusAvailable, domain.StatusSelected, cutoff)
	if err != nil {
		return nil, fmt.Errorf("expire jobs: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if scanErr := rows.Scan(&id); scanErr != nil {
			return nil, fmt.Errorf("scan expired job id: %w", scanErr)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expired job ids: %w", err)
	}

	return ids, nil
}

func buildJobWhere(filter JobFilter) (whereClause string, args []any) {
	var clauses []string
	args = make([]any, 0)
	pos := 1

	if filter.Status != "" {
		clauses = append(clauses, "status = $"+strconv.Itoa(pos))
		args = append(args, filter.Status)
		pos++
	}
	if filter.Platform != "" {
		clauses = append(clauses, "platform = $"+strconv.Itoa(pos))
		args = append(args, filter.Platform)
	}

	if len(clauses) == 0 {
		return "", args
	}
	return " AND " + strings.Join(clauses, " AND "), args
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (*domain.Job, error) {
	var job domain.Job
	var payout, reimbursement, tipEstimate, latitude, longitude, roi sql.NullString
	var windowStart, windowEnd sql.NullTime

	err := row.Scan(
		&job.ID,
		&job.Title,
		&job.Description,
		&job.Platform,
		&job.Source,
		&payout,
		&reimbursement,
		&tipEstimate,
		&job.Address,
		&latitude,
		&longitude,
		&windowStart,
		&windowEnd,
		&job.EstimatedDuration,
		&job.Status,
		&job.Priority,
		pq.Array(&job.Tags),
		&roi,
		&job.CreatedAt,
		&job.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	job.Payout = payout.String
	job.Reimbursement = reimbursement.String
	job.TipEstimate = tipEstimate.String
	job.Latitude = latitude.String
	job.Longitude = longitude.String
	job.ROI = roi.String
	job.TimeWindowStart = timePtr(windowStart)
	job.TimeWindowEnd = timePtr(windowEnd)
	if job.Tags == nil {
		job.Tags = []string{}
	}

	return &job, nil
}

// nullString maps empty strings to NULL so they fit numeric and nullable
// reference columns.
func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func requireRowAffected(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
