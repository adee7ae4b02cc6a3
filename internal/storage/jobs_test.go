package storage_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gigdash/gigdash/internal/domain"
	"github.com/gigdash/gigdash/internal/logger"
	"github.com/gigdash/gigdash/internal/storage"
)

var jobColumns = []string{
	"id", "title", "description", "platform", "source", "payout",
	"reimbursement", "tip_estimate", "address", "latitude", "longitude",
	"time_window_start", "time_window_end", "estimated_duration",
	"status", "priority", "tags", "roi", "created_at", "updated_at",
}

func newMockStore(t *testing.T) (storage.JobStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return storage.NewPostgresFromDB(db, logger.NewNop()).Jobs(), mock
}

func jobRow(id string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(jobColumns).AddRow(
		id, "Grocery run", "12 items", "instacart", "clipboard", "27.50",
		nil, nil, "123 Main St", "47.6062", "-122.3321",
		nil, nil, 39,
		"available", 0, []byte("{heavy,organic}"), "42.31", now, now,
	)
}

func TestJobRepository_GetByID(t *testing.T) {
	jobs, mock := newMockStore(t)

	mock.ExpectQuery("FROM jobs").
		WithArgs("job-1").
		WillReturnRows(jobRow("job-1"))

	job, err := jobs.GetByID(context.Background(), "job-1")
	require.NoError(t, err)
	assert.Equal(t, "Grocery run", job.Title)
	assert.Equal(t, "27.50", job.Payout)
	assert.Equal(t, []string{"heavy", "organic"}, job.Tags)
	// NULL decimals come back as empty strings.
	assert.Empty(t, job.Reimbursement)
	assert.Nil(t, job.TimeWindowEnd)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobRepository_GetByID_NotFound(t *testing.T) {
	jobs, mock := newMockStore(t)

	mock.ExpectQuery("FROM jobs").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := jobs.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestJobRepository_Create(t *testing.T) {
	jobs, mock := newMockStore(t)

	mock.ExpectExec("INSERT INTO jobs").
		WillReturnResult(sqlmock.NewResult(0, 1))

	job := &domain.Job{Title: "Audit", Platform: "epms", Payout: "22.00", Address: "Store location"}
	require.NoError(t, jobs.Create(context.Background(), job))

	assert.NotEmpty(t, job.ID)
	assert.Equal(t, domain.StatusAvailable, job.Status)
	assert.False(t, job.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobRepository_List_WithFilters(t *testing.T) {
	jobs, mock := newMockStore(t)

	mock.ExpectQuery("FROM jobs").
		WithArgs("available", "instacart").
		WillReturnRows(jobRow("job-1").AddRow(
			"job-2", "Second batch", "", "instacart", "clipboard", "15.00",
			nil, nil, "Local grocery store", nil, nil,
			nil, nil, 45,
			"available", 0, []byte("{}"), nil, time.Now(), time.Now(),
		))

	got, err := jobs.List(context.Background(), storage.JobFilter{Status: "available", Platform: "instacart"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "job-2", got[1].ID)
	// NULL coordinates stay empty; the geo layer substitutes the fallback.
	assert.Empty(t, got[1].Latitude)
	assert.Empty(t, got[1].ROI)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobRepository_Update_NotFound(t *testing.T) {
	jobs, mock := newMockStore(t)

	mock.ExpectExec("UPDATE jobs").
		WillReturnResult(sqlmock.NewResult(0, 0))

	job := &domain.Job{ID: "missing", Title: "x", Platform: "manual", Payout: "1", Address: "y"}
	assert.ErrorIs(t, jobs.Update(context.Background(), job), storage.ErrNotFound)
}

func TestJobRepository_Delete(t *testing.T) {
	jobs, mock := newMockStore(t)

	mock.ExpectExec("DELETE FROM jobs").
		WithArgs("job-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM jobs").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, jobs.Delete(context.Background(), "job-1"))
	assert.ErrorIs(t, jobs.Delete(context.Background(), "missing"), storage.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobRepository_ExpireBefore(t *testing.T) {
	jobs, mock := newMockStore(t)
	cutoff := time.Now()

	mock.ExpectQuery("UPDATE jobs").
		WithArgs(
			string(domain.StatusExpired), sqlmock.AnyArg(),
			string(domain.StatusAvailable), string(domain.StatusSelected), cutoff,
		).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("job-1").AddRow("job-2"))

	ids, err := jobs.ExpireBefore(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, []string{"job-1", "job-2"}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}
