package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gigdash/gigdash/internal/domain"
	"github.com/gigdash/gigdash/internal/logger"
)

// EarningRepository persists earning records in PostgreSQL.
type EarningRepository struct {
	db     *sql.DB
	logger logger.Logger
}

func NewEarningRepository(db *sql.DB, log logger.Logger) *EarningRepository {
	return &EarningRepository{
		db:     db,
		logger: log,
	}
}

func (r *EarningRepository) Create(ctx context.Context, earning *domain.Earning) error {
	earning.ID = uuid.New().String()
	if earning.Date.IsZero() {
		earning.Date = time.Now()
	}

	query := `
		INSERT INTO earnings (
			id, job_id, platform, amount, reimbursement, tips,
			mileage, date, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.ExecContext(ctx,
		query,
		earning.ID,
		nullString(earning.JobID),
		earning.Platform,
		nullString(earning.Amount),
		nullString(earning.Reimbursement),
		nullString(earning.Tips),
		nullString(earning.Mileage),
		earning.Date,
		earning.Notes,
	)

	if err != nil {
		return fmt.Errorf("insert earning: %w", err)
	}

	return nil
}

func (r *EarningRepository) List(ctx context.Context, filter EarningFilter) ([]domain.Earning, error) {
	whereClause, args := buildEarningWhere(filter)
	query := `
		SELECT id, job_id, platform, amount, reimbursement, tips,
		       mileage, date, notes
		FROM earnings
		WHERE 1=1` + whereClause + `
		ORDER BY date DESC
	`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query earnings: %w", err)
	}
	defer rows.Close()

	earnings := make([]domain.Earning, 0)
	for rows.Next() {
		var e domain.Earning
		var jobID, amount, reimbursement, tips, mileage sql.NullString
		if scanErr := rows.Scan(
			&e.ID,
			&jobID,
			&e.Platform,
			&amount,
			&reimbursement,
			&tips,
			&mileage,
			&e.Date,
			&e.Notes,
		); scanErr != nil {
			return nil, fmt.Errorf("scan earning: %w", scanErr)
		}
		e.JobID = jobID.String
		e.Amount = amount.String
		e.Reimbursement = reimbursement.String
		e.Tips = tips.String
		e.Mileage = mileage.String
		earnings = append(earnings, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate earnings: %w", err)
	}

	return earnings, nil
}

func buildEarningWhere(filter EarningFilter) (whereClause string, args []any) {
	var clauses []string
	args = make([]any, 0)
	pos := 1

	if filter.From != nil {
		clauses = append(clauses, "date >= $"+strconv.Itoa(pos))
		args = append(args, *filter.From)
		pos++
	}
	if filter.To != nil {
		clauses = append(clauses, "date <= $"+strconv.Itoa(pos))
		args = append(args, *filter.To)
	}

	if len(clauses) == 0 {
		return "", args
	}
	return " AND " + strings.Join(clauses, " AND "), args
}
