package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/gigdash/gigdash/internal/config"
	"github.com/gigdash/gigdash/internal/logger"
)

const pingTimeout = 5 * time.Second

// PostgresStore implements Store over a PostgreSQL connection pool.
type PostgresStore struct {
	db       *sql.DB
	jobs     *JobRepository
	routes   *RouteRepository
	earnings *EarningRepository
}

// NewPostgres opens a connection pool, verifies it with a ping, and wires the
// per-entity repositories.
func NewPostgres(cfg config.DatabaseConfig, log logger.Logger) (*PostgresStore, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if pingErr := db.PingContext(ctx); pingErr != nil {
		return nil, fmt.Errorf("ping database: %w", pingErr)
	}

	log.Info("Database connection established",
		logger.String("host", cfg.Host),
		logger.Int("port", cfg.Port),
		logger.String("dbname", cfg.DBName),
	)

	return newPostgresStore(db, log), nil
}

// NewPostgresFromDB wraps an existing connection. Used by tests with sqlmock.
func NewPostgresFromDB(db *sql.DB, log logger.Logger) *PostgresStore {
	return newPostgresStore(db, log)
}

func newPostgresStore(db *sql.DB, log logger.Logger) *PostgresStore {
	return &PostgresStore{
		db:       db,
		jobs:     NewJobRepository(db, log),
		routes:   NewRouteRepository(db, log),
		earnings: NewEarningRepository(db, log),
	}
}

func (s *PostgresStore) Jobs() JobStore         { return s.jobs }
func (s *PostgresStore) Routes() RouteStore     { return s.routes }
func (s *PostgresStore) Earnings() EarningStore { return s.earnings }

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *PostgresStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
