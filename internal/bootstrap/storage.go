package bootstrap

import (
	"fmt"

	"github.com/gigdash/gigdash/internal/config"
	"github.com/gigdash/gigdash/internal/logger"
	"github.com/gigdash/gigdash/internal/storage"
)

// SetupStorage creates the configured store. The memory backend supports
// database-less local runs.
func SetupStorage(cfg *config.Config, log logger.Logger) (storage.Store, error) {
	if cfg.Storage == config.StorageMemory {
		log.Warn("Using in-memory storage, data will not survive restarts")
		return storage.NewMemory(), nil
	}

	store, err := storage.NewPostgres(cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("database connection: %w", err)
	}
	return store, nil
}
