// Package bootstrap handles application initialization and lifecycle
// management for the dashboard service.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/gigdash/gigdash/internal/logger"
)

const version = "dev"

// Start initializes and runs the dashboard service until shutdown.
func Start() error {
	// Phase 1: Load config and create logger
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := CreateLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// Phase 2: Setup storage
	store, err := SetupStorage(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to set up storage: %w", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			log.Error("Failed to close storage", logger.Error(closeErr))
		}
	}()

	// Phase 3: Setup event publisher (optional)
	publisher := SetupEventPublisher(cfg, log)

	// Phase 4: Setup server, scheduler, and run
	server, sched := SetupHTTPServer(cfg, store, publisher, log)

	if cfg.Scheduler.Enabled {
		if schedErr := sched.Start(); schedErr != nil {
			return fmt.Errorf("failed to start scheduler: %w", schedErr)
		}
		defer sched.Stop()
	}

	if runErr := server.RunWithGracefulShutdown(context.Background()); runErr != nil {
		log.Error("Server error", logger.Error(runErr))
		return fmt.Errorf("server error: %w", runErr)
	}

	log.Info("Server exited")
	return nil
}
