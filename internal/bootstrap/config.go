package bootstrap

import (
	"flag"
	"fmt"

	"github.com/gigdash/gigdash/internal/config"
	"github.com/gigdash/gigdash/internal/logger"
)

// LoadConfig loads configuration. Uses the -config flag with a CONFIG_PATH
// fallback.
func LoadConfig() (*config.Config, error) {
	configPath := flag.String("config", config.GetConfigPath("config.yml"), "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// CreateLogger creates the service logger from configuration.
func CreateLogger(cfg *config.Config) (logger.Logger, error) {
	logCfg := cfg.Logging
	logCfg.Development = logCfg.Development || cfg.Debug

	log, err := logger.New(logCfg)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return log.With(
		logger.String("service", "gigdash"),
		logger.String("version", version),
	), nil
}
