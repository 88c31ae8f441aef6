package bootstrap

import (
	"fmt"

	"github.com/PnX-SI/gn-mobile-core-sub003/internal/config"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/logger"
)

// DefaultConfigPath is read when neither --config nor GNSYNC_CONFIG is set.
const DefaultConfigPath = "config.yml"

// LoadConfig loads and validates the configuration. An empty path falls back
// to GNSYNC_CONFIG, then DefaultConfigPath.
func LoadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = config.GetConfigPath(DefaultConfigPath)
	}

	cfg, loadErr := config.Load(path)
	if loadErr != nil {
		return nil, fmt.Errorf("load config: %w", loadErr)
	}

	return cfg, nil
}

// CreateLogger creates the structured logger for the service.
func CreateLogger(cfg *config.Config) (logger.Logger, error) {
	log, logErr := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		Development: cfg.Service.Debug,
		OutputPaths: []string{"stderr"},
	})
	if logErr != nil {
		return nil, fmt.Errorf("create logger: %w", logErr)
	}

	return log.With(logger.String("service", cfg.Service.Name)), nil
}
