package config

import (
	"fmt"
	"path/filepath"
	"time"
)

// Default service configuration values.
const (
	defaultServiceName    = "gnsync"
	defaultServiceVersion = "1.0.0"
	defaultPackageName    = "fr.geonature.sync"
	defaultDataDir        = "data"
	defaultDatabaseFile   = "gnsync.db"
	defaultLogLevel       = "info"
	defaultLogFormat      = "json"
	defaultModule         = "occtax"
)

// Default remote and scheduler values.
const (
	defaultRemoteTimeout  = 30 * time.Second
	defaultPollInterval   = 5 * time.Second
	defaultMaxAttempts    = 3
	defaultInitialBackoff = 30 * time.Second
	defaultMaxBackoff     = 15 * time.Minute
)

// Config holds the application configuration.
type Config struct {
	Service   ServiceConfig   `yaml:"service"`
	Database  DatabaseConfig  `yaml:"database"`
	Remote    RemoteConfig    `yaml:"remote"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Logging   LoggingConfig   `yaml:"logging"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

// ServiceConfig holds identity and local filesystem settings.
type ServiceConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	// PackageName is the identifier of the owning application package,
	// e.g. "fr.geonature.sync". Its last segment names the settings file.
	PackageName string `env:"GNSYNC_PACKAGE_NAME" yaml:"package_name"`
	// DataDir holds the database and the persisted settings files.
	DataDir string `env:"GNSYNC_DATA_DIR" yaml:"data_dir"`
	Debug   bool   `env:"GNSYNC_DEBUG"    yaml:"debug"`
}

// DatabaseConfig holds the local SQLite store settings.
type DatabaseConfig struct {
	Path        string        `env:"GNSYNC_DATABASE_PATH" yaml:"path"`
	BusyTimeout time.Duration `yaml:"busy_timeout"`
}

// RemoteConfig holds the bootstrap remote endpoint. Sync endpoints proper
// come from the resolved DataSyncSettings.
type RemoteConfig struct {
	GeoNatureBaseURL string        `env:"GNSYNC_GEONATURE_URL" yaml:"geonature_base_url"`
	Timeout          time.Duration `yaml:"timeout"`
	// AvailablePackages lists the packages reconciled against the manifest.
	AvailablePackages []string `env:"GNSYNC_PACKAGES" yaml:"available_packages"`
	// Modules lists the GeoNature modules whose datasets are synced.
	Modules []string `env:"GNSYNC_MODULES" yaml:"modules"`
}

// SchedulerConfig tunes the durable job queue.
type SchedulerConfig struct {
	PollInterval   time.Duration `yaml:"poll_interval"`
	MaxAttempts    int           `env:"GNSYNC_JOB_MAX_ATTEMPTS" yaml:"max_attempts"`
	InitialBackoff time.Duration `yaml:"initial_backoff"`
	MaxBackoff     time.Duration `yaml:"max_backoff"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"GNSYNC_LOG_LEVEL"  yaml:"level"`
	Format string `env:"GNSYNC_LOG_FORMAT" yaml:"format"`
}

// MetricsConfig controls the Prometheus textfile export.
type MetricsConfig struct {
	// TextfilePath, when set, receives the job metrics after each job.
	TextfilePath string `env:"GNSYNC_METRICS_TEXTFILE" yaml:"textfile_path"`
}

// Load loads configuration from a YAML file, applies defaults, then env overrides.
func Load(path string) (*Config, error) {
	cfg, loadErr := LoadWithDefaults(path, setDefaults)
	if loadErr != nil {
		return nil, fmt.Errorf("load config: %w", loadErr)
	}

	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, fmt.Errorf("validate config: %w", validateErr)
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := ValidateRequired("service.package_name", c.Service.PackageName); err != nil {
		return err
	}

	if c.Remote.GeoNatureBaseURL != "" {
		if err := ValidateURL("remote.geonature_base_url", c.Remote.GeoNatureBaseURL); err != nil {
			return err
		}
	}

	if err := ValidatePositive("scheduler.max_attempts", c.Scheduler.MaxAttempts); err != nil {
		return err
	}

	return ValidateLogLevel(c.Logging.Level)
}

// SetDefaults applies default values to all configuration sections.
func SetDefaults(cfg *Config) {
	setDefaults(cfg)
}

func setDefaults(cfg *Config) {
	setServiceDefaults(&cfg.Service)
	setDatabaseDefaults(&cfg.Database, cfg.Service.DataDir)
	setRemoteDefaults(&cfg.Remote, cfg.Service.PackageName)
	setSchedulerDefaults(&cfg.Scheduler)
	setLoggingDefaults(&cfg.Logging)
}

func setServiceDefaults(s *ServiceConfig) {
	if s.Name == "" {
		s.Name = defaultServiceName
	}

	if s.Version == "" {
		s.Version = defaultServiceVersion
	}

	if s.PackageName == "" {
		s.PackageName = defaultPackageName
	}

	if s.DataDir == "" {
		s.DataDir = defaultDataDir
	}
}

func setDatabaseDefaults(d *DatabaseConfig, dataDir string) {
	if d.Path == "" {
		d.Path = filepath.Join(dataDir, defaultDatabaseFile)
	}

	if d.BusyTimeout == 0 {
		d.BusyTimeout = 5 * time.Second
	}
}

func setRemoteDefaults(r *RemoteConfig, packageName string) {
	if r.Timeout == 0 {
		r.Timeout = defaultRemoteTimeout
	}

	if len(r.AvailablePackages) == 0 {
		r.AvailablePackages = []string{packageName}
	}

	if len(r.Modules) == 0 {
		r.Modules = []string{defaultModule}
	}
}

func setSchedulerDefaults(s *SchedulerConfig) {
	if s.PollInterval == 0 {
		s.PollInterval = defaultPollInterval
	}

	if s.MaxAttempts == 0 {
		s.MaxAttempts = defaultMaxAttempts
	}

	if s.InitialBackoff == 0 {
		s.InitialBackoff = defaultInitialBackoff
	}

	if s.MaxBackoff == 0 {
		s.MaxBackoff = defaultMaxBackoff
	}
}

func setLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = defaultLogLevel
	}

	if l.Format == "" {
		l.Format = defaultLogFormat
	}
}
