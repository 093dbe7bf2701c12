package config

import "time"

// Config is the root configuration structure.
type Config struct {
	Enforcement EnforcementConfig `yaml:"enforcement"`
	Logging     LoggingConfig     `yaml:"logging"`
	Audit       AuditConfig       `yaml:"audit"`
	Metrics     MetricsConfig     `yaml:"metrics"`
	Reload      ReloadConfig      `yaml:"reload"`
}

// EnforcementConfig selects how contract violations are reported.
type EnforcementConfig struct {
	// Enabled gates all violation reporting.
	Enabled bool `yaml:"enabled"`

	// Mode is one of "raise", "log", or "silent".
	// raise: violations return the generic violation error.
	// log: violations emit a log record at LogLevel.
	// silent: enforcement is enabled but reports nothing; observers
	// (audit, metrics) still fire.
	Mode string `yaml:"mode"`

	// LogLevel is the slog level used when Mode is "log":
	// debug, info, warn, or error.
	LogLevel string `yaml:"log_level"`
}

// LoggingConfig controls the library's own log output.
type LoggingConfig struct {
	// Level is the minimum level: debug, info, warn, or error.
	Level string `yaml:"level"`

	// Format is "text" or "json".
	Format string `yaml:"format"`
}

// AuditConfig controls the violation audit trail.
type AuditConfig struct {
	// Enabled turns the audit recorder on.
	Enabled bool `yaml:"enabled"`

	// DatabasePath is the SQLite database file path.
	DatabasePath string `yaml:"database_path"`

	// Buffer is the async write channel size. Violations observed while
	// the buffer is full are counted as dropped, never blocked on.
	Buffer int `yaml:"buffer"`

	// WriteTimeout bounds each storage write.
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// RetentionDays prunes records older than this many days.
	// Zero disables age-based pruning.
	RetentionDays int `yaml:"retention_days"`

	// MaxRecords caps the total record count. Zero disables the cap.
	MaxRecords int64 `yaml:"max_records"`

	// PruneSchedule is a standard cron expression for automatic
	// pruning (e.g. "0 3 * * *" for daily at 3 AM). Empty disables
	// scheduled pruning.
	PruneSchedule string `yaml:"prune_schedule"`
}

// MetricsConfig controls Prometheus metric registration.
type MetricsConfig struct {
	// Enabled turns metric collection on.
	Enabled bool `yaml:"enabled"`

	// Namespace prefixes every metric name.
	Namespace string `yaml:"namespace"`

	// Subsystem is the optional second prefix component.
	Subsystem string `yaml:"subsystem"`

	// CheckDurationBuckets are the histogram buckets for check
	// duration, in seconds.
	CheckDurationBuckets []float64 `yaml:"check_duration_buckets"`
}

// ReloadConfig controls hot-reloading of the configuration file.
type ReloadConfig struct {
	// Enabled turns the file watcher on.
	Enabled bool `yaml:"enabled"`

	// Debounce is how long to wait after the last file event before
	// reloading, to absorb editor write bursts.
	Debounce time.Duration `yaml:"debounce"`
}
