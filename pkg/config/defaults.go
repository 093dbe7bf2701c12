package config

import "time"

// Default values applied to unset fields.
const (
	DefaultEnforcementMode     = "raise"
	DefaultEnforcementLogLevel = "warn"

	DefaultLoggingLevel  = "info"
	DefaultLoggingFormat = "text"

	DefaultAuditDatabasePath  = "data/audit.db"
	DefaultAuditBuffer        = 1000
	DefaultAuditWriteTimeout  = 5 * time.Second
	DefaultAuditRetentionDays = 30

	DefaultMetricsNamespace = "ganymede"
	DefaultMetricsSubsystem = "contract"

	DefaultReloadDebounce = 200 * time.Millisecond
)

// ApplyDefaults fills unset fields with default values. Booleans are
// left alone: enforcement, audit, metrics, and reload are all opt-in.
func ApplyDefaults(cfg *Config) {
	if cfg.Enforcement.Mode == "" {
		cfg.Enforcement.Mode = DefaultEnforcementMode
	}
	if cfg.Enforcement.LogLevel == "" {
		cfg.Enforcement.LogLevel = DefaultEnforcementLogLevel
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLoggingLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = DefaultLoggingFormat
	}

	if cfg.Audit.DatabasePath == "" {
		cfg.Audit.DatabasePath = DefaultAuditDatabasePath
	}
	if cfg.Audit.Buffer == 0 {
		cfg.Audit.Buffer = DefaultAuditBuffer
	}
	if cfg.Audit.WriteTimeout == 0 {
		cfg.Audit.WriteTimeout = DefaultAuditWriteTimeout
	}
	if cfg.Audit.RetentionDays == 0 {
		cfg.Audit.RetentionDays = DefaultAuditRetentionDays
	}

	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = DefaultMetricsNamespace
	}
	if cfg.Metrics.Subsystem == "" {
		cfg.Metrics.Subsystem = DefaultMetricsSubsystem
	}
	if len(cfg.Metrics.CheckDurationBuckets) == 0 {
		// Checks should be microseconds; cover 100ns to ~1.6ms.
		cfg.Metrics.CheckDurationBuckets = []float64{
			0.0000001, 0.0000005, 0.000001, 0.000005, 0.00001,
			0.00005, 0.0001, 0.0005, 0.001, 0.0016,
		}
	}

	if cfg.Reload.Debounce == 0 {
		cfg.Reload.Debounce = DefaultReloadDebounce
	}
}

// NewDefaultConfig returns a configuration with every default applied
// and all optional subsystems disabled.
func NewDefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}
