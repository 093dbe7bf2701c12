package config

import (
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Enforcement modes accepted by Validate.
const (
	ModeRaise  = "raise"
	ModeLog    = "log"
	ModeSilent = "silent"
)

// Validate checks the configuration for internal consistency. It
// returns the first problem found.
func Validate(cfg *Config) error {
	switch cfg.Enforcement.Mode {
	case ModeRaise, ModeLog, ModeSilent:
	default:
		return fmt.Errorf("enforcement.mode must be %q, %q, or %q, got %q",
			ModeRaise, ModeLog, ModeSilent, cfg.Enforcement.Mode)
	}
	if _, err := ParseLevel(cfg.Enforcement.LogLevel); err != nil {
		return fmt.Errorf("enforcement.log_level: %w", err)
	}

	if _, err := ParseLevel(cfg.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	switch cfg.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format must be \"text\" or \"json\", got %q", cfg.Logging.Format)
	}

	if cfg.Audit.Enabled {
		if cfg.Audit.DatabasePath == "" {
			return fmt.Errorf("audit.database_path must be set when audit is enabled")
		}
		if cfg.Audit.Buffer < 1 {
			return fmt.Errorf("audit.buffer must be positive, got %d", cfg.Audit.Buffer)
		}
		if cfg.Audit.WriteTimeout <= 0 {
			return fmt.Errorf("audit.write_timeout must be positive, got %s", cfg.Audit.WriteTimeout)
		}
		if cfg.Audit.RetentionDays < 0 {
			return fmt.Errorf("audit.retention_days must not be negative, got %d", cfg.Audit.RetentionDays)
		}
		if cfg.Audit.MaxRecords < 0 {
			return fmt.Errorf("audit.max_records must not be negative, got %d", cfg.Audit.MaxRecords)
		}
		if cfg.Audit.PruneSchedule != "" {
			if _, err := cron.ParseStandard(cfg.Audit.PruneSchedule); err != nil {
				return fmt.Errorf("audit.prune_schedule: invalid cron expression %q: %w",
					cfg.Audit.PruneSchedule, err)
			}
		}
	}

	if cfg.Metrics.Enabled && cfg.Metrics.Namespace == "" {
		return fmt.Errorf("metrics.namespace must be set when metrics are enabled")
	}

	if cfg.Reload.Enabled && cfg.Reload.Debounce <= 0 {
		return fmt.Errorf("reload.debounce must be positive, got %s", cfg.Reload.Debounce)
	}

	return nil
}

// ParseLevel parses a configuration level string into a slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level: %s", level)
	}
}
