package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from a YAML file at the specified path.
// It applies default values, validates the configuration, and returns
// any errors. Environment variables are not consulted; use
// LoadConfigWithEnvOverrides for that.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from a YAML file and
// applies environment variable overrides. Variables follow the naming
// convention GANYMEDE_SECTION_FIELD (e.g. GANYMEDE_ENFORCEMENT_MODE)
// and always take precedence over file-based configuration.
//
// The loading sequence is:
// 1. Load YAML from file
// 2. Apply default values
// 3. Apply environment variable overrides
// 4. Validate final configuration
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides applies GANYMEDE_SECTION_FIELD environment variable
// overrides to the configuration.
func applyEnvOverrides(cfg *Config) {
	// Enforcement overrides
	if val := os.Getenv("GANYMEDE_ENFORCEMENT_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Enforcement.Enabled = b
		}
	}
	if val := os.Getenv("GANYMEDE_ENFORCEMENT_MODE"); val != "" {
		cfg.Enforcement.Mode = val
	}
	if val := os.Getenv("GANYMEDE_ENFORCEMENT_LOG_LEVEL"); val != "" {
		cfg.Enforcement.LogLevel = val
	}

	// Logging overrides
	if val := os.Getenv("GANYMEDE_LOGGING_LEVEL"); val != "" {
		cfg.Logging.Level = val
	}
	if val := os.Getenv("GANYMEDE_LOGGING_FORMAT"); val != "" {
		cfg.Logging.Format = val
	}

	// Audit overrides
	if val := os.Getenv("GANYMEDE_AUDIT_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Audit.Enabled = b
		}
	}
	if val := os.Getenv("GANYMEDE_AUDIT_DATABASE_PATH"); val != "" {
		cfg.Audit.DatabasePath = val
	}
	if val := os.Getenv("GANYMEDE_AUDIT_WRITE_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Audit.WriteTimeout = d
		}
	}
	if val := os.Getenv("GANYMEDE_AUDIT_RETENTION_DAYS"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			cfg.Audit.RetentionDays = n
		}
	}
	if val := os.Getenv("GANYMEDE_AUDIT_PRUNE_SCHEDULE"); val != "" {
		cfg.Audit.PruneSchedule = val
	}

	// Metrics overrides
	if val := os.Getenv("GANYMEDE_METRICS_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Metrics.Enabled = b
		}
	}
	if val := os.Getenv("GANYMEDE_METRICS_NAMESPACE"); val != "" {
		cfg.Metrics.Namespace = val
	}

	// Reload overrides
	if val := os.Getenv("GANYMEDE_RELOAD_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Reload.Enabled = b
		}
	}
	if val := os.Getenv("GANYMEDE_RELOAD_DEBOUNCE"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Reload.Debounce = d
		}
	}
}
