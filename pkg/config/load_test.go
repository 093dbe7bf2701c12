package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ganymede.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfig_FullFile(t *testing.T) {
	path := writeConfigFile(t, `
enforcement:
  enabled: true
  mode: log
  log_level: error
logging:
  level: debug
  format: json
audit:
  enabled: true
  database_path: /tmp/audit.db
  buffer: 64
  write_timeout: 2s
  retention_days: 7
  max_records: 5000
  prune_schedule: "0 3 * * *"
metrics:
  enabled: true
  namespace: myapp
  subsystem: contracts
reload:
  enabled: true
  debounce: 500ms
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if !cfg.Enforcement.Enabled || cfg.Enforcement.Mode != ModeLog || cfg.Enforcement.LogLevel != "error" {
		t.Errorf("enforcement section = %+v", cfg.Enforcement)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("logging section = %+v", cfg.Logging)
	}
	if cfg.Audit.DatabasePath != "/tmp/audit.db" || cfg.Audit.Buffer != 64 ||
		cfg.Audit.WriteTimeout != 2*time.Second || cfg.Audit.RetentionDays != 7 ||
		cfg.Audit.MaxRecords != 5000 || cfg.Audit.PruneSchedule != "0 3 * * *" {
		t.Errorf("audit section = %+v", cfg.Audit)
	}
	if cfg.Metrics.Namespace != "myapp" || cfg.Metrics.Subsystem != "contracts" {
		t.Errorf("metrics section = %+v", cfg.Metrics)
	}
	if cfg.Reload.Debounce != 500*time.Millisecond {
		t.Errorf("reload section = %+v", cfg.Reload)
	}
}

func TestLoadConfig_DefaultsFillGaps(t *testing.T) {
	path := writeConfigFile(t, `
enforcement:
  enabled: true
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Enforcement.Mode != DefaultEnforcementMode {
		t.Errorf("Mode = %q, want %q", cfg.Enforcement.Mode, DefaultEnforcementMode)
	}
	if cfg.Logging.Level != DefaultLoggingLevel || cfg.Logging.Format != DefaultLoggingFormat {
		t.Errorf("logging defaults not applied: %+v", cfg.Logging)
	}
	if cfg.Audit.Buffer != DefaultAuditBuffer || cfg.Audit.WriteTimeout != DefaultAuditWriteTimeout {
		t.Errorf("audit defaults not applied: %+v", cfg.Audit)
	}
	if cfg.Audit.Enabled || cfg.Metrics.Enabled || cfg.Reload.Enabled {
		t.Error("optional subsystems are enabled by default")
	}
	if cfg.Metrics.Namespace != DefaultMetricsNamespace {
		t.Errorf("Namespace = %q, want %q", cfg.Metrics.Namespace, DefaultMetricsNamespace)
	}
	if len(cfg.Metrics.CheckDurationBuckets) == 0 {
		t.Error("default histogram buckets not applied")
	}
	if cfg.Reload.Debounce != DefaultReloadDebounce {
		t.Errorf("Debounce = %s, want %s", cfg.Reload.Debounce, DefaultReloadDebounce)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Error("LoadConfig() error = nil")
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConfigFile(t, "enforcement: [not a mapping")
		if _, err := LoadConfig(path); err == nil {
			t.Error("LoadConfig() error = nil")
		}
	})

	t.Run("invalid after defaults", func(t *testing.T) {
		path := writeConfigFile(t, `
enforcement:
  mode: shout
`)
		_, err := LoadConfig(path)
		if err == nil {
			t.Fatal("LoadConfig() error = nil")
		}
		if !strings.Contains(err.Error(), "enforcement.mode") {
			t.Errorf("error does not name the bad field: %v", err)
		}
	})
}

func TestLoadConfigWithEnvOverrides(t *testing.T) {
	path := writeConfigFile(t, `
enforcement:
  enabled: false
  mode: raise
audit:
  enabled: false
  database_path: from-file.db
`)

	t.Setenv("GANYMEDE_ENFORCEMENT_ENABLED", "true")
	t.Setenv("GANYMEDE_ENFORCEMENT_MODE", "silent")
	t.Setenv("GANYMEDE_AUDIT_DATABASE_PATH", "from-env.db")
	t.Setenv("GANYMEDE_RELOAD_DEBOUNCE", "1s")

	cfg, err := LoadConfigWithEnvOverrides(path)
	if err != nil {
		t.Fatalf("LoadConfigWithEnvOverrides() error = %v", err)
	}

	if !cfg.Enforcement.Enabled {
		t.Error("GANYMEDE_ENFORCEMENT_ENABLED override not applied")
	}
	if cfg.Enforcement.Mode != ModeSilent {
		t.Errorf("Mode = %q, want %q", cfg.Enforcement.Mode, ModeSilent)
	}
	if cfg.Audit.DatabasePath != "from-env.db" {
		t.Errorf("DatabasePath = %q, want %q", cfg.Audit.DatabasePath, "from-env.db")
	}
	if cfg.Reload.Debounce != time.Second {
		t.Errorf("Debounce = %s, want 1s", cfg.Reload.Debounce)
	}
}

func TestLoadConfigWithEnvOverrides_InvalidOverride(t *testing.T) {
	path := writeConfigFile(t, "enforcement:\n  mode: raise\n")

	t.Setenv("GANYMEDE_ENFORCEMENT_MODE", "shout")

	if _, err := LoadConfigWithEnvOverrides(path); err == nil {
		t.Error("LoadConfigWithEnvOverrides() error = nil, want validation failure")
	}
}
