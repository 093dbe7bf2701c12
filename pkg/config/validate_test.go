package config

import (
	"log/slog"
	"strings"
	"testing"
	"time"
)

// validConfig returns a fully-populated configuration that passes
// validation; tests mutate one field at a time.
func validConfig() *Config {
	cfg := NewDefaultConfig()
	cfg.Enforcement.Enabled = true
	cfg.Audit.Enabled = true
	cfg.Metrics.Enabled = true
	cfg.Reload.Enabled = true
	return cfg
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(cfg *Config) {},
		},
		{
			name:    "bad enforcement mode",
			mutate:  func(cfg *Config) { cfg.Enforcement.Mode = "shout" },
			wantErr: "enforcement.mode",
		},
		{
			name:    "bad enforcement log level",
			mutate:  func(cfg *Config) { cfg.Enforcement.LogLevel = "loud" },
			wantErr: "enforcement.log_level",
		},
		{
			name:    "bad logging level",
			mutate:  func(cfg *Config) { cfg.Logging.Level = "verbose" },
			wantErr: "logging.level",
		},
		{
			name:    "bad logging format",
			mutate:  func(cfg *Config) { cfg.Logging.Format = "xml" },
			wantErr: "logging.format",
		},
		{
			name:    "audit enabled without database path",
			mutate:  func(cfg *Config) { cfg.Audit.DatabasePath = "" },
			wantErr: "audit.database_path",
		},
		{
			name:    "audit buffer not positive",
			mutate:  func(cfg *Config) { cfg.Audit.Buffer = 0 },
			wantErr: "audit.buffer",
		},
		{
			name:    "audit write timeout not positive",
			mutate:  func(cfg *Config) { cfg.Audit.WriteTimeout = -time.Second },
			wantErr: "audit.write_timeout",
		},
		{
			name:    "negative retention",
			mutate:  func(cfg *Config) { cfg.Audit.RetentionDays = -1 },
			wantErr: "audit.retention_days",
		},
		{
			name:    "negative max records",
			mutate:  func(cfg *Config) { cfg.Audit.MaxRecords = -1 },
			wantErr: "audit.max_records",
		},
		{
			name:    "bad cron expression",
			mutate:  func(cfg *Config) { cfg.Audit.PruneSchedule = "every day at 3" },
			wantErr: "audit.prune_schedule",
		},
		{
			name:   "audit disabled skips audit checks",
			mutate: func(cfg *Config) { cfg.Audit.Enabled = false; cfg.Audit.Buffer = 0 },
		},
		{
			name:    "metrics enabled without namespace",
			mutate:  func(cfg *Config) { cfg.Metrics.Namespace = "" },
			wantErr: "metrics.namespace",
		},
		{
			name:    "reload enabled without debounce",
			mutate:  func(cfg *Config) { cfg.Reload.Debounce = 0 },
			wantErr: "reload.debounce",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() error = nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "info", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "warning", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "", wantErr: true},
		{in: "trace", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseLevel(%q) error = nil", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseLevel(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
