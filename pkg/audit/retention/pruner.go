// Package retention bounds the audit trail by age and record count,
// optionally on a cron schedule.
package retention

import (
	"context"
	"log/slog"
	"time"

	"mercator-hq/ganymede/pkg/audit"
)

// Config contains retention configuration.
type Config struct {
	// RetentionDays prunes records older than this many days.
	// Zero disables age-based pruning.
	RetentionDays int

	// MaxRecords caps the total record count. Zero disables the cap.
	MaxRecords int64

	// PruneSchedule is a standard cron expression for the scheduler.
	// Empty disables scheduled pruning.
	PruneSchedule string
}

// Pruner removes audit records that fall outside the retention window.
type Pruner struct {
	storage audit.Storage
	config  *Config
	logger  *slog.Logger
}

// NewPruner creates a pruner over the given storage.
func NewPruner(storage audit.Storage, config *Config) *Pruner {
	if config == nil {
		config = &Config{}
	}
	return &Pruner{
		storage: storage,
		config:  config,
		logger:  slog.Default().With("component", "audit.retention"),
	}
}

// Config returns the retention configuration.
func (p *Pruner) Config() *Config {
	return p.config
}

// Prune applies both retention rules and returns the total number of
// records removed. Age-based pruning runs first so the count cap sees
// the surviving records.
func (p *Pruner) Prune(ctx context.Context) (int64, error) {
	var total int64

	if p.config.RetentionDays > 0 {
		cutoff := time.Now().AddDate(0, 0, -p.config.RetentionDays)
		n, err := p.storage.DeleteOlderThan(ctx, cutoff)
		if err != nil {
			return total, err
		}
		total += n
	}

	if p.config.MaxRecords > 0 {
		n, err := p.storage.DeleteOverCount(ctx, p.config.MaxRecords)
		if err != nil {
			return total, err
		}
		total += n
	}

	if total > 0 {
		p.logger.Info("pruned audit records",
			"deleted", total,
			"retention_days", p.config.RetentionDays,
			"max_records", p.config.MaxRecords,
		)
	}
	return total, nil
}
