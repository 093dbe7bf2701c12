// Package recorder captures contract violations asynchronously and
// hands them to audit storage without ever blocking a checked call.
package recorder

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"mercator-hq/ganymede/pkg/audit"
	"mercator-hq/ganymede/pkg/policy"
)

// Config contains configuration for the violation recorder.
type Config struct {
	// Buffer is the size of the async write channel. Violations
	// observed while the buffer is full are dropped and counted.
	// Default: 1000
	Buffer int

	// WriteTimeout bounds each storage write.
	// Default: 5 seconds
	WriteTimeout time.Duration

	// MaxValueLength is the maximum rendered length of the offending
	// value before truncation.
	// Default: 500
	MaxValueLength int
}

// DefaultConfig returns the default recorder configuration.
func DefaultConfig() *Config {
	return &Config{
		Buffer:         1000,
		WriteTimeout:   5 * time.Second,
		MaxValueLength: 500,
	}
}

// Recorder implements policy.Observer: every violation reported while
// enforcement is enabled is queued here and persisted by a background
// worker. Register it with policy.RegisterObserver after Start.
type Recorder struct {
	config  *Config
	storage audit.Storage
	logger  *slog.Logger

	ch      chan *audit.Record
	done    chan struct{}
	dropped atomic.Uint64

	mu      sync.RWMutex
	running bool
	wg      sync.WaitGroup
}

// Compile-time interface check.
var _ policy.Observer = (*Recorder)(nil)

// NewRecorder creates a recorder writing to the given storage.
func NewRecorder(config *Config, storage audit.Storage) *Recorder {
	if config == nil {
		config = DefaultConfig()
	}
	return &Recorder{
		config:  config,
		storage: storage,
		logger:  slog.Default().With("component", "audit.recorder"),
		ch:      make(chan *audit.Record, config.Buffer),
		done:    make(chan struct{}),
	}
}

// Start launches the background writer.
func (r *Recorder) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		return
	}
	r.running = true
	r.wg.Add(1)
	go r.writeLoop()

	r.logger.Info("violation recorder started", "buffer", r.config.Buffer)
}

// Stop signals the writer, waits for it to drain the buffer, and
// returns. Violations observed after Stop are counted as dropped; the
// recorder cannot be restarted. The send channel is never closed, so
// observers racing with Stop are safe.
func (r *Recorder) Stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	r.mu.Unlock()

	// No new sends can start now; every in-flight send completed before
	// the state flip above was visible.
	close(r.done)
	r.wg.Wait()

	if d := r.dropped.Load(); d > 0 {
		r.logger.Warn("violation recorder stopped with dropped records", "dropped", d)
	} else {
		r.logger.Info("violation recorder stopped")
	}
}

// ObserveViolation implements policy.Observer. It never blocks: when
// the buffer is full, or the recorder is not running, the violation is
// counted as dropped.
func (r *Recorder) ObserveViolation(v *policy.Violation) {
	record := audit.NewRecord(v, r.config.MaxValueLength)

	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.running {
		r.dropped.Add(1)
		return
	}
	select {
	case r.ch <- record:
	default:
		r.dropped.Add(1)
	}
}

// Dropped returns how many violations were discarded because the
// buffer was full or the recorder was not running.
func (r *Recorder) Dropped() uint64 {
	return r.dropped.Load()
}

// writeLoop persists queued records until stopped, then drains whatever
// the buffer still holds.
func (r *Recorder) writeLoop() {
	defer r.wg.Done()

	for {
		select {
		case record := <-r.ch:
			r.persist(record)
		case <-r.done:
			for {
				select {
				case record := <-r.ch:
					r.persist(record)
				default:
					return
				}
			}
		}
	}
}

// persist writes one record with the configured timeout.
func (r *Recorder) persist(record *audit.Record) {
	ctx, cancel := context.WithTimeout(context.Background(), r.config.WriteTimeout)
	err := r.storage.Save(ctx, record)
	cancel()

	if err != nil {
		r.logger.Error("failed to persist violation record",
			"id", record.ID,
			"callable", record.Callable,
			"error", err,
		)
	}
}
