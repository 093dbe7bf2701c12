package policy

import (
	"log/slog"
	"sync/atomic"
)

// Policy is one immutable enforcement snapshot. Snapshots are replaced
// wholesale by Configure and must never be mutated after publication.
type Policy struct {
	// Enabled gates all reporting. When false the snapshot is fully
	// inert and violations are silently discarded.
	Enabled bool

	// NewError, when set, makes violations raise: Report returns the
	// factory's error instead of logging.
	NewError ErrorFactory

	// LogLevel, when set (and NewError is not), makes violations emit a
	// log record at this level through the host's slog handler.
	LogLevel *slog.Level
}

// inert is the implicit snapshot before any Configure call.
var inert = &Policy{Enabled: false}

// current holds the process-wide snapshot. Readers dereference exactly
// once per check, so a concurrent Configure is observed as a single
// indivisible replacement.
var current atomic.Pointer[Policy]

func init() {
	current.Store(inert)
}

// Option adjusts the snapshot being built by Configure.
type Option func(*Policy)

// WithEnabled sets the enabled flag. Configure defaults to enabled.
func WithEnabled(enabled bool) Option {
	return func(p *Policy) { p.Enabled = enabled }
}

// WithErrorFactory installs a custom violation error kind.
func WithErrorFactory(f ErrorFactory) Option {
	return func(p *Policy) { p.NewError = f }
}

// WithoutError clears the error kind, so violations are logged (if a log
// level is set) or dropped instead of raised.
func WithoutError() Option {
	return func(p *Policy) { p.NewError = nil }
}

// WithLogLevel sets the severity used for violation log records.
func WithLogLevel(level slog.Level) Option {
	return func(p *Policy) {
		l := level
		p.LogLevel = &l
	}
}

// Configure atomically replaces the process-wide policy snapshot. The
// new snapshot is built from defaults plus the given options; it never
// merges with the previous snapshot. Defaults: enabled, generic
// violation error kind, logging disabled.
//
// Configure may be called any number of times, at any point in the
// process lifetime, before or after any callable has been wrapped.
func Configure(opts ...Option) {
	p := &Policy{
		Enabled:  true,
		NewError: DefaultErrorFactory,
	}
	for _, opt := range opts {
		opt(p)
	}
	current.Store(p)
}

// Current returns the snapshot in effect. Callers must read it once per
// check and not cache it across checks.
func Current() *Policy {
	return current.Load()
}

// Reset restores the unconfigured, fully inert snapshot. Intended for
// tests that exercise the pre-configuration behavior.
func Reset() {
	current.Store(inert)
}
