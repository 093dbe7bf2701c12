// Package policy holds the process-wide enforcement policy and reports
// contract violations according to it.
//
// The policy is a single immutable snapshot behind an atomic reference.
// Configure replaces the snapshot wholesale (never merged field by
// field), so concurrent checks always observe a fully consistent
// configuration. Before the first Configure call the snapshot is fully
// inert: contracts are compiled and wired, but violations are neither
// raised nor logged. Enforcement is opt-in, which makes wrapping
// production code safe by default.
//
// A typical production setup raises on violations:
//
//	policy.Configure() // enabled, generic violation error, no logging
//
// or logs them instead:
//
//	policy.Configure(policy.WithoutError(), policy.WithLogLevel(slog.LevelWarn))
//
// Reporting is entirely governed by the snapshot current at check time:
// the shape of a contract is fixed when a callable is wrapped, but
// whether and how violations surface can change at any moment, including
// long after decoration.
package policy
