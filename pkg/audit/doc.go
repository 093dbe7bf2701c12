// Package audit persists contract violations for after-the-fact
// diagnosis: which callables were hit, with what argument shapes, and
// when. It is the durable complement to the policy's immediate
// raise/log reporting.
//
// The package is organized into subpackages mirroring the write path:
//
//   - recorder: async, non-blocking capture of violations; attaches to
//     the reporting path as a policy.Observer
//   - storage: the Storage interface's SQLite backend
//   - retention: age- and count-based pruning, optionally on a cron
//     schedule
//
// Recording never blocks a checked call: violations are handed to a
// bounded channel and written by a background worker; when the buffer
// is full the violation is counted as dropped.
package audit
