package policy

import (
	"context"
	"log/slog"
)

// Report reports a violation under the policy snapshot current at the
// time of the call. It reads the snapshot exactly once, so a concurrent
// Configure can never produce a half-old, half-new decision.
//
// Behavior by snapshot:
//   - disabled: no-op, returns nil
//   - error kind set: returns the configured error; the caller (the call
//     wrapper) propagates it through normal control flow
//   - log level set: emits the violation context at that severity
//   - neither set: no-op even though enabled (a policy with nothing
//     selected is legally inert)
//
// Observers are notified whenever the snapshot is enabled, independent
// of which reporting mode is selected.
func Report(v *Violation) error {
	p := Current()
	if !p.Enabled {
		return nil
	}

	notifyObservers(v)

	if p.NewError != nil {
		return p.NewError(v)
	}

	if p.LogLevel != nil {
		slog.Default().LogAttrs(context.Background(), *p.LogLevel, v.Message(),
			slog.String("callable", v.Callable),
			slog.String("param", v.Param),
			slog.String("expected", v.Expected),
			slog.String("value_type", v.ValueType),
		)
	}

	return nil
}
