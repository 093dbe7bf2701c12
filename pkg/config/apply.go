package config

import (
	"mercator-hq/ganymede/pkg/policy"
)

// Apply projects the enforcement section onto the process-wide policy
// snapshot. The snapshot is replaced wholesale; fields not derivable
// from the configuration revert to their Configure defaults.
//
// Mode mapping:
//   - raise: generic violation error kind, no logging
//   - log: no error kind, violations logged at enforcement.log_level
//   - silent: enabled but neither error nor logging selected; audit and
//     metrics observers still fire
func Apply(cfg *Config) {
	opts := []policy.Option{
		policy.WithEnabled(cfg.Enforcement.Enabled),
	}

	switch cfg.Enforcement.Mode {
	case ModeLog:
		opts = append(opts, policy.WithoutError())
		// Level was validated with the rest of the config.
		if level, err := ParseLevel(cfg.Enforcement.LogLevel); err == nil {
			opts = append(opts, policy.WithLogLevel(level))
		}
	case ModeSilent:
		opts = append(opts, policy.WithoutError())
	}

	policy.Configure(opts...)
}
