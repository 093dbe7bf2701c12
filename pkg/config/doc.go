// Package config loads and validates the Ganymede configuration file
// and projects its enforcement section onto the process-wide policy.
//
// Configuration is YAML with environment-variable overrides
// (GANYMEDE_SECTION_FIELD), loaded once at startup and optionally
// hot-reloaded by the file watcher:
//
//	enforcement:
//	  enabled: true
//	  mode: raise            # raise | log | silent
//	  log_level: warn        # used when mode is log
//
//	logging:
//	  level: info
//	  format: text
//
//	audit:
//	  enabled: true
//	  database_path: data/audit.db
//	  retention_days: 30
//	  prune_schedule: "0 3 * * *"
//
//	metrics:
//	  enabled: true
//	  namespace: ganymede
//
//	reload:
//	  enabled: true
//	  debounce: 200ms
//
// The loading sequence is load → apply defaults → apply env overrides →
// validate; Apply then replaces the enforcement policy snapshot
// wholesale. A config file is never required: without one the policy
// stays at its inert default and contracts are transparent.
package config
