package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"mercator-hq/ganymede/pkg/policy"
)

func startWatcher(t *testing.T, path string) *Watcher {
	t.Helper()
	w, err := NewWatcher(path, 20*time.Millisecond, nil)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	t.Cleanup(w.Stop)
	return w
}

// waitFor polls cond until it holds or the deadline passes.
func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal(msg)
}

// TestWatcher_ReloadOnWrite tests that rewriting the file re-applies
// the enforcement section.
func TestWatcher_ReloadOnWrite(t *testing.T) {
	t.Cleanup(policy.Reset)

	path := writeConfigFile(t, "enforcement:\n  enabled: false\n  mode: raise\n")
	startWatcher(t, path)

	policy.Reset()
	if err := os.WriteFile(path, []byte("enforcement:\n  enabled: true\n  mode: raise\n"), 0o644); err != nil {
		t.Fatalf("rewrite failed: %v", err)
	}

	waitFor(t, func() bool {
		p := policy.Current()
		return p.Enabled && p.NewError != nil
	}, "policy was not re-applied after file write")
}

// TestWatcher_SurvivesAtomicRename tests the write-then-rename save
// pattern used by editors and configuration management.
func TestWatcher_SurvivesAtomicRename(t *testing.T) {
	t.Cleanup(policy.Reset)

	path := writeConfigFile(t, "enforcement:\n  enabled: false\n  mode: raise\n")
	startWatcher(t, path)

	policy.Reset()
	tmp := filepath.Join(filepath.Dir(path), ".ganymede.yaml.tmp")
	if err := os.WriteFile(tmp, []byte("enforcement:\n  enabled: true\n  mode: silent\n"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatalf("rename failed: %v", err)
	}

	waitFor(t, func() bool {
		p := policy.Current()
		return p.Enabled && p.NewError == nil
	}, "policy was not re-applied after atomic rename")
}

// TestWatcher_KeepsPolicyOnBadReload tests that a reload failure leaves
// the previous configuration and policy in effect.
func TestWatcher_KeepsPolicyOnBadReload(t *testing.T) {
	t.Cleanup(policy.Reset)

	path := writeConfigFile(t, "enforcement:\n  enabled: true\n  mode: raise\n")
	startWatcher(t, path)

	policy.Configure()
	if err := os.WriteFile(path, []byte("enforcement:\n  mode: shout\n"), 0o644); err != nil {
		t.Fatalf("rewrite failed: %v", err)
	}

	// Give the debounced reload a chance to run, then confirm the
	// raising policy survived.
	time.Sleep(300 * time.Millisecond)
	p := policy.Current()
	if !p.Enabled || p.NewError == nil {
		t.Error("policy changed after a failed reload")
	}
}

// TestWatcher_IgnoresSiblingFiles tests that events for other files in
// the watched directory do not trigger a reload.
func TestWatcher_IgnoresSiblingFiles(t *testing.T) {
	t.Cleanup(policy.Reset)

	path := writeConfigFile(t, "enforcement:\n  enabled: true\n  mode: raise\n")
	startWatcher(t, path)

	policy.Reset()
	sibling := filepath.Join(filepath.Dir(path), "other.yaml")
	if err := os.WriteFile(sibling, []byte("enforcement:\n  enabled: true\n"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	time.Sleep(300 * time.Millisecond)
	if policy.Current().Enabled {
		t.Error("sibling file event triggered a reload")
	}
}

// TestWatcher_StartStop tests the lifecycle guards.
func TestWatcher_StartStop(t *testing.T) {
	path := writeConfigFile(t, "enforcement:\n  mode: raise\n")

	w, err := NewWatcher(path, 20*time.Millisecond, nil)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := w.Start(); err == nil {
		t.Error("second Start() error = nil, want already-running error")
	}

	w.Stop()
	w.Stop() // idempotent
}
