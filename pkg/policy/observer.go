package policy

import "sync"

// Observer is notified of every violation reported while enforcement is
// enabled, regardless of whether the violation raises, logs, or is
// dropped. The audit recorder and the metrics collector implement it.
//
// Observers run synchronously on the reporting goroutine and must not
// block; hand off to a channel for anything slow.
type Observer interface {
	ObserveViolation(v *Violation)
}

var (
	observerMu sync.RWMutex
	observers  []Observer
)

// RegisterObserver attaches an observer to the reporting path.
func RegisterObserver(o Observer) {
	if o == nil {
		return
	}
	observerMu.Lock()
	observers = append(observers, o)
	observerMu.Unlock()
}

// ResetObservers detaches all observers. Intended for tests.
func ResetObservers() {
	observerMu.Lock()
	observers = nil
	observerMu.Unlock()
}

// notifyObservers fans a violation out to all registered observers.
func notifyObservers(v *Violation) {
	observerMu.RLock()
	obs := observers
	observerMu.RUnlock()

	for _, o := range obs {
		o.ObserveViolation(v)
	}
}
