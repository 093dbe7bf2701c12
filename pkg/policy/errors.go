package policy

import "errors"

// ErrViolation is the sentinel wrapped by the generic violation error
// kind, so callers can test with errors.Is regardless of the configured
// factory.
var ErrViolation = errors.New("contract violation")

// ViolationError is the generic error kind produced by the default
// ErrorFactory. It carries the full violation context and propagates
// through the caller's normal error-handling path like any other error.
type ViolationError struct {
	Violation *Violation
}

// Error implements the error interface.
func (e *ViolationError) Error() string {
	return "contract violation: " + e.Violation.Message()
}

// Unwrap returns the ErrViolation sentinel.
func (e *ViolationError) Unwrap() error {
	return ErrViolation
}

// ErrorFactory builds the error raised for a violation. Custom kinds are
// installed with WithErrorFactory; a factory must not return nil.
type ErrorFactory func(v *Violation) error

// DefaultErrorFactory produces a *ViolationError, the generic kind used
// when Configure is called without an explicit factory.
func DefaultErrorFactory(v *Violation) error {
	return &ViolationError{Violation: v}
}
