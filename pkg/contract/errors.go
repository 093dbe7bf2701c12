package contract

import (
	"errors"
	"fmt"
)

// ErrInvocation is the sentinel wrapped by every InvocationError.
var ErrInvocation = errors.New("invocation error")

// InvocationError reports a call that could not be bound or delegated to
// the wrapped callable: unknown or duplicate argument names, a missing
// required argument, or a value the underlying Go function cannot
// accept. It is not a contract violation and is never governed by the
// enforcement policy.
type InvocationError struct {
	Callable string
	Message  string
}

// Error implements the error interface.
func (e *InvocationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Callable, e.Message)
}

// Unwrap returns the ErrInvocation sentinel.
func (e *InvocationError) Unwrap() error {
	return ErrInvocation
}

func invocationErr(callable, format string, args ...any) error {
	return &InvocationError{
		Callable: callable,
		Message:  fmt.Sprintf(format, args...),
	}
}
