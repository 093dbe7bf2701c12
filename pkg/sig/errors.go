package sig

import (
	"errors"
	"fmt"
)

// ErrDefinition is the sentinel wrapped by every DefinitionError, so
// callers can test with errors.Is without knowing the concrete type.
var ErrDefinition = errors.New("invalid contract definition")

// DefinitionError reports a malformed signature term or contract
// declaration. It is raised at declaration time only, is always fatal,
// and is never suppressed by the enforcement policy: it signals a
// programming mistake in the contract, not a runtime data issue.
type DefinitionError struct {
	// Message describes what is wrong with the definition.
	Message string

	// Term is the offending term, when one is available.
	Term any
}

// Error implements the error interface.
func (e *DefinitionError) Error() string {
	if e.Term != nil {
		return fmt.Sprintf("contract definition: %s (term %#v)", e.Message, e.Term)
	}
	return fmt.Sprintf("contract definition: %s", e.Message)
}

// Unwrap returns the ErrDefinition sentinel.
func (e *DefinitionError) Unwrap() error {
	return ErrDefinition
}

// NewDefinitionError creates a DefinitionError for the given term.
func NewDefinitionError(term any, format string, args ...any) *DefinitionError {
	return &DefinitionError{
		Message: fmt.Sprintf(format, args...),
		Term:    term,
	}
}
