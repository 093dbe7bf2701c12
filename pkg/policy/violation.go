package policy

import (
	"fmt"
	"time"
)

// ReturnSite is the Param value used for return-value violations.
const ReturnSite = "return"

// Violation describes a single mismatch between an actual value and its
// declared signature, with enough context to diagnose the call site.
type Violation struct {
	// Callable is the wrapped callable's name.
	Callable string

	// Param is the violating parameter name, or ReturnSite for the
	// return value.
	Param string

	// Expected is the declared signature, rendered.
	Expected string

	// Value is the offending value as passed.
	Value any

	// ValueType is the offending value's runtime type, rendered.
	ValueType string

	// Time is when the violation was detected.
	Time time.Time
}

// Message renders the violation for logs and error messages.
func (v *Violation) Message() string {
	if v.Param == ReturnSite {
		return fmt.Sprintf("%s: return value of type %s does not match %s",
			v.Callable, v.ValueType, v.Expected)
	}
	return fmt.Sprintf("%s: argument %q of type %s does not match %s",
		v.Callable, v.Param, v.ValueType, v.Expected)
}
