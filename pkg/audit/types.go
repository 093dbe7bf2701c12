package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"mercator-hq/ganymede/pkg/policy"
)

// Record is one persisted contract violation.
type Record struct {
	// ID is a UUID assigned at capture time.
	ID string

	// Callable is the wrapped callable's name.
	Callable string

	// Param is the violating parameter name, or "return".
	Param string

	// Expected is the declared signature, rendered.
	Expected string

	// ValueType is the offending value's runtime type, rendered.
	ValueType string

	// Value is the offending value rendered with %v, truncated by the
	// recorder. The value itself is never stored.
	Value string

	// ObservedAt is when the violation was detected.
	ObservedAt time.Time
}

// NewRecord builds a Record from a violation, rendering the offending
// value and truncating it to maxValueLen runes (0 means no limit).
func NewRecord(v *policy.Violation, maxValueLen int) *Record {
	rendered := fmt.Sprintf("%v", v.Value)
	if maxValueLen > 0 {
		if r := []rune(rendered); len(r) > maxValueLen {
			rendered = string(r[:maxValueLen]) + "..."
		}
	}

	return &Record{
		ID:         uuid.NewString(),
		Callable:   v.Callable,
		Param:      v.Param,
		Expected:   v.Expected,
		ValueType:  v.ValueType,
		Value:      rendered,
		ObservedAt: v.Time,
	}
}

// Storage persists audit records. Implementations must be safe for
// concurrent use.
type Storage interface {
	// Save persists one record.
	Save(ctx context.Context, record *Record) error

	// Recent returns up to limit records, newest first.
	Recent(ctx context.Context, limit int) ([]*Record, error)

	// Count returns the total number of stored records.
	Count(ctx context.Context) (int64, error)

	// DeleteOlderThan removes records observed before cutoff and
	// returns how many were removed.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)

	// DeleteOverCount removes the oldest records beyond max and returns
	// how many were removed.
	DeleteOverCount(ctx context.Context, max int64) (int64, error)

	// Close releases the backend.
	Close() error
}
