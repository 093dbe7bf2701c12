package sig

import (
	"fmt"
	"reflect"
	"strings"
)

// Kind identifies the variant of a compiled Signature node.
type Kind string

const (
	KindExact      Kind = "exact"       // value is an instance of Type
	KindList       Kind = "list"        // slice, elementwise Elem
	KindTuple      Kind = "tuple"       // array of exactly len(Elems), positional
	KindMap        Kind = "map"         // map, every pair matches (Key, Value)
	KindSet        Kind = "set"         // map[K]struct{}, elementwise Elem
	KindIterable   Kind = "iterable"    // anything iterable, never consumed
	KindUnion      Kind = "union"       // any member of Members matches
	KindNullable   Kind = "nullable"    // nil or Elem matches
	KindForwardRef Kind = "forward_ref" // exact type-name string equality
	KindVoid       Kind = "void"        // return sentinel: must be nil
)

// Signature is one node of a compiled, immutable matcher tree. Only the
// fields relevant to Kind are populated; trees are built by Compile and
// never mutated afterwards.
type Signature struct {
	Kind    Kind
	Type    reflect.Type // KindExact
	Elem    *Signature   // KindList, KindSet, KindNullable
	Elems   []*Signature // KindTuple, positional
	Key     *Signature   // KindMap
	Value   *Signature   // KindMap
	Members []*Signature // KindUnion
	Name    string       // KindForwardRef
}

// String renders a stable, human-readable form of the signature. Two
// signatures compiled from equivalent terms render identically, so the
// rendering doubles as a structural-equality key.
func (s *Signature) String() string {
	if s == nil {
		return "<nil>"
	}

	switch s.Kind {
	case KindExact:
		return s.Type.String()
	case KindList:
		return fmt.Sprintf("[%s]", s.Elem)
	case KindTuple:
		parts := make([]string, len(s.Elems))
		for i, e := range s.Elems {
			parts[i] = e.String()
		}
		return fmt.Sprintf("(%s)", strings.Join(parts, ", "))
	case KindMap:
		return fmt.Sprintf("{%s: %s}", s.Key, s.Value)
	case KindSet:
		return fmt.Sprintf("{%s}", s.Elem)
	case KindIterable:
		return "iterable"
	case KindUnion:
		parts := make([]string, len(s.Members))
		for i, m := range s.Members {
			parts[i] = m.String()
		}
		return fmt.Sprintf("union(%s)", strings.Join(parts, ", "))
	case KindNullable:
		return fmt.Sprintf("nullable(%s)", s.Elem)
	case KindForwardRef:
		return fmt.Sprintf("%q", s.Name)
	case KindVoid:
		return "void"
	default:
		return fmt.Sprintf("<unknown kind %s>", string(s.Kind))
	}
}
