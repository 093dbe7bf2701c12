package sig

import "reflect"

// T returns the reflect.Type for X, for use as an exact-type term.
// It works for interface types as well as concrete types:
//
//	sig.T[int]()          // concrete
//	sig.T[io.Reader]()    // interface
func T[X any]() reflect.Type {
	return reflect.TypeOf((*X)(nil)).Elem()
}

// ListTerm is a homogeneous-list term. Construct with List.
type ListTerm struct {
	Elems []any
}

// List declares an ordered homogeneous sequence (a slice). Exactly one
// element term is required; any other arity fails compilation.
func List(elems ...any) ListTerm {
	return ListTerm{Elems: elems}
}

// TupleTerm is a fixed-arity positionally-typed term. Construct with Tuple.
type TupleTerm struct {
	Elems []any
}

// Tuple declares a fixed-arity immutable sequence (an array), typed
// positionally. At least one element term is required.
func Tuple(elems ...any) TupleTerm {
	return TupleTerm{Elems: elems}
}

// MapTerm is an associative-container term. Construct with Map.
type MapTerm struct {
	Terms []any
}

// Map declares an associative container in which every key matches the
// key term and every value matches the value term. Exactly one key term
// and one value term are required.
func Map(terms ...any) MapTerm {
	return MapTerm{Terms: terms}
}

// SetTerm is an unordered-unique-collection term. Construct with Set.
type SetTerm struct {
	Elems []any
}

// Set declares an unordered unique collection, encoded in Go as
// map[K]struct{}. Exactly one element term is required.
func Set(elems ...any) SetTerm {
	return SetTerm{Elems: elems}
}

// UnionTerm matches if any member term matches. Construct with Union.
type UnionTerm struct {
	Members []any
}

// Union declares an inclusive-OR over member terms. At least two members
// are required; member order does not affect the result.
func Union(members ...any) UnionTerm {
	return UnionTerm{Members: members}
}

// NullableTerm matches nil or its inner term. Construct with Nullable.
type NullableTerm struct {
	Elem any
}

// Nullable declares a term that also accepts the nil sentinel.
func Nullable(elem any) NullableTerm {
	return NullableTerm{Elem: elem}
}

type iterableMarker struct{}

// Iterable is the generic-iterable marker. It matches any value that
// supports iteration (slice, array, map, string, channel, or an
// iter.Seq-shaped function) without consuming it, so lazy and unbounded
// sequences are safe to declare.
var Iterable = iterableMarker{}

type voidMarker struct{}

// Void is the return-contract sentinel meaning "must return the nil
// value". It is only meaningful as a return term.
var Void = voidMarker{}
