// Package sig defines the type-signature grammar and compiles signature
// terms into immutable matcher trees.
//
// A signature term is a declarative description of a type constraint,
// written with the constructors in this package (or the raw literal forms
// they mirror) and compiled exactly once, when a contract is declared:
//
//	s, err := sig.Compile(sig.List(sig.T[int]()))       // list of int
//	s, err := sig.Compile(sig.Tuple(sig.T[int](), "Node")) // (int, forward-ref "Node")
//	s, err := sig.Compile(sig.Nullable(sig.T[string]())) // string or nil
//
// The package is organized as:
//
//   - term.go: the term constructors (List, Tuple, Map, Set, Union,
//     Nullable, the Iterable and Void markers, and the generic T helper)
//   - signature.go: the compiled Signature tree (closed set of node kinds)
//   - compile.go: the recursive term-to-tree compiler
//   - errors.go: DefinitionError, raised for malformed terms
//
// # Grammar
//
// A term is one of:
//
//   - a reflect.Type or sig.T[X](): exact type (identity, interface
//     satisfaction, or subtype)
//   - sig.List(elem) or []any{elem}: homogeneous slice; any other arity
//     is a DefinitionError
//   - sig.Tuple(e1, ..., en): fixed-arity array, positionally typed
//   - sig.Map(key, value) or map[any]any{key: value}: associative
//     container; any other pair count is a DefinitionError
//   - sig.Set(elem): map[K]struct{} set encoding
//   - sig.Iterable: anything iterable, checked without consumption
//   - sig.Union(m1, ..., mn): matches if any member matches
//   - sig.Nullable(inner): matches nil or the inner term
//   - a string: forward reference, matched by exact type-name equality
//     at check time
//
// Compilation is total over this grammar: any conforming term compiles,
// anything else is a DefinitionError. Definition errors signal a mistake
// in the contract itself and are never suppressed by the enforcement
// policy.
//
// Compiled Signature trees never mutate. Compiling the same term twice
// yields structurally identical trees (compare with String()).
package sig
