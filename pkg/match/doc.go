// Package match implements the recursive matcher engine that decides
// whether a runtime value satisfies a compiled signature tree.
//
// Matching is a pure predicate: Matches performs a bounded recursive walk
// over the value's structure with no side effects, no I/O, and no
// blocking, short-circuiting on the first failing element. Cost is
// proportional to the size and depth of the value being checked.
//
// # Go renditions
//
// The engine maps the signature grammar onto Go value shapes:
//
//   - list: any slice kind, elementwise
//   - tuple: any array kind of exactly the declared arity, positional
//   - set: map[K]struct{}, the conventional Go set encoding
//   - map: any other map kind, every key/value pair independently
//   - iterable: slice, array, map, string, channel, or an iter.Seq /
//     iter.Seq2 shaped function; only the type shape is inspected, so the
//     check never receives from a channel or invokes a sequence function
//   - null sentinel: untyped nil, or a nil value of a nilable kind
//
// # Test doubles
//
// A Matcher carries a pluggable list of escape-hatch predicates,
// registered with RegisterDouble. A value recognized by any predicate
// matches every signature unconditionally, so mocks and stubs pass
// through contracts without ceremony:
//
//	match.RegisterDouble(func(v any) bool {
//	    _, ok := v.(interface{ IsMock() bool })
//	    return ok
//	})
package match
