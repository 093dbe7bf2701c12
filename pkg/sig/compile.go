package sig

import (
	"fmt"
	"reflect"
)

// Compile parses a signature term into an immutable Signature tree.
// Compilation is recursive and total over the grammar documented in the
// package comment: any conforming term compiles, anything else returns a
// DefinitionError. Compile is deterministic: equivalent terms produce
// structurally identical trees.
func Compile(term any) (*Signature, error) {
	switch t := term.(type) {
	case nil:
		return nil, NewDefinitionError(term, "nil is not a signature term; use sig.Nullable or sig.Void")

	case *Signature:
		// Already compiled. Trees are immutable, so sharing is safe.
		return t, nil

	case reflect.Type:
		return &Signature{Kind: KindExact, Type: t}, nil

	case string:
		if t == "" {
			return nil, NewDefinitionError(term, "forward reference name must not be empty")
		}
		return &Signature{Kind: KindForwardRef, Name: t}, nil

	case ListTerm:
		if len(t.Elems) != 1 {
			return nil, NewDefinitionError(term, "list term requires exactly 1 element, got %d", len(t.Elems))
		}
		elem, err := Compile(t.Elems[0])
		if err != nil {
			return nil, err
		}
		return &Signature{Kind: KindList, Elem: elem}, nil

	case TupleTerm:
		if len(t.Elems) == 0 {
			return nil, NewDefinitionError(term, "tuple term requires at least 1 element")
		}
		elems, err := compileAll(t.Elems)
		if err != nil {
			return nil, err
		}
		return &Signature{Kind: KindTuple, Elems: elems}, nil

	case MapTerm:
		if len(t.Terms) != 2 {
			return nil, NewDefinitionError(term, "map term requires exactly 1 key term and 1 value term, got %d terms", len(t.Terms))
		}
		key, err := Compile(t.Terms[0])
		if err != nil {
			return nil, err
		}
		value, err := Compile(t.Terms[1])
		if err != nil {
			return nil, err
		}
		return &Signature{Kind: KindMap, Key: key, Value: value}, nil

	case SetTerm:
		if len(t.Elems) != 1 {
			return nil, NewDefinitionError(term, "set term requires exactly 1 element, got %d", len(t.Elems))
		}
		elem, err := Compile(t.Elems[0])
		if err != nil {
			return nil, err
		}
		return &Signature{Kind: KindSet, Elem: elem}, nil

	case UnionTerm:
		if len(t.Members) < 2 {
			return nil, NewDefinitionError(term, "union term requires at least 2 members, got %d", len(t.Members))
		}
		members, err := compileAll(t.Members)
		if err != nil {
			return nil, err
		}
		return &Signature{Kind: KindUnion, Members: members}, nil

	case NullableTerm:
		elem, err := Compile(t.Elem)
		if err != nil {
			return nil, err
		}
		return &Signature{Kind: KindNullable, Elem: elem}, nil

	case iterableMarker:
		return &Signature{Kind: KindIterable}, nil

	case voidMarker:
		return &Signature{Kind: KindVoid}, nil

	case []any:
		// Raw list literal, mirroring ListTerm.
		return Compile(ListTerm{Elems: t})

	case map[any]any:
		// Raw map literal, mirroring MapTerm. A single key:value pair is
		// required, so iteration order cannot matter.
		if len(t) != 1 {
			return nil, NewDefinitionError(term, "map literal requires exactly 1 key:value pair, got %d", len(t))
		}
		for k, v := range t {
			return Compile(MapTerm{Terms: []any{k, v}})
		}
		panic("unreachable")

	default:
		return nil, NewDefinitionError(term, "unsupported signature term of type %T", term)
	}
}

// MustCompile is like Compile but panics on a malformed term. Intended
// for terms fixed at program start, mirroring regexp.MustCompile.
func MustCompile(term any) *Signature {
	s, err := Compile(term)
	if err != nil {
		panic(fmt.Sprintf("sig: %v", err))
	}
	return s
}

// compileAll compiles a slice of terms in order.
func compileAll(terms []any) ([]*Signature, error) {
	out := make([]*Signature, len(terms))
	for i, t := range terms {
		s, err := Compile(t)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}
