package match

import (
	"log/slog"
	"reflect"
	"sync"

	"mercator-hq/ganymede/pkg/sig"
)

// DoublePredicate recognizes test doubles. A value for which any
// registered predicate returns true matches every signature.
type DoublePredicate func(value any) bool

// Matcher evaluates values against compiled signature trees.
// The zero value is not usable; construct with NewMatcher.
type Matcher struct {
	logger *slog.Logger

	mu      sync.RWMutex
	doubles []DoublePredicate
}

// NewMatcher creates a matcher. A nil logger falls back to slog.Default.
func NewMatcher(logger *slog.Logger) *Matcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Matcher{
		logger: logger.With("component", "match"),
	}
}

// RegisterDouble adds an escape-hatch predicate, evaluated before any
// other rule. Predicates must be cheap and side-effect free.
func (m *Matcher) RegisterDouble(pred DoublePredicate) {
	if pred == nil {
		return
	}
	m.mu.Lock()
	m.doubles = append(m.doubles, pred)
	m.mu.Unlock()
}

// Matches reports whether value satisfies the signature. It is pure and
// recursive, and short-circuits on the first failing element.
func (m *Matcher) Matches(value any, s *sig.Signature) bool {
	if s == nil {
		return false
	}

	// Escape hatch first: a recognized test double matches regardless of
	// the rest of the tree.
	if m.isDouble(value) {
		return true
	}

	switch s.Kind {
	case sig.KindExact:
		return m.matchExact(value, s.Type)
	case sig.KindList:
		return m.matchList(value, s.Elem)
	case sig.KindTuple:
		return m.matchTuple(value, s.Elems)
	case sig.KindMap:
		return m.matchMap(value, s.Key, s.Value)
	case sig.KindSet:
		return m.matchSet(value, s.Elem)
	case sig.KindIterable:
		return isIterable(value)
	case sig.KindUnion:
		for _, member := range s.Members {
			if m.Matches(value, member) {
				return true
			}
		}
		return false
	case sig.KindNullable:
		return isNull(value) || m.Matches(value, s.Elem)
	case sig.KindForwardRef:
		return matchForwardRef(value, s.Name)
	case sig.KindVoid:
		return isNull(value)
	default:
		m.logger.Warn("unknown signature kind", "kind", string(s.Kind))
		return false
	}
}

// isDouble reports whether any registered predicate recognizes value.
func (m *Matcher) isDouble(value any) bool {
	m.mu.RLock()
	preds := m.doubles
	m.mu.RUnlock()

	for _, pred := range preds {
		if pred(value) {
			return true
		}
	}
	return false
}

// matchExact reports whether value is an instance of want: its dynamic
// type is identical to want, satisfies want when want is an interface,
// is a defined type whose underlying type is want, or is a struct
// embedding want (Go's closest analogs to subclassing).
func (m *Matcher) matchExact(value any, want reflect.Type) bool {
	if value == nil {
		return false
	}

	vt := reflect.TypeOf(value)
	if vt.AssignableTo(want) {
		return true
	}
	if underlies(want, vt) {
		return true
	}
	return embedsType(vt, want)
}

// underlies reports whether want is the underlying type of vt, so a
// defined type (type Celsius float64) matches the type it is declared
// from. Only predeclared and unnamed types can underlie another type;
// the reverse direction never matches, so float64 is not a Celsius.
func underlies(want, vt reflect.Type) bool {
	if want.PkgPath() != "" {
		return false
	}
	return vt.Kind() == want.Kind() && vt.ConvertibleTo(want)
}

func (m *Matcher) matchList(value any, elem *sig.Signature) bool {
	rv := reflect.ValueOf(value)
	if !rv.IsValid() || rv.Kind() != reflect.Slice {
		return false
	}

	// Empty lists vacuously match.
	for i := 0; i < rv.Len(); i++ {
		if !m.Matches(rv.Index(i).Interface(), elem) {
			return false
		}
	}
	return true
}

func (m *Matcher) matchTuple(value any, elems []*sig.Signature) bool {
	rv := reflect.ValueOf(value)
	if !rv.IsValid() || rv.Kind() != reflect.Array {
		return false
	}

	// Arity mismatch is a non-match, not an error.
	if rv.Len() != len(elems) {
		return false
	}
	for i, e := range elems {
		if !m.Matches(rv.Index(i).Interface(), e) {
			return false
		}
	}
	return true
}

func (m *Matcher) matchMap(value any, key, val *sig.Signature) bool {
	rv := reflect.ValueOf(value)
	if !rv.IsValid() || rv.Kind() != reflect.Map {
		return false
	}

	// Set-encoded maps are a distinct container kind.
	if isSetType(rv.Type()) {
		return false
	}

	iter := rv.MapRange()
	for iter.Next() {
		if !m.Matches(iter.Key().Interface(), key) {
			return false
		}
		if !m.Matches(iter.Value().Interface(), val) {
			return false
		}
	}
	return true
}

func (m *Matcher) matchSet(value any, elem *sig.Signature) bool {
	rv := reflect.ValueOf(value)
	if !rv.IsValid() || rv.Kind() != reflect.Map || !isSetType(rv.Type()) {
		return false
	}

	// Empty sets vacuously match.
	iter := rv.MapRange()
	for iter.Next() {
		if !m.Matches(iter.Key().Interface(), elem) {
			return false
		}
	}
	return true
}

// matchForwardRef matches by exact type-name string equality only: no
// subtype allowance, and an unresolvable name is simply a non-match.
func matchForwardRef(value any, name string) bool {
	if value == nil {
		return false
	}
	return reflect.TypeOf(value).Name() == name
}

// isSetType reports whether t is the map[K]struct{} set encoding.
func isSetType(t reflect.Type) bool {
	return t.Kind() == reflect.Map &&
		t.Elem().Kind() == reflect.Struct &&
		t.Elem().NumField() == 0
}

// isNull reports whether value is the null sentinel: untyped nil, or a
// nil value of a nilable kind (pointer, map, slice, channel, function).
func isNull(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// isIterable reports whether value supports iteration. Only the type
// shape is inspected: channels are never received from and sequence
// functions are never invoked, so unbounded and lazy sequences are safe.
func isIterable(value any) bool {
	if value == nil {
		return false
	}

	t := reflect.TypeOf(value)
	switch t.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.String, reflect.Chan:
		return true
	case reflect.Func:
		return isSeqFunc(t)
	default:
		return false
	}
}

// isSeqFunc reports whether t has the iter.Seq or iter.Seq2 shape:
// func(yield func(V) bool) or func(yield func(K, V) bool).
func isSeqFunc(t reflect.Type) bool {
	if t.NumIn() != 1 || t.NumOut() != 0 || t.IsVariadic() {
		return false
	}
	yield := t.In(0)
	if yield.Kind() != reflect.Func || yield.IsVariadic() {
		return false
	}
	if yield.NumOut() != 1 || yield.Out(0).Kind() != reflect.Bool {
		return false
	}
	n := yield.NumIn()
	return n == 1 || n == 2
}

// embedsType reports whether vt is a struct (or pointer to struct) with
// want embedded as an anonymous field, directly or transitively.
func embedsType(vt, want reflect.Type) bool {
	if vt.Kind() == reflect.Ptr {
		vt = vt.Elem()
	}
	if vt.Kind() != reflect.Struct || want.Kind() != reflect.Struct {
		return false
	}

	for i := 0; i < vt.NumField(); i++ {
		f := vt.Field(i)
		if !f.Anonymous {
			continue
		}
		ft := f.Type
		if ft.Kind() == reflect.Ptr {
			ft = ft.Elem()
		}
		if ft == want || embedsType(ft, want) {
			return true
		}
	}
	return false
}
