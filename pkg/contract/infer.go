package contract

import (
	"fmt"
	"reflect"

	"mercator-hq/ganymede/pkg/sig"
)

// Infer derives a contract from fn's own static signature: every
// parameter gets an exact-type term for its declared type and the first
// result becomes the return contract. It is pure sugar over Wrap: the
// derived terms funnel through the same compiler, with no new semantics.
//
// Parameter names default to arg0..argN-1 and can be overridden:
//
//	c, err := contract.Infer(strings.Repeat, "s", "count")
//
// Parameters (and results) typed as the empty interface carry no
// constraint and are left uncontracted. A func with no results gets the
// void return contract. The variadic tail's element type is applied
// elementwise to every extra actual.
//
// Inferring from a statically-typed func is mostly useful when the
// contract's callers go through CallNamed with dynamic values; the
// checks then produce violations instead of reflect panics.
func Infer(fn any, names ...string) (*Contract, error) {
	fv := reflect.ValueOf(fn)
	if !fv.IsValid() || fv.Kind() != reflect.Func {
		return nil, sig.NewDefinitionError(fn, "inferred callable must be a func, got %T", fn)
	}
	ft := fv.Type()

	if len(names) > 0 && len(names) != ft.NumIn() {
		return nil, sig.NewDefinitionError(fn,
			"callable takes %d parameters, %d names given", ft.NumIn(), len(names))
	}

	decl := &Decl{
		Params: make([]Param, ft.NumIn()),
		Args:   make(map[string]any, ft.NumIn()),
	}

	anyType := reflect.TypeOf((*any)(nil)).Elem()
	for i := 0; i < ft.NumIn(); i++ {
		name := fmt.Sprintf("arg%d", i)
		if len(names) > 0 {
			name = names[i]
		}
		decl.Params[i] = Param{Name: name}

		t := ft.In(i)
		if ft.IsVariadic() && i == ft.NumIn()-1 {
			t = t.Elem()
		}
		if t == anyType {
			continue
		}
		decl.Args[name] = t
	}

	decl.Returns = inferReturn(ft, anyType)

	return Wrap(fn, decl)
}

// MustInfer is like Infer but panics on a definition error.
func MustInfer(fn any, names ...string) *Contract {
	c, err := Infer(fn, names...)
	if err != nil {
		panic(fmt.Sprintf("contract: %v", err))
	}
	return c
}

// inferReturn picks the return term for a func type: void for no
// results, none for an error-only or empty-interface result, otherwise
// the first result's exact type.
func inferReturn(ft reflect.Type, anyType reflect.Type) any {
	errType := reflect.TypeOf((*error)(nil)).Elem()

	if ft.NumOut() == 0 {
		return sig.Void
	}
	out := ft.Out(0)
	if out == errType || out == anyType {
		return nil
	}
	return out
}
