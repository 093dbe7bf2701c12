package contract

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
	"time"

	"mercator-hq/ganymede/pkg/match"
	"mercator-hq/ganymede/pkg/policy"
	"mercator-hq/ganymede/pkg/sig"
)

// Param declares one parameter of the wrapped callable, in positional
// order. A default makes the parameter optional in CallNamed.
type Param struct {
	Name       string
	Default    any
	HasDefault bool
}

// Names builds a Param list from bare names, for the common case of
// parameters without defaults.
func Names(names ...string) []Param {
	params := make([]Param, len(names))
	for i, n := range names {
		params[i] = Param{Name: n}
	}
	return params
}

// WithDefault builds an optional parameter.
func WithDefault(name string, def any) Param {
	return Param{Name: name, Default: def, HasDefault: true}
}

// Decl declares a contract for a callable. Params lists the callable's
// own parameter names in order; Args maps parameter names to signature
// terms; Returns is a signature term, sig.Void, or nil for unchecked.
//
// Every Args key must name a declared parameter: unknown keys fail at
// wrap time with a DefinitionError, before the callable is ever invoked.
type Decl struct {
	// Name overrides the callable's introspected name.
	Name string

	// Doc is carried verbatim for tooling that introspects wrappers.
	Doc string

	// Params are the callable's parameters in positional order. When
	// omitted, names arg0..argN-1 are synthesized.
	Params []Param

	// Args maps parameter names to signature terms. Parameters without
	// an entry are unchecked.
	Args map[string]any

	// Returns is the return-contract term, sig.Void, or nil.
	Returns any
}

// Instrument receives per-check timing from the wrapper. The metrics
// collector implements it; a nil instrument costs nothing.
type Instrument interface {
	RecordCheck(callable, param string, matched bool, d time.Duration)
}

// Contract owns the original callable together with its compiled
// parameter and return contracts. It is immutable after Wrap and
// exclusively owns the compiled trees.
type Contract struct {
	fn     reflect.Value
	fnType reflect.Type

	name string
	doc  string

	params      []Param
	paramIndex  map[string]int
	argSigs     map[string]*sig.Signature
	variadicSig *sig.Signature // elementwise contract for the variadic tail
	retSig      *sig.Signature

	hasErrOut bool
	hasValOut bool

	matcher    *match.Matcher
	instrument Instrument
}

// Wrap builds a Contract around fn. fn must be a func with zero, one, or
// two results; a two-result func must return (value, error), and a
// single error result is treated as error-only. All signature terms are
// compiled here, once; malformed terms or declarations return a
// DefinitionError.
func Wrap(fn any, decl *Decl) (*Contract, error) {
	if decl == nil {
		decl = &Decl{}
	}

	fv := reflect.ValueOf(fn)
	if !fv.IsValid() || fv.Kind() != reflect.Func {
		return nil, sig.NewDefinitionError(fn, "wrapped callable must be a func, got %T", fn)
	}
	if fv.IsNil() {
		return nil, sig.NewDefinitionError(fn, "wrapped callable must not be nil")
	}
	ft := fv.Type()

	c := &Contract{
		fn:      fv,
		fnType:  ft,
		name:    decl.Name,
		doc:     decl.Doc,
		matcher: match.Default(),
	}
	if c.name == "" {
		c.name = funcName(fv)
	}

	if err := c.declareOutputs(); err != nil {
		return nil, err
	}
	if err := c.declareParams(decl.Params); err != nil {
		return nil, err
	}
	if err := c.declareArgs(decl.Args); err != nil {
		return nil, err
	}
	if decl.Returns != nil {
		s, err := sig.Compile(decl.Returns)
		if err != nil {
			return nil, err
		}
		c.retSig = s
	}

	return c, nil
}

// MustWrap is like Wrap but panics on a definition error. Intended for
// contracts declared at program start.
func MustWrap(fn any, decl *Decl) *Contract {
	c, err := Wrap(fn, decl)
	if err != nil {
		panic(fmt.Sprintf("contract: %v", err))
	}
	return c
}

// SetMatcher replaces the matcher used for checks. Must be called before
// the contract is shared; intended for tests with a private double
// registry.
func (c *Contract) SetMatcher(m *match.Matcher) {
	if m != nil {
		c.matcher = m
	}
}

// SetInstrument attaches per-check instrumentation. Must be called
// before the contract is shared.
func (c *Contract) SetInstrument(in Instrument) {
	c.instrument = in
}

// Name returns the callable's introspectable name.
func (c *Contract) Name() string { return c.name }

// Doc returns the declared documentation string.
func (c *Contract) Doc() string { return c.doc }

// Unwrap returns the original callable.
func (c *Contract) Unwrap() any { return c.fn.Interface() }

// NumParams returns the number of declared parameters.
func (c *Contract) NumParams() int { return len(c.params) }

// Call invokes the wrapped callable with positional arguments, checking
// contracted arguments before delegation and the return contract after.
// Checks never block the call; the only way a mismatch aborts it is the
// policy raising, in which case the raised error is returned.
func (c *Contract) Call(args ...any) (any, error) {
	return c.CallNamed(args, nil)
}

// CallNamed invokes the wrapped callable with positional and named
// arguments. Named arguments bind by declared parameter name; unfilled
// parameters fall back to their declared defaults.
func (c *Contract) CallNamed(args []any, named map[string]any) (any, error) {
	fixed, extras, err := c.bind(args, named)
	if err != nil {
		return nil, err
	}

	if err := c.checkArgs(fixed, extras); err != nil {
		return nil, err
	}

	ret, callErr := c.invoke(fixed, extras)
	if callErr != nil {
		// The callable failed through its own error path; its result is
		// not meaningful, so the return contract is not consulted.
		return ret, callErr
	}

	if c.retSig != nil {
		if err := c.checkReturn(ret); err != nil {
			return nil, err
		}
	}

	return ret, nil
}

// checkArgs drives the matcher over every contracted argument and
// reports each mismatch. The first raise-mode error aborts the call.
func (c *Contract) checkArgs(fixed []any, extras []any) error {
	for i, p := range c.params {
		s, ok := c.argSigs[p.Name]
		if !ok || c.isVariadicIndex(i) {
			continue
		}
		if err := c.checkOne(p.Name, fixed[i], s); err != nil {
			return err
		}
	}

	if c.variadicSig != nil {
		name := c.params[len(c.params)-1].Name
		for _, v := range extras {
			if err := c.checkOne(name, v, c.variadicSig); err != nil {
				return err
			}
		}
	}

	return nil
}

// checkOne checks a single value and reports on mismatch.
func (c *Contract) checkOne(param string, value any, s *sig.Signature) error {
	start := time.Now()
	matched := c.matcher.Matches(value, s)
	if c.instrument != nil {
		c.instrument.RecordCheck(c.name, param, matched, time.Since(start))
	}
	if matched {
		return nil
	}

	return policy.Report(&policy.Violation{
		Callable:  c.name,
		Param:     param,
		Expected:  s.String(),
		Value:     value,
		ValueType: typeName(value),
		Time:      start,
	})
}

func (c *Contract) checkReturn(ret any) error {
	return c.checkOne(policy.ReturnSite, ret, c.retSig)
}

// invoke delegates to the original callable.
func (c *Contract) invoke(fixed []any, extras []any) (any, error) {
	in := make([]reflect.Value, 0, len(fixed)+len(extras))

	for i, v := range fixed {
		rv, err := c.toArg(c.params[i].Name, v, c.fnType.In(i))
		if err != nil {
			return nil, err
		}
		in = append(in, rv)
	}
	if c.fnType.IsVariadic() {
		elem := c.fnType.In(c.fnType.NumIn() - 1).Elem()
		name := c.params[len(c.params)-1].Name
		for _, v := range extras {
			rv, err := c.toArg(name, v, elem)
			if err != nil {
				return nil, err
			}
			in = append(in, rv)
		}
	}

	outs := c.fn.Call(in)

	var ret any
	var callErr error
	if c.hasValOut {
		out := outs[0]
		if out.Kind() != reflect.Invalid {
			ret = out.Interface()
		}
	}
	if c.hasErrOut {
		if e := outs[len(outs)-1]; !e.IsNil() {
			callErr = e.Interface().(error)
		}
	}
	return ret, callErr
}

// toArg converts a bound value to the parameter's static type. No value
// coercion is performed: a value the function cannot accept as-is is an
// invocation error.
func (c *Contract) toArg(param string, v any, t reflect.Type) (reflect.Value, error) {
	if v == nil {
		switch t.Kind() {
		case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan,
			reflect.Func, reflect.Interface, reflect.UnsafePointer:
			return reflect.Zero(t), nil
		default:
			return reflect.Value{}, invocationErr(c.name,
				"argument %q: nil is not a valid %s", param, t)
		}
	}

	rv := reflect.ValueOf(v)
	if rv.Type().AssignableTo(t) {
		return rv, nil
	}
	return reflect.Value{}, invocationErr(c.name,
		"argument %q: value of type %s is not assignable to parameter type %s",
		param, rv.Type(), t)
}

// declareOutputs validates the callable's result shape.
func (c *Contract) declareOutputs() error {
	errType := reflect.TypeOf((*error)(nil)).Elem()
	switch n := c.fnType.NumOut(); n {
	case 0:
	case 1:
		if c.fnType.Out(0) == errType {
			c.hasErrOut = true
		} else {
			c.hasValOut = true
		}
	case 2:
		if c.fnType.Out(1) != errType {
			return sig.NewDefinitionError(nil,
				"callable %s: second result must be error, got %s", c.name, c.fnType.Out(1))
		}
		c.hasValOut = true
		c.hasErrOut = true
	default:
		return sig.NewDefinitionError(nil,
			"callable %s: at most 2 results are supported, got %d", c.name, n)
	}
	return nil
}

// declareParams validates the parameter list against the callable's
// arity and indexes names for binding.
func (c *Contract) declareParams(params []Param) error {
	arity := c.fnType.NumIn()

	if len(params) == 0 {
		params = make([]Param, arity)
		for i := range params {
			params[i] = Param{Name: fmt.Sprintf("arg%d", i)}
		}
	}
	if len(params) != arity {
		return sig.NewDefinitionError(nil,
			"callable %s takes %d parameters, %d declared", c.name, arity, len(params))
	}

	c.params = params
	c.paramIndex = make(map[string]int, len(params))
	for i, p := range params {
		if p.Name == "" {
			return sig.NewDefinitionError(nil, "callable %s: parameter %d has no name", c.name, i)
		}
		if _, dup := c.paramIndex[p.Name]; dup {
			return sig.NewDefinitionError(nil, "callable %s: duplicate parameter %q", c.name, p.Name)
		}
		c.paramIndex[p.Name] = i
	}
	return nil
}

// declareArgs validates contract keys eagerly and compiles their terms.
// A key that names no declared parameter is a definition error.
func (c *Contract) declareArgs(args map[string]any) error {
	c.argSigs = make(map[string]*sig.Signature, len(args))
	for name, term := range args {
		i, ok := c.paramIndex[name]
		if !ok {
			return sig.NewDefinitionError(term,
				"callable %s has no parameter %q", c.name, name)
		}
		s, err := sig.Compile(term)
		if err != nil {
			return err
		}
		c.argSigs[name] = s
		if c.isVariadicIndex(i) {
			c.variadicSig = s
		}
	}
	return nil
}

// isVariadicIndex reports whether parameter i is the variadic tail.
func (c *Contract) isVariadicIndex(i int) bool {
	return c.fnType.IsVariadic() && i == c.fnType.NumIn()-1
}

// funcName introspects the callable's name, trimmed to its base symbol.
func funcName(fv reflect.Value) string {
	pc := fv.Pointer()
	if f := runtime.FuncForPC(pc); f != nil {
		name := f.Name()
		if i := strings.LastIndex(name, "/"); i >= 0 {
			name = name[i+1:]
		}
		name = strings.TrimSuffix(name, "-fm")
		return name
	}
	return "func"
}

// typeName renders a value's runtime type for violation context.
func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}
