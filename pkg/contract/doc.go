// Package contract wraps callables with declarative type contracts that
// are enforced at call time.
//
// A contract is declared once, compiled once, and checked on every
// invocation. Checks are advisory: they never block the call, they only
// trigger reporting through the enforcement policy. The one exception is
// a policy configured to raise, in which case the resulting error
// propagates through the caller's normal error-handling path.
//
//	add := func(a, b any) any { return a.(int) + b.(int) }
//
//	c, err := contract.Wrap(add, &contract.Decl{
//	    Name:   "add",
//	    Params: contract.Names("a", "b"),
//	    Args: map[string]any{
//	        "a": sig.T[int](),
//	        "b": sig.T[int](),
//	    },
//	    Returns: sig.T[int](),
//	})
//
//	out, err := c.Call(1, 2) // 3, nil under any policy
//
// Before the first policy.Configure call the wrapper is fully
// transparent: no behavior changes from its presence beyond the wrapping
// overhead itself.
//
// # Binding
//
// Call binds positionally; CallNamed additionally accepts named
// arguments and fills declared defaults, mirroring keyword calls in
// dynamically-typed hosts. Binding failures (unknown name, duplicate,
// missing argument, unassignable value) are invocation errors, distinct
// from contract violations, because the underlying Go call could not
// proceed at all.
//
// A variadic tail is unchecked unless the variadic parameter is named in
// the contract, in which case every extra actual is checked elementwise
// against its term.
//
// # Composition
//
// When combined with other call-transforming wrappers (memoization,
// receiver binding, tracing), the contract wrapper must be the innermost
// transformation, so that it sees the arguments the callable actually
// receives. This ordering is a documented convention, not mechanically
// enforced.
package contract
