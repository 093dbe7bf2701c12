package contract

import (
	"errors"
	"strings"
	"testing"

	"mercator-hq/ganymede/pkg/policy"
	"mercator-hq/ganymede/pkg/sig"
)

func addDynamic(a, b any) any {
	return a.(int) + b.(int)
}

func wrapAdd(t *testing.T) *Contract {
	t.Helper()
	c, err := Wrap(addDynamic, &Decl{
		Name:   "add",
		Doc:    "add returns the sum of two ints.",
		Params: Names("a", "b"),
		Args: map[string]any{
			"a": sig.T[int](),
			"b": sig.T[int](),
		},
		Returns: sig.T[int](),
	})
	if err != nil {
		t.Fatalf("Wrap() error = %v", err)
	}
	return c
}

// TestCall_EndToEnd tests the whole pipeline on a simple contract:
// valid calls succeed silently under any policy; violating calls raise
// only when the policy says so.
func TestCall_EndToEnd(t *testing.T) {
	t.Cleanup(policy.Reset)
	c := wrapAdd(t)

	// Inert default policy: the violating call still computes. The
	// callable itself accepts any, so the bad argument reaches it; the
	// type assertion inside would panic, so use matching values to show
	// transparency and a dynamic-friendly callable for the violation.
	policy.Reset()
	out, err := c.Call(1, 2)
	if err != nil {
		t.Fatalf("Call(1, 2) error = %v", err)
	}
	if out != 3 {
		t.Fatalf("Call(1, 2) = %v, want 3", out)
	}

	// Raise mode: the violating call returns the configured kind and
	// the callable is not invoked.
	policy.Configure()
	invoked := false
	echo := MustWrap(func(a any) any { invoked = true; return a }, &Decl{
		Name:   "echo",
		Params: Names("a"),
		Args:   map[string]any{"a": sig.T[int]()},
	})

	_, err = echo.Call("one")
	if !errors.Is(err, policy.ErrViolation) {
		t.Fatalf("Call(\"one\") error = %v, want ErrViolation", err)
	}
	if invoked {
		t.Error("callable was invoked despite a raising policy")
	}

	// Back to inert: same violating call proceeds and returns the
	// unvalidated result.
	policy.Reset()
	out, err = echo.Call("one")
	if err != nil {
		t.Fatalf("Call(\"one\") under inert policy error = %v", err)
	}
	if out != "one" {
		t.Errorf("Call(\"one\") = %v, want \"one\"", out)
	}
	if !invoked {
		t.Error("callable was not invoked under inert policy")
	}

	// Valid calls stay silent in raise mode too.
	policy.Configure()
	out, err = c.Call(1, 2)
	if err != nil || out != 3 {
		t.Errorf("Call(1, 2) = %v, %v, want 3, nil", out, err)
	}
}

// TestCall_ReturnContract tests post-delegation checking.
func TestCall_ReturnContract(t *testing.T) {
	t.Cleanup(policy.Reset)
	policy.Configure()

	lying := MustWrap(func() any { return "not an int" }, &Decl{
		Name:    "lying",
		Returns: sig.T[int](),
	})

	_, err := lying.Call()
	if !errors.Is(err, policy.ErrViolation) {
		t.Fatalf("Call() error = %v, want ErrViolation", err)
	}
	var vErr *policy.ViolationError
	if !errors.As(err, &vErr) {
		t.Fatalf("errors.As failed: %v", err)
	}
	if vErr.Violation.Param != policy.ReturnSite {
		t.Errorf("violation site = %q, want %q", vErr.Violation.Param, policy.ReturnSite)
	}
}

// TestCall_VoidReturn tests the "must return nil" sentinel.
func TestCall_VoidReturn(t *testing.T) {
	t.Cleanup(policy.Reset)
	policy.Configure()

	quiet := MustWrap(func() {}, &Decl{Name: "quiet", Returns: sig.Void})
	if _, err := quiet.Call(); err != nil {
		t.Errorf("void func Call() error = %v", err)
	}

	noisy := MustWrap(func() any { return 1 }, &Decl{Name: "noisy", Returns: sig.Void})
	if _, err := noisy.Call(); !errors.Is(err, policy.ErrViolation) {
		t.Errorf("non-nil return under void contract: error = %v, want ErrViolation", err)
	}

	nilly := MustWrap(func() any { return nil }, &Decl{Name: "nilly", Returns: sig.Void})
	if _, err := nilly.Call(); err != nil {
		t.Errorf("nil return under void contract: error = %v", err)
	}
}

// TestCall_ErrorPassthrough tests that the callable's own error skips
// the return contract and propagates unchanged.
func TestCall_ErrorPassthrough(t *testing.T) {
	t.Cleanup(policy.Reset)
	policy.Configure()

	boom := errors.New("boom")
	failing := MustWrap(func() (any, error) { return nil, boom }, &Decl{
		Name:    "failing",
		Returns: sig.T[int](),
	})

	_, err := failing.Call()
	if !errors.Is(err, boom) {
		t.Errorf("Call() error = %v, want the callable's own error", err)
	}
}

// TestCall_VariadicTail tests that the variadic tail is unchecked
// unless named, and checked elementwise when it is.
func TestCall_VariadicTail(t *testing.T) {
	t.Cleanup(policy.Reset)
	policy.Configure()

	joinAll := func(sep any, parts ...any) any {
		ss := make([]string, len(parts))
		for i, p := range parts {
			ss[i] = p.(string)
		}
		return strings.Join(ss, sep.(string))
	}

	// Unnamed tail: extras pass unchecked.
	loose := MustWrap(joinAll, &Decl{
		Name:   "join",
		Params: Names("sep", "parts"),
		Args:   map[string]any{"sep": sig.T[string]()},
	})
	out, err := loose.Call("-", "a", "b")
	if err != nil || out != "a-b" {
		t.Fatalf("Call() = %v, %v, want \"a-b\", nil", out, err)
	}

	// Named tail: every extra is checked.
	strict := MustWrap(joinAll, &Decl{
		Name:   "join",
		Params: Names("sep", "parts"),
		Args: map[string]any{
			"sep":   sig.T[string](),
			"parts": sig.T[string](),
		},
	})
	if _, err := strict.Call("-", "a", 2); !errors.Is(err, policy.ErrViolation) {
		t.Errorf("bad variadic element: error = %v, want ErrViolation", err)
	}
	if out, err := strict.Call("-", "a", "b", "c"); err != nil || out != "a-b-c" {
		t.Errorf("Call() = %v, %v, want \"a-b-c\", nil", out, err)
	}
}

// TestWrap_EagerValidation tests declaration-time failures.
func TestWrap_EagerValidation(t *testing.T) {
	fn := func(a, b any) any { return nil }

	tests := []struct {
		name string
		fn   any
		decl *Decl
	}{
		{
			name: "unknown contract key",
			fn:   fn,
			decl: &Decl{
				Params: Names("a", "b"),
				Args:   map[string]any{"c": sig.T[int]()},
			},
		},
		{
			name: "arity mismatch",
			fn:   fn,
			decl: &Decl{Params: Names("a")},
		},
		{
			name: "duplicate parameter",
			fn:   fn,
			decl: &Decl{Params: Names("a", "a")},
		},
		{
			name: "malformed term",
			fn:   fn,
			decl: &Decl{
				Params: Names("a", "b"),
				Args:   map[string]any{"a": sig.List()},
			},
		},
		{
			name: "not a func",
			fn:   42,
			decl: &Decl{},
		},
		{
			name: "too many results",
			fn:   func() (int, int, error) { return 0, 0, nil },
			decl: &Decl{},
		},
		{
			name: "second result not error",
			fn:   func() (int, int) { return 0, 0 },
			decl: &Decl{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Wrap(tt.fn, tt.decl); !errors.Is(err, sig.ErrDefinition) {
				t.Errorf("Wrap() error = %v, want DefinitionError", err)
			}
		})
	}
}

// TestContract_Identity tests that name and doc survive wrapping.
func TestContract_Identity(t *testing.T) {
	c := wrapAdd(t)

	if c.Name() != "add" {
		t.Errorf("Name() = %q, want %q", c.Name(), "add")
	}
	if c.Doc() != "add returns the sum of two ints." {
		t.Errorf("Doc() = %q", c.Doc())
	}
	if c.NumParams() != 2 {
		t.Errorf("NumParams() = %d, want 2", c.NumParams())
	}
	if c.Unwrap() == nil {
		t.Error("Unwrap() = nil")
	}

	// Without an explicit name, the runtime symbol is introspected.
	anon, err := Wrap(addDynamic, nil)
	if err != nil {
		t.Fatalf("Wrap() error = %v", err)
	}
	if !strings.Contains(anon.Name(), "addDynamic") {
		t.Errorf("introspected Name() = %q, want it to contain %q", anon.Name(), "addDynamic")
	}
}
