package match

import "sync"

var (
	defaultMatcher *Matcher
	defaultOnce    sync.Once
)

// Default returns the shared process-wide matcher used by contracts that
// were not given an explicit one.
func Default() *Matcher {
	defaultOnce.Do(func() {
		defaultMatcher = NewMatcher(nil)
	})
	return defaultMatcher
}

// RegisterDouble registers a test-double predicate on the shared matcher.
// Typically called once from test setup:
//
//	func TestMain(m *testing.M) {
//	    match.RegisterDouble(mocks.IsMock)
//	    os.Exit(m.Run())
//	}
func RegisterDouble(pred DoublePredicate) {
	Default().RegisterDouble(pred)
}
