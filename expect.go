// Package expect provides fluent, chainable assertions for Go tests, built
// on top of github.com/stretchr/testify. It covers a handful of subject
// types testify has no dedicated support for: timezone-anchored date-times,
// zone-less local date-times, optional containers and arbitrary values
// checked against caller-supplied conditions.
//
// Each factory wraps one "actual" subject; verification methods return the
// wrapper so checks can be chained, and a failing check raises through the
// TestingT and aborts the chain:
//
//	expect.Zoned(t, deployedAt).
//		IsAfterText("2024-01-01T00:00:00Z").
//		IsEqualToIgnoringNanos(expectedAt)
//
//	expect.Optional(t, lookup(id)).Contains(user)
//	expect.That(t, name).Satisfies(func(s string) bool { return len(s) == 4 })
//
// Assertion failures are reported through testify's require machinery.
// Misusing the API itself (nil condition, nil expected value, empty
// candidate list, malformed date-time text) panics instead: such calls are
// bugs in the test, not properties under test.
package expect

// TestingT is the subset of *testing.T the assertions need. It is the same
// interface as testify's require.TestingT, so anything usable with require
// is usable here.
type TestingT interface {
	Errorf(format string, args ...interface{})
	FailNow()
}

type tHelper interface {
	Helper()
}
