package expect_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// mockT records failures raised through the expect.TestingT contract so
// tests can inspect failing assertions without failing themselves. FailNow
// panics with a sentinel the helpers below recover, mimicking how testing.T
// aborts the goroutine.
type mockT struct {
	failed   bool
	messages []string
}

func (m *mockT) Errorf(format string, args ...interface{}) {
	m.failed = true
	m.messages = append(m.messages, fmt.Sprintf(format, args...))
}

type failNowPanic struct{}

func (m *mockT) FailNow() {
	m.failed = true
	panic(failNowPanic{})
}

func (m *mockT) lastMessage() string {
	if len(m.messages) == 0 {
		return ""
	}
	return m.messages[len(m.messages)-1]
}

// expectFailure runs fn against a fresh mockT and requires that it raised
// an assertion failure whose message matches regex.
func expectFailure(t *testing.T, regex interface{}, fn func(mt *mockT)) {
	t.Helper()
	mt := &mockT{}
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			require.FailNow(t, "assertion did not fail")
		}
		if _, ok := r.(failNowPanic); !ok {
			panic(r)
		}
		require.True(t, mt.failed)
		require.Regexp(t, regex, mt.lastMessage())
	}()
	fn(mt)
}

// expectBadCall requires that fn panics with a caller-contract violation
// matching regex.
func expectBadCall(t *testing.T, regex interface{}, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		if r := recover(); r != nil {
			require.Regexp(t, regex, r)
		} else {
			require.FailNow(t, "function did not panic")
		}
	}()
	fn()
}
