package expect

import (
	"fmt"
	"reflect"

	"github.com/stretchr/testify/require"
)

type failureKind int

const (
	kindShouldBeBefore failureKind = iota
	kindShouldBeBeforeOrEqual
	kindShouldBeAfter
	kindShouldBeAfterOrEqual
	kindShouldBeEqual
	kindShouldNotBeEqual
	kindShouldBeIn
	kindShouldNotBeIn
	kindIgnoringNanos
	kindIgnoringSeconds
	kindIgnoringMinutes
	kindIgnoringHours
	kindShouldBePresent
	kindShouldBeEmpty
	kindShouldContain
	kindShouldContainButEmpty
	kindShouldSatisfy
	kindShouldNotSatisfy
)

var failureMessages = map[failureKind]string{
	kindShouldBeBefore:        "\nExpecting:\n  <%v>\nto be strictly before:\n  <%v>",
	kindShouldBeBeforeOrEqual: "\nExpecting:\n  <%v>\nto be before or equals to:\n  <%v>",
	kindShouldBeAfter:         "\nExpecting:\n  <%v>\nto be strictly after:\n  <%v>",
	kindShouldBeAfterOrEqual:  "\nExpecting:\n  <%v>\nto be after or equals to:\n  <%v>",
	kindShouldBeEqual:         "\nExpecting:\n  <%v>\nto be equal to:\n  <%v>\nbut was not.",
	kindShouldNotBeEqual:      "\nExpecting:\n  <%v>\nnot to be equal to:\n  <%v>",
	kindShouldBeIn:            "\nExpecting:\n  <%v>\nto be in:\n  <%v>",
	kindShouldNotBeIn:         "\nExpecting:\n  <%v>\nnot to be in:\n  <%v>",
	kindIgnoringNanos:         "\nExpecting:\n  <%v>\nto have same year, month, day, hour, minute and second as:\n  <%v>\nbut had not.",
	kindIgnoringSeconds:       "\nExpecting:\n  <%v>\nto have same year, month, day, hour and minute as:\n  <%v>\nbut had not.",
	kindIgnoringMinutes:       "\nExpecting:\n  <%v>\nto have same year, month, day and hour as:\n  <%v>\nbut had not.",
	kindIgnoringHours:         "\nExpecting:\n  <%v>\nto have same year, month and day as:\n  <%v>\nbut had not.",
	kindShouldBePresent:       "\nExpecting Optional to contain a value but it was empty.",
	kindShouldBeEmpty:         "\nExpecting Optional to be empty but was:\n  <%v>",
	kindShouldContain:         "\nExpecting:\n  <%v>\nto contain:\n  <%v>",
	kindShouldContainButEmpty: "\nExpecting Optional to contain:\n  <%v>\nbut was empty.",
	kindShouldSatisfy:         "\nExpecting:\n  <%v>\nto satisfy given condition.",
	kindShouldNotSatisfy:      "\nExpecting:\n  <%v>\nnot to satisfy given condition.",
}

// failure is the descriptor a failing check hands to the reporting layer: a
// kind selecting the message template, plus the operands it mentions. The
// checks themselves never format display strings.
type failure struct {
	kind     failureKind
	operands []interface{}
}

func (f failure) message() string {
	return fmt.Sprintf(failureMessages[f.kind], f.operands...)
}

// reportFailure renders the descriptor and raises through testify. FailNow
// aborts the assertion chain.
func reportFailure(t TestingT, f failure) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	require.Fail(t, f.message())
}

// badCallf signals misuse of the assertion API (a caller-contract
// violation, not a failed test property). Raised before any comparison is
// attempted.
func badCallf(format string, args ...interface{}) {
	panic("expect: " + fmt.Sprintf(format, args...))
}

func isNilValue(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return rv.IsNil()
	}
	return false
}
