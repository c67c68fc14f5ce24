package expect

import (
	"strings"
	"time"

	"github.com/expectkit/expect/chrono"
)

// LocalAssert checks a zone-less date-time subject. With no timezone in
// play, values are compared field-by-field directly; no conversion happens
// anywhere.
type LocalAssert struct {
	base
	actual *chrono.LocalDateTime
}

// Local begins an assertion chain on a local date-time.
func Local(t TestingT, actual chrono.LocalDateTime) *LocalAssert {
	return &LocalAssert{base{t}, &actual}
}

// LocalPtr is Local for a possibly-absent subject. Every check first fails
// with the standard nil-subject failure when actual is nil.
func LocalPtr(t TestingT, actual *chrono.LocalDateTime) *LocalAssert {
	return &LocalAssert{base{t}, actual}
}

// IsBefore verifies that actual is strictly before other.
func (a *LocalAssert) IsBefore(other chrono.LocalDateTime) *LocalAssert {
	a.helper()
	a.requireNotNil(a.actual)
	if !a.actual.Before(other) {
		a.fail(kindShouldBeBefore, *a.actual, other)
	}
	return a
}

// IsBeforeText is IsBefore with other given in the fixed ISO local text
// format (see chrono.ParseLocal).
func (a *LocalAssert) IsBeforeText(dateTimeStr string) *LocalAssert {
	a.helper()
	a.requireNotNil(a.actual)
	return a.IsBefore(parseLocalText(dateTimeStr))
}

// IsBeforeOrEqualTo verifies that actual is not strictly after other.
func (a *LocalAssert) IsBeforeOrEqualTo(other chrono.LocalDateTime) *LocalAssert {
	a.helper()
	a.requireNotNil(a.actual)
	if a.actual.After(other) {
		a.fail(kindShouldBeBeforeOrEqual, *a.actual, other)
	}
	return a
}

func (a *LocalAssert) IsBeforeOrEqualToText(dateTimeStr string) *LocalAssert {
	a.helper()
	a.requireNotNil(a.actual)
	return a.IsBeforeOrEqualTo(parseLocalText(dateTimeStr))
}

// IsAfter verifies that actual is strictly after other.
func (a *LocalAssert) IsAfter(other chrono.LocalDateTime) *LocalAssert {
	a.helper()
	a.requireNotNil(a.actual)
	if !a.actual.After(other) {
		a.fail(kindShouldBeAfter, *a.actual, other)
	}
	return a
}

func (a *LocalAssert) IsAfterText(dateTimeStr string) *LocalAssert {
	a.helper()
	a.requireNotNil(a.actual)
	return a.IsAfter(parseLocalText(dateTimeStr))
}

// IsAfterOrEqualTo verifies that actual is not strictly before other.
func (a *LocalAssert) IsAfterOrEqualTo(other chrono.LocalDateTime) *LocalAssert {
	a.helper()
	a.requireNotNil(a.actual)
	if a.actual.Before(other) {
		a.fail(kindShouldBeAfterOrEqual, *a.actual, other)
	}
	return a
}

func (a *LocalAssert) IsAfterOrEqualToText(dateTimeStr string) *LocalAssert {
	a.helper()
	a.requireNotNil(a.actual)
	return a.IsAfterOrEqualTo(parseLocalText(dateTimeStr))
}

// IsEqualTo verifies that actual and expected are the same date-time, all
// fields included.
func (a *LocalAssert) IsEqualTo(expected chrono.LocalDateTime) *LocalAssert {
	a.helper()
	a.requireNotNil(a.actual)
	if !a.actual.Equal(expected) {
		a.fail(kindShouldBeEqual, *a.actual, expected)
	}
	return a
}

func (a *LocalAssert) IsEqualToText(dateTimeStr string) *LocalAssert {
	a.helper()
	a.requireNotNil(a.actual)
	return a.IsEqualTo(parseLocalText(dateTimeStr))
}

// IsNotEqualTo verifies that actual and expected differ in at least one
// field.
func (a *LocalAssert) IsNotEqualTo(expected chrono.LocalDateTime) *LocalAssert {
	a.helper()
	a.requireNotNil(a.actual)
	if a.actual.Equal(expected) {
		a.fail(kindShouldNotBeEqual, *a.actual, expected)
	}
	return a
}

func (a *LocalAssert) IsNotEqualToText(dateTimeStr string) *LocalAssert {
	a.helper()
	a.requireNotNil(a.actual)
	return a.IsNotEqualTo(parseLocalText(dateTimeStr))
}

// IsIn verifies that actual equals one of the candidates.
func (a *LocalAssert) IsIn(candidates ...chrono.LocalDateTime) *LocalAssert {
	a.helper()
	a.requireNotNil(a.actual)
	requireCandidates(len(candidates))
	if !containsLocal(candidates, *a.actual) {
		a.fail(kindShouldBeIn, *a.actual, fmtLocalList(candidates))
	}
	return a
}

func (a *LocalAssert) IsInText(dateTimeStrs ...string) *LocalAssert {
	a.helper()
	a.requireNotNil(a.actual)
	requireCandidates(len(dateTimeStrs))
	return a.IsIn(parseLocalTexts(dateTimeStrs)...)
}

// IsNotIn verifies that actual equals none of the candidates.
func (a *LocalAssert) IsNotIn(candidates ...chrono.LocalDateTime) *LocalAssert {
	a.helper()
	a.requireNotNil(a.actual)
	requireCandidates(len(candidates))
	if containsLocal(candidates, *a.actual) {
		a.fail(kindShouldNotBeIn, *a.actual, fmtLocalList(candidates))
	}
	return a
}

func (a *LocalAssert) IsNotInText(dateTimeStrs ...string) *LocalAssert {
	a.helper()
	a.requireNotNil(a.actual)
	requireCandidates(len(dateTimeStrs))
	return a.IsNotIn(parseLocalTexts(dateTimeStrs)...)
}

// IsEqualToIgnoringNanos verifies that actual and other share year, month,
// day, hour, minute and second. Sub-second fields are never compared.
func (a *LocalAssert) IsEqualToIgnoringNanos(other chrono.LocalDateTime) *LocalAssert {
	return a.truncatedEqual(other, chrono.EqualIgnoringNanos, kindIgnoringNanos)
}

// IsEqualToIgnoringSeconds verifies equality down to the minute field.
func (a *LocalAssert) IsEqualToIgnoringSeconds(other chrono.LocalDateTime) *LocalAssert {
	return a.truncatedEqual(other, chrono.EqualIgnoringSeconds, kindIgnoringSeconds)
}

// IsEqualToIgnoringMinutes verifies equality down to the hour field.
func (a *LocalAssert) IsEqualToIgnoringMinutes(other chrono.LocalDateTime) *LocalAssert {
	return a.truncatedEqual(other, chrono.EqualIgnoringMinutes, kindIgnoringMinutes)
}

// IsEqualToIgnoringHours verifies that actual and other share year, month
// and day of month.
func (a *LocalAssert) IsEqualToIgnoringHours(other chrono.LocalDateTime) *LocalAssert {
	return a.truncatedEqual(other, chrono.SameDate, kindIgnoringHours)
}

func (a *LocalAssert) truncatedEqual(
	other chrono.LocalDateTime, eq func(a, b time.Time) bool, kind failureKind) *LocalAssert {

	a.helper()
	a.requireNotNil(a.actual)
	if !eq(a.actual.UTCTime(), other.UTCTime()) {
		a.fail(kind, *a.actual, other)
	}
	return a
}

// parseLocalText parses the fixed ISO local profile. Malformed text is a
// caller-contract violation.
func parseLocalText(dateTimeStr string) chrono.LocalDateTime {
	parsed, err := chrono.ParseLocal(dateTimeStr)
	if err != nil {
		badCallf("cannot parse %q as an ISO local date-time: %v", dateTimeStr, err)
	}
	return parsed
}

func parseLocalTexts(dateTimeStrs []string) []chrono.LocalDateTime {
	parsed := make([]chrono.LocalDateTime, len(dateTimeStrs))
	for i, s := range dateTimeStrs {
		parsed[i] = parseLocalText(s)
	}
	return parsed
}

func containsLocal(candidates []chrono.LocalDateTime, l chrono.LocalDateTime) bool {
	for _, c := range candidates {
		if c.Equal(l) {
			return true
		}
	}
	return false
}

func fmtLocalList(ls []chrono.LocalDateTime) string {
	parts := make([]string, len(ls))
	for i, l := range ls {
		parts[i] = l.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
