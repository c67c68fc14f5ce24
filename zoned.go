package expect

import (
	"strings"
	"time"

	"github.com/expectkit/expect/chrono"
)

// ZonedAssert checks a timezone-anchored date-time subject.
//
// Comparisons are zone-relative to the actual value: whenever calendar
// fields are inspected, or text is parsed, the other operand is first
// re-expressed in actual's zone (same instant, fields recomputed). The
// actual value's zone is always the authoritative one; the rule is
// deliberately asymmetric.
type ZonedAssert struct {
	base
	actual *time.Time
}

// Zoned begins an assertion chain on a zoned date-time.
func Zoned(t TestingT, actual time.Time) *ZonedAssert {
	return &ZonedAssert{base{t}, &actual}
}

// ZonedPtr is Zoned for a possibly-absent subject. Every check first fails
// with the standard nil-subject failure when actual is nil.
func ZonedPtr(t TestingT, actual *time.Time) *ZonedAssert {
	return &ZonedAssert{base{t}, actual}
}

// IsBefore verifies that actual is strictly before other, compared on the
// full-precision instant.
func (a *ZonedAssert) IsBefore(other time.Time) *ZonedAssert {
	a.helper()
	a.requireNotNil(a.actual)
	if !a.actual.Before(other) {
		a.fail(kindShouldBeBefore, fmtZoned(*a.actual), fmtZoned(other))
	}
	return a
}

// IsBeforeText is IsBefore with other given in the fixed ISO text format
// (see chrono.ParseZoned).
func (a *ZonedAssert) IsBeforeText(dateTimeStr string) *ZonedAssert {
	a.helper()
	a.requireNotNil(a.actual)
	return a.IsBefore(a.parseText(dateTimeStr))
}

// IsBeforeOrEqualTo verifies that actual is not strictly after other.
func (a *ZonedAssert) IsBeforeOrEqualTo(other time.Time) *ZonedAssert {
	a.helper()
	a.requireNotNil(a.actual)
	if a.actual.After(other) {
		a.fail(kindShouldBeBeforeOrEqual, fmtZoned(*a.actual), fmtZoned(other))
	}
	return a
}

func (a *ZonedAssert) IsBeforeOrEqualToText(dateTimeStr string) *ZonedAssert {
	a.helper()
	a.requireNotNil(a.actual)
	return a.IsBeforeOrEqualTo(a.parseText(dateTimeStr))
}

// IsAfter verifies that actual is strictly after other, compared on the
// full-precision instant.
func (a *ZonedAssert) IsAfter(other time.Time) *ZonedAssert {
	a.helper()
	a.requireNotNil(a.actual)
	if !a.actual.After(other) {
		a.fail(kindShouldBeAfter, fmtZoned(*a.actual), fmtZoned(other))
	}
	return a
}

func (a *ZonedAssert) IsAfterText(dateTimeStr string) *ZonedAssert {
	a.helper()
	a.requireNotNil(a.actual)
	return a.IsAfter(a.parseText(dateTimeStr))
}

// IsAfterOrEqualTo verifies that actual is not strictly before other.
func (a *ZonedAssert) IsAfterOrEqualTo(other time.Time) *ZonedAssert {
	a.helper()
	a.requireNotNil(a.actual)
	if a.actual.Before(other) {
		a.fail(kindShouldBeAfterOrEqual, fmtZoned(*a.actual), fmtZoned(other))
	}
	return a
}

func (a *ZonedAssert) IsAfterOrEqualToText(dateTimeStr string) *ZonedAssert {
	a.helper()
	a.requireNotNil(a.actual)
	return a.IsAfterOrEqualTo(a.parseText(dateTimeStr))
}

// IsEqualTo verifies that actual and expected denote the same instant.
// expected is reported in actual's zone.
func (a *ZonedAssert) IsEqualTo(expected time.Time) *ZonedAssert {
	a.helper()
	a.requireNotNil(a.actual)
	inZone := expected.In(a.actual.Location())
	if !chrono.SameInstant(*a.actual, inZone) {
		a.fail(kindShouldBeEqual, fmtZoned(*a.actual), fmtZoned(inZone))
	}
	return a
}

func (a *ZonedAssert) IsEqualToText(dateTimeStr string) *ZonedAssert {
	a.helper()
	a.requireNotNil(a.actual)
	return a.IsEqualTo(a.parseText(dateTimeStr))
}

// IsNotEqualTo verifies that actual and expected denote different instants.
func (a *ZonedAssert) IsNotEqualTo(expected time.Time) *ZonedAssert {
	a.helper()
	a.requireNotNil(a.actual)
	inZone := expected.In(a.actual.Location())
	if chrono.SameInstant(*a.actual, inZone) {
		a.fail(kindShouldNotBeEqual, fmtZoned(*a.actual), fmtZoned(inZone))
	}
	return a
}

func (a *ZonedAssert) IsNotEqualToText(dateTimeStr string) *ZonedAssert {
	a.helper()
	a.requireNotNil(a.actual)
	return a.IsNotEqualTo(a.parseText(dateTimeStr))
}

// IsIn verifies that actual equals one of the candidates, each converted
// into actual's zone and compared by exact instant.
func (a *ZonedAssert) IsIn(candidates ...time.Time) *ZonedAssert {
	a.helper()
	a.requireNotNil(a.actual)
	requireCandidates(len(candidates))
	inZone := a.toActualZone(candidates)
	if !containsInstant(inZone, *a.actual) {
		a.fail(kindShouldBeIn, fmtZoned(*a.actual), fmtZonedList(inZone))
	}
	return a
}

func (a *ZonedAssert) IsInText(dateTimeStrs ...string) *ZonedAssert {
	a.helper()
	a.requireNotNil(a.actual)
	requireCandidates(len(dateTimeStrs))
	return a.IsIn(a.parseTexts(dateTimeStrs)...)
}

// IsNotIn verifies that actual equals none of the candidates.
func (a *ZonedAssert) IsNotIn(candidates ...time.Time) *ZonedAssert {
	a.helper()
	a.requireNotNil(a.actual)
	requireCandidates(len(candidates))
	inZone := a.toActualZone(candidates)
	if containsInstant(inZone, *a.actual) {
		a.fail(kindShouldNotBeIn, fmtZoned(*a.actual), fmtZonedList(inZone))
	}
	return a
}

func (a *ZonedAssert) IsNotInText(dateTimeStrs ...string) *ZonedAssert {
	a.helper()
	a.requireNotNil(a.actual)
	requireCandidates(len(dateTimeStrs))
	return a.IsNotIn(a.parseTexts(dateTimeStrs)...)
}

// IsEqualToIgnoringNanos verifies that actual and other share year, month,
// day, hour, minute and second once other is moved into actual's zone.
// Sub-second fields are never compared.
func (a *ZonedAssert) IsEqualToIgnoringNanos(other time.Time) *ZonedAssert {
	return a.truncatedEqual(other, chrono.EqualIgnoringNanos, kindIgnoringNanos)
}

// IsEqualToIgnoringSeconds verifies equality down to the minute field, with
// other moved into actual's zone first.
func (a *ZonedAssert) IsEqualToIgnoringSeconds(other time.Time) *ZonedAssert {
	return a.truncatedEqual(other, chrono.EqualIgnoringSeconds, kindIgnoringSeconds)
}

// IsEqualToIgnoringMinutes verifies equality down to the hour field, with
// other moved into actual's zone first.
func (a *ZonedAssert) IsEqualToIgnoringMinutes(other time.Time) *ZonedAssert {
	return a.truncatedEqual(other, chrono.EqualIgnoringMinutes, kindIgnoringMinutes)
}

// IsEqualToIgnoringHours verifies that actual and other share year, month
// and day of month once other is moved into actual's zone.
func (a *ZonedAssert) IsEqualToIgnoringHours(other time.Time) *ZonedAssert {
	return a.truncatedEqual(other, chrono.SameDate, kindIgnoringHours)
}

func (a *ZonedAssert) truncatedEqual(
	other time.Time, eq func(a, b time.Time) bool, kind failureKind) *ZonedAssert {

	a.helper()
	a.requireNotNil(a.actual)
	inZone := other.In(a.actual.Location())
	if !eq(*a.actual, inZone) {
		a.fail(kind, fmtZoned(*a.actual), fmtZoned(inZone))
	}
	return a
}

// parseText parses the fixed ISO profile and moves the result into actual's
// zone. Malformed text is a caller-contract violation.
func (a *ZonedAssert) parseText(dateTimeStr string) time.Time {
	parsed, err := chrono.ParseZoned(dateTimeStr)
	if err != nil {
		badCallf("cannot parse %q as an ISO date-time: %v", dateTimeStr, err)
	}
	return parsed.In(a.actual.Location())
}

func (a *ZonedAssert) parseTexts(dateTimeStrs []string) []time.Time {
	parsed := make([]time.Time, len(dateTimeStrs))
	for i, s := range dateTimeStrs {
		parsed[i] = a.parseText(s)
	}
	return parsed
}

func (a *ZonedAssert) toActualZone(candidates []time.Time) []time.Time {
	inZone := make([]time.Time, len(candidates))
	for i, c := range candidates {
		inZone[i] = c.In(a.actual.Location())
	}
	return inZone
}

func requireCandidates(n int) {
	if n == 0 {
		badCallf("the given date-time candidates must not be empty")
	}
}

func containsInstant(candidates []time.Time, tm time.Time) bool {
	for _, c := range candidates {
		if chrono.SameInstant(c, tm) {
			return true
		}
	}
	return false
}

func fmtZoned(tm time.Time) string {
	return tm.Format(chrono.ZonedFormat)
}

func fmtZonedList(tms []time.Time) string {
	parts := make([]string, len(tms))
	for i, tm := range tms {
		parts[i] = fmtZoned(tm)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
