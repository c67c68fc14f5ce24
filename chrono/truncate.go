package chrono

import "time"

// Truncated equality between two date-times, compared on raw calendar
// fields. Each coarser granularity is the next-finer one plus one field, so
// EqualIgnoringNanos implies EqualIgnoringSeconds implies ... implies
// SameYear, never the converse. Callers must normalize both values into the
// same zone first; these functions do no conversion of their own.

// EqualIgnoringNanos reports whether a and b share year, month, day, hour,
// minute and second.
func EqualIgnoringNanos(a, b time.Time) bool {
	return EqualIgnoringSeconds(a, b) && a.Second() == b.Second()
}

// EqualIgnoringSeconds reports whether a and b share year, month, day, hour
// and minute.
func EqualIgnoringSeconds(a, b time.Time) bool {
	return EqualIgnoringMinutes(a, b) && a.Minute() == b.Minute()
}

// EqualIgnoringMinutes reports whether a and b share year, month, day and
// hour.
func EqualIgnoringMinutes(a, b time.Time) bool {
	return SameDate(a, b) && a.Hour() == b.Hour()
}

// SameDate reports whether a and b share year, month and day of month.
func SameDate(a, b time.Time) bool {
	return SameYearMonth(a, b) && a.Day() == b.Day()
}

// SameYearMonth reports whether a and b share year and month.
func SameYearMonth(a, b time.Time) bool {
	return SameYear(a, b) && a.Month() == b.Month()
}

// SameYear reports whether a and b share the year field.
func SameYear(a, b time.Time) bool {
	return a.Year() == b.Year()
}

// SameInstant reports whether a and b represent the same point on the
// universal timeline, regardless of zone.
func SameInstant(a, b time.Time) bool {
	return a.Equal(b)
}
