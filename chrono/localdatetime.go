package chrono

import (
	"time"
)

// LocalFormat is the fixed wire format for local date-time text: the zoned
// profile minus any offset or zone id, with optional fractional seconds.
const LocalFormat = "2006-01-02T15:04:05.999999999"

// Represents a date-time with no timezone attached. Internally pinned to
// UTC so that instant comparison and field-by-field comparison coincide.
type LocalDateTime struct {
	time time.Time
}

func NewLocal(year int, month time.Month, day, hour, min, sec, nsec int) LocalDateTime {
	return LocalDateTime{time.Date(year, month, day, hour, min, sec, nsec, time.UTC)}
}

// LocalOf strips t of its zone, keeping the calendar and clock fields as
// they read in t's own zone.
func LocalOf(t time.Time) LocalDateTime {
	return NewLocal(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond())
}

func (l LocalDateTime) UTCTime() time.Time {
	return l.time
}

func ParseLocal(dateTimeStr string) (LocalDateTime, error) {
	tm, err := time.Parse(LocalFormat, dateTimeStr)
	if err != nil {
		return LocalDateTime{}, err
	}
	return LocalDateTime{tm}, nil
}

func (l LocalDateTime) Equal(other LocalDateTime) bool {
	return l.time.Equal(other.time)
}

// After reports whether l is after other.
func (l LocalDateTime) After(other LocalDateTime) bool {
	return l.time.After(other.time)
}

// Before reports whether l is before other.
func (l LocalDateTime) Before(other LocalDateTime) bool {
	return l.time.Before(other.time)
}

func (l LocalDateTime) String() string {
	return l.time.Format(LocalFormat)
}

func (l LocalDateTime) Year() int         { return l.time.Year() }
func (l LocalDateTime) Month() time.Month { return l.time.Month() }
func (l LocalDateTime) Day() int          { return l.time.Day() }
func (l LocalDateTime) Hour() int         { return l.time.Hour() }
func (l LocalDateTime) Minute() int       { return l.time.Minute() }
func (l LocalDateTime) Second() int       { return l.time.Second() }
func (l LocalDateTime) Nanosecond() int   { return l.time.Nanosecond() }

func (l LocalDateTime) Parts() (int, time.Month, int) {
	return l.time.Date()
}
