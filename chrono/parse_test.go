package chrono_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/expectkit/expect/chrono"
)

func TestParseZoned(t *testing.T) {
	rq := require.New(t)

	tm, err := chrono.ParseZoned("2000-01-01T00:00:00Z")
	rq.NoError(err)
	rq.Equal(time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC).Unix(), tm.Unix())
	rq.Equal(0, tm.Nanosecond())

	tm, err = chrono.ParseZoned("2000-01-01T00:00:00.123456789Z")
	rq.NoError(err)
	rq.Equal(123456789, tm.Nanosecond())

	tm, err = chrono.ParseZoned("2011-12-03T10:15:30+01:00")
	rq.NoError(err)
	_, offset := tm.Zone()
	rq.Equal(3600, offset)
	rq.Equal(10, tm.Hour())
}

func TestParseZonedBracketedZoneID(t *testing.T) {
	rq := require.New(t)

	tm, err := chrono.ParseZoned("2011-12-03T10:15:30+01:00[Europe/Paris]")
	rq.NoError(err)
	rq.Equal("Europe/Paris", tm.Location().String())

	// same instant as the plain offset form
	plain, err := chrono.ParseZoned("2011-12-03T10:15:30+01:00")
	rq.NoError(err)
	rq.True(tm.Equal(plain))
}

func TestParseZonedErrors(t *testing.T) {
	rq := require.New(t)

	for _, s := range []string{
		"",
		"2000-01-01",                     // date only, no time
		"2000-01-01T00:00:00",            // missing offset
		"2000-01-01 00:00:00Z",           // space separator
		"2000-01-01T00:00:00Z]",          // unbalanced bracket
		"2000-01-01T00:00:00Z[Not/Here]", // unknown zone id
	} {
		_, err := chrono.ParseZoned(s)
		rq.Error(err, "input %q", s)
	}
}

func TestParseLocal(t *testing.T) {
	rq := require.New(t)

	l, err := chrono.ParseLocal("2000-01-01T12:30:45")
	rq.NoError(err)
	rq.Equal(chrono.NewLocal(2000, time.January, 1, 12, 30, 45, 0), l)

	l, err = chrono.ParseLocal("2000-01-01T12:30:45.5")
	rq.NoError(err)
	rq.Equal(500000000, l.Nanosecond())

	_, err = chrono.ParseLocal("2000-01-01T12:30:45Z")
	rq.Error(err, "offset is not part of the local profile")
	_, err = chrono.ParseLocal("2000-01-01")
	rq.Error(err)
}
