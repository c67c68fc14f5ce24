package chrono

import (
	"fmt"
	"strings"
	"time"
)

// ZonedFormat is the single wire format accepted for zoned date-time text:
// an RFC 3339 date-time with optional fractional seconds and a Z or +-hh:mm
// offset. The text may additionally carry a bracketed IANA zone id suffix,
// eg. "2011-12-03T10:15:30+01:00[Europe/Paris]".
const ZonedFormat = time.RFC3339Nano

// ParseZoned parses dateTimeStr in the fixed ISO profile above. The instant
// is taken from the offset; when a bracketed zone id is present the value is
// re-expressed in that zone (same instant, fields recomputed).
func ParseZoned(dateTimeStr string) (time.Time, error) {
	zoneID := ""
	if strings.HasSuffix(dateTimeStr, "]") {
		open := strings.LastIndex(dateTimeStr, "[")
		if open < 0 {
			return time.Time{}, fmt.Errorf("unbalanced zone id brackets in %q", dateTimeStr)
		}
		zoneID = dateTimeStr[open+1 : len(dateTimeStr)-1]
		dateTimeStr = dateTimeStr[:open]
	}

	tm, err := time.Parse(ZonedFormat, dateTimeStr)
	if err != nil {
		return time.Time{}, err
	}
	if zoneID == "" {
		return tm, nil
	}

	loc, err := time.LoadLocation(zoneID)
	if err != nil {
		return time.Time{}, fmt.Errorf("unknown zone id in %q: %v", dateTimeStr, err)
	}
	return tm.In(loc), nil
}
