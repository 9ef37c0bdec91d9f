package thread

import "time"

// DateFormat selects one of the three display formats. All of them render
// in UTC regardless of the local zone.
type DateFormat string

const (
	DateISO8601 DateFormat = "iso8601" // 2025-03-11T14:19:10+00:00
	DateRFC1123 DateFormat = "rfc1123" // Tue, 11 Mar 2025 14:19:10 GMT
	DateUTC     DateFormat = "utc"     // 2025-03-11T14:19:10Z
)

var gmt = time.FixedZone("GMT", 0)

// FormatTimestamp renders unix seconds in the chosen format. A zero
// timestamp means "no date" and yields the empty string. Unknown selectors
// fall back to ISO-8601.
func FormatTimestamp(ts int64, f DateFormat) string {
	if ts == 0 {
		return ""
	}
	t := time.Unix(ts, 0).UTC()
	switch f {
	case DateRFC1123:
		return t.In(gmt).Format(time.RFC1123)
	case DateUTC:
		return t.Format("2006-01-02T15:04:05") + "Z"
	default:
		// Explicit offset suffix rather than Z.
		return t.Format("2006-01-02T15:04:05") + "+00:00"
	}
}

// ValidDateFormat reports whether s names one of the three formats.
func ValidDateFormat(s string) bool {
	switch DateFormat(s) {
	case DateISO8601, DateRFC1123, DateUTC:
		return true
	}
	return false
}
