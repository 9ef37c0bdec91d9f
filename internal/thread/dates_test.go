package thread

import "testing"

func TestFormatTimestamp(t *testing.T) {
	// 2025-03-11T14:19:10 UTC.
	const ts = 1741702750

	cases := []struct {
		format DateFormat
		want   string
	}{
		{DateISO8601, "2025-03-11T14:19:10+00:00"},
		{DateRFC1123, "Tue, 11 Mar 2025 14:19:10 GMT"},
		{DateUTC, "2025-03-11T14:19:10Z"},
	}
	for _, c := range cases {
		if got := FormatTimestamp(ts, c.format); got != c.want {
			t.Errorf("FormatTimestamp(%d, %q) = %q, want %q", ts, c.format, got, c.want)
		}
	}
}

func TestFormatTimestampZeroPadding(t *testing.T) {
	// 2024-02-03 04:05:06 UTC: every component needs padding.
	const ts = 1706933106
	if got := FormatTimestamp(ts, DateISO8601); got != "2024-02-03T04:05:06+00:00" {
		t.Errorf("got %q", got)
	}
}

func TestFormatTimestampAbsent(t *testing.T) {
	if got := FormatTimestamp(0, DateISO8601); got != "" {
		t.Errorf("zero timestamp formatted as %q, want empty", got)
	}
}

func TestFormatTimestampUnknownFormatFallsBack(t *testing.T) {
	if got := FormatTimestamp(1741702750, DateFormat("bogus")); got != "2025-03-11T14:19:10+00:00" {
		t.Errorf("unknown format gave %q", got)
	}
}

func TestValidDateFormat(t *testing.T) {
	for _, ok := range []string{"iso8601", "rfc1123", "utc"} {
		if !ValidDateFormat(ok) {
			t.Errorf("%q should be valid", ok)
		}
	}
	if ValidDateFormat("local") {
		t.Error("\"local\" should be invalid")
	}
}
