package export

import (
	"strings"
	"testing"

	"threadex/internal/thread"
)

func testRecords() []*thread.Record {
	return []*thread.Record{
		{
			Numbering: "1", Level: 1, Body: `He said "hi"`, Author: "alice",
			Ups: 10, Downs: 2, Score: 8, Created: 1741702750,
		},
		{
			Numbering: "1.1", Level: 2, Body: "line one\nline two", Author: "bob",
			Ups: 3, Downs: 0, Score: 3, Created: 1741704000,
		},
	}
}

func TestCSVFullLayout(t *testing.T) {
	out := CSV(testRecords(), Options{DateFormat: thread.DateISO8601})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	if lines[0] != `"Number","Level","Body","Author","Date(UTC)","Upvotes","Downvotes"` {
		t.Errorf("header = %s", lines[0])
	}
	if !strings.Contains(out, `"He said ""hi"""`) {
		t.Errorf("quote doubling missing:\n%s", out)
	}
	if !strings.Contains(out, `"2025-03-11T14:19:10+00:00"`) {
		t.Errorf("iso8601 date missing:\n%s", out)
	}
}

func TestCSVFullKeepsNewlinesUnlessStripped(t *testing.T) {
	out := CSV(testRecords(), Options{DateFormat: thread.DateISO8601})
	if !strings.Contains(out, "\"line one\nline two\"") {
		t.Errorf("body newline should survive inside quotes:\n%s", out)
	}

	out = CSV(testRecords(), Options{DateFormat: thread.DateISO8601, StripNewlines: true})
	if strings.Contains(out, "line one\nline two") {
		t.Errorf("strip-newlines left a raw newline:\n%s", out)
	}
	if !strings.Contains(out, `"line one line two"`) {
		t.Errorf("newline not collapsed to a space:\n%s", out)
	}
}

func TestCSVCompactLayout(t *testing.T) {
	out := CSV(testRecords(), Options{Compact: true, DateFormat: thread.DateUTC})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	if lines[0] != `"Number","Body (Compact)"` {
		t.Errorf("compact header = %s", lines[0])
	}
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header + 2 rows", len(lines))
	}
	if !strings.Contains(lines[1], "(by alice, 2025-03-11T14:19:10Z, ↑↓ 8)") {
		t.Errorf("compact attribution missing: %s", lines[1])
	}

	// The combined cell collapses newlines even without the preference.
	if !strings.Contains(lines[2], `"line one line two (by bob`) {
		t.Errorf("compact body should always collapse newlines: %s", lines[2])
	}
}

func TestHTMLTable(t *testing.T) {
	out := HTMLTable(testRecords(), Options{DateFormat: thread.DateISO8601})

	if !strings.Contains(out, "<th>Number</th>") || !strings.Contains(out, "<th>Downvotes</th>") {
		t.Errorf("full header cells missing:\n%s", out)
	}
	if !strings.Contains(out, "He said &#34;hi&#34;") {
		t.Errorf("quotes not escaped:\n%s", out)
	}
	if !strings.Contains(out, "line one<br>line two") {
		t.Errorf("newline should become <br>:\n%s", out)
	}

	out = HTMLTable(testRecords(), Options{DateFormat: thread.DateISO8601, StripNewlines: true})
	if strings.Contains(out, "<br>") {
		t.Errorf("strip-newlines should prevent <br>:\n%s", out)
	}
}

func TestHTMLTableCompact(t *testing.T) {
	out := HTMLTable(testRecords(), Options{Compact: true, DateFormat: thread.DateISO8601})
	if !strings.Contains(out, "<th>Body (Compact)</th>") {
		t.Errorf("compact header missing:\n%s", out)
	}
	if strings.Contains(out, "<th>Level</th>") {
		t.Errorf("compact table should not have a Level column:\n%s", out)
	}
}
