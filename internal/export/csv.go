package export

import (
	"fmt"
	"os"
	"strings"

	"threadex/internal/thread"
)

// Options control the output layout shared by the CSV and HTML exporters.
type Options struct {
	Compact       bool
	StripNewlines bool
	DateFormat    thread.DateFormat
}

// CSV renders the flat sequence, in its current order, as CSV. Every field
// is double-quoted with embedded quotes doubled. Compact mode folds author,
// date and score into the body column; its combined cell always has
// newlines collapsed, while full mode collapses the body only when the
// strip-newlines preference is on.
func CSV(records []*thread.Record, opts Options) string {
	var sb strings.Builder

	if opts.Compact {
		writeRow(&sb, "Number", "Body (Compact)")
		for _, r := range records {
			writeRow(&sb, r.Numbering, compactBody(r, opts.DateFormat))
		}
		return sb.String()
	}

	writeRow(&sb, "Number", "Level", "Body", "Author", "Date(UTC)", "Upvotes", "Downvotes")
	for _, r := range records {
		body := r.Body
		if opts.StripNewlines {
			body = collapseNewlines(body)
		}
		writeRow(&sb,
			r.Numbering,
			fmt.Sprintf("%d", r.Level),
			body,
			r.Author,
			thread.FormatTimestamp(r.Created, opts.DateFormat),
			fmt.Sprintf("%d", r.Ups),
			fmt.Sprintf("%d", r.Downs),
		)
	}
	return sb.String()
}

// WriteCSVFile writes the rendered CSV to path.
func WriteCSVFile(path string, records []*thread.Record, opts Options) error {
	if err := os.WriteFile(path, []byte(CSV(records, opts)), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// compactBody is the single-cell rendition of a record: the body followed
// by attribution metadata. Always newline-free.
func compactBody(r *thread.Record, f thread.DateFormat) string {
	return fmt.Sprintf("%s (by %s, %s, ↑↓ %d)",
		collapseNewlines(r.Body), r.Author, thread.FormatTimestamp(r.Created, f), r.Score)
}

func writeRow(sb *strings.Builder, fields ...string) {
	for i, f := range fields {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(quote(f))
	}
	sb.WriteByte('\n')
}

// quote wraps a field in double quotes unconditionally, doubling embedded
// quotes. encoding/csv quotes minimally, which the output contract forbids.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

var newlineReplacer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

func collapseNewlines(s string) string {
	return newlineReplacer.Replace(s)
}
