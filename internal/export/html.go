package export

import (
	"fmt"
	"html"
	"strings"

	"threadex/internal/thread"
)

// HTMLTable renders the flat sequence, in its current order, as an HTML
// table suitable for pasting into documents. Column layout mirrors the CSV
// exporter; newlines in cells become <br> unless the strip preference
// collapses them to spaces.
func HTMLTable(records []*thread.Record, opts Options) string {
	var sb strings.Builder
	sb.WriteString("<table>\n<thead>\n<tr>")

	if opts.Compact {
		sb.WriteString("<th>Number</th><th>Body (Compact)</th>")
	} else {
		for _, h := range []string{"Number", "Level", "Body", "Author", "Date(UTC)", "Upvotes", "Downvotes"} {
			sb.WriteString("<th>" + html.EscapeString(h) + "</th>")
		}
	}
	sb.WriteString("</tr>\n</thead>\n<tbody>\n")

	for _, r := range records {
		sb.WriteString("<tr>")
		if opts.Compact {
			cell(&sb, r.Numbering, opts)
			cell(&sb, compactBody(r, opts.DateFormat), opts)
		} else {
			cell(&sb, r.Numbering, opts)
			cell(&sb, fmt.Sprintf("%d", r.Level), opts)
			cell(&sb, r.Body, opts)
			cell(&sb, r.Author, opts)
			cell(&sb, thread.FormatTimestamp(r.Created, opts.DateFormat), opts)
			cell(&sb, fmt.Sprintf("%d", r.Ups), opts)
			cell(&sb, fmt.Sprintf("%d", r.Downs), opts)
		}
		sb.WriteString("</tr>\n")
	}

	sb.WriteString("</tbody>\n</table>\n")
	return sb.String()
}

func cell(sb *strings.Builder, s string, opts Options) {
	if opts.StripNewlines {
		s = collapseNewlines(s)
	}
	escaped := html.EscapeString(s)
	escaped = strings.ReplaceAll(escaped, "\r\n", "<br>")
	escaped = strings.ReplaceAll(escaped, "\n", "<br>")
	sb.WriteString("<td>" + escaped + "</td>")
}
