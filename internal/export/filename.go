package export

import (
	"strings"

	"threadex/internal/thread"
)

// DefaultFilename derives a CSV filename from the post permalink, e.g.
// /r/golang/comments/abc123/some_title/ becomes abc123_some_title.csv.
// Falls back to thread.csv when the permalink has no comments segment.
func DefaultFilename(post *thread.Post) string {
	parts := strings.Split(strings.Trim(post.Permalink, "/"), "/")
	for i, p := range parts {
		if p != "comments" || i+1 >= len(parts) {
			continue
		}
		name := strings.Join(parts[i+1:], "_")
		if name != "" {
			return sanitize(name) + ".csv"
		}
	}
	return "thread.csv"
}

func sanitize(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			sb.WriteRune(r)
		default:
			sb.WriteRune('_')
		}
	}
	return sb.String()
}
