package export

import (
	"testing"

	"threadex/internal/thread"
)

func TestDefaultFilename(t *testing.T) {
	cases := []struct {
		permalink string
		want      string
	}{
		{"/r/golang/comments/abc123/some_title/", "abc123_some_title.csv"},
		{"/r/golang/comments/abc123/", "abc123.csv"},
		{"/r/ask me/comments/x1/weird title!/", "x1_weird_title_.csv"},
		{"/r/golang/", "thread.csv"},
		{"", "thread.csv"},
	}
	for _, c := range cases {
		got := DefaultFilename(&thread.Post{Permalink: c.permalink})
		if got != c.want {
			t.Errorf("DefaultFilename(%q) = %q, want %q", c.permalink, got, c.want)
		}
	}
}
