package thread

import (
	"sort"
	"strconv"
	"strings"
)

// Column identifiers accepted by Sort.
const (
	ColNumbering = "numbering"
	ColTimestamp = "timestamp"
	ColLevel     = "level"
	ColBody      = "body"
	ColAuthor    = "author"
	ColUpvotes   = "upvotes"
	ColDownvotes = "downvotes"
	ColScore     = "score"
)

// CompareNumbering orders dotted numbering strings by successive numeric
// segments, so "2.9" sorts before "2.10". A missing segment compares as 0,
// which puts a parent before all of its descendants: "2" < "2.1".
func CompareNumbering(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	n := len(as)
	if len(bs) > n {
		n = len(bs)
	}
	for i := 0; i < n; i++ {
		var av, bv int
		if i < len(as) {
			av, _ = strconv.Atoi(as[i])
		}
		if i < len(bs) {
			bv, _ = strconv.Atoi(bs[i])
		}
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
	}
	return 0
}

// Sort reorders the flat sequence in place by the given column using the
// session's current direction, then flips the direction for the next call.
// The toggle is shared across columns. An empty sequence or an unknown
// column is a no-op and leaves the toggle untouched. The sort is stable, so
// equal keys keep their relative order and sorting a column twice restores
// the original arrangement.
func (e *Export) Sort(column string) {
	if len(e.Records) == 0 {
		return
	}

	var less func(a, b *Record) bool
	switch column {
	case ColNumbering:
		less = func(a, b *Record) bool { return CompareNumbering(a.Numbering, b.Numbering) < 0 }
	case ColTimestamp:
		// Missing timestamps are stored as 0 and sort first ascending.
		less = func(a, b *Record) bool { return a.Created < b.Created }
	case ColLevel:
		less = func(a, b *Record) bool { return a.Level < b.Level }
	case ColUpvotes:
		less = func(a, b *Record) bool { return a.Ups < b.Ups }
	case ColDownvotes:
		less = func(a, b *Record) bool { return a.Downs < b.Downs }
	case ColScore:
		less = func(a, b *Record) bool { return a.Score < b.Score }
	case ColBody:
		less = func(a, b *Record) bool {
			return strings.ToLower(a.Body) < strings.ToLower(b.Body)
		}
	case ColAuthor:
		less = func(a, b *Record) bool {
			return strings.ToLower(a.Author) < strings.ToLower(b.Author)
		}
	default:
		return
	}

	desc := e.descending
	sort.SliceStable(e.Records, func(i, j int) bool {
		if desc {
			return less(e.Records[j], e.Records[i])
		}
		return less(e.Records[i], e.Records[j])
	})
	e.descending = !desc
}
