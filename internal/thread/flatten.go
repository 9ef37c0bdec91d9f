package thread

import "strconv"

// Flatten walks a comment listing depth-first and returns the flat sequence
// in pre-order: each comment before its replies, replies in full before the
// next sibling. Siblings are numbered 1..N in arrival order; stubs are
// skipped without consuming a number, so a node's numbering is always its
// parent's numbering plus one segment.
func Flatten(listing []Node) []*Record {
	var out []*Record

	var walk func(nodes []Node, prefix string, level int)
	walk = func(nodes []Node, prefix string, level int) {
		counter := 0
		for _, n := range nodes {
			if n.Stub {
				continue
			}
			counter++
			numbering := strconv.Itoa(counter)
			if prefix != "" {
				numbering = prefix + "." + numbering
			}
			out = append(out, newRecord(numbering, level, n))
			if len(n.Children) > 0 {
				walk(n.Children, numbering, level+1)
			}
		}
	}

	walk(listing, "", 1)
	return out
}
