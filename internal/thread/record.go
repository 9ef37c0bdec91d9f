package thread

// Deleted is the sentinel Reddit uses for removed bodies and authors; it is
// also what absent fields collapse to at record construction.
const Deleted = "[deleted]"

// Node is one element of a comment listing: either a real comment or a
// "load more" stub. Stubs carry no data, are never numbered and produce no
// record.
type Node struct {
	Stub     bool
	Body     string
	BodyHTML string
	Author   string
	Ups      int
	Downs    int
	Score    int
	HasScore bool
	Created  int64 // unix seconds, 0 means unknown
	Children []Node
}

// Record is one row of the flat sequence.
type Record struct {
	Numbering string
	Level     int
	Body      string
	BodyHTML  string
	Author    string
	Ups       int
	Downs     int
	Score     int
	Created   int64
}

// Post is the submission the comment tree hangs off. It is rendered above
// the table and tree views but is not part of the flat sequence.
type Post struct {
	Title     string
	Body      string
	BodyHTML  string
	Author    string
	Permalink string
	Ups       int
	Downs     int
	Score     int
	Created   int64
}

// Export is one export session: the post, the flat sequence, and the sort
// direction toggle. A new Export replaces the previous one wholesale when a
// thread is (re)fetched; nothing is patched incrementally.
type Export struct {
	Post    *Post
	Records []*Record

	descending bool
}

// NewExport flattens the comment listing into a fresh session.
func NewExport(post *Post, listing []Node) *Export {
	return &Export{Post: post, Records: Flatten(listing)}
}

// Descending reports the direction the next Sort call will apply.
func (e *Export) Descending() bool {
	return e.descending
}

// ResetDirection makes the next sort ascending again.
func (e *Export) ResetDirection() {
	e.descending = false
}

// newRecord builds a record for one comment node, applying the sentinel and
// score-fallback rules once, here, so consumers never re-derive them.
func newRecord(numbering string, level int, n Node) *Record {
	body := n.Body
	if body == "" {
		body = Deleted
	}
	author := n.Author
	if author == "" {
		author = Deleted
	}
	score := n.Score
	if !n.HasScore {
		score = n.Ups - n.Downs
	}
	return &Record{
		Numbering: numbering,
		Level:     level,
		Body:      body,
		BodyHTML:  n.BodyHTML,
		Author:    author,
		Ups:       n.Ups,
		Downs:     n.Downs,
		Score:     score,
		Created:   n.Created,
	}
}
