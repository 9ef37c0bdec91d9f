package api

import "encoding/json"

// Kinds Reddit tags listing children with.
const (
	KindListing = "Listing"
	KindComment = "t1"
	KindLink    = "t3"
	KindMore    = "more"
)

// Thing is Reddit's tagged envelope: every node in a listing is
// {"kind": ..., "data": ...}.
type Thing struct {
	Kind string    `json:"kind"`
	Data ThingData `json:"data"`
}

// ThingData carries the union of listing, link and comment fields; which
// ones are populated depends on the kind.
type ThingData struct {
	Children []Thing `json:"children"`

	ID           string `json:"id"`
	Title        string `json:"title"`
	Selftext     string `json:"selftext"`
	SelftextHTML string `json:"selftext_html"`
	Permalink    string `json:"permalink"`

	Body     string `json:"body"`
	BodyHTML string `json:"body_html"`
	Author   string `json:"author"`
	Ups      int    `json:"ups"`
	Downs    int    `json:"downs"`

	// Score is a pointer so "present but zero" and "absent" stay apart;
	// absent falls back to ups-downs at record construction.
	Score *int `json:"score"`

	CreatedUTC float64 `json:"created_utc"`

	// Replies is "" on leaf comments and a nested listing otherwise, so it
	// can't be decoded eagerly into a struct.
	RawReplies json.RawMessage `json:"replies"`

	// Parsed replies (populated after first access).
	replies *Thing
}

// Replies returns the nested reply listing, or nil when the comment has
// none or the field is the empty-string placeholder.
func (d *ThingData) Replies() *Thing {
	if d.replies != nil {
		return d.replies
	}
	if len(d.RawReplies) == 0 || string(d.RawReplies) == `""` {
		return nil
	}
	var t Thing
	if err := json.Unmarshal(d.RawReplies, &t); err != nil {
		return nil
	}
	d.replies = &t
	return d.replies
}
