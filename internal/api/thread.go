package api

import (
	"encoding/json"
	"errors"
	"fmt"

	"threadex/internal/thread"
)

// Thread is a parsed thread payload: the post plus its comment nodes, ready
// for flattening.
type Thread struct {
	Post  *thread.Post
	Nodes []thread.Node
}

// ParseThread decodes a thread JSON payload. The endpoint returns a
// two-element array: the link listing and the comment listing. Only the
// top-level shape is validated here; past this gate the payload is assumed
// well formed.
func ParseThread(payload []byte) (*Thread, error) {
	var listings []Thing
	if err := json.Unmarshal(payload, &listings); err != nil {
		return nil, fmt.Errorf("decoding thread payload: %w", err)
	}
	if len(listings) < 2 {
		return nil, fmt.Errorf("unexpected thread payload: %d listings, want 2", len(listings))
	}

	linkChildren := listings[0].Data.Children
	if len(linkChildren) == 0 {
		return nil, errors.New("thread payload has no link data")
	}

	return &Thread{
		Post:  postFromData(&linkChildren[0].Data),
		Nodes: commentNodes(listings[1].Data.Children),
	}, nil
}

func postFromData(d *ThingData) *thread.Post {
	score := d.Ups - d.Downs
	if d.Score != nil {
		score = *d.Score
	}
	return &thread.Post{
		Title:     d.Title,
		Body:      d.Selftext,
		BodyHTML:  d.SelftextHTML,
		Author:    d.Author,
		Permalink: d.Permalink,
		Ups:       d.Ups,
		Downs:     d.Downs,
		Score:     score,
		Created:   int64(d.CreatedUTC),
	}
}

// commentNodes converts a listing's children into flattener input. Anything
// that isn't a t1 comment (notably "more" stubs) becomes a stub node, which
// the flattener skips without numbering.
func commentNodes(children []Thing) []thread.Node {
	if len(children) == 0 {
		return nil
	}
	nodes := make([]thread.Node, 0, len(children))
	for i := range children {
		c := &children[i]
		if c.Kind != KindComment {
			nodes = append(nodes, thread.Node{Stub: true})
			continue
		}
		n := thread.Node{
			Body:     c.Data.Body,
			BodyHTML: c.Data.BodyHTML,
			Author:   c.Data.Author,
			Ups:      c.Data.Ups,
			Downs:    c.Data.Downs,
			Created:  int64(c.Data.CreatedUTC),
		}
		if c.Data.Score != nil {
			n.Score = *c.Data.Score
			n.HasScore = true
		}
		if rep := c.Data.Replies(); rep != nil {
			n.Children = commentNodes(rep.Data.Children)
		}
		nodes = append(nodes, n)
	}
	return nodes
}
