package api

import (
	"testing"

	"threadex/internal/thread"
)

const samplePayload = `[
  {
    "kind": "Listing",
    "data": {
      "children": [
        {
          "kind": "t3",
          "data": {
            "title": "A thread title",
            "selftext": "post body",
            "author": "op_user",
            "permalink": "/r/golang/comments/abc123/a_thread_title/",
            "ups": 42,
            "downs": 3,
            "score": 40,
            "created_utc": 1741703950
          }
        }
      ]
    }
  },
  {
    "kind": "Listing",
    "data": {
      "children": [
        {
          "kind": "t1",
          "data": {
            "body": "top comment",
            "author": "alice",
            "ups": 10,
            "downs": 1,
            "score": 9,
            "created_utc": 1741704000,
            "replies": {
              "kind": "Listing",
              "data": {
                "children": [
                  {
                    "kind": "t1",
                    "data": {
                      "body": "a reply",
                      "author": "bob",
                      "ups": 2,
                      "downs": 0,
                      "created_utc": 1741704100,
                      "replies": ""
                    }
                  },
                  {
                    "kind": "more",
                    "data": {"count": 12, "children": []}
                  }
                ]
              }
            }
          }
        },
        {
          "kind": "more",
          "data": {"count": 5, "children": []}
        }
      ]
    }
  }
]`

func TestParseThread(t *testing.T) {
	th, err := ParseThread([]byte(samplePayload))
	if err != nil {
		t.Fatalf("ParseThread: %v", err)
	}

	if th.Post.Title != "A thread title" {
		t.Errorf("post title %q", th.Post.Title)
	}
	if th.Post.Score != 40 {
		t.Errorf("post score %d, want explicit 40", th.Post.Score)
	}
	if th.Post.Created != 1741703950 {
		t.Errorf("post created %d", th.Post.Created)
	}

	if len(th.Nodes) != 2 {
		t.Fatalf("got %d top-level nodes, want 2", len(th.Nodes))
	}
	if th.Nodes[1].Stub != true {
		t.Error("trailing more child should be a stub")
	}

	top := th.Nodes[0]
	if top.Author != "alice" || !top.HasScore || top.Score != 9 {
		t.Errorf("top comment parsed wrong: %+v", top)
	}
	if len(top.Children) != 2 {
		t.Fatalf("top comment has %d children, want 2 (reply + stub)", len(top.Children))
	}
	if top.Children[0].Author != "bob" || top.Children[0].Stub {
		t.Errorf("nested reply parsed wrong: %+v", top.Children[0])
	}
	if !top.Children[1].Stub {
		t.Error("nested more child should be a stub")
	}
}

func TestParseThreadFlattensEndToEnd(t *testing.T) {
	th, err := ParseThread([]byte(samplePayload))
	if err != nil {
		t.Fatalf("ParseThread: %v", err)
	}

	records := thread.Flatten(th.Nodes)
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].Numbering != "1" || records[1].Numbering != "1.1" {
		t.Errorf("numbering %q, %q", records[0].Numbering, records[1].Numbering)
	}
}

func TestParseThreadScoreFallback(t *testing.T) {
	payload := `[
	  {"kind":"Listing","data":{"children":[{"kind":"t3","data":{"title":"t","ups":7,"downs":2}}]}},
	  {"kind":"Listing","data":{"children":[{"kind":"t1","data":{"body":"x","author":"a","ups":4,"downs":1,"replies":""}}]}}
	]`
	th, err := ParseThread([]byte(payload))
	if err != nil {
		t.Fatalf("ParseThread: %v", err)
	}
	if th.Post.Score != 5 {
		t.Errorf("post score %d, want ups-downs = 5", th.Post.Score)
	}
	records := thread.Flatten(th.Nodes)
	if records[0].Score != 3 {
		t.Errorf("comment score %d, want ups-downs = 3", records[0].Score)
	}
}

func TestParseThreadRejectsShortEnvelope(t *testing.T) {
	if _, err := ParseThread([]byte(`[{"kind":"Listing","data":{}}]`)); err == nil {
		t.Error("single-listing payload should be rejected")
	}
	if _, err := ParseThread([]byte(`{"error": 404}`)); err == nil {
		t.Error("error object should be rejected")
	}
}

func TestRepliesEmptyString(t *testing.T) {
	d := &ThingData{RawReplies: []byte(`""`)}
	if d.Replies() != nil {
		t.Error("empty-string replies should be nil")
	}
	d = &ThingData{}
	if d.Replies() != nil {
		t.Error("absent replies should be nil")
	}
}

func TestNormalizeThreadURL(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{
			"https://www.reddit.com/r/golang/comments/abc123/title/",
			"https://www.reddit.com/r/golang/comments/abc123/title.json?raw_json=1",
		},
		{
			"http://old.reddit.com/r/golang/comments/abc123/title",
			"https://old.reddit.com/r/golang/comments/abc123/title.json?raw_json=1",
		},
		{
			"reddit.com/r/golang/comments/abc123/title.json",
			"https://reddit.com/r/golang/comments/abc123/title.json?raw_json=1",
		},
		{
			"www.reddit.com/r/golang/comments/abc123/title/?sort=top",
			"https://www.reddit.com/r/golang/comments/abc123/title.json?raw_json=1",
		},
	}
	for _, c := range cases {
		got, err := NormalizeThreadURL(c.in)
		if err != nil {
			t.Errorf("NormalizeThreadURL(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("NormalizeThreadURL(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeThreadURLRejectsNonReddit(t *testing.T) {
	for _, in := range []string{"", "https://example.com/r/golang", "https://notreddit.community/x"} {
		if _, err := NormalizeThreadURL(in); err == nil {
			t.Errorf("NormalizeThreadURL(%q) should fail", in)
		}
	}
}
