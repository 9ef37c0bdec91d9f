package thread

import "testing"

func TestCompareNumbering(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"1", "2", -1},
		{"2", "1", 1},
		{"2.1.1", "2.1.1", 0},
		{"2.9", "2.10", -1},  // numeric, not lexicographic
		{"2", "2.1", -1},     // parent before descendants
		{"2.1", "2", 1},
		{"10", "9", 1},
		{"1.2.1", "1.2", 1},
	}
	for _, c := range cases {
		if got := CompareNumbering(c.a, c.b); got != c.want {
			t.Errorf("CompareNumbering(%q, %q) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func numberings(records []*Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Numbering
	}
	return out
}

func TestSortByScore(t *testing.T) {
	e := NewExport(&Post{Title: "t"}, []Node{
		{Body: "a", Author: "a", Ups: 1},
		{Body: "b", Author: "b", Ups: 9},
		{Body: "c", Author: "c", Ups: 5},
	})

	e.Sort(ColScore)
	got := numberings(e.Records)
	want := []string{"1", "3", "2"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ascending score order %v, want %v", got, want)
		}
	}

	e.Sort(ColScore)
	got = numberings(e.Records)
	want = []string{"2", "3", "1"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("descending score order %v, want %v", got, want)
		}
	}
}

func TestSortNumberingRestoresPreOrder(t *testing.T) {
	e := NewExport(&Post{Title: "t"}, sampleListing())
	original := numberings(e.Records)

	e.Sort(ColScore)
	e.ResetDirection()
	e.Sort(ColNumbering)

	got := numberings(e.Records)
	for i := range original {
		if got[i] != original[i] {
			t.Fatalf("numbering sort gave %v, want pre-order %v", got, original)
		}
	}
}

func TestSortSameColumnTwice(t *testing.T) {
	// The second sort on a column runs descending: unequal keys come back
	// exactly reversed, equal keys keep their original relative order, and
	// the direction flag is ascending again for the sort after that.
	e := NewExport(&Post{Title: "t"}, sampleListing())

	e.Sort(ColLevel)
	e.Sort(ColLevel)

	// Levels were 1,2,2,3; descending puts 1.2.1 first and keeps the
	// level-2 tie 1.1 before 1.2.
	got := numberings(e.Records)
	want := []string{"1.2.1", "1.1", "1.2", "1"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("double level sort gave %v, want %v", got, want)
		}
	}
	if e.Descending() {
		t.Error("direction should be ascending again after two sorts")
	}

	e.Sort(ColLevel)
	if e.Records[0].Level != 1 {
		t.Errorf("third sort should be ascending again, got level %d first", e.Records[0].Level)
	}
}

func TestSortEmptySequenceIsNoOp(t *testing.T) {
	e := &Export{Post: &Post{}}
	e.Sort(ColScore)
	if e.Descending() {
		t.Error("sorting an empty sequence must not flip the direction")
	}
}

func TestSortUnknownColumnIsNoOp(t *testing.T) {
	e := NewExport(&Post{Title: "t"}, sampleListing())
	original := numberings(e.Records)

	e.Sort("permalink")

	got := numberings(e.Records)
	for i := range original {
		if got[i] != original[i] {
			t.Fatalf("unknown column reordered records: %v", got)
		}
	}
	if e.Descending() {
		t.Error("unknown column must not flip the direction")
	}
}

func TestSortMissingTimestampSortsFirst(t *testing.T) {
	e := NewExport(&Post{Title: "t"}, []Node{
		{Body: "dated", Author: "a", Created: 1700000000},
		{Body: "undated", Author: "b"},
	})
	e.Sort(ColTimestamp)
	if e.Records[0].Body != "undated" {
		t.Errorf("missing timestamp should sort first ascending, got %q first", e.Records[0].Body)
	}
}

func TestSortBodyCaseInsensitive(t *testing.T) {
	e := NewExport(&Post{Title: "t"}, []Node{
		{Body: "banana", Author: "a"},
		{Body: "Apple", Author: "b"},
	})
	e.Sort(ColBody)
	if e.Records[0].Body != "Apple" {
		t.Errorf("case-insensitive body sort got %q first", e.Records[0].Body)
	}
}
