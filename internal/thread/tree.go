package thread

import "strings"

// RootID is the id of the synthetic root node and the parent id of every
// top-level comment.
const RootID = "root"

const snippetLen = 80

// HierarchyNode is the visualization-side view of a record: numbering as
// id, parent derived from the numbering, a truncated body snippet, and the
// subtree leaf count the tree view shows as its hidden-children badge.
// The whole tree is rebuilt from the flat sequence on every request and
// never fed back into it.
type HierarchyNode struct {
	ID       string
	ParentID string
	Score    int
	Snippet  string
	Children []*HierarchyNode
	Count    int
}

// ParentNumbering strips the last segment of a numbering string; a
// single-segment numbering parents to RootID.
func ParentNumbering(numbering string) string {
	if i := strings.LastIndex(numbering, "."); i >= 0 {
		return numbering[:i]
	}
	return RootID
}

// Snippet truncates body text for node labels. The deleted sentinel passes
// through unchanged.
func Snippet(body string) string {
	if body == Deleted {
		return body
	}
	r := []rune(body)
	if len(r) <= snippetLen {
		return body
	}
	return string(r[:snippetLen]) + "..."
}

// BuildHierarchy reconstructs the comment tree from the flat sequence,
// purely from the numbering strings, so it works on the sequence in any
// order. Children attach in order of appearance in the input. A record
// whose parent numbering is absent from the sequence is dropped rather
// than failing the build.
//
// Counts are filled bottom-up: leaves count 1, interior nodes the sum of
// their children's counts.
func BuildHierarchy(title string, records []*Record) *HierarchyNode {
	root := &HierarchyNode{ID: RootID, Snippet: Snippet(title)}

	byID := make(map[string]*HierarchyNode, len(records))
	for _, r := range records {
		byID[r.Numbering] = &HierarchyNode{
			ID:       r.Numbering,
			ParentID: ParentNumbering(r.Numbering),
			Score:    r.Score,
			Snippet:  Snippet(r.Body),
		}
	}

	for _, r := range records {
		node := byID[r.Numbering]
		if node.ParentID == RootID {
			root.Children = append(root.Children, node)
			continue
		}
		parent, ok := byID[node.ParentID]
		if !ok {
			continue
		}
		parent.Children = append(parent.Children, node)
	}

	fillCounts(root)
	return root
}

func fillCounts(n *HierarchyNode) int {
	if len(n.Children) == 0 {
		n.Count = 1
		return 1
	}
	total := 0
	for _, c := range n.Children {
		total += fillCounts(c)
	}
	n.Count = total
	return total
}
