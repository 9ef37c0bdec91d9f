package treeview

import "threadex/internal/thread"

// visibleNode is one display row of the tree: a hierarchy node and its
// depth below the root.
type visibleNode struct {
	node  *thread.HierarchyNode
	depth int
}

// rebuildVisible flattens the hierarchy into display rows, skipping the
// subtrees of collapsed nodes. The synthetic root is not shown; its
// children start at depth 0.
func (m *Model) rebuildVisible() {
	m.visible = m.visible[:0]

	var walk func(n *thread.HierarchyNode, depth int)
	walk = func(n *thread.HierarchyNode, depth int) {
		m.visible = append(m.visible, visibleNode{node: n, depth: depth})
		if m.collapsed[n.ID] {
			return
		}
		for _, c := range n.Children {
			walk(c, depth+1)
		}
	}

	for _, c := range m.root.Children {
		walk(c, 0)
	}

	if m.selectedIdx >= len(m.visible) {
		m.selectedIdx = len(m.visible) - 1
	}
	if m.selectedIdx < 0 {
		m.selectedIdx = 0
	}
}
