package treeview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"threadex/internal/render"
	"threadex/internal/thread"
)

var (
	depthColors = []lipgloss.Color{
		"#FF4500", "#828282", "#00BFFF", "#32CD32", "#FFD700", "#FF69B4", "#9370DB", "#20B2AA",
	}

	idStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4500")).Bold(true)
	metaStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	selStyle    = lipgloss.NewStyle().Background(lipgloss.Color("#333333"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Padding(0, 1)
	hmetaStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#828282")).Padding(0, 1)
	sepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#444444"))
)

// detailLines is the height of the selected-comment pane under the tree.
const detailLines = 6

// Model is the collapsible hierarchy view. The hierarchy is derived fresh
// from the flat sequence when the view is created; collapse state is local
// to the view and dies with it.
type Model struct {
	viewport    viewport.Model
	export      *thread.Export
	root        *thread.HierarchyNode
	records     map[string]*thread.Record
	collapsed   map[string]bool
	visible     []visibleNode
	selectedIdx int
	width       int
	height      int
}

// New derives the hierarchy for an export session and shows it expanded.
func New(exp *thread.Export) Model {
	vp := viewport.New(0, 0)
	m := Model{
		viewport:  vp,
		export:    exp,
		records:   make(map[string]*thread.Record, len(exp.Records)),
		collapsed: make(map[string]bool),
	}
	for _, r := range exp.Records {
		m.records[r.Numbering] = r
	}
	m.root = thread.BuildHierarchy(exp.Post.Title, exp.Records)
	m.rebuildVisible()
	return m
}

// SetSize updates viewport dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.viewport.Width = w

	header := m.renderHeader()
	m.viewport.Height = h - strings.Count(header, "\n") - 1 - (detailLines + 1)
	if m.viewport.Height < 1 {
		m.viewport.Height = 1
	}
	m.rebuildContent()
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			if m.selectedIdx < len(m.visible)-1 {
				m.selectedIdx++
				m.rebuildContent()
				m.scrollToCursor()
			}
			return m, nil
		case "k", "up":
			if m.selectedIdx > 0 {
				m.selectedIdx--
				m.rebuildContent()
				m.scrollToCursor()
			}
			return m, nil
		case "enter", " ":
			if m.selectedIdx >= 0 && m.selectedIdx < len(m.visible) {
				id := m.visible[m.selectedIdx].node.ID
				m.collapsed[id] = !m.collapsed[id]
				m.rebuildVisible()
				m.rebuildContent()
			}
			return m, nil
		case "z":
			// If anything is expanded, collapse everything; else expand all.
			anyExpanded := false
			for _, v := range m.visible {
				if len(v.node.Children) > 0 && !m.collapsed[v.node.ID] {
					anyExpanded = true
					break
				}
			}
			m.setAllCollapsed(m.root, anyExpanded)
			m.rebuildVisible()
			m.rebuildContent()
			m.selectedIdx = 0
			m.viewport.GotoTop()
			return m, nil
		case "[", "p":
			if m.selectedIdx >= 0 && m.selectedIdx < len(m.visible) {
				parentID := m.visible[m.selectedIdx].node.ParentID
				for i, v := range m.visible {
					if v.node.ID == parentID {
						m.selectedIdx = i
						m.rebuildContent()
						m.scrollToCursor()
						break
					}
				}
			}
			return m, nil
		case "]":
			// Jump to the next sibling, skipping the selected subtree.
			if m.selectedIdx >= 0 && m.selectedIdx < len(m.visible) {
				cur := m.visible[m.selectedIdx]
				for i := m.selectedIdx + 1; i < len(m.visible); i++ {
					if m.visible[i].node.ParentID == cur.node.ParentID {
						m.selectedIdx = i
						m.rebuildContent()
						m.scrollToCursor()
						break
					}
					if m.visible[i].depth < cur.depth {
						break
					}
				}
			}
			return m, nil
		case "g", "home":
			m.selectedIdx = 0
			m.rebuildContent()
			m.viewport.GotoTop()
			return m, nil
		case "G", "end":
			if len(m.visible) > 0 {
				m.selectedIdx = len(m.visible) - 1
				m.rebuildContent()
				m.viewport.GotoBottom()
			}
			return m, nil
		case "ctrl+d", "pgdown":
			m.viewport.HalfViewDown()
			return m, nil
		case "ctrl+u", "pgup":
			m.viewport.HalfViewUp()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the tree with the selected comment's body underneath.
func (m Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(), m.viewport.View(), m.renderDetail())
}

// renderDetail shows the selected comment rendered to terminal text,
// truncated to a fixed pane height.
func (m Model) renderDetail() string {
	lines := make([]string, 0, detailLines+1)
	lines = append(lines, sepStyle.Render(strings.Repeat("─", max(m.width, 1))))

	if m.selectedIdx >= 0 && m.selectedIdx < len(m.visible) {
		rec := m.records[m.visible[m.selectedIdx].node.ID]
		if rec != nil {
			text := render.CommentText(rec.Body, rec.BodyHTML, max(m.width-2, 20))
			body := strings.Split(text, "\n")
			if len(body) > detailLines {
				body = body[:detailLines-1]
				body = append(body, metaStyle.Render("..."))
			}
			lines = append(lines, body...)
		}
	}
	for len(lines) < detailLines+1 {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (m *Model) setAllCollapsed(n *thread.HierarchyNode, collapsed bool) {
	for _, c := range n.Children {
		if len(c.Children) > 0 {
			m.collapsed[c.ID] = collapsed
		}
		m.setAllCollapsed(c, collapsed)
	}
}

func (m *Model) rebuildContent() {
	if len(m.visible) == 0 {
		m.viewport.SetContent("  No comments.")
		return
	}

	var sb strings.Builder
	for i, v := range m.visible {
		indent := strings.Repeat("  ", v.depth)
		barColor := depthColors[v.depth%len(depthColors)]
		bar := lipgloss.NewStyle().Foreground(barColor).Render("│")

		line := indent + bar + " " + idStyle.Render(v.node.ID)
		line += " " + v.node.Snippet
		line += " " + metaStyle.Render(fmt.Sprintf("(%d pts)", v.node.Score))
		if m.collapsed[v.node.ID] && len(v.node.Children) > 0 {
			line += " " + metaStyle.Render(fmt.Sprintf("[+%d]", v.node.Count))
		}
		if i == m.selectedIdx {
			line = selStyle.Render(line)
		}
		sb.WriteString(line + "\n")
	}
	m.viewport.SetContent(sb.String())
}

func (m *Model) scrollToCursor() {
	if m.selectedIdx < m.viewport.YOffset || m.selectedIdx >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(m.selectedIdx)
	}
}

func (m Model) renderHeader() string {
	post := m.export.Post
	var parts []string

	parts = append(parts, headerStyle.Render(post.Title))
	parts = append(parts, hmetaStyle.Render(fmt.Sprintf(
		"by %s | %d points | %s | %d comments",
		post.Author, post.Score, render.TimeAgo(post.Created), len(m.export.Records))))
	parts = append(parts, sepStyle.Render(strings.Repeat("─", max(m.width, 1))))
	parts = append(parts, metaStyle.Render(
		"j/k:move  space:collapse  z:fold all  [:parent  ]:sibling  g/G:top/bottom"))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
