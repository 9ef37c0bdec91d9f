package historylist

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"threadex/internal/cache"
	"threadex/internal/ui/messages"
)

// Model lists the threads fetched this session. Selecting one re-exports
// it; the payload comes back out of the session store without a refetch.
type Model struct {
	list   list.Model
	width  int
	height int
}

// New creates the history list.
func New() Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(lipgloss.Color("#FF4500")).
		BorderLeftForeground(lipgloss.Color("#FF4500"))
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(lipgloss.Color("#CC3700")).
		BorderLeftForeground(lipgloss.Color("#FF4500"))

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Session history"
	l.Styles.Title = l.Styles.Title.
		Background(lipgloss.Color("#FF4500")).
		Foreground(lipgloss.Color("#FFFFFF")).
		Bold(true)
	l.SetShowStatusBar(false)

	return Model{list: l}
}

// SetEntries replaces the list contents.
func (m *Model) SetEntries(entries []cache.ThreadEntry) {
	items := make([]list.Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, item{entry: e})
	}
	m.list.SetItems(items)
}

// SetSize updates the list dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.list.SetSize(w, h)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "enter":
			if it, ok := m.list.SelectedItem().(item); ok {
				url := it.entry.URL
				return m, func() tea.Msg { return messages.StartExportMsg{URL: url} }
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the list.
func (m Model) View() string {
	return m.list.View()
}

// Filtering reports whether the list is capturing keys for its filter,
// so the app can suppress global shortcuts.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}
