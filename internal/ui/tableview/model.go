package tableview

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"threadex/internal/config"
	"threadex/internal/export"
	"threadex/internal/render"
	"threadex/internal/thread"
	"threadex/internal/ui/messages"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Padding(0, 1)
	metaStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#828282")).Padding(0, 1)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")).Padding(0, 1)
	sepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#444444"))
)

// Fixed column widths; the body column absorbs the rest.
const (
	numberingWidth = 9
	levelWidth     = 4
	authorWidth    = 16
	scoreWidth     = 6
	votesWidth     = 5
	dateWidth      = 26
)

// Model is the sortable comment table view.
type Model struct {
	table  table.Model
	export *thread.Export
	cfg    config.Config
	width  int
	height int
}

// New creates a table over an export session.
func New(cfg config.Config, exp *thread.Export) Model {
	t := table.New(table.WithFocused(true))

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Bold(true).
		Foreground(lipgloss.Color("#FF4500")).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		BorderBottom(true)
	styles.Selected = styles.Selected.
		Background(lipgloss.Color("#333333")).
		Foreground(lipgloss.Color("#FFFFFF"))
	t.SetStyles(styles)

	m := Model{table: t, export: exp, cfg: cfg}
	m.refresh()
	return m
}

// SetSize updates dimensions and recomputes the body column width.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h

	header := m.renderHeader()
	tableHeight := h - strings.Count(header, "\n") - 1
	if tableHeight < 3 {
		tableHeight = 3
	}
	m.table.SetWidth(w)
	m.table.SetHeight(tableHeight)

	m.refresh()
}

// SetConfig applies changed preferences (date format affects the date
// column).
func (m *Model) SetConfig(cfg config.Config) {
	m.cfg = cfg
	m.refresh()
}

// refresh rebuilds columns and rows from the flat sequence's current order.
func (m *Model) refresh() {
	fixed := numberingWidth + levelWidth + authorWidth + scoreWidth + 2*votesWidth + dateWidth
	bodyWidth := m.width - fixed - 16
	if bodyWidth < 20 {
		bodyWidth = 20
	}

	m.table.SetColumns([]table.Column{
		{Title: "#", Width: numberingWidth},
		{Title: "Lvl", Width: levelWidth},
		{Title: "Body", Width: bodyWidth},
		{Title: "Author", Width: authorWidth},
		{Title: "Date(UTC)", Width: dateWidth},
		{Title: "Score", Width: scoreWidth},
		{Title: "Up", Width: votesWidth},
		{Title: "Down", Width: votesWidth},
	})

	rows := make([]table.Row, 0, len(m.export.Records))
	for _, r := range m.export.Records {
		rows = append(rows, table.Row{
			r.Numbering,
			strconv.Itoa(r.Level),
			oneLine(r.Body),
			r.Author,
			thread.FormatTimestamp(r.Created, m.cfg.DateFormat),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Ups),
			strconv.Itoa(r.Downs),
		})
	}
	m.table.SetRows(rows)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "n":
			return m, m.sortBy(thread.ColNumbering, "numbering")
		case "t":
			return m, m.sortBy(thread.ColTimestamp, "timestamp")
		case "l":
			return m, m.sortBy(thread.ColLevel, "level")
		case "u":
			return m, m.sortBy(thread.ColUpvotes, "upvotes")
		case "d":
			return m, m.sortBy(thread.ColDownvotes, "downvotes")
		case "s":
			return m, m.sortBy(thread.ColScore, "score")
		case "b":
			return m, m.sortBy(thread.ColBody, "body")
		case "a":
			return m, m.sortBy(thread.ColAuthor, "author")
		case "c":
			return m, m.copyHTML()
		case "C":
			return m, m.copyCSV()
		case "w":
			return m, m.saveCSV()
		case "v":
			return m, func() tea.Msg { return messages.OpenTreeMsg{} }
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the table with the post header above it.
func (m Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), m.table.View())
}

func (m Model) renderHeader() string {
	post := m.export.Post
	var parts []string

	parts = append(parts, headerStyle.Render(post.Title))
	meta := fmt.Sprintf("by %s | %d points | %s | %d comments",
		post.Author, post.Score, render.TimeAgo(post.Created), len(m.export.Records))
	parts = append(parts, metaStyle.Render(meta))
	parts = append(parts, sepStyle.Render(strings.Repeat("─", max(m.width, 1))))
	parts = append(parts, hintStyle.Render(
		"sort: n:# t:time l:level u:up d:down s:score b:body a:author | c:copy HTML C:copy CSV w:write CSV v:tree"))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) sortBy(column, label string) tea.Cmd {
	dir := "ascending"
	if m.export.Descending() {
		dir = "descending"
	}
	m.export.Sort(column)
	m.refresh()
	return status(fmt.Sprintf("Sorted by %s, %s", label, dir), false)
}

func (m Model) options() export.Options {
	return export.Options{
		Compact:       m.cfg.Compact,
		StripNewlines: m.cfg.StripNewlines,
		DateFormat:    m.cfg.DateFormat,
	}
}

func (m Model) copyHTML() tea.Cmd {
	records, opts := m.export.Records, m.options()
	return func() tea.Msg {
		if err := export.CopyHTML(records, opts); err != nil {
			return messages.StatusMsg{Text: err.Error(), IsError: true}
		}
		return messages.StatusMsg{Text: "HTML table copied to clipboard"}
	}
}

func (m Model) copyCSV() tea.Cmd {
	records, opts := m.export.Records, m.options()
	return func() tea.Msg {
		if err := export.CopyCSV(records, opts); err != nil {
			return messages.StatusMsg{Text: err.Error(), IsError: true}
		}
		return messages.StatusMsg{Text: "CSV copied to clipboard"}
	}
}

func (m Model) saveCSV() tea.Cmd {
	records, opts := m.export.Records, m.options()
	path := export.DefaultFilename(m.export.Post)
	return func() tea.Msg {
		if err := export.WriteCSVFile(path, records, opts); err != nil {
			return messages.StatusMsg{Text: err.Error(), IsError: true}
		}
		return messages.StatusMsg{Text: "Wrote " + path}
	}
}

func status(text string, isError bool) tea.Cmd {
	return func() tea.Msg {
		return messages.StatusMsg{Text: text, IsError: isError}
	}
}

func oneLine(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}
