package urlbar

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"threadex/internal/config"
	"threadex/internal/ui/messages"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4500")).Bold(true).
			Padding(1, 0)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Bold(true)
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#828282"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4500"))
	prefOnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00CC66"))
	prefOffStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

// Model is the thread URL entry form with the export preferences.
type Model struct {
	urlInput  textinput.Model
	err       string
	exporting bool
	cfg       config.Config
	width     int
	height    int
}

// New creates the URL entry form.
func New(cfg config.Config) Model {
	urlInput := textinput.New()
	urlInput.Placeholder = "https://www.reddit.com/r/.../comments/..."
	urlInput.Focus()
	urlInput.Width = 70

	return Model{
		urlInput: urlInput,
		cfg:      cfg,
	}
}

// SetSize sets the viewport dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// SetConfig refreshes the preference display after the app changes one.
func (m *Model) SetConfig(cfg config.Config) {
	m.cfg = cfg
}

// SetExporting toggles the in-flight indicator.
func (m *Model) SetExporting(on bool) {
	m.exporting = on
}

// SetError shows a fetch error under the input.
func (m *Model) SetError(err string) {
	m.err = err
	m.exporting = false
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			url := strings.TrimSpace(m.urlInput.Value())
			if url == "" {
				// No URL: prompt, never invoke the pipeline.
				m.err = "Enter a Reddit thread URL first"
				return m, nil
			}
			m.err = ""
			m.exporting = true
			return m, func() tea.Msg { return messages.StartExportMsg{URL: url} }
		case "ctrl+f":
			return m, func() tea.Msg { return messages.CycleDateFormatMsg{} }
		case "ctrl+k":
			return m, func() tea.Msg { return messages.ToggleCompactMsg{} }
		case "ctrl+n":
			return m, func() tea.Msg { return messages.ToggleStripNewlinesMsg{} }
		case "ctrl+t":
			return m, func() tea.Msg { return messages.OpenTableMsg{} }
		case "ctrl+h":
			return m, func() tea.Msg { return messages.OpenHistoryMsg{} }
		}
	}

	var cmd tea.Cmd
	m.urlInput, cmd = m.urlInput.Update(msg)
	return m, cmd
}

// View renders the form.
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("threadex — export a Reddit thread"))
	sb.WriteString("\n\n")
	sb.WriteString(labelStyle.Render("Thread URL:"))
	sb.WriteString("\n")
	sb.WriteString(m.urlInput.View())
	sb.WriteString("\n\n")

	sb.WriteString(labelStyle.Render("Options:"))
	sb.WriteString("\n")
	sb.WriteString(hintStyle.Render("ctrl+f date format: ") + prefOnStyle.Render(string(m.cfg.DateFormat)))
	sb.WriteString("\n")
	sb.WriteString(hintStyle.Render("ctrl+k compact CSV: ") + onOff(m.cfg.Compact))
	sb.WriteString("\n")
	sb.WriteString(hintStyle.Render("ctrl+n strip newlines: ") + onOff(m.cfg.StripNewlines))
	sb.WriteString("\n\n")

	if m.err != "" {
		sb.WriteString(errorStyle.Render(m.err))
		sb.WriteString("\n\n")
	}

	if m.exporting {
		sb.WriteString("Exporting...")
	} else {
		sb.WriteString(focusedStyle.Render("Enter") + hintStyle.Render(" to export"))
		sb.WriteString(hintStyle.Render("   ctrl+t table   ctrl+h history"))
	}

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, sb.String())
}

func onOff(b bool) string {
	if b {
		return prefOnStyle.Render("on")
	}
	return prefOffStyle.Render("off")
}
