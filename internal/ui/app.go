package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"threadex/internal/api"
	"threadex/internal/cache"
	"threadex/internal/config"
	"threadex/internal/thread"
	"threadex/internal/ui/historylist"
	"threadex/internal/ui/messages"
	"threadex/internal/ui/statusbar"
	"threadex/internal/ui/tableview"
	"threadex/internal/ui/treeview"
	"threadex/internal/ui/urlbar"
)

// View identifies which child model owns the screen.
type View int

const (
	ViewInput View = iota
	ViewTable
	ViewTree
	ViewHistory
)

// App is the root model. It owns the config, the export session and the
// view stack; child views talk to it with messages, never to each other.
type App struct {
	cfg    config.Config
	client *api.Client
	cache  *cache.DB

	export *thread.Export

	// generation counts export requests. A fetch result tagged with an
	// older generation lost the race to a newer request and is dropped.
	generation int

	view     View
	prevView View

	urlbar  urlbar.Model
	table   tableview.Model
	tree    treeview.Model
	history historylist.Model
	status  statusbar.Model

	width  int
	height int
}

// NewApp wires the root model together.
func NewApp(cfg config.Config, client *api.Client, db *cache.DB) App {
	a := App{
		cfg:     cfg,
		client:  client,
		cache:   db,
		view:    ViewInput,
		urlbar:  urlbar.New(cfg),
		history: historylist.New(),
		status:  statusbar.New(),
	}
	a.status.SetPrefs(prefSummary(cfg))
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.resize()
		return a, nil

	case tea.KeyMsg:
		if cmd, handled := a.handleGlobalKey(msg); handled {
			return a, cmd
		}

	case messages.StartExportMsg:
		return a.startExport(msg.URL)

	case messages.ThreadLoadedMsg:
		return a.threadLoaded(msg)

	case messages.OpenTableMsg:
		if a.export != nil {
			a.switchView(ViewTable)
		}
		return a, nil

	case messages.OpenTreeMsg:
		if a.export != nil {
			a.tree = treeview.New(a.export)
			a.switchView(ViewTree)
			a.resize()
		}
		return a, nil

	case messages.OpenHistoryMsg:
		a.loadHistory()
		return a, nil

	case messages.CycleDateFormatMsg:
		a.cfg.DateFormat = nextDateFormat(a.cfg.DateFormat)
		a.applyConfig()
		return a, nil

	case messages.ToggleCompactMsg:
		a.cfg.Compact = !a.cfg.Compact
		a.applyConfig()
		return a, nil

	case messages.ToggleStripNewlinesMsg:
		a.cfg.StripNewlines = !a.cfg.StripNewlines
		a.applyConfig()
		return a, nil

	case messages.StatusMsg:
		a.status.SetStatus(msg.Text, msg.IsError)
		return a, nil
	}

	return a.updateChild(msg)
}

// View implements tea.Model.
func (a App) View() string {
	var body string
	switch a.view {
	case ViewInput:
		body = a.urlbar.View()
	case ViewTable:
		body = a.table.View()
	case ViewTree:
		body = a.tree.View()
	case ViewHistory:
		body = a.history.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, a.status.View())
}

// handleGlobalKey handles keys that work in every view. Returns handled
// false when the key should fall through to the active child, which it
// must while a text input is capturing keystrokes.
func (a *App) handleGlobalKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if msg.String() == "ctrl+c" {
		return tea.Quit, true
	}

	typing := a.view == ViewInput || (a.view == ViewHistory && a.history.Filtering())
	if typing {
		return nil, false
	}

	switch {
	case key.Matches(msg, Keys.Quit):
		return tea.Quit, true
	case key.Matches(msg, Keys.Back):
		a.switchView(a.prevView)
		return nil, true
	case key.Matches(msg, Keys.Input):
		a.switchView(ViewInput)
		return nil, true
	case key.Matches(msg, Keys.Table):
		if a.export != nil {
			a.switchView(ViewTable)
		} else {
			a.status.SetStatus("No thread exported yet", true)
		}
		return nil, true
	case key.Matches(msg, Keys.Tree):
		if a.export != nil {
			a.tree = treeview.New(a.export)
			a.switchView(ViewTree)
			a.resize()
		} else {
			a.status.SetStatus("No thread exported yet", true)
		}
		return nil, true
	case key.Matches(msg, Keys.History):
		a.loadHistory()
		return nil, true
	}

	return nil, false
}

func (a *App) loadHistory() {
	entries, err := a.cache.History()
	if err != nil {
		a.status.SetStatus("history: "+err.Error(), true)
		return
	}
	a.history.SetEntries(entries)
	a.switchView(ViewHistory)
}

// startExport kicks off a fetch for a URL. The previous session stays
// visible until the new one lands.
func (a App) startExport(url string) (tea.Model, tea.Cmd) {
	a.generation++
	gen := a.generation
	a.urlbar.SetExporting(true)
	a.status.SetStatus("Fetching "+url, false)

	client, db, timeout := a.client, a.cache, a.cfg.Timeout
	return a, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		normalized, err := api.NormalizeThreadURL(url)
		if err != nil {
			return messages.ThreadLoadedMsg{Generation: gen, URL: url, Err: err}
		}

		// Session store first; a repeat of a URL never refetches.
		if payload, err := db.GetThread(normalized); err == nil && payload != nil {
			t, err := api.ParseThread(payload)
			if err == nil {
				exp := thread.NewExport(t.Post, t.Nodes)
				return messages.ThreadLoadedMsg{Generation: gen, URL: normalized, Export: exp}
			}
		}

		t, payload, err := client.GetThread(ctx, url)
		if err != nil {
			return messages.ThreadLoadedMsg{Generation: gen, URL: url, Err: err}
		}
		exp := thread.NewExport(t.Post, t.Nodes)
		if err := db.PutThread(normalized, t.Post.Title, len(exp.Records), payload); err != nil {
			return messages.ThreadLoadedMsg{Generation: gen, URL: normalized, Export: exp,
				Err: fmt.Errorf("caching thread: %w", err)}
		}
		return messages.ThreadLoadedMsg{Generation: gen, URL: normalized, Export: exp}
	}
}

func (a App) threadLoaded(msg messages.ThreadLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Generation != a.generation {
		// A newer request superseded this one.
		return a, nil
	}
	a.urlbar.SetExporting(false)

	if msg.Export == nil {
		a.urlbar.SetError(msg.Err.Error())
		a.status.SetStatus(msg.Err.Error(), true)
		return a, nil
	}
	if msg.Err != nil {
		a.status.SetStatus(msg.Err.Error(), true)
	} else {
		a.status.SetStatus(fmt.Sprintf("Exported %d comments", len(msg.Export.Records)), false)
	}

	a.export = msg.Export
	a.table = tableview.New(a.cfg, a.export)
	a.switchView(ViewTable)
	a.resize()
	return a, nil
}

func (a *App) switchView(v View) {
	if v == a.view {
		return
	}
	a.prevView = a.view
	a.view = v
	a.status.SetActiveTab(int(v))
}

func (a *App) applyConfig() {
	a.urlbar.SetConfig(a.cfg)
	if a.export != nil {
		a.table.SetConfig(a.cfg)
	}
	a.status.SetPrefs(prefSummary(a.cfg))
}

func (a *App) resize() {
	if a.width == 0 {
		return
	}
	bodyHeight := a.height - 1
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	a.urlbar.SetSize(a.width, bodyHeight)
	a.history.SetSize(a.width, bodyHeight)
	a.status.SetSize(a.width)
	if a.export != nil {
		a.table.SetSize(a.width, bodyHeight)
		if a.view == ViewTree {
			a.tree.SetSize(a.width, bodyHeight)
		}
	}
}

func (a App) updateChild(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.view {
	case ViewInput:
		a.urlbar, cmd = a.urlbar.Update(msg)
	case ViewTable:
		a.table, cmd = a.table.Update(msg)
	case ViewTree:
		a.tree, cmd = a.tree.Update(msg)
	case ViewHistory:
		a.history, cmd = a.history.Update(msg)
	}
	return a, cmd
}

func nextDateFormat(f thread.DateFormat) thread.DateFormat {
	switch f {
	case thread.DateISO8601:
		return thread.DateRFC1123
	case thread.DateRFC1123:
		return thread.DateUTC
	default:
		return thread.DateISO8601
	}
}

func prefSummary(cfg config.Config) string {
	s := string(cfg.DateFormat)
	if cfg.Compact {
		s += " compact"
	}
	if cfg.StripNewlines {
		s += " strip-nl"
	}
	return s
}
