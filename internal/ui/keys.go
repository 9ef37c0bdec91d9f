package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings the app handles globally; each view keeps its
// own local keys.
type KeyMap struct {
	Quit    key.Binding
	Back    key.Binding
	Input   key.Binding
	Table   key.Binding
	Tree    key.Binding
	History key.Binding
}

var Keys = KeyMap{
	Quit:    key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Input:   key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "url")),
	Table:   key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "table")),
	Tree:    key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "tree")),
	History: key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "history")),
}
