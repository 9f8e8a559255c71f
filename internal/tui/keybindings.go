package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the picker's own key bindings. Cursor movement is left to
// the list's default bindings.
type KeyMap struct {
	Choose key.Binding
	Quit   key.Binding
}

// DefaultKeyMap provides the default picker key bindings.
var DefaultKeyMap = KeyMap{
	Choose: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "show prompt"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q/esc", "quit"),
	),
}
