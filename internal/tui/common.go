// Package tui holds the terminal presentation pieces shared by the prompt
// tools: styles, TTY detection, the list picker and markdown rendering.
package tui

import (
	"errors"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// ErrNotTTY is returned when an interactive view is requested without a terminal.
var ErrNotTTY = errors.New("interactive picker requires a terminal")

// IsTTY returns true if stdout is connected to a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// IsTerminalWriter reports whether w is stdout attached to a terminal. Output
// going anywhere else (buffers, pipes, files) is never styled.
func IsTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && f == os.Stdout && IsTTY()
}

// Run starts a Bubble Tea program with the given model in the alternate
// screen and returns the final model. It refuses to start without a TTY.
func Run(m tea.Model) (tea.Model, error) {
	if !IsTTY() {
		return nil, ErrNotTTY
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	return p.Run()
}
