package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/find-the-mouse/internal/core"
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Pick       key.Binding
	Dismiss    key.Binding
	Menu       key.Binding
	NewSession key.Binding
	Scores     key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pick, k.Dismiss, k.Menu, k.Scores, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pick, k.Dismiss},
		{k.Menu, k.NewSession, k.Scores},
		{k.Back, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Pick: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5"),
			key.WithHelp("1-5/click", "pick card"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("enter", " ", "o"),
			key.WithHelp("enter", "ok"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m", "/"),
			key.WithHelp("m", "new session (after game)"),
		),
		NewSession: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new session now"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a game input.
// Unbound keys map to ActionNone.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Input {
	switch {
	case key.Matches(msg, k.Quit):
		return core.Input{Action: core.ActionQuit}
	case key.Matches(msg, k.Pick):
		return core.Pick(int(msg.String()[0] - '1'))
	case key.Matches(msg, k.Dismiss):
		return core.Input{Action: core.ActionDismiss}
	case key.Matches(msg, k.Menu):
		return core.Input{Action: core.ActionMenu}
	case key.Matches(msg, k.NewSession):
		return core.Input{Action: core.ActionNewSession}
	case key.Matches(msg, k.Scores):
		return core.Input{Action: core.ActionScores}
	case key.Matches(msg, k.Back):
		return core.Input{Action: core.ActionBack}
	}
	return core.Input{Action: core.ActionNone}
}
