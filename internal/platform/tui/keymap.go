package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/reone-boardgame/palette-roulette/internal/core"
	"github.com/reone-boardgame/palette-roulette/internal/runner"
)

// KeyMap defines the key bindings for the runner.
type KeyMap struct {
	Start    key.Binding
	Jump     key.Binding
	LongJump key.Binding
	Adopt    key.Binding
	Restart  key.Binding
	Close    key.Binding
	Quit     key.Binding

	phase runner.Phase // selects which bindings the help view shows
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Start: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space/enter", "start"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "jump"),
		),
		LongJump: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "high jump"),
		),
		Adopt: key.NewBinding(
			key.WithKeys("a", "enter"),
			key.WithHelp("a/enter", "use colors"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "run again"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ForPhase returns a copy whose help shows the bindings relevant to phase.
func (k KeyMap) ForPhase(p runner.Phase) KeyMap {
	k.phase = p
	return k
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	switch k.phase {
	case runner.PhaseRunning:
		return []key.Binding{k.Jump, k.LongJump, k.Restart, k.Quit}
	case runner.PhaseGameOver:
		return []key.Binding{k.Adopt, k.Restart, k.Close, k.Quit}
	default:
		return []key.Binding{k.Start, k.Close, k.Quit}
	}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Jump, k.LongJump},
		{k.Adopt, k.Restart, k.Close, k.Quit},
	}
}

// Intent is what a key means in the current phase.
type Intent int

const (
	IntentNone Intent = iota
	IntentTap         // press and release at once
	IntentHold        // press now, release after the hold timer
	IntentAction      // a core.Action to apply
	IntentQuit
)

// MapKey translates a key message to an intent for the given phase. For
// IntentAction the action is returned as well.
func (k KeyMap) MapKey(msg tea.KeyMsg, phase runner.Phase) (Intent, core.Action) {
	if key.Matches(msg, k.Quit) {
		return IntentQuit, core.ActionQuit
	}

	switch phase {
	case runner.PhaseStart:
		switch {
		case key.Matches(msg, k.Start):
			return IntentAction, core.ActionStart
		case key.Matches(msg, k.Close):
			return IntentAction, core.ActionClose
		}
	case runner.PhaseRunning:
		switch {
		case key.Matches(msg, k.LongJump):
			return IntentHold, core.ActionPressStart
		case key.Matches(msg, k.Jump):
			return IntentTap, core.ActionPressStart
		case key.Matches(msg, k.Restart):
			return IntentAction, core.ActionRestart
		}
	case runner.PhaseGameOver:
		switch {
		case key.Matches(msg, k.Adopt):
			return IntentAction, core.ActionAdopt
		case key.Matches(msg, k.Restart):
			return IntentAction, core.ActionRestart
		case key.Matches(msg, k.Close):
			return IntentAction, core.ActionClose
		}
	}
	return IntentNone, core.ActionNone
}
