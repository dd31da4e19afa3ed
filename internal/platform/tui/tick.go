// Package tui provides the Bubble Tea front-end for the runner.
// It handles the terminal UI loop, input mapping and frame scheduling.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one game frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that requests the next frame.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// releaseMsg ends a keyboard hold. Terminals report key presses but not
// releases, so a held jump is released on a timer.
type releaseMsg struct {
	id int
}

func releaseCmd(id int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return releaseMsg{id: id}
	})
}
