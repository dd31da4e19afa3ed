package runner

import "github.com/reone-boardgame/palette-roulette/internal/palette"

// Wire names of host events.
const (
	EventScrollUpdate = "scrollUpdate"
	EventGameEnded    = "gameEnded"
	EventSetTheme     = "setThemeColors"
	EventCloseModal   = "closeGameModal"
)

// HostChannel is the one-way outbound port to whatever embeds the game.
// Delivery is fire-and-forget; there is no acknowledgement.
type HostChannel interface {
	Send(Event)
}

// HostFunc adapts a function to HostChannel.
type HostFunc func(Event)

// Send calls f(e).
func (f HostFunc) Send(e Event) { f(e) }

type nopHost struct{}

func (nopHost) Send(Event) {}

// Event is a message for the host. The set of events is closed.
type Event interface {
	Type() string
	hostEvent()
}

// ScrollUpdate is sent every running frame so the host can scroll its own
// background at the game's pace.
type ScrollUpdate struct {
	BottomSpeed float64
	TopSpeed    float64
}

// GameEnded carries the final score and the colors resolved at game over.
type GameEnded struct {
	Score   int
	Main    palette.RGB // from the bottom (ground) accumulator
	Sub     palette.RGB // from the top (cloud) accumulator
	MarkerX float64
	Cause   Cause
}

// ThemeAdopted asks the host to use the final colors as its theme.
type ThemeAdopted struct {
	Main palette.RGB
	Sub  palette.RGB
}

// ModalCloseRequested asks the host to close the game.
type ModalCloseRequested struct{}

func (ScrollUpdate) Type() string { return EventScrollUpdate }
func (GameEnded) Type() string { return EventGameEnded }
func (ThemeAdopted) Type() string { return EventSetTheme }
func (ModalCloseRequested) Type() string { return EventCloseModal }

func (ScrollUpdate) hostEvent() {}
func (GameEnded) hostEvent() {}
func (ThemeAdopted) hostEvent() {}
func (ModalCloseRequested) hostEvent() {}
