package core

// Action represents a semantic game action, abstracted from physical key presses
// and pointer events.
type Action int

const (
	ActionNone       Action = iota
	ActionPressStart        // Jump input went down (mouse down, key, touch start)
	ActionPressEnd          // Jump input went up
	ActionStart             // Leave the start screen and begin a run
	ActionAdopt             // Adopt the final colors as the host theme
	ActionRestart           // Rebuild the game and run again
	ActionClose             // Close the game without adopting anything
	ActionQuit              // Exit the program
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPressStart:
		return "PressStart"
	case ActionPressEnd:
		return "PressEnd"
	case ActionStart:
		return "Start"
	case ActionAdopt:
		return "Adopt"
	case ActionRestart:
		return "Restart"
	case ActionClose:
		return "Close"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input latched between two simulation frames.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether no action is set.
func (f InputFrame) Empty() bool {
	for _, on := range f.Actions {
		if on {
			return false
		}
	}
	return true
}
