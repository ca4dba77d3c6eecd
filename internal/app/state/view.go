// Package state holds the immutable view state of the browser.
package state

// Mode selects how keystrokes are interpreted.
type Mode int

// Input modes.
const (
	ModeNavigation Mode = iota
	ModeCommand
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeNavigation:
		return "navigation"
	case ModeCommand:
		return "command"
	default:
		return "unknown"
	}
}

// ViewState holds UI-related state for the model.
type ViewState struct {
	Mode         Mode
	ShowHelp     bool
	Rejecting    bool // a rejected command is on screen; input is dropped
	WindowWidth  int
	WindowHeight int
}
