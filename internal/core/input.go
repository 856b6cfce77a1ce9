package core

// Action represents a semantic game action, abstracted from physical key presses.
// Hosts translate keys and swipes into actions; the runner only sees intents.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // ArrowLeft, A - change to the left lane
	ActionRight          // ArrowRight, D - change to the right lane
	ActionJump           // ArrowUp, W, Space - jump
	ActionSlide          // ArrowDown, S - slide while held
	ActionPower          // Shift, Z - activate the character power
	ActionPause          // P, Escape - pause/unpause
	ActionRestart        // R - restart after game over
	ActionConfirm        // Enter - confirm selection in menus
	ActionBack           // B, C - back to character select
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionSlide:
		return "Slide"
	case ActionPower:
		return "Power"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsGameplay reports whether the action steers the runner during a run.
func (a Action) IsGameplay() bool {
	switch a {
	case ActionLeft, ActionRight, ActionJump, ActionSlide, ActionPower:
		return true
	}
	return false
}
