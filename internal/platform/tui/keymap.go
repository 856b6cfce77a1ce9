package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lane-runner/internal/core"
)

// KeyMapper translates Bubble Tea key messages into engine key codes and
// host actions. This centralizes key bindings and makes them testable.
type KeyMapper struct {
	codes map[string]string
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		codes: map[string]string{
			"left":  "ArrowLeft",
			"a":     "KeyA",
			"right": "ArrowRight",
			"d":     "KeyD",
			"up":    "ArrowUp",
			"w":     "KeyW",
			" ":     "Space",
			"down":  "ArrowDown",
			"s":     "KeyS",
			"z":     "KeyZ",
			"x":     "KeyZ",
		},
	}
}

// EngineCode returns the engine key code for a gameplay key, or "".
func (km *KeyMapper) EngineCode(msg tea.KeyMsg) string {
	return km.codes[msg.String()]
}

// MapKey translates a key message to a host action. Gameplay keys return
// ActionNone; use EngineCode for those.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "b", "c":
		return core.ActionBack, false
	case "enter":
		return core.ActionConfirm, false
	}
	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action. Left and right
// move too, since the character grid is laid out in a row.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k", "left", "h", "a":
		return MenuActionUp
	case "s", "down", "j", "right", "l", "d":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
