package runner

import (
	"math"

	"github.com/vovakirdan/lane-runner/internal/core"
)

// keyBindings maps browser-style key codes to actions.
var keyBindings = map[string]core.Action{
	"ArrowLeft":  core.ActionLeft,
	"KeyA":       core.ActionLeft,
	"ArrowRight": core.ActionRight,
	"KeyD":       core.ActionRight,
	"ArrowUp":    core.ActionJump,
	"KeyW":       core.ActionJump,
	"Space":      core.ActionJump,
	"ArrowDown":  core.ActionSlide,
	"KeyS":       core.ActionSlide,
	"ShiftLeft":  core.ActionPower,
	"ShiftRight": core.ActionPower,
	"KeyZ":       core.ActionPower,
}

// ActionForKey returns the action bound to a key code, or ActionNone.
func ActionForKey(code string) core.Action {
	if a, ok := keyBindings[code]; ok {
		return a
	}
	return core.ActionNone
}

// inputState tracks held keys so auto-repeat does not re-trigger actions.
type inputState struct {
	attached bool
	pressed  map[string]bool
}

func newInputState() inputState {
	return inputState{pressed: make(map[string]bool)}
}

func (in *inputState) attach() {
	in.attached = true
}

func (in *inputState) detach() {
	in.attached = false
	clear(in.pressed)
}

// KeyDown handles a key press. Repeats of a key that is still held are ignored.
func (e *Engine) KeyDown(code string) {
	if !e.input.attached || e.input.pressed[code] {
		return
	}
	e.input.pressed[code] = true
	e.Apply(ActionForKey(code))
}

// KeyUp handles a key release. Releasing a slide key stands the player up
// immediately, between frames.
func (e *Engine) KeyUp(code string) {
	if !e.input.attached {
		return
	}
	delete(e.input.pressed, code)
	if ActionForKey(code) == core.ActionSlide && e.player != nil {
		e.player.EndSlide()
	}
}

// Swipe translates a touch drag into a directional action. Drags shorter
// than the swipe threshold are ignored.
func (e *Engine) Swipe(dx, dy float64) {
	if !e.input.attached {
		return
	}
	t := e.cfg.Engine.SwipeThreshold
	if math.Abs(dx) > math.Abs(dy) {
		switch {
		case dx < -t:
			e.Apply(core.ActionLeft)
		case dx > t:
			e.Apply(core.ActionRight)
		}
		return
	}
	switch {
	case dy < -t:
		e.Apply(core.ActionJump)
	case dy > t:
		e.Apply(core.ActionSlide)
	}
}

// Apply performs a gameplay action on the player. Anything outside a
// playing run is ignored.
func (e *Engine) Apply(a core.Action) {
	if e.state != EnginePlaying || e.player == nil || !e.input.attached {
		return
	}
	switch a {
	case core.ActionLeft:
		e.player.MoveLeft()
	case core.ActionRight:
		e.player.MoveRight()
	case core.ActionJump:
		e.player.Jump()
	case core.ActionSlide:
		e.player.StartSlide()
	case core.ActionPower:
		e.activatePower()
	}
}
