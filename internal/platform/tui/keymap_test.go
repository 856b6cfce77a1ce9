package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/games/runner"
)

func TestEngineCode(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{runeKey("a"), core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{runeKey("d"), core.ActionRight},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump},
		{tea.KeyMsg{Type: tea.KeySpace}, core.ActionJump},
		{runeKey("w"), core.ActionJump},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionSlide},
		{runeKey("s"), core.ActionSlide},
		{runeKey("z"), core.ActionPower},
		{runeKey("x"), core.ActionPower},
		{runeKey("p"), core.ActionNone},
	}
	for _, tc := range tests {
		code := km.EngineCode(tc.msg)
		if got := runner.ActionForKey(code); got != tc.want {
			t.Errorf("%q: code %q maps to %v, expected %v", tc.msg.String(), code, got, tc.want)
		}
	}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg      tea.KeyMsg
		want     core.Action
		wantQuit bool
	}{
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{runeKey("q"), core.ActionQuit, true},
		{runeKey("p"), core.ActionPause, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{runeKey("r"), core.ActionRestart, false},
		{runeKey("c"), core.ActionBack, false},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionNone, false},
	}
	for _, tc := range tests {
		got, quit := km.MapKey(tc.msg)
		if got != tc.want || quit != tc.wantQuit {
			t.Errorf("%q: got (%v, %v), expected (%v, %v)", tc.msg.String(), got, quit, tc.want, tc.wantQuit)
		}
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyLeft}, MenuActionUp},
		{runeKey("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyRight}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeySpace}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey("q"), MenuActionQuit},
		{runeKey("z"), MenuActionNone},
	}
	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.want {
			t.Errorf("%q: got %v, expected %v", tc.msg.String(), got, tc.want)
		}
	}
}
