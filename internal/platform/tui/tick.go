// Package tui hosts the lane runner in a terminal with Bubble Tea.
// It owns the frame schedule, maps keys to engine input and reports finished
// runs to the scoring ledger.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// slideRelease is how long a slide stays held after the last down key.
// Terminals report no key-up, so the host synthesizes one.
const slideRelease = 150 * time.Millisecond

// TickMsg is sent to trigger an engine frame.
type TickMsg time.Time

// slideReleaseMsg fires when a held slide may be released. Seq matches the
// press that armed it; newer presses invalidate older timers.
type slideReleaseMsg struct {
	seq int
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func slideReleaseCmd(seq int) tea.Cmd {
	return tea.Tick(slideRelease, func(time.Time) tea.Msg {
		return slideReleaseMsg{seq: seq}
	})
}
