package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lane-runner/internal/storage"
)

// Ledger receives finished runs and their coin batches. Calls happen from
// tea.Cmds, never inside a frame.
type Ledger interface {
	SubmitRun(r storage.RunResult) (string, error)
	RecordCoinBatch(runID string, count int) error
	HighScore(character int) (float64, error)
}

var _ Ledger = (*storage.Store)(nil)

// runSubmittedMsg reports the outcome of a ledger submission.
type runSubmittedMsg struct {
	runID   string
	batches int
	err     error
}

// submitRunCmd records the queued coin batches and then the run itself.
func submitRunCmd(ledger Ledger, run storage.RunResult, batches []int) tea.Cmd {
	if ledger == nil {
		return nil
	}
	queued := append([]int(nil), batches...)
	return func() tea.Msg {
		for _, n := range queued {
			if err := ledger.RecordCoinBatch(run.ID, n); err != nil {
				return runSubmittedMsg{runID: run.ID, err: err}
			}
		}
		id, err := ledger.SubmitRun(run)
		return runSubmittedMsg{runID: id, batches: len(queued), err: err}
	}
}
