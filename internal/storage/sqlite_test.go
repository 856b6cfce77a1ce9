package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestSubmitAndRetrieveRun(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SubmitRun(RunResult{Character: 2, Score: 1234.5, Coins: 17, Distance: 900})
	if err != nil {
		t.Fatalf("SubmitRun() failed: %v", err)
	}
	if len(id) != 36 {
		t.Errorf("expected a uuid run id, got %q", id)
	}

	run, err := store.Run(id)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if run == nil {
		t.Fatal("run not found")
	}
	if run.Character != 2 || run.Score != 1234.5 || run.Coins != 17 || run.Distance != 900 {
		t.Errorf("unexpected run %+v", run)
	}

	missing, err := store.Run("nope")
	if err != nil || missing != nil {
		t.Errorf("missing run: got %v, %v", missing, err)
	}
}

func TestSubmitRunTwiceFails(t *testing.T) {
	store := openTestStore(t)
	id := NewRunID()
	if _, err := store.SubmitRun(RunResult{ID: id, Score: 1}); err != nil {
		t.Fatal(err)
	}
	if _, err := store.SubmitRun(RunResult{ID: id, Score: 2}); err == nil {
		t.Error("expected duplicate run id to fail")
	}
}

func TestCoinBatches(t *testing.T) {
	store := openTestStore(t)
	runID := NewRunID()

	for _, n := range []int{5, 5, 2, 0} {
		if err := store.RecordCoinBatch(runID, n); err != nil {
			t.Fatalf("RecordCoinBatch() failed: %v", err)
		}
	}

	total, err := store.BatchedCoins(runID)
	if err != nil {
		t.Fatal(err)
	}
	if total != 12 {
		t.Errorf("batched coins = %d, expected 12", total)
	}

	empty, err := store.BatchedCoins(NewRunID())
	if err != nil || empty != 0 {
		t.Errorf("unknown run: %d, %v", empty, err)
	}
}

func TestTopRuns(t *testing.T) {
	store := openTestStore(t)

	for i, score := range []float64{100, 50, 200} {
		if _, err := store.SubmitRun(RunResult{Character: 1, Score: score, Coins: i}); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := store.SubmitRun(RunResult{Character: 4, Score: 500}); err != nil {
		t.Fatal(err)
	}

	runs, err := store.TopRuns(1, 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(runs))
	}
	if runs[0].Score != 200 || runs[1].Score != 100 || runs[2].Score != 50 {
		t.Errorf("runs not in expected order: %v", runs)
	}

	all, err := store.TopRuns(AllCharacters, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 || all[0].Score != 500 || all[1].Score != 200 {
		t.Errorf("unexpected top runs across characters: %v", all)
	}
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore(0)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("expected 0 without runs, got %v", high)
	}

	store.SubmitRun(RunResult{Character: 0, Score: 100})
	store.SubmitRun(RunResult{Character: 0, Score: 300})
	store.SubmitRun(RunResult{Character: 3, Score: 900})

	tests := []struct {
		character int
		want      float64
	}{
		{0, 300},
		{3, 900},
		{5, 0},
		{AllCharacters, 900},
	}
	for _, tc := range tests {
		got, err := store.HighScore(tc.character)
		if err != nil {
			t.Fatal(err)
		}
		if got != tc.want {
			t.Errorf("HighScore(%d) = %v, expected %v", tc.character, got, tc.want)
		}
	}
}

func TestClearRuns(t *testing.T) {
	store := openTestStore(t)

	keep, _ := store.SubmitRun(RunResult{Character: 1, Score: 10})
	drop, _ := store.SubmitRun(RunResult{Character: 2, Score: 20})
	store.RecordCoinBatch(keep, 5)
	store.RecordCoinBatch(drop, 5)

	if err := store.ClearRuns(2); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	if runs, _ := store.TopRuns(2, 10); len(runs) != 0 {
		t.Errorf("expected character 2 to be cleared, got %d runs", len(runs))
	}
	if n, _ := store.BatchedCoins(drop); n != 0 {
		t.Errorf("batches of cleared run remain: %d", n)
	}
	if n, _ := store.BatchedCoins(keep); n != 5 {
		t.Errorf("batches of kept run lost: %d", n)
	}

	if err := store.ClearRuns(AllCharacters); err != nil {
		t.Fatal(err)
	}
	if runs, _ := store.TopRuns(AllCharacters, 10); len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestCharacterStats(t *testing.T) {
	store := openTestStore(t)

	store.SubmitRun(RunResult{Character: 1, Score: 100, Coins: 4})
	store.SubmitRun(RunResult{Character: 1, Score: 300, Coins: 6})
	store.SubmitRun(RunResult{Character: 5, Score: 50, Coins: 1})

	stats, err := store.CharacterStats()
	if err != nil {
		t.Fatalf("CharacterStats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("expected stats for 2 characters, got %d", len(stats))
	}

	s := stats[1]
	if s.Runs != 2 || s.HighScore != 300 || s.AvgScore != 200 || s.TotalCoins != 10 {
		t.Errorf("unexpected stats %+v", s)
	}
	if s.LastPlayed.IsZero() {
		t.Error("last played not set")
	}
}
