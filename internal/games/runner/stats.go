package runner

import (
	"math"

	"github.com/vovakirdan/lane-runner/internal/config"
)

// EngineState is the lifecycle state of a run.
type EngineState int

const (
	EngineIdle EngineState = iota
	EnginePlaying
	EngineDying
	EngineDead
)

func (s EngineState) String() string {
	switch s {
	case EngineIdle:
		return "idle"
	case EnginePlaying:
		return "playing"
	case EngineDying:
		return "dying"
	case EngineDead:
		return "dead"
	default:
		return "unknown"
	}
}

// GameStats is the engine-owned aggregate of a run. Hosts only ever
// receive copies.
type GameStats struct {
	Score             float64
	Coins             int
	Distance          int
	Combo             int
	Multiplier        float64
	Speed             float64
	State             EngineState
	CollectedCoinIDs  []int
	SessionCoins      int // Coins since the last batch
	TotalSessionCoins int
	HighScore         float64
}

// Clone returns a deep copy.
func (s GameStats) Clone() GameStats {
	out := s
	out.CollectedCoinIDs = append([]int(nil), s.CollectedCoinIDs...)
	return out
}

// Multiplier returns the score multiplier for a combo: one step per
// ComboStep collections, capped.
func Multiplier(combo int, cfg config.ScoringConfig) float64 {
	steps := math.Floor(float64(combo) / float64(cfg.ComboStep))
	return math.Min(1+steps*cfg.MultiplierStep, cfg.MultiplierCap)
}
