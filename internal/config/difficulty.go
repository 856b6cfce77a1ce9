package config

import "math"

// DifficultyManager calculates speed and spawn pacing from the score.
type DifficultyManager struct {
	cfg SpeedConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg SpeedConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether the speed ramp is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Ramp
}

// Initial returns the run's starting speed.
func (d *DifficultyManager) Initial() float64 {
	return d.cfg.Initial
}

// Max returns the ramp ceiling (boosts excluded).
func (d *DifficultyManager) Max() float64 {
	return d.cfg.Max
}

// Speed returns the ramped speed for a cumulative score, capped at Max.
// Scores never decrease within a run, so neither does the result.
func (d *DifficultyManager) Speed(score float64) float64 {
	if !d.cfg.Ramp || score <= 0 {
		return math.Min(d.cfg.Initial, d.cfg.Max)
	}
	return math.Min(d.cfg.Initial+score*d.cfg.PerScore, d.cfg.Max)
}

// Boosted returns speed raised by amount, never above the absolute ceiling.
func Boosted(speed, amount, ceiling float64) float64 {
	return math.Min(speed+amount, ceiling)
}

// SpawnInterval returns max(floor, base - speed*decay) in milliseconds.
func SpawnInterval(t SpawnTiming, speed float64) float64 {
	return math.Max(t.FloorMs, t.BaseMs-speed*t.DecayPerSpeed)
}
