package config

import "testing"

func TestSpeedRamp(t *testing.T) {
	d := NewDifficultyManager(DefaultRunnerConfig().Speed)

	tests := []struct {
		score    float64
		expected float64
	}{
		{0, 5},
		{1000, 6.5},
		{10000, 20},
		{20000, 22},
		{1e9, 22},
	}

	for _, tc := range tests {
		if got := d.Speed(tc.score); got != tc.expected {
			t.Errorf("Speed(%v) = %v, expected %v", tc.score, got, tc.expected)
		}
	}
}

func TestSpeedRampMonotonic(t *testing.T) {
	d := NewDifficultyManager(DefaultRunnerConfig().Speed)
	prev := d.Speed(0)
	for score := 0.0; score < 30000; score += 37.5 {
		s := d.Speed(score)
		if s < prev {
			t.Fatalf("speed decreased at score %v: %v < %v", score, s, prev)
		}
		if s > d.Max() {
			t.Fatalf("speed %v exceeds max %v", s, d.Max())
		}
		prev = s
	}
}

func TestSpeedFixed(t *testing.T) {
	cfg := DefaultRunnerConfig().Speed
	cfg.Ramp = false
	d := NewDifficultyManager(cfg)
	if d.IsEnabled() {
		t.Error("ramp should be disabled")
	}
	if got := d.Speed(50000); got != cfg.Initial {
		t.Errorf("fixed speed = %v, expected %v", got, cfg.Initial)
	}
}

func TestBoosted(t *testing.T) {
	if got := Boosted(10, 4, 26); got != 14 {
		t.Errorf("Boosted(10) = %v, expected 14", got)
	}
	if got := Boosted(22, 4, 26); got != 26 {
		t.Errorf("Boosted(22) = %v, expected 26", got)
	}
	if got := Boosted(25, 4, 26); got != 26 {
		t.Errorf("Boosted(25) should clamp to the ceiling, got %v", got)
	}
}

func TestSpawnIntervalFloor(t *testing.T) {
	cfg := DefaultRunnerConfig()

	if got := SpawnInterval(cfg.Obstacles.Spawn, 5); got != 1900 {
		t.Errorf("obstacle interval at speed 5 = %v, expected 1900", got)
	}
	if got := SpawnInterval(cfg.Obstacles.Spawn, 22); got != 1100 {
		t.Errorf("obstacle interval at speed 22 = %v, expected floor 1100", got)
	}
	for speed := 0.0; speed <= 40; speed += 0.5 {
		if got := SpawnInterval(cfg.Obstacles.Spawn, speed); got < 1100 {
			t.Fatalf("obstacle interval %v below floor at speed %v", got, speed)
		}
		if got := SpawnInterval(cfg.Coins.Spawn, speed); got < 600 {
			t.Fatalf("coin interval %v below floor at speed %v", got, speed)
		}
	}
}
