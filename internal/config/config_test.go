package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded yaml does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultRunnerConfig()) {
		t.Errorf("embedded yaml drifted from DefaultRunnerConfig()\nyaml: %+v\ncode: %+v", cfg, DefaultRunnerConfig())
	}
}

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultRunnerConfig().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestValidateRejectsBadLaneCount(t *testing.T) {
	cfg := DefaultRunnerConfig()
	cfg.Lanes.Count = 4
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for 4 lanes")
	}
}

func TestValidateRejectsLowBoostCap(t *testing.T) {
	cfg := DefaultRunnerConfig()
	cfg.Power.BoostCap = cfg.Speed.Max - 1
	if err := cfg.Validate(); err == nil {
		t.Error("expected error when boost cap is below the ramp max")
	}
}

func TestLoadRunnerCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	data := []byte("speed:\n  initial: 6\nscoring:\n  batch_size: 3\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}
	if cfg.Speed.Initial != 6 {
		t.Errorf("speed.initial = %v, expected 6", cfg.Speed.Initial)
	}
	if cfg.Scoring.BatchSize != 3 {
		t.Errorf("scoring.batch_size = %d, expected 3", cfg.Scoring.BatchSize)
	}
	// Untouched keys keep their defaults
	if cfg.Obstacles.Spawn.FloorMs != 1100 {
		t.Errorf("obstacles.spawn.floor_ms = %v, expected default 1100", cfg.Obstacles.Spawn.FloorMs)
	}
}

func TestLoadRunnerMissingCustomPath(t *testing.T) {
	_, err := LoadRunner(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("expected error for a missing custom config")
	}
}

func TestLoadRunnerInvalidCustomConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	if err := os.WriteFile(path, []byte("lanes:\n  count: 5\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRunner(path); err == nil {
		t.Error("expected validation error")
	}
}

func TestApplyRunnerPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		ramp        bool
		initial     float64
		maxAtLeast  float64
	}{
		{DifficultyEasy, true, 4, 22},
		{DifficultyNormal, true, 5, 22},
		{DifficultyHard, true, 7, 22},
		{DifficultyFixed, false, 5, 22},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			ApplyRunnerPreset(&cfg, tc.preset)
			if cfg.Speed.Ramp != tc.ramp {
				t.Errorf("ramp = %v, expected %v", cfg.Speed.Ramp, tc.ramp)
			}
			if cfg.Speed.Initial != tc.initial {
				t.Errorf("initial = %v, expected %v", cfg.Speed.Initial, tc.initial)
			}
			if cfg.Speed.Max < tc.maxAtLeast {
				t.Errorf("max = %v, expected at least %v", cfg.Speed.Max, tc.maxAtLeast)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("hard should parse")
	}
	if ParsePreset("insane") != "" {
		t.Error("unknown presets should map to empty")
	}
}
