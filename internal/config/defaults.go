package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in runner configuration.
// It mirrors defaults/runner.yaml and backs it up if the embed is unreadable.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Lanes: LanesConfig{
			Count:       3,
			WidthRatio:  0.22,
			GroundRatio: 0.78,
		},
		Player: PlayerConfig{
			Width:       40,
			Height:      68,
			SlideHeight: 34,
			HitboxInset: 4,
			LaneEase:    12,
			AnimFrameMs: 100,
			FlashMs:     100,
		},
		Physics: PhysicsConfig{
			Gravity:   0.6,
			JumpForce: -15,
		},
		Power: PowerConfig{
			DurationMs:  5000,
			CooldownMs:  15000,
			BoostAmount: 4,
			BoostCap:    26,
		},
		Obstacles: ObstacleConfig{
			Spawn: SpawnTiming{
				BaseMs:        2200,
				DecayPerSpeed: 60,
				FloorMs:       1100,
			},
			Patterns: ObstaclePatterns{
				Single:   0.55,
				Adjacent: 0.30,
				Outer:    0.15,
			},
			SpawnOffset: 40,
			CullMargin:  20,
			AnimFrameMs: 150,
		},
		Coins: CoinConfig{
			Spawn: SpawnTiming{
				BaseMs:        900,
				DecayPerSpeed: 40,
				FloorMs:       600,
			},
			Patterns: CoinPatterns{
				Single:  0.50,
				Row:     0.25,
				Arc:     0.15,
				Special: 0.10,
			},
			SpawnOffset:    30,
			CullMargin:     10,
			ArcCount:       5,
			ArcSpacing:     50,
			DiamondShare:   0.6,
			HiddenChance:   0.3,
			HiddenOffset:   50,
			Height:         90,
			HeightJitter:   30,
			SpecialHeight:  110,
			HiddenHeight:   80,
			SpinStep:       4,
			BobAmplitude:   5,
			BobRate:        0.003,
			GlowRate:       0.001,
			GlowMin:        0.3,
			GlowMax:        1.0,
			MagnetRadius:   250,
			MagnetDivisor:  15,
			MagnetMinSpeed: 2,
		},
		Scoring: ScoringConfig{
			PixelsPerPoint:      10,
			ComboStep:           5,
			MultiplierStep:      0.5,
			MultiplierCap:       5,
			BatchSize:           5,
			StarInvincibilityMs: 3000,
		},
		Speed: SpeedConfig{
			Ramp:     true,
			Initial:  5,
			PerScore: 0.0015,
			Max:      22,
		},
		Engine: EngineConfig{
			MaxFrameMs:     50,
			DyingMs:        1200,
			DeathOverlayMs: 800,
			SwipeThreshold: 30,
		},
		Effects: EffectsConfig{
			MaxParticles:    512,
			ParticleGravity: 0.15,
			HitShake:        ShakeConfig{Amount: 10, DurationMs: 300},
			DeathShake:      ShakeConfig{Amount: 15, DurationMs: 500},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
