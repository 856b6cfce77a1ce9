// Package config provides YAML-based runner configuration loading and
// difficulty management.
package config

import (
	"errors"
	"fmt"
)

// RunnerConfig contains every tunable of the runner simulation.
// Distances are canvas pixels, velocities are pixels per tick, durations are
// milliseconds.
type RunnerConfig struct {
	Lanes     LanesConfig    `yaml:"lanes"`
	Player    PlayerConfig   `yaml:"player"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Power     PowerConfig    `yaml:"power"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Coins     CoinConfig     `yaml:"coins"`
	Scoring   ScoringConfig  `yaml:"scoring"`
	Speed     SpeedConfig    `yaml:"speed"`
	Engine    EngineConfig   `yaml:"engine"`
	Effects   EffectsConfig  `yaml:"effects"`
}

// LanesConfig defines lane geometry relative to the canvas.
type LanesConfig struct {
	Count       int     `yaml:"count"`
	WidthRatio  float64 `yaml:"width_ratio"`  // Lane width as a fraction of canvas width
	GroundRatio float64 `yaml:"ground_ratio"` // Ground line as a fraction of canvas height
}

// PlayerConfig defines the player sprite and hitbox.
type PlayerConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	SlideHeight float64 `yaml:"slide_height"`
	HitboxInset float64 `yaml:"hitbox_inset"`
	LaneEase    float64 `yaml:"lane_ease"` // Pixels per tick toward the target lane
	AnimFrameMs float64 `yaml:"anim_frame_ms"`
	FlashMs     float64 `yaml:"flash_ms"` // Invincibility blink period
}

// PhysicsConfig defines jump physics.
type PhysicsConfig struct {
	Gravity   float64 `yaml:"gravity"`
	JumpForce float64 `yaml:"jump_force"`
}

// PowerConfig defines the shared power timing and the boost power.
type PowerConfig struct {
	DurationMs  float64 `yaml:"duration_ms"`
	CooldownMs  float64 `yaml:"cooldown_ms"`
	BoostAmount float64 `yaml:"boost_amount"`
	BoostCap    float64 `yaml:"boost_cap"` // Absolute speed ceiling, boost included
}

// SpawnTiming defines an interval that shortens with speed down to a floor.
type SpawnTiming struct {
	BaseMs        float64 `yaml:"base_ms"`
	DecayPerSpeed float64 `yaml:"decay_per_speed"`
	FloorMs       float64 `yaml:"floor_ms"`
}

// ObstaclePatterns are the weights of the lane patterns.
type ObstaclePatterns struct {
	Single   float64 `yaml:"single"`
	Adjacent float64 `yaml:"adjacent"`
	Outer    float64 `yaml:"outer"`
}

// ObstacleConfig defines obstacle spawning.
type ObstacleConfig struct {
	Spawn       SpawnTiming      `yaml:"spawn"`
	Patterns    ObstaclePatterns `yaml:"patterns"`
	SpawnOffset float64          `yaml:"spawn_offset"` // Pixels beyond the right edge
	CullMargin  float64          `yaml:"cull_margin"`  // Pixels beyond the left edge
	AnimFrameMs float64          `yaml:"anim_frame_ms"`
}

// CoinPatterns are the weights of the coin spawn shapes.
type CoinPatterns struct {
	Single  float64 `yaml:"single"`
	Row     float64 `yaml:"row"`
	Arc     float64 `yaml:"arc"`
	Special float64 `yaml:"special"`
}

// CoinConfig defines coin spawning, animation and the magnet.
type CoinConfig struct {
	Spawn          SpawnTiming  `yaml:"spawn"`
	Patterns       CoinPatterns `yaml:"patterns"`
	SpawnOffset    float64      `yaml:"spawn_offset"`
	CullMargin     float64      `yaml:"cull_margin"`
	ArcCount       int          `yaml:"arc_count"`
	ArcSpacing     float64      `yaml:"arc_spacing"`
	DiamondShare   float64      `yaml:"diamond_share"` // Share of specials that are diamonds
	HiddenChance   float64      `yaml:"hidden_chance"`
	HiddenOffset   float64      `yaml:"hidden_offset"`
	Height         float64      `yaml:"height"` // Above ground
	HeightJitter   float64      `yaml:"height_jitter"`
	SpecialHeight  float64      `yaml:"special_height"`
	HiddenHeight   float64      `yaml:"hidden_height"`
	SpinStep       float64      `yaml:"spin_step"` // Degrees per tick
	BobAmplitude   float64      `yaml:"bob_amplitude"`
	BobRate        float64      `yaml:"bob_rate"`
	GlowRate       float64      `yaml:"glow_rate"`
	GlowMin        float64      `yaml:"glow_min"`
	GlowMax        float64      `yaml:"glow_max"`
	MagnetRadius   float64      `yaml:"magnet_radius"`
	MagnetDivisor  float64      `yaml:"magnet_divisor"`
	MagnetMinSpeed float64      `yaml:"magnet_min_speed"`
}

// ScoringConfig defines combo, multiplier and batching rules.
type ScoringConfig struct {
	PixelsPerPoint      float64 `yaml:"pixels_per_point"`
	ComboStep           int     `yaml:"combo_step"`
	MultiplierStep      float64 `yaml:"multiplier_step"`
	MultiplierCap       float64 `yaml:"multiplier_cap"`
	BatchSize           int     `yaml:"batch_size"`
	StarInvincibilityMs float64 `yaml:"star_invincibility_ms"`
}

// SpeedConfig defines the score-driven speed ramp.
type SpeedConfig struct {
	Ramp     bool    `yaml:"ramp"` // False keeps the initial speed for the whole run
	Initial  float64 `yaml:"initial"`
	PerScore float64 `yaml:"per_score"`
	Max      float64 `yaml:"max"`
}

// EngineConfig defines loop and lifecycle timing.
type EngineConfig struct {
	MaxFrameMs     float64 `yaml:"max_frame_ms"`
	DyingMs        float64 `yaml:"dying_ms"`
	DeathOverlayMs float64 `yaml:"death_overlay_ms"`
	SwipeThreshold float64 `yaml:"swipe_threshold"`
}

// ShakeConfig defines a screen shake.
type ShakeConfig struct {
	Amount     float64 `yaml:"amount"`
	DurationMs float64 `yaml:"duration_ms"`
}

// EffectsConfig defines the particle system.
type EffectsConfig struct {
	MaxParticles    int         `yaml:"max_particles"`
	ParticleGravity float64     `yaml:"particle_gravity"`
	HitShake        ShakeConfig `yaml:"hit_shake"`
	DeathShake      ShakeConfig `yaml:"death_shake"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Empty or unknown strings
// return "" which means "use the config as loaded".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// Validate checks the invariants the simulation relies on.
func (c RunnerConfig) Validate() error {
	var errs []error

	if c.Lanes.Count != 3 {
		errs = append(errs, fmt.Errorf("lanes.count must be 3, got %d", c.Lanes.Count))
	}
	if c.Lanes.WidthRatio <= 0 || c.Lanes.WidthRatio*float64(c.Lanes.Count) > 1 {
		errs = append(errs, fmt.Errorf("lanes.width_ratio %v does not fit the canvas", c.Lanes.WidthRatio))
	}
	if c.Lanes.GroundRatio <= 0 || c.Lanes.GroundRatio >= 1 {
		errs = append(errs, fmt.Errorf("lanes.ground_ratio must be in (0, 1), got %v", c.Lanes.GroundRatio))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 || c.Player.SlideHeight <= 0 {
		errs = append(errs, errors.New("player dimensions must be positive"))
	}
	if c.Player.SlideHeight > c.Player.Height {
		errs = append(errs, errors.New("player.slide_height must not exceed player.height"))
	}
	if c.Obstacles.Spawn.FloorMs <= 0 || c.Coins.Spawn.FloorMs <= 0 {
		errs = append(errs, errors.New("spawn floor_ms must be positive"))
	}
	if c.Scoring.ComboStep <= 0 || c.Scoring.BatchSize <= 0 || c.Scoring.PixelsPerPoint <= 0 {
		errs = append(errs, errors.New("scoring combo_step, batch_size and pixels_per_point must be positive"))
	}
	if c.Scoring.MultiplierCap < 1 {
		errs = append(errs, errors.New("scoring.multiplier_cap must be at least 1"))
	}
	if c.Speed.Max < c.Speed.Initial {
		errs = append(errs, errors.New("speed.max must not be below speed.initial"))
	}
	if c.Power.BoostCap < c.Speed.Max {
		errs = append(errs, errors.New("power.boost_cap must not be below speed.max"))
	}
	if c.Engine.MaxFrameMs <= 0 || c.Engine.DyingMs <= 0 {
		errs = append(errs, errors.New("engine max_frame_ms and dying_ms must be positive"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid runner config: %w", errors.Join(errs...))
	}
	return nil
}
