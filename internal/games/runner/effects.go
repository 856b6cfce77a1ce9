package runner

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
)

// EffectKind tags a particle with the burst that produced it.
type EffectKind uint8

const (
	EffectCoin EffectKind = iota
	EffectHit
	EffectPower
)

// Particle is a single spark. Life counts up to MaxLife in milliseconds.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    float64
	MaxLife float64
	Color   core.Color
	Kind    EffectKind
}

// Fade returns the remaining life as a fraction in [0, 1].
func (p Particle) Fade() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return core.ClampF(1-p.Life/p.MaxLife, 0, 1)
}

// burst describes one effect kind.
type burst struct {
	count    int
	lifeMs   float64
	spreadX  float64
	liftMin  float64
	liftSpan float64
	color    core.Color
}

var bursts = map[EffectKind]burst{
	EffectCoin:  {count: 10, lifeMs: 500, spreadX: 6, liftMin: 2, liftSpan: 4, color: core.ColorGold},
	EffectHit:   {count: 15, lifeMs: 600, spreadX: 8, liftMin: 1, liftSpan: 5, color: core.ColorBrightRed},
	EffectPower: {count: 20, lifeMs: 800, spreadX: 10, liftMin: 3, liftSpan: 6, color: core.ColorPurple},
}

// Effects is a bounded particle system plus screen shake.
// When full, new particles overwrite the oldest slots in a ring.
type Effects struct {
	Max int
	P   []Particle

	ovrIdx int
	rng    *rand.Rand
	cfg    config.EffectsConfig

	shakeTimer  float64
	shakeDur    float64
	shakeAmount float64
}

// NewEffects creates an empty particle system.
func NewEffects(cfg config.EffectsConfig, seed int64) *Effects {
	n := cfg.MaxParticles
	if n <= 0 {
		n = 256
	}
	return &Effects{
		Max: n,
		P:   make([]Particle, 0, n),
		rng: rand.New(rand.NewSource(seed)),
		cfg: cfg,
	}
}

// Clear drops all particles and stops the shake.
func (e *Effects) Clear() {
	e.P = e.P[:0]
	e.ovrIdx = 0
	e.shakeTimer = 0
	e.shakeAmount = 0
}

// Add inserts a particle, overwriting in a ring when full.
func (e *Effects) Add(p Particle) {
	if len(e.P) < e.Max {
		e.P = append(e.P, p)
		return
	}
	if e.ovrIdx >= e.Max {
		e.ovrIdx = 0
	}
	e.P[e.ovrIdx] = p
	e.ovrIdx++
}

// Spawn emits a burst of kind at (x, y). ColorDefault uses the kind's colour.
// Unknown kinds are ignored.
func (e *Effects) Spawn(kind EffectKind, x, y float64, color core.Color) {
	b, ok := bursts[kind]
	if !ok {
		return
	}
	if color == core.ColorDefault {
		color = b.color
	}
	for i := 0; i < b.count; i++ {
		e.Add(Particle{
			X:       x,
			Y:       y,
			VX:      (e.rng.Float64() - 0.5) * b.spreadX,
			VY:      -(e.rng.Float64()*b.liftSpan + b.liftMin),
			MaxLife: b.lifeMs,
			Color:   color,
			Kind:    kind,
		})
	}
	if kind == EffectHit {
		e.StartShake(e.cfg.HitShake.Amount, e.cfg.HitShake.DurationMs)
	}
}

// StartShake starts a screen shake, replacing any shake in progress.
func (e *Effects) StartShake(amount, durationMs float64) {
	e.shakeAmount = amount
	e.shakeDur = durationMs
	e.shakeTimer = durationMs
}

// Update advances particles by one tick and expires the dead ones.
func (e *Effects) Update(dt float64) {
	if e.shakeTimer > 0 {
		e.shakeTimer -= dt
		if e.shakeTimer < 0 {
			e.shakeTimer = 0
		}
	}

	for i := 0; i < len(e.P); {
		p := &e.P[i]
		p.Life += dt
		if p.Life >= p.MaxLife {
			e.P[i] = e.P[len(e.P)-1]
			e.P = e.P[:len(e.P)-1]
			continue
		}
		p.X += p.VX
		p.Y += p.VY
		p.VY += e.cfg.ParticleGravity
		i++
	}
	if e.ovrIdx > len(e.P) {
		e.ovrIdx = 0
	}
}

// Shaking reports whether a shake is in progress.
func (e *Effects) Shaking() bool {
	return e.shakeTimer > 0
}

// ShakeOffset returns the current shake displacement in pixels. It decays
// with the remaining shake time.
func (e *Effects) ShakeOffset() (float64, float64) {
	if e.shakeTimer <= 0 || e.shakeDur <= 0 {
		return 0, 0
	}
	mag := math.Sin(e.shakeTimer*0.05) * e.shakeAmount * (e.shakeTimer / e.shakeDur)
	return (e.rng.Float64() - 0.5) * mag, (e.rng.Float64() - 0.5) * mag
}
