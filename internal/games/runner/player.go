package runner

import (
	"math"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
)

// PlayerState is the movement state of the runner.
type PlayerState int

const (
	StateRunning PlayerState = iota
	StateJumping
	StateSliding
	StateDead
)

func (s PlayerState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateJumping:
		return "jumping"
	case StateSliding:
		return "sliding"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}

// PowerState tracks the timed power and its cooldown, in milliseconds.
type PowerState struct {
	Active   bool
	Cooldown bool
	TimeLeft float64
	MaxTime  float64
	CoolLeft float64
	MaxCool  float64
}

// Ready reports whether the power can be activated.
func (ps PowerState) Ready() bool {
	return !ps.Active && !ps.Cooldown
}

// Charge returns the power bar fill in [0, 1]: remaining time while active,
// recharge progress while cooling down, full when ready.
func (ps PowerState) Charge() float64 {
	switch {
	case ps.Active && ps.MaxTime > 0:
		return core.ClampF(ps.TimeLeft/ps.MaxTime, 0, 1)
	case ps.Cooldown && ps.MaxCool > 0:
		return core.ClampF(1-ps.CoolLeft/ps.MaxCool, 0, 1)
	default:
		return 1
	}
}

// Player is the runner. X and Y are the top-left of the standing sprite.
type Player struct {
	Lane       int
	TargetLane int
	X, Y       float64
	VelY       float64
	State      PlayerState
	Character  CharacterID

	AnimFrame int
	animTimer float64

	Invincible      bool
	invincibleTimer float64
	flashTimer      float64
	Visible         bool

	Power        PowerState
	WallActive   bool
	MagnetActive bool
	GhostActive  bool

	lanes   Lanes
	power   Power
	cfg     config.PlayerConfig
	physics config.PhysicsConfig
	timing  config.PowerConfig
}

// NewPlayer creates a player standing in the middle lane.
func NewPlayer(cfg *config.RunnerConfig, lanes Lanes, ch Character) *Player {
	p := &Player{
		cfg:     cfg.Player,
		physics: cfg.Physics,
		timing:  cfg.Power,
	}
	p.Reset(lanes, ch)
	return p
}

// Reset puts the player back on the ground in the middle lane with a fresh power.
func (p *Player) Reset(lanes Lanes, ch Character) {
	p.lanes = lanes
	p.power = ch.Power
	p.Character = ch.ID
	p.Lane = lanes.Center()
	p.TargetLane = p.Lane
	p.X = p.laneX(p.Lane)
	p.Y = p.groundTop()
	p.VelY = 0
	p.State = StateRunning
	p.AnimFrame = 0
	p.animTimer = 0
	p.Invincible = false
	p.invincibleTimer = 0
	p.flashTimer = 0
	p.Visible = true
	p.WallActive = false
	p.MagnetActive = false
	p.GhostActive = false
	p.Power = PowerState{
		MaxTime: p.timing.DurationMs,
		MaxCool: p.timing.CooldownMs,
	}
}

// SetLanes applies new lane geometry after a resize. The player snaps to its
// target lane; a jump keeps its height above the new ground.
func (p *Player) SetLanes(lanes Lanes) {
	above := p.groundTop() - p.Y
	p.lanes = lanes
	p.Lane = core.Clamp(p.TargetLane, 0, lanes.Count()-1)
	p.TargetLane = p.Lane
	p.X = p.laneX(p.Lane)
	if p.State == StateJumping {
		p.Y = p.groundTop() - above
	} else {
		p.Y = p.groundTop()
	}
}

func (p *Player) laneX(lane int) float64 {
	return p.lanes.X[lane] - p.cfg.Width/2
}

func (p *Player) groundTop() float64 {
	return p.lanes.GroundY - p.cfg.Height
}

// Update advances movement, animation and timers by dt milliseconds.
// Movement runs per tick; timers run on dt.
func (p *Player) Update(dt float64, w World) {
	if p.State == StateDead {
		return
	}
	p.updateLane()
	p.updateVertical()
	p.updateAnimation(dt)
	p.updateInvincibility(dt)
	p.updatePower(dt, w)
}

func (p *Player) updateLane() {
	target := p.laneX(p.TargetLane)
	diff := target - p.X
	if math.Abs(diff) < p.cfg.LaneEase {
		p.X = target
		p.Lane = p.TargetLane
		return
	}
	if diff > 0 {
		p.X += p.cfg.LaneEase
	} else {
		p.X -= p.cfg.LaneEase
	}
}

func (p *Player) updateVertical() {
	if p.State != StateJumping {
		return
	}
	p.VelY += p.physics.Gravity
	p.Y += p.VelY
	if ground := p.groundTop(); p.Y >= ground {
		p.Y = ground
		p.VelY = 0
		p.State = StateRunning
	}
}

func (p *Player) updateAnimation(dt float64) {
	if p.State != StateRunning {
		p.AnimFrame = 0
		return
	}
	p.animTimer += dt
	if p.animTimer >= p.cfg.AnimFrameMs {
		p.animTimer = 0
		p.AnimFrame = (p.AnimFrame + 1) % 4
	}
}

func (p *Player) updateInvincibility(dt float64) {
	if !p.Invincible {
		return
	}
	p.invincibleTimer -= dt
	p.flashTimer += dt
	if p.flashTimer > p.cfg.FlashMs {
		p.flashTimer = 0
		p.Visible = !p.Visible
	}
	if p.invincibleTimer <= 0 {
		p.Invincible = false
		p.Visible = true
	}
}

func (p *Player) updatePower(dt float64, w World) {
	if p.Power.Active {
		if p.power.OnTick != nil {
			p.power.OnTick(p, w)
		}
		p.Power.TimeLeft -= dt
		if p.Power.TimeLeft <= 0 {
			p.endPower()
		}
	}

	if p.Power.Cooldown {
		p.Power.CoolLeft -= dt
		if p.Power.CoolLeft <= 0 {
			p.Power.CoolLeft = 0
			p.Power.Cooldown = false
		}
	}
}

// endPower deactivates the power and starts the cooldown.
func (p *Player) endPower() {
	p.Power.Active = false
	p.Power.TimeLeft = 0
	p.Power.Cooldown = true
	p.Power.CoolLeft = p.Power.MaxCool
	if p.power.OnDeactivate != nil {
		p.power.OnDeactivate(p)
	}
}

// MoveLeft retargets one lane to the left. No-op at the edge.
func (p *Player) MoveLeft() {
	if p.TargetLane > 0 {
		p.TargetLane--
	}
}

// MoveRight retargets one lane to the right. No-op at the edge.
func (p *Player) MoveRight() {
	if p.TargetLane < p.lanes.Count()-1 {
		p.TargetLane++
	}
}

// Jump starts a jump from the ground or out of a slide.
func (p *Player) Jump() {
	if p.State == StateRunning || p.State == StateSliding {
		p.State = StateJumping
		p.VelY = p.physics.JumpForce
	}
}

// StartSlide starts a held slide. Only allowed while running.
func (p *Player) StartSlide() {
	if p.State == StateRunning {
		p.State = StateSliding
	}
}

// EndSlide stands back up.
func (p *Player) EndSlide() {
	if p.State == StateSliding {
		p.State = StateRunning
	}
}

// ActivatePower starts the character power. It reports false when the power
// is already active or cooling down.
func (p *Player) ActivatePower(w World) bool {
	if p.State == StateDead || !p.Power.Ready() {
		return false
	}
	p.Power.Active = true
	p.Power.TimeLeft = p.Power.MaxTime
	if p.power.OnActivate != nil {
		p.power.OnActivate(p, w)
	}
	return true
}

// ConsumePower ends an active power at once and starts the cooldown.
func (p *Player) ConsumePower() {
	if p.Power.Active {
		p.endPower()
	}
}

// GrantInvincibility makes the player untouchable for ms milliseconds.
func (p *Player) GrantInvincibility(ms float64) {
	p.Invincible = true
	p.invincibleTimer = ms
	p.flashTimer = 0
	p.Visible = true
}

// Bounds returns the full standing sprite. Used for coin pickup.
func (p *Player) Bounds() core.Box {
	return core.NewBox(p.X, p.Y, p.cfg.Width, p.cfg.Height)
}

// Center returns the centre of the sprite.
func (p *Player) Center() (float64, float64) {
	return p.Bounds().Center()
}

// Hitbox returns the obstacle collision box. A slide keeps the bottom of
// the box on the ground and lowers its top.
func (p *Player) Hitbox() core.Box {
	inset := p.cfg.HitboxInset
	if p.State == StateSliding {
		top := p.Y + p.cfg.Height - p.cfg.SlideHeight
		return core.NewBox(p.X, top, p.cfg.Width, p.cfg.SlideHeight).Inset(inset, inset)
	}
	return p.Bounds().Inset(inset, inset)
}

// CollidesWith tests the hitbox against a rectangle. Always false while
// invincible or phasing.
func (p *Player) CollidesWith(x, y, w, h float64) bool {
	if p.Invincible || p.GhostActive {
		return false
	}
	return p.Hitbox().Intersects(core.NewBox(x, y, w, h))
}

// Die ends the run for this player.
func (p *Player) Die() {
	p.State = StateDead
}
