package runner

import (
	"math"

	"github.com/vovakirdan/lane-runner/internal/core"
)

// Decision is what the autopilot wants to do this frame.
type Decision struct {
	Actions      []core.Action
	ReleaseSlide bool
}

// Autopilot plays the runner with a fixed lookahead: jump grounded
// obstacles, slide under floating ones, fire the power when a hit is close
// and drift toward the lane with the most coins ahead.
type Autopilot struct {
	JumpTicks  float64 // Start a jump this many ticks before contact
	SlideTicks float64 // Start a slide this many ticks before contact
	CoinTicks  float64 // How far ahead coins count toward lane choice
}

// NewAutopilot returns an autopilot tuned for the default physics.
func NewAutopilot() *Autopilot {
	return &Autopilot{JumpTicks: 7, SlideTicks: 5, CoinTicks: 60}
}

// Decide inspects a snapshot and returns the actions to take.
func (a *Autopilot) Decide(s Snapshot) Decision {
	var d Decision
	if s.State != EnginePlaying {
		return d
	}

	p := s.Player
	hb := p.Hitbox()
	speed := math.Max(s.Stats.Speed, 1)

	threat, gap, ok := nearestThreat(s.Obstacles, hb)
	floaterOverhead := ok && threat.Type.Floating() && gap <= speed*a.SlideTicks

	if p.State == StateSliding && !floaterOverhead {
		d.ReleaseSlide = true
	}

	if ok && gap <= speed*a.JumpTicks {
		if threat.Type.Floating() {
			if gap <= speed*a.SlideTicks && p.State == StateRunning {
				d.Actions = append(d.Actions, core.ActionSlide)
			}
		} else if p.State == StateRunning || p.State == StateSliding {
			d.Actions = append(d.Actions, core.ActionJump)
		}
		if p.Power.Ready() && gap <= speed*2 && s.Character.ID != CharBiden {
			d.Actions = append(d.Actions, core.ActionPower)
		}
	}

	if p.Power.Ready() && s.Character.ID == CharKejriwal && len(s.Hidden) > 0 {
		d.Actions = append(d.Actions, core.ActionPower)
	}

	if best := a.bestLane(s, speed); best != p.TargetLane {
		if best < p.TargetLane {
			d.Actions = append(d.Actions, core.ActionLeft)
		} else {
			d.Actions = append(d.Actions, core.ActionRight)
		}
	}
	return d
}

// nearestThreat returns the closest obstacle whose right edge is still
// ahead of the hitbox's left edge, with the horizontal gap to it.
func nearestThreat(obstacles []Obstacle, hb core.Box) (Obstacle, float64, bool) {
	var best Obstacle
	bestGap := math.Inf(1)
	found := false
	for _, o := range obstacles {
		if o.Removed || o.X+o.W <= hb.X {
			continue
		}
		gap := math.Max(o.X-hb.Right(), 0)
		if gap < bestGap {
			best, bestGap, found = o, gap, true
		}
	}
	return best, bestGap, found
}

// bestLane counts uncollected coins ahead per lane and prefers the current
// lane on ties.
func (a *Autopilot) bestLane(s Snapshot, speed float64) int {
	counts := make([]int, s.Lanes.Count())
	horizon := s.Player.X + speed*a.CoinTicks
	for _, c := range s.Coins {
		if c.Collected || c.X+c.W < s.Player.X || c.X > horizon {
			continue
		}
		if c.Lane >= 0 && c.Lane < len(counts) {
			counts[c.Lane]++
		}
	}

	best := s.Player.TargetLane
	for lane, n := range counts {
		if best < 0 || best >= len(counts) || n > counts[best] {
			best = lane
		}
	}
	return best
}

// Drive decides and applies one frame of input to the engine.
func (a *Autopilot) Drive(e *Engine) {
	d := a.Decide(e.Snapshot())
	if d.ReleaseSlide {
		e.KeyUp("ArrowDown")
	}
	for _, act := range d.Actions {
		if act == core.ActionSlide {
			e.KeyUp("ArrowDown")
			e.KeyDown("ArrowDown")
			continue
		}
		e.Apply(act)
	}
}
