package runner

import (
	"math"

	"github.com/vovakirdan/lane-runner/internal/core"
)

// Visual characters for rendering
const (
	GroundChar   = '═'
	RoadChar     = '─'
	SpeckChar    = '.'
	CloudChar    = '░'
	BuildingChar = '▒'
	WindowChar   = '▪'
	PlayerChar   = '█'
	HeadChar     = '◉'
	ParticleChar = '*'
	EmberChar    = '·'
	HiddenChar   = '○'
)

var obstacleRunes = map[ObstacleType][2]rune{
	ObstacleReporter:  {'▓', '▒'},
	ObstacleSubpoena:  {'≡', '='},
	ObstacleCBIAgent:  {'█', '▓'},
	ObstacleFlyingMic: {'¶', '|'},
	ObstacleChair:     {'╥', '╨'},
	ObstacleNewsVan:   {'▆', '▇'},
	ObstacleBallotBox: {'▣', '▢'},
	ObstacleTaxNotice: {'§', '$'},
}

var coinSpin = [4]rune{'●', '◐', '|', '◑'}

// projector maps canvas pixels onto screen cells.
type projector struct {
	sx, sy float64
	ox, oy float64 // Shake offset in pixels
}

func newProjector(dst *core.Screen, s Snapshot) projector {
	pr := projector{sx: 1, sy: 1, ox: s.ShakeX, oy: s.ShakeY}
	if s.CanvasW > 0 {
		pr.sx = float64(dst.Width()) / s.CanvasW
	}
	if s.CanvasH > 0 {
		pr.sy = float64(dst.Height()) / s.CanvasH
	}
	return pr
}

func (pr projector) point(x, y float64) (int, int) {
	return int(math.Floor((x + pr.ox) * pr.sx)), int(math.Floor((y + pr.oy) * pr.sy))
}

// rect returns the cells covered by a pixel box, at least one cell.
func (pr projector) rect(b core.Box) core.Rect {
	x0, y0 := pr.point(b.X, b.Y)
	x1, y1 := pr.point(b.Right(), b.Bottom())
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

// Render draws the engine's current frame.
func (e *Engine) Render(dst *core.Screen) {
	Render(dst, e.Snapshot())
}

// Render draws a snapshot into dst. The HUD is left to the host.
func Render(dst *core.Screen, s Snapshot) {
	dst.Clear()
	if s.State == EngineIdle && len(s.Lanes.X) == 0 {
		return
	}
	pr := newProjector(dst, s)

	drawBackground(dst, pr, s)
	drawCoins(dst, pr, s)
	drawObstacles(dst, pr, s)
	drawPlayer(dst, pr, s)
	drawParticles(dst, pr, s)
	drawKiller(dst, pr, s)
}

func drawBackground(dst *core.Screen, pr projector, s Snapshot) {
	for _, c := range s.Clouds {
		dst.DrawRect(pr.rect(core.NewBox(c.X, c.Y, c.W, c.H)), CloudChar, core.ColorGray)
	}

	for _, b := range s.Buildings {
		r := pr.rect(core.NewBox(b.X, b.Y, b.W, b.H))
		dst.DrawRect(r, BuildingChar, core.ColorDarkPurple)
		if b.Light && r.W > 1 && r.H > 1 {
			dst.SetColored(r.X+r.W/2, r.Y+1, WindowChar, core.ColorYellow)
		}
	}

	_, gy := pr.point(0, s.Lanes.GroundY)
	dst.DrawHLine(0, gy, dst.Width(), GroundChar, core.ColorPurple)

	// Road dashes scroll with the front layer.
	roadY := gy + (dst.Height()-gy)/2
	offset, _ := pr.point(-s.Layers[2].Offset, 0)
	for x := offset; x < dst.Width(); x += 8 {
		for i := 0; i < 4; i++ {
			if x+i >= 0 {
				dst.SetColored(x+i, roadY, RoadChar, core.ColorGray)
			}
		}
	}

	for _, sp := range s.Specks {
		x, _ := pr.point(sp.X, 0)
		color := core.ColorPurple
		if sp.Green {
			color = core.ColorBrightGreen
		}
		dst.SetColored(x, gy+1+int(sp.Size)%2, SpeckChar, color)
	}
}

func drawCoins(dst *core.Screen, pr projector, s Snapshot) {
	for _, c := range s.Coins {
		if c.Collected {
			continue
		}
		x, y := pr.point(c.Box().Center())
		spec := coinSpecs[c.Type]
		switch c.Type {
		case CoinDiamond:
			dst.SetColored(x, y, '◆', spec.Color)
		case CoinStar:
			dst.SetColored(x, y, '★', spec.Color)
		default:
			dst.SetColored(x, y, coinSpin[int(c.Angle/90)%4], spec.Color)
		}
	}

	if !s.ScanOn {
		return
	}
	for _, c := range s.Hidden {
		if c.Collected {
			continue
		}
		x, y := pr.point(c.Box().Center())
		dst.SetColored(x, y, HiddenChar, core.ColorBrightGreen)
	}
}

func drawObstacles(dst *core.Screen, pr projector, s Snapshot) {
	for _, o := range s.Obstacles {
		if o.Removed {
			continue
		}
		runes, ok := obstacleRunes[o.Type]
		if !ok {
			continue
		}
		dst.DrawRect(pr.rect(o.Box()), runes[o.AnimFrame%2], obstacleShapes[o.Type].Color)
	}
}

func drawPlayer(dst *core.Screen, pr projector, s Snapshot) {
	p := s.Player
	if !p.Visible {
		return
	}

	color := s.Character.Color
	if p.Power.Active {
		color = s.Character.Accent
	}
	if p.State == StateDead {
		color = core.ColorRed
	}

	body := p.Bounds()
	if p.State == StateSliding {
		h := p.cfg.SlideHeight
		body = core.NewBox(body.X, body.Bottom()-h, body.W, h)
	}
	r := pr.rect(body)
	dst.DrawRect(r, PlayerChar, color)
	dst.SetColored(r.X+r.W/2, r.Y, HeadChar, core.ColorBrightWhite)

	// Legs alternate with the run animation.
	if p.State == StateRunning && r.H > 1 {
		leg := r.X
		if p.AnimFrame%2 == 1 {
			leg = r.Right() - 1
		}
		dst.SetColored(leg, r.Bottom()-1, ' ', core.ColorDefault)
	}

	if p.Invincible || p.GhostActive {
		dst.DrawBox(core.NewRect(r.X-1, r.Y-1, r.W+2, r.H+2), s.Character.Accent)
	}
}

func drawParticles(dst *core.Screen, pr projector, s Snapshot) {
	for _, p := range s.Particles {
		if p.Life < 0 {
			continue
		}
		x, y := pr.point(p.X, p.Y)
		ch := ParticleChar
		if p.Fade() < 0.4 {
			ch = EmberChar
		}
		dst.SetColored(x, y, ch, p.Color)
	}
}

// drawKiller outlines the obstacle that ended the run, pulsing.
func drawKiller(dst *core.Screen, pr projector, s Snapshot) {
	if s.Killer == nil {
		return
	}
	if math.Sin(s.DeathTimer*0.012) < -0.3 {
		return
	}
	r := pr.rect(s.Killer.Box)
	dst.DrawBox(core.NewRect(r.X-1, r.Y-1, r.W+2, r.H+2), core.ColorBrightRed)
	dst.DrawHLine(r.X-1, r.Y-2, r.W+2, '▀', core.ColorBrightYellow)
}
