package runner

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
)

// CoinType is one of the collectible kinds.
type CoinType string

const (
	CoinBribe   CoinType = "bribe_coin"
	CoinDiamond CoinType = "diamond_briefcase"
	CoinStar    CoinType = "immunity_star"
)

type coinSpec struct {
	W, H      float64
	Value     float64
	CoinCount int // Contribution to coin batches
	Rarity    float64
	Color     core.Color
}

var coinSpecs = map[CoinType]coinSpec{
	CoinBribe:   {W: 20, H: 20, Value: 10, CoinCount: 1, Rarity: 0.75, Color: core.ColorGold},
	CoinDiamond: {W: 28, H: 24, Value: 100, CoinCount: 10, Rarity: 0.10, Color: core.ColorBrightCyan},
	CoinStar:    {W: 24, H: 24, Value: 50, CoinCount: 0, Rarity: 0.15, Color: core.ColorBrightMagenta},
}

// Value returns the base score of the kind.
func (t CoinType) Value() float64 {
	return coinSpecs[t].Value
}

// CoinCount returns how much the kind adds to a batch.
func (t CoinType) CoinCount() int {
	return coinSpecs[t].CoinCount
}

// Coin is a collectible. Hidden coins scroll with the world but are not
// drawn until revealed.
type Coin struct {
	ID        int
	Type      CoinType
	Lane      int
	X, Y      float64
	W, H      float64
	Value     float64
	CoinCount int
	Collected bool
	Hidden    bool

	Angle     float64 // Spin, degrees
	BobOffset float64
	BobTimer  float64
	GlowAlpha float64
	GlowDir   float64
}

// Box returns the pickup rectangle, bob included.
func (c Coin) Box() core.Box {
	return core.NewBox(c.X, c.Y+c.BobOffset, c.W, c.H)
}

// CoinSpawner places coins on its own timer and keeps a pool of hidden coins.
type CoinSpawner struct {
	coins      []Coin
	hidden     []Coin
	spawnTimer float64

	rng     *rand.Rand
	ids     *IDSource
	lanes   Lanes
	canvasW float64
	cfg     config.CoinConfig
}

// NewCoinSpawner creates a spawner drawing ids from ids.
func NewCoinSpawner(cfg config.CoinConfig, rng *rand.Rand, ids *IDSource, lanes Lanes, canvasW float64) *CoinSpawner {
	return &CoinSpawner{
		coins:   make([]Coin, 0, 32),
		hidden:  make([]Coin, 0, 8),
		rng:     rng,
		ids:     ids,
		lanes:   lanes,
		canvasW: canvasW,
		cfg:     cfg,
	}
}

// Reset clears both pools and the spawn timer.
func (s *CoinSpawner) Reset() {
	s.coins = s.coins[:0]
	s.hidden = s.hidden[:0]
	s.spawnTimer = 0
}

// Resize applies new lane geometry.
func (s *CoinSpawner) Resize(lanes Lanes, canvasW float64) {
	dy := lanes.GroundY - s.lanes.GroundY
	for i := range s.coins {
		s.coins[i].Y += dy
	}
	for i := range s.hidden {
		s.hidden[i].Y += dy
	}
	s.lanes = lanes
	s.canvasW = canvasW
}

// Update runs the spawn timer, animates and scrolls coins, steers them
// toward (px, py) when the magnet is on and culls the rest.
func (s *CoinSpawner) Update(dt, speed float64, magnet bool, px, py float64) {
	s.spawnTimer += dt
	if s.spawnTimer >= config.SpawnInterval(s.cfg.Spawn, speed) {
		s.spawnTimer = 0
		s.spawn()
	}

	for i := range s.coins {
		c := &s.coins[i]
		c.X -= speed
		c.Angle = math.Mod(c.Angle+s.cfg.SpinStep, 360)
		c.BobTimer += dt
		c.BobOffset = math.Sin(c.BobTimer*s.cfg.BobRate) * s.cfg.BobAmplitude
		c.GlowAlpha += c.GlowDir * dt * s.cfg.GlowRate
		if c.GlowAlpha >= s.cfg.GlowMax {
			c.GlowAlpha = s.cfg.GlowMax
			c.GlowDir = -1
		}
		if c.GlowAlpha <= s.cfg.GlowMin {
			c.GlowAlpha = s.cfg.GlowMin
			c.GlowDir = 1
		}

		if magnet && !c.Collected {
			s.pull(c, px, py)
		}
	}

	for i := range s.hidden {
		s.hidden[i].X -= speed
	}

	s.coins = s.cull(s.coins)
	s.hidden = s.cull(s.hidden)
}

// pull moves a coin toward the target, faster the closer it gets.
func (s *CoinSpawner) pull(c *Coin, px, py float64) {
	cx, cy := c.Box().Center()
	dx, dy := px-cx, py-cy
	dist := math.Hypot(dx, dy)
	if dist >= s.cfg.MagnetRadius || dist == 0 {
		return
	}
	step := (s.cfg.MagnetRadius-dist)/s.cfg.MagnetDivisor + s.cfg.MagnetMinSpeed
	if step > dist {
		step = dist
	}
	c.X += dx / dist * step
	c.Y += dy / dist * step
}

func (s *CoinSpawner) cull(coins []Coin) []Coin {
	kept := coins[:0]
	for _, c := range coins {
		if c.X+c.W > -s.cfg.CullMargin && !c.Collected {
			kept = append(kept, c)
		}
	}
	return kept
}

func (s *CoinSpawner) spawn() {
	p := s.cfg.Patterns
	spawnX := s.canvasW + s.cfg.SpawnOffset
	r := s.rng.Float64() * (p.Single + p.Row + p.Arc + p.Special)

	switch {
	case r < p.Single:
		s.spawnBribe(s.randomLane(), spawnX)
	case r < p.Single+p.Row:
		for lane := 0; lane < s.lanes.Count(); lane++ {
			s.spawnBribe(lane, spawnX)
		}
	case r < p.Single+p.Row+p.Arc:
		lane := s.randomLane()
		for i := 0; i < s.cfg.ArcCount; i++ {
			s.spawnBribe(lane, spawnX+float64(i)*s.cfg.ArcSpacing)
		}
	default:
		s.spawnSpecial(spawnX)
	}

	if s.rng.Float64() < s.cfg.HiddenChance {
		s.spawnHidden()
	}
}

func (s *CoinSpawner) newCoin(t CoinType, lane int, spawnX, y float64) Coin {
	spec := coinSpecs[t]
	return Coin{
		ID:        s.ids.Next(),
		Type:      t,
		Lane:      lane,
		X:         spawnX - spec.W/2 + s.lanes.Offset(lane),
		Y:         y,
		W:         spec.W,
		H:         spec.H,
		Value:     spec.Value,
		CoinCount: spec.CoinCount,
		GlowDir:   1,
	}
}

func (s *CoinSpawner) spawnBribe(lane int, spawnX float64) {
	y := s.lanes.GroundY - s.cfg.Height - s.rng.Float64()*s.cfg.HeightJitter
	c := s.newCoin(CoinBribe, lane, spawnX, y)
	c.Angle = s.rng.Float64() * 360
	c.BobTimer = s.rng.Float64() * 1000
	c.GlowAlpha = 0.5
	s.coins = append(s.coins, c)
}

func (s *CoinSpawner) spawnSpecial(spawnX float64) {
	t := CoinStar
	if s.rng.Float64() < s.cfg.DiamondShare {
		t = CoinDiamond
	}
	c := s.newCoin(t, s.randomLane(), spawnX, s.lanes.GroundY-s.cfg.SpecialHeight)
	c.GlowAlpha = 0.8
	s.coins = append(s.coins, c)
}

func (s *CoinSpawner) spawnHidden() {
	c := s.newCoin(CoinBribe, s.randomLane(), s.canvasW+s.cfg.HiddenOffset, s.lanes.GroundY-s.cfg.HiddenHeight)
	c.Hidden = true
	c.GlowAlpha = s.cfg.GlowMin
	s.hidden = append(s.hidden, c)
}

func (s *CoinSpawner) randomLane() int {
	return s.rng.Intn(s.lanes.Count())
}

// RevealHiddenCoins moves every hidden coin into the visible pool for good.
func (s *CoinSpawner) RevealHiddenCoins() int {
	n := len(s.hidden)
	for _, c := range s.hidden {
		c.Hidden = false
		s.coins = append(s.coins, c)
	}
	s.hidden = s.hidden[:0]
	return n
}

// CollectByID marks a visible or hidden coin as collected. It reports
// whether this call changed anything; repeated calls are no-ops.
func (s *CoinSpawner) CollectByID(id int) bool {
	for _, pool := range [][]Coin{s.coins, s.hidden} {
		for i := range pool {
			if pool[i].ID == id {
				if pool[i].Collected {
					return false
				}
				pool[i].Collected = true
				return true
			}
		}
	}
	return false
}

// Coins returns the visible pool. Callers must not retain it across updates.
func (s *CoinSpawner) Coins() []Coin {
	return s.coins
}

// HiddenCoins returns the hidden pool.
func (s *CoinSpawner) HiddenCoins() []Coin {
	return s.hidden
}
