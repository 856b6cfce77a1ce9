package runner

import (
	"math/rand"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
)

// ObstacleType is one of the fixed obstacle kinds.
type ObstacleType string

const (
	ObstacleReporter  ObstacleType = "reporter"
	ObstacleSubpoena  ObstacleType = "subpoena"
	ObstacleCBIAgent  ObstacleType = "cbi_agent"
	ObstacleFlyingMic ObstacleType = "flying_mic"
	ObstacleChair     ObstacleType = "chair"
	ObstacleNewsVan   ObstacleType = "news_van"
	ObstacleBallotBox ObstacleType = "ballot_box"
	ObstacleTaxNotice ObstacleType = "tax_notice"
)

// obstacleShape is the fixed size of a kind. YOff lifts floating kinds
// off the ground (negative is up).
type obstacleShape struct {
	W, H  float64
	YOff  float64
	Label string
	Color core.Color
}

var obstacleTypes = []ObstacleType{
	ObstacleReporter,
	ObstacleSubpoena,
	ObstacleCBIAgent,
	ObstacleFlyingMic,
	ObstacleChair,
	ObstacleNewsVan,
	ObstacleBallotBox,
	ObstacleTaxNotice,
}

var obstacleShapes = map[ObstacleType]obstacleShape{
	ObstacleReporter:  {W: 32, H: 64, YOff: 0, Label: "RELENTLESS REPORTER", Color: core.ColorMagenta},
	ObstacleSubpoena:  {W: 28, H: 36, YOff: -40, Label: "FLYING SUBPOENA", Color: core.ColorYellow},
	ObstacleCBIAgent:  {W: 34, H: 64, YOff: 0, Label: "CBI AGENT", Color: core.ColorBlue},
	ObstacleFlyingMic: {W: 20, H: 30, YOff: -30, Label: "FLYING MIC", Color: core.ColorGray},
	ObstacleChair:     {W: 36, H: 40, YOff: 0, Label: "PARLIAMENT CHAIR", Color: core.ColorOrange},
	ObstacleNewsVan:   {W: 72, H: 48, YOff: 0, Label: "NEWS VAN", Color: core.ColorWhite},
	ObstacleBallotBox: {W: 40, H: 40, YOff: 0, Label: "BALLOT BOX", Color: core.ColorGreen},
	ObstacleTaxNotice: {W: 30, H: 38, YOff: -35, Label: "TAX NOTICE", Color: core.ColorRed},
}

// ObstacleTypes returns every kind in table order.
func ObstacleTypes() []ObstacleType {
	out := make([]ObstacleType, len(obstacleTypes))
	copy(out, obstacleTypes)
	return out
}

// Label returns the display name of the kind.
func (t ObstacleType) Label() string {
	if s, ok := obstacleShapes[t]; ok {
		return s.Label
	}
	return string(t)
}

// Floating reports whether the kind hovers above the ground.
func (t ObstacleType) Floating() bool {
	return obstacleShapes[t].YOff < 0
}

// Obstacle is a hazard scrolling toward the player.
type Obstacle struct {
	ID        int
	Type      ObstacleType
	Lane      int
	X, Y      float64
	W, H      float64
	AnimFrame int
	AnimTimer float64
	Removed   bool // Destroyed by a power; culled on the next pass
}

// Box returns the collision rectangle.
func (o Obstacle) Box() core.Box {
	return core.NewBox(o.X, o.Y, o.W, o.H)
}

// ObstacleSpawner places obstacles in lane patterns that always leave a lane open.
type ObstacleSpawner struct {
	obstacles   []Obstacle
	spawnTimer  float64
	lastPattern []int
	spawns      int

	rng     *rand.Rand
	ids     *IDSource
	lanes   Lanes
	canvasW float64
	cfg     config.ObstacleConfig
}

// NewObstacleSpawner creates a spawner drawing ids from ids.
func NewObstacleSpawner(cfg config.ObstacleConfig, rng *rand.Rand, ids *IDSource, lanes Lanes, canvasW float64) *ObstacleSpawner {
	return &ObstacleSpawner{
		obstacles: make([]Obstacle, 0, 16),
		rng:       rng,
		ids:       ids,
		lanes:     lanes,
		canvasW:   canvasW,
		cfg:       cfg,
	}
}

// Reset clears all obstacles and the spawn timer.
func (s *ObstacleSpawner) Reset() {
	s.obstacles = s.obstacles[:0]
	s.spawnTimer = 0
	s.lastPattern = nil
	s.spawns = 0
}

// Resize applies new lane geometry. Obstacles already in flight keep their
// positions relative to the ground.
func (s *ObstacleSpawner) Resize(lanes Lanes, canvasW float64) {
	dy := lanes.GroundY - s.lanes.GroundY
	for i := range s.obstacles {
		s.obstacles[i].Y += dy
	}
	s.lanes = lanes
	s.canvasW = canvasW
}

// Update runs the spawn timer, scrolls obstacles by speed pixels and culls
// the ones that left the screen or were removed.
func (s *ObstacleSpawner) Update(dt, speed float64) {
	s.spawnTimer += dt
	if s.spawnTimer >= config.SpawnInterval(s.cfg.Spawn, speed) {
		s.spawnTimer = 0
		s.spawn()
	}

	for i := range s.obstacles {
		o := &s.obstacles[i]
		o.X -= speed
		o.AnimTimer += dt
		if o.AnimTimer > s.cfg.AnimFrameMs {
			o.AnimTimer = 0
			o.AnimFrame = (o.AnimFrame + 1) % 4
		}
	}

	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		if o.X+o.W > -s.cfg.CullMargin && !o.Removed {
			kept = append(kept, o)
		}
	}
	s.obstacles = kept
}

func (s *ObstacleSpawner) spawn() {
	pattern := s.pickPattern()
	for _, lane := range pattern {
		t := obstacleTypes[s.rng.Intn(len(obstacleTypes))]
		shape := obstacleShapes[t]
		s.obstacles = append(s.obstacles, Obstacle{
			ID:   s.ids.Next(),
			Type: t,
			Lane: lane,
			X:    s.canvasW + s.cfg.SpawnOffset + s.lanes.Offset(lane),
			Y:    s.lanes.GroundY - shape.H + shape.YOff,
			W:    shape.W,
			H:    shape.H,
		})
	}
	s.lastPattern = pattern
	s.spawns++
}

// pickPattern returns the lanes to block. Every pattern blocks at most
// count-1 lanes.
func (s *ObstacleSpawner) pickPattern() []int {
	n := s.lanes.Count()
	p := s.cfg.Patterns
	r := s.rng.Float64() * (p.Single + p.Adjacent + p.Outer)

	switch {
	case r < p.Single:
		return []int{s.rng.Intn(n)}
	case r < p.Single+p.Adjacent:
		start := s.rng.Intn(n - 1)
		return []int{start, start + 1}
	default:
		return []int{0, n - 1}
	}
}

// RemoveByID flags an obstacle as destroyed. It stays in the list until the
// next cull so effects can use its last position. Repeated calls are no-ops.
func (s *ObstacleSpawner) RemoveByID(id int) bool {
	for i := range s.obstacles {
		if s.obstacles[i].ID == id {
			s.obstacles[i].Removed = true
			return true
		}
	}
	return false
}

// Obstacles returns the live obstacle slice. Callers must not retain it
// across updates.
func (s *ObstacleSpawner) Obstacles() []Obstacle {
	return s.obstacles
}

// LastPattern returns the lanes blocked by the most recent spawn.
func (s *ObstacleSpawner) LastPattern() []int {
	return s.lastPattern
}

// Spawns returns how many spawn events happened since the last reset.
func (s *ObstacleSpawner) Spawns() int {
	return s.spawns
}
