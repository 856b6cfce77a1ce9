package runner

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/lane-runner/internal/config"
)

func newTestObstacles(seed int64) (*ObstacleSpawner, *IDSource) {
	cfg := config.DefaultRunnerConfig()
	ids := NewIDSource()
	lanes := ComputeLanes(cfg.Lanes, 960, 576)
	return NewObstacleSpawner(cfg.Obstacles, rand.New(rand.NewSource(seed)), ids, lanes, 960), ids
}

func newTestCoins(seed int64) *CoinSpawner {
	cfg := config.DefaultRunnerConfig()
	lanes := ComputeLanes(cfg.Lanes, 960, 576)
	return NewCoinSpawner(cfg.Coins, rand.New(rand.NewSource(seed)), NewIDSource(), lanes, 960)
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestComputeLanes(t *testing.T) {
	lanes := ComputeLanes(config.DefaultRunnerConfig().Lanes, 1000, 500)
	if lanes.Count() != 3 {
		t.Fatalf("lane count = %d, expected 3", lanes.Count())
	}
	for i, want := range []float64{280, 500, 720} {
		if !approx(lanes.X[i], want) {
			t.Errorf("lane %d x = %v, expected %v", i, lanes.X[i], want)
		}
	}
	if !approx(lanes.GroundY, 390) {
		t.Errorf("ground = %v, expected 390", lanes.GroundY)
	}
	if lanes.Offset(1) != 0 || !approx(lanes.Offset(0), -220) || lanes.Offset(7) != 0 {
		t.Errorf("offsets wrong: %v %v %v", lanes.Offset(0), lanes.Offset(1), lanes.Offset(7))
	}
}

func TestPatternsNeverBlockAllLanes(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		s, _ := newTestObstacles(seed)
		for i := 0; i < 2000; i++ {
			pattern := s.pickPattern()
			if len(pattern) == 0 || len(pattern) >= 3 {
				t.Fatalf("seed %d: pattern %v blocks %d lanes", seed, pattern, len(pattern))
			}
			seen := map[int]bool{}
			for _, lane := range pattern {
				if lane < 0 || lane > 2 {
					t.Fatalf("seed %d: lane %d out of range", seed, lane)
				}
				seen[lane] = true
			}
			if len(seen) != len(pattern) {
				t.Fatalf("seed %d: duplicate lane in %v", seed, pattern)
			}
		}
	}
}

func TestEverySpawnLeavesALaneFree(t *testing.T) {
	s, _ := newTestObstacles(7)
	seen := 0
	for tick := 0; tick < 60*600; tick++ {
		before := s.Spawns()
		s.Update(16, 12)
		if s.Spawns() == before {
			continue
		}
		seen++

		free := map[int]bool{0: true, 1: true, 2: true}
		for _, lane := range s.LastPattern() {
			delete(free, lane)
		}
		if len(free) == 0 {
			t.Fatalf("spawn %d blocked every lane: %v", seen, s.LastPattern())
		}
	}
	if seen < 100 {
		t.Errorf("only %d spawns, expected a long run", seen)
	}
}

func TestObstacleSpawnIntervalFloor(t *testing.T) {
	s, _ := newTestObstacles(3)
	elapsed := 0.0
	last := -1.0
	for tick := 0; tick < 10000; tick++ {
		before := s.Spawns()
		s.Update(10, 22)
		elapsed += 10
		if s.Spawns() == before {
			continue
		}
		if last >= 0 && elapsed-last < 1100 {
			t.Fatalf("spawns %.0fms apart at speed 22, floor is 1100ms", elapsed-last)
		}
		last = elapsed
	}
}

func TestObstaclePlacement(t *testing.T) {
	s, _ := newTestObstacles(11)
	s.spawn()
	for _, o := range s.Obstacles() {
		shape := obstacleShapes[o.Type]
		expectedY := s.lanes.GroundY - shape.H + shape.YOff
		if o.Y != expectedY {
			t.Errorf("%s y = %v, expected %v", o.Type, o.Y, expectedY)
		}
		if o.W != shape.W || o.H != shape.H {
			t.Errorf("%s size = %vx%v, expected %vx%v", o.Type, o.W, o.H, shape.W, shape.H)
		}
		expectedX := 960 + 40 + s.lanes.Offset(o.Lane)
		if o.X != expectedX {
			t.Errorf("%s x = %v, expected %v", o.Type, o.X, expectedX)
		}
	}
}

func TestFloatingTypes(t *testing.T) {
	floating := map[ObstacleType]bool{
		ObstacleSubpoena:  true,
		ObstacleFlyingMic: true,
		ObstacleTaxNotice: true,
	}
	for _, typ := range ObstacleTypes() {
		if typ.Floating() != floating[typ] {
			t.Errorf("%s floating = %v", typ, typ.Floating())
		}
	}
	if len(ObstacleTypes()) != 8 {
		t.Errorf("expected 8 obstacle types, got %d", len(ObstacleTypes()))
	}
}

func TestObstacleIDsMonotonic(t *testing.T) {
	s, _ := newTestObstacles(5)
	last := 0
	for i := 0; i < 50; i++ {
		s.spawn()
	}
	for _, o := range s.Obstacles() {
		if o.ID <= last {
			t.Fatalf("id %d not above %d", o.ID, last)
		}
		last = o.ID
	}
}

func TestRemoveByIDIdempotent(t *testing.T) {
	s, _ := newTestObstacles(1)
	s.spawn()
	id := s.Obstacles()[0].ID
	count := len(s.Obstacles())

	if !s.RemoveByID(id) {
		t.Fatal("remove should find the obstacle")
	}
	first := append([]Obstacle(nil), s.Obstacles()...)
	s.RemoveByID(id)
	second := s.Obstacles()

	if len(second) != count {
		t.Errorf("removal should not shrink the list before culling")
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("second removal changed state: %+v vs %+v", first[i], second[i])
		}
	}

	s.Update(1, 1)
	for _, o := range s.Obstacles() {
		if o.ID == id {
			t.Error("removed obstacle should be culled on the next update")
		}
	}

	if s.RemoveByID(99999) {
		t.Error("unknown id should report false")
	}
}

func TestObstacleCull(t *testing.T) {
	s, _ := newTestObstacles(2)
	s.obstacles = append(s.obstacles, Obstacle{ID: 1, Type: ObstacleChair, X: -30, W: 36, H: 40})
	s.obstacles = append(s.obstacles, Obstacle{ID: 2, Type: ObstacleChair, X: -60, W: 36, H: 40})
	s.Update(1, 0)

	if len(s.Obstacles()) != 1 || s.Obstacles()[0].ID != 1 {
		t.Errorf("expected only obstacle 1 to survive, got %+v", s.Obstacles())
	}
}

func TestObstacleAnimation(t *testing.T) {
	s, _ := newTestObstacles(2)
	s.obstacles = append(s.obstacles, Obstacle{ID: 1, Type: ObstacleReporter, X: 500, W: 32, H: 64})
	for i := 0; i < 4; i++ {
		s.Update(50, 0)
	}
	if s.Obstacles()[0].AnimFrame != 1 {
		t.Errorf("anim frame = %d, expected 1 after 200ms", s.Obstacles()[0].AnimFrame)
	}
}

func TestCollectByIDIdempotent(t *testing.T) {
	c := newTestCoins(9)
	c.spawnBribe(0, 500)
	c.spawnHidden()
	visible := c.Coins()[0].ID
	hidden := c.HiddenCoins()[0].ID

	for _, id := range []int{visible, hidden} {
		if !c.CollectByID(id) {
			t.Errorf("first collect of %d should change state", id)
		}
		if c.CollectByID(id) {
			t.Errorf("second collect of %d should be a no-op", id)
		}
	}
	if !c.Coins()[0].Collected || !c.HiddenCoins()[0].Collected {
		t.Error("both coins should be collected")
	}

	c.Update(1, 0, false, 0, 0)
	if len(c.Coins()) != 0 || len(c.HiddenCoins()) != 0 {
		t.Error("collected coins should be culled")
	}
}

func TestRevealHiddenCoins(t *testing.T) {
	c := newTestCoins(4)
	c.spawnHidden()
	c.spawnHidden()
	before := len(c.Coins())

	if n := c.RevealHiddenCoins(); n != 2 {
		t.Errorf("revealed %d, expected 2", n)
	}
	if len(c.HiddenCoins()) != 0 {
		t.Error("hidden pool should be empty")
	}
	if len(c.Coins()) != before+2 {
		t.Errorf("visible pool = %d, expected %d", len(c.Coins()), before+2)
	}
	for _, coin := range c.Coins() {
		if coin.Hidden {
			t.Error("revealed coin still marked hidden")
		}
	}
}

func TestCoinGlowStaysInBounds(t *testing.T) {
	c := newTestCoins(6)
	c.spawnBribe(1, 100000)
	flips := 0
	dir := c.Coins()[0].GlowDir
	for i := 0; i < 2000; i++ {
		c.Update(16, 0, false, 0, 0)
		for _, k := range c.Coins() {
			if k.GlowAlpha < 0.3 || k.GlowAlpha > 1 {
				t.Fatalf("glow %v out of [0.3, 1]", k.GlowAlpha)
			}
			if k.BobOffset < -5 || k.BobOffset > 5 {
				t.Fatalf("bob %v out of [-5, 5]", k.BobOffset)
			}
		}
		// Speed 0 keeps the first coin at the head of the pool.
		if first := c.Coins()[0]; first.GlowDir != dir {
			flips++
			dir = first.GlowDir
		}
	}
	if flips < 2 {
		t.Errorf("glow direction flipped %d times, expected it to oscillate", flips)
	}
}

func TestMagnetPullsCoins(t *testing.T) {
	c := newTestCoins(8)
	c.coins = append(c.coins, Coin{ID: 1, Type: CoinBribe, X: 600, Y: 300, W: 20, H: 20, GlowDir: 1, GlowAlpha: 0.5})
	c.coins = append(c.coins, Coin{ID: 2, Type: CoinBribe, X: 900, Y: 300, W: 20, H: 20, GlowDir: 1, GlowAlpha: 0.5})

	px, py := 480.0, 310.0
	near := c.coins[0].X
	far := c.coins[1].X
	c.Update(16, 0, true, px, py)

	if c.Coins()[0].X >= near {
		t.Errorf("coin within radius should move toward the player: %v -> %v", near, c.Coins()[0].X)
	}
	if c.Coins()[1].X != far {
		t.Errorf("coin outside radius should not move: %v -> %v", far, c.Coins()[1].X)
	}

	// Closer coins are pulled harder.
	c2 := newTestCoins(8)
	c2.coins = append(c2.coins, Coin{ID: 3, Type: CoinBribe, X: 700, Y: 300, W: 20, H: 20, GlowDir: 1, GlowAlpha: 0.5})
	c2.coins = append(c2.coins, Coin{ID: 4, Type: CoinBribe, X: 540, Y: 300, W: 20, H: 20, GlowDir: 1, GlowAlpha: 0.5})
	c2.Update(16, 0, true, px, py)
	farStep := 700 - c2.Coins()[0].X
	nearStep := 540 - c2.Coins()[1].X
	if nearStep <= farStep {
		t.Errorf("near step %v should exceed far step %v", nearStep, farStep)
	}
}

func TestCoinSpawnShapes(t *testing.T) {
	c := newTestCoins(12)
	types := map[CoinType]int{}
	for i := 0; i < 3000; i++ {
		c.spawn()
	}
	for _, coin := range c.Coins() {
		types[coin.Type]++
		if coin.Lane < 0 || coin.Lane > 2 {
			t.Fatalf("lane %d out of range", coin.Lane)
		}
	}
	if types[CoinBribe] == 0 || types[CoinDiamond] == 0 || types[CoinStar] == 0 {
		t.Errorf("expected all coin kinds, got %v", types)
	}
	if types[CoinBribe] < types[CoinDiamond]+types[CoinStar] {
		t.Errorf("bribe coins should dominate: %v", types)
	}
	if len(c.HiddenCoins()) == 0 {
		t.Error("expected some hidden coins")
	}
}

func TestCoinSpawnIntervalFloor(t *testing.T) {
	c := newTestCoins(1)
	spawned := 0
	elapsed := 0.0
	for elapsed < 60000 {
		before := c.ids.Peek()
		c.Update(10, 30, false, 0, 0)
		elapsed += 10
		if c.ids.Peek() != before {
			spawned++
		}
	}
	if spawned > 60000/600+1 {
		t.Errorf("%d spawns in 60s exceeds the 600ms floor", spawned)
	}
}
