// Package runner implements the lane runner simulation: a three-lane endless
// runner driven by a fixed-cadence frame loop. The engine owns every entity
// and reports to its host only through callbacks and copies of its state.
package runner

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
)

// Callbacks are invoked synchronously from inside a frame. All are optional;
// handlers must not block.
type Callbacks struct {
	OnScoreUpdate func(stats GameStats)
	OnCoinBatch   func(count int)
	OnDeath       func(killer ObstacleType, character CharacterID)
	OnGameOver    func(score float64, coins int)
	OnPowerUsed   func(power string)
}

// Options configure a new engine.
type Options struct {
	Config    *config.RunnerConfig // nil uses the defaults
	Width     float64              // Canvas width in pixels
	Height    float64              // Canvas height in pixels
	Seed      int64
	Logger    *log.Logger // nil disables engine logging
	Callbacks Callbacks
}

// Killer records the obstacle that ended the run. It only exists while dying.
type Killer struct {
	Type ObstacleType
	Box  core.Box
}

// Engine runs one player through consecutive runs.
type Engine struct {
	cfg        config.RunnerConfig
	log        *log.Logger
	cb         Callbacks
	difficulty *config.DifficultyManager

	canvasW, canvasH float64
	lanes            Lanes
	seed             int64
	runs             int64

	// Owned across restarts so ids are never reused.
	obstacleIDs *IDSource
	coinIDs     *IDSource

	character Character
	player    *Player
	obstacles *ObstacleSpawner
	coins     *CoinSpawner
	bg        *Background
	fx        *Effects
	world     World

	state        EngineState
	stats        GameStats
	highScore    float64
	rampSpeed    float64
	distanceFrac float64
	deathTimer   float64
	killer       *Killer

	scheduled bool
	lastFrame time.Time
	input     inputState
}

// New validates the options and creates an engine. Call Init before Start.
func New(opts Options) (*Engine, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: %vx%v", ErrNoSurface, opts.Width, opts.Height)
	}

	cfg := config.DefaultRunnerConfig()
	if opts.Config != nil {
		cfg = *opts.Config
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("runner: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	e := &Engine{
		cfg:         cfg,
		log:         logger,
		cb:          opts.Callbacks,
		difficulty:  config.NewDifficultyManager(cfg.Speed),
		seed:        opts.Seed,
		obstacleIDs: NewIDSource(),
		coinIDs:     NewIDSource(),
		input:       newInputState(),
	}
	e.world = engineWorld{e}
	e.setCanvas(opts.Width, opts.Height)
	e.stats = e.freshStats()
	return e, nil
}

func (e *Engine) setCanvas(w, h float64) {
	e.canvasW, e.canvasH = w, h
	e.lanes = ComputeLanes(e.cfg.Lanes, w, h)
}

func (e *Engine) freshStats() GameStats {
	return GameStats{
		Multiplier: 1,
		Speed:      e.difficulty.Speed(0),
		State:      EngineIdle,
		HighScore:  e.highScore,
	}
}

// Init allocates every subsystem fresh for characterID and leaves the
// engine idle with input attached.
func (e *Engine) Init(characterID CharacterID) error {
	ch, err := LookupCharacter(characterID)
	if err != nil {
		return err
	}

	e.scheduled = false
	e.character = ch
	e.runs++
	runSeed := e.seed + e.runs

	rng := rand.New(rand.NewSource(runSeed))
	e.player = NewPlayer(&e.cfg, e.lanes, ch)
	e.obstacles = NewObstacleSpawner(e.cfg.Obstacles, rng, e.obstacleIDs, e.lanes, e.canvasW)
	e.coins = NewCoinSpawner(e.cfg.Coins, rng, e.coinIDs, e.lanes, e.canvasW)
	e.bg = NewBackground(runSeed+1, e.canvasW, e.canvasH, e.lanes.GroundY)
	e.fx = NewEffects(e.cfg.Effects, runSeed+2)

	e.stats = e.freshStats()
	e.rampSpeed = e.stats.Speed
	e.distanceFrac = 0
	e.deathTimer = 0
	e.setState(EngineIdle)
	e.input.attach()

	e.log.Debug("run initialized", "character", ch.Key, "seed", runSeed)
	return nil
}

// Start begins playing from idle and schedules frames.
func (e *Engine) Start() {
	if e.player == nil || e.state != EngineIdle {
		return
	}
	e.setState(EnginePlaying)
	e.scheduled = true
	e.lastFrame = time.Time{}
	e.log.Debug("run started", "character", e.character.Key)
}

// Pause stops scheduling frames. State is kept.
func (e *Engine) Pause() {
	if !e.scheduled {
		return
	}
	e.scheduled = false
	e.log.Debug("paused", "state", e.state)
}

// Resume schedules frames again. The first frame after resuming has no
// elapsed time.
func (e *Engine) Resume() {
	if e.scheduled || e.player == nil || !e.input.attached {
		return
	}
	if e.state != EnginePlaying && e.state != EngineDying {
		return
	}
	e.scheduled = true
	e.lastFrame = time.Time{}
	e.log.Debug("resumed", "state", e.state)
}

// Restart reinitializes everything for characterID and starts at once.
func (e *Engine) Restart(characterID CharacterID) error {
	e.scheduled = false
	if err := e.Init(characterID); err != nil {
		return err
	}
	e.Start()
	e.log.Debug("restarted", "character", e.character.Key)
	return nil
}

// Destroy cancels scheduling and detaches input. A destroyed engine can be
// brought back with Init.
func (e *Engine) Destroy() {
	e.scheduled = false
	e.input.detach()
	e.log.Debug("destroyed")
}

// Resize recomputes lane geometry for a new canvas.
func (e *Engine) Resize(width, height float64) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %vx%v", ErrNoSurface, width, height)
	}
	e.setCanvas(width, height)
	if e.player != nil {
		e.player.SetLanes(e.lanes)
		e.obstacles.Resize(e.lanes, width)
		e.coins.Resize(e.lanes, width)
		e.bg.Resize(width, height, e.lanes.GroundY)
	}
	return nil
}

// Scheduled reports whether the host should deliver another frame.
func (e *Engine) Scheduled() bool {
	return e.scheduled
}

// Frame runs one scheduled frame at wall time now. Frames delivered while
// unscheduled are dropped.
func (e *Engine) Frame(now time.Time) {
	if !e.scheduled {
		return
	}
	var dt float64
	if !e.lastFrame.IsZero() {
		dt = float64(now.Sub(e.lastFrame)) / float64(time.Millisecond)
	}
	e.lastFrame = now
	e.Step(dt)
}

// Step advances the simulation by dt milliseconds, clamped to the frame cap.
// It ignores scheduling, which makes it the entry point for headless runs.
func (e *Engine) Step(dt float64) {
	if e.player == nil {
		return
	}
	dt = core.ClampF(dt, 0, e.cfg.Engine.MaxFrameMs)

	switch e.state {
	case EngineDying:
		e.deathTimer += dt
		e.fx.Update(dt)
		if e.deathTimer > e.cfg.Engine.DyingMs {
			e.finish()
		}
		return
	case EnginePlaying:
	default:
		return
	}

	speed := e.stats.Speed

	ramp := math.Max(e.difficulty.Speed(e.stats.Score), e.rampSpeed)
	e.rampSpeed = ramp
	e.stats.Speed = ramp

	e.distanceFrac += speed
	if ppp := e.cfg.Scoring.PixelsPerPoint; e.distanceFrac >= ppp {
		steps := math.Floor(e.distanceFrac / ppp)
		e.stats.Distance += int(steps)
		e.stats.Score += steps * e.stats.Multiplier
		e.distanceFrac -= steps * ppp
	}

	e.player.Update(dt, e.world)
	e.bg.Update(dt, speed)
	e.obstacles.Update(dt, speed)
	px, py := e.player.Center()
	e.coins.Update(dt, speed, e.player.MagnetActive, px, py)

	if e.checkObstacles() {
		return
	}
	e.checkCoins()
	e.fx.Update(dt)

	if e.cb.OnScoreUpdate != nil {
		e.cb.OnScoreUpdate(e.stats.Clone())
	}
}

// checkObstacles handles the first obstacle hit. It reports true when the
// hit killed the player.
func (e *Engine) checkObstacles() bool {
	p := e.player
	if p.Invincible || p.GhostActive {
		return false
	}

	obstacles := e.obstacles.Obstacles()
	for i := range obstacles {
		o := obstacles[i]
		if o.Removed || !p.CollidesWith(o.X, o.Y, o.W, o.H) {
			continue
		}
		if p.WallActive {
			e.obstacles.RemoveByID(o.ID)
			p.ConsumePower()
			cx, cy := o.Box().Center()
			e.fx.Spawn(EffectPower, cx, cy, core.ColorBrightRed)
			e.log.Debug("obstacle destroyed", "type", o.Type, "id", o.ID)
			continue
		}
		e.triggerDeath(o)
		return true
	}
	return false
}

func (e *Engine) checkCoins() {
	bounds := e.player.Bounds()
	for _, pool := range [][]Coin{e.coins.Coins(), e.coins.HiddenCoins()} {
		for i := range pool {
			c := pool[i]
			if c.Collected || !bounds.Intersects(c.Box()) {
				continue
			}
			e.collect(c)
		}
	}
}

func (e *Engine) collect(c Coin) {
	if !e.coins.CollectByID(c.ID) {
		return
	}

	s := &e.stats
	s.Coins++
	s.TotalSessionCoins++
	s.SessionCoins++
	s.CollectedCoinIDs = append(s.CollectedCoinIDs, c.ID)
	s.Combo++
	s.Multiplier = Multiplier(s.Combo, e.cfg.Scoring)
	s.Score += c.Value * s.Multiplier

	if c.Type == CoinStar {
		e.player.GrantInvincibility(e.cfg.Scoring.StarInvincibilityMs)
		px, _ := e.player.Center()
		e.fx.Spawn(EffectPower, px, e.player.Y, core.ColorBrightMagenta)
	}
	cx, cy := c.Box().Center()
	e.fx.Spawn(EffectCoin, cx, cy, core.ColorDefault)

	if s.SessionCoins >= e.cfg.Scoring.BatchSize && c.CoinCount > 0 {
		e.emitBatch()
	}
}

func (e *Engine) emitBatch() {
	n := e.stats.SessionCoins
	if n <= 0 {
		return
	}
	e.stats.SessionCoins = 0
	if e.cb.OnCoinBatch != nil {
		e.cb.OnCoinBatch(n)
	}
}

func (e *Engine) triggerDeath(o Obstacle) {
	e.setState(EngineDying)
	e.deathTimer = 0
	e.player.Die()
	e.fx.Spawn(EffectHit, o.X, o.Y, core.ColorDefault)
	e.fx.StartShake(e.cfg.Effects.DeathShake.Amount, e.cfg.Effects.DeathShake.DurationMs)
	e.killer = &Killer{Type: o.Type, Box: o.Box()}

	e.log.Debug("player died", "killer", o.Type, "score", e.stats.Score)
	if e.cb.OnDeath != nil {
		e.cb.OnDeath(o.Type, e.character.ID)
	}

	// Nothing collected is left unreported.
	e.emitBatch()
}

func (e *Engine) finish() {
	e.setState(EngineDead)
	e.scheduled = false
	if e.stats.Score > e.highScore {
		e.highScore = e.stats.Score
	}
	e.stats.HighScore = e.highScore

	e.log.Debug("run over", "score", e.stats.Score, "coins", e.stats.TotalSessionCoins)
	if e.cb.OnGameOver != nil {
		e.cb.OnGameOver(e.stats.Score, e.stats.TotalSessionCoins)
	}
}

// setState is the only place the lifecycle changes. Leaving dying drops
// the killer record.
func (e *Engine) setState(s EngineState) {
	if s != EngineDying {
		e.killer = nil
	}
	e.state = s
	e.stats.State = s
}

// activatePower fires the character power from player input.
func (e *Engine) activatePower() {
	if e.state != EnginePlaying || !e.player.ActivatePower(e.world) {
		return
	}
	cx, cy := e.player.Center()
	e.fx.Spawn(EffectPower, cx, cy, e.character.Accent)
	e.log.Debug("power used", "power", e.character.Power.Name)
	if e.cb.OnPowerUsed != nil {
		e.cb.OnPowerUsed(e.character.Power.Name)
	}
}

// State returns the lifecycle state.
func (e *Engine) State() EngineState {
	return e.state
}

// Stats returns a copy of the current stats.
func (e *Engine) Stats() GameStats {
	return e.stats.Clone()
}

// Character returns the character of the current run.
func (e *Engine) Character() Character {
	return e.character
}

// Config returns the configuration the engine runs with.
func (e *Engine) Config() config.RunnerConfig {
	return e.cfg
}

// HighScore returns the best score seen by this engine.
func (e *Engine) HighScore() float64 {
	return e.highScore
}

// SetHighScore seeds the high score, for example from a ledger. Lower
// values are ignored.
func (e *Engine) SetHighScore(score float64) {
	if score > e.highScore {
		e.highScore = score
		e.stats.HighScore = score
	}
}

// DeathProgress returns the death overlay progress in [0, 1].
func (e *Engine) DeathProgress() float64 {
	switch e.state {
	case EngineDying:
		return math.Min(e.deathTimer/e.cfg.Engine.DeathOverlayMs, 1)
	case EngineDead:
		return 1
	default:
		return 0
	}
}

// engineWorld exposes the engine to character powers.
type engineWorld struct {
	e *Engine
}

func (w engineWorld) RevealHiddenCoins() {
	n := w.e.coins.RevealHiddenCoins()
	w.e.log.Debug("hidden coins revealed", "count", n)
}

func (w engineWorld) BoostSpeed() {
	p := w.e.cfg.Power
	w.e.stats.Speed = config.Boosted(w.e.rampSpeed, p.BoostAmount, p.BoostCap)
}
