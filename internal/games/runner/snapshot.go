package runner

// Snapshot is a read-only copy of everything a renderer or autopilot needs.
type Snapshot struct {
	State     EngineState
	Stats     GameStats
	CanvasW   float64
	CanvasH   float64
	Lanes     Lanes
	Character Character
	Player    Player
	Obstacles []Obstacle
	Coins     []Coin
	Hidden    []Coin
	ScanOn    bool // Hidden coins are drawn as outlines while the scan power runs

	Layers    [3]Layer
	Clouds    []Cloud
	Buildings []Building
	Specks    []Speck
	Particles []Particle
	ShakeX    float64
	ShakeY    float64

	Killer        *Killer
	DeathProgress float64
	DeathTimer    float64
}

// Snapshot copies the current frame. It returns a zero snapshot before Init.
func (e *Engine) Snapshot() Snapshot {
	if e.player == nil {
		return Snapshot{State: e.state, Stats: e.Stats(), CanvasW: e.canvasW, CanvasH: e.canvasH}
	}

	s := Snapshot{
		State:     e.state,
		Stats:     e.Stats(),
		CanvasW:   e.canvasW,
		CanvasH:   e.canvasH,
		Lanes:     Lanes{X: append([]float64(nil), e.lanes.X...), GroundY: e.lanes.GroundY},
		Character: e.character,
		Player:    *e.player,
		Obstacles: append([]Obstacle(nil), e.obstacles.Obstacles()...),
		Coins:     append([]Coin(nil), e.coins.Coins()...),
		Hidden:    append([]Coin(nil), e.coins.HiddenCoins()...),
		ScanOn:    e.character.ID == CharKejriwal && e.player.Power.Active,

		Layers:    e.bg.Layers,
		Clouds:    append([]Cloud(nil), e.bg.Clouds...),
		Buildings: append([]Building(nil), e.bg.Buildings...),
		Specks:    append([]Speck(nil), e.bg.Specks...),
		Particles: append([]Particle(nil), e.fx.P...),

		DeathProgress: e.DeathProgress(),
		DeathTimer:    e.deathTimer,
	}
	s.ShakeX, s.ShakeY = e.fx.ShakeOffset()
	if e.killer != nil {
		k := *e.killer
		s.Killer = &k
	}
	return s
}
