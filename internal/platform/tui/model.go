package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/games/runner"
	"github.com/vovakirdan/lane-runner/internal/storage"
)

// powerBanner is how long the power name stays in the HUD after use.
const powerBanner = 1500 * time.Millisecond

// runEvents collects what the engine reports through callbacks. The model
// is copied on every update, so it holds a pointer to one shared instance.
type runEvents struct {
	batches   []int
	quip      string
	power     string
	powerAt   time.Time
	overScore float64
	overCoins int
	over      bool
}

func (ev *runEvents) reset() {
	*ev = runEvents{}
}

func (ev *runEvents) callbacks() runner.Callbacks {
	return runner.Callbacks{
		OnCoinBatch: func(count int) {
			ev.batches = append(ev.batches, count)
		},
		OnDeath: func(killer runner.ObstacleType, character runner.CharacterID) {
			ev.quip = runner.Quip(killer, character)
		},
		OnGameOver: func(score float64, coins int) {
			ev.over = true
			ev.overScore = score
			ev.overCoins = coins
		},
		OnPowerUsed: func(power string) {
			ev.power = power
			ev.powerAt = time.Now()
		},
	}
}

// GameModel is the Bubble Tea model for playing the runner.
type GameModel struct {
	engine    *runner.Engine
	events    *runEvents
	screen    *core.Screen
	painter   *ScreenRenderer
	ledger    Ledger
	log       *log.Logger
	config    core.RuntimeConfig
	character runner.CharacterID
	keys      *KeyMapper

	runID     string
	submitted bool
	submitErr error
	runs      int

	ticking   bool
	paused    bool
	slideCode string // Held slide key, "" when not sliding
	slideSeq  int
	dragging  bool
	dragX     int
	dragY     int

	quitting     bool
	backToSelect bool
}

// NewGameModel creates a game model for character. The ledger and the
// runner config may be nil.
func NewGameModel(character runner.CharacterID, ledger Ledger, logger *log.Logger, cfg core.RuntimeConfig, runnerCfg *config.RunnerConfig) (GameModel, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.Default()
	}

	gameH := max(cfg.ScreenH-1, 1)
	canvasCfg := cfg
	canvasCfg.ScreenH = gameH
	w, h := canvasCfg.CanvasSize()

	events := &runEvents{}
	engine, err := runner.New(runner.Options{
		Config:    runnerCfg,
		Width:     w,
		Height:    h,
		Seed:      cfg.Seed,
		Logger:    logger.WithPrefix("engine"),
		Callbacks: events.callbacks(),
	})
	if err != nil {
		return GameModel{}, err
	}
	if err := engine.Init(character); err != nil {
		return GameModel{}, err
	}

	if ledger != nil {
		high, err := ledger.HighScore(int(character))
		if err != nil {
			logger.Warn("could not load high score", "err", err)
		}
		engine.SetHighScore(high)
	}

	return GameModel{
		engine:    engine,
		events:    events,
		screen:    core.NewScreen(cfg.ScreenW, gameH),
		painter:   NewScreenRenderer(nil),
		ledger:    ledger,
		log:       logger,
		config:    cfg,
		character: character,
		keys:      NewKeyMapper(),
		runID:     storage.NewRunID(),
		runs:      1,
		ticking:   true, // Init arms the first tick
	}, nil
}

// WithRenderer draws the playfield with r, the renderer of the
// terminal the model is shown on.
func (m GameModel) WithRenderer(r *lipgloss.Renderer) GameModel {
	m.painter = NewScreenRenderer(r)
	return m
}

// Init starts the run and the frame loop.
func (m GameModel) Init() tea.Cmd {
	m.engine.Start()
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)

	case slideReleaseMsg:
		if msg.seq == m.slideSeq && m.slideCode != "" {
			m.engine.KeyUp(m.slideCode)
			m.slideCode = ""
		}
		return m, nil

	case runSubmittedMsg:
		m.submitErr = msg.err
		if msg.err != nil {
			m.log.Error("could not record run", "run", msg.runID, "err", msg.err)
		} else {
			m.log.Info("run recorded", "run", msg.runID, "batches", msg.batches)
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.engine.Destroy()
		m.quitting = true
		return m, tea.Quit
	}

	state := m.engine.State()
	switch action {
	case core.ActionPause:
		if state != runner.EnginePlaying && state != runner.EngineDying {
			return m, nil
		}
		if m.paused {
			m.paused = false
			m.engine.Resume()
			return m, m.armTick()
		}
		m.paused = true
		m.releaseSlide()
		m.engine.Pause()
		return m, nil

	case core.ActionRestart, core.ActionConfirm:
		if state == runner.EngineDead {
			return m.restart()
		}
		return m, nil

	case core.ActionBack:
		if state == runner.EngineDead || m.paused {
			m.engine.Destroy()
			m.backToSelect = true
			return m, tea.Quit
		}
		return m, nil
	}

	if m.paused {
		return m, nil
	}
	code := m.keys.EngineCode(msg)
	if code == "" {
		return m, nil
	}

	// Terminals only report presses. Taps are a press and a release; a
	// slide stays held until its key stops repeating.
	if runner.ActionForKey(code) == core.ActionSlide {
		if m.slideCode == "" {
			m.slideCode = code
			m.engine.KeyDown(code)
		}
		m.slideSeq++
		return m, slideReleaseCmd(m.slideSeq)
	}
	m.engine.KeyDown(code)
	m.engine.KeyUp(code)
	return m, nil
}

// handleMouse turns a press-drag-release into a swipe.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.dragging = true
			m.dragX, m.dragY = msg.X, msg.Y
		}
	case tea.MouseActionRelease:
		if m.dragging && !m.paused {
			dx := float64((msg.X - m.dragX) * core.CellPixelsW)
			dy := float64((msg.Y - m.dragY) * core.CellPixelsH)
			m.engine.Swipe(dx, dy)
		}
		m.dragging = false
	}
	return m, nil
}

// handleResize keeps the canvas matched to the terminal. The top row is
// reserved for the HUD.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	gameH := max(msg.Height-1, 1)
	m.screen.Resize(msg.Width, gameH)

	canvas := m.config
	canvas.ScreenH = gameH
	w, h := canvas.CanvasSize()
	if err := m.engine.Resize(w, h); err != nil {
		m.log.Warn("resize ignored", "err", err)
	}
	return m, nil
}

// handleTick delivers a frame. Ticks re-arm only while the engine wants
// frames; a finished run is handed to the ledger once.
func (m GameModel) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	m.ticking = false
	m.engine.Frame(time.Time(msg))

	if m.engine.State() == runner.EngineDead && !m.submitted {
		m.submitted = true
		return m, m.submitCmd()
	}
	if m.engine.Scheduled() {
		return m, m.armTick()
	}
	return m, nil
}

func (m *GameModel) armTick() tea.Cmd {
	if m.ticking {
		return nil
	}
	m.ticking = true
	return tickCmd(m.config.TickRate)
}

func (m *GameModel) releaseSlide() {
	if m.slideCode != "" {
		m.engine.KeyUp(m.slideCode)
		m.slideCode = ""
	}
}

func (m GameModel) restart() (tea.Model, tea.Cmd) {
	m.releaseSlide()
	m.events.reset()
	if err := m.engine.Restart(m.character); err != nil {
		m.log.Error("restart failed", "err", err)
		return m, nil
	}
	m.runID = storage.NewRunID()
	m.submitted = false
	m.submitErr = nil
	m.paused = false
	m.runs++
	return m, m.armTick()
}

func (m GameModel) submitCmd() tea.Cmd {
	stats := m.engine.Stats()
	run := storage.RunResult{
		ID:        m.runID,
		Character: int(m.character),
		Score:     stats.Score,
		Coins:     stats.Coins,
		Distance:  stats.Distance,
	}
	m.log.Debug("submitting run", "run", run.ID, "score", run.Score, "coins", run.Coins)
	return submitRunCmd(m.ledger, run, m.events.batches)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.engine.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.log.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".runner", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.character, timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("screenshot failed", "err", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

// View renders the HUD above the scene.
func (m GameModel) View() string {
	if m.quitting || m.backToSelect {
		return ""
	}

	snap := m.engine.Snapshot()
	runner.Render(m.screen, snap)
	if snap.State == runner.EngineDying && m.events.quip != "" {
		m.screen.DrawTextCentered(m.screen.Height()/3, m.events.quip, core.ColorBrightWhite)
	}

	body := m.painter.Render(m.screen)
	switch {
	case snap.State == runner.EngineDead:
		body = m.overlay(m.gameOverBox(snap))
	case m.paused:
		body = m.overlay(pausedBox())
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.renderHUD(snap), body)
}

func (m GameModel) overlay(box string) string {
	return lipgloss.Place(m.screen.Width(), m.screen.Height(), lipgloss.Center, lipgloss.Center, box)
}

// Result reports how the game screen ended.
func (m GameModel) Result() GameResult {
	return GameResult{
		Character:    m.character,
		Runs:         m.runs,
		HighScore:    m.engine.HighScore(),
		BackToSelect: m.backToSelect,
		Quit:         m.quitting,
	}
}

// GameResult holds the outcome of a play session.
type GameResult struct {
	Character    runner.CharacterID
	Runs         int
	HighScore    float64
	BackToSelect bool
	Quit         bool
}

// RunGame plays character until the player quits or goes back to
// character select.
func RunGame(character runner.CharacterID, ledger Ledger, logger *log.Logger, cfg core.RuntimeConfig, runnerCfg *config.RunnerConfig) (GameResult, error) {
	model, err := NewGameModel(character, ledger, logger, cfg, runnerCfg)
	if err != nil {
		return GameResult{}, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Drag to swipe
	)

	finalModel, err := p.Run()
	if err != nil {
		return GameResult{}, err
	}
	m, ok := finalModel.(GameModel)
	if !ok {
		return GameResult{Character: character, Quit: true}, nil
	}
	return m.Result(), nil
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToSelect returns true if user asked for character select.
func (m GameModel) BackToSelect() bool {
	return m.backToSelect
}
