package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/games/runner"
	"github.com/vovakirdan/lane-runner/internal/storage"
)

var (
	flagSimCharacter string
	flagSimTicks     int
	flagSimSave      bool
	flagSimFrame     bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the autopilot headless",
	Long: `Run the simulation without a terminal UI, steered by the autopilot,
for a fixed number of frames or until the run ends. The same seed always
produces the same run.

Examples:
  runner sim --seed 42
  runner sim --character kejriwal --ticks 50000 --save
  runner sim --frame`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVarP(&flagSimCharacter, "character", "c", "modi", "Runner to simulate (id, key or power name)")
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 36000, "Maximum frames to simulate")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record the run in the runs database")
	simCmd.Flags().BoolVar(&flagSimFrame, "frame", false, "Print the last frame")
}

func runSim(_ *cobra.Command, _ []string) error {
	runnerCfg, err := loadRunnerConfig()
	if err != nil {
		return err
	}
	character, err := runner.ParseCharacter(flagSimCharacter)
	if err != nil {
		return err
	}

	logger := newLogger(os.Stderr, "sim")
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var batches []int
	rt := core.DefaultConfig()
	w, h := rt.CanvasSize()
	engine, err := runner.New(runner.Options{
		Config: runnerCfg,
		Width:  w,
		Height: h,
		Seed:   seed,
		Logger: logger.WithPrefix("engine"),
		Callbacks: runner.Callbacks{
			OnCoinBatch: func(n int) { batches = append(batches, n) },
			OnDeath: func(killer runner.ObstacleType, c runner.CharacterID) {
				logger.Info("caught", "by", killer, "quip", runner.Quip(killer, c))
			},
			OnPowerUsed: func(power string) { logger.Debug("power", "name", power) },
		},
	})
	if err != nil {
		return err
	}
	if err := engine.Init(character); err != nil {
		return err
	}
	engine.Start()

	fps := flagFPS
	if fps <= 0 {
		fps = 60
	}
	dt := 1000 / float64(fps)
	pilot := runner.NewAutopilot()

	frames := 0
	for ; frames < flagSimTicks && engine.State() != runner.EngineDead; frames++ {
		pilot.Drive(engine)
		engine.Step(dt)
	}

	stats := engine.Stats()
	logger.Info("simulation finished",
		"character", character,
		"seed", seed,
		"frames", frames,
		"state", stats.State,
		"score", int(stats.Score),
		"coins", stats.Coins,
		"distance", stats.Distance,
		"speed", fmt.Sprintf("%.2f", stats.Speed),
	)

	if flagSimFrame {
		screen := core.NewScreen(rt.ScreenW, rt.ScreenH)
		engine.Render(screen)
		fmt.Println(screen.String())
	}

	if !flagSimSave {
		return nil
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening runs database: %w", err)
	}
	defer store.Close()

	runID := storage.NewRunID()
	for _, n := range batches {
		if err := store.RecordCoinBatch(runID, n); err != nil {
			return err
		}
	}
	if _, err := store.SubmitRun(storage.RunResult{
		ID:        runID,
		Character: int(character),
		Score:     stats.Score,
		Coins:     stats.Coins,
		Distance:  stats.Distance,
	}); err != nil {
		return err
	}
	logger.Info("run saved", "run", runID, "batches", len(batches))
	return nil
}
