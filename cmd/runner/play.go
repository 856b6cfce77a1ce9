package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-runner/internal/games/runner"
	"github.com/vovakirdan/lane-runner/internal/platform/tui"
)

var flagCharacter string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Pick a runner and play",
	Long: `Start the runner. Without --character a select screen comes first;
after every game you return to it.

Controls:
  Left/Right, A/D  - Change lane
  Up/W/Space       - Jump
  Down/S           - Slide (hold)
  Z/X              - Use power
  Mouse drag       - Swipe
  P/Esc            - Pause
  R/Enter          - Run again (after game over)
  C/B              - Back to character select (paused or game over)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower start and gentler ramp
  normal - Speed ramps with score
  hard   - Faster start and steeper ramp
  fixed  - No ramp, speed stays at the initial value

Examples:
  runner play
  runner play --character trump
  runner play -c "kgb ghost" --difficulty hard
  runner play --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVarP(&flagCharacter, "character", "c", "", "Runner to play (id, key or power name)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	runnerCfg, err := loadRunnerConfig()
	if err != nil {
		return err
	}

	direct := false
	character := runner.CharModi
	if flagCharacter != "" {
		character, err = runner.ParseCharacter(flagCharacter)
		if err != nil {
			return fmt.Errorf("%w (run 'runner characters' to see the roster)", err)
		}
		direct = true
	}

	logger, closeLog := fileLogger("runner")
	defer closeLog()

	store := openStore()
	if store != nil {
		defer store.Close()
	}
	var ledger tui.Ledger
	if store != nil {
		ledger = store
	}

	cfg := runtimeConfig()
	for {
		if !direct {
			sel, err := tui.RunSelect(store, logger, cfg, character)
			if err != nil {
				return err
			}
			cfg = sel.Config
			if sel.Quit {
				return nil
			}
			if sel.WantsScoreboard {
				goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
				if err != nil {
					fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				}
				if goBack {
					continue
				}
				return nil
			}
			character = sel.Character
		}
		direct = false

		logger.Info("playing", "character", character, "seed", cfg.Seed)
		res, err := tui.RunGame(character, ledger, logger, cfg, runnerCfg)
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		logger.Info("left game", "character", character, "runs", res.Runs, "best", int(res.HighScore))
		if !res.BackToSelect {
			return nil
		}
	}
}
