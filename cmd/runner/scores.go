package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-runner/internal/games/runner"
	"github.com/vovakirdan/lane-runner/internal/storage"
)

var (
	flagScoresCharacter string
	flagScoresLimit     int
	flagScoresClear     bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best runs, for everyone or for one runner.

Examples:
  runner scores
  runner scores --character rahul
  runner scores --limit 25
  runner scores --character biden --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVarP(&flagScoresCharacter, "character", "c", "", "Only this runner (id, key or power name)")
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the selected runs instead of showing them")
}

func runScores(_ *cobra.Command, _ []string) error {
	character := storage.AllCharacters
	title := "all runners"
	if flagScoresCharacter != "" {
		id, err := runner.ParseCharacter(flagScoresCharacter)
		if err != nil {
			return err
		}
		character = int(id)
		title = id.String()
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening runs database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(character); err != nil {
			return err
		}
		fmt.Printf("Cleared runs for %s.\n", title)
		return nil
	}

	runs, err := store.TopRuns(character, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Best Runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'runner play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-8s  %-6s  %-8s  %s\n", "Rank", "Score", "Runner", "Coins", "Dist", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %-6s  %-8s  %s\n", "----", "-----", "------", "-----", "----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-10d  %-8s  %-6d  %-8s  %s\n",
			i+1, int(r.Score), runner.CharacterID(r.Character), r.Coins,
			fmt.Sprintf("%dm", r.Distance), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if character != storage.AllCharacters {
		return nil
	}

	stats, err := store.CharacterStats()
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("  %-8s  %-5s  %-10s  %-10s  %s\n", "Runner", "Runs", "Best", "Average", "Coins")
	for _, c := range runner.Characters() {
		s, ok := stats[int(c.ID)]
		if !ok {
			continue
		}
		fmt.Printf("  %-8s  %-5d  %-10d  %-10d  %d\n", c.Key, s.Runs, int(s.HighScore), int(s.AvgScore), s.TotalCoins)
	}
	return nil
}
