package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-runner/internal/games/runner"
)

var charactersCmd = &cobra.Command{
	Use:     "characters",
	Aliases: []string{"list"},
	Short:   "List the roster and their powers",
	Long:    `Shows every playable runner with its power.`,
	Run:     runCharacters,
}

func runCharacters(_ *cobra.Command, _ []string) {
	roster := runner.Characters()

	fmt.Println("Runners:")
	fmt.Println()

	maxKeyLen := 3 // "KEY" header
	for _, c := range roster {
		maxKeyLen = max(maxKeyLen, len(c.Key))
	}

	fmt.Printf("  %-2s  %-*s  %-16s  %s\n", "ID", maxKeyLen, "KEY", "NAME", "POWER")
	fmt.Printf("  %-2s  %-*s  %-16s  %s\n", "--", maxKeyLen, "---", "----", "-----")
	for _, c := range roster {
		fmt.Printf("  %-2d  %-*s  %-16s  %s: %s\n", int(c.ID), maxKeyLen, c.Key, c.Name, c.Power.Name, c.Power.Description)
	}

	fmt.Println()
	fmt.Println("Run 'runner play --character <key>' to play one directly.")
}
