package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/groove-run/internal/platform/tui"
	"github.com/vovakirdan/groove-run/internal/storage"
)

var (
	flagInteractive bool
	flagLimit       int
	flagClear       string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best scores",
	Long: `Display the best score of every player.

Examples:
  groove scores
  groove scores --limit 3
  groove scores -i            # Scrollable table
  groove scores --clear alice # Forget alice's best`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a scrollable table")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of players to list")
	scoresCmd.Flags().StringVar(&flagClear, "clear", "", "Remove the best score stored under this name")
}

func runScores(_ *cobra.Command, _ []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear != "" {
		if err := store.ClearHighScore(flagClear); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing score: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared best score for %s\n", flagClear)
		return
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	entries, err := store.BestScores(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best Scores - Pedro's Groove Run")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'groove play' to set the first best score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-16s  %-10s  %s\n", "Rank", "Player", "Best", "Set")
	fmt.Printf("  %-4s  %-16s  %-10s  %s\n", "----", "------", "----", "---")

	for i, e := range entries {
		fmt.Printf("  %-4d  %-16s  %-10d  %s\n", i+1, e.Key, e.Score, e.UpdatedAt.Format("2006-01-02 15:04"))
	}
}
