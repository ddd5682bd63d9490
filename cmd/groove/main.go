// groove runs Pedro's Groove Run, an endless runner, in the terminal.
//
// Usage:
//
//	groove play              - Play in this terminal
//	groove serve             - Start SSH server for remote play
//	groove scores            - Show best scores
//	groove snapshot          - Render a deterministic frame to PNG
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.groove/scores.db)
//	--log-file <path>    - Write logs to a rotating file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/groove-run/internal/logging"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "groove",
	Short: "Pedro's Groove Run - an endless runner for your terminal",
	Long: `Pedro's Groove Run is a side-scrolling endless runner. Jump the FUD,
grab the $PEDRO tokens, and see how far the groove takes you.

Available commands:
  play      - Play in this terminal
  serve     - Start SSH server for remote play
  scores    - View best scores
  snapshot  - Render a deterministic frame to PNG

Examples:
  groove play
  groove play --difficulty hard
  groove serve --ssh :2222
  groove scores
  groove snapshot --seed 42 --ticks 900 --out run.png`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.groove/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (rotated)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(snapshotCmd)
}

// newLogger builds the logger for a command from the global flags. console
// also receives output; terminal games pass nil since stdout is the game.
func newLogger(prefix string, console io.Writer) *logging.Logger {
	logger, err := logging.New(logging.Options{
		Level:   flagLogLevel,
		Prefix:  prefix,
		File:    flagLogFile,
		Console: console,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return logger
}
