// groove-window runs Pedro's Groove Run in a desktop window.
//
// Usage:
//
//	groove-window [--assets dir] [--db path] [--player name]
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/groove-run/internal/assets"
	"github.com/vovakirdan/groove-run/internal/config"
	"github.com/vovakirdan/groove-run/internal/core"
	"github.com/vovakirdan/groove-run/internal/logging"
	"github.com/vovakirdan/groove-run/internal/platform/window"
	"github.com/vovakirdan/groove-run/internal/storage"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagAssetsDir  string
	flagPlayer     string
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "groove-window",
	Short: "Pedro's Groove Run in a window",
	Long: `Open Pedro's Groove Run in a window.

Controls:
  Click/Tap/Space/Up - Jump (starts a run from the title screen)
  Enter              - Start / run again
  D                  - Toggle hitboxes
  M                  - Mute
  S                  - Copy your last run to the clipboard
  Esc                - Quit`,
	Args: cobra.NoArgs,
	Run:  run,
}

func init() {
	f := rootCmd.Flags()
	f.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	f.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	f.StringVar(&flagDBPath, "db", "~/.groove/scores.db", "Path to scores database")
	f.StringVar(&flagAssetsDir, "assets", "assets", "Directory with sprite frames, backdrop and start sound")
	f.StringVar(&flagPlayer, "player", storage.DefaultKey, "Name the best score is stored under")
	f.StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	f.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	f.BoolVar(&flagMute, "mute", false, "Start with sound off")
	f.StringVar(&flagLogFile, "log-file", "", "Write logs to this file (rotated)")
	f.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func run(_ *cobra.Command, _ []string) {
	logger, err := logging.New(logging.Options{
		Level:   flagLogLevel,
		Prefix:  "groove-window",
		File:    flagLogFile,
		Console: os.Stderr,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	runnerCfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagDifficulty)
			os.Exit(1)
		}
		config.ApplyRunnerPreset(&runnerCfg, preset)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	lib := assets.NewLibrary(os.DirFS(flagAssetsDir), logger.Logger)
	sounds := window.NewSounds(lib, logger.Logger)

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = flagSeed

	opts := window.Options{
		Runner:    runnerCfg,
		Runtime:   rt,
		Store:     store,
		PlayerKey: flagPlayer,
		Logger:    logger.Logger,
		Assets:    lib,
		Audio:     sounds,
		Muted:     flagMute,
	}

	runErr := window.Run(opts, "Pedro's Groove Run")

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
