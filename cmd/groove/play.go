package main

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/groove-run/internal/config"
	"github.com/vovakirdan/groove-run/internal/core"
	"github.com/vovakirdan/groove-run/internal/platform/tui"
	"github.com/vovakirdan/groove-run/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagPlayer     string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a run in the terminal.

Controls:
  Space/Up   - Jump
  Enter      - Start / run again
  D          - Toggle hitboxes
  M          - Mute
  S          - Share your last run
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slower start and gentler speed-up
  normal - The standard groove
  hard   - Faster start, higher top speed
  fixed  - No speed-up at all

Examples:
  groove play
  groove play --difficulty easy
  groove play --config ./my-runner.yaml
  groove play --player alice`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagPlayer, "player", storage.DefaultKey, "Name the best score is stored under")
}

// loadRunnerConfig resolves the runner tuning from --config and --difficulty.
func loadRunnerConfig() (config.RunnerConfig, error) {
	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return cfg, fmt.Errorf("unknown difficulty %q", flagDifficulty)
		}
		config.ApplyRunnerPreset(&cfg, preset)
	}
	return cfg, nil
}

func runPlay(_ *cobra.Command, _ []string) {
	runnerCfg, err := loadRunnerConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Terminal size sets the first cell grid; resizes follow.
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	logger := newLogger("groove", nil)
	defer logger.Close()
	logger.Debug("starting terminal session", "cols", width, "rows", height, "seed", flagSeed)

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = flagSeed

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - the run still works
		store = nil
	}

	runErr := tui.Run(tui.Options{
		Runner:    runnerCfg,
		Runtime:   rt,
		Store:     store,
		PlayerKey: flagPlayer,
		Logger:    logger.Logger,
		Copy:      clipboard.WriteAll,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
