package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cubehop/internal/config"
	"github.com/vovakirdan/cubehop/internal/core"
	"github.com/vovakirdan/cubehop/internal/platform/tui"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Cube Hopper",
	Long: `Start a game in this terminal. The game starts paused.

Controls:
  A/Left       - Move left
  D/Right      - Move right
  Space/W/Up   - Jump
  P            - Play/pause
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Examples:
  cubehop play
  cubehop play --seed 42
  cubehop play --config ./my-hopper.yaml
  cubehop play --log-file cubehop.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(_ *cobra.Command, _ []string) error {
	// The TUI owns the terminal, so logs go to --log-file or nowhere
	logger, closeLog, err := newLogger(io.Discard, "cubehop")
	if err != nil {
		return err
	}
	defer closeLog()

	hopperCfg, err := config.LoadHopper(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store := openJournal(logger)
	if store != nil {
		defer store.Close()
	}

	return tui.Run(hopperCfg, cfg, store, logger)
}
