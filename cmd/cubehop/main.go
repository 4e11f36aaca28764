// cubehop is a terminal cube-hopping arcade game.
//
// Usage:
//
//	cubehop play             - Play locally
//	cubehop serve            - Start SSH server for remote play
//	cubehop journal          - Browse recorded runs
//	cubehop config           - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--journal <path>      - Keep a run journal in this file (default: in memory)
//	--log-file <path>     - Write logs to this file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/cubehop/internal/logging"
	"github.com/vovakirdan/cubehop/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagJournal  string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cubehop",
	Short: "Cube Hopper - jump on the cubes, dodge the rest",
	Long: `Cube Hopper is a terminal arcade game. Obstacle cubes scroll in from
the right: land on top of one to score and bounce, get hit by one and
the game pauses with your score cleared.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  journal  - Browse the run journal
  config   - Print the default configuration

Examples:
  cubehop play
  cubehop play --seed 42 --journal ~/.cubehop/journal.db
  cubehop serve --ssh :2222
  cubehop journal --journal ~/.cubehop/journal.db`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagJournal, "journal", storage.MemoryPath, "Path to run journal database (:memory: keeps nothing)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(journalCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the command logger. fallback is used when --log-file is empty.
// The returned closer releases the log file, if any.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	w, closer := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, func() { f.Close() }
	}

	logger, err := logging.New(w, flagLogLevel, prefix)
	if err != nil {
		closer()
		return nil, nil, err
	}
	return logger, closer, nil
}

// openJournal opens the run journal, continuing without one on failure.
func openJournal(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagJournal)
	if err != nil {
		logger.Warn("journal unavailable, runs will not be recorded", "path", flagJournal, "error", err)
		return nil
	}
	return store
}
