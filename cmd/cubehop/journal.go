package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cubehop/internal/platform/tui"
	"github.com/vovakirdan/cubehop/internal/storage"
)

var (
	flagLimit int
	flagPlain bool
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Browse the run journal",
	Long: `Show the runs recorded in a journal file. A run lasts from the start
of a game (or the last hit) to the next hit or quit.

The default in-memory journal is empty in a new process, so point
--journal at the file used with 'cubehop play --journal'.

Examples:
  cubehop journal --journal ~/.cubehop/journal.db
  cubehop journal --journal ./journal.db --plain --limit 5`,
	Args: cobra.NoArgs,
	RunE: runJournal,
}

func init() {
	journalCmd.Flags().IntVar(&flagLimit, "limit", 50, "Maximum number of runs to show")
	journalCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain text listing instead of the interactive view")
}

func runJournal(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagJournal)
	if err != nil {
		return fmt.Errorf("opening journal: %w", err)
	}
	defer store.Close()

	if flagPlain {
		return printJournal(cmd.OutOrStdout(), store, flagLimit)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return tui.RunJournal(store, flagLimit, width, height)
}

// printJournal writes the recent runs and the best finished score.
func printJournal(w io.Writer, store *storage.Store, limit int) error {
	runs, err := store.RecentRuns(limit)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Run Journal")
	fmt.Fprintln(w)

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		return nil
	}

	fmt.Fprintf(w, "  %-8s  %-16s  %-5s  %-6s  %s\n", "Run", "Started", "Score", "Events", "End")
	fmt.Fprintf(w, "  %-8s  %-16s  %-5s  %-6s  %s\n", "---", "-------", "-----", "------", "---")
	for _, r := range runs {
		end := r.EndReason
		if r.Open() {
			end = "open"
		}
		fmt.Fprintf(w, "  %-8.8s  %-16s  %-5d  %-6d  %s\n",
			r.ID, r.StartedAt.Format("2006-01-02 15:04"), r.Score, r.Outcomes, end)
	}

	best, err := store.BestScore()
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d\n", best)
	return nil
}
