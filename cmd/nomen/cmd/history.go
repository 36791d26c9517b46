package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	nomerror "github.com/msto63/nomen/foundation/core/error"
	nomlog "github.com/msto63/nomen/foundation/core/log"
	"github.com/msto63/nomen/internal/history"
)

var (
	historyLimit int
	historyPrune bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently issued outputs",
	Long: `Show outputs recorded in the history database, newest first.
Recording happens only when [history] enabled = true in the config.

With --prune, entries older than the configured retention are deleted.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 20, "number of entries to show")
	historyCmd.Flags().BoolVar(&historyPrune, "prune", false, "delete entries older than history.retention")
}

func runHistory(cmd *cobra.Command, args []string) error {
	a := current
	ctx := cmd.Context()

	store := a.store
	if store == nil {
		// history disabled: read an existing database but never create one
		if !fileExists(a.cfg.History.Path) {
			printer(cmd).History(nil)
			return nil
		}
		s, err := history.Open(history.Config{Path: a.cfg.History.Path})
		if err != nil {
			return err
		}
		defer s.Close()
		store = s
	}

	if historyPrune {
		retention := a.cfg.History.Retention.Duration
		if retention <= 0 {
			return nomerror.New("history.retention is not set").WithCode(nomerror.CodeConfigError)
		}
		removed, err := store.Prune(ctx, time.Now().Add(-retention))
		if err != nil {
			return err
		}
		a.logger.Info("history pruned", nomlog.Fields{"removed": removed, "retention": retention.String()})
		fmt.Fprintf(cmd.OutOrStdout(), "removed %d entries\n", removed)
		return nil
	}

	entries, err := store.Recent(ctx, historyLimit)
	if err != nil {
		return err
	}
	printer(cmd).History(entries)
	return nil
}
