package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/whispercart/backend/internal/infrastructure/history"
)

var (
	historyDB    string
	historyLimit int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent queries from the history database",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&historyDB, "db", "queries.db", "SQLite history database path")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "number of entries to show")
	historyCmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "indent JSON output")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	if historyLimit <= 0 {
		return fmt.Errorf("limit must be positive, got %d", historyLimit)
	}

	store, err := history.OpenSQLite(cmd.Context(), historyDB)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.Recent(cmd.Context(), historyLimit)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), entries)
}
