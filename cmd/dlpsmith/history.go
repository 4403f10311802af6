// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/dlpsmith/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past generation and cleanup runs",
	Long: `History lists runs recorded in the SQLite ledger, most recent first.
The ledger is bookkeeping only; it plays no part in cleanup, which
depends solely on the JSON tracking manifest.`,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	dbPath := historyDBPath(cmd)
	if dbPath == "" {
		return fmt.Errorf("history ledger is disabled")
	}
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	store, err := history.NewStore(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	runs, err := store.List(context.Background(), limit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Printf("%-36s  %-9s  %-20s  %8s  %12s  %s\n",
		"RUN ID", "MODE", "STARTED", "FILES", "BYTES", "OUTPUT")
	fmt.Println(strings.Repeat("-", 110))
	for _, r := range runs {
		fmt.Printf("%-36s  %-9s  %-20s  %8d  %12d  %s\n",
			r.ID, r.Mode, r.StartedAt.Local().Format("2006-01-02 15:04:05"),
			r.FileCount, r.TotalBytes, r.OutputPath)
	}
	fmt.Printf("\n%d run(s)\n", len(runs))
	return nil
}

func init() {
	historyCmd.Flags().String("history-db", "", "run-history SQLite database")
	historyCmd.Flags().Int("limit", 0, "maximum runs to list (0 = all)")

	rootCmd.AddCommand(historyCmd)
}
