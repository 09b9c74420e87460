package app

import (
	"fmt"
	"os"
	"time"

	"github.com/blackwell-systems/brewdiff/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded intents",
	Long: `List the intents saved with 'brewdiff record', newest first.

The most recent entry is the baseline 'brewdiff diff' uses for
activation-flag comparison.`,
	Example: `  brewdiff history`,
	Args:    cobra.NoArgs,
	RunE:    runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Fprintln(out, "No recorded intents. Run 'brewdiff record' after activating a profile.")
		return nil
	}

	db, err := store.New(path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.CreateSchema(); err != nil {
		return fmt.Errorf("failed to create database schema: %w", err)
	}

	records, err := db.ListIntents()
	if err != nil {
		return fmt.Errorf("failed to list recorded intents: %w", err)
	}
	if len(records) == 0 {
		fmt.Fprintln(out, "No recorded intents. Run 'brewdiff record' after activating a profile.")
		return nil
	}

	for _, rec := range records {
		fmt.Fprintf(out, "#%-4d %s  %s\n", rec.ID, rec.RecordedAt.Local().Format(time.RFC3339), rec.Profile)
		fmt.Fprintf(out, "      taps: %d, formulae: %d, casks: %d, store apps: %d, cleanup: %t, upgrade: %t\n",
			len(rec.Intent.Taps), len(rec.Intent.Brews), len(rec.Intent.Casks), len(rec.Intent.StoreApps),
			rec.Intent.CleanupOnActivation, rec.Intent.UpgradeOnActivation)
	}

	return nil
}
