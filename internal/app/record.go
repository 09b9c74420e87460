package app

import (
	"fmt"

	"github.com/blackwell-systems/brewdiff/internal/store"
	"github.com/spf13/cobra"
)

var recordCmd = &cobra.Command{
	Use:   "record [profile]",
	Short: "Remember a profile's intent as the applied baseline",
	Long: `Parse a profile's declared Homebrew intent and save it in the brewdiff
database.

Later 'brewdiff diff' runs use the most recent record as the baseline for
the activation flags (cleanup, upgrade), giving a true before/after
comparison instead of assuming both flags were previously off. Run this
after activating a profile (e.g. after darwin-rebuild switch).`,
	Example: `  # Remember the intent of the profile you just switched to
  brewdiff record

  # Remember a specific profile's intent
  brewdiff record ./result`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRecord,
}

func runRecord(cmd *cobra.Command, args []string) error {
	profile := resolveProfile(args)

	intent, err := extractIntent(profile)
	if err != nil {
		return fmt.Errorf("could not determine Homebrew intent for %s: %w", profile, err)
	}

	path, err := resolveDBPath()
	if err != nil {
		return err
	}

	db, err := store.New(path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.CreateSchema(); err != nil {
		return fmt.Errorf("failed to create database schema: %w", err)
	}

	id, err := db.RecordIntent(profile, intent)
	if err != nil {
		return fmt.Errorf("failed to record intent: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(),
		"Recorded intent #%d from %s (taps: %d, formulae: %d, casks: %d, store apps: %d)\n",
		id, profile, len(intent.Taps), len(intent.Brews), len(intent.Casks), len(intent.StoreApps))
	return nil
}
