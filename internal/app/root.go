package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	dbPath   string
	brewFlag string

	// RootCmd is the root command for brewdiff
	RootCmd = &cobra.Command{
		Use:   "brewdiff",
		Short: "Compare installed Homebrew packages against a nix-darwin profile",
		Long: `brewdiff reconciles what Homebrew has installed on this host with what a
built nix-darwin profile declares, and prints the difference.

It is read-only and advisory: nothing is installed, removed or upgraded.
The profile's generated activation script is inspected for its brew bundle
invocation, the referenced Brewfile is parsed into the declared intent, and
that intent is diffed against the output of brew and mas.

Commands:
  • diff: show what activating the profile would add or remove
  • intent: show what the profile declares
  • state: show what is installed right now
  • record: remember a profile's intent as the applied baseline
  • history: list remembered intents
  • watch: re-run the diff whenever the profile changes

Examples:
  # Diff the current system profile
  brewdiff diff

  # Diff a freshly built profile before switching to it
  brewdiff diff ./result

  # Remember the intent you just activated
  brewdiff record

  # Keep a live diff while iterating on a configuration
  brewdiff watch ./result`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("brewdiff: compare installed Homebrew packages against a nix-darwin profile")
			fmt.Println()
			fmt.Println("Run 'brewdiff diff' to compare against /run/current-system.")
			fmt.Println("Run 'brewdiff --help' for the full reference.")
			return nil
		},
	}
)

func init() {
	// Global flags
	RootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "intent record database path (default: ~/.brewdiff/brewdiff.db)")
	RootCmd.PersistentFlags().StringVar(&brewFlag, "brew", "", "path to the brew binary (default: standard install locations)")

	// Enable cobra's built-in suggestion feature for unknown subcommands
	RootCmd.SuggestionsMinimumDistance = 2

	// Register subcommands
	RootCmd.AddCommand(diffCmd)
	RootCmd.AddCommand(intentCmd)
	RootCmd.AddCommand(stateCmd)
	RootCmd.AddCommand(recordCmd)
	RootCmd.AddCommand(historyCmd)
	RootCmd.AddCommand(watchCmd)
}

// Execute runs the root command
func Execute() error {
	return RootCmd.Execute()
}
