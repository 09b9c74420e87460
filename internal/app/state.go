package app

import (
	"fmt"
	"io"
	"sort"

	"github.com/blackwell-systems/brewdiff/internal/brew"
	"github.com/spf13/cobra"
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Show the Homebrew packages installed right now",
	Long: `Query brew and mas for the currently installed packages and print them.

Formulae are limited to leaves (packages installed on request, not pulled
in as dependencies). A host without Homebrew prints an empty state; that is
a normal condition, not an error.`,
	Example: `  # Show everything brew and mas report
  brewdiff state

  # Use a brew binary outside the standard locations
  brewdiff state --brew /opt/custom/bin/brew`,
	Args: cobra.NoArgs,
	RunE: runState,
}

func runState(cmd *cobra.Command, args []string) error {
	state, err := brew.Detect(resolveBrewPath())
	if err != nil {
		return fmt.Errorf("failed to query Homebrew state: %w", err)
	}

	out := cmd.OutOrStdout()

	if state.IsEmpty() {
		fmt.Fprintln(out, "No Homebrew packages installed (or Homebrew is not present)")
		return nil
	}

	printVersionSection(out, "Formulae", state.Formulae)
	printVersionSection(out, "Casks", state.Casks)
	printNameSection(out, "Taps", sortedNames(state.Taps))

	if len(state.StoreApps) > 0 {
		fmt.Fprintf(out, "  Store Apps (%d):\n", len(state.StoreApps))
		names := make([]string, 0, len(state.StoreApps))
		for name := range state.StoreApps {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(out, "    %s (%d)\n", name, state.StoreApps[name])
		}
	}

	return nil
}

func printVersionSection(out io.Writer, title string, packages map[string]string) {
	if len(packages) == 0 {
		return
	}

	names := make([]string, 0, len(packages))
	for name := range packages {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintf(out, "  %s (%d):\n", title, len(names))
	for _, name := range names {
		fmt.Fprintf(out, "    %s %s\n", name, packages[name])
	}
}
