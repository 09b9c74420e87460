package app

import (
	"fmt"
	"io"
	"sort"

	"github.com/blackwell-systems/brewdiff/internal/manifest"
	"github.com/spf13/cobra"
)

var (
	intentBrewfile bool

	intentCmd = &cobra.Command{
		Use:   "intent [profile]",
		Short: "Show the Homebrew packages a profile declares",
		Long: `Locate and parse a profile's generated Brewfile and print the declared
intent: taps, formulae, casks, Mac App Store apps and activation flags.

Nothing is compared and brew is not invoked; this is the parse half of
'brewdiff diff' on its own.`,
		Example: `  # Show what the running system declares
  brewdiff intent

  # Show what a freshly built profile declares
  brewdiff intent ./result

  # Re-emit the declared intent as canonical Brewfile text
  brewdiff intent ./result --brewfile`,
		Args: cobra.MaximumNArgs(1),
		RunE: runIntent,
	}
)

func init() {
	intentCmd.Flags().BoolVar(&intentBrewfile, "brewfile", false, "print the intent as canonical Brewfile text")
}

func runIntent(cmd *cobra.Command, args []string) error {
	profile := resolveProfile(args)

	intent, err := extractIntent(profile)
	if err != nil {
		return fmt.Errorf("could not determine Homebrew intent for %s: %w", profile, err)
	}

	out := cmd.OutOrStdout()

	if intentBrewfile {
		_, err := out.Write(manifest.Generate(intent))
		return err
	}

	fmt.Fprintf(out, "Intent declared by %s:\n", profile)
	printNameSection(out, "Taps", sortedNames(intent.Taps))
	printNameSection(out, "Formulae", sortedNames(intent.Brews))
	printNameSection(out, "Casks", sortedNames(intent.Casks))

	if len(intent.StoreApps) > 0 {
		fmt.Fprintf(out, "  Store Apps (%d):\n", len(intent.StoreApps))
		names := make([]string, 0, len(intent.StoreApps))
		for name := range intent.StoreApps {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(out, "    %s (%d)\n", name, intent.StoreApps[name])
		}
	}

	fmt.Fprintf(out, "  Cleanup on activation: %t\n", intent.CleanupOnActivation)
	fmt.Fprintf(out, "  Upgrade on activation: %t\n", intent.UpgradeOnActivation)
	return nil
}

func printNameSection(out io.Writer, title string, names []string) {
	if len(names) == 0 {
		return
	}
	fmt.Fprintf(out, "  %s (%d):\n", title, len(names))
	for _, name := range names {
		fmt.Fprintf(out, "    %s\n", name)
	}
}
