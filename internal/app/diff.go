package app

import (
	"fmt"
	"io"

	"github.com/blackwell-systems/brewdiff/internal/brew"
	"github.com/blackwell-systems/brewdiff/internal/diff"
	"github.com/blackwell-systems/brewdiff/internal/output"
	"github.com/spf13/cobra"
)

var (
	diffStats   bool
	diffNoState bool

	diffCmd = &cobra.Command{
		Use:   "diff [profile]",
		Short: "Show what activating a profile would change in Homebrew",
		Long: `Compare the Homebrew packages installed on this host against the packages
a built nix-darwin profile declares, and print the difference.

The profile's activation script is read to find the generated Brewfile and
the bundle flags (--no-upgrade, cleanup). Installed state comes from brew
leaves, brew list and brew tap, plus mas list for App Store apps; a host
without Homebrew diffs against an empty state.

Activation flags are compared against the last intent saved with
'brewdiff record' when one exists, otherwise against an all-false baseline.`,
		Example: `  # Diff the running system profile
  brewdiff diff

  # Diff a freshly built profile
  brewdiff diff ./result

  # Include a per-category summary
  brewdiff diff --stats

  # Inspect a profile without querying brew (works on any host)
  brewdiff diff ./result --no-state`,
		Args: cobra.MaximumNArgs(1),
		RunE: runDiff,
	}
)

func init() {
	diffCmd.Flags().BoolVar(&diffStats, "stats", false, "append a per-category change summary")
	diffCmd.Flags().BoolVar(&diffNoState, "no-state", false, "diff against an empty installed state (skip brew/mas)")
}

func runDiff(cmd *cobra.Command, args []string) error {
	profile := resolveProfile(args)
	_, err := diffProfile(cmd.OutOrStdout(), cmd.ErrOrStderr(), profile, !diffNoState, diffStats)
	return err
}

// diffProfile runs the full pipeline against one profile and writes the
// rendered diff to out. It returns the number of lines written.
//
// The state fetch is forked first because it shells out to brew and is the
// slow half; locate+parse run on the calling goroutine meanwhile, and the
// two join before the diff is computed. Partial results are never diffed.
func diffProfile(out, errOut io.Writer, profile string, withState, stats bool) (int, error) {
	var stateCh <-chan stateResult
	if withState {
		stateCh = fetchStateAsync(resolveBrewPath())
	}

	intent, err := extractIntent(profile)
	if err != nil {
		return 0, fmt.Errorf("could not determine Homebrew intent for %s: %w", profile, err)
	}

	state := brew.NewCurrentState()
	if stateCh != nil {
		res := <-stateCh
		if res.err != nil {
			// A broken brew is treated like an absent one: diff against
			// an empty state instead of aborting.
			fmt.Fprintf(errOut, "Warning: could not query Homebrew state: %v\n", res.err)
		} else {
			state = res.state
		}
	}

	result := diff.ComputeWithBaseline(state, intent, latestRecordedIntent())

	written, err := output.WriteLines(out, output.RenderLines(result))
	if err != nil {
		return written, err
	}

	if stats {
		n, err := output.WriteLines(out, output.RenderStats(result))
		written += n
		if err != nil {
			return written, err
		}
	}

	return written, nil
}
