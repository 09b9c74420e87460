package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blackwell-systems/brewdiff/internal/watcher"
	"github.com/spf13/cobra"
)

var (
	watchDebounce time.Duration

	watchCmd = &cobra.Command{
		Use:   "watch [profile]",
		Short: "Re-run the diff whenever the profile changes",
		Long: `Watch a profile directory and reprint the Homebrew diff every time its
contents change.

Useful while iterating on a nix-darwin configuration: point it at the
./result symlink and each rebuild reprints what activating would change.
Rebuild events arrive in bursts, so the re-run is debounced. Stop with
Ctrl+C.`,
		Example: `  # Live diff against the running system profile
  brewdiff watch

  # Live diff while iterating on a build
  brewdiff watch ./result

  # Settle longer before re-running
  brewdiff watch ./result --debounce 2s`,
		Args: cobra.MaximumNArgs(1),
		RunE: runWatch,
	}
)

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 500*time.Millisecond, "how long events must settle before re-running")
}

func runWatch(cmd *cobra.Command, args []string) error {
	profile := resolveProfile(args)
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	rerun := func() {
		fmt.Fprintf(out, "\n--- %s ---\n", time.Now().Format(time.Kitchen))
		if _, err := diffProfile(out, errOut, profile, true, false); err != nil {
			fmt.Fprintf(errOut, "Warning: %v\n", err)
		}
	}

	// Print the current diff before waiting for changes.
	if _, err := diffProfile(out, errOut, profile, true, false); err != nil {
		return err
	}

	w, err := watcher.New(profile, watchDebounce, rerun)
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		return fmt.Errorf("failed to watch %s: %w", profile, err)
	}

	fmt.Fprintf(out, "\nWatching %s for changes (Ctrl+C to stop)...\n", profile)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	fmt.Fprintln(out, "\nStopping...")
	return w.Stop()
}
