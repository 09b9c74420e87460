package app

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/blackwell-systems/brewdiff/internal/brew"
	"github.com/blackwell-systems/brewdiff/internal/config"
	"github.com/blackwell-systems/brewdiff/internal/manifest"
	"github.com/blackwell-systems/brewdiff/internal/nixprofile"
	"github.com/blackwell-systems/brewdiff/internal/store"
)

// DefaultProfile is the profile diffed when none is given: the running
// nix-darwin system.
const DefaultProfile = "/run/current-system"

// loadSettings reads the user's config file. A missing or unreadable file
// degrades to empty settings; the config only supplies defaults.
func loadSettings() *config.Settings {
	dir, err := config.Dir()
	if err != nil {
		return &config.Settings{}
	}
	settings, err := config.Load(dir)
	if err != nil {
		return &config.Settings{}
	}
	return settings
}

// resolveProfile picks the profile directory: positional argument, then
// config file, then the running system.
func resolveProfile(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	if profile := loadSettings().Profile; profile != "" {
		return profile
	}
	return DefaultProfile
}

// resolveBrewPath picks the brew binary: --brew flag, then config file,
// then the standard install locations. Empty means Homebrew is absent.
func resolveBrewPath() string {
	if brewFlag != "" {
		return brewFlag
	}
	if path := loadSettings().Brew; path != "" {
		return path
	}
	return brew.DefaultBrewPath()
}

// resolveDBPath returns the intent record database path, creating its
// parent directory: --db flag, then config file, then ~/.brewdiff.
func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	if path := loadSettings().DB; path != "" {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	brewdiffDir := filepath.Join(home, ".brewdiff")
	if err := os.MkdirAll(brewdiffDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create brewdiff directory: %w", err)
	}

	return filepath.Join(brewdiffDir, "brewdiff.db"), nil
}

// extractIntent locates the profile's Brewfile through its activation
// script and parses it, populating the activation flags from the bundle
// invocation.
func extractIntent(profileDir string) (*manifest.Intent, error) {
	ref, err := nixprofile.Locate(profileDir)
	if err != nil {
		return nil, err
	}

	intent, err := manifest.Parse(ref.ManifestPath)
	if err != nil {
		return nil, err
	}

	intent.CleanupOnActivation = ref.CleanupOnActivation
	intent.UpgradeOnActivation = ref.UpgradeOnActivation
	return intent, nil
}

// stateResult carries the outcome of an asynchronous state fetch.
type stateResult struct {
	state *brew.CurrentState
	err   error
}

// fetchStateAsync starts the brew/mas enumeration on its own goroutine so
// it overlaps with locating and parsing the manifest. The result arrives on
// the returned channel; the channel is buffered so the goroutine never
// leaks if the caller bails out first.
func fetchStateAsync(brewPath string) <-chan stateResult {
	ch := make(chan stateResult, 1)
	go func() {
		state, err := brew.Detect(brewPath)
		ch <- stateResult{state: state, err: err}
	}()
	return ch
}

// latestRecordedIntent loads the most recently recorded intent as the flag
// baseline for diffing. Returns nil when no database exists yet, nothing
// has been recorded, or the store can't be read; the diff then falls back
// to the all-false baseline.
func latestRecordedIntent() *manifest.Intent {
	path, err := resolveDBPath()
	if err != nil {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil
	}

	st, err := store.New(path)
	if err != nil {
		return nil
	}
	defer st.Close()

	rec, err := st.LatestIntent()
	if err != nil || rec == nil {
		return nil
	}
	return rec.Intent
}

// sortedNames returns the members of a name set in ascending order.
func sortedNames(set map[string]struct{}) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
