// Package diff computes the difference between the Homebrew packages
// installed on this host and the packages a nix-darwin profile declares.
//
// Compute is a pure function: no I/O, no errors, and deterministic output.
// Every category is sorted ascending by name so repeated runs over the same
// inputs render identically regardless of map iteration order.
package diff

import (
	"sort"

	"github.com/blackwell-systems/brewdiff/internal/brew"
	"github.com/blackwell-systems/brewdiff/internal/manifest"
)

// RemovedPackage is an installed package the intent no longer declares,
// with the version observed on the host.
type RemovedPackage struct {
	Name    string
	Version string
}

// UpgradedPackage is reserved for version-aware comparison. The Brewfile
// format carries no version pins, so no current input produces one.
type UpgradedPackage struct {
	Name       string
	OldVersion string
	NewVersion string
}

// PackageDiff is the difference for a versioned package category (formulae
// or casks).
type PackageDiff struct {
	Added    []string
	Removed  []RemovedPackage
	Upgraded []UpgradedPackage
}

// SetDiff is the difference for an unversioned name set (taps).
type SetDiff struct {
	Added   []string
	Removed []string
}

// StoreApp is a Mac App Store entry: display name plus catalog id.
type StoreApp struct {
	Name string
	ID   int64
}

// MapDiff is the difference for the store-app category.
type MapDiff struct {
	Added   []StoreApp
	Removed []StoreApp
}

// FlagChange records an activation flag flipping between baselines.
type FlagChange struct {
	Old bool
	New bool
}

// ConfigChanges reports activation-flag changes. A nil field means the flag
// did not change.
type ConfigChanges struct {
	Cleanup *FlagChange
	Upgrade *FlagChange
}

// Result is the full comparison of current state against intent. It is a
// plain value: computed once, then only read.
type Result struct {
	Formulae  PackageDiff
	Casks     PackageDiff
	Taps      SetDiff
	StoreApps MapDiff
	Config    ConfigChanges
}

// Compute diffs the current state against the intent. Activation flags are
// compared against an implicit all-false baseline: with only a single
// target intent there is no previous intent to diff against.
func Compute(state *brew.CurrentState, intent *manifest.Intent) Result {
	return ComputeWithBaseline(state, intent, nil)
}

// ComputeWithBaseline is Compute with an explicit previous intent for the
// activation-flag comparison. A nil prev falls back to the all-false
// baseline. Package categories always diff against the observed state; only
// the flags use the baseline, since the host itself carries no record of
// the flags it was last activated with.
func ComputeWithBaseline(state *brew.CurrentState, intent *manifest.Intent, prev *manifest.Intent) Result {
	baseCleanup, baseUpgrade := false, false
	if prev != nil {
		baseCleanup = prev.CleanupOnActivation
		baseUpgrade = prev.UpgradeOnActivation
	}

	return Result{
		Formulae:  packageDiff(state.Formulae, intent.Brews),
		Casks:     packageDiff(state.Casks, intent.Casks),
		Taps:      setDiff(state.Taps, intent.Taps),
		StoreApps: mapDiff(state.StoreApps, intent.StoreApps),
		Config: ConfigChanges{
			Cleanup: flagChange(baseCleanup, intent.CleanupOnActivation),
			Upgrade: flagChange(baseUpgrade, intent.UpgradeOnActivation),
		},
	}
}

// HasChanges reports whether any category or flag differs.
func (r *Result) HasChanges() bool {
	return r.TotalChanges() > 0 || r.Config.Cleanup != nil || r.Config.Upgrade != nil
}

// TotalChanges counts package-level additions and removals across all four
// categories. Flag changes are not counted.
func (r *Result) TotalChanges() int {
	return len(r.Formulae.Added) + len(r.Formulae.Removed) +
		len(r.Casks.Added) + len(r.Casks.Removed) +
		len(r.Taps.Added) + len(r.Taps.Removed) +
		len(r.StoreApps.Added) + len(r.StoreApps.Removed)
}

func packageDiff(installed map[string]string, intended map[string]struct{}) PackageDiff {
	var d PackageDiff

	for name := range intended {
		if _, ok := installed[name]; !ok {
			d.Added = append(d.Added, name)
		}
	}
	for name, version := range installed {
		if _, ok := intended[name]; !ok {
			d.Removed = append(d.Removed, RemovedPackage{Name: name, Version: version})
		}
	}

	sort.Strings(d.Added)
	sort.Slice(d.Removed, func(i, j int) bool {
		return d.Removed[i].Name < d.Removed[j].Name
	})

	return d
}

func setDiff(current, intended map[string]struct{}) SetDiff {
	var d SetDiff

	for name := range intended {
		if _, ok := current[name]; !ok {
			d.Added = append(d.Added, name)
		}
	}
	for name := range current {
		if _, ok := intended[name]; !ok {
			d.Removed = append(d.Removed, name)
		}
	}

	sort.Strings(d.Added)
	sort.Strings(d.Removed)

	return d
}

func mapDiff(current, intended map[string]int64) MapDiff {
	var d MapDiff

	for name, id := range intended {
		if _, ok := current[name]; !ok {
			d.Added = append(d.Added, StoreApp{Name: name, ID: id})
		}
	}
	for name, id := range current {
		if _, ok := intended[name]; !ok {
			d.Removed = append(d.Removed, StoreApp{Name: name, ID: id})
		}
	}

	sort.Slice(d.Added, func(i, j int) bool { return d.Added[i].Name < d.Added[j].Name })
	sort.Slice(d.Removed, func(i, j int) bool { return d.Removed[i].Name < d.Removed[j].Name })

	return d
}

func flagChange(was, now bool) *FlagChange {
	if was == now {
		return nil
	}
	return &FlagChange{Old: was, New: now}
}
