// Package manifest parses the Brewfile that a built nix-darwin profile
// references from its activation script.
//
// The Brewfile is a generated, trusted artifact: one directive per line
// (tap/brew/cask/mas), comments starting with "#". Unknown directive kinds
// are tolerated so that new generator output doesn't break parsing, but a
// recognized directive with broken quoting is a hard error because it means
// the generator format changed underneath us.
package manifest

import (
	"fmt"
	"sort"
)

// Intent is the Homebrew state a nix-darwin profile declares: which taps,
// formulae, casks and Mac App Store apps should be present. The Brewfile
// carries no version pins, so only presence is declared.
type Intent struct {
	Taps      map[string]struct{}
	Brews     map[string]struct{}
	Casks     map[string]struct{}
	StoreApps map[string]int64 // display name -> App Store id

	// Activation flags come from the bundle invocation in the activation
	// script, not from the Brewfile itself. The caller populates them from
	// the nixprofile.BundleRef that located the Brewfile.
	CleanupOnActivation bool
	UpgradeOnActivation bool
}

// NewIntent returns an empty Intent with all collections allocated.
func NewIntent() *Intent {
	return &Intent{
		Taps:      make(map[string]struct{}),
		Brews:     make(map[string]struct{}),
		Casks:     make(map[string]struct{}),
		StoreApps: make(map[string]int64),
	}
}

// HasPackages reports whether any package is declared at all.
func (in *Intent) HasPackages() bool {
	return len(in.Brews) > 0 || len(in.Casks) > 0 || len(in.StoreApps) > 0
}

// MalformedDirectiveError reports a recognized directive line whose syntax
// is broken (unterminated quote, unparsable mas id). It is a hard error:
// the Brewfile is generated, so a broken line signals a format change.
type MalformedDirectiveError struct {
	Line int
	Text string
}

func (e *MalformedDirectiveError) Error() string {
	return fmt.Sprintf("manifest line %d: malformed directive: %q", e.Line, e.Text)
}

// sortedKeys returns the keys of a string set in ascending order.
func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
