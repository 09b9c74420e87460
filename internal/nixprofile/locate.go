// Package nixprofile locates the Homebrew bundle reference inside a built
// nix-darwin profile.
//
// A profile's generated activation script applies Homebrew configuration by
// invoking `brew bundle --file='<store-path>-Brewfile' [flags]`. That line
// is the only coupling to the generator's output format, so extraction is
// kept to a single narrow pattern that fails loudly when the format drifts.
package nixprofile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// ActivationScriptName is the file inside a profile that applies it.
const ActivationScriptName = "activate"

var (
	// ErrNoActivationScript means the profile directory has no activation
	// script at all. Callers may treat this as "not a nix-darwin profile".
	ErrNoActivationScript = errors.New("activation script not found")

	// ErrManifestRefNotFound means the activation script exists but contains
	// no brew bundle invocation. Callers may treat this as "no Homebrew
	// management configured".
	ErrManifestRefNotFound = errors.New("no brew bundle invocation in activation script")
)

// BundleRef is the extracted bundle invocation: where the Brewfile lives and
// which activation flags were passed alongside it.
type BundleRef struct {
	ManifestPath string

	// CleanupOnActivation is true only when a cleanup flag is positively
	// present on the bundle invocation.
	CleanupOnActivation bool

	// UpgradeOnActivation is true unless --no-upgrade is present; brew
	// bundle upgrades by default.
	UpgradeOnActivation bool
}

// bundleLineRe matches the generated bundle invocation, e.g.
//
//	brew bundle --file='/nix/store/abc-Brewfile' --no-upgrade
//
// The captured tail carries the flags. The path is required to end in
// "Brewfile" so stray --file arguments elsewhere in the script don't match.
var bundleLineRe = regexp.MustCompile(`brew bundle --file='([^']+Brewfile)'([^\n]*)`)

// Locate reads the profile's activation script and extracts the Brewfile
// reference and its activation flags. If the script contains more than one
// bundle invocation (not expected from the generator), the first one wins.
func Locate(profileDir string) (BundleRef, error) {
	scriptPath := filepath.Join(profileDir, ActivationScriptName)

	data, err := os.ReadFile(scriptPath)
	if err != nil {
		if os.IsNotExist(err) {
			return BundleRef{}, fmt.Errorf("%w: %s", ErrNoActivationScript, scriptPath)
		}
		return BundleRef{}, fmt.Errorf("reading activation script %s: %w", scriptPath, err)
	}

	m := bundleLineRe.FindSubmatch(data)
	if m == nil {
		return BundleRef{}, fmt.Errorf("%w: %s", ErrManifestRefNotFound, scriptPath)
	}

	flags := string(m[2])
	return BundleRef{
		ManifestPath:        string(m[1]),
		CleanupOnActivation: hasFlag(flags, "--cleanup"),
		UpgradeOnActivation: !hasFlag(flags, "--no-upgrade"),
	}, nil
}

// hasFlag reports whether the flag appears as a whole token in the tail of
// the bundle invocation.
func hasFlag(tail, flag string) bool {
	for _, field := range strings.Fields(tail) {
		if field == flag {
			return true
		}
	}
	return false
}
