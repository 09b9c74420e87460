package app

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/blackwell-systems/brewdiff/internal/nixprofile"
)

// writeProfile builds a minimal nix-darwin-style profile: an activation
// script referencing a Brewfile with the given content and bundle flags.
func writeProfile(t *testing.T, brewfileContent, bundleFlags string) string {
	t.Helper()
	dir := t.TempDir()

	brewfilePath := filepath.Join(dir, "store-Brewfile")
	if err := os.WriteFile(brewfilePath, []byte(brewfileContent), 0644); err != nil {
		t.Fatalf("WriteFile Brewfile: %v", err)
	}

	activate := fmt.Sprintf("#!/bin/sh\necho setting up Homebrew\nbrew bundle --file='%s'%s\n",
		brewfilePath, bundleFlags)
	if err := os.WriteFile(filepath.Join(dir, "activate"), []byte(activate), 0755); err != nil {
		t.Fatalf("WriteFile activate: %v", err)
	}

	return dir
}

func TestExtractIntent(t *testing.T) {
	profile := writeProfile(t, `tap "homebrew/bundle"
brew "gh"
cask "firefox"
mas "Xcode", id: 497799835
`, " --no-upgrade")

	intent, err := extractIntent(profile)
	if err != nil {
		t.Fatalf("extractIntent() error: %v", err)
	}

	if _, ok := intent.Brews["gh"]; !ok {
		t.Errorf("Brews missing gh: %v", intent.Brews)
	}
	if _, ok := intent.Casks["firefox"]; !ok {
		t.Errorf("Casks missing firefox: %v", intent.Casks)
	}
	if intent.StoreApps["Xcode"] != 497799835 {
		t.Errorf("StoreApps[Xcode] = %d", intent.StoreApps["Xcode"])
	}
	if intent.UpgradeOnActivation {
		t.Error("UpgradeOnActivation = true, want false (--no-upgrade)")
	}
	if intent.CleanupOnActivation {
		t.Error("CleanupOnActivation = true, want false")
	}
}

func TestExtractIntent_MissingActivationScript(t *testing.T) {
	_, err := extractIntent(t.TempDir())
	if !errors.Is(err, nixprofile.ErrNoActivationScript) {
		t.Fatalf("extractIntent() error = %v, want ErrNoActivationScript", err)
	}
}

func TestDiffProfile_NoState(t *testing.T) {
	profile := writeProfile(t, `brew "git"
brew "curl"
`, "")

	// Point the baseline database at an empty temp location so a developer's
	// real recorded intents don't leak into the test.
	origDB := dbPath
	dbPath = filepath.Join(t.TempDir(), "brewdiff.db")
	defer func() { dbPath = origDB }()

	var out, errOut bytes.Buffer
	n, err := diffProfile(&out, &errOut, profile, false, false)
	if err != nil {
		t.Fatalf("diffProfile() error: %v", err)
	}

	text := out.String()
	if !strings.Contains(text, "Homebrew Formulae") {
		t.Errorf("missing formulae section in %q", text)
	}
	if !strings.Contains(text, "+ curl") || !strings.Contains(text, "+ git") {
		t.Errorf("missing additions in %q", text)
	}
	// Upgrade defaults to true when --no-upgrade is absent, so the config
	// section reports false -> true against the empty baseline.
	if !strings.Contains(text, "upgrade on activation: false -> true") {
		t.Errorf("missing upgrade flag change in %q", text)
	}

	wantLines := strings.Count(text, "\n")
	if n != wantLines {
		t.Errorf("diffProfile() reported %d lines, output has %d", n, wantLines)
	}
}

func TestDiffProfile_LocateErrorIsWrapped(t *testing.T) {
	var out, errOut bytes.Buffer
	_, err := diffProfile(&out, &errOut, t.TempDir(), false, false)
	if err == nil {
		t.Fatal("diffProfile() on empty profile returned nil error")
	}
	if !strings.Contains(err.Error(), "could not determine Homebrew intent") {
		t.Errorf("error = %v, want intent-determination wrapper", err)
	}
	if !errors.Is(err, nixprofile.ErrNoActivationScript) {
		t.Errorf("error = %v, want ErrNoActivationScript in chain", err)
	}
}

func TestDiffProfile_MalformedManifest(t *testing.T) {
	profile := writeProfile(t, "brew \"unterminated\n", "")

	var out, errOut bytes.Buffer
	_, err := diffProfile(&out, &errOut, profile, false, false)
	if err == nil {
		t.Fatal("diffProfile() with malformed manifest returned nil error")
	}
	if out.Len() != 0 {
		t.Errorf("diff output produced despite parse error: %q", out.String())
	}
}

func TestResolveProfile(t *testing.T) {
	if got := resolveProfile([]string{"/tmp/custom"}); got != "/tmp/custom" {
		t.Errorf("resolveProfile(arg) = %q", got)
	}

	// Isolate from any real user config.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	if got := resolveProfile(nil); got != DefaultProfile {
		t.Errorf("resolveProfile(nil) = %q, want %q", got, DefaultProfile)
	}
}
