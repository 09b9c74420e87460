package nixprofile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeActivate(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ActivationScriptName), []byte(content), 0755); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return dir
}

func TestLocate_ExtractsPathAndFlags(t *testing.T) {
	dir := writeActivate(t, `#!/bin/sh
echo "Setting up Homebrew..."
brew bundle --file='/nix/store/abc-Brewfile' --no-upgrade
echo "Done"
`)

	ref, err := Locate(dir)
	if err != nil {
		t.Fatalf("Locate() error: %v", err)
	}
	if ref.ManifestPath != "/nix/store/abc-Brewfile" {
		t.Errorf("ManifestPath = %q, want /nix/store/abc-Brewfile", ref.ManifestPath)
	}
	if ref.UpgradeOnActivation {
		t.Error("UpgradeOnActivation = true, want false (--no-upgrade present)")
	}
	if ref.CleanupOnActivation {
		t.Error("CleanupOnActivation = true, want false (no cleanup flag)")
	}
}

func TestLocate_UpgradeDefaultsTrue(t *testing.T) {
	dir := writeActivate(t, "brew bundle --file='/nix/store/xyz-Brewfile'\n")

	ref, err := Locate(dir)
	if err != nil {
		t.Fatalf("Locate() error: %v", err)
	}
	if !ref.UpgradeOnActivation {
		t.Error("UpgradeOnActivation = false, want true (no --no-upgrade)")
	}
}

func TestLocate_CleanupFlag(t *testing.T) {
	dir := writeActivate(t, "brew bundle --file='/nix/store/xyz-Brewfile' --cleanup --no-upgrade\n")

	ref, err := Locate(dir)
	if err != nil {
		t.Fatalf("Locate() error: %v", err)
	}
	if !ref.CleanupOnActivation {
		t.Error("CleanupOnActivation = false, want true")
	}
	if ref.UpgradeOnActivation {
		t.Error("UpgradeOnActivation = true, want false")
	}
}

func TestLocate_FirstMatchWins(t *testing.T) {
	dir := writeActivate(t, `brew bundle --file='/nix/store/first-Brewfile'
brew bundle --file='/nix/store/second-Brewfile' --no-upgrade
`)

	ref, err := Locate(dir)
	if err != nil {
		t.Fatalf("Locate() error: %v", err)
	}
	if ref.ManifestPath != "/nix/store/first-Brewfile" {
		t.Errorf("ManifestPath = %q, want the first invocation's path", ref.ManifestPath)
	}
	if !ref.UpgradeOnActivation {
		t.Error("UpgradeOnActivation should come from the first invocation")
	}
}

func TestLocate_NoActivationScript(t *testing.T) {
	_, err := Locate(t.TempDir())
	if !errors.Is(err, ErrNoActivationScript) {
		t.Fatalf("Locate() error = %v, want ErrNoActivationScript", err)
	}
}

func TestLocate_NoBundleInvocation(t *testing.T) {
	dir := writeActivate(t, "#!/bin/sh\necho nothing here\n")

	_, err := Locate(dir)
	if !errors.Is(err, ErrManifestRefNotFound) {
		t.Fatalf("Locate() error = %v, want ErrManifestRefNotFound", err)
	}
}

func TestLocate_IgnoresNonBrewfilePaths(t *testing.T) {
	dir := writeActivate(t, "brew bundle --file='/nix/store/abc-something-else'\n")

	_, err := Locate(dir)
	if !errors.Is(err, ErrManifestRefNotFound) {
		t.Fatalf("Locate() error = %v, want ErrManifestRefNotFound", err)
	}
}
