package brew

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Standard Homebrew install locations (Apple Silicon, then Intel).
var defaultBrewPaths = []string{
	"/opt/homebrew/bin/brew",
	"/usr/local/bin/brew",
}

// DefaultBrewPath returns the brew binary at a standard install location,
// or "" when Homebrew is not installed.
func DefaultBrewPath() string {
	for _, path := range defaultBrewPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Detect queries brew and mas for the currently installed packages. An
// empty brewPath (Homebrew not installed) yields an empty state without
// error. A brew invocation that exits non-zero degrades that category to
// empty; only failure to run the binary at all is reported as an error.
func Detect(brewPath string) (*CurrentState, error) {
	state := NewCurrentState()
	if brewPath == "" {
		return state, nil
	}
	if _, err := os.Stat(brewPath); err != nil {
		return state, nil
	}

	formulae, err := detectFormulae(brewPath)
	if err != nil {
		return nil, err
	}
	state.Formulae = formulae

	caskOut, err := runCommand(brewPath, "list", "--cask", "--versions")
	if err != nil {
		return nil, err
	}
	state.Casks = parseListVersions(caskOut)

	tapOut, err := runCommand(brewPath, "tap")
	if err != nil {
		return nil, err
	}
	state.Taps = parseTaps(tapOut)

	state.StoreApps = detectStoreApps()

	return state, nil
}

// detectFormulae lists user-installed formulae with their versions. It uses
// `brew leaves` rather than `brew list` so that dependencies pulled in by
// other formulae don't show up as spurious removals.
func detectFormulae(brewPath string) (map[string]string, error) {
	leavesOut, err := runCommand(brewPath, "leaves")
	if err != nil {
		return nil, err
	}

	leaves := strings.Fields(leavesOut)
	if len(leaves) == 0 {
		return make(map[string]string), nil
	}

	args := append([]string{"list", "--versions"}, leaves...)
	versionsOut, err := runCommand(brewPath, args...)
	if err != nil {
		return nil, err
	}

	return parseListVersions(versionsOut), nil
}

// detectStoreApps lists Mac App Store installs via mas. A missing mas
// binary or a failing invocation simply means no store apps.
func detectStoreApps() map[string]int64 {
	masPath, err := exec.LookPath("mas")
	if err != nil {
		return make(map[string]int64)
	}

	out, err := runCommand(masPath, "list")
	if err != nil {
		return make(map[string]int64)
	}
	return parseMasList(out)
}

// runCommand runs the binary and returns stdout. A non-zero exit is treated
// as "nothing installed" for that query (brew exits non-zero on empty cask
// lists, for example); only a failure to execute is an error.
func runCommand(bin string, args ...string) (string, error) {
	out, err := exec.Command(bin, args...).Output()
	if err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			return "", nil
		}
		return "", fmt.Errorf("%s %s failed: %w", bin, strings.Join(args, " "), err)
	}
	return string(out), nil
}
