// Package config provides configuration file parsing for brewdiff.
package config

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// Dir returns the brewdiff config directory, respecting XDG_CONFIG_HOME.
// Defaults to ~/.config/brewdiff if XDG_CONFIG_HOME is not set.
func Dir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "brewdiff"), nil
}

// Settings holds the values the user may pin in the config file. Any CLI
// flag with the same meaning overrides the file.
type Settings struct {
	// Brew is an explicit path to the brew binary.
	Brew string
	// Profile is the default profile directory to diff against.
	Profile string
	// DB is the intent record database path.
	DB string
}

// Load reads the config file at {dir}/config and returns the parsed
// settings. If the file does not exist, empty settings are returned without
// an error. Invalid or unrecognized lines are silently skipped.
func Load(dir string) (*Settings, error) {
	settings := &Settings{}

	path := filepath.Join(dir, "config")
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip blank lines and comments.
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		idx := strings.IndexByte(line, '=')
		if idx <= 0 {
			continue // no "=" or "=" is first character — invalid, skip
		}

		key := strings.TrimSpace(line[:idx])
		value := strings.TrimSpace(line[idx+1:])
		if value == "" {
			continue
		}

		switch key {
		case "brew":
			settings.Brew = value
		case "profile":
			settings.Profile = value
		case "db":
			settings.DB = value
		}
	}

	if err := scanner.Err(); err != nil {
		return settings, err
	}

	return settings, nil
}
