package brew

import (
	"testing"
)

func TestParseListVersions(t *testing.T) {
	out := "wget 1.21.3\ncurl 8.4.0\ngit 2.42.0 2.41.0\n"
	result := parseListVersions(out)

	tests := []struct {
		name    string
		version string
	}{
		{"wget", "1.21.3"},
		{"curl", "8.4.0"},
		{"git", "2.42.0 2.41.0"}, // multiple installed versions join
	}
	for _, tt := range tests {
		if got := result[tt.name]; got != tt.version {
			t.Errorf("result[%q] = %q, want %q", tt.name, got, tt.version)
		}
	}
}

func TestParseListVersions_MissingVersion(t *testing.T) {
	result := parseListVersions("mystery\n")
	if got := result["mystery"]; got != "unknown" {
		t.Errorf("result[mystery] = %q, want unknown", got)
	}
}

func TestParseListVersions_Empty(t *testing.T) {
	if result := parseListVersions(""); len(result) != 0 {
		t.Errorf("expected empty map, got %v", result)
	}
}

func TestParseTaps(t *testing.T) {
	taps := parseTaps("homebrew/bundle\nhomebrew/services\n\n")
	if len(taps) != 2 {
		t.Fatalf("expected 2 taps, got %v", taps)
	}
	for _, name := range []string{"homebrew/bundle", "homebrew/services"} {
		if _, ok := taps[name]; !ok {
			t.Errorf("missing tap %q", name)
		}
	}
}

func TestParseMasList(t *testing.T) {
	out := `497799835  Xcode  (14.0)
409183694  Keynote  (13.2)
1333542190  1Password 7 - Password Manager  (7.9.11)
`
	apps := parseMasList(out)

	tests := []struct {
		name string
		id   int64
	}{
		{"Xcode", 497799835},
		{"Keynote", 409183694},
		{"1Password 7 - Password Manager", 1333542190},
	}
	for _, tt := range tests {
		if got := apps[tt.name]; got != tt.id {
			t.Errorf("apps[%q] = %d, want %d", tt.name, got, tt.id)
		}
	}
}

func TestParseMasList_SkipsNonNumericLines(t *testing.T) {
	out := "Warning: something\n497799835  Xcode  (14.0)\n"
	apps := parseMasList(out)
	if len(apps) != 1 {
		t.Errorf("expected 1 app, got %v", apps)
	}
}

func TestParseMasList_NameWithoutVersion(t *testing.T) {
	apps := parseMasList("497799835  Xcode\n")
	if got := apps["Xcode"]; got != 497799835 {
		t.Errorf("apps[Xcode] = %d, want 497799835", got)
	}
}

func TestDetect_NoBrewIsEmptyState(t *testing.T) {
	state, err := Detect("")
	if err != nil {
		t.Fatalf("Detect(\"\") error: %v", err)
	}
	if !state.IsEmpty() {
		t.Errorf("expected empty state, got %+v", state)
	}
}

func TestDetect_MissingBinaryIsEmptyState(t *testing.T) {
	state, err := Detect("/nonexistent/path/to/brew")
	if err != nil {
		t.Fatalf("Detect() error: %v", err)
	}
	if !state.IsEmpty() {
		t.Errorf("expected empty state, got %+v", state)
	}
}
