// Package output renders diff results as tagged display lines and writes
// them to a terminal.
//
// Rendering and writing are split: RenderLines produces plain text plus a
// semantic kind per line, and WriteLines maps kinds to ANSI colors only
// when the destination is a TTY (and NO_COLOR is unset).
package output

import (
	"fmt"

	"github.com/blackwell-systems/brewdiff/internal/diff"
)

// Kind tags a display line with its role so the writer can decorate it.
type Kind int

const (
	KindNeutral Kind = iota
	KindHeader
	KindAdded
	KindRemoved
)

// Line is one row of rendered output.
type Line struct {
	Text string
	Kind Kind
}

// RenderLines turns a diff result into ordered display lines: Formulae,
// Casks, Taps, Store Apps, then Config Changes, additions before removals
// within each section. Sections with no entries are omitted. An empty diff
// renders as a single neutral line.
func RenderLines(result diff.Result) []Line {
	if !result.HasChanges() {
		return []Line{{Text: "No Homebrew changes detected", Kind: KindNeutral}}
	}

	var lines []Line
	lines = append(lines, packageSection("📦 Homebrew Formulae:", result.Formulae)...)
	lines = append(lines, packageSection("🍺 Homebrew Casks:", result.Casks)...)
	lines = append(lines, tapSection(result.Taps)...)
	lines = append(lines, storeAppSection(result.StoreApps)...)
	lines = append(lines, configSection(result.Config)...)
	return lines
}

// RenderStats renders a per-category change summary. An empty diff renders
// nothing.
func RenderStats(result diff.Result) []Line {
	if !result.HasChanges() {
		return nil
	}

	lines := []Line{{Text: "Summary:", Kind: KindHeader}}

	categories := []struct {
		name    string
		added   int
		removed int
	}{
		{"Formulae", len(result.Formulae.Added), len(result.Formulae.Removed)},
		{"Casks", len(result.Casks.Added), len(result.Casks.Removed)},
		{"Taps", len(result.Taps.Added), len(result.Taps.Removed)},
		{"Store Apps", len(result.StoreApps.Added), len(result.StoreApps.Removed)},
	}
	for _, c := range categories {
		if c.added == 0 && c.removed == 0 {
			continue
		}
		lines = append(lines, Line{
			Text: fmt.Sprintf("  %s: %d added, %d removed", c.name, c.added, c.removed),
			Kind: KindNeutral,
		})
	}

	lines = append(lines, Line{
		Text: fmt.Sprintf("  Total changes: %d", result.TotalChanges()),
		Kind: KindNeutral,
	})
	return lines
}

func packageSection(header string, d diff.PackageDiff) []Line {
	if len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Upgraded) == 0 {
		return nil
	}

	lines := []Line{{Text: header, Kind: KindHeader}}
	for _, name := range d.Added {
		lines = append(lines, Line{Text: "  + " + name, Kind: KindAdded})
	}
	for _, pkg := range d.Removed {
		lines = append(lines, Line{
			Text: fmt.Sprintf("  - %s (%s)", pkg.Name, pkg.Version),
			Kind: KindRemoved,
		})
	}
	for _, pkg := range d.Upgraded {
		lines = append(lines, Line{
			Text: fmt.Sprintf("  ^ %s (%s -> %s)", pkg.Name, pkg.OldVersion, pkg.NewVersion),
			Kind: KindNeutral,
		})
	}
	return lines
}

func tapSection(d diff.SetDiff) []Line {
	if len(d.Added) == 0 && len(d.Removed) == 0 {
		return nil
	}

	lines := []Line{{Text: "🚰 Homebrew Taps:", Kind: KindHeader}}
	for _, name := range d.Added {
		lines = append(lines, Line{Text: "  + " + name, Kind: KindAdded})
	}
	for _, name := range d.Removed {
		lines = append(lines, Line{Text: "  - " + name, Kind: KindRemoved})
	}
	return lines
}

func storeAppSection(d diff.MapDiff) []Line {
	if len(d.Added) == 0 && len(d.Removed) == 0 {
		return nil
	}

	lines := []Line{{Text: "🏬 Mac App Store Apps:", Kind: KindHeader}}
	for _, app := range d.Added {
		lines = append(lines, Line{
			Text: fmt.Sprintf("  + %s (%d)", app.Name, app.ID),
			Kind: KindAdded,
		})
	}
	for _, app := range d.Removed {
		lines = append(lines, Line{
			Text: fmt.Sprintf("  - %s (%d)", app.Name, app.ID),
			Kind: KindRemoved,
		})
	}
	return lines
}

func configSection(c diff.ConfigChanges) []Line {
	if c.Cleanup == nil && c.Upgrade == nil {
		return nil
	}

	lines := []Line{{Text: "🔧 Config Changes:", Kind: KindHeader}}
	if c.Cleanup != nil {
		lines = append(lines, flagLine("cleanup on activation", c.Cleanup))
	}
	if c.Upgrade != nil {
		lines = append(lines, flagLine("upgrade on activation", c.Upgrade))
	}
	return lines
}

func flagLine(name string, change *diff.FlagChange) Line {
	kind := KindAdded
	if !change.New {
		kind = KindRemoved
	}
	return Line{
		Text: fmt.Sprintf("  %s: %t -> %t", name, change.Old, change.New),
		Kind: kind,
	}
}
