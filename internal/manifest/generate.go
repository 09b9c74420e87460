package manifest

import (
	"fmt"
	"sort"
	"strings"
)

// Generate renders an Intent back into canonical Brewfile text: taps first,
// then brews, casks and mas entries, each group sorted by name. The output
// parses back to an equal Intent (modulo the activation flags, which live
// in the activation script rather than the Brewfile).
func Generate(in *Intent) []byte {
	var sb strings.Builder
	sb.WriteString("# Generated by brewdiff\n")

	for _, tap := range sortedKeys(in.Taps) {
		fmt.Fprintf(&sb, "tap %q\n", tap)
	}
	for _, brew := range sortedKeys(in.Brews) {
		fmt.Fprintf(&sb, "brew %q\n", brew)
	}
	for _, cask := range sortedKeys(in.Casks) {
		fmt.Fprintf(&sb, "cask %q\n", cask)
	}

	apps := make([]string, 0, len(in.StoreApps))
	for name := range in.StoreApps {
		apps = append(apps, name)
	}
	sort.Strings(apps)
	for _, name := range apps {
		fmt.Fprintf(&sb, "mas %q, id: %d\n", name, in.StoreApps[name])
	}

	return []byte(sb.String())
}
