package manifest

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Parse reads the Brewfile at path and returns the declared intent.
//
// The activation flags (CleanupOnActivation, UpgradeOnActivation) are not
// derivable from the Brewfile text; the caller sets them from the bundle
// invocation that referenced this file.
func Parse(path string) (*Intent, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening manifest %s: %w", path, err)
	}
	defer f.Close()

	intent := NewIntent()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		// Skip blank lines and comments.
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		directive, rest, _ := strings.Cut(line, " ")
		switch directive {
		case "tap", "brew", "cask", "mas":
		default:
			// Unrecognized directive kinds are tolerated: the Brewfile is
			// generated and may grow new directives before we learn them.
			continue
		}

		name, ok := quotedValue(rest)
		if !ok {
			return nil, &MalformedDirectiveError{Line: lineNo, Text: line}
		}

		switch directive {
		case "tap":
			intent.Taps[name] = struct{}{}
		case "brew":
			// Trailing modifiers (args:, restart_service: ...) don't affect
			// presence, which is all the intent carries.
			intent.Brews[name] = struct{}{}
		case "cask":
			intent.Casks[name] = struct{}{}
		case "mas":
			id, ok := masID(rest)
			if !ok {
				return nil, &MalformedDirectiveError{Line: lineNo, Text: line}
			}
			intent.StoreApps[name] = id
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	return intent, nil
}

// quotedValue extracts the first double-quoted string from s. The second
// return value is false when there is no opening quote or the quote is
// unterminated.
func quotedValue(s string) (string, bool) {
	start := strings.IndexByte(s, '"')
	if start < 0 {
		return "", false
	}
	end := strings.IndexByte(s[start+1:], '"')
	if end < 0 {
		return "", false
	}
	return s[start+1 : start+1+end], true
}

// masID extracts the numeric id from the tail of a mas directive:
//
//	mas "Xcode", id: 497799835
func masID(rest string) (int64, bool) {
	_, after, found := strings.Cut(rest, "id:")
	if !found {
		return 0, false
	}
	fields := strings.Fields(after)
	if len(fields) == 0 {
		return 0, false
	}
	id, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
