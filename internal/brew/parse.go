package brew

import (
	"strconv"
	"strings"
)

// parseListVersions parses `brew list --versions` output, one package per
// line: name followed by one or more installed versions. Multiple versions
// are joined with spaces.
func parseListVersions(out string) map[string]string {
	result := make(map[string]string)

	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		name := fields[0]
		version := "unknown"
		if len(fields) > 1 {
			version = strings.Join(fields[1:], " ")
		}
		result[name] = version
	}

	return result
}

// parseTaps parses `brew tap` output, one tap name per line.
func parseTaps(out string) map[string]struct{} {
	taps := make(map[string]struct{})
	for _, line := range strings.Split(out, "\n") {
		tap := strings.TrimSpace(line)
		if tap == "" {
			continue
		}
		taps[tap] = struct{}{}
	}
	return taps
}

// parseMasList parses `mas list` output:
//
//	497799835  Xcode  (14.0)
//
// The app name may contain spaces; the parenthesized version, when present,
// marks its end. Lines that don't start with a numeric id (mas warnings,
// blank lines) are skipped.
func parseMasList(out string) map[string]int64 {
	apps := make(map[string]int64)

	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}

		id, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			continue
		}

		nameEnd := len(fields)
		for i := len(fields) - 1; i > 0; i-- {
			if strings.HasPrefix(fields[i], "(") {
				nameEnd = i
				break
			}
		}
		name := strings.Join(fields[1:nameEnd], " ")
		if name == "" {
			continue
		}

		apps[name] = id
	}

	return apps
}
