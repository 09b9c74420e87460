package output

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// ANSI color codes for diff line decoration.
const (
	colorReset = "\033[0m"
	colorGreen = "\033[32m"
	colorRed   = "\033[31m"
	colorBold  = "\033[1m"
)

// IsColorEnabled returns true if ANSI color codes should be emitted to the
// given writer. Color requires a TTY and an unset NO_COLOR env var.
func IsColorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return writerIsTTY(w)
}

// writerIsTTY returns true if the given writer exposes an Fd() method
// (e.g. *os.File) and that fd is a terminal. Falls back to false for
// plain io.Writer values such as *bytes.Buffer.
func writerIsTTY(w io.Writer) bool {
	type fder interface {
		Fd() uintptr
	}
	if f, ok := w.(fder); ok {
		return isatty.IsTerminal(f.Fd())
	}
	return false
}

// WriteLines writes the rendered lines to w, one per row, coloring by kind
// when the writer is a color-capable terminal. It returns the number of
// lines written.
func WriteLines(w io.Writer, lines []Line) (int, error) {
	color := IsColorEnabled(w)

	written := 0
	for _, line := range lines {
		text := line.Text
		if color {
			switch line.Kind {
			case KindAdded:
				text = colorGreen + text + colorReset
			case KindRemoved:
				text = colorRed + text + colorReset
			case KindHeader:
				text = colorBold + text + colorReset
			}
		}
		if _, err := fmt.Fprintln(w, text); err != nil {
			return written, err
		}
		written++
	}

	return written, nil
}
