// Package style decides whether report output is coloured and provides the
// lipgloss styles used when it is.
package style

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ColorMode selects when output is coloured.
type ColorMode string

const (
	// ColorAuto colours only when writing to a terminal and no opt-out is set.
	ColorAuto ColorMode = "auto"
	// ColorAlways colours unconditionally.
	ColorAlways ColorMode = "always"
	// ColorNever never colours.
	ColorNever ColorMode = "never"
)

// ParseColorMode validates a colour mode string. Empty means ColorAuto.
func ParseColorMode(s string) (ColorMode, error) {
	switch ColorMode(s) {
	case "":
		return ColorAuto, nil
	case ColorAuto, ColorAlways, ColorNever:
		return ColorMode(s), nil
	default:
		return "", fmt.Errorf("invalid color mode %q (want auto, always or never)", s)
	}
}

// ShouldColor reports whether output to w should be coloured under mode.
//
// In ColorAuto mode, colour is disabled if:
//   - NO_COLOR is set (accessibility/automation indicator)
//   - TERM=dumb
//   - CI is set (common CI/CD convention)
//   - w is not a terminal (piped output, files, buffers)
func ShouldColor(mode ColorMode, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" || os.Getenv("CI") != "" {
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
