// Package components provides the ANSI-aware text and box primitives the
// minaret widgets render with. Width arithmetic goes through the ansi
// package so escape sequences and wide glyphs (Arabic, weather symbols)
// measure correctly.
package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// VisibleLen returns the visible width of s in terminal cells, ignoring
// ANSI escape sequences and counting wide characters as 2.
func VisibleLen(s string) int {
	return ansi.StringWidth(s)
}

// Truncate cuts s to at most maxWidth visible cells, keeping escape
// sequences before the cut intact.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, "")
}

// TruncateWithTail cuts s to at most maxWidth visible cells, appending tail
// (e.g. "…") when a cut happens. The tail counts toward maxWidth.
func TruncateWithTail(s string, maxWidth int, tail string) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, tail)
}

// PadRight pads s with trailing spaces to exactly width visible cells.
// Wider strings are returned unchanged.
func PadRight(s string, width int) string {
	if vis := VisibleLen(s); vis < width {
		return s + strings.Repeat(" ", width-vis)
	}
	return s
}

// PadLeft pads s with leading spaces to exactly width visible cells.
func PadLeft(s string, width int) string {
	if vis := VisibleLen(s); vis < width {
		return strings.Repeat(" ", width-vis) + s
	}
	return s
}

// PadCenter centers s within width, putting any odd space on the right.
func PadCenter(s string, width int) string {
	vis := VisibleLen(s)
	if vis >= width {
		return s
	}
	left := (width - vis) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-vis-left)
}

// Wrap word-wraps s at width, respecting escape sequences, and returns the
// wrapped lines.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}
	return strings.Split(ansi.Wrap(s, width, ""), "\n")
}

// FitLines pads or truncates lines to exactly height entries of exactly
// width cells each, the shape every widget View must return.
func FitLines(lines []string, width, height int) []string {
	out := make([]string, height)
	for i := 0; i < height; i++ {
		if i < len(lines) {
			out[i] = PadRight(Truncate(lines[i], width), width)
		} else {
			out[i] = strings.Repeat(" ", width)
		}
	}
	return out
}
