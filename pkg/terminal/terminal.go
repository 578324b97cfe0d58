// Package terminal probes the display the kiosk is attached to: cell
// dimensions and the handful of capabilities that pick the default theme.
package terminal

import (
	"os"
	"strconv"

	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Size is the terminal's dimensions in character cells.
type Size struct {
	Cols int
	Rows int
}

// Capabilities describes what the attached display can do.
type Capabilities struct {
	TTY            bool // stdout is an interactive terminal
	TrueColor      bool // 24-bit color support
	DarkBackground bool
}

// DetectSize returns the terminal dimensions, trying the descriptor
// first, then COLUMNS/LINES, then the classic 80x24.
func DetectSize(fd uintptr) Size {
	if w, h, err := term.GetSize(fd); err == nil && w > 0 && h > 0 {
		return Size{Cols: w, Rows: h}
	}
	return Size{
		Cols: envInt("COLUMNS", 80),
		Rows: envInt("LINES", 24),
	}
}

// DetectCapabilities probes stdout.
func DetectCapabilities() Capabilities {
	return Capabilities{
		TTY:            isatty.IsTerminal(os.Stdout.Fd()),
		TrueColor:      termenv.ColorProfile() == termenv.TrueColor,
		DarkBackground: termenv.HasDarkBackground(),
	}
}

// envInt reads a positive integer from the named environment variable,
// returning fallback when unset or invalid.
func envInt(name string, fallback int) int {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
