// Package widgets provides the concrete panels of the minaret kiosk. Each
// widget implements the app.Widget interface and receives data via the
// Elm-architecture update loop; none of them fetch or persist anything.
package widgets

import (
	"strings"

	"gitlab.com/tinyland/lab/minaret/pkg/components"
	"gitlab.com/tinyland/lab/minaret/pkg/theme"
)

// centerMessage renders a single dim message centered in the area. Used
// for the waiting/error states of data-driven panels.
func centerMessage(msg string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	line := components.Colorize(components.PadCenter(components.Truncate(msg, width), width), theme.Current.Dim)

	lines := make([]string, height)
	lines[height/2] = line
	return strings.Join(components.FitLines(lines, width, height), "\n")
}

// fit pads and clips lines to exactly width x height.
func fit(lines []string, width, height int) string {
	return strings.Join(components.FitLines(lines, width, height), "\n")
}
