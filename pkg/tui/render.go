// Package tui composites widget panes into the terminal grid. Each pane
// renders its inner content at an exact size; the compositor wraps it in a
// themed border box and blits it into a rune buffer at its layout position.
package tui

import (
	"strings"

	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/minaret/pkg/components"
	"gitlab.com/tinyland/lab/minaret/pkg/layout"
	"gitlab.com/tinyland/lab/minaret/pkg/theme"
)

// Pane is the slice of the widget interface the compositor needs. Defined
// here so the app package can depend on tui without a cycle.
type Pane interface {
	Title() string
	View(width, height int) string
}

// Cell places one pane in the grid.
type Cell struct {
	Pane    Pane
	ZoneID  string // mouse-target id for the whole pane, "" for none
	Rect    layout.Rect
	Focused bool
}

// RenderGrid renders all cells into a single string covering width x
// height. Each pane is wrapped in a bordered box with its title; the
// focused pane gets the highlight border color from the active theme.
func RenderGrid(cells []Cell, width, height int) string {
	if len(cells) == 0 || width <= 0 || height <= 0 {
		return ""
	}

	th := theme.Current
	buf := newBuffer(width, height)

	for _, cell := range cells {
		if cell.Rect.Empty() {
			continue
		}

		borderColor := th.Border
		if cell.Focused {
			borderColor = th.BorderFocus
		}

		// Inner dimensions after removing the border (2 cells per axis).
		innerW := cell.Rect.Width - 2
		innerH := cell.Rect.Height - 2
		if innerW < 1 {
			innerW = 1
		}
		if innerH < 1 {
			innerH = 1
		}

		content := cell.Pane.View(innerW, innerH)

		style := components.BoxStyle{
			Border:     components.BorderRounded,
			Title:      cell.Pane.Title(),
			TitleAlign: components.AlignLeft,
			FG:         borderColor,
			TitleFG:    th.Title,
		}

		box := components.RenderBox(content, cell.Rect.Width, cell.Rect.Height, style)
		if cell.ZoneID != "" {
			box = zone.Mark(cell.ZoneID, box)
		}
		blitToBuffer(buf, box, cell.Rect.X, cell.Rect.Y, width, height)
	}

	return bufferToString(buf)
}

// RenderStatusBar renders the one-line hint bar at the bottom of the
// screen, padded or truncated to exactly width cells.
func RenderStatusBar(msg string, width int) string {
	hints := "tab:focus  p:pause  s:stop  t:theme  1-5:adhaan  q:quit"
	if msg != "" {
		hints = msg + "  |  " + hints
	}

	if width <= 0 {
		return ""
	}

	return components.Dim(components.PadRight(components.Truncate(hints, width), width))
}

// newBuffer creates a 2D grid of spaces with the given dimensions.
func newBuffer(width, height int) [][]rune {
	buf := make([][]rune, height)
	for y := 0; y < height; y++ {
		row := make([]rune, width)
		for x := 0; x < width; x++ {
			row[x] = ' '
		}
		buf[y] = row
	}
	return buf
}

// blitToBuffer writes a rendered multi-line string into the rune buffer
// at position (x, y), clipping to the buffer boundaries.
func blitToBuffer(buf [][]rune, rendered string, x, y, bufW, bufH int) {
	lines := strings.Split(rendered, "\n")
	for dy, line := range lines {
		ry := y + dy
		if ry < 0 || ry >= bufH {
			continue
		}
		runes := []rune(line)
		for dx, ch := range runes {
			rx := x + dx
			if rx < 0 || rx >= bufW {
				continue
			}
			buf[ry][rx] = ch
		}
	}
}

// bufferToString converts the rune buffer to a single string with newline
// separators between rows.
func bufferToString(buf [][]rune) string {
	var b strings.Builder
	for y, row := range buf {
		if y > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strings.TrimRight(string(row), " "))
	}
	return b.String()
}
