package components

import "strings"

// sparkBlocks are the eight vertical block levels per cell.
var sparkBlocks = [8]rune{
	'▁', '▂', '▃', '▄',
	'▅', '▆', '▇', '█',
}

// Sparkline renders data as a one-line block chart of at most width cells,
// auto-scaled to the data range and colored with the given hex color. When
// data exceeds width, the most recent width points are shown. Flat data
// renders at the lowest level.
func Sparkline(data []float64, width int, color string) string {
	if len(data) == 0 || width <= 0 {
		return ""
	}
	points := data
	if len(points) > width {
		points = points[len(points)-width:]
	}

	lo, hi := points[0], points[0]
	for _, v := range points {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	var b strings.Builder
	for _, v := range points {
		idx := 0
		if hi > lo {
			idx = int((v - lo) / (hi - lo) * 7)
			if idx > 7 {
				idx = 7
			}
			if idx < 0 {
				idx = 0
			}
		}
		b.WriteRune(sparkBlocks[idx])
	}
	return Colorize(b.String(), color)
}
