package widgets

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/minaret/pkg/app"
	"gitlab.com/tinyland/lab/minaret/pkg/collectors/prayertimes"
	"gitlab.com/tinyland/lab/minaret/pkg/components"
	"gitlab.com/tinyland/lab/minaret/pkg/theme"
)

// clockFont is a 3x5 block-glyph font for the big time display. The colon
// is narrower so HH:MM:SS stays balanced.
var clockFont = map[rune][5]string{
	'0': {"███", "█ █", "█ █", "█ █", "███"},
	'1': {" █ ", "██ ", " █ ", " █ ", "███"},
	'2': {"███", "  █", "███", "█  ", "███"},
	'3': {"███", "  █", "███", "  █", "███"},
	'4': {"█ █", "█ █", "███", "  █", "  █"},
	'5': {"███", "█  ", "███", "  █", "███"},
	'6': {"███", "█  ", "███", "█ █", "███"},
	'7': {"███", "  █", "  █", "  █", "  █"},
	'8': {"███", "█ █", "███", "█ █", "███"},
	'9': {"███", "█ █", "███", "  █", "███"},
	':': {" ", "█", " ", "█", " "},
}

// bigTimeWidth is the rendered width of HH:MM:SS in the block font:
// six 3-cell digits, two 1-cell colons, seven 1-cell gaps.
const bigTimeWidth = 6*3 + 2*1 + 7

// ClockWidget shows the current time in large digits with the Gregorian
// and Hijri dates beneath. It repaints on every TickEvent; the Hijri date
// arrives with the prayer-times payload.
type ClockWidget struct {
	now   time.Time
	hijri string
}

// NewClockWidget creates the clock panel.
func NewClockWidget() *ClockWidget {
	return &ClockWidget{now: time.Now()}
}

// ID returns the widget's unique identifier.
func (w *ClockWidget) ID() string {
	return "clock"
}

// Title returns the widget's display title.
func (w *ClockWidget) Title() string {
	return "Clock"
}

// MinSize returns the minimum dimensions: enough for the plain time plus
// one date line.
func (w *ClockWidget) MinSize() (int, int) {
	return 10, 2
}

// Update tracks the tick time and picks the Hijri date off the prayer
// payload.
func (w *ClockWidget) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case app.TickEvent:
		w.now = msg.Time
	case app.DataUpdateEvent:
		if msg.Source != prayertimes.SourceName || msg.Err != nil {
			return nil
		}
		if t, ok := msg.Data.(*prayertimes.Timings); ok && t != nil {
			w.hijri = t.HijriDate
		}
	}
	return nil
}

// HandleKey is a no-op; the clock has no interactions.
func (w *ClockWidget) HandleKey(_ tea.KeyMsg) tea.Cmd {
	return nil
}

// View renders the big digits when there is room, otherwise a plain
// one-line time.
func (w *ClockWidget) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	th := theme.Current
	hhmmss := w.now.Format("15:04:05")

	var lines []string
	if width >= bigTimeWidth && height >= 6 {
		for _, row := range renderBigTime(hhmmss) {
			lines = append(lines, components.Colorize(components.PadCenter(row, width), th.Accent))
		}
	} else {
		lines = append(lines, components.Bold(components.PadCenter(hhmmss, width)))
	}

	lines = append(lines, components.PadCenter(w.now.Format("Monday, 2 January 2006"), width))
	if w.hijri != "" {
		lines = append(lines, components.Colorize(components.PadCenter(w.hijri, width), th.Dim))
	}

	return fit(lines, width, height)
}

// renderBigTime expands a time string into the five rows of the block font.
func renderBigTime(s string) [5]string {
	var rows [5]string
	for i, ch := range s {
		glyph, ok := clockFont[ch]
		if !ok {
			continue
		}
		for r := 0; r < 5; r++ {
			if i > 0 {
				rows[r] += " "
			}
			rows[r] += glyph[r]
		}
	}
	return rows
}

var _ app.Widget = (*ClockWidget)(nil)
