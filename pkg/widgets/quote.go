package widgets

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/minaret/pkg/app"
	"gitlab.com/tinyland/lab/minaret/pkg/components"
	"gitlab.com/tinyland/lab/minaret/pkg/quotes"
	"gitlab.com/tinyland/lab/minaret/pkg/theme"
)

// QuoteWidget cycles through the quote pack on a fixed interval. Tapping
// the panel skips ahead.
type QuoteWidget struct {
	rotator  *quotes.Rotator
	interval time.Duration

	now     time.Time
	rotated time.Time
}

// NewQuoteWidget creates the quote panel. A zero interval disables the
// automatic rotation (taps still advance).
func NewQuoteWidget(rotator *quotes.Rotator, interval time.Duration) *QuoteWidget {
	now := time.Now()
	return &QuoteWidget{rotator: rotator, interval: interval, now: now, rotated: now}
}

// ID returns the widget's unique identifier.
func (w *QuoteWidget) ID() string {
	return "quote"
}

// Title returns the widget's display title.
func (w *QuoteWidget) Title() string {
	return "Reflection"
}

// MinSize returns the minimum dimensions: one wrapped line plus source.
func (w *QuoteWidget) MinSize() (int, int) {
	return 20, 3
}

// Update advances the rotation on its interval and on skip requests.
func (w *QuoteWidget) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case app.TickEvent:
		w.now = msg.Time
		if w.interval > 0 && w.now.Sub(w.rotated) >= w.interval {
			w.rotator.Advance(w.now)
			w.rotated = w.now
		}
	case app.QuoteAdvanceEvent:
		w.rotator.Advance(w.now)
		w.rotated = w.now
	}
	return nil
}

// HandleKey advances on enter when focused.
func (w *QuoteWidget) HandleKey(key tea.KeyMsg) tea.Cmd {
	if key.String() == "enter" {
		return func() tea.Msg { return app.QuoteAdvanceEvent{} }
	}
	return nil
}

// View renders the quote wrapped to the panel width with its source on
// the last line.
func (w *QuoteWidget) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	th := theme.Current
	q := w.rotator.Current(w.now)

	var lines []string
	for _, line := range components.Wrap(q.Text, width) {
		lines = append(lines, components.Italic(line))
	}
	if len(lines) > height-1 {
		lines = lines[:height-1]
	}
	if q.Source != "" && height > 1 {
		lines = append(lines, components.Colorize(components.PadLeft("— "+q.Source, width), th.Dim))
	}

	return zone.Mark("quote:next", fit(lines, width, height))
}

var _ app.Widget = (*QuoteWidget)(nil)
