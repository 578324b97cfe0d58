package widgets

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/minaret/pkg/app"
	"gitlab.com/tinyland/lab/minaret/pkg/quotes"
)

func wPack() []quotes.Quote {
	return []quotes.Quote{
		{Text: "alpha", Source: "Source A"},
		{Text: "beta", Source: "Source B"},
		{Text: "gamma", Source: "Source C"},
	}
}

func TestQuoteViewShowsTextAndSource(t *testing.T) {
	w := NewQuoteWidget(quotes.NewRotator(wPack()), time.Minute)
	w.Update(app.TickEvent{Time: wAt(9, 0, 0)})

	out := strings.Join(viewLines(t, w, 30, 4), "\n")
	q := quotes.NewRotator(wPack()).Current(wAt(9, 0, 0))
	if !strings.Contains(out, q.Text) {
		t.Errorf("view missing quote text %q:\n%s", q.Text, out)
	}
	if !strings.Contains(out, q.Source) {
		t.Errorf("view missing source %q:\n%s", q.Source, out)
	}
}

func TestQuoteRotatesOnInterval(t *testing.T) {
	w := NewQuoteWidget(quotes.NewRotator(wPack()), 30*time.Second)
	start := wAt(9, 0, 0)
	w.now = start
	w.rotated = start

	before := w.rotator.Current(start)
	w.Update(app.TickEvent{Time: start.Add(10 * time.Second)})
	if got := w.rotator.Current(w.now); got != before {
		t.Fatal("rotated before the interval elapsed")
	}

	w.Update(app.TickEvent{Time: start.Add(30 * time.Second)})
	if got := w.rotator.Current(w.now); got == before {
		t.Error("did not rotate after the interval elapsed")
	}
}

func TestQuoteSkipEvent(t *testing.T) {
	w := NewQuoteWidget(quotes.NewRotator(wPack()), 0)
	w.Update(app.TickEvent{Time: wAt(9, 0, 0)})

	before := w.rotator.Current(w.now)
	w.Update(app.QuoteAdvanceEvent{})
	if got := w.rotator.Current(w.now); got == before {
		t.Error("skip event did not advance the quote")
	}
}

func TestQuoteZeroIntervalNeverAutoRotates(t *testing.T) {
	w := NewQuoteWidget(quotes.NewRotator(wPack()), 0)
	start := wAt(9, 0, 0)
	w.now = start
	w.rotated = start

	before := w.rotator.Current(start)
	w.Update(app.TickEvent{Time: start.Add(24 * time.Hour / 2)})
	if got := w.rotator.Current(w.now); got != before {
		t.Error("zero interval still auto-rotated")
	}
}

func TestQuoteEnterAdvances(t *testing.T) {
	w := NewQuoteWidget(quotes.NewRotator(wPack()), time.Minute)
	cmd := w.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter produced no command")
	}
	if _, ok := cmd().(app.QuoteAdvanceEvent); !ok {
		t.Errorf("enter produced %T, want QuoteAdvanceEvent", cmd())
	}
}

func TestQuoteLongTextIsWrapped(t *testing.T) {
	pack := []quotes.Quote{{Text: strings.Repeat("patience ", 10), Source: "S"}}
	w := NewQuoteWidget(quotes.NewRotator(pack), 0)
	w.Update(app.TickEvent{Time: wAt(9, 0, 0)})

	lines := viewLines(t, w, 20, 5)
	wrapped := 0
	for _, line := range lines {
		if strings.Contains(line, "patience") {
			wrapped++
		}
	}
	if wrapped < 2 {
		t.Errorf("long quote not wrapped across lines:\n%s", strings.Join(lines, "\n"))
	}
}
