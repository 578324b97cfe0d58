package widgets

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/minaret/pkg/adhaan"
	"gitlab.com/tinyland/lab/minaret/pkg/app"
	"gitlab.com/tinyland/lab/minaret/pkg/collectors/prayertimes"
	"gitlab.com/tinyland/lab/minaret/pkg/components"
	"gitlab.com/tinyland/lab/minaret/pkg/prayer"
	"gitlab.com/tinyland/lab/minaret/pkg/settings"
	"gitlab.com/tinyland/lab/minaret/pkg/theme"
)

// PrayerWidget shows the five daily prayer times with current/next
// markers, the live countdown to the next prayer, per-prayer adhaan
// toggles (tap targets), and the playback state line.
type PrayerWidget struct {
	timings  *prayertimes.Timings
	fetchErr error

	now      time.Time
	prefs    settings.Settings
	state    adhaan.State
	playing  prayer.Name
	selected int // row highlighted for keyboard toggling
}

// NewPrayerWidget creates the prayer panel.
func NewPrayerWidget(prefs settings.Settings) *PrayerWidget {
	return &PrayerWidget{now: time.Now(), prefs: prefs}
}

// ID returns the widget's unique identifier.
func (w *PrayerWidget) ID() string {
	return "prayer"
}

// Title returns the widget's display title.
func (w *PrayerWidget) Title() string {
	return "Prayer Times"
}

// MinSize returns the minimum dimensions: five rows plus the countdown
// and state lines.
func (w *PrayerWidget) MinSize() (int, int) {
	return 24, 8
}

// Update consumes ticks, the prayer payload, settings broadcasts, and
// playback state broadcasts.
func (w *PrayerWidget) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case app.TickEvent:
		w.now = msg.Time
	case app.DataUpdateEvent:
		if msg.Source != prayertimes.SourceName {
			return nil
		}
		if msg.Err != nil {
			w.fetchErr = msg.Err
			return nil
		}
		if t, ok := msg.Data.(*prayertimes.Timings); ok && t != nil {
			w.timings = t
			w.fetchErr = nil
		}
	case app.SettingsEvent:
		w.prefs = msg.Settings
	case app.AdhaanStateEvent:
		w.state = msg.State
		w.playing = msg.Prayer
	}
	return nil
}

// HandleKey moves the row selection and toggles the selected prayer.
func (w *PrayerWidget) HandleKey(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "up", "k":
		if w.selected > 0 {
			w.selected--
		}
	case "down", "j":
		if w.selected < len(prayer.Names)-1 {
			w.selected++
		}
	case "enter":
		p := prayer.Names[w.selected]
		return func() tea.Msg { return app.AdhaanToggleEvent{Prayer: p} }
	}
	return nil
}

// View renders the times table. Layout per row:
//
//	▸ Maghrib   19:05   ♪
//
// with the marker column showing the current (●) and next (▸) prayers.
func (w *PrayerWidget) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if w.fetchErr != nil && w.timings == nil {
		return centerMessage("prayer times unavailable", width, height)
	}
	if w.timings == nil {
		return centerMessage("fetching prayer times...", width, height)
	}

	th := theme.Current
	sched := w.timings.Schedule
	current, next := prayer.Window(w.now, sched)

	var lines []string
	for i, p := range prayer.Names {
		marker := " "
		switch p {
		case current:
			marker = "●"
		case next:
			marker = "▸"
		}

		audio := " "
		if w.prefs.Enabled(p) {
			audio = "♪"
		}

		row := fmt.Sprintf("%s %-8s %s  %s", marker, p.String(), sched.At(p).String(), audio)
		row = components.Truncate(row, width)
		switch {
		case i == w.selected:
			row = components.Bold(row)
		case p == current:
			row = components.Colorize(row, th.Accent)
		}
		lines = append(lines, zone.Mark("adhaan:"+p.String(), row))
	}

	lines = append(lines, "")
	countdown := fmt.Sprintf("%s in %s", next.String(), prayer.Countdown(w.now, sched.At(next)))
	lines = append(lines, components.Colorize(components.Truncate(countdown, width), th.StatusOK))

	if state := w.stateLine(width); state != "" {
		lines = append(lines, state)
	}

	return fit(lines, width, height)
}

// stateLine renders the playback state with its tap targets.
func (w *PrayerWidget) stateLine(width int) string {
	th := theme.Current
	switch w.state {
	case adhaan.StatePlaying:
		line := fmt.Sprintf("♪ %s adhaan ", w.playing.String())
		line += zone.Mark("adhaan:playpause", "[pause]") + " " + zone.Mark("adhaan:stop", "[stop]")
		return components.Colorize(line, th.StatusWarn)
	case adhaan.StatePaused:
		line := "♪ paused " + zone.Mark("adhaan:playpause", "[resume]") + " " + zone.Mark("adhaan:stop", "[stop]")
		return components.Colorize(line, th.StatusWarn)
	case adhaan.StateLocked:
		return components.Colorize(components.Truncate("adhaan off until restart", width), th.Dim)
	}
	return ""
}

var _ app.Widget = (*PrayerWidget)(nil)
