package widgets

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/minaret/pkg/adhaan"
	"gitlab.com/tinyland/lab/minaret/pkg/app"
	"gitlab.com/tinyland/lab/minaret/pkg/collectors/prayertimes"
	"gitlab.com/tinyland/lab/minaret/pkg/prayer"
	"gitlab.com/tinyland/lab/minaret/pkg/settings"
)

func newPrayerWidget() *PrayerWidget {
	w := NewPrayerWidget(settings.Default())
	w.Update(app.TickEvent{Time: wAt(16, 30, 0)})
	return w
}

func TestPrayerWaitingState(t *testing.T) {
	w := newPrayerWidget()
	out := strings.Join(viewLines(t, w, 30, 9), "\n")
	if !strings.Contains(out, "fetching prayer times") {
		t.Errorf("missing waiting message:\n%s", out)
	}
}

func TestPrayerErrorState(t *testing.T) {
	w := newPrayerWidget()
	w.Update(app.DataUpdateEvent{Source: prayertimes.SourceName, Err: errors.New("dns")})
	out := strings.Join(viewLines(t, w, 30, 9), "\n")
	if !strings.Contains(out, "unavailable") {
		t.Errorf("missing error message:\n%s", out)
	}
}

func TestPrayerTableMarkersAndCountdown(t *testing.T) {
	w := newPrayerWidget()
	w.Update(app.DataUpdateEvent{Source: prayertimes.SourceName, Data: wTimings()})

	lines := viewLines(t, w, 34, 9)
	out := strings.Join(lines, "\n")

	for _, p := range prayer.Names {
		if !strings.Contains(out, p.String()) {
			t.Errorf("table missing %s", p)
		}
	}
	if !strings.Contains(out, "05:21") || !strings.Contains(out, "20:35") {
		t.Errorf("table missing times:\n%s", out)
	}

	// At 16:30 the Asr window is open and Maghrib is next.
	var asrLine, maghribLine string
	for _, line := range lines {
		if strings.Contains(line, "Asr") {
			asrLine = line
		}
		if strings.Contains(line, "Maghrib") && !strings.Contains(line, "in ") {
			maghribLine = line
		}
	}
	if !strings.Contains(asrLine, "●") {
		t.Errorf("Asr row missing current marker: %q", asrLine)
	}
	if !strings.Contains(maghribLine, "▸") {
		t.Errorf("Maghrib row missing next marker: %q", maghribLine)
	}

	if !strings.Contains(out, "Maghrib in 02:35:59") {
		t.Errorf("missing countdown:\n%s", out)
	}
}

func TestPrayerAudioMarksFollowSettings(t *testing.T) {
	w := newPrayerWidget()
	w.Update(app.DataUpdateEvent{Source: prayertimes.SourceName, Data: wTimings()})

	prefs := settings.Default()
	prefs.Toggle(prayer.Fajr) // now off
	w.Update(app.SettingsEvent{Settings: prefs})

	for _, line := range viewLines(t, w, 34, 9) {
		if strings.Contains(line, "Fajr") && strings.Contains(line, "♪") {
			t.Errorf("disabled Fajr still marked audible: %q", line)
		}
		if strings.Contains(line, "Isha") && !strings.Contains(line, "♪") {
			t.Errorf("enabled Isha missing audio mark: %q", line)
		}
	}
}

func TestPrayerStateLine(t *testing.T) {
	w := newPrayerWidget()
	w.Update(app.DataUpdateEvent{Source: prayertimes.SourceName, Data: wTimings()})

	w.Update(app.AdhaanStateEvent{State: adhaan.StatePlaying, Prayer: prayer.Maghrib})
	out := strings.Join(viewLines(t, w, 40, 10), "\n")
	if !strings.Contains(out, "Maghrib adhaan") || !strings.Contains(out, "[pause]") {
		t.Errorf("playing state line wrong:\n%s", out)
	}

	w.Update(app.AdhaanStateEvent{State: adhaan.StatePaused, Prayer: prayer.Maghrib})
	out = strings.Join(viewLines(t, w, 40, 10), "\n")
	if !strings.Contains(out, "[resume]") {
		t.Errorf("paused state line wrong:\n%s", out)
	}

	w.Update(app.AdhaanStateEvent{State: adhaan.StateLocked, Prayer: prayer.Maghrib})
	out = strings.Join(viewLines(t, w, 40, 10), "\n")
	if !strings.Contains(out, "off until restart") {
		t.Errorf("locked state line wrong:\n%s", out)
	}
}

func TestPrayerKeyboardToggle(t *testing.T) {
	w := newPrayerWidget()
	w.Update(app.DataUpdateEvent{Source: prayertimes.SourceName, Data: wTimings()})

	w.HandleKey(tea.KeyMsg{Type: tea.KeyDown})
	w.HandleKey(tea.KeyMsg{Type: tea.KeyDown})
	cmd := w.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter produced no command")
	}
	ev, ok := cmd().(app.AdhaanToggleEvent)
	if !ok {
		t.Fatalf("enter produced %T, want AdhaanToggleEvent", cmd())
	}
	if ev.Prayer != prayer.Asr {
		t.Errorf("toggle targets %s, want Asr", ev.Prayer)
	}

	// Selection clamps at the ends.
	for i := 0; i < 10; i++ {
		w.HandleKey(tea.KeyMsg{Type: tea.KeyDown})
	}
	if w.selected != len(prayer.Names)-1 {
		t.Errorf("selection %d, want %d", w.selected, len(prayer.Names)-1)
	}
}
