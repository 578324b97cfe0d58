package widgets

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/minaret/pkg/app"
	"gitlab.com/tinyland/lab/minaret/pkg/collectors/weather"
	"gitlab.com/tinyland/lab/minaret/pkg/components"
	"gitlab.com/tinyland/lab/minaret/pkg/theme"
)

// WeatherWidget shows the current conditions, a sparkline of today's
// hourly temperatures, and the 7-day outlook.
type WeatherWidget struct {
	report   *weather.Report
	fetchErr error
}

// NewWeatherWidget creates the weather panel.
func NewWeatherWidget() *WeatherWidget {
	return &WeatherWidget{}
}

// ID returns the widget's unique identifier.
func (w *WeatherWidget) ID() string {
	return "weather"
}

// Title returns the widget's display title.
func (w *WeatherWidget) Title() string {
	return "Weather"
}

// MinSize returns the minimum dimensions: current conditions plus the
// sparkline.
func (w *WeatherWidget) MinSize() (int, int) {
	return 24, 4
}

// Update consumes the weather payload.
func (w *WeatherWidget) Update(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(app.DataUpdateEvent)
	if !ok || ev.Source != weather.SourceName {
		return nil
	}
	if ev.Err != nil {
		w.fetchErr = ev.Err
		return nil
	}
	if r, ok := ev.Data.(*weather.Report); ok && r != nil {
		w.report = r
		w.fetchErr = nil
	}
	return nil
}

// HandleKey is a no-op; the weather panel has no interactions.
func (w *WeatherWidget) HandleKey(_ tea.KeyMsg) tea.Cmd {
	return nil
}

// View renders current conditions first, then today's temperature curve,
// then as many outlook rows as fit.
func (w *WeatherWidget) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if w.fetchErr != nil && w.report == nil {
		return centerMessage("weather unavailable", width, height)
	}
	if w.report == nil {
		return centerMessage("fetching weather...", width, height)
	}

	th := theme.Current
	cur := w.report.Current
	cond := weather.Describe(cur.Code)

	var lines []string
	lines = append(lines, components.Truncate(fmt.Sprintf("%s %s  %.0f°C", cond.Glyph, cond.Label, cur.TempC), width))
	lines = append(lines, components.Colorize(
		components.Truncate(fmt.Sprintf("humidity %.0f%%  wind %.0f km/h", cur.HumidityPct, cur.WindKmh), width), th.Dim))

	if len(w.report.Hourly) > 1 && height > len(lines) {
		temps := make([]float64, len(w.report.Hourly))
		for i, h := range w.report.Hourly {
			temps[i] = h.TempC
		}
		lines = append(lines, components.Sparkline(temps, width, th.ChartLine))
	}

	// Outlook rows fill whatever vertical space remains.
	if height > len(lines)+1 {
		lines = append(lines, "")
		for _, d := range w.report.Daily {
			if len(lines) >= height {
				break
			}
			lines = append(lines, components.Truncate(outlookRow(d), width))
		}
	}

	return fit(lines, width, height)
}

// outlookRow formats one day of the forecast table.
func outlookRow(d weather.DayPoint) string {
	label := d.Date
	if day, err := time.Parse("2006-01-02", d.Date); err == nil {
		label = day.Format("Mon 2")
	}
	cond := weather.Describe(d.Code)
	return fmt.Sprintf("%-7s %3.0f°/%-3.0f° %s %s", label, d.MinC, d.MaxC, cond.Glyph, cond.Label)
}

var _ app.Widget = (*WeatherWidget)(nil)
