package widgets

import (
	"errors"
	"strings"
	"testing"

	"gitlab.com/tinyland/lab/minaret/pkg/app"
	"gitlab.com/tinyland/lab/minaret/pkg/collectors/weather"
)

func wReport() *weather.Report {
	return &weather.Report{
		Current: weather.Current{TempC: 27.3, HumidityPct: 54, WindKmh: 12.6, Code: 1},
		Hourly: []weather.HourPoint{
			{Hour: 12, TempC: 25.0}, {Hour: 13, TempC: 26.8}, {Hour: 14, TempC: 27.3},
		},
		Daily: []weather.DayPoint{
			{Date: "2026-08-31", MinC: 19.2, MaxC: 28.4, Code: 1},
			{Date: "2026-09-01", MinC: 18.5, MaxC: 27.0, Code: 61},
		},
	}
}

func TestWeatherWaitingAndErrorStates(t *testing.T) {
	w := NewWeatherWidget()
	out := strings.Join(viewLines(t, w, 30, 6), "\n")
	if !strings.Contains(out, "fetching weather") {
		t.Errorf("missing waiting message:\n%s", out)
	}

	w.Update(app.DataUpdateEvent{Source: weather.SourceName, Err: errors.New("timeout")})
	out = strings.Join(viewLines(t, w, 30, 6), "\n")
	if !strings.Contains(out, "unavailable") {
		t.Errorf("missing error message:\n%s", out)
	}
}

func TestWeatherCurrentConditions(t *testing.T) {
	w := NewWeatherWidget()
	w.Update(app.DataUpdateEvent{Source: weather.SourceName, Data: wReport()})

	out := strings.Join(viewLines(t, w, 40, 10), "\n")
	if !strings.Contains(out, "Mostly clear") {
		t.Errorf("missing condition label:\n%s", out)
	}
	if !strings.Contains(out, "27°C") {
		t.Errorf("missing temperature:\n%s", out)
	}
	if !strings.Contains(out, "humidity 54%") || !strings.Contains(out, "wind 13 km/h") {
		t.Errorf("missing humidity/wind line:\n%s", out)
	}
}

func TestWeatherOutlookRows(t *testing.T) {
	w := NewWeatherWidget()
	w.Update(app.DataUpdateEvent{Source: weather.SourceName, Data: wReport()})

	out := strings.Join(viewLines(t, w, 40, 10), "\n")
	if !strings.Contains(out, "Mon 31") {
		t.Errorf("missing weekday label:\n%s", out)
	}
	if !strings.Contains(out, "Rain") {
		t.Errorf("missing second day condition:\n%s", out)
	}
}

func TestWeatherCompactOmitsOutlook(t *testing.T) {
	w := NewWeatherWidget()
	w.Update(app.DataUpdateEvent{Source: weather.SourceName, Data: wReport()})

	out := strings.Join(viewLines(t, w, 40, 3), "\n")
	if strings.Contains(out, "Mon 31") {
		t.Errorf("three-line view should not include the outlook:\n%s", out)
	}
}

func TestWeatherErrorKeepsLastReport(t *testing.T) {
	w := NewWeatherWidget()
	w.Update(app.DataUpdateEvent{Source: weather.SourceName, Data: wReport()})
	w.Update(app.DataUpdateEvent{Source: weather.SourceName, Err: errors.New("late failure")})

	out := strings.Join(viewLines(t, w, 40, 10), "\n")
	if !strings.Contains(out, "Mostly clear") {
		t.Errorf("stale report dropped on later error:\n%s", out)
	}
}

func TestOutlookRowFallsBackToRawDate(t *testing.T) {
	row := outlookRow(weather.DayPoint{Date: "not-a-date", MinC: 1, MaxC: 2})
	if !strings.Contains(row, "not-a-date") {
		t.Errorf("row = %q, want raw date preserved", row)
	}
}
