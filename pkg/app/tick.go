package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/minaret/pkg/collectors"
)

// TickCmd returns a Cmd that sends a TickEvent aligned to the next
// wall-clock second, so the clock digits and countdown flip on the
// second boundary rather than drifting.
func TickCmd(now time.Time) tea.Cmd {
	next := now.Truncate(time.Second).Add(time.Second)
	return tea.Tick(time.Until(next), func(t time.Time) tea.Msg {
		return TickEvent{Time: t}
	})
}

// DataFetchCmd returns a Cmd that runs the collector in a goroutine and
// delivers the result as a DataUpdateEvent. The fetch happens once; a
// failed source stays empty until restart. The outcome is recorded in the
// registry when one is given, so the status bar can report dead sources.
func DataFetchCmd(ctx context.Context, reg *collectors.Registry, c collectors.Collector) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		data, err := c.Collect(ctx)
		if reg != nil {
			reg.RecordRun(c.Name(), err, time.Since(start))
		}
		return DataUpdateEvent{
			Source:    c.Name(),
			Data:      data,
			Err:       err,
			Timestamp: time.Now(),
		}
	}
}

// CachedDataCmd delivers an already-loaded payload (a snapshot restored
// from the state store) as if it had just been fetched.
func CachedDataCmd(source string, data interface{}) tea.Cmd {
	return func() tea.Msg {
		return DataUpdateEvent{
			Source:    source,
			Data:      data,
			Timestamp: time.Now(),
		}
	}
}

// WaitPlaybackCmd blocks on the playback completion channel and converts
// the close into a PlaybackDoneEvent.
func WaitPlaybackCmd(done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-done
		return PlaybackDoneEvent{}
	}
}
