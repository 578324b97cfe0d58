// Package app provides the core Bubbletea application framework for the
// minaret kiosk. It defines the event types, root model, widget interface,
// and navigation logic that form the Elm-architecture skeleton.
//
// All mutable state lives in the update loop; collectors run in goroutines
// and report back exclusively through DataUpdateEvent.
package app

import (
	"time"

	"gitlab.com/tinyland/lab/minaret/pkg/adhaan"
	"gitlab.com/tinyland/lab/minaret/pkg/prayer"
	"gitlab.com/tinyland/lab/minaret/pkg/settings"
)

// DataUpdateEvent carries new data from a collector goroutine back into the
// bubbletea update loop. Receivers type-assert Data based on Source.
type DataUpdateEvent struct {
	Source    string      // Collector name (e.g., "prayertimes", "weather")
	Data      interface{} // Type-asserted by the receiver
	Err       error       // Non-nil if the fetch failed
	Timestamp time.Time
}

// TickEvent is sent once per second to refresh the clock, advance the
// countdown, and check for the prayer moment.
type TickEvent struct {
	Time time.Time
}

// ThemeChangeEvent switches the active color theme.
type ThemeChangeEvent struct {
	Theme string
}

// AdhaanToggleEvent requests flipping the auto-play preference for one
// prayer. The root model owns the settings, so widgets emit this instead
// of mutating anything themselves.
type AdhaanToggleEvent struct {
	Prayer prayer.Name
}

// AdhaanStateEvent is broadcast to widgets whenever the playback state
// machine moves, so the prayer panel can show the state line.
type AdhaanStateEvent struct {
	State  adhaan.State
	Prayer prayer.Name // prayer whose adhaan is (or was) playing
}

// SettingsEvent is broadcast to widgets after the persisted settings load
// or change.
type SettingsEvent struct {
	Settings settings.Settings
}

// PlaybackDoneEvent signals natural end-of-audio.
type PlaybackDoneEvent struct{}

// QuoteAdvanceEvent requests skipping to the next quote ahead of the
// rotation interval.
type QuoteAdvanceEvent struct{}
