// Package prayer implements the prayer-time domain core for minaret: the
// five daily prayer names, the per-day schedule, the current/next window
// derivation, the countdown arithmetic, and the prayer-moment trigger with
// its re-entrancy guard.
//
// Everything in this package is pure computation over wall-clock samples.
// Fetching the schedule and playing audio live elsewhere.
package prayer

import (
	"encoding/json"
	"fmt"
	"regexp"
)

// Name identifies one of the five daily prayers, in chronological order.
type Name int

const (
	Fajr Name = iota
	Dhuhr
	Asr
	Maghrib
	Isha
)

// Names lists the five prayers in chronological order. The order is load
// bearing: Window and MomentAt scan it.
var Names = [5]Name{Fajr, Dhuhr, Asr, Maghrib, Isha}

// String returns the English prayer name.
func (n Name) String() string {
	switch n {
	case Fajr:
		return "Fajr"
	case Dhuhr:
		return "Dhuhr"
	case Asr:
		return "Asr"
	case Maghrib:
		return "Maghrib"
	case Isha:
		return "Isha"
	}
	return fmt.Sprintf("Name(%d)", int(n))
}

// ParseName maps an English prayer name back to its Name. The second return
// is false for unknown names.
func ParseName(s string) (Name, bool) {
	for _, n := range Names {
		if n.String() == s {
			return n, true
		}
	}
	return 0, false
}

// Clock is a minute-resolution time of day.
type Clock struct {
	Hour   int
	Minute int
}

// MinuteOfDay returns the clock position in minutes since midnight (0-1439).
func (c Clock) MinuteOfDay() int {
	return c.Hour*60 + c.Minute
}

// String formats the clock as "HH:MM".
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// clockPattern extracts the first HH:MM substring from a provider timing
// field. The Al Adhan API appends timezone suffixes like "05:21 (BST)".
var clockPattern = regexp.MustCompile(`([01]?\d|2[0-3]):([0-5]\d)`)

// ParseClock extracts the first HH:MM substring from s. Returns the zero
// clock (midnight) and false when no clock time is present.
func ParseClock(s string) (Clock, bool) {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return Clock{}, false
	}
	var c Clock
	fmt.Sscanf(m[1], "%d", &c.Hour)
	fmt.Sscanf(m[2], "%d", &c.Minute)
	return c, true
}

// Schedule holds one calendar day of prayer times. The zero value is valid
// and has every prayer at midnight, which is also the documented fallback
// when the provider fetch fails or has not completed yet.
type Schedule struct {
	times [5]Clock
}

// At returns the scheduled clock time for the given prayer.
func (s Schedule) At(n Name) Clock {
	return s.times[n]
}

// Set records the clock time for the given prayer.
func (s *Schedule) Set(n Name, c Clock) {
	s.times[n] = c
}

// NewSchedule builds a schedule from the five clock times in chronological
// prayer order.
func NewSchedule(fajr, dhuhr, asr, maghrib, isha Clock) Schedule {
	return Schedule{times: [5]Clock{fajr, dhuhr, asr, maghrib, isha}}
}

// MarshalJSON encodes the schedule as {"Fajr":"05:21",...} so provider
// snapshots survive the state store.
func (s Schedule) MarshalJSON() ([]byte, error) {
	m := make(map[string]string, len(Names))
	for _, n := range Names {
		m[n.String()] = s.At(n).String()
	}
	return json.Marshal(m)
}

// UnmarshalJSON decodes the map form produced by MarshalJSON. Unknown keys
// are ignored; missing or unparseable entries stay at midnight.
func (s *Schedule) UnmarshalJSON(data []byte) error {
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	for name, raw := range m {
		n, ok := ParseName(name)
		if !ok {
			continue
		}
		if c, ok := ParseClock(raw); ok {
			s.Set(n, c)
		}
	}
	return nil
}
