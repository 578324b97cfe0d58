package prayer

import (
	"fmt"
	"time"
)

// minutesPerDay is the modulus for all wrap-around clock arithmetic.
const minutesPerDay = 24 * 60

// Window derives the (current, next) prayer pair for the given wall-clock
// sample. Current is the latest prayer whose time of day is <= now; next is
// the earliest prayer whose time of day is > now, wrapping to Fajr after
// Isha.
//
// Boundary policy: before Fajr's time the current prayer reports as Fajr,
// not "yesterday's Isha". That matches the product behavior on the kiosk
// display and is deliberate, not a scan artifact.
func Window(now time.Time, s Schedule) (current, next Name) {
	nowMin := minuteOfDay(now)

	current = Fajr
	for i := len(Names) - 1; i >= 0; i-- {
		if s.At(Names[i]).MinuteOfDay() <= nowMin {
			current = Names[i]
			break
		}
	}

	next = Fajr
	for _, n := range Names {
		if s.At(n).MinuteOfDay() > nowMin {
			next = n
			break
		}
	}
	return current, next
}

// Countdown formats the time remaining until the next prayer as "HH:MM:SS".
//
// Minutes remaining are computed modulo a day so the countdown wraps
// correctly across midnight. A non-positive difference means the boundary
// was crossed between ticks (or next is a full day away); it is bumped by
// one day so the display never flashes zero or negative. Prayer times carry
// no seconds, so the seconds column simply counts down within the current
// minute.
func Countdown(now time.Time, next Clock) string {
	mins := (next.MinuteOfDay() - minuteOfDay(now)) % minutesPerDay
	if mins <= 0 {
		mins += minutesPerDay
	}
	secs := 59 - now.Second()
	return fmt.Sprintf("%02d:%02d:%02d", mins/60, mins%60, secs)
}

// minuteOfDay returns the wall-clock sample's position in minutes since
// local midnight.
func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
