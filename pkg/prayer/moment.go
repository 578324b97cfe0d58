package prayer

import "time"

// MomentAt reports whether now falls inside a prayer moment: the one-second
// window HH:MM:00 matching a scheduled prayer time. If the process never
// observes that exact second (suspended, clock jump), the moment is missed
// for the day; there is no compensation.
func MomentAt(now time.Time, s Schedule) (Name, bool) {
	if now.Second() != 0 {
		return 0, false
	}
	nowMin := minuteOfDay(now)
	for _, n := range Names {
		if s.At(n).MinuteOfDay() == nowMin {
			return n, true
		}
	}
	return 0, false
}

// Ticker owns the trigger re-entrancy guard. The per-second tick handler
// calls Fire on every sample; Fire reports each prayer moment at most once
// even when the handler runs several times within the same second.
//
// The guard is a single remembered prayer name, not a queue: firing any
// other prayer re-arms it, which is enough because the five prayers within
// a day are pairwise distinct moments.
type Ticker struct {
	lastFired Name
	armed     bool
}

// NewTicker returns a Ticker that has not fired yet.
func NewTicker() *Ticker {
	return &Ticker{}
}

// Fire returns (prayer, true) exactly once per prayer moment. Outside a
// moment, or on a repeated sample of an already-fired moment, it returns
// false.
func (t *Ticker) Fire(now time.Time, s Schedule) (Name, bool) {
	n, ok := MomentAt(now, s)
	if !ok {
		return 0, false
	}
	if t.armed && t.lastFired == n {
		return 0, false
	}
	t.lastFired = n
	t.armed = true
	return n, true
}

// LastFired returns the most recent prayer reported by Fire. The second
// return is false before the first fire of the session.
func (t *Ticker) LastFired() (Name, bool) {
	return t.lastFired, t.armed
}
