package prayer

import (
	"testing"
	"time"
)

func TestMomentAt(t *testing.T) {
	s := prTestSchedule()

	tests := []struct {
		name   string
		now    time.Time
		want   Name
		wantOK bool
	}{
		{"exact dhuhr second", prAt(12, 0, 0), Dhuhr, true},
		{"one second late", prAt(12, 0, 1), 0, false},
		{"one second early", prAt(11, 59, 59), 0, false},
		{"exact maghrib second", prAt(18, 0, 0), Maghrib, true},
		{"unscheduled minute", prAt(13, 37, 0), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MomentAt(tt.now, s)
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Errorf("MomentAt(%s) = (%s, %v), want (%s, %v)",
					tt.now.Format("15:04:05"), got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestTickerFiresOncePerMoment(t *testing.T) {
	s := NewSchedule(
		Clock{5, 0},
		Clock{12, 30},
		Clock{15, 0},
		Clock{18, 0},
		Clock{20, 0},
	)
	tk := NewTicker()

	// Simulated tick sequence around Dhuhr at 12:30, including a duplicate
	// evaluation within the trigger second.
	samples := []time.Time{
		prAt(12, 29, 59),
		prAt(12, 30, 0),
		prAt(12, 30, 0),
		prAt(12, 30, 1),
	}

	fired := 0
	for _, now := range samples {
		if n, ok := tk.Fire(now, s); ok {
			fired++
			if n != Dhuhr {
				t.Errorf("fired %s, want Dhuhr", n)
			}
		}
	}
	if fired != 1 {
		t.Errorf("fired %d times, want exactly 1", fired)
	}
}

func TestTickerRearmsOnNextPrayer(t *testing.T) {
	s := prTestSchedule()
	tk := NewTicker()

	if _, ok := tk.Fire(prAt(12, 0, 0), s); !ok {
		t.Fatal("Dhuhr moment did not fire")
	}
	if _, ok := tk.Fire(prAt(12, 0, 0), s); ok {
		t.Fatal("Dhuhr moment fired twice")
	}
	n, ok := tk.Fire(prAt(15, 0, 0), s)
	if !ok || n != Asr {
		t.Fatalf("Fire at Asr = (%s, %v), want (Asr, true)", n, ok)
	}

	last, armed := tk.LastFired()
	if !armed || last != Asr {
		t.Errorf("LastFired() = (%s, %v), want (Asr, true)", last, armed)
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in     string
		want   Clock
		wantOK bool
	}{
		{"05:21", Clock{5, 21}, true},
		{"05:21 (BST)", Clock{5, 21}, true},
		{"18:07 (+03)", Clock{18, 7}, true},
		{"23:59", Clock{23, 59}, true},
		{"garbage", Clock{}, false},
		{"", Clock{}, false},
	}

	for _, tt := range tests {
		got, ok := ParseClock(tt.in)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ParseClock(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestParseName(t *testing.T) {
	for _, n := range Names {
		got, ok := ParseName(n.String())
		if !ok || got != n {
			t.Errorf("ParseName(%q) = (%v, %v), want (%v, true)", n.String(), got, ok, n)
		}
	}
	if _, ok := ParseName("Sunrise"); ok {
		t.Error("ParseName accepted a non-prayer name")
	}
}
