package adhaan

import (
	"errors"
	"testing"

	"gitlab.com/tinyland/lab/minaret/pkg/prayer"
)

// fakePlayer records calls and lets tests force play rejection.
type fakePlayer struct {
	playErr    error
	playCalls  int
	pauseCalls int
	stopCalls  int
	done       chan struct{}
}

func newFakePlayer() *fakePlayer {
	return &fakePlayer{done: make(chan struct{})}
}

func (f *fakePlayer) Play(string) error {
	if f.playErr != nil {
		return f.playErr
	}
	f.playCalls++
	return nil
}

func (f *fakePlayer) Pause()               { f.pauseCalls++ }
func (f *fakePlayer) Resume()              {}
func (f *fakePlayer) Stop()                { f.stopCalls++ }
func (f *fakePlayer) Done() <-chan struct{} { return f.done }

func TestTriggerStartsPlayback(t *testing.T) {
	fp := newFakePlayer()
	c := NewController(fp, "adhaan.mp3", nil)

	if !c.Trigger(prayer.Dhuhr, true) {
		t.Fatal("Trigger returned false for enabled prayer")
	}
	if c.State() != StatePlaying {
		t.Errorf("state = %s, want playing", c.State())
	}
	if fp.playCalls != 1 {
		t.Errorf("playCalls = %d, want 1", fp.playCalls)
	}
}

func TestTriggerRespectsPreference(t *testing.T) {
	fp := newFakePlayer()
	c := NewController(fp, "adhaan.mp3", nil)

	if c.Trigger(prayer.Asr, false) {
		t.Fatal("Trigger returned true for disabled prayer")
	}
	if c.State() != StateIdle {
		t.Errorf("state = %s, want idle", c.State())
	}
	if fp.playCalls != 0 {
		t.Errorf("playCalls = %d, want 0", fp.playCalls)
	}
}

func TestPlayRejectionSwallowed(t *testing.T) {
	fp := newFakePlayer()
	fp.playErr = errors.New("autoplay blocked")
	c := NewController(fp, "adhaan.mp3", nil)

	if c.Trigger(prayer.Maghrib, true) {
		t.Fatal("Trigger reported success despite play rejection")
	}
	if c.State() != StateIdle {
		t.Errorf("state = %s, want idle (prior state preserved)", c.State())
	}
}

func TestPauseResume(t *testing.T) {
	fp := newFakePlayer()
	c := NewController(fp, "adhaan.mp3", nil)

	// Pause before anything plays is a no-op.
	c.Pause()
	if c.State() != StateIdle {
		t.Fatalf("state after idle pause = %s, want idle", c.State())
	}

	c.Trigger(prayer.Isha, true)
	c.Pause()
	if c.State() != StatePaused {
		t.Fatalf("state = %s, want paused", c.State())
	}

	// Resume only applies when paused.
	c.Resume()
	if c.State() != StatePlaying {
		t.Fatalf("state = %s, want playing", c.State())
	}
	c.Resume()
	if c.State() != StatePlaying {
		t.Fatalf("state after double resume = %s, want playing", c.State())
	}
}

func TestTogglePause(t *testing.T) {
	fp := newFakePlayer()
	c := NewController(fp, "adhaan.mp3", nil)

	c.TogglePause() // idle: no-op
	if c.State() != StateIdle {
		t.Fatalf("state = %s, want idle", c.State())
	}

	c.Trigger(prayer.Fajr, true)
	c.TogglePause()
	if c.State() != StatePaused {
		t.Fatalf("state = %s, want paused", c.State())
	}
	c.TogglePause()
	if c.State() != StatePlaying {
		t.Fatalf("state = %s, want playing", c.State())
	}
}

func TestLockIsTerminal(t *testing.T) {
	fp := newFakePlayer()
	c := NewController(fp, "adhaan.mp3", nil)

	c.Trigger(prayer.Maghrib, true)
	c.StopAndLock()
	if c.State() != StateLocked {
		t.Fatalf("state = %s, want locked", c.State())
	}
	if fp.stopCalls != 1 {
		t.Errorf("stopCalls = %d, want 1", fp.stopCalls)
	}

	// Every future command and trigger must leave the state at locked.
	if c.Trigger(prayer.Isha, true) {
		t.Error("Trigger succeeded while locked")
	}
	c.Pause()
	c.Resume()
	c.TogglePause()
	c.Finished()
	if c.State() != StateLocked {
		t.Errorf("state = %s, want locked", c.State())
	}
	if fp.playCalls != 1 {
		t.Errorf("playCalls = %d, want 1 (no playback while locked)", fp.playCalls)
	}
}

func TestLockFromIdle(t *testing.T) {
	fp := newFakePlayer()
	c := NewController(fp, "adhaan.mp3", nil)

	c.StopAndLock()
	if c.State() != StateLocked {
		t.Fatalf("state = %s, want locked", c.State())
	}
	// Stop is only sent when something was actually playing or paused.
	if fp.stopCalls != 0 {
		t.Errorf("stopCalls = %d, want 0", fp.stopCalls)
	}
}

func TestNaturalCompletion(t *testing.T) {
	fp := newFakePlayer()
	c := NewController(fp, "adhaan.mp3", nil)

	c.Trigger(prayer.Fajr, true)
	c.Finished()
	if c.State() != StateIdle {
		t.Errorf("state = %s, want idle after natural completion", c.State())
	}

	// A later moment can trigger again.
	if !c.Trigger(prayer.Dhuhr, true) {
		t.Error("Trigger failed after completion")
	}
}
