// Package adhaan implements the call-to-prayer playback controller: a small
// state machine that owns the single audio playback resource and reacts to
// prayer-moment triggers and user commands.
package adhaan

import (
	"log/slog"

	"gitlab.com/tinyland/lab/minaret/pkg/prayer"
)

// State is the controller's playback state.
type State int

const (
	// StateIdle means no adhaan is playing.
	StateIdle State = iota
	// StatePlaying means the adhaan audio is playing.
	StatePlaying
	// StatePaused means playback is paused and can be resumed.
	StatePaused
	// StateLocked means the user stopped playback completely. Locked is
	// terminal for the session: it suppresses automatic triggers and all
	// pause/resume commands until process restart.
	StateLocked
)

// String returns a short display label for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateLocked:
		return "locked"
	}
	return "unknown"
}

// Controller owns the playback resource exclusively; at most one playback
// instance can exist because every transition goes through it. It is not
// concurrency-safe: all calls happen inside the single-threaded update loop.
type Controller struct {
	player    Player
	audioPath string
	state     State
	logger    *slog.Logger
}

// NewController creates a controller in StateIdle around the given player
// and audio file.
func NewController(p Player, audioPath string, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		player:    p,
		audioPath: audioPath,
		state:     StateIdle,
		logger:    logger,
	}
}

// State returns the current playback state.
func (c *Controller) State() State {
	return c.state
}

// Trigger starts playback for a prayer moment. It is a no-op unless the
// controller is unlocked and audio is enabled for the prayer. A play
// rejection (e.g. no audio backend on the host) is swallowed and the
// controller stays in its prior state: on a kiosk there is no actionable
// recovery, so there is no error UI either.
//
// Returns true when playback actually started.
func (c *Controller) Trigger(p prayer.Name, enabled bool) bool {
	if c.state == StateLocked {
		c.logger.Debug("adhaan trigger suppressed by lock", "prayer", p.String())
		return false
	}
	if !enabled {
		c.logger.Debug("adhaan disabled for prayer", "prayer", p.String())
		return false
	}

	if err := c.player.Play(c.audioPath); err != nil {
		c.logger.Warn("adhaan playback rejected", "prayer", p.String(), "error", err)
		return false
	}

	c.state = StatePlaying
	c.logger.Info("adhaan playing", "prayer", p.String())
	return true
}

// Pause pauses playback. No-op unless currently playing.
func (c *Controller) Pause() {
	if c.state != StatePlaying {
		return
	}
	c.player.Pause()
	c.state = StatePaused
}

// Resume resumes paused playback. No-op unless currently paused.
func (c *Controller) Resume() {
	if c.state != StatePaused {
		return
	}
	c.player.Resume()
	c.state = StatePlaying
}

// TogglePause flips between playing and paused. No-op in other states.
func (c *Controller) TogglePause() {
	switch c.state {
	case StatePlaying:
		c.Pause()
	case StatePaused:
		c.Resume()
	}
}

// StopAndLock halts playback immediately and locks the controller for the
// remainder of the session. There is no unlock command.
func (c *Controller) StopAndLock() {
	if c.state == StatePlaying || c.state == StatePaused {
		c.player.Stop()
	}
	c.state = StateLocked
	c.logger.Info("adhaan locked for session")
}

// Finished records natural end-of-audio: the state returns to Idle without
// user action. No-op when locked.
func (c *Controller) Finished() {
	if c.state == StateLocked {
		return
	}
	c.state = StateIdle
}

// Done exposes the player's completion channel so the event loop can turn
// natural end-of-audio into a message.
func (c *Controller) Done() <-chan struct{} {
	return c.player.Done()
}
