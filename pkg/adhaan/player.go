package adhaan

// Player abstracts the host audio playback primitive. Implementations own
// exactly one playback slot: a second Play replaces the first.
type Player interface {
	// Play starts playback of the audio file from the beginning. An error
	// means the host rejected playback; the caller treats that as a no-op.
	Play(path string) error

	// Pause suspends playback, keeping the position.
	Pause()

	// Resume continues paused playback.
	Resume()

	// Stop halts playback and resets the position to the start.
	Stop()

	// Done returns a channel that is closed when the current playback
	// reaches its natural end. Each Play installs a fresh channel.
	Done() <-chan struct{}
}

// NopPlayer is a Player that plays nothing and completes immediately. It
// backs the -no-audio flag and keeps the controller state machine exercised
// on hosts without an audio backend.
type NopPlayer struct {
	done chan struct{}
}

// NewNopPlayer returns a NopPlayer.
func NewNopPlayer() *NopPlayer {
	return &NopPlayer{}
}

// Play succeeds and completes the playback immediately.
func (p *NopPlayer) Play(string) error {
	p.done = make(chan struct{})
	close(p.done)
	return nil
}

// Pause is a no-op.
func (p *NopPlayer) Pause() {}

// Resume is a no-op.
func (p *NopPlayer) Resume() {}

// Stop is a no-op.
func (p *NopPlayer) Stop() {}

// Done returns the completion channel of the last Play, or nil (blocks
// forever) before the first Play.
func (p *NopPlayer) Done() <-chan struct{} {
	return p.done
}
