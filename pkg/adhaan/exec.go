//go:build unix

package adhaan

import (
	"fmt"
	"log/slog"
	"os/exec"
	"sync"
	"syscall"
)

// playerCandidates lists audio CLIs in preference order together with the
// arguments that make them play one file and exit quietly.
var playerCandidates = []struct {
	bin  string
	args []string
}{
	{"mpv", []string{"--no-video", "--really-quiet"}},
	{"ffplay", []string{"-nodisp", "-autoexit", "-loglevel", "quiet"}},
	{"afplay", nil},
	{"paplay", nil},
	{"aplay", []string{"-q"}},
}

// ExecPlayer plays audio by spawning a local player process. Pause and
// resume map to SIGSTOP/SIGCONT; stop kills the process. Natural completion
// is observed by waiting on the process.
type ExecPlayer struct {
	bin  string
	args []string

	mu     sync.Mutex
	cmd    *exec.Cmd
	done   chan struct{}
	logger *slog.Logger
}

// NewExecPlayer locates an audio player binary on PATH. The override, when
// non-empty, is used verbatim instead of probing the candidate list.
func NewExecPlayer(override string, logger *slog.Logger) (*ExecPlayer, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if override != "" {
		path, err := exec.LookPath(override)
		if err != nil {
			return nil, fmt.Errorf("audio player %q not found: %w", override, err)
		}
		return &ExecPlayer{bin: path, logger: logger}, nil
	}

	for _, c := range playerCandidates {
		if path, err := exec.LookPath(c.bin); err == nil {
			logger.Debug("audio player selected", "bin", path)
			return &ExecPlayer{bin: path, args: c.args, logger: logger}, nil
		}
	}
	return nil, fmt.Errorf("no audio player found on PATH (tried mpv, ffplay, afplay, paplay, aplay)")
}

// Play spawns the player process for the given file. A playback already in
// flight is killed first so only one process ever exists.
func (p *ExecPlayer) Play(path string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.killLocked()

	cmd := exec.Command(p.bin, append(append([]string{}, p.args...), path)...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", p.bin, err)
	}

	done := make(chan struct{})
	p.cmd = cmd
	p.done = done

	go func() {
		err := cmd.Wait()
		if err != nil {
			p.logger.Debug("audio player exited", "error", err)
		}
		close(done)
	}()

	return nil
}

// Pause sends SIGSTOP to the player process.
func (p *ExecPlayer) Pause() {
	p.signal(syscall.SIGSTOP)
}

// Resume sends SIGCONT to the player process.
func (p *ExecPlayer) Resume() {
	p.signal(syscall.SIGCONT)
}

// Stop kills the player process. The wait goroutine reaps it.
func (p *ExecPlayer) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.killLocked()
}

// Done returns the completion channel of the current playback.
func (p *ExecPlayer) Done() <-chan struct{} {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.done
}

func (p *ExecPlayer) signal(sig syscall.Signal) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cmd == nil || p.cmd.Process == nil {
		return
	}
	if err := p.cmd.Process.Signal(sig); err != nil {
		p.logger.Debug("audio player signal failed", "signal", sig.String(), "error", err)
	}
}

// killLocked terminates any in-flight playback. Caller holds p.mu. A paused
// process must be continued before kill so it can actually die.
func (p *ExecPlayer) killLocked() {
	if p.cmd == nil || p.cmd.Process == nil {
		return
	}
	_ = p.cmd.Process.Signal(syscall.SIGCONT)
	_ = p.cmd.Process.Kill()
	p.cmd = nil
}
