package sound

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/renato0307/maestro/internal/domain"
	"github.com/renato0307/maestro/internal/logging"
	"github.com/renato0307/maestro/internal/ports"
)

// Player implements ports.AudioPlayer by running one OS audio command per voice
type Player struct {
	command string
}

var _ ports.AudioPlayer = (*Player)(nil)

// NewPlayer creates a new sound player. command overrides the per-OS player
// (e.g. "ffplay -nodisp -autoexit"); the file path is appended to it.
func NewPlayer(command string) *Player {
	return &Player{command: strings.TrimSpace(command)}
}

type playerCommand struct {
	cmd  string
	args []string
}

// Start spawns the first available player for path.
// Platform-specific candidates are in player_*.go files with build tags.
func (p *Player) Start(ctx context.Context, path string) (ports.Voice, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("sound file %s: %w", path, err)
	}

	candidates := commandsFor(path)
	if p.command != "" {
		fields := strings.Fields(p.command)
		candidates = []playerCommand{{cmd: fields[0], args: append(fields[1:], path)}}
	}

	var errs []error
	for _, c := range candidates {
		cmd := exec.Command(c.cmd, c.args...)
		if err := cmd.Start(); err != nil {
			errs = append(errs, err)
			continue
		}
		logging.Logger.Debug("Voice started", "player", c.cmd, "path", path, "pid", cmd.Process.Pid)
		return newProcessVoice(cmd), nil
	}

	return nil, fmt.Errorf("no audio player could start %s: %w", path, errors.Join(append(errs, domain.ErrPlaybackFailed)...))
}

// processVoice is a running player process
type processVoice struct {
	cmd    *exec.Cmd
	done   chan struct{}
	mu     sync.Mutex
	paused bool
}

func newProcessVoice(cmd *exec.Cmd) *processVoice {
	v := &processVoice{cmd: cmd, done: make(chan struct{})}
	go func() {
		err := cmd.Wait()
		logging.Logger.Debug("Voice exited", "pid", cmd.Process.Pid, "error", err)
		close(v.done)
	}()
	return v
}

func (v *processVoice) Done() <-chan struct{} {
	return v.done
}

func (v *processVoice) finished() bool {
	select {
	case <-v.done:
		return true
	default:
		return false
	}
}

func (v *processVoice) Pause() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.finished() {
		return domain.ErrVoiceFinished
	}
	if v.paused {
		return nil
	}
	if err := suspend(v.cmd.Process); err != nil {
		return fmt.Errorf("failed to pause voice: %w", err)
	}
	v.paused = true
	return nil
}

func (v *processVoice) Resume() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.finished() {
		return domain.ErrVoiceFinished
	}
	if !v.paused {
		return nil
	}
	if err := resume(v.cmd.Process); err != nil {
		return fmt.Errorf("failed to resume voice: %w", err)
	}
	v.paused = false
	return nil
}

func (v *processVoice) Stop() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.finished() {
		return nil
	}
	if err := v.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return fmt.Errorf("failed to stop voice: %w", err)
	}
	return nil
}
