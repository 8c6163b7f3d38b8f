package sound

import (
	"context"
	"sync"
	"time"

	"github.com/renato0307/maestro/internal/domain"
	"github.com/renato0307/maestro/internal/ports"
)

// SilentPlayer produces voices that make no sound and end after a fixed duration.
// Used by dry runs and by hosts without an audio device.
type SilentPlayer struct {
	duration time.Duration
}

var _ ports.AudioPlayer = (*SilentPlayer)(nil)

// NewSilentPlayer creates a player whose voices last d
func NewSilentPlayer(d time.Duration) *SilentPlayer {
	return &SilentPlayer{duration: d}
}

// Start implements ports.AudioPlayer
func (p *SilentPlayer) Start(ctx context.Context, path string) (ports.Voice, error) {
	return newTimedVoice(p.duration), nil
}

// timedVoice counts down its remaining time only while not paused
type timedVoice struct {
	done      chan struct{}
	mu        sync.Mutex
	once      sync.Once
	remaining time.Duration
	started   time.Time
	timer     *time.Timer
}

func newTimedVoice(d time.Duration) *timedVoice {
	v := &timedVoice{done: make(chan struct{}), remaining: d, started: time.Now()}
	v.timer = time.AfterFunc(d, v.finish)
	return v
}

func (v *timedVoice) finish() {
	v.once.Do(func() { close(v.done) })
}

func (v *timedVoice) Done() <-chan struct{} {
	return v.done
}

func (v *timedVoice) Pause() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	select {
	case <-v.done:
		return domain.ErrVoiceFinished
	default:
	}
	if v.timer == nil {
		return nil
	}
	if v.timer.Stop() {
		v.remaining -= time.Since(v.started)
	}
	v.timer = nil
	return nil
}

func (v *timedVoice) Resume() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	select {
	case <-v.done:
		return domain.ErrVoiceFinished
	default:
	}
	if v.timer != nil {
		return nil
	}
	v.started = time.Now()
	v.timer = time.AfterFunc(v.remaining, v.finish)
	return nil
}

func (v *timedVoice) Stop() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.timer != nil {
		v.timer.Stop()
	}
	v.finish()
	return nil
}
