package services

import (
	"context"
	"slices"
	"sync"

	"github.com/renato0307/maestro/internal/domain"
	"github.com/renato0307/maestro/internal/logging"
	"github.com/renato0307/maestro/internal/ports"
)

// Snapshot is the set of sounds paused for one cue.
// It is resumed at most once; later calls to EndDuck are no-ops.
type Snapshot struct {
	closed bool
	mu     sync.Mutex
	sounds []domain.SoundRef
}

// NewSnapshot creates an open snapshot over refs
func NewSnapshot(refs []domain.SoundRef) *Snapshot {
	return &Snapshot{sounds: append([]domain.SoundRef(nil), refs...)}
}

// Sounds returns the paused sounds, empty once resumed
func (s *Snapshot) Sounds() []domain.SoundRef {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.SoundRef(nil), s.sounds...)
}

// Closed reports whether the snapshot was already resumed or absorbed
func (s *Snapshot) Closed() bool {
	if s == nil {
		return true
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// take empties the snapshot and returns what it held
func (s *Snapshot) take() []domain.SoundRef {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	refs := s.sounds
	s.sounds = nil
	return refs
}

// DuckingController pauses audible sounds around a cue and resumes them afterwards.
// Ducking is global: it touches sounds of every playlist.
type DuckingController struct {
	mixer ports.AudioMixer
}

// NewDuckingController creates a new DuckingController
func NewDuckingController(mixer ports.AudioMixer) *DuckingController {
	return &DuckingController{
		mixer: mixer,
	}
}

// BeginDuck pauses every audible sound except keep and returns the ones it
// paused. A sound that fails to pause is skipped.
func (d *DuckingController) BeginDuck(ctx context.Context, keep ...domain.SoundRef) *Snapshot {
	audible, err := d.mixer.Audible(ctx)
	if err != nil {
		logging.Logger.Warn("Failed to list audible sounds, nothing ducked", "error", err)
		return NewSnapshot(nil)
	}

	targets := audible[:0:0]
	for _, ref := range audible {
		if !slices.Contains(keep, ref) {
			targets = append(targets, ref)
		}
	}
	return d.PauseSounds(ctx, targets)
}

// PauseSounds pauses the given sounds and returns the ones actually paused
func (d *DuckingController) PauseSounds(ctx context.Context, refs []domain.SoundRef) *Snapshot {
	paused := make([]domain.SoundRef, 0, len(refs))
	for _, ref := range refs {
		if err := d.mixer.Pause(ctx, ref); err != nil {
			logging.Logger.Debug("Skipping sound that could not be paused", "sound", ref.String(), "error", err)
			continue
		}
		paused = append(paused, ref)
	}

	logging.Logger.Debug("Ducked sounds", "count", len(paused))
	return NewSnapshot(paused)
}

// EndDuck resumes every sound in the snapshot exactly once
func (d *DuckingController) EndDuck(ctx context.Context, s *Snapshot) {
	refs := s.take()
	if len(refs) == 0 {
		return
	}
	d.ResumeSounds(ctx, refs)
}

// ResumeSounds resumes the given sounds, skipping any that stopped meanwhile
func (d *DuckingController) ResumeSounds(ctx context.Context, refs []domain.SoundRef) {
	for _, ref := range refs {
		if err := d.mixer.Resume(ctx, ref); err != nil {
			logging.Logger.Debug("Skipping sound that could not be resumed", "sound", ref.String(), "error", err)
		}
	}
	logging.Logger.Debug("Restored sounds", "count", len(refs))
}
