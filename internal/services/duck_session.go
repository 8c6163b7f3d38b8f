package services

import (
	"context"
	"sync"

	"github.com/renato0307/maestro/internal/domain"
	"github.com/renato0307/maestro/internal/logging"
)

// DuckSession owns the ducking state of one engine.
// At most one session is open at a time.
type DuckSession interface {
	// Open ducks every audible sound but keep and returns the new generation.
	// Sounds still held by an open session carry over into the new one.
	Open(ctx context.Context, keep ...domain.SoundRef) uint64
	// CloseIf resumes the open session only if gen is still the current generation
	CloseIf(ctx context.Context, gen uint64) bool
	// Close resumes whatever session is open
	Close(ctx context.Context)
	// Held returns the sounds the open session will resume
	Held() []domain.SoundRef
}

var _ DuckSession = (*LocalDuckSession)(nil)

// LocalDuckSession is the in-memory DuckSession. Opening and closing are
// serialized, including the pause and resume calls they make.
type LocalDuckSession struct {
	current *Snapshot
	ducker  *DuckingController
	gen     uint64
	mu      sync.Mutex
}

// NewDuckSession creates a session that ducks through ducker
func NewDuckSession(ducker *DuckingController) *LocalDuckSession {
	return &LocalDuckSession{
		ducker: ducker,
	}
}

// Open implements DuckSession
func (l *LocalDuckSession) Open(ctx context.Context, keep ...domain.SoundRef) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	carried := l.current.take()
	merged := mergeRefs(carried, l.ducker.BeginDuck(ctx, keep...).take())

	l.gen++
	l.current = NewSnapshot(merged)
	logging.Logger.Debug("Duck session opened", "generation", l.gen, "sounds", len(merged), "carried", len(carried))
	return l.gen
}

// CloseIf implements DuckSession
func (l *LocalDuckSession) CloseIf(ctx context.Context, gen uint64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if gen != l.gen || l.current == nil {
		logging.Logger.Debug("Ignoring stale duck session close", "generation", gen, "current", l.gen)
		return false
	}
	l.ducker.EndDuck(ctx, l.current)
	l.current = nil
	return true
}

// Close implements DuckSession
func (l *LocalDuckSession) Close(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.ducker.EndDuck(ctx, l.current)
	l.current = nil
}

// Held implements DuckSession
func (l *LocalDuckSession) Held() []domain.SoundRef {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.current.Sounds()
}

// mergeRefs concatenates a and b dropping duplicates, first occurrence wins
func mergeRefs(a, b []domain.SoundRef) []domain.SoundRef {
	seen := make(map[domain.SoundRef]bool, len(a)+len(b))
	out := make([]domain.SoundRef, 0, len(a)+len(b))
	for _, list := range [][]domain.SoundRef{a, b} {
		for _, ref := range list {
			if seen[ref] {
				continue
			}
			seen[ref] = true
			out = append(out, ref)
		}
	}
	return out
}
