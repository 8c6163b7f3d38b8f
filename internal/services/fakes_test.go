package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/renato0307/maestro/internal/domain"
	"github.com/renato0307/maestro/internal/ports"
)

// memFlags is an in-memory FlagStore and SettingsStore that round-trips values through JSON
type memFlags struct {
	data map[string][]byte
	mu   sync.Mutex
}

var (
	_ ports.FlagStore     = (*memFlags)(nil)
	_ ports.SettingsStore = (*memFlags)(nil)
)

func newMemFlags() *memFlags {
	return &memFlags{data: make(map[string][]byte)}
}

func flagKey(doc domain.DocumentRef, key string) string {
	return string(doc.Kind) + "/" + doc.ID + "/" + key
}

func (m *memFlags) get(k string, out any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, ok := m.data[k]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, out)
}

func (m *memFlags) set(k string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[k] = raw
	return nil
}

func (m *memFlags) GetFlag(ctx context.Context, doc domain.DocumentRef, key string, out any) (bool, error) {
	return m.get(flagKey(doc, key), out)
}

func (m *memFlags) SetFlag(ctx context.Context, doc domain.DocumentRef, key string, value any) error {
	return m.set(flagKey(doc, key), value)
}

func (m *memFlags) UnsetFlag(ctx context.Context, doc domain.DocumentRef, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, flagKey(doc, key))
	return nil
}

func (m *memFlags) GetSetting(ctx context.Context, module, key string, out any) (bool, error) {
	return m.get("setting/"+module+"/"+key, out)
}

func (m *memFlags) SetSetting(ctx context.Context, module, key string, value any) error {
	return m.set("setting/"+module+"/"+key, value)
}

// fakeHandle is a CueHandle the test ends by hand
type fakeHandle struct {
	ended chan struct{}
	once  sync.Once
	ref   domain.SoundRef
}

func newFakeHandle(ref domain.SoundRef) *fakeHandle {
	return &fakeHandle{ended: make(chan struct{}), ref: ref}
}

func (h *fakeHandle) Ended() <-chan struct{} { return h.ended }
func (h *fakeHandle) Sound() domain.SoundRef { return h.ref }
func (h *fakeHandle) finish()                { h.once.Do(func() { close(h.ended) }) }

// fakeGateway is an in-memory PlaybackGateway that counts pauses and resumes
// and records every resume of a sound that was not paused
type fakeGateway struct {
	created    []string
	failPause  map[domain.SoundRef]bool
	failPlay   bool
	handles    map[domain.SoundRef]*fakeHandle
	live       []domain.SoundRef
	mu         sync.Mutex
	pauses     map[domain.SoundRef]int
	paused     map[domain.SoundRef]bool
	played     []domain.SoundRef
	playedAll  []string
	playlists  []*domain.Playlist
	repeats    map[domain.SoundRef]bool
	resumes    map[domain.SoundRef]int
	stopped    []string
	violations []string
}

var _ ports.PlaybackGateway = (*fakeGateway)(nil)

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		failPause: make(map[domain.SoundRef]bool),
		handles:   make(map[domain.SoundRef]*fakeHandle),
		pauses:    make(map[domain.SoundRef]int),
		paused:    make(map[domain.SoundRef]bool),
		repeats:   make(map[domain.SoundRef]bool),
		resumes:   make(map[domain.SoundRef]int),
	}
}

// addPlaylist registers a playlist whose sound ids are name-0, name-1, ...
func (g *fakeGateway) addPlaylist(name string, mode domain.PlaybackMode, sounds ...string) *domain.Playlist {
	g.mu.Lock()
	defer g.mu.Unlock()
	p := &domain.Playlist{ID: "pl-" + name, Mode: mode, Name: name}
	for i, s := range sounds {
		p.Sounds = append(p.Sounds, domain.Sound{
			ID:         fmt.Sprintf("%s-%d", name, i),
			Name:       s,
			Path:       "/audio/" + s + ".ogg",
			PlaylistID: p.ID,
			Sort:       i + 1,
		})
	}
	g.playlists = append(g.playlists, p)
	return p
}

func (g *fakeGateway) removePlaylist(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i, p := range g.playlists {
		if p.ID == id {
			g.playlists = append(g.playlists[:i], g.playlists[i+1:]...)
			return
		}
	}
}

func (g *fakeGateway) snapshotLocked(p *domain.Playlist) *domain.Playlist {
	cp := *p
	cp.Sounds = append([]domain.Sound(nil), p.Sounds...)
	if cp.PlaybackOrder == nil {
		cp.PlaybackOrder = cp.NaturalOrder()
	} else {
		cp.PlaybackOrder = append([]string(nil), p.PlaybackOrder...)
	}
	for i := range cp.Sounds {
		ref := domain.SoundRef{PlaylistID: cp.ID, SoundID: cp.Sounds[i].ID}
		if g.isLiveLocked(ref) {
			cp.Sounds[i].Playing = true
			cp.Playing = true
		}
	}
	return &cp
}

func (g *fakeGateway) isLiveLocked(ref domain.SoundRef) bool {
	for _, l := range g.live {
		if l == ref {
			return true
		}
	}
	return false
}

func (g *fakeGateway) FindPlaylistByName(ctx context.Context, name string) (*domain.Playlist, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, p := range g.playlists {
		if p.Name == name {
			return g.snapshotLocked(p), nil
		}
	}
	return nil, fmt.Errorf("%s: %w", name, domain.ErrPlaylistNotFound)
}

func (g *fakeGateway) Playlist(ctx context.Context, id string) (*domain.Playlist, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, p := range g.playlists {
		if p.ID == id {
			return g.snapshotLocked(p), nil
		}
	}
	return nil, fmt.Errorf("%s: %w", id, domain.ErrPlaylistNotFound)
}

func (g *fakeGateway) Playlists(ctx context.Context) ([]domain.Playlist, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]domain.Playlist, 0, len(g.playlists))
	for _, p := range g.playlists {
		out = append(out, *g.snapshotLocked(p))
	}
	return out, nil
}

func (g *fakeGateway) CreatePlaylist(ctx context.Context, name string, mode domain.PlaybackMode) (*domain.Playlist, error) {
	g.mu.Lock()
	g.created = append(g.created, name)
	g.mu.Unlock()
	p := g.addPlaylist(name, mode)
	return g.Playlist(ctx, p.ID)
}

func (g *fakeGateway) startLocked(ref domain.SoundRef) *fakeHandle {
	if old, ok := g.handles[ref]; ok {
		old.finish()
	}
	h := newFakeHandle(ref)
	g.handles[ref] = h
	if !g.isLiveLocked(ref) {
		g.live = append(g.live, ref)
	}
	delete(g.paused, ref)
	return h
}

func (g *fakeGateway) PlayAll(ctx context.Context, playlistID string) (ports.CueHandle, error) {
	p, err := g.Playlist(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failPlay || len(p.PlaybackOrder) == 0 {
		return nil, domain.ErrPlaybackFailed
	}
	g.playedAll = append(g.playedAll, playlistID)
	return g.startLocked(domain.SoundRef{PlaylistID: playlistID, SoundID: p.PlaybackOrder[0]}), nil
}

func (g *fakeGateway) PlaySound(ctx context.Context, ref domain.SoundRef) (ports.CueHandle, error) {
	p, err := g.Playlist(ctx, ref.PlaylistID)
	if err != nil {
		return nil, err
	}
	if _, ok := p.Sound(ref.SoundID); !ok {
		return nil, domain.ErrSoundNotFound
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failPlay {
		return nil, domain.ErrPlaybackFailed
	}
	g.played = append(g.played, ref)
	return g.startLocked(ref), nil
}

func (g *fakeGateway) SetRepeat(ctx context.Context, ref domain.SoundRef, repeat bool) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.repeats[ref] = repeat
	return nil
}

func (g *fakeGateway) StopAll(ctx context.Context, playlistID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.stopped = append(g.stopped, playlistID)
	kept := g.live[:0]
	for _, ref := range g.live {
		if ref.PlaylistID != playlistID {
			kept = append(kept, ref)
			continue
		}
		delete(g.paused, ref)
		if h, ok := g.handles[ref]; ok {
			h.finish()
			delete(g.handles, ref)
		}
	}
	g.live = kept
	return nil
}

// end finishes a sound on its own, as when the track runs out
func (g *fakeGateway) end(ref domain.SoundRef) {
	g.mu.Lock()
	defer g.mu.Unlock()
	kept := g.live[:0]
	for _, l := range g.live {
		if l != ref {
			kept = append(kept, l)
		}
	}
	g.live = kept
	delete(g.paused, ref)
	if h, ok := g.handles[ref]; ok {
		h.finish()
		delete(g.handles, ref)
	}
}

func (g *fakeGateway) Audible(ctx context.Context) ([]domain.SoundRef, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	var out []domain.SoundRef
	for _, ref := range g.live {
		if !g.paused[ref] {
			out = append(out, ref)
		}
	}
	return out, nil
}

func (g *fakeGateway) Handle(ctx context.Context, ref domain.SoundRef) (ports.CueHandle, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	h, ok := g.handles[ref]
	if !ok {
		return nil, false
	}
	return h, true
}

func (g *fakeGateway) Pause(ctx context.Context, ref domain.SoundRef) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failPause[ref] || !g.isLiveLocked(ref) || g.paused[ref] {
		return domain.ErrSoundNotFound
	}
	g.paused[ref] = true
	g.pauses[ref]++
	return nil
}

func (g *fakeGateway) Resume(ctx context.Context, ref domain.SoundRef) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.paused[ref] {
		if g.isLiveLocked(ref) {
			g.violations = append(g.violations, "resume of unpaused "+ref.String())
		}
		return domain.ErrSoundNotFound
	}
	delete(g.paused, ref)
	g.resumes[ref]++
	return nil
}

func (g *fakeGateway) isPaused(ref domain.SoundRef) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.paused[ref]
}

func (g *fakeGateway) counts(ref domain.SoundRef) (pauses, resumes int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pauses[ref], g.resumes[ref]
}

func (g *fakeGateway) playedRefs() []domain.SoundRef {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]domain.SoundRef(nil), g.played...)
}

func soundAt(p *domain.Playlist, i int) domain.SoundRef {
	return domain.SoundRef{PlaylistID: p.ID, SoundID: p.Sounds[i].ID}
}

// quietNotifier is a Notifier that records messages
type quietNotifier struct {
	infos []string
	mu    sync.Mutex
	warns []string
}

func (n *quietNotifier) Info(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.infos = append(n.infos, msg)
}

func (n *quietNotifier) Warn(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.warns = append(n.warns, msg)
}

func (n *quietNotifier) warnings() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.warns...)
}

func mustSetting(t *testing.T, store *memFlags, key string, value any) {
	t.Helper()
	if err := store.SetSetting(context.Background(), domain.Namespace, key, value); err != nil {
		t.Fatalf("set setting %s: %v", key, err)
	}
}
