package host

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/renato0307/maestro/internal/domain"
	"github.com/renato0307/maestro/internal/logging"
	"github.com/renato0307/maestro/internal/ports"
)

// LocalHost implements ports.PlaybackGateway over the persisted catalog and an
// audio player. It owns the runtime state (what is playing, paused, shuffle
// orders), advances sequential and shuffle playlists when a sound ends, and
// raises sound transitions to the dispatcher before applying them.
type LocalHost struct {
	catalog     ports.PlaylistCatalog
	dispatcher  ports.EventDispatcher
	mu          sync.Mutex
	player      ports.AudioPlayer
	shuffle     func(n int) []int
	state       map[string]*playlistState
	subscribers map[int]chan domain.Activity
	nextSubID   int
}

var _ ports.PlaybackGateway = (*LocalHost)(nil)

// playlistState is the runtime state of one playlist
type playlistState struct {
	live    map[string]*liveSound
	order   []string
	playAll *cueHandle
	playing bool
}

// liveSound is a sound with a running voice
type liveSound struct {
	handle  *cueHandle
	path    string
	paused  bool
	repeat  bool
	stopped bool
	voice   ports.Voice
}

// NewLocalHost creates a new LocalHost
func NewLocalHost(catalog ports.PlaylistCatalog, player ports.AudioPlayer) *LocalHost {
	return &LocalHost{
		catalog:     catalog,
		player:      player,
		shuffle:     rand.Perm,
		state:       make(map[string]*playlistState),
		subscribers: make(map[int]chan domain.Activity),
	}
}

// SetDispatcher wires the component that receives sound transitions.
// Must be called before playback starts.
func (h *LocalHost) SetDispatcher(d ports.EventDispatcher) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dispatcher = d
}

// stateFor returns the runtime state of a playlist. Caller holds h.mu.
func (h *LocalHost) stateFor(id string) *playlistState {
	st, ok := h.state[id]
	if !ok {
		st = &playlistState{live: make(map[string]*liveSound)}
		h.state[id] = st
	}
	return st
}

// overlay copies the runtime state onto a catalog playlist. Caller holds h.mu.
func (h *LocalHost) overlay(p *domain.Playlist) {
	st := h.stateFor(p.ID)
	p.Playing = st.playing
	for i := range p.Sounds {
		_, p.Sounds[i].Playing = st.live[p.Sounds[i].ID]
	}

	if p.Mode != domain.ModeShuffle {
		p.PlaybackOrder = p.NaturalOrder()
		return
	}
	if !sameMembers(st.order, p.Sounds) {
		natural := p.NaturalOrder()
		perm := h.shuffle(len(natural))
		st.order = make([]string, len(natural))
		for i, j := range perm {
			st.order[i] = natural[j]
		}
	}
	p.PlaybackOrder = append([]string(nil), st.order...)
}

func sameMembers(order []string, sounds []domain.Sound) bool {
	if order == nil || len(order) != len(sounds) {
		return false
	}
	ids := make(map[string]bool, len(sounds))
	for _, s := range sounds {
		ids[s.ID] = true
	}
	for _, id := range order {
		if !ids[id] {
			return false
		}
	}
	return true
}

// Playlists implements ports.PlaylistReader
func (h *LocalHost) Playlists(ctx context.Context) ([]domain.Playlist, error) {
	playlists, err := h.catalog.ListPlaylists(ctx)
	if err != nil {
		return nil, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for i := range playlists {
		h.overlay(&playlists[i])
	}
	return playlists, nil
}

// Playlist implements ports.PlaylistReader
func (h *LocalHost) Playlist(ctx context.Context, id string) (*domain.Playlist, error) {
	p, err := h.catalog.GetPlaylist(ctx, id)
	if err != nil {
		return nil, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.overlay(p)
	return p, nil
}

// FindPlaylistByName implements ports.PlaylistReader
func (h *LocalHost) FindPlaylistByName(ctx context.Context, name string) (*domain.Playlist, error) {
	playlists, err := h.Playlists(ctx)
	if err != nil {
		return nil, err
	}
	for i := range playlists {
		if playlists[i].Name == name {
			return &playlists[i], nil
		}
	}
	return nil, fmt.Errorf("playlist named %q: %w", name, domain.ErrPlaylistNotFound)
}

// CreatePlaylist implements ports.PlaylistCreator
func (h *LocalHost) CreatePlaylist(ctx context.Context, name string, mode domain.PlaybackMode) (*domain.Playlist, error) {
	p, err := h.catalog.AddPlaylist(ctx, name, mode)
	if err != nil {
		return nil, err
	}
	logging.Logger.Info("Playlist created", "playlist_id", p.ID, "name", name, "mode", mode.String())
	return p, nil
}

// PlaySound implements ports.PlaybackController
func (h *LocalHost) PlaySound(ctx context.Context, ref domain.SoundRef) (ports.CueHandle, error) {
	p, err := h.Playlist(ctx, ref.PlaylistID)
	if err != nil {
		return nil, err
	}
	return h.startSound(ctx, p, ref.SoundID)
}

// PlayAll implements ports.PlaybackController. Simultaneous playlists start
// every sound; the other modes start the first sound of the play order.
func (h *LocalHost) PlayAll(ctx context.Context, playlistID string) (ports.CueHandle, error) {
	p, err := h.Playlist(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if len(p.Sounds) == 0 {
		return nil, fmt.Errorf("playlist %s is empty: %w", playlistID, domain.ErrSoundNotFound)
	}

	targets := p.PlaybackOrder[:1]
	if p.Mode == domain.ModeSimultaneous {
		targets = p.PlaybackOrder
	}

	var errs []error
	started := 0
	for _, soundID := range targets {
		if _, err := h.startSound(ctx, p, soundID); err != nil {
			errs = append(errs, err)
			continue
		}
		started++
	}
	if started == 0 {
		return nil, errors.Join(errs...)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	st := h.stateFor(playlistID)
	if st.playAll == nil {
		st.playAll = newCueHandle(domain.SoundRef{PlaylistID: playlistID, SoundID: targets[0]})
	}
	if len(st.live) == 0 {
		h.settleLocked(playlistID, st)
	}
	return st.playAll, nil
}

// StopAll implements ports.PlaybackController. Stopping is not a sound
// ending: no transitions are raised.
func (h *LocalHost) StopAll(ctx context.Context, playlistID string) error {
	h.mu.Lock()
	st := h.stateFor(playlistID)
	stopped := make([]string, 0, len(st.live))
	for soundID, live := range st.live {
		h.stopLocked(live)
		stopped = append(stopped, soundID)
	}
	st.live = make(map[string]*liveSound)
	h.settleLocked(playlistID, st)
	h.mu.Unlock()

	for _, soundID := range stopped {
		h.publish(domain.Activity{Kind: domain.ActivityStopped, PlaylistID: playlistID, SoundID: soundID})
	}
	logging.Logger.Debug("Playlist stopped", "playlist_id", playlistID, "sounds", len(stopped))
	return nil
}

// SetRepeat implements ports.PlaybackController
func (h *LocalHost) SetRepeat(ctx context.Context, ref domain.SoundRef, repeat bool) error {
	if err := h.catalog.SetSoundRepeat(ctx, ref, repeat); err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if live, ok := h.stateFor(ref.PlaylistID).live[ref.SoundID]; ok {
		live.repeat = repeat
	}
	return nil
}

// Audible implements ports.AudioMixer: playing sounds that are not paused
func (h *LocalHost) Audible(ctx context.Context) ([]domain.SoundRef, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	var refs []domain.SoundRef
	for playlistID, st := range h.state {
		if !st.playing {
			continue
		}
		for soundID, live := range st.live {
			if !live.paused {
				refs = append(refs, domain.SoundRef{PlaylistID: playlistID, SoundID: soundID})
			}
		}
	}
	return refs, nil
}

// Handle implements ports.AudioMixer
func (h *LocalHost) Handle(ctx context.Context, ref domain.SoundRef) (ports.CueHandle, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	live, ok := h.stateFor(ref.PlaylistID).live[ref.SoundID]
	if !ok {
		return nil, false
	}
	return live.handle, true
}

// Pause implements ports.AudioMixer
func (h *LocalHost) Pause(ctx context.Context, ref domain.SoundRef) error {
	h.mu.Lock()
	live, ok := h.stateFor(ref.PlaylistID).live[ref.SoundID]
	if !ok {
		h.mu.Unlock()
		return fmt.Errorf("sound %s is not playing: %w", ref, domain.ErrSoundNotFound)
	}
	if err := live.voice.Pause(); err != nil {
		h.mu.Unlock()
		return err
	}
	live.paused = true
	h.mu.Unlock()

	h.publish(domain.Activity{Kind: domain.ActivityPaused, PlaylistID: ref.PlaylistID, SoundID: ref.SoundID})
	return nil
}

// Resume implements ports.AudioMixer
func (h *LocalHost) Resume(ctx context.Context, ref domain.SoundRef) error {
	h.mu.Lock()
	live, ok := h.stateFor(ref.PlaylistID).live[ref.SoundID]
	if !ok {
		h.mu.Unlock()
		return fmt.Errorf("sound %s is not playing: %w", ref, domain.ErrSoundNotFound)
	}
	if err := live.voice.Resume(); err != nil {
		h.mu.Unlock()
		return err
	}
	live.paused = false
	h.mu.Unlock()

	h.publish(domain.Activity{Kind: domain.ActivityResumed, PlaylistID: ref.PlaylistID, SoundID: ref.SoundID})
	return nil
}

// Close stops every voice
func (h *LocalHost) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, st := range h.state {
		for _, live := range st.live {
			h.stopLocked(live)
		}
		st.live = make(map[string]*liveSound)
		h.settleLocked(id, st)
	}
	for id, ch := range h.subscribers {
		close(ch)
		delete(h.subscribers, id)
	}
	return nil
}

// startSound raises SoundStarted, then starts the voice unless the verdict suppresses it
func (h *LocalHost) startSound(ctx context.Context, p *domain.Playlist, soundID string) (ports.CueHandle, error) {
	sound, ok := p.Sound(soundID)
	if !ok {
		return nil, fmt.Errorf("sound %s in playlist %s: %w", soundID, p.ID, domain.ErrSoundNotFound)
	}
	ref := domain.SoundRef{PlaylistID: p.ID, SoundID: soundID}

	verdict := h.dispatch(ctx, domain.SoundStarted{PlaylistID: p.ID, SoundID: soundID})
	if verdict.Suppresses() {
		logging.Logger.Info("Sound start suppressed", "playlist_id", p.ID, "sound_id", soundID)
		h.publish(domain.Activity{Kind: domain.ActivitySuppressed, PlaylistID: p.ID, SoundID: soundID})
		return nil, fmt.Errorf("start of %s suppressed: %w", ref, domain.ErrPlaybackFailed)
	}

	voice, err := h.player.Start(ctx, sound.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to start %s: %w", ref, errors.Join(err, domain.ErrPlaybackFailed))
	}

	live := &liveSound{
		handle: newCueHandle(ref),
		path:   sound.Path,
		repeat: sound.Repeat,
		voice:  voice,
	}

	h.mu.Lock()
	st := h.stateFor(p.ID)
	if old, ok := st.live[soundID]; ok {
		h.stopLocked(old)
	}
	st.live[soundID] = live
	st.playing = true
	h.mu.Unlock()

	go h.watch(ref, live)

	logging.Logger.Debug("Sound started", "playlist_id", p.ID, "sound_id", soundID, "path", sound.Path)
	h.publish(domain.Activity{Kind: domain.ActivityStarted, PlaylistID: p.ID, SoundID: soundID})
	return live.handle, nil
}

// watch waits for a voice to finish and handles repeat and auto-advance
func (h *LocalHost) watch(ref domain.SoundRef, live *liveSound) {
	for {
		h.mu.Lock()
		voice := live.voice
		h.mu.Unlock()

		<-voice.Done()

		h.mu.Lock()
		st := h.stateFor(ref.PlaylistID)
		if live.stopped || st.live[ref.SoundID] != live {
			h.mu.Unlock()
			return
		}
		if live.repeat {
			next, err := h.player.Start(context.Background(), live.path)
			if err == nil {
				live.voice = next
				h.mu.Unlock()
				continue
			}
			logging.Logger.Warn("Failed to repeat sound", "sound", ref.String(), "error", err)
		}
		h.mu.Unlock()

		h.onSoundEnd(ref, live)
		return
	}
}

// onSoundEnd raises SoundEnded while the playlist still counts as playing,
// then advances sequential and shuffle playlists to the next sound in order.
func (h *LocalHost) onSoundEnd(ref domain.SoundRef, live *liveSound) {
	ctx := context.Background()

	h.dispatch(ctx, domain.SoundEnded{PlaylistID: ref.PlaylistID, SoundID: ref.SoundID})

	h.mu.Lock()
	st := h.stateFor(ref.PlaylistID)
	if st.live[ref.SoundID] != live {
		h.mu.Unlock()
		return
	}
	delete(st.live, ref.SoundID)
	live.handle.end()
	stillPlaying := st.playing
	h.mu.Unlock()

	h.publish(domain.Activity{Kind: domain.ActivityEnded, PlaylistID: ref.PlaylistID, SoundID: ref.SoundID})

	if stillPlaying {
		h.advance(ctx, ref)
	}

	h.mu.Lock()
	st = h.stateFor(ref.PlaylistID)
	if len(st.live) == 0 {
		h.settleLocked(ref.PlaylistID, st)
	}
	h.mu.Unlock()
}

// advance starts the sound after ended in the play order, wrapping at the end
func (h *LocalHost) advance(ctx context.Context, ended domain.SoundRef) {
	p, err := h.Playlist(ctx, ended.PlaylistID)
	if err != nil {
		logging.Logger.Warn("Failed to load playlist for advance", "playlist_id", ended.PlaylistID, "error", err)
		return
	}
	if !p.Mode.SupportsLoop() {
		return
	}

	next := nextInOrder(p.PlaybackOrder, ended.SoundID)
	if next == "" {
		return
	}
	if _, err := h.startSound(ctx, p, next); err != nil {
		logging.Logger.Debug("Playlist did not advance", "playlist_id", p.ID, "next", next, "reason", err)
	}
}

func nextInOrder(order []string, current string) string {
	if len(order) == 0 {
		return ""
	}
	for i, id := range order {
		if id == current {
			return order[(i+1)%len(order)]
		}
	}
	return order[0]
}

// stopLocked stops a live sound and ends its handle. Caller holds h.mu.
func (h *LocalHost) stopLocked(live *liveSound) {
	live.stopped = true
	if err := live.voice.Stop(); err != nil {
		logging.Logger.Warn("Failed to stop voice", "path", live.path, "error", err)
	}
	live.handle.end()
}

// settleLocked marks a playlist idle. Caller holds h.mu.
func (h *LocalHost) settleLocked(playlistID string, st *playlistState) {
	if len(st.live) > 0 {
		return
	}
	st.playing = false
	st.order = nil
	if st.playAll != nil {
		st.playAll.end()
		st.playAll = nil
	}
}

// dispatch forwards a transition and never fails the caller
func (h *LocalHost) dispatch(ctx context.Context, ev domain.Event) domain.Verdict {
	h.mu.Lock()
	d := h.dispatcher
	h.mu.Unlock()

	if d == nil {
		return domain.Verdict{}
	}
	verdict, err := d.Dispatch(ctx, ev)
	if err != nil {
		logging.Logger.Warn("Transition handler failed", "event", string(ev.Kind()), "error", err)
		return domain.Verdict{}
	}
	return verdict
}

// cueHandle implements ports.CueHandle
type cueHandle struct {
	ended chan struct{}
	once  sync.Once
	ref   domain.SoundRef
}

func newCueHandle(ref domain.SoundRef) *cueHandle {
	return &cueHandle{ended: make(chan struct{}), ref: ref}
}

func (c *cueHandle) Ended() <-chan struct{} { return c.ended }
func (c *cueHandle) Sound() domain.SoundRef { return c.ref }

func (c *cueHandle) end() {
	c.once.Do(func() { close(c.ended) })
}

// timestamp is replaced in tests
var timestamp = time.Now
