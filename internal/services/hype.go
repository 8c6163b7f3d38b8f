package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"

	"github.com/renato0307/maestro/internal/domain"
	"github.com/renato0307/maestro/internal/logging"
	"github.com/renato0307/maestro/internal/ports"
)

const hypePlaylistKey = "hype-playlist"

// PlayForOptions tunes a manual hype trigger
type PlayForOptions struct {
	DuckOthers    bool
	WarnIfMissing bool
}

// HypeEngine plays each participant's theme when their turn comes up,
// ducking the rest of the audio while it plays
type HypeEngine struct {
	actors   ports.ActorDirectory
	cache    *cache.Cache
	ducker   *DuckingController
	gateway  ports.PlaybackGateway
	group    singleflight.Group
	inflight sync.WaitGroup
	notifier ports.Notifier
	playback *PlaybackService
	resolver *TrackResolver
	session  DuckSession
	settings *SettingsService
	user     domain.User
}

// NewHypeEngine creates a new HypeEngine
func NewHypeEngine(
	gateway ports.PlaybackGateway,
	actors ports.ActorDirectory,
	resolver *TrackResolver,
	playback *PlaybackService,
	ducker *DuckingController,
	session DuckSession,
	settings *SettingsService,
	notifier ports.Notifier,
	user domain.User,
) *HypeEngine {
	return &HypeEngine{
		actors:   actors,
		cache:    cache.New(cache.NoExpiration, 0),
		ducker:   ducker,
		gateway:  gateway,
		notifier: notifier,
		playback: playback,
		resolver: resolver,
		session:  session,
		settings: settings,
		user:     user,
	}
}

// OnCombatUpdate reacts to an encounter update. Only turn and round changes
// play anything; every skip is silent.
func (e *HypeEngine) OnCombatUpdate(ctx context.Context, ev domain.Event) error {
	settings := e.settings.Current(ctx)
	if !settings.HypeEnabled {
		logging.Logger.Debug("Hype tracks disabled, skipping")
		return nil
	}

	var enc domain.Encounter
	switch ev := ev.(type) {
	case domain.TurnChanged:
		enc = ev.Encounter
	case domain.RoundChanged:
		enc = ev.Encounter
	default:
		logging.Logger.Debug("Update carries neither turn nor round, skipping", "event", string(ev.Kind()))
		return nil
	}

	if len(enc.Participants) == 0 {
		logging.Logger.Debug("Encounter has no participants, skipping", "encounter", enc.ID)
		return nil
	}
	if enc.ActiveEntityID == "" {
		logging.Logger.Debug("Encounter has no active entity, skipping", "encounter", enc.ID)
		return nil
	}

	playlist, err := e.HypePlaylist(ctx)
	if err != nil {
		logging.Logger.Warn("Failed to resolve hype playlist", "error", err)
		return nil
	}
	if playlist == nil {
		logging.Logger.Debug("No hype playlist, skipping")
		return nil
	}

	if e.user.IsGM {
		e.stop(ctx, playlist.ID)
	}

	res, err := e.resolver.ResolveEntity(ctx, enc.ActiveEntityID, playlist.ID)
	if err != nil {
		logging.Logger.Warn("Failed to resolve hype track", "entity", enc.ActiveEntityID, "error", err)
	}
	if res == nil {
		logging.Logger.Debug("No hype track for active entity, restoring ambience", "entity", enc.ActiveEntityID)
		e.session.Close(ctx)
		return nil
	}

	if e.user.IsGM && res.PlaylistID != playlist.ID {
		e.stop(ctx, res.PlaylistID)
	}

	e.cue(ctx, res, settings.HypePauseOthers)
	return nil
}

func (e *HypeEngine) stop(ctx context.Context, playlistID string) {
	if err := e.gateway.StopAll(ctx, playlistID); err != nil {
		logging.Logger.Warn("Failed to stop playlist", "playlist_id", playlistID, "error", err)
	}
}

// cue ducks, starts the track and resumes ambience once it ends.
// The GM ducks before starting the cue; other users follow the cue the GM
// started and duck everything but it.
func (e *HypeEngine) cue(ctx context.Context, res *domain.Assignment, duck bool) {
	var (
		gen    uint64
		handle ports.CueHandle
		err    error
	)
	if e.user.IsGM {
		if duck {
			gen = e.session.Open(ctx)
		}
		handle, err = e.playback.PlayTrack(ctx, res.PlaylistID, res.Track, PlayOptions{})
	} else {
		handle = e.follow(ctx, res)
		if handle != nil && duck {
			gen = e.session.Open(ctx, handle.Sound())
		}
	}

	if err != nil || handle == nil {
		logging.Logger.Warn("Hype cue did not start",
			"entity", res.EntityID,
			"playlist_id", res.PlaylistID,
			"track", res.Track,
			"error", err)
		if duck {
			e.session.Close(ctx)
		}
		return
	}

	logging.Logger.Info("Hype cue started", "entity", res.EntityID, "sound", handle.Sound().String())
	if !duck {
		return
	}

	e.inflight.Add(1)
	go func() {
		defer e.inflight.Done()
		<-handle.Ended()
		if e.session.CloseIf(context.WithoutCancel(ctx), gen) {
			logging.Logger.Debug("Hype cue ended, ambience restored", "generation", gen)
		}
	}()
}

// follow returns the live handle of the cue the GM started, if any
func (e *HypeEngine) follow(ctx context.Context, res *domain.Assignment) ports.CueHandle {
	if res.Track == domain.TrackPlayAll {
		return nil
	}
	handle, ok := e.gateway.Handle(ctx, domain.SoundRef{PlaylistID: res.PlaylistID, SoundID: string(res.Track)})
	if !ok {
		return nil
	}
	return handle
}

// Wait blocks until every pending cue completion has been handled
func (e *HypeEngine) Wait() {
	e.inflight.Wait()
}

// HypePlaylist returns the hype playlist, creating it when missing and the
// user is GM. The reference is cached until Reload.
func (e *HypeEngine) HypePlaylist(ctx context.Context) (*domain.Playlist, error) {
	if id, ok := e.cache.Get(hypePlaylistKey); ok {
		p, err := e.gateway.Playlist(ctx, id.(string))
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, domain.ErrPlaylistNotFound) {
			return nil, err
		}
		logging.Logger.Info("Cached hype playlist is gone, reloading", "playlist_id", id)
		e.Reload()
	}

	v, err, _ := e.group.Do(hypePlaylistKey, func() (any, error) {
		p, err := e.gateway.FindPlaylistByName(ctx, domain.HypePlaylistName)
		if err == nil {
			e.cache.Set(hypePlaylistKey, p.ID, cache.NoExpiration)
			return p, nil
		}
		if !errors.Is(err, domain.ErrPlaylistNotFound) {
			return nil, err
		}
		if !e.user.IsGM {
			return nil, nil
		}

		p, err = e.gateway.CreatePlaylist(ctx, domain.HypePlaylistName, domain.ModeManual)
		if err != nil {
			return nil, fmt.Errorf("failed to create hype playlist: %w", err)
		}
		e.cache.Set(hypePlaylistKey, p.ID, cache.NoExpiration)
		return p, nil
	})
	if err != nil || v == nil {
		return nil, err
	}
	return v.(*domain.Playlist), nil
}

// Reload forgets the cached hype playlist
func (e *HypeEngine) Reload() {
	e.cache.Delete(hypePlaylistKey)
}

// PlayFor plays an actor's hype track on demand. target is an actor id or name.
func (e *HypeEngine) PlayFor(ctx context.Context, target string, opts PlayForOptions) error {
	actor, err := e.findActor(ctx, target)
	if err != nil {
		if opts.WarnIfMissing {
			e.notifier.Warn(fmt.Sprintf("Actor %q not found", target))
		}
		return err
	}

	if !e.user.IsGM {
		if opts.WarnIfMissing {
			e.notifier.Warn("Only the GM can play hype tracks")
		}
		return domain.ErrNotAuthorized
	}

	assigned, err := e.resolver.Assignment(ctx, actor.ID)
	if err != nil {
		return err
	}
	if assigned == nil {
		if opts.WarnIfMissing {
			e.notifier.Warn(fmt.Sprintf("%s does not have a hype track", actor.Name))
		}
		return fmt.Errorf("%s: %w", actor.Name, domain.ErrNoAssignment)
	}

	res, err := e.ResolveAssignment(ctx, actor.ID)
	if err != nil {
		return err
	}
	if res == nil {
		if opts.WarnIfMissing {
			e.notifier.Warn(fmt.Sprintf("No playlist found for the hype track of %s", actor.Name))
		}
		return fmt.Errorf("hype track of %s: %w", actor.Name, domain.ErrPlaylistNotFound)
	}

	e.stop(ctx, res.PlaylistID)

	var snapshot *Snapshot
	if opts.DuckOthers {
		snapshot = e.ducker.BeginDuck(ctx)
	}

	handle, err := e.playback.PlayTrack(ctx, res.PlaylistID, res.Track, PlayOptions{})
	if err != nil {
		e.ducker.EndDuck(ctx, snapshot)
		if opts.WarnIfMissing {
			e.notifier.Warn(fmt.Sprintf("Could not play the hype track of %s", actor.Name))
		}
		return fmt.Errorf("failed to play hype track of %s: %w", actor.Name, errors.Join(err, domain.ErrPlaybackFailed))
	}

	if snapshot != nil {
		e.inflight.Add(1)
		go func() {
			defer e.inflight.Done()
			<-handle.Ended()
			e.ducker.EndDuck(context.WithoutCancel(ctx), snapshot)
		}()
	}
	return nil
}

func (e *HypeEngine) findActor(ctx context.Context, target string) (*domain.Actor, error) {
	actor, err := e.actors.GetActor(ctx, target)
	if err == nil {
		return actor, nil
	}
	if !errors.Is(err, domain.ErrActorNotFound) {
		return nil, err
	}
	return e.actors.FindActorByName(ctx, target)
}

// ResolveAssignment resolves an entity's track. The playlist falls back to
// the hype playlist, then to any playlist that holds the track.
func (e *HypeEngine) ResolveAssignment(ctx context.Context, entityID string) (*domain.Assignment, error) {
	a, err := e.resolver.Assignment(ctx, entityID)
	if err != nil || a == nil {
		return nil, err
	}

	playlistID := a.PlaylistID
	if playlistID == "" {
		playlistID, err = e.fallbackPlaylist(ctx, a.Track)
		if err != nil {
			return nil, err
		}
	}

	res, err := e.resolver.ResolveToken(ctx, playlistID, a.Track)
	if err != nil || res == nil {
		return nil, err
	}
	res.EntityID = entityID
	return res, nil
}

func (e *HypeEngine) fallbackPlaylist(ctx context.Context, track domain.TrackToken) (string, error) {
	hype, err := e.HypePlaylist(ctx)
	if err != nil {
		return "", err
	}
	if hype != nil {
		if _, ok := hype.Sound(string(track)); ok || track.IsSentinel() {
			return hype.ID, nil
		}
	}
	if track.IsSentinel() {
		return "", nil
	}

	playlists, err := e.gateway.Playlists(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list playlists: %w", err)
	}
	for _, p := range playlists {
		if _, ok := p.Sound(string(track)); ok {
			return p.ID, nil
		}
	}
	return "", nil
}

// SetAssignment stores an entity's hype playlist and track
func (e *HypeEngine) SetAssignment(
	ctx context.Context,
	entityID string,
	playlistID string,
	track domain.TrackToken,
) error {
	actor, err := e.actors.GetActor(ctx, entityID)
	if err != nil {
		e.notifier.Warn(fmt.Sprintf("Actor %q not found", entityID))
		return err
	}

	if err := e.resolver.SetAssignment(ctx, entityID, playlistID, track); err != nil {
		logging.Logger.Error("Failed to save hype track", "entity", entityID, "error", err)
		e.notifier.Warn(fmt.Sprintf("Failed to save the hype track of %s", actor.Name))
		return err
	}

	e.notifier.Info(fmt.Sprintf("Hype track of %s saved", actor.Name))
	return nil
}
