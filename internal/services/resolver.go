package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/renato0307/maestro/internal/domain"
	"github.com/renato0307/maestro/internal/logging"
	"github.com/renato0307/maestro/internal/ports"
)

// Resolve turns an assignment into something playable against the playlist's
// current play order. Concrete ids pass through unverified, RANDOM picks the
// head of the order and PLAY_ALL is returned as is. ok is false when there is
// nothing to play.
func Resolve(a *domain.Assignment, playlist *domain.Playlist) (domain.TrackToken, bool) {
	if !a.HasTrack() {
		return "", false
	}

	switch a.Track {
	case domain.TrackRandom:
		if playlist == nil || len(playlist.PlaybackOrder) == 0 {
			return "", false
		}
		return domain.TrackToken(playlist.PlaybackOrder[0]), true
	default:
		return a.Track, true
	}
}

// TrackResolver reads and writes per-entity assignments
type TrackResolver struct {
	flags     ports.FlagStore
	playlists ports.PlaylistReader
}

// NewTrackResolver creates a new TrackResolver
func NewTrackResolver(flags ports.FlagStore, playlists ports.PlaylistReader) *TrackResolver {
	return &TrackResolver{
		flags:     flags,
		playlists: playlists,
	}
}

// Assignment returns the persisted assignment of an entity.
// Returns nil when the entity has no track.
func (r *TrackResolver) Assignment(ctx context.Context, entityID string) (*domain.Assignment, error) {
	doc := domain.ActorDoc(entityID)

	var track string
	found, err := r.flags.GetFlag(ctx, doc, domain.FlagActorTrack, &track)
	if err != nil {
		return nil, fmt.Errorf("failed to read track flag: %w", err)
	}
	if !found || track == "" {
		return nil, nil
	}

	var playlistID string
	if _, err := r.flags.GetFlag(ctx, doc, domain.FlagActorPlaylist, &playlistID); err != nil {
		return nil, fmt.Errorf("failed to read playlist flag: %w", err)
	}

	return &domain.Assignment{
		EntityID:   entityID,
		PlaylistID: playlistID,
		Track:      domain.TrackToken(track),
	}, nil
}

// SetAssignment persists an entity's playlist and track. An empty track clears both.
func (r *TrackResolver) SetAssignment(
	ctx context.Context,
	entityID string,
	playlistID string,
	track domain.TrackToken,
) error {
	doc := domain.ActorDoc(entityID)
	logging.Logger.Info("Setting assignment", "entity", entityID, "playlist", playlistID, "track", track)

	if track == "" {
		if err := r.flags.UnsetFlag(ctx, doc, domain.FlagActorTrack); err != nil {
			return fmt.Errorf("failed to clear track: %w", err)
		}
		if err := r.flags.UnsetFlag(ctx, doc, domain.FlagActorPlaylist); err != nil {
			return fmt.Errorf("failed to clear playlist: %w", err)
		}
		return nil
	}

	if err := r.flags.SetFlag(ctx, doc, domain.FlagActorPlaylist, playlistID); err != nil {
		return fmt.Errorf("failed to save playlist: %w", err)
	}
	if err := r.flags.SetFlag(ctx, doc, domain.FlagActorTrack, string(track)); err != nil {
		return fmt.Errorf("failed to save track: %w", err)
	}
	return nil
}

// ResolveEntity resolves an entity's assignment to a playlist and a playable token.
// fallbackPlaylistID is used when the assignment names no playlist.
// Returns nil when there is nothing to play.
func (r *TrackResolver) ResolveEntity(
	ctx context.Context,
	entityID string,
	fallbackPlaylistID string,
) (*domain.Assignment, error) {
	a, err := r.Assignment(ctx, entityID)
	if err != nil || a == nil {
		return nil, err
	}
	if a.PlaylistID == "" {
		a.PlaylistID = fallbackPlaylistID
	}
	resolved, err := r.ResolveToken(ctx, a.PlaylistID, a.Track)
	if err != nil || resolved == nil {
		return nil, err
	}
	resolved.EntityID = entityID
	return resolved, nil
}

// ResolveToken resolves a token inside a playlist. The playlist is only
// loaded when the token needs its play order.
func (r *TrackResolver) ResolveToken(
	ctx context.Context,
	playlistID string,
	track domain.TrackToken,
) (*domain.Assignment, error) {
	a := &domain.Assignment{PlaylistID: playlistID, Track: track}
	if playlistID == "" {
		return nil, nil
	}

	var playlist *domain.Playlist
	if track == domain.TrackRandom {
		p, err := r.playlists.Playlist(ctx, playlistID)
		if err != nil {
			if errors.Is(err, domain.ErrPlaylistNotFound) {
				return nil, nil
			}
			return nil, err
		}
		playlist = p
	}

	token, ok := Resolve(a, playlist)
	if !ok {
		return nil, nil
	}
	a.Track = token
	return a, nil
}
