package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/renato0307/maestro/internal/domain"
	"github.com/renato0307/maestro/internal/logging"
	"github.com/renato0307/maestro/internal/ports"
)

// PlayOptions tunes a single PlayTrack call
type PlayOptions struct {
	// Repeat, when set, overwrites the sound's repeat flag before it starts
	Repeat *bool
}

// SearchField selects what FindSound matches against
type SearchField string

const (
	SearchByName SearchField = "name"
	SearchByPath SearchField = "path"
)

// PlaybackService is the playback helper surface used by the engines and by macros
type PlaybackService struct {
	ducker   *DuckingController
	gateway  ports.PlaybackGateway
	notifier ports.Notifier
}

// NewPlaybackService creates a new PlaybackService
func NewPlaybackService(
	gateway ports.PlaybackGateway,
	ducker *DuckingController,
	notifier ports.Notifier,
) *PlaybackService {
	return &PlaybackService{
		ducker:   ducker,
		gateway:  gateway,
		notifier: notifier,
	}
}

// PlayTrack plays a track token inside a playlist. RANDOM picks the head of
// the play order and PLAY_ALL hands sequencing to the playlist.
func (s *PlaybackService) PlayTrack(
	ctx context.Context,
	playlistID string,
	track domain.TrackToken,
	opts PlayOptions,
) (ports.CueHandle, error) {
	playlist, err := s.gateway.Playlist(ctx, playlistID)
	if err != nil {
		return nil, fmt.Errorf("failed to load playlist %s: %w", playlistID, err)
	}

	if track == domain.TrackPlayAll {
		logging.Logger.Debug("Playing whole playlist", "playlist_id", playlistID)
		return s.gateway.PlayAll(ctx, playlistID)
	}

	token, ok := Resolve(&domain.Assignment{PlaylistID: playlistID, Track: track}, playlist)
	if !ok {
		return nil, fmt.Errorf("nothing to play in %s: %w", playlist.Name, domain.ErrSoundNotFound)
	}

	sound, ok := playlist.Sound(string(token))
	if !ok {
		return nil, fmt.Errorf("sound %s in %s: %w", token, playlist.Name, domain.ErrSoundNotFound)
	}
	ref := domain.SoundRef{PlaylistID: playlistID, SoundID: sound.ID}

	if opts.Repeat != nil && sound.Repeat != *opts.Repeat {
		if err := s.gateway.SetRepeat(ctx, ref, *opts.Repeat); err != nil {
			logging.Logger.Warn("Failed to update repeat flag", "sound", ref.String(), "error", err)
		}
	}

	logging.Logger.Debug("Playing track", "playlist_id", playlistID, "sound_id", sound.ID, "name", sound.Name)
	return s.gateway.PlaySound(ctx, ref)
}

// PlayPlaylist starts a playlist's own sequencing
func (s *PlaybackService) PlayPlaylist(ctx context.Context, playlistID string) (ports.CueHandle, error) {
	return s.PlayTrack(ctx, playlistID, domain.TrackPlayAll, PlayOptions{})
}

// PauseAll pauses every audible sound and returns what was paused
func (s *PlaybackService) PauseAll(ctx context.Context) []domain.SoundRef {
	return s.ducker.BeginDuck(ctx).Sounds()
}

// PauseSounds pauses the audible sounds matching any of the targets. A target
// is a sound id, a name, a path or a playlist/sound ref.
func (s *PlaybackService) PauseSounds(ctx context.Context, targets []string) ([]domain.SoundRef, error) {
	audible, err := s.gateway.Audible(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list audible sounds: %w", err)
	}

	playlists := make(map[string]*domain.Playlist)
	var matched []domain.SoundRef
	for _, ref := range audible {
		p, ok := playlists[ref.PlaylistID]
		if !ok {
			p, err = s.gateway.Playlist(ctx, ref.PlaylistID)
			if err != nil {
				logging.Logger.Debug("Skipping sound of unknown playlist", "sound", ref.String(), "error", err)
				continue
			}
			playlists[ref.PlaylistID] = p
		}
		sound, ok := p.Sound(ref.SoundID)
		if !ok {
			continue
		}
		if matchesAny(ref, sound, targets) {
			matched = append(matched, ref)
		}
	}

	return s.ducker.PauseSounds(ctx, matched).Sounds(), nil
}

func matchesAny(ref domain.SoundRef, sound *domain.Sound, targets []string) bool {
	for _, t := range targets {
		switch t {
		case sound.ID, sound.Name, sound.Path, ref.String():
			return true
		}
	}
	return false
}

// ResumeSounds resumes previously paused sounds
func (s *PlaybackService) ResumeSounds(ctx context.Context, refs []domain.SoundRef) {
	s.ducker.ResumeSounds(ctx, refs)
}

// FindSound returns the first sound across all playlists whose name or path matches
func (s *PlaybackService) FindSound(ctx context.Context, search string, field SearchField) (*domain.Sound, error) {
	playlists, err := s.gateway.Playlists(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list playlists: %w", err)
	}

	for _, p := range playlists {
		for _, sound := range p.Sounds {
			if soundMatches(sound, search, field) {
				found := sound
				return &found, nil
			}
		}
	}
	return nil, fmt.Errorf("%s %q: %w", field, search, domain.ErrSoundNotFound)
}

func soundMatches(sound domain.Sound, search string, field SearchField) bool {
	if field == SearchByPath {
		return sound.Path == search || strings.HasSuffix(sound.Path, "/"+search)
	}
	return sound.Name == search
}

// PlaySoundByName plays the first sound called name, optionally only inside
// the named playlist. Misses are reported to the user.
func (s *PlaybackService) PlaySoundByName(
	ctx context.Context,
	name string,
	playlistName string,
) (ports.CueHandle, error) {
	var sound *domain.Sound
	if playlistName != "" {
		p, err := s.gateway.FindPlaylistByName(ctx, playlistName)
		if err != nil {
			if errors.Is(err, domain.ErrPlaylistNotFound) {
				s.notifier.Warn(fmt.Sprintf("Playlist %q not found", playlistName))
			}
			return nil, err
		}
		found, ok := p.SoundByName(name)
		if ok {
			sound = found
		}
	} else {
		found, err := s.FindSound(ctx, name, SearchByName)
		if err != nil && !errors.Is(err, domain.ErrSoundNotFound) {
			return nil, err
		}
		sound = found
	}

	if sound == nil {
		s.notifier.Warn(fmt.Sprintf("Sound %q not found", name))
		return nil, fmt.Errorf("%q: %w", name, domain.ErrSoundNotFound)
	}

	return s.PlayTrack(ctx, sound.PlaylistID, domain.TrackToken(sound.ID), PlayOptions{})
}
