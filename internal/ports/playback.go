package ports

import (
	"context"

	"github.com/renato0307/maestro/internal/domain"
)

// CueHandle is a started sound. Ended is closed once, when playback stops
// for any reason.
type CueHandle interface {
	Ended() <-chan struct{}
	Sound() domain.SoundRef
}

// PlaylistReader exposes playlists with their runtime playback state
type PlaylistReader interface {
	FindPlaylistByName(ctx context.Context, name string) (*domain.Playlist, error)
	Playlist(ctx context.Context, id string) (*domain.Playlist, error)
	Playlists(ctx context.Context) ([]domain.Playlist, error)
}

// PlaylistCreator creates empty playlists
type PlaylistCreator interface {
	CreatePlaylist(ctx context.Context, name string, mode domain.PlaybackMode) (*domain.Playlist, error)
}

// PlaybackController starts and stops sounds
type PlaybackController interface {
	// PlayAll starts the playlist's own sequencing. The handle ends when the
	// whole playlist stops.
	PlayAll(ctx context.Context, playlistID string) (CueHandle, error)
	PlaySound(ctx context.Context, ref domain.SoundRef) (CueHandle, error)
	SetRepeat(ctx context.Context, ref domain.SoundRef, repeat bool) error
	StopAll(ctx context.Context, playlistID string) error
}

// AudioMixer pauses and resumes individual audible sounds
type AudioMixer interface {
	Audible(ctx context.Context) ([]domain.SoundRef, error)
	// Handle returns the live handle of a playing sound
	Handle(ctx context.Context, ref domain.SoundRef) (CueHandle, bool)
	Pause(ctx context.Context, ref domain.SoundRef) error
	Resume(ctx context.Context, ref domain.SoundRef) error
}

// PlaybackGateway is the composite effect boundary
type PlaybackGateway interface {
	PlaylistReader
	PlaylistCreator
	PlaybackController
	AudioMixer
}

// EventDispatcher receives host events and answers pre-update ones with a verdict
type EventDispatcher interface {
	Dispatch(ctx context.Context, event domain.Event) (domain.Verdict, error)
}
