package ports

import (
	"context"

	"github.com/renato0307/maestro/internal/domain"
)

// PlaylistCatalog is the persisted library of playlists and sounds.
// It knows nothing about what is currently playing.
type PlaylistCatalog interface {
	AddPlaylist(ctx context.Context, name string, mode domain.PlaybackMode) (*domain.Playlist, error)
	AddSound(ctx context.Context, playlistID string, sound domain.Sound) (*domain.Sound, error)
	DeletePlaylist(ctx context.Context, id string) error
	DeleteSound(ctx context.Context, ref domain.SoundRef) error
	GetPlaylist(ctx context.Context, id string) (*domain.Playlist, error)
	ListPlaylists(ctx context.Context) ([]domain.Playlist, error)
	SetPlaylistMode(ctx context.Context, id string, mode domain.PlaybackMode) error
	SetSoundRepeat(ctx context.Context, ref domain.SoundRef, repeat bool) error
}
