package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/renato0307/maestro/internal/domain"
	"github.com/renato0307/maestro/internal/logging"
	"github.com/renato0307/maestro/internal/ports"
)

// PlaylistBootstrapper creates the playlists the cue engines expect
type PlaylistBootstrapper struct {
	gateway  ports.PlaybackGateway
	hype     *HypeEngine
	settings *SettingsService
	user     domain.User
}

// NewPlaylistBootstrapper creates a new PlaylistBootstrapper
func NewPlaylistBootstrapper(
	gateway ports.PlaybackGateway,
	hype *HypeEngine,
	settings *SettingsService,
	user domain.User,
) *PlaylistBootstrapper {
	return &PlaylistBootstrapper{
		gateway:  gateway,
		hype:     hype,
		settings: settings,
		user:     user,
	}
}

// EnsurePlaylists creates the hype playlist and, when configured, the
// critical success and failure playlists. Only the GM creates anything.
// Returns the names of the playlists it created.
func (b *PlaylistBootstrapper) EnsurePlaylists(ctx context.Context) ([]string, error) {
	if !b.user.IsGM {
		logging.Logger.Debug("Not GM, skipping playlist bootstrap")
		return nil, nil
	}

	settings, err := b.settings.Load(ctx)
	if err != nil {
		return nil, err
	}

	var created []string
	if settings.HypeEnabled {
		existed, err := b.exists(ctx, domain.HypePlaylistName)
		if err != nil {
			return created, err
		}
		if _, err := b.hype.HypePlaylist(ctx); err != nil {
			return created, err
		}
		if !existed {
			created = append(created, domain.HypePlaylistName)
		}
	}

	if !settings.CriticalTracksEnabled {
		return created, nil
	}

	wanted := []struct {
		enabled bool
		name    string
	}{
		{settings.CreateCriticalSuccess, domain.CriticalSuccessName},
		{settings.CreateCriticalFailure, domain.CriticalFailureName},
	}
	for _, w := range wanted {
		if !w.enabled {
			continue
		}
		existed, err := b.exists(ctx, w.name)
		if err != nil {
			return created, err
		}
		if existed {
			continue
		}
		if _, err := b.gateway.CreatePlaylist(ctx, w.name, domain.ModeManual); err != nil {
			return created, fmt.Errorf("failed to create %s playlist: %w", w.name, err)
		}
		created = append(created, w.name)
	}

	if len(created) > 0 {
		logging.Logger.Info("Playlists created", "playlists", created)
	}
	return created, nil
}

func (b *PlaylistBootstrapper) exists(ctx context.Context, name string) (bool, error) {
	_, err := b.gateway.FindPlaylistByName(ctx, name)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, domain.ErrPlaylistNotFound) {
		return false, nil
	}
	return false, err
}
