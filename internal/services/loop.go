package services

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/renato0307/maestro/internal/domain"
	"github.com/renato0307/maestro/internal/logging"
	"github.com/renato0307/maestro/internal/ports"
)

// ErrLoopUnsupported is returned when toggling loop on a playlist that does not advance
var ErrLoopUnsupported = errors.New("loop is only available for sequential and shuffle playlists")

// LoopController stops sequential and shuffle playlists from wrapping around
// when their loop flag is off
type LoopController struct {
	flags     ports.FlagStore
	notifier  ports.Notifier
	playlists ports.PlaylistReader
}

// NewLoopController creates a new LoopController
func NewLoopController(flags ports.FlagStore, playlists ports.PlaylistReader, notifier ports.Notifier) *LoopController {
	return &LoopController{
		flags:     flags,
		notifier:  notifier,
		playlists: playlists,
	}
}

// OnSoundTransition records ended sounds and decides whether a starting sound
// may play. It only ever suppresses the start that follows the last sound of
// the play order.
func (c *LoopController) OnSoundTransition(ctx context.Context, ev domain.Event) (domain.Verdict, error) {
	var (
		playlistID string
		soundID    string
		starting   bool
	)
	switch ev := ev.(type) {
	case domain.SoundStarted:
		playlistID, soundID, starting = ev.PlaylistID, ev.SoundID, true
	case domain.SoundEnded:
		playlistID, soundID = ev.PlaylistID, ev.SoundID
	default:
		return domain.Verdict{}, nil
	}

	if soundID == "" {
		return domain.Verdict{}, nil
	}

	playlist, err := c.playlists.Playlist(ctx, playlistID)
	if err != nil {
		logging.Logger.Debug("Unknown playlist in sound transition", "playlist_id", playlistID, "error", err)
		return domain.Verdict{}, nil
	}
	if !playlist.Playing || !playlist.Mode.SupportsLoop() {
		return domain.Verdict{}, nil
	}

	doc := domain.PlaylistDoc(playlistID)
	if !starting {
		if err := c.flags.SetFlag(ctx, doc, domain.FlagPreviousSound, soundID); err != nil {
			logging.Logger.Warn("Failed to record previous sound", "playlist_id", playlistID, "error", err)
		}
		return domain.Verdict{}, nil
	}

	var previous string
	found, err := c.flags.GetFlag(ctx, doc, domain.FlagPreviousSound, &previous)
	if err != nil {
		logging.Logger.Warn("Failed to read previous sound", "playlist_id", playlistID, "error", err)
		return domain.Verdict{}, nil
	}
	if !found || previous == "" {
		return domain.Verdict{}, nil
	}

	order := playlist.Order()
	idx := slices.Index(order, previous)
	if idx < 0 || idx != len(order)-1 {
		return domain.Verdict{}, nil
	}

	var loop bool
	found, err = c.flags.GetFlag(ctx, doc, domain.FlagPlaylistLoop, &loop)
	if err != nil {
		logging.Logger.Warn("Failed to read loop flag", "playlist_id", playlistID, "error", err)
		return domain.Verdict{}, nil
	}
	if !found || loop {
		return domain.Verdict{}, nil
	}

	logging.Logger.Info("Playlist reached its end with loop off, suppressing", "playlist_id", playlistID, "sound_id", soundID)
	return domain.SuppressPlayback(), nil
}

// Loop reports whether a playlist loops. Unset means it does.
func (c *LoopController) Loop(ctx context.Context, playlistID string) (bool, error) {
	var loop bool
	found, err := c.flags.GetFlag(ctx, domain.PlaylistDoc(playlistID), domain.FlagPlaylistLoop, &loop)
	if err != nil {
		return false, fmt.Errorf("failed to read loop flag: %w", err)
	}
	return !found || loop, nil
}

// SetLoop turns looping on or off for a playlist
func (c *LoopController) SetLoop(ctx context.Context, playlistID string, enabled bool) error {
	playlist, err := c.playlists.Playlist(ctx, playlistID)
	if err != nil {
		return err
	}
	if !playlist.Mode.SupportsLoop() {
		c.notifier.Warn(fmt.Sprintf("Loop is not available for %s playlists", playlist.Mode))
		return ErrLoopUnsupported
	}

	doc := domain.PlaylistDoc(playlistID)
	if enabled {
		err = c.flags.UnsetFlag(ctx, doc, domain.FlagPlaylistLoop)
	} else {
		err = c.flags.SetFlag(ctx, doc, domain.FlagPlaylistLoop, false)
	}
	if err != nil {
		logging.Logger.Error("Failed to toggle loop", "playlist_id", playlistID, "enabled", enabled, "error", err)
		return fmt.Errorf("failed to toggle loop: %w", err)
	}

	logging.Logger.Info("Playlist loop toggled", "playlist_id", playlistID, "enabled", enabled)
	if enabled {
		c.notifier.Info(fmt.Sprintf("%s will loop", playlist.Name))
	} else {
		c.notifier.Info(fmt.Sprintf("%s will stop after its last track", playlist.Name))
	}
	return nil
}
