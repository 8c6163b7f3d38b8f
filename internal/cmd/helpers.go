package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/renato0307/maestro/internal/domain"
	"github.com/renato0307/maestro/internal/logging"
)

const silencePollInterval = 200 * time.Millisecond

// findActor resolves an actor by id, then by name
func findActor(ctx context.Context, c *Container, target string) (*domain.Actor, error) {
	actor, err := c.Repo.GetActor(ctx, target)
	if err == nil {
		return actor, nil
	}
	if !errors.Is(err, domain.ErrActorNotFound) {
		return nil, err
	}
	return c.Repo.FindActorByName(ctx, target)
}

// findPlaylist resolves a playlist by id, then by name
func findPlaylist(ctx context.Context, c *Container, target string) (*domain.Playlist, error) {
	p, err := c.Host.Playlist(ctx, target)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, domain.ErrPlaylistNotFound) {
		return nil, err
	}
	return c.Host.FindPlaylistByName(ctx, target)
}

// findSound resolves a sound of a playlist by id, then by name
func findSound(p *domain.Playlist, target string) (*domain.Sound, error) {
	if s, ok := p.Sound(target); ok {
		return s, nil
	}
	if s, ok := p.SoundByName(target); ok {
		return s, nil
	}
	return nil, fmt.Errorf("%s in %s: %w", target, p.Name, domain.ErrSoundNotFound)
}

// trackToken turns a user supplied track into a token. Sentinels pass through;
// anything else must name a sound of the playlist.
func trackToken(p *domain.Playlist, track string) (domain.TrackToken, error) {
	token := domain.TrackToken(track)
	if track == "" || token.IsSentinel() {
		return token, nil
	}
	if p == nil {
		return "", fmt.Errorf("track %q needs a playlist", track)
	}
	s, err := findSound(p, track)
	if err != nil {
		return "", err
	}
	return domain.TrackToken(s.ID), nil
}

// describeTrack renders a token with the sound's name when known
func describeTrack(p *domain.Playlist, token domain.TrackToken) string {
	if token == "" {
		return "-"
	}
	if token.IsSentinel() || p == nil {
		return string(token)
	}
	if s, ok := p.Sound(string(token)); ok {
		return s.Name
	}
	return string(token)
}

// parseRefs parses "playlist/sound" refs
func parseRefs(args []string) ([]domain.SoundRef, error) {
	refs := make([]domain.SoundRef, 0, len(args))
	for _, arg := range args {
		playlistID, soundID, ok := strings.Cut(arg, "/")
		if !ok || playlistID == "" || soundID == "" {
			return nil, fmt.Errorf("invalid sound ref %q (expected playlist/sound)", arg)
		}
		refs = append(refs, domain.SoundRef{PlaylistID: playlistID, SoundID: soundID})
	}
	return refs, nil
}

// waitForSilence keeps a one-shot command alive while its sounds play.
// Remote commands return at once since the daemon keeps playing.
func waitForSilence(cli *CLI) error {
	if cli.remote {
		return nil
	}

	ctx := cli.Context()
	ticker := time.NewTicker(silencePollInterval)
	defer ticker.Stop()
	for {
		audible, err := cli.Container.Host.Audible(ctx)
		if err != nil {
			return err
		}
		if len(audible) == 0 {
			cli.Container.Hype.Wait()
			return nil
		}
		logging.Logger.Debug("Waiting for sounds to end", "audible", len(audible))

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
