package services

import (
	"context"
	"fmt"

	"github.com/renato0307/maestro/internal/domain"
)

// TrackOption is one choice in a track picker
type TrackOption struct {
	Label string
	Value domain.TrackToken
}

// AssignmentForm is what the hype assignment form starts from
type AssignmentForm struct {
	Actor      domain.Actor
	PlaylistID string
	Playlists  []domain.Playlist
	Track      domain.TrackToken
}

// TrackOptions lists the choices for a playlist. The playback modes are only
// offered when the playlist has sounds.
func TrackOptions(p *domain.Playlist) []TrackOption {
	options := []TrackOption{{Label: "None", Value: ""}}
	if p == nil || len(p.Sounds) == 0 {
		return options
	}

	options = append(options,
		TrackOption{Label: "Random track", Value: domain.TrackRandom},
		TrackOption{Label: "Play all", Value: domain.TrackPlayAll},
	)
	for _, id := range p.NaturalOrder() {
		sound, _ := p.Sound(id)
		options = append(options, TrackOption{Label: sound.Name, Value: domain.TrackToken(sound.ID)})
	}
	return options
}

// AssignmentForm loads the current assignment of an actor. The playlist is
// preselected from the actor's flag, else the hype playlist.
func (e *HypeEngine) AssignmentForm(ctx context.Context, actorID string) (*AssignmentForm, error) {
	actor, err := e.actors.GetActor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	playlists, err := e.gateway.Playlists(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list playlists: %w", err)
	}

	form := &AssignmentForm{Actor: *actor, Playlists: playlists}

	a, err := e.resolver.Assignment(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if a != nil {
		form.PlaylistID = a.PlaylistID
		form.Track = a.Track
	}

	if form.PlaylistID == "" {
		hype, err := e.HypePlaylist(ctx)
		if err != nil {
			return nil, err
		}
		if hype != nil {
			form.PlaylistID = hype.ID
		}
	}
	return form, nil
}

// Playlist returns the form's playlist by id
func (f *AssignmentForm) Playlist(id string) *domain.Playlist {
	for i := range f.Playlists {
		if f.Playlists[i].ID == id {
			return &f.Playlists[i]
		}
	}
	return nil
}
