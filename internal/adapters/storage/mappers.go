package storage

import (
	"github.com/renato0307/maestro/internal/domain"
)

// actorModelToDomain converts an ActorModel (GORM) to domain.Actor
func actorModelToDomain(m ActorModel) domain.Actor {
	return domain.Actor{
		ID:   m.ID,
		Name: m.Name,
	}
}

// soundModelToDomain converts a SoundModel (GORM) to domain.Sound
func soundModelToDomain(m SoundModel) domain.Sound {
	return domain.Sound{
		ID:         m.ID,
		Name:       m.Name,
		Path:       m.Path,
		Playing:    false, // Runtime state, owned by the host
		PlaylistID: m.PlaylistID,
		Repeat:     m.Repeat,
		Sort:       m.Sort,
	}
}

// domainToSoundModel converts a domain.Sound to SoundModel (GORM)
func domainToSoundModel(s domain.Sound) SoundModel {
	return SoundModel{
		ID:         s.ID,
		Name:       s.Name,
		Path:       s.Path,
		PlaylistID: s.PlaylistID,
		Repeat:     s.Repeat,
		Sort:       s.Sort,
	}
}

// playlistModelToDomain converts a PlaylistModel and its sounds to domain.Playlist
func playlistModelToDomain(m PlaylistModel, sounds []SoundModel) domain.Playlist {
	p := domain.Playlist{
		ID:            m.ID,
		Mode:          domain.PlaybackMode(m.Mode),
		Name:          m.Name,
		PlaybackOrder: nil, // Runtime state, owned by the host
		Playing:       false,
		Sounds:        make([]domain.Sound, 0, len(sounds)),
	}
	for _, s := range sounds {
		p.Sounds = append(p.Sounds, soundModelToDomain(s))
	}
	return p
}
