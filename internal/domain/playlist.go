package domain

import (
	"fmt"
	"sort"
	"strings"
)

// PlaybackMode is how a playlist sequences its sounds
type PlaybackMode int

const (
	ModeManual       PlaybackMode = -1
	ModeSequential   PlaybackMode = 0
	ModeShuffle      PlaybackMode = 1
	ModeSimultaneous PlaybackMode = 2
)

// String returns the mode name used in the CLI and in event payloads
func (m PlaybackMode) String() string {
	switch m {
	case ModeManual:
		return "manual"
	case ModeSequential:
		return "sequential"
	case ModeShuffle:
		return "shuffle"
	case ModeSimultaneous:
		return "simultaneous"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// SupportsLoop reports whether the loop toggle applies to this mode.
// Only playlists that advance one sound at a time can loop.
func (m PlaybackMode) SupportsLoop() bool {
	return m == ModeSequential || m == ModeShuffle
}

// ParsePlaybackMode converts a mode name (or its numeric form) into a PlaybackMode
func ParsePlaybackMode(s string) (PlaybackMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "manual", "-1":
		return ModeManual, nil
	case "sequential", "", "0":
		return ModeSequential, nil
	case "shuffle", "1":
		return ModeShuffle, nil
	case "simultaneous", "2":
		return ModeSimultaneous, nil
	}
	return ModeManual, fmt.Errorf("unknown playback mode %q", s)
}

// TrackToken is either a concrete sound id or one of the sentinel playback modes
type TrackToken string

const (
	// TrackRandom picks the first entry of the playlist's current play order
	TrackRandom TrackToken = "random-track"
	// TrackPlayAll hands sequencing over to the playlist itself
	TrackPlayAll TrackToken = "play-all"
)

// IsSentinel reports whether the token is a playback mode rather than a sound id
func (t TrackToken) IsSentinel() bool {
	return t == TrackRandom || t == TrackPlayAll
}

// Sound is a track inside a playlist
type Sound struct {
	ID         string
	Name       string
	Path       string
	Playing    bool
	PlaylistID string
	Repeat     bool
	Sort       int
}

// SoundRef identifies a sound inside a playlist
type SoundRef struct {
	PlaylistID string
	SoundID    string
}

// String renders the ref as playlist/sound
func (r SoundRef) String() string {
	return r.PlaylistID + "/" + r.SoundID
}

// Playlist is an ordered collection of sounds with a playback mode.
// PlaybackOrder is the current runtime order as reported by the host; it is
// only authoritative for shuffle playlists.
type Playlist struct {
	ID            string
	Mode          PlaybackMode
	Name          string
	PlaybackOrder []string
	Playing       bool
	Sounds        []Sound
}

// Sound finds a sound by id
func (p *Playlist) Sound(id string) (*Sound, bool) {
	for i := range p.Sounds {
		if p.Sounds[i].ID == id {
			return &p.Sounds[i], true
		}
	}
	return nil, false
}

// SoundByName finds the first sound with the given name
func (p *Playlist) SoundByName(name string) (*Sound, bool) {
	for i := range p.Sounds {
		if p.Sounds[i].Name == name {
			return &p.Sounds[i], true
		}
	}
	return nil, false
}

// NaturalOrder returns sound ids sorted by their sort key, then by name
func (p *Playlist) NaturalOrder() []string {
	sounds := make([]Sound, len(p.Sounds))
	copy(sounds, p.Sounds)
	sort.SliceStable(sounds, func(i, j int) bool {
		if sounds[i].Sort != sounds[j].Sort {
			return sounds[i].Sort < sounds[j].Sort
		}
		return sounds[i].Name < sounds[j].Name
	})

	ids := make([]string, 0, len(sounds))
	for _, s := range sounds {
		ids = append(ids, s.ID)
	}
	return ids
}

// Order returns the sequence used to decide what plays next:
// the shuffle order for shuffle playlists, the natural order otherwise.
func (p *Playlist) Order() []string {
	if p.Mode == ModeShuffle {
		return p.PlaybackOrder
	}
	return p.NaturalOrder()
}

// PlayingSounds returns the sounds currently flagged as playing
func (p *Playlist) PlayingSounds() []Sound {
	var playing []Sound
	for _, s := range p.Sounds {
		if s.Playing {
			playing = append(playing, s)
		}
	}
	return playing
}
