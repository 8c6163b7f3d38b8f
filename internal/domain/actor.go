package domain

// Actor is a character that can take turns in an encounter
type Actor struct {
	ID   string
	Name string
}

// Assignment maps an entity to a playlist and a track token.
// PlaylistID may be empty, in which case the hype playlist is used.
type Assignment struct {
	EntityID   string
	PlaylistID string
	Track      TrackToken
}

// HasTrack reports whether a track or playback mode has been assigned
func (a *Assignment) HasTrack() bool {
	return a != nil && a.Track != ""
}

// Encounter is the combat state carried by turn and round events
type Encounter struct {
	ActiveEntityID string
	ID             string
	Participants   []string
	Round          int
	Turn           int
}

// User is the acting user on this side of the host
type User struct {
	IsGM bool
	Name string
}
