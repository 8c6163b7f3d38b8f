package domain

import "time"

// ActivityKind is what happened to a sound
type ActivityKind string

const (
	ActivityEnded      ActivityKind = "ended"
	ActivityPaused     ActivityKind = "paused"
	ActivityResumed    ActivityKind = "resumed"
	ActivityStarted    ActivityKind = "started"
	ActivityStopped    ActivityKind = "stopped"
	ActivitySuppressed ActivityKind = "suppressed"
)

// Activity is a playback change observed by the host
type Activity struct {
	At         time.Time
	Kind       ActivityKind
	PlaylistID string
	SoundID    string
}

// Sound returns the ref of the sound the activity is about
func (a Activity) Sound() SoundRef {
	return SoundRef{PlaylistID: a.PlaylistID, SoundID: a.SoundID}
}
