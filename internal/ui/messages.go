package ui

import "github.com/renato0307/maestro/internal/domain"

// activityMsg carries one playback change from the host
type activityMsg domain.Activity

// activityClosedMsg is sent once the activity feed is closed
type activityClosedMsg struct{}

// playlistsMsg carries a fresh read of the playlists
type playlistsMsg struct {
	err       error
	loops     map[string]bool
	playlists []domain.Playlist
}

// pausedMsg carries the sounds a pause-all stopped
type pausedMsg struct {
	refs []domain.SoundRef
}

// loopToggledMsg reports the result of a loop toggle
type loopToggledMsg struct {
	enabled    bool
	err        error
	playlistID string
}
