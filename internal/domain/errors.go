package domain

import "errors"

var (
	ErrActorNotFound    = errors.New("actor not found")
	ErrNoAssignment     = errors.New("no track assigned")
	ErrNotAuthorized    = errors.New("not authorized")
	ErrPlaybackFailed   = errors.New("playback failed")
	ErrPlaylistNotFound = errors.New("playlist not found")
	ErrSoundNotFound    = errors.New("sound not found")
	ErrVoiceFinished    = errors.New("voice already finished")
)
