package domain

// EventKind names an event variant on the wire and in traces
type EventKind string

const (
	EventCheckResolved    EventKind = "check-resolved"
	EventEncounterUpdated EventKind = "encounter-updated"
	EventMessageCreating  EventKind = "message-creating"
	EventRoundChanged     EventKind = "round-changed"
	EventSoundEnded       EventKind = "sound-ended"
	EventSoundStarted     EventKind = "sound-started"
	EventTurnChanged      EventKind = "turn-changed"
)

// Event is a host notification. The set of variants is closed.
type Event interface {
	Kind() EventKind
	isEvent()
}

// TurnChanged is an encounter update that moved the turn pointer
type TurnChanged struct {
	Encounter Encounter
}

// RoundChanged is an encounter update that advanced the round
type RoundChanged struct {
	Encounter Encounter
}

// EncounterUpdated is an encounter update that touched neither turn nor round
type EncounterUpdated struct {
	Encounter Encounter
}

// CheckResolved is a chat message rendered with a resolved check
type CheckResolved struct {
	Message ChatMessage
}

// MessageCreating is a chat message about to be created
type MessageCreating struct {
	Message ChatMessage
}

// SoundStarted is a pre-update notification for a sound about to play
type SoundStarted struct {
	PlaylistID string
	SoundID    string
}

// SoundEnded is a pre-update notification for a sound about to stop
type SoundEnded struct {
	PlaylistID string
	SoundID    string
}

func (TurnChanged) Kind() EventKind      { return EventTurnChanged }
func (RoundChanged) Kind() EventKind     { return EventRoundChanged }
func (EncounterUpdated) Kind() EventKind { return EventEncounterUpdated }
func (CheckResolved) Kind() EventKind    { return EventCheckResolved }
func (MessageCreating) Kind() EventKind  { return EventMessageCreating }
func (SoundStarted) Kind() EventKind     { return EventSoundStarted }
func (SoundEnded) Kind() EventKind       { return EventSoundEnded }

func (TurnChanged) isEvent()      {}
func (RoundChanged) isEvent()     {}
func (EncounterUpdated) isEvent() {}
func (CheckResolved) isEvent()    {}
func (MessageCreating) isEvent()  {}
func (SoundStarted) isEvent()     {}
func (SoundEnded) isEvent()       {}

// Verdict is the answer to a pre-update event: fields to overwrite on the
// pending update. An empty verdict lets the update through untouched.
type Verdict struct {
	Patch map[string]any
}

// Empty reports whether the verdict changes nothing
func (v Verdict) Empty() bool {
	return len(v.Patch) == 0
}

// SuppressPlayback forces the pending sound update to stay stopped
func SuppressPlayback() Verdict {
	return Verdict{Patch: map[string]any{"playing": false}}
}

// ClearSound removes the sound from a pending chat message
func ClearSound() Verdict {
	return Verdict{Patch: map[string]any{"sound": ""}}
}

// Suppresses reports whether the verdict stops a pending sound start
func (v Verdict) Suppresses() bool {
	playing, ok := v.Patch["playing"].(bool)
	return ok && !playing
}
