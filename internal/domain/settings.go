package domain

// Namespace scopes flags and module settings
const Namespace = "maestro"

// Flag keys stored on documents
const (
	FlagActorPlaylist   = "hype-playlist"
	FlagActorTrack      = "hype-track"
	FlagPlaylistLoop    = "loop"
	FlagPreviousSound   = "previous-track"
	HypePlaylistName    = "Hype Tracks"
	CriticalSuccessName = "Critical Success"
	CriticalFailureName = "Critical Failure"
)

// Module setting keys
const (
	SettingCreateCriticalFailure = "create-critical-failure-playlist"
	SettingCreateCriticalSuccess = "create-critical-success-playlist"
	SettingCriticalTracks        = "critical-success-failure-tracks"
	SettingCriticalTracksEnable  = "enable-critical-success-failure-tracks"
	SettingDisableDiceSound      = "disable-dice-sound"
	SettingHypeEnable            = "hype-track-enable"
	SettingHypePauseOthers       = "hype-track-pause-others"
)

// DocumentKind is the type of document a flag hangs off
type DocumentKind string

const (
	DocumentActor    DocumentKind = "actor"
	DocumentPlaylist DocumentKind = "playlist"
)

// DocumentRef points at a flag-bearing document
type DocumentRef struct {
	ID   string
	Kind DocumentKind
}

// ActorDoc returns a reference to an actor document
func ActorDoc(id string) DocumentRef {
	return DocumentRef{ID: id, Kind: DocumentActor}
}

// PlaylistDoc returns a reference to a playlist document
func PlaylistDoc(id string) DocumentRef {
	return DocumentRef{ID: id, Kind: DocumentPlaylist}
}

// ModuleSettings is the typed view over the module settings store
type ModuleSettings struct {
	CreateCriticalFailure bool
	CreateCriticalSuccess bool
	CriticalTracks        OutcomeTracks
	CriticalTracksEnabled bool
	DisableDiceSound      bool
	HypeEnabled           bool
	HypePauseOthers       bool
}

// DefaultModuleSettings returns the values used when nothing is stored
func DefaultModuleSettings() ModuleSettings {
	return ModuleSettings{
		CriticalTracksEnabled: true,
		HypeEnabled:           true,
		HypePauseOthers:       true,
	}
}
