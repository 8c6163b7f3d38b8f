package domain

// OutcomeCategory classifies how a check resolved
type OutcomeCategory string

const (
	OutcomeCriticalFailure OutcomeCategory = "criticalFailure"
	OutcomeFailure         OutcomeCategory = "failure"
	OutcomeSuccess         OutcomeCategory = "success"
	OutcomeCriticalSuccess OutcomeCategory = "criticalSuccess"
)

// degreeScale maps a numeric degree of success to a category
var degreeScale = []OutcomeCategory{
	OutcomeCriticalFailure,
	OutcomeFailure,
	OutcomeSuccess,
	OutcomeCriticalSuccess,
}

// OutcomeFromDegree maps 0..3 onto the degree scale
func OutcomeFromDegree(degree int) (OutcomeCategory, bool) {
	if degree < 0 || degree >= len(degreeScale) {
		return "", false
	}
	return degreeScale[degree], true
}

// IsCritical reports whether the category has a configurable stinger
func (c OutcomeCategory) IsCritical() bool {
	return c == OutcomeCriticalSuccess || c == OutcomeCriticalFailure
}

// Valid reports whether c is one of the known categories
func (c OutcomeCategory) Valid() bool {
	for _, known := range degreeScale {
		if c == known {
			return true
		}
	}
	return false
}

// OutcomeTracks is the process-wide stinger configuration
type OutcomeTracks struct {
	CriticalFailurePlaylist string     `json:"criticalFailurePlaylist"`
	CriticalFailureSound    TrackToken `json:"criticalFailureSound"`
	CriticalSuccessPlaylist string     `json:"criticalSuccessPlaylist"`
	CriticalSuccessSound    TrackToken `json:"criticalSuccessSound"`
}

// For returns the playlist and track configured for a category.
// ok is false unless both are set.
func (o OutcomeTracks) For(c OutcomeCategory) (playlistID string, track TrackToken, ok bool) {
	switch c {
	case OutcomeCriticalSuccess:
		playlistID, track = o.CriticalSuccessPlaylist, o.CriticalSuccessSound
	case OutcomeCriticalFailure:
		playlistID, track = o.CriticalFailurePlaylist, o.CriticalFailureSound
	default:
		return "", "", false
	}
	return playlistID, track, playlistID != "" && track != ""
}
