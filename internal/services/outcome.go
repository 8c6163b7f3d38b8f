package services

import (
	"context"

	"github.com/renato0307/maestro/internal/domain"
	"github.com/renato0307/maestro/internal/logging"
)

const checkDieFaces = 20

// Classify decides the outcome category of a resolved check. An explicit
// outcome wins, then a natural 20 or 1 on the d20, then the degree of success.
// Damage rolls never classify.
func Classify(msg domain.ChatMessage) (domain.OutcomeCategory, bool) {
	if msg.IsDamage() {
		return "", false
	}
	if msg.Outcome.Valid() {
		return msg.Outcome, true
	}

	roll, ok := msg.FirstRoll()
	if !ok {
		return "", false
	}

	if natural, ok := roll.Natural(checkDieFaces); ok {
		switch natural {
		case checkDieFaces:
			return domain.OutcomeCriticalSuccess, true
		case 1:
			return domain.OutcomeCriticalFailure, true
		}
	}

	if roll.DegreeOfSuccess != nil {
		return domain.OutcomeFromDegree(*roll.DegreeOfSuccess)
	}
	return "", false
}

// OutcomeEngine plays the configured stinger on critical check results.
// Stingers layer over whatever is playing; nothing is ducked.
type OutcomeEngine struct {
	playback *PlaybackService
	settings *SettingsService
	user     domain.User
}

// NewOutcomeEngine creates a new OutcomeEngine
func NewOutcomeEngine(playback *PlaybackService, settings *SettingsService, user domain.User) *OutcomeEngine {
	return &OutcomeEngine{
		playback: playback,
		settings: settings,
		user:     user,
	}
}

// OnCheckResolved plays the stinger for a rendered check message, if any.
// Every miss is a silent no-op.
func (e *OutcomeEngine) OnCheckResolved(ctx context.Context, msg domain.ChatMessage) error {
	settings := e.settings.Current(ctx)
	if !settings.CriticalTracksEnabled {
		logging.Logger.Debug("Critical tracks disabled, skipping", "message", msg.ID)
		return nil
	}

	switch {
	case !msg.ContentVisible:
		logging.Logger.Debug("Message not visible, skipping", "message", msg.ID)
		return nil
	case !e.user.IsGM:
		logging.Logger.Debug("Not GM, skipping outcome", "message", msg.ID)
		return nil
	case msg.IsDamage():
		logging.Logger.Debug("Damage roll, skipping outcome", "message", msg.ID)
		return nil
	}

	category, ok := Classify(msg)
	if !ok || !category.IsCritical() {
		logging.Logger.Debug("No critical outcome", "message", msg.ID, "outcome", string(category))
		return nil
	}

	playlistID, track, ok := settings.CriticalTracks.For(category)
	if !ok {
		logging.Logger.Debug("No track configured for outcome", "outcome", string(category))
		return nil
	}

	noRepeat := false
	handle, err := e.playback.PlayTrack(ctx, playlistID, track, PlayOptions{Repeat: &noRepeat})
	if err != nil {
		logging.Logger.Warn("Failed to play outcome stinger",
			"outcome", string(category),
			"playlist_id", playlistID,
			"track", track,
			"error", err)
		return nil
	}

	logging.Logger.Info("Outcome stinger started", "outcome", string(category), "sound", handle.Sound().String())
	return nil
}
