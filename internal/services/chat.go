package services

import (
	"context"

	"github.com/renato0307/maestro/internal/domain"
	"github.com/renato0307/maestro/internal/logging"
)

// ChatSoundFilter strips the default dice sound from new chat messages when
// the user turned it off
type ChatSoundFilter struct {
	settings *SettingsService
}

// NewChatSoundFilter creates a new ChatSoundFilter
func NewChatSoundFilter(settings *SettingsService) *ChatSoundFilter {
	return &ChatSoundFilter{
		settings: settings,
	}
}

// OnMessageCreating answers a pending chat message
func (f *ChatSoundFilter) OnMessageCreating(ctx context.Context, msg domain.ChatMessage) domain.Verdict {
	if msg.Sound != domain.DiceSound {
		return domain.Verdict{}
	}
	if !f.settings.Current(ctx).DisableDiceSound {
		return domain.Verdict{}
	}

	logging.Logger.Debug("Removing dice sound", "message", msg.ID)
	return domain.ClearSound()
}
