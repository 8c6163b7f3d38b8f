package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renato0307/maestro/internal/domain"
)

func TestChatSoundFilter(t *testing.T) {
	tests := []struct {
		name    string
		disable bool
		sound   string
		clears  bool
	}{
		{name: "dice sound disabled", disable: true, sound: domain.DiceSound, clears: true},
		{name: "dice sound allowed", sound: domain.DiceSound},
		{name: "other sound kept", disable: true, sound: "sounds/notify.wav"},
		{name: "no sound", disable: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemFlags()
			mustSetting(t, store, domain.SettingDisableDiceSound, tt.disable)
			filter := NewChatSoundFilter(NewSettingsService(store, &quietNotifier{}))

			verdict := filter.OnMessageCreating(context.Background(), domain.ChatMessage{ID: "m1", Sound: tt.sound})
			if tt.clears {
				assert.Equal(t, domain.ClearSound(), verdict)
				return
			}
			assert.True(t, verdict.Empty())
		})
	}
}
