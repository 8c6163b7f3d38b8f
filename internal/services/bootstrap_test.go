package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/maestro/internal/domain"
	portsmocks "github.com/renato0307/maestro/internal/ports/mocks"
)

func newBootstrapper(t *testing.T, gateway *fakeGateway, store *memFlags, user domain.User) *PlaylistBootstrapper {
	t.Helper()
	notifier := &quietNotifier{}
	ducker := NewDuckingController(gateway)
	settings := NewSettingsService(store, notifier)
	hype := NewHypeEngine(
		gateway,
		portsmocks.NewMockActorDirectory(t),
		NewTrackResolver(store, gateway),
		NewPlaybackService(gateway, ducker, notifier),
		ducker,
		NewDuckSession(ducker),
		settings,
		notifier,
		user,
	)
	return NewPlaylistBootstrapper(gateway, hype, settings, user)
}

func TestPlaylistBootstrapper_EnsurePlaylists(t *testing.T) {
	tests := []struct {
		name     string
		user     domain.User
		settings map[string]bool
		existing []string
		expected []string
	}{
		{
			name:     "defaults create the hype playlist",
			user:     gm,
			expected: []string{domain.HypePlaylistName},
		},
		{
			name: "critical playlists when asked",
			user: gm,
			settings: map[string]bool{
				domain.SettingCreateCriticalSuccess: true,
				domain.SettingCreateCriticalFailure: true,
			},
			expected: []string{domain.HypePlaylistName, domain.CriticalSuccessName, domain.CriticalFailureName},
		},
		{
			name: "existing playlists are kept",
			user: gm,
			settings: map[string]bool{
				domain.SettingCreateCriticalSuccess: true,
			},
			existing: []string{domain.HypePlaylistName, domain.CriticalSuccessName},
		},
		{
			name: "critical tracks disabled",
			user: gm,
			settings: map[string]bool{
				domain.SettingHypeEnable:            false,
				domain.SettingCriticalTracksEnable:  false,
				domain.SettingCreateCriticalSuccess: true,
			},
		},
		{
			name: "players create nothing",
			user: domain.User{Name: "player"},
			settings: map[string]bool{
				domain.SettingCreateCriticalSuccess: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := newFakeGateway()
			for _, name := range tt.existing {
				gateway.addPlaylist(name, domain.ModeManual)
			}
			store := newMemFlags()
			for key, value := range tt.settings {
				mustSetting(t, store, key, value)
			}

			created, err := newBootstrapper(t, gateway, store, tt.user).EnsurePlaylists(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.expected, created)
			assert.Equal(t, tt.expected, gateway.created)

			for _, name := range tt.expected {
				p, err := gateway.FindPlaylistByName(context.Background(), name)
				require.NoError(t, err)
				assert.Equal(t, domain.ModeManual, p.Mode)
			}
		})
	}
}

func TestPlaylistBootstrapper_Idempotent(t *testing.T) {
	gateway := newFakeGateway()
	store := newMemFlags()
	mustSetting(t, store, domain.SettingCreateCriticalFailure, true)
	bootstrapper := newBootstrapper(t, gateway, store, gm)

	first, err := bootstrapper.EnsurePlaylists(context.Background())
	require.NoError(t, err)
	assert.Len(t, first, 2)

	second, err := bootstrapper.EnsurePlaylists(context.Background())
	require.NoError(t, err)
	assert.Empty(t, second)
	assert.Len(t, gateway.created, 2)
}
