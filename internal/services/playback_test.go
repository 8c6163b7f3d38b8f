package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/maestro/internal/domain"
)

type playbackFixture struct {
	ambience *domain.Playlist
	ctx      context.Context
	gateway  *fakeGateway
	music    *domain.Playlist
	notifier *quietNotifier
	service  *PlaybackService
}

func newPlaybackFixture() *playbackFixture {
	gateway := newFakeGateway()
	f := &playbackFixture{
		ctx:      context.Background(),
		gateway:  gateway,
		notifier: &quietNotifier{},
	}
	f.music = gateway.addPlaylist("Music", domain.ModeShuffle, "overture", "march", "finale")
	f.ambience = gateway.addPlaylist("Ambience", domain.ModeSimultaneous, "rain", "march")
	f.service = NewPlaybackService(gateway, NewDuckingController(gateway), f.notifier)
	return f
}

func TestPlaybackService_PlayTrack(t *testing.T) {
	t.Run("concrete sound", func(t *testing.T) {
		f := newPlaybackFixture()
		march := soundAt(f.music, 1)

		handle, err := f.service.PlayTrack(f.ctx, f.music.ID, domain.TrackToken(march.SoundID), PlayOptions{})
		require.NoError(t, err)
		assert.Equal(t, march, handle.Sound())
		assert.Empty(t, f.gateway.repeats, "repeat is left alone without options")
	})

	t.Run("random picks the head of the play order", func(t *testing.T) {
		f := newPlaybackFixture()
		f.music.PlaybackOrder = []string{f.music.Sounds[2].ID, f.music.Sounds[0].ID, f.music.Sounds[1].ID}

		handle, err := f.service.PlayTrack(f.ctx, f.music.ID, domain.TrackRandom, PlayOptions{})
		require.NoError(t, err)
		assert.Equal(t, soundAt(f.music, 2), handle.Sound())
	})

	t.Run("repeat is only written when it changes", func(t *testing.T) {
		f := newPlaybackFixture()
		f.music.Sounds[0].Repeat = true
		off, on := false, true

		_, err := f.service.PlayTrack(f.ctx, f.music.ID, domain.TrackToken(f.music.Sounds[0].ID), PlayOptions{Repeat: &on})
		require.NoError(t, err)
		assert.Empty(t, f.gateway.repeats)

		_, err = f.service.PlayTrack(f.ctx, f.music.ID, domain.TrackToken(f.music.Sounds[0].ID), PlayOptions{Repeat: &off})
		require.NoError(t, err)
		assert.Equal(t, map[domain.SoundRef]bool{soundAt(f.music, 0): false}, f.gateway.repeats)
	})

	t.Run("play all", func(t *testing.T) {
		f := newPlaybackFixture()

		handle, err := f.service.PlayPlaylist(f.ctx, f.music.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{f.music.ID}, f.gateway.playedAll)
		assert.Equal(t, f.music.ID, handle.Sound().PlaylistID)
	})

	t.Run("unknown sound", func(t *testing.T) {
		f := newPlaybackFixture()

		_, err := f.service.PlayTrack(f.ctx, f.music.ID, "nope", PlayOptions{})
		assert.ErrorIs(t, err, domain.ErrSoundNotFound)
	})

	t.Run("random on empty playlist", func(t *testing.T) {
		f := newPlaybackFixture()
		empty := f.gateway.addPlaylist("Empty", domain.ModeSequential)

		_, err := f.service.PlayTrack(f.ctx, empty.ID, domain.TrackRandom, PlayOptions{})
		assert.ErrorIs(t, err, domain.ErrSoundNotFound)
	})

	t.Run("unknown playlist", func(t *testing.T) {
		f := newPlaybackFixture()

		_, err := f.service.PlayTrack(f.ctx, "missing", domain.TrackRandom, PlayOptions{})
		assert.ErrorIs(t, err, domain.ErrPlaylistNotFound)
	})
}

func TestPlaybackService_PauseAndResume(t *testing.T) {
	f := newPlaybackFixture()
	for _, ref := range []domain.SoundRef{soundAt(f.music, 0), soundAt(f.ambience, 0), soundAt(f.ambience, 1)} {
		_, err := f.gateway.PlaySound(f.ctx, ref)
		require.NoError(t, err)
	}

	paused, err := f.service.PauseSounds(f.ctx, []string{"rain", "/audio/overture.ogg", "not-playing"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []domain.SoundRef{soundAt(f.music, 0), soundAt(f.ambience, 0)}, paused)
	assert.False(t, f.gateway.isPaused(soundAt(f.ambience, 1)))

	byRef, err := f.service.PauseSounds(f.ctx, []string{soundAt(f.ambience, 1).String()})
	require.NoError(t, err)
	assert.Equal(t, []domain.SoundRef{soundAt(f.ambience, 1)}, byRef)

	f.service.ResumeSounds(f.ctx, append(paused, byRef...))
	audible, err := f.gateway.Audible(f.ctx)
	require.NoError(t, err)
	assert.Len(t, audible, 3)
	assert.Empty(t, f.gateway.violations)
}

func TestPlaybackService_PauseAll(t *testing.T) {
	f := newPlaybackFixture()
	assert.Empty(t, f.service.PauseAll(f.ctx), "nothing playing, nothing paused")

	_, err := f.gateway.PlaySound(f.ctx, soundAt(f.ambience, 0))
	require.NoError(t, err)

	assert.Equal(t, []domain.SoundRef{soundAt(f.ambience, 0)}, f.service.PauseAll(f.ctx))
	assert.True(t, f.gateway.isPaused(soundAt(f.ambience, 0)))
}

func TestPlaybackService_FindSound(t *testing.T) {
	f := newPlaybackFixture()

	tests := []struct {
		name   string
		search string
		field  SearchField
		want   domain.SoundRef
		err    error
	}{
		{name: "by name", search: "finale", field: SearchByName, want: soundAt(f.music, 2)},
		{name: "first match wins", search: "march", field: SearchByName, want: soundAt(f.music, 1)},
		{name: "by full path", search: "/audio/rain.ogg", field: SearchByPath, want: soundAt(f.ambience, 0)},
		{name: "by file name", search: "rain.ogg", field: SearchByPath, want: soundAt(f.ambience, 0)},
		{name: "partial file name", search: "ain.ogg", field: SearchByPath, err: domain.ErrSoundNotFound},
		{name: "missing", search: "thunder", field: SearchByName, err: domain.ErrSoundNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sound, err := f.service.FindSound(f.ctx, tt.search, tt.field)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, domain.SoundRef{PlaylistID: sound.PlaylistID, SoundID: sound.ID})
		})
	}
}

func TestPlaybackService_PlaySoundByName(t *testing.T) {
	t.Run("anywhere", func(t *testing.T) {
		f := newPlaybackFixture()

		handle, err := f.service.PlaySoundByName(f.ctx, "march", "")
		require.NoError(t, err)
		assert.Equal(t, soundAt(f.music, 1), handle.Sound())
	})

	t.Run("inside a playlist", func(t *testing.T) {
		f := newPlaybackFixture()

		handle, err := f.service.PlaySoundByName(f.ctx, "march", "Ambience")
		require.NoError(t, err)
		assert.Equal(t, soundAt(f.ambience, 1), handle.Sound())
	})

	t.Run("unknown sound warns", func(t *testing.T) {
		f := newPlaybackFixture()

		_, err := f.service.PlaySoundByName(f.ctx, "thunder", "")
		assert.ErrorIs(t, err, domain.ErrSoundNotFound)
		assert.Equal(t, []string{`Sound "thunder" not found`}, f.notifier.warnings())
	})

	t.Run("sound outside the playlist warns", func(t *testing.T) {
		f := newPlaybackFixture()

		_, err := f.service.PlaySoundByName(f.ctx, "finale", "Ambience")
		assert.ErrorIs(t, err, domain.ErrSoundNotFound)
		assert.Equal(t, []string{`Sound "finale" not found`}, f.notifier.warnings())
	})

	t.Run("unknown playlist warns", func(t *testing.T) {
		f := newPlaybackFixture()

		_, err := f.service.PlaySoundByName(f.ctx, "march", "Battle")
		assert.ErrorIs(t, err, domain.ErrPlaylistNotFound)
		assert.Equal(t, []string{`Playlist "Battle" not found`}, f.notifier.warnings())
	})
}
