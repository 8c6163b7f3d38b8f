package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/renato0307/maestro/internal/domain"
	portsmocks "github.com/renato0307/maestro/internal/ports/mocks"
)

type loopFixture struct {
	controller *LoopController
	ctx        context.Context
	flags      *memFlags
	gateway    *fakeGateway
	notifier   *quietNotifier
	playlist   *domain.Playlist
}

func newLoopFixture(mode domain.PlaybackMode) *loopFixture {
	gateway := newFakeGateway()
	f := &loopFixture{
		ctx:      context.Background(),
		flags:    newMemFlags(),
		gateway:  gateway,
		notifier: &quietNotifier{},
	}
	f.playlist = gateway.addPlaylist("Journey", mode, "a", "b", "c")
	f.playlist.Playing = true
	f.controller = NewLoopController(f.flags, gateway, f.notifier)
	return f
}

func (f *loopFixture) id(i int) string {
	return f.playlist.Sounds[i].ID
}

func (f *loopFixture) setFlag(t *testing.T, key string, value any) {
	t.Helper()
	require.NoError(t, f.flags.SetFlag(f.ctx, domain.PlaylistDoc(f.playlist.ID), key, value))
}

func (f *loopFixture) start(t *testing.T, soundID string) domain.Verdict {
	t.Helper()
	verdict, err := f.controller.OnSoundTransition(f.ctx, domain.SoundStarted{PlaylistID: f.playlist.ID, SoundID: soundID})
	require.NoError(t, err)
	return verdict
}

func TestLoopController_Boundary(t *testing.T) {
	tests := []struct {
		name     string
		previous int
		loop     any
		want     bool
	}{
		{name: "last track with loop off", previous: 2, loop: false, want: true},
		{name: "middle track with loop off", previous: 1, loop: false},
		{name: "first track with loop off", previous: 0, loop: false},
		{name: "last track with loop on", previous: 2, loop: true},
		{name: "last track with loop unset", previous: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newLoopFixture(domain.ModeSequential)
			f.setFlag(t, domain.FlagPreviousSound, f.id(tt.previous))
			if tt.loop != nil {
				f.setFlag(t, domain.FlagPlaylistLoop, tt.loop)
			}

			verdict := f.start(t, f.id(0))
			assert.Equal(t, tt.want, verdict.Suppresses())
		})
	}
}

func TestLoopController_AllowsOutsideItsScope(t *testing.T) {
	tests := []struct {
		name  string
		setup func(f *loopFixture)
	}{
		{
			name:  "playlist not playing",
			setup: func(f *loopFixture) { f.playlist.Playing = false },
		},
		{
			name:  "manual playlist",
			setup: func(f *loopFixture) { f.playlist.Mode = domain.ModeManual },
		},
		{
			name:  "simultaneous playlist",
			setup: func(f *loopFixture) { f.playlist.Mode = domain.ModeSimultaneous },
		},
		{
			name: "no previous track",
			setup: func(f *loopFixture) {
				_ = f.flags.UnsetFlag(f.ctx, domain.PlaylistDoc(f.playlist.ID), domain.FlagPreviousSound)
			},
		},
		{
			name: "previous track was removed",
			setup: func(f *loopFixture) {
				_ = f.flags.SetFlag(f.ctx, domain.PlaylistDoc(f.playlist.ID), domain.FlagPreviousSound, "gone")
			},
		},
		{
			name:  "unknown playlist",
			setup: func(f *loopFixture) { f.gateway.removePlaylist(f.playlist.ID) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newLoopFixture(domain.ModeSequential)
			f.setFlag(t, domain.FlagPreviousSound, f.id(2))
			f.setFlag(t, domain.FlagPlaylistLoop, false)
			tt.setup(f)

			assert.True(t, f.start(t, f.id(0)).Empty())
		})
	}
}

func TestLoopController_IgnoresEventsWithoutSound(t *testing.T) {
	f := newLoopFixture(domain.ModeSequential)
	f.setFlag(t, domain.FlagPreviousSound, f.id(2))
	f.setFlag(t, domain.FlagPlaylistLoop, false)

	assert.True(t, f.start(t, "").Empty())

	verdict, err := f.controller.OnSoundTransition(f.ctx, domain.TurnChanged{})
	require.NoError(t, err)
	assert.True(t, verdict.Empty())
}

func TestLoopController_EndedRecordsPrevious(t *testing.T) {
	f := newLoopFixture(domain.ModeSequential)
	f.setFlag(t, domain.FlagPlaylistLoop, false)

	verdict, err := f.controller.OnSoundTransition(f.ctx, domain.SoundEnded{PlaylistID: f.playlist.ID, SoundID: f.id(2)})
	require.NoError(t, err)
	assert.True(t, verdict.Empty(), "an ending sound is never suppressed")

	var previous string
	found, err := f.flags.GetFlag(f.ctx, domain.PlaylistDoc(f.playlist.ID), domain.FlagPreviousSound, &previous)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, f.id(2), previous)

	assert.True(t, f.start(t, f.id(0)).Suppresses())
}

func TestLoopController_ShuffleUsesPlayOrder(t *testing.T) {
	f := newLoopFixture(domain.ModeShuffle)
	f.playlist.PlaybackOrder = []string{f.id(2), f.id(0), f.id(1)}
	f.setFlag(t, domain.FlagPlaylistLoop, false)

	f.setFlag(t, domain.FlagPreviousSound, f.id(2))
	assert.True(t, f.start(t, f.id(0)).Empty(), "c opens the shuffled order")

	f.setFlag(t, domain.FlagPreviousSound, f.id(1))
	assert.True(t, f.start(t, f.id(2)).Suppresses(), "b closes the shuffled order")
}

func TestLoopController_FlagReadFailureFailsOpen(t *testing.T) {
	gateway := newFakeGateway()
	playlist := gateway.addPlaylist("Journey", domain.ModeSequential, "a", "b")
	playlist.Playing = true

	flags := portsmocks.NewMockFlagStore(t)
	flags.EXPECT().
		GetFlag(mock.Anything, domain.PlaylistDoc(playlist.ID), domain.FlagPreviousSound, mock.Anything).
		Return(false, errors.New("database is locked"))

	controller := NewLoopController(flags, gateway, &quietNotifier{})
	verdict, err := controller.OnSoundTransition(context.Background(),
		domain.SoundStarted{PlaylistID: playlist.ID, SoundID: playlist.Sounds[0].ID})

	require.NoError(t, err)
	assert.True(t, verdict.Empty())
}

// Only the start that follows the final entry of the play order is ever
// suppressed, and only while the loop flag is explicitly off.
func TestLoopController_SuppressesOnlyAtTheEnd(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ctx := context.Background()
		gateway := newFakeGateway()
		names := rapid.SliceOfNDistinct(rapid.StringMatching(`[a-z]{1,6}`), 1, 8, rapid.ID[string]).Draw(t, "sounds")
		mode := rapid.SampledFrom([]domain.PlaybackMode{domain.ModeSequential, domain.ModeShuffle}).Draw(t, "mode")
		playlist := gateway.addPlaylist("Journey", mode, names...)
		playlist.Playing = true

		order := playlist.NaturalOrder()
		if mode == domain.ModeShuffle {
			order = rapid.Permutation(order).Draw(t, "order")
			playlist.PlaybackOrder = order
		}

		flags := newMemFlags()
		doc := domain.PlaylistDoc(playlist.ID)
		loopState := rapid.SampledFrom([]string{"unset", "on", "off"}).Draw(t, "loop")
		switch loopState {
		case "on":
			_ = flags.SetFlag(ctx, doc, domain.FlagPlaylistLoop, true)
		case "off":
			_ = flags.SetFlag(ctx, doc, domain.FlagPlaylistLoop, false)
		}

		previous := rapid.SampledFrom(order).Draw(t, "previous")
		next := rapid.SampledFrom(order).Draw(t, "next")
		_ = flags.SetFlag(ctx, doc, domain.FlagPreviousSound, previous)

		controller := NewLoopController(flags, gateway, &quietNotifier{})
		verdict, err := controller.OnSoundTransition(ctx, domain.SoundStarted{PlaylistID: playlist.ID, SoundID: next})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := loopState == "off" && previous == order[len(order)-1]
		if verdict.Suppresses() != want {
			t.Fatalf("previous=%s order=%v loop=%s: suppressed=%v, want %v",
				previous, order, loopState, verdict.Suppresses(), want)
		}
	})
}

func TestLoopController_SetLoop(t *testing.T) {
	t.Run("disable persists false", func(t *testing.T) {
		f := newLoopFixture(domain.ModeSequential)

		require.NoError(t, f.controller.SetLoop(f.ctx, f.playlist.ID, false))

		loop, err := f.controller.Loop(f.ctx, f.playlist.ID)
		require.NoError(t, err)
		assert.False(t, loop)
		assert.Equal(t, []string{"Journey will stop after its last track"}, f.notifier.infos)
	})

	t.Run("enable unsets the flag", func(t *testing.T) {
		f := newLoopFixture(domain.ModeShuffle)
		f.setFlag(t, domain.FlagPlaylistLoop, false)

		require.NoError(t, f.controller.SetLoop(f.ctx, f.playlist.ID, true))

		var stored bool
		found, err := f.flags.GetFlag(f.ctx, domain.PlaylistDoc(f.playlist.ID), domain.FlagPlaylistLoop, &stored)
		require.NoError(t, err)
		assert.False(t, found)

		loop, err := f.controller.Loop(f.ctx, f.playlist.ID)
		require.NoError(t, err)
		assert.True(t, loop)
	})

	t.Run("unsupported mode", func(t *testing.T) {
		for _, mode := range []domain.PlaybackMode{domain.ModeManual, domain.ModeSimultaneous} {
			f := newLoopFixture(mode)

			err := f.controller.SetLoop(f.ctx, f.playlist.ID, false)
			assert.ErrorIs(t, err, ErrLoopUnsupported)
			assert.Len(t, f.notifier.warnings(), 1)
		}
	})

	t.Run("unknown playlist", func(t *testing.T) {
		f := newLoopFixture(domain.ModeSequential)

		err := f.controller.SetLoop(f.ctx, "missing", false)
		assert.ErrorIs(t, err, domain.ErrPlaylistNotFound)
	})

	t.Run("persistence failure", func(t *testing.T) {
		gateway := newFakeGateway()
		playlist := gateway.addPlaylist("Journey", domain.ModeSequential, "a")
		flags := portsmocks.NewMockFlagStore(t)
		flags.EXPECT().
			SetFlag(mock.Anything, domain.PlaylistDoc(playlist.ID), domain.FlagPlaylistLoop, false).
			Return(errors.New("disk full"))
		notifier := &quietNotifier{}

		err := NewLoopController(flags, gateway, notifier).SetLoop(context.Background(), playlist.ID, false)
		assert.ErrorContains(t, err, "disk full")
		assert.Empty(t, notifier.infos)
	})
}
