package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/renato0307/maestro/internal/domain"
	portsmocks "github.com/renato0307/maestro/internal/ports/mocks"
)

type conductorFixture struct {
	conductor *Conductor
	ctx       context.Context
	flags     *memFlags
	gateway   *fakeGateway
	hype      *domain.Playlist
	journey   *domain.Playlist
	recorder  *tracetest.SpanRecorder
	stinger   *domain.Playlist
}

func newConductorFixture(t *testing.T) *conductorFixture {
	t.Helper()
	gateway := newFakeGateway()
	f := &conductorFixture{
		ctx:      context.Background(),
		flags:    newMemFlags(),
		gateway:  gateway,
		recorder: tracetest.NewSpanRecorder(),
	}
	f.hype = gateway.addPlaylist(domain.HypePlaylistName, domain.ModeManual, "theme")
	f.stinger = gateway.addPlaylist(domain.CriticalFailureName, domain.ModeManual, "sad-trombone")
	f.journey = gateway.addPlaylist("Journey", domain.ModeSequential, "a", "b")
	f.journey.Playing = true

	notifier := &quietNotifier{}
	ducker := NewDuckingController(gateway)
	settings := NewSettingsService(f.flags, notifier)
	resolver := NewTrackResolver(f.flags, gateway)
	playback := NewPlaybackService(gateway, ducker, notifier)
	hype := NewHypeEngine(gateway, portsmocks.NewMockActorDirectory(t), resolver, playback, ducker,
		NewDuckSession(ducker), settings, notifier, gm)
	t.Cleanup(func() {
		_ = gateway.StopAll(context.Background(), f.hype.ID)
		hype.Wait()
	})

	f.conductor = NewConductor(
		hype,
		NewOutcomeEngine(playback, settings, gm),
		NewLoopController(f.flags, gateway, notifier),
		NewChatSoundFilter(settings),
	)
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(f.recorder))
	f.conductor.tracer = provider.Tracer(tracerName)

	require.NoError(t, resolver.SetAssignment(f.ctx, "e1", "", domain.TrackToken(f.hype.Sounds[0].ID)))
	mustSetting(t, f.flags, domain.SettingCriticalTracks, domain.OutcomeTracks{
		CriticalFailurePlaylist: f.stinger.ID,
		CriticalFailureSound:    domain.TrackRandom,
	})
	mustSetting(t, f.flags, domain.SettingDisableDiceSound, true)
	return f
}

func TestConductor_Routes(t *testing.T) {
	f := newConductorFixture(t)
	doc := domain.PlaylistDoc(f.journey.ID)
	require.NoError(t, f.flags.SetFlag(f.ctx, doc, domain.FlagPlaylistLoop, false))

	events := []struct {
		event    domain.Event
		expected domain.Verdict
	}{
		{event: turnTo("e1")},
		{event: domain.EncounterUpdated{Encounter: turnTo("e1").Encounter}},
		{event: domain.CheckResolved{Message: domain.ChatMessage{ContentVisible: true, Rolls: []domain.Roll{d20(1)}}}},
		{
			event:    domain.MessageCreating{Message: domain.ChatMessage{ID: "m1", Sound: domain.DiceSound}},
			expected: domain.ClearSound(),
		},
		{event: domain.SoundEnded{PlaylistID: f.journey.ID, SoundID: f.journey.Sounds[1].ID}},
		{
			event:    domain.SoundStarted{PlaylistID: f.journey.ID, SoundID: f.journey.Sounds[0].ID},
			expected: domain.SuppressPlayback(),
		},
	}

	for _, e := range events {
		verdict, err := f.conductor.Dispatch(f.ctx, e.event)
		require.NoError(t, err, e.event.Kind())
		if e.expected.Empty() {
			assert.True(t, verdict.Empty(), e.event.Kind())
		} else {
			assert.Equal(t, e.expected, verdict, e.event.Kind())
		}
	}

	assert.Equal(t, []domain.SoundRef{soundAt(f.hype, 0), soundAt(f.stinger, 0)}, f.gateway.playedRefs(),
		"the turn plays the theme once and the natural 1 plays the stinger")
}

func TestConductor_OneSpanPerEvent(t *testing.T) {
	f := newConductorFixture(t)

	_, err := f.conductor.Dispatch(f.ctx, turnTo("e1"))
	require.NoError(t, err)
	_, err = f.conductor.Dispatch(f.ctx, domain.MessageCreating{Message: domain.ChatMessage{ID: "m1", Sound: domain.DiceSound}})
	require.NoError(t, err)

	spans := f.recorder.Ended()
	require.Len(t, spans, 2)

	assert.Equal(t, "dispatch turn-changed", spans[0].Name())
	assert.Contains(t, spans[0].Attributes(), attribute.String("maestro.active_entity_id", "e1"))
	assert.Contains(t, spans[0].Attributes(), attribute.Bool("maestro.verdict", false))

	assert.Equal(t, "dispatch message-creating", spans[1].Name())
	assert.Contains(t, spans[1].Attributes(), attribute.String("maestro.message_id", "m1"))
	assert.Contains(t, spans[1].Attributes(), attribute.Bool("maestro.verdict", true))
}
