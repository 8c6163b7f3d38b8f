package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/maestro/internal/domain"
)

func d20(result int) domain.Roll {
	return domain.Roll{
		Dice: []domain.Die{{
			Faces:   20,
			Results: []domain.DieResult{{Active: true, Result: result}},
			Total:   result,
		}},
		Total: result + 5,
	}
}

func degree(n int) *int {
	return &n
}

func TestClassify(t *testing.T) {
	fortune := domain.Roll{Dice: []domain.Die{{
		Faces: 20,
		Results: []domain.DieResult{
			{Active: false, Discarded: true, Result: 20},
			{Active: true, Result: 7},
		},
		Total: 7,
	}}}
	noResults := domain.Roll{Dice: []domain.Die{{Faces: 20, Total: 1}}}
	graded := d20(12)
	graded.DegreeOfSuccess = degree(3)
	outOfScale := d20(12)
	outOfScale.DegreeOfSuccess = degree(4)

	tests := []struct {
		name   string
		msg    domain.ChatMessage
		want   domain.OutcomeCategory
		wantOK bool
	}{
		{
			name:   "natural 20",
			msg:    domain.ChatMessage{Rolls: []domain.Roll{d20(20)}},
			want:   domain.OutcomeCriticalSuccess,
			wantOK: true,
		},
		{
			name:   "natural 1",
			msg:    domain.ChatMessage{Rolls: []domain.Roll{d20(1)}},
			want:   domain.OutcomeCriticalFailure,
			wantOK: true,
		},
		{
			name:   "explicit outcome beats the die",
			msg:    domain.ChatMessage{Outcome: domain.OutcomeFailure, Rolls: []domain.Roll{d20(20)}},
			want:   domain.OutcomeFailure,
			wantOK: true,
		},
		{
			name:   "unknown explicit outcome is ignored",
			msg:    domain.ChatMessage{Outcome: "great", Rolls: []domain.Roll{d20(1)}},
			want:   domain.OutcomeCriticalFailure,
			wantOK: true,
		},
		{
			name:   "discarded face is skipped",
			msg:    domain.ChatMessage{Rolls: []domain.Roll{fortune}},
			wantOK: false,
		},
		{
			name:   "die total without results",
			msg:    domain.ChatMessage{Rolls: []domain.Roll{noResults}},
			want:   domain.OutcomeCriticalFailure,
			wantOK: true,
		},
		{
			name:   "degree of success",
			msg:    domain.ChatMessage{Rolls: []domain.Roll{graded}},
			want:   domain.OutcomeCriticalSuccess,
			wantOK: true,
		},
		{
			name:   "degree out of scale",
			msg:    domain.ChatMessage{Rolls: []domain.Roll{outOfScale}},
			wantOK: false,
		},
		{
			name:   "no rolls",
			msg:    domain.ChatMessage{},
			wantOK: false,
		},
		{
			name:   "damage context",
			msg:    domain.ChatMessage{ContextType: domain.DamageRollContext, Rolls: []domain.Roll{d20(20)}},
			wantOK: false,
		},
		{
			name:   "damage roll class",
			msg:    domain.ChatMessage{Rolls: []domain.Roll{{Kind: domain.DamageRollKind, Dice: d20(20).Dice}}},
			wantOK: false,
		},
		{
			name:   "damage flag with explicit outcome",
			msg:    domain.ChatMessage{IsDamageRoll: true, Outcome: domain.OutcomeCriticalSuccess},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Classify(tt.msg)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

type outcomeFixture struct {
	ctx     context.Context
	engine  *OutcomeEngine
	flags   *memFlags
	gateway *fakeGateway
	stinger *domain.Playlist
}

func newOutcomeFixture(t *testing.T, user domain.User) *outcomeFixture {
	t.Helper()
	gateway := newFakeGateway()
	f := &outcomeFixture{
		ctx:     context.Background(),
		flags:   newMemFlags(),
		gateway: gateway,
	}
	f.stinger = gateway.addPlaylist(domain.CriticalSuccessName, domain.ModeManual, "fanfare", "trumpets")

	notifier := &quietNotifier{}
	settings := NewSettingsService(f.flags, notifier)
	playback := NewPlaybackService(gateway, NewDuckingController(gateway), notifier)
	f.engine = NewOutcomeEngine(playback, settings, user)

	mustSetting(t, f.flags, domain.SettingCriticalTracks, domain.OutcomeTracks{
		CriticalSuccessPlaylist: f.stinger.ID,
		CriticalSuccessSound:    domain.TrackToken(f.stinger.Sounds[1].ID),
	})
	return f
}

func TestOutcomeEngine_PlaysCriticalSuccess(t *testing.T) {
	f := newOutcomeFixture(t, gm)
	trumpets := soundAt(f.stinger, 1)
	f.stinger.Sounds[1].Repeat = true

	msg := domain.ChatMessage{ContentVisible: true, ID: "m1", Rolls: []domain.Roll{d20(20)}}
	require.NoError(t, f.engine.OnCheckResolved(f.ctx, msg))

	assert.Equal(t, []domain.SoundRef{trumpets}, f.gateway.playedRefs())
	repeat, set := f.gateway.repeats[trumpets]
	assert.True(t, set)
	assert.False(t, repeat, "stingers never repeat")
}

func TestOutcomeEngine_RandomTrack(t *testing.T) {
	f := newOutcomeFixture(t, gm)
	mustSetting(t, f.flags, domain.SettingCriticalTracks, domain.OutcomeTracks{
		CriticalSuccessPlaylist: f.stinger.ID,
		CriticalSuccessSound:    domain.TrackRandom,
	})

	msg := domain.ChatMessage{ContentVisible: true, Outcome: domain.OutcomeCriticalSuccess}
	require.NoError(t, f.engine.OnCheckResolved(f.ctx, msg))

	assert.Equal(t, []domain.SoundRef{soundAt(f.stinger, 0)}, f.gateway.playedRefs())
}

func TestOutcomeEngine_SilentSkips(t *testing.T) {
	crit := []domain.Roll{d20(20)}

	tests := []struct {
		name  string
		user  domain.User
		setup func(t *testing.T, f *outcomeFixture)
		msg   domain.ChatMessage
	}{
		{
			name: "feature disabled",
			user: gm,
			setup: func(t *testing.T, f *outcomeFixture) {
				mustSetting(t, f.flags, domain.SettingCriticalTracksEnable, false)
			},
			msg: domain.ChatMessage{ContentVisible: true, Rolls: crit},
		},
		{
			name: "hidden message",
			user: gm,
			msg:  domain.ChatMessage{Rolls: crit},
		},
		{
			name: "not GM",
			user: domain.User{Name: "player"},
			msg:  domain.ChatMessage{ContentVisible: true, Rolls: crit},
		},
		{
			name: "damage roll",
			user: gm,
			msg:  domain.ChatMessage{ContentVisible: true, ContextType: domain.DamageRollContext, Rolls: crit},
		},
		{
			name: "plain success",
			user: gm,
			msg:  domain.ChatMessage{ContentVisible: true, Outcome: domain.OutcomeSuccess},
		},
		{
			name: "no track for critical failure",
			user: gm,
			msg:  domain.ChatMessage{ContentVisible: true, Rolls: []domain.Roll{d20(1)}},
		},
		{
			name: "configured playlist is gone",
			user: gm,
			setup: func(t *testing.T, f *outcomeFixture) {
				f.gateway.removePlaylist(f.stinger.ID)
			},
			msg: domain.ChatMessage{ContentVisible: true, Rolls: crit},
		},
		{
			name: "playback fails",
			user: gm,
			setup: func(t *testing.T, f *outcomeFixture) {
				f.gateway.failPlay = true
			},
			msg: domain.ChatMessage{ContentVisible: true, Rolls: crit},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newOutcomeFixture(t, tt.user)
			if tt.setup != nil {
				tt.setup(t, f)
			}

			require.NoError(t, f.engine.OnCheckResolved(f.ctx, tt.msg))
			assert.Empty(t, f.gateway.playedRefs())
		})
	}
}
