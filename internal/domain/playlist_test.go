package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlaybackMode(t *testing.T) {
	tests := []struct {
		input    string
		expected PlaybackMode
	}{
		{"manual", ModeManual},
		{"sequential", ModeSequential},
		{"", ModeSequential},
		{"Shuffle", ModeShuffle},
		{"2", ModeSimultaneous},
		{"-1", ModeManual},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			mode, err := ParsePlaybackMode(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, mode)
		})
	}

	_, err := ParsePlaybackMode("bogus")
	assert.Error(t, err)
}

func TestPlaybackMode_SupportsLoop(t *testing.T) {
	assert.True(t, ModeSequential.SupportsLoop())
	assert.True(t, ModeShuffle.SupportsLoop())
	assert.False(t, ModeManual.SupportsLoop())
	assert.False(t, ModeSimultaneous.SupportsLoop())
}

func TestPlaylist_NaturalOrderSortsBySortThenName(t *testing.T) {
	p := Playlist{Sounds: []Sound{
		{ID: "c", Name: "Charlie", Sort: 2},
		{ID: "b", Name: "Bravo", Sort: 1},
		{ID: "a", Name: "Alpha", Sort: 1},
	}}

	assert.Equal(t, []string{"a", "b", "c"}, p.NaturalOrder())
}

func TestPlaylist_OrderUsesShuffleOrderOnlyInShuffleMode(t *testing.T) {
	p := Playlist{
		Mode:          ModeSequential,
		PlaybackOrder: []string{"c", "a", "b"},
		Sounds: []Sound{
			{ID: "a", Sort: 0},
			{ID: "b", Sort: 1},
			{ID: "c", Sort: 2},
		},
	}

	assert.Equal(t, []string{"a", "b", "c"}, p.Order())

	p.Mode = ModeShuffle
	assert.Equal(t, []string{"c", "a", "b"}, p.Order())
}

func TestPlaylist_SoundLookups(t *testing.T) {
	p := Playlist{Sounds: []Sound{{ID: "s1", Name: "Theme"}, {ID: "s2", Name: "Battle", Playing: true}}}

	s, ok := p.Sound("s2")
	require.True(t, ok)
	assert.Equal(t, "Battle", s.Name)

	s, ok = p.SoundByName("Theme")
	require.True(t, ok)
	assert.Equal(t, "s1", s.ID)

	_, ok = p.Sound("missing")
	assert.False(t, ok)

	assert.Len(t, p.PlayingSounds(), 1)
}

func TestTrackToken_IsSentinel(t *testing.T) {
	assert.True(t, TrackRandom.IsSentinel())
	assert.True(t, TrackPlayAll.IsSentinel())
	assert.False(t, TrackToken("abc123").IsSentinel())
}
