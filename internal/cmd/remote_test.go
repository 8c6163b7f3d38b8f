package cmd

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/maestro/internal/config"
)

func newTestContainer(t *testing.T) *Container {
	t.Helper()
	t.Setenv("MAESTRO_HOME", t.TempDir())

	c, err := NewContainer(&config.Settings{}, ContainerOptions{
		Silent:         true,
		SilentDuration: 10 * time.Millisecond,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, c.Close())
	})
	return c
}

func runRemote(t *testing.T, c *Container, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := c.RunRemote(context.Background(), args, &out)
	return out.String(), err
}

func TestRunRemote_Commands(t *testing.T) {
	c := newTestContainer(t)

	out, err := runRemote(t, c, "actors", "add", "Valeros")
	require.NoError(t, err)
	assert.Contains(t, out, "Added Valeros")

	out, err = runRemote(t, c, "actors", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Valeros")

	out, err = runRemote(t, c, "playlists", "add", "Themes", "--mode", "manual")
	require.NoError(t, err)
	assert.Contains(t, out, "Created Themes")

	out, err = runRemote(t, c, "loop", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Themes")
	assert.Contains(t, out, "n/a")

	out, err = runRemote(t, c, "hype", "get", "Valeros")
	require.NoError(t, err)
	assert.Contains(t, out, "Valeros has no hype track")
}

func TestRunRemote_Refusals(t *testing.T) {
	c := newTestContainer(t)

	_, err := runRemote(t, c)
	assert.ErrorIs(t, err, errRemoteServe)

	_, err = runRemote(t, c, "crit", "configure")
	assert.ErrorIs(t, err, errRemoteForm)

	_, err = runRemote(t, c, "watch")
	assert.ErrorIs(t, err, errRemoteForm)

	_, err = runRemote(t, c, "no-such-command")
	assert.Error(t, err)
}

func TestRunRemote_HelpWritesToSession(t *testing.T) {
	c := newTestContainer(t)

	out, err := runRemote(t, c, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "maestro")
	assert.Contains(t, out, "playlists")
}

func TestRunRemote_PlayUnknownSound(t *testing.T) {
	c := newTestContainer(t)
	_, err := runRemote(t, c, "playlists", "add", "Themes", "--mode", "manual")
	require.NoError(t, err)

	_, err = runRemote(t, c, "play", "Fanfare")
	assert.Error(t, err, "unknown sounds are reported")
}
