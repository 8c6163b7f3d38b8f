package server

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer_CreatesSSHDir(t *testing.T) {
	sshDir := filepath.Join(t.TempDir(), "ssh")

	s, err := NewServer("127.0.0.1", 0, sshDir, filepath.Join(sshDir, "authorized_keys"), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:0", s.Address())

	info, err := os.Stat(sshDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestServer_RunStopsWithContext(t *testing.T) {
	sshDir := t.TempDir()
	s, err := NewServer("127.0.0.1", 0, sshDir, filepath.Join(sshDir, "authorized_keys"), nil, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestEndSession_Releases(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	released := make(chan struct{})

	go endSession(ctx, "gm@test", time.Now(), func() { close(released) })
	cancel()

	select {
	case <-released:
	case <-time.After(time.Second):
		t.Fatal("model was not released")
	}
}

func TestErrorModel(t *testing.T) {
	m := errorModel{err: errors.New("database is locked")}

	assert.Nil(t, m.Init())
	assert.Equal(t, "Error: database is locked\n", m.View())
	_, cmd := m.Update(nil)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
