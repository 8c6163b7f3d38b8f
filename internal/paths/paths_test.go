package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMaestroHome_UsesEnv(t *testing.T) {
	t.Setenv("MAESTRO_HOME", "/tmp/maestro-test")

	assert.Equal(t, "/tmp/maestro-test", GetMaestroHome())
	assert.Equal(t, "/tmp/maestro-test/maestro.db", GetDBPath())
	assert.Equal(t, "/tmp/maestro-test/settings.json", GetSettingsPath())
	assert.Equal(t, "/tmp/maestro-test/ssh", GetSSHDir())
}

func TestGetMaestroHome_DefaultsToHomeDir(t *testing.T) {
	t.Setenv("MAESTRO_HOME", "")
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(homeDir, ".maestro"), GetMaestroHome())
}

func TestExpandPath(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, homeDir, ExpandPath("~"))
	assert.Equal(t, filepath.Join(homeDir, "music"), ExpandPath("~/music"))
	assert.Equal(t, "/abs/path", ExpandPath("/abs/path"))
	assert.Equal(t, "", ExpandPath(""))
}
