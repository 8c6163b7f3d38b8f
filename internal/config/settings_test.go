package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("MAESTRO_HOME", t.TempDir())

	settings, err := LoadSettings()

	require.NoError(t, err)
	assert.True(t, settings.GM())
	assert.Equal(t, DefaultSSHPort, settings.Port())
	assert.Equal(t, "localhost", settings.Host())
	assert.Equal(t, DefaultMaxLogFiles, settings.LogFiles())
}

func TestLoadSettings_InvalidJSON(t *testing.T) {
	home := t.TempDir()
	t.Setenv("MAESTRO_HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte("{nope"), 0644))

	_, err := LoadSettings()

	assert.ErrorContains(t, err, "invalid settings.json")
}

func TestSaveAndLoadSettings(t *testing.T) {
	t.Setenv("MAESTRO_HOME", filepath.Join(t.TempDir(), "home"))
	gm := false
	port := 2222

	require.NoError(t, SaveSettings(&Settings{IsGM: &gm, SSHPort: &port, UserName: "alice"}))

	settings, err := LoadSettings()
	require.NoError(t, err)
	assert.False(t, settings.GM())
	assert.Equal(t, 2222, settings.Port())
	assert.Equal(t, "alice", settings.User())
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("MAESTRO_HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"),
		[]byte(`{"user_name":"alice","is_gm":true,"ssh_port":2222}`), 0644))
	t.Setenv("MAESTRO_USER", "bob")
	t.Setenv("MAESTRO_IS_GM", "false")

	settings, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "bob", settings.User())
	assert.False(t, settings.GM())
	assert.Equal(t, 2222, settings.Port())
}

func TestLoad_InvalidEnvironmentValue(t *testing.T) {
	t.Setenv("MAESTRO_HOME", t.TempDir())
	t.Setenv("MAESTRO_SSH_PORT", "not-a-number")

	_, err := Load()

	assert.ErrorContains(t, err, "parse env")
}

func TestGetSettingsExample_CoversEveryField(t *testing.T) {
	example := GetSettingsExample()

	for _, key := range []string{"debug", "is_gm", "max_log_files", "otel_endpoint", "player_command", "ssh_host", "ssh_port", "user_name"} {
		assert.Contains(t, example, key)
	}
	assert.Equal(t, DefaultSSHPort, example["ssh_port"])
}
