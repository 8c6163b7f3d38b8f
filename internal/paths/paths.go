package paths

import (
	"os"
	"path/filepath"
)

// GetMaestroHome returns MAESTRO_HOME or ~/.maestro default
func GetMaestroHome() string {
	maestroHome := os.Getenv("MAESTRO_HOME")
	if maestroHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".maestro"
		}
		return filepath.Join(homeDir, ".maestro")
	}
	return ExpandPath(maestroHome)
}

// GetDBPath returns $MAESTRO_HOME/maestro.db
func GetDBPath() string {
	return filepath.Join(GetMaestroHome(), "maestro.db")
}

// GetSettingsPath returns $MAESTRO_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetMaestroHome(), "settings.json")
}

// GetSSHDir returns $MAESTRO_HOME/ssh, where the server host key lives
func GetSSHDir() string {
	return filepath.Join(GetMaestroHome(), "ssh")
}

// GetMacrosDir returns $MAESTRO_HOME/macros
func GetMacrosDir() string {
	return filepath.Join(GetMaestroHome(), "macros")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
