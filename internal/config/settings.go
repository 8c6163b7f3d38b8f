package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"

	"github.com/renato0307/maestro/internal/paths"
)

// DefaultSSHPort is the port the serve command listens on when nothing else is configured
const DefaultSSHPort = 23235

// DefaultMaxLogFiles is the number of debug log files kept before rotation
const DefaultMaxLogFiles = 1000

// Settings represents the structure of ~/.maestro/settings.json
type Settings struct {
	Debug         *bool  `json:"debug,omitempty"`
	IsGM          *bool  `json:"is_gm,omitempty"`
	MaxLogFiles   *int   `json:"max_log_files,omitempty"`
	OtelEndpoint  string `json:"otel_endpoint,omitempty"`
	PlayerCommand string `json:"player_command,omitempty"`
	SSHHost       string `json:"ssh_host,omitempty"`
	SSHPort       *int   `json:"ssh_port,omitempty"`
	UserName      string `json:"user_name,omitempty"`
}

// Environment holds the MAESTRO_* overrides read from the process environment
type Environment struct {
	IsGM          *bool  `env:"MAESTRO_IS_GM"`
	OtelEndpoint  string `env:"MAESTRO_OTEL_ENDPOINT"`
	PlayerCommand string `env:"MAESTRO_PLAYER"`
	SSHPort       *int   `env:"MAESTRO_SSH_PORT"`
	UserName      string `env:"MAESTRO_USER"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadSettings loads settings from $MAESTRO_HOME/settings.json (or ~/.maestro/settings.json if not set)
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	path := paths.GetSettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if settings.PlayerCommand != "" {
		settings.PlayerCommand = paths.ExpandPath(settings.PlayerCommand)
	}

	return &settings, nil
}

// SaveSettings saves settings to $MAESTRO_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := paths.GetSettingsPath()
	if err := os.MkdirAll(paths.GetMaestroHome(), 0755); err != nil {
		return fmt.Errorf("failed to create maestro home: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

// Load reads settings.json and applies environment overrides on top of it.
// Environment values win over the file; CLI flags are applied later by the caller.
func Load() (*Settings, error) {
	settings, err := LoadSettings()
	if err != nil {
		return nil, err
	}

	var overrides Environment
	if err := ParseEnv(&overrides); err != nil {
		return nil, err
	}
	settings.Apply(overrides)

	return settings, nil
}

// Apply merges non-empty environment overrides into the settings
func (s *Settings) Apply(e Environment) {
	if e.IsGM != nil {
		s.IsGM = e.IsGM
	}
	if e.OtelEndpoint != "" {
		s.OtelEndpoint = e.OtelEndpoint
	}
	if e.PlayerCommand != "" {
		s.PlayerCommand = e.PlayerCommand
	}
	if e.SSHPort != nil {
		s.SSHPort = e.SSHPort
	}
	if e.UserName != "" {
		s.UserName = e.UserName
	}
}

// GM reports whether the local user acts as game master (default true)
func (s *Settings) GM() bool {
	if s.IsGM == nil {
		return true
	}
	return *s.IsGM
}

// Port returns the configured SSH port or DefaultSSHPort
func (s *Settings) Port() int {
	if s.SSHPort == nil || *s.SSHPort <= 0 {
		return DefaultSSHPort
	}
	return *s.SSHPort
}

// Host returns the configured SSH host or localhost
func (s *Settings) Host() string {
	if s.SSHHost == "" {
		return "localhost"
	}
	return s.SSHHost
}

// User returns the configured user name, falling back to $USER
func (s *Settings) User() string {
	if s.UserName != "" {
		return s.UserName
	}
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "gamemaster"
}

// LogFiles returns the configured number of kept log files
func (s *Settings) LogFiles() int {
	if s.MaxLogFiles == nil {
		return DefaultMaxLogFiles
	}
	return *s.MaxLogFiles
}
