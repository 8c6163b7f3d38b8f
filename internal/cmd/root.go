package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/renato0307/maestro/internal/config"
	"github.com/renato0307/maestro/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version        kong.VersionFlag `help:"Show version information"`
	Debug          bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile      string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles    int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	Silent         bool             `help:"Do not play audio; every sound ends after --silent-duration"`
	SilentDuration time.Duration    `help:"How long silent sounds last" default:"3s"`

	Serve     ServeCmd     `cmd:"" help:"Run the cue daemon (default)" default:"1"`
	Watch     WatchCmd     `cmd:"" help:"Show playlists and playback activity"`
	Actors    ActorsCmd    `cmd:"" help:"Manage actors (list, add, del)"`
	Playlists PlaylistsCmd `cmd:"" help:"Manage playlists (list, add, del, mode)"`
	Sounds    SoundsCmd    `cmd:"" help:"Manage sounds (add, del, repeat)"`
	Hype      HypeCmd      `cmd:"" help:"Hype tracks (get, set, play, configure)"`
	Crit      CritCmd      `cmd:"" help:"Critical success and failure tracks (show, set, configure)"`
	Loop      LoopCmd      `cmd:"" help:"Loop playlists (on, off, status)"`
	Pause     PauseCmd     `cmd:"" help:"Pause sounds by name, path or playlist/sound ref"`
	Resume    ResumeCmd    `cmd:"" help:"Resume sounds by playlist/sound ref"`
	Play      PlayCmd      `cmd:"" help:"Play a sound by name"`
	Macro     MacroCmd     `cmd:"" help:"Run tengo macros (list, run)"`
	Settings  SettingsCmd  `cmd:"" help:"Manage settings (meta, show, set)"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	ctx       context.Context  `kong:"-"`
	out       io.Writer        `kong:"-"`
	remote    bool             `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// Context is the context commands run under
func (c *CLI) Context() context.Context {
	if c.ctx == nil {
		return context.Background()
	}
	return c.ctx
}

// Out is where commands print their results
func (c *CLI) Out() io.Writer {
	if c.out == nil {
		return os.Stdout
	}
	return c.out
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Remote commands run inside the daemon, which is already set up
	if c.remote {
		return nil
	}

	// Precedence: CLI flags > env vars > settings.json > defaults.
	// Only apply a setting if the flag is at its default and no env var is set.
	if c.settings != nil {
		if c.MaxLogFiles == config.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("MAESTRO_MAX_LOG_FILES"); !hasEnv {
				c.MaxLogFiles = c.settings.LogFiles()
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("MAESTRO_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Child processes inherit the debug settings and append to the same log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("MAESTRO_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("MAESTRO_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != config.DefaultMaxLogFiles {
		os.Setenv("MAESTRO_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	// Container is created after logging so gorm's logger has somewhere to write
	settings := c.settings
	if settings == nil {
		settings = &config.Settings{}
	}
	container, err := NewContainer(settings, ContainerOptions{
		Silent:         c.Silent,
		SilentDuration: c.SilentDuration,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil && !c.remote {
		return c.Container.Close()
	}
	return nil
}
