package cmd

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/maestro/internal/adapters/ingest"
	"github.com/renato0307/maestro/internal/logging"
	"github.com/renato0307/maestro/internal/ui"
)

const activityBuffer = 64

// WatchCmd shows the playlists and playback activity of this process.
// With --inbox it also follows an event file, so one terminal both cues and watches.
type WatchCmd struct {
	Inbox string `help:"Follow this JSON-lines event file while watching" type:"path"`
}

// Run executes the watch command
func (w *WatchCmd) Run(cli *CLI) error {
	if cli.remote {
		return errRemoteForm
	}

	ctx, cancel := context.WithCancel(cli.Context())
	defer cancel()

	c := cli.Container
	if w.Inbox != "" {
		if _, err := c.Bootstrapper.EnsurePlaylists(ctx); err != nil {
			logging.Logger.Warn("Failed to create playlists", "error", err)
		}
		follower := ingest.NewFollower(w.Inbox, ingest.NewPump(c.Conductor, io.Discard))
		go func() {
			if err := follower.Run(ctx); err != nil {
				logging.Logger.Error("Inbox follower stopped", "path", w.Inbox, "error", err)
			}
		}()
	}

	model, release := c.WatchModel(ctx, cli.Debug)
	defer release()

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

// WatchModel builds a watch screen fed by this container's activity
func (c *Container) WatchModel(ctx context.Context, debug bool) (tea.Model, func()) {
	activity, unsubscribe := c.Host.Subscribe(activityBuffer)
	return ui.NewWatchModel(ctx, c.Host, c.Playback, c.Loop, activity, debug), unsubscribe
}
