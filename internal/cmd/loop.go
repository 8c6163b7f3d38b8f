package cmd

import (
	"fmt"
	"text/tabwriter"
)

// LoopCmd toggles whether playlists start over after their last sound
type LoopCmd struct {
	Off    LoopOffCmd    `cmd:"off" help:"Stop a playlist after its last sound"`
	On     LoopOnCmd     `cmd:"on" help:"Start a playlist over after its last sound"`
	Status LoopStatusCmd `cmd:"status" help:"Show the loop state of every playlist" default:"1"`
}

// LoopOnCmd turns loop on
type LoopOnCmd struct {
	Playlist string `arg:"" help:"Playlist id or name"`
}

// Run executes the on command
func (l *LoopOnCmd) Run(cli *CLI) error {
	return setLoop(cli, l.Playlist, true)
}

// LoopOffCmd turns loop off
type LoopOffCmd struct {
	Playlist string `arg:"" help:"Playlist id or name"`
}

// Run executes the off command
func (l *LoopOffCmd) Run(cli *CLI) error {
	return setLoop(cli, l.Playlist, false)
}

func setLoop(cli *CLI, target string, enabled bool) error {
	ctx := cli.Context()
	p, err := findPlaylist(ctx, cli.Container, target)
	if err != nil {
		return err
	}
	return cli.Container.Loop.SetLoop(ctx, p.ID, enabled)
}

// LoopStatusCmd lists the loop state of playlists that can loop
type LoopStatusCmd struct{}

// Run executes the status command
func (l *LoopStatusCmd) Run(cli *CLI) error {
	ctx := cli.Context()
	playlists, err := cli.Container.Host.Playlists(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cli.Out(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tMODE\tLOOP")
	for _, p := range playlists {
		loop := "n/a"
		if p.Mode.SupportsLoop() {
			enabled, err := cli.Container.Loop.Loop(ctx, p.ID)
			if err != nil {
				return err
			}
			loop = onOff(enabled)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", p.Name, p.Mode, loop)
	}
	return w.Flush()
}
