package cmd

import (
	"fmt"
)

// PauseCmd pauses sounds
type PauseCmd struct {
	Targets []string `arg:"" optional:"" help:"Sound names, paths or playlist/sound refs (everything when empty)"`
}

// Run executes the pause command
func (p *PauseCmd) Run(cli *CLI) error {
	ctx := cli.Context()
	c := cli.Container

	if len(p.Targets) == 0 {
		paused := c.Playback.PauseAll(ctx)
		for _, ref := range paused {
			fmt.Fprintln(cli.Out(), ref)
		}
		return nil
	}

	paused, err := c.Playback.PauseSounds(ctx, p.Targets)
	if err != nil {
		return err
	}
	for _, ref := range paused {
		fmt.Fprintln(cli.Out(), ref)
	}
	return nil
}

// ResumeCmd resumes paused sounds
type ResumeCmd struct {
	Refs []string `arg:"" help:"playlist/sound refs, as printed by pause"`
}

// Run executes the resume command
func (r *ResumeCmd) Run(cli *CLI) error {
	refs, err := parseRefs(r.Refs)
	if err != nil {
		return err
	}
	cli.Container.Playback.ResumeSounds(cli.Context(), refs)
	return nil
}

// PlayCmd plays one sound by name
type PlayCmd struct {
	Name     string `arg:"" help:"Sound name"`
	Playlist string `help:"Only look in this playlist" short:"p"`
}

// Run executes the play command
func (p *PlayCmd) Run(cli *CLI) error {
	handle, err := cli.Container.Playback.PlaySoundByName(cli.Context(), p.Name, p.Playlist)
	if err != nil {
		return err
	}
	fmt.Fprintln(cli.Out(), handle.Sound())
	return waitForSilence(cli)
}
