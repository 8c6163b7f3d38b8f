package cmd

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/maestro/internal/domain"
	"github.com/renato0307/maestro/internal/services"
	"github.com/renato0307/maestro/internal/ui"
)

// HypeCmd manages hype tracks
type HypeCmd struct {
	Configure HypeConfigureCmd `cmd:"configure" help:"Pick an actor's hype track in a form"`
	Get       HypeGetCmd       `cmd:"get" help:"Show the hype track of an actor"`
	Play      HypePlayCmd      `cmd:"play" help:"Play the hype track of an actor now"`
	Set       HypeSetCmd       `cmd:"set" help:"Set the hype track of an actor"`
}

// HypeGetCmd shows an actor's hype track
type HypeGetCmd struct {
	Actor string `arg:"" help:"Actor id or name"`
}

// Run executes the get command
func (g *HypeGetCmd) Run(cli *CLI) error {
	ctx := cli.Context()
	c := cli.Container
	actor, err := findActor(ctx, c, g.Actor)
	if err != nil {
		return err
	}

	res, err := c.Hype.ResolveAssignment(ctx, actor.ID)
	if err != nil {
		return err
	}
	if res == nil {
		fmt.Fprintf(cli.Out(), "%s has no hype track\n", actor.Name)
		return nil
	}

	p, err := c.Host.Playlist(ctx, res.PlaylistID)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.Out(), "%s: %s from %s\n", actor.Name, describeTrack(p, res.Track), p.Name)
	return nil
}

// HypeSetCmd sets an actor's hype track
type HypeSetCmd struct {
	Actor    string `arg:"" help:"Actor id or name"`
	Playlist string `help:"Playlist id or name (defaults to the hype playlist)" short:"p"`
	Track    string `arg:"" help:"Sound id or name, random-track, play-all, or empty to clear"`
}

// Run executes the set command
func (s *HypeSetCmd) Run(cli *CLI) error {
	ctx := cli.Context()
	c := cli.Container
	actor, err := findActor(ctx, c, s.Actor)
	if err != nil {
		return err
	}

	var p *domain.Playlist
	if s.Playlist != "" {
		if p, err = findPlaylist(ctx, c, s.Playlist); err != nil {
			return err
		}
	} else if p, err = c.Hype.HypePlaylist(ctx); err != nil {
		return err
	}

	token, err := trackToken(p, s.Track)
	if err != nil {
		return err
	}

	var playlistID string
	if p != nil {
		playlistID = p.ID
	}
	return c.Hype.SetAssignment(ctx, actor.ID, playlistID, token)
}

// HypePlayCmd plays an actor's hype track on demand
type HypePlayCmd struct {
	NoDuck bool   `help:"Keep other sounds playing"`
	Quiet  bool   `help:"Do not warn when nothing can be played" short:"q"`
	Target string `arg:"" help:"Actor id or name"`
}

// Run executes the play command
func (p *HypePlayCmd) Run(cli *CLI) error {
	err := cli.Container.Hype.PlayFor(cli.Context(), p.Target, services.PlayForOptions{
		DuckOthers:    !p.NoDuck,
		WarnIfMissing: !p.Quiet,
	})
	if err != nil {
		if p.Quiet && (errors.Is(err, domain.ErrNoAssignment) || errors.Is(err, domain.ErrPlaylistNotFound)) {
			return nil
		}
		return err
	}
	return waitForSilence(cli)
}

// HypeConfigureCmd opens the hype assignment form
type HypeConfigureCmd struct {
	Actor string `arg:"" help:"Actor id or name"`
}

// Run executes the configure command
func (h *HypeConfigureCmd) Run(cli *CLI) error {
	if cli.remote {
		return errRemoteForm
	}
	ctx := cli.Context()
	actor, err := findActor(ctx, cli.Container, h.Actor)
	if err != nil {
		return err
	}

	form, err := ui.NewHypeForm(ctx, cli.Container.Hype, actor.ID)
	if err != nil {
		return err
	}
	if err := runDialog(cli, "Hype track of "+actor.Name, form); err != nil {
		return err
	}
	return form.Result().Error
}

// runDialog shows a form until it completes
func runDialog(cli *CLI, title string, form tea.Model) error {
	p := tea.NewProgram(ui.NewDialog(title, form, cli.Debug))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running form: %w", err)
	}
	return nil
}
