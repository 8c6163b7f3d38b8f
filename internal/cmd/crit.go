package cmd

import (
	"fmt"

	"github.com/renato0307/maestro/internal/domain"
	"github.com/renato0307/maestro/internal/ui"
)

// CritCmd manages the critical success and failure stingers
type CritCmd struct {
	Configure CritConfigureCmd `cmd:"configure" help:"Pick the stingers in a form"`
	Set       CritSetCmd       `cmd:"set" help:"Set the stinger of one outcome"`
	Show      CritShowCmd      `cmd:"show" help:"Show the configured stingers" default:"1"`
}

// CritShowCmd prints the configured stingers
type CritShowCmd struct{}

// Run executes the show command
func (s *CritShowCmd) Run(cli *CLI) error {
	ctx := cli.Context()
	c := cli.Container
	tracks, err := c.Settings.OutcomeTracks(ctx)
	if err != nil {
		return err
	}

	for _, category := range []domain.OutcomeCategory{domain.OutcomeCriticalSuccess, domain.OutcomeCriticalFailure} {
		playlistID, track, ok := tracks.For(category)
		if !ok {
			fmt.Fprintf(cli.Out(), "%s: -\n", category)
			continue
		}
		p, err := c.Host.Playlist(ctx, playlistID)
		if err != nil {
			fmt.Fprintf(cli.Out(), "%s: %s (missing playlist %s)\n", category, track, playlistID)
			continue
		}
		fmt.Fprintf(cli.Out(), "%s: %s from %s\n", category, describeTrack(p, track), p.Name)
	}
	return nil
}

// CritSetCmd sets the stinger of one outcome
type CritSetCmd struct {
	Outcome  string `arg:"" help:"success or failure" enum:"success,failure"`
	Playlist string `arg:"" help:"Playlist id or name, or none to clear"`
	Track    string `arg:"" optional:"" help:"Sound id or name, random-track or play-all" default:"random-track"`
}

// Run executes the set command
func (s *CritSetCmd) Run(cli *CLI) error {
	ctx := cli.Context()
	c := cli.Container
	tracks, err := c.Settings.OutcomeTracks(ctx)
	if err != nil {
		return err
	}

	var playlistID string
	var token domain.TrackToken
	if s.Playlist != "none" {
		p, err := findPlaylist(ctx, c, s.Playlist)
		if err != nil {
			return err
		}
		if token, err = trackToken(p, s.Track); err != nil {
			return err
		}
		playlistID = p.ID
	}

	if s.Outcome == "success" {
		tracks.CriticalSuccessPlaylist, tracks.CriticalSuccessSound = playlistID, token
	} else {
		tracks.CriticalFailurePlaylist, tracks.CriticalFailureSound = playlistID, token
	}
	return c.Settings.SaveOutcomeTracks(ctx, tracks)
}

// CritConfigureCmd opens the critical tracks form
type CritConfigureCmd struct{}

// Run executes the configure command
func (f *CritConfigureCmd) Run(cli *CLI) error {
	if cli.remote {
		return errRemoteForm
	}
	form, err := ui.NewCriticalForm(cli.Context(), cli.Container.Settings, cli.Container.Host)
	if err != nil {
		return err
	}
	if err := runDialog(cli, "Critical success and failure tracks", form); err != nil {
		return err
	}
	return form.Result().Error
}
