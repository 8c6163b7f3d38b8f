package cmd

import (
	"fmt"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/renato0307/maestro/internal/domain"
	"github.com/renato0307/maestro/internal/logging"
	"github.com/renato0307/maestro/internal/paths"
)

// PlaylistsCmd manages playlists
type PlaylistsCmd struct {
	Add  PlaylistsAddCmd  `cmd:"add" help:"Create a playlist"`
	Del  PlaylistsDelCmd  `cmd:"del" help:"Delete a playlist and its sounds"`
	List PlaylistsListCmd `cmd:"list" help:"List playlists" default:"1"`
	Mode PlaylistsModeCmd `cmd:"mode" help:"Change the playback mode of a playlist"`
	Show PlaylistsShowCmd `cmd:"show" help:"List the sounds of a playlist"`
}

// PlaylistsListCmd lists playlists
type PlaylistsListCmd struct{}

// Run executes the list command
func (l *PlaylistsListCmd) Run(cli *CLI) error {
	ctx := cli.Context()
	playlists, err := cli.Container.Host.Playlists(ctx)
	if err != nil {
		return err
	}
	if len(playlists) == 0 {
		fmt.Fprintln(cli.Out(), "No playlists")
		return nil
	}

	w := tabwriter.NewWriter(cli.Out(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tMODE\tSOUNDS\tLOOP\tSTATE")
	for _, p := range playlists {
		loop := "-"
		if p.Mode.SupportsLoop() {
			enabled, err := cli.Container.Loop.Loop(ctx, p.ID)
			if err != nil {
				return err
			}
			loop = onOff(enabled)
		}
		state := "stopped"
		if p.Playing {
			state = "playing"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\n", p.ID, p.Name, p.Mode, len(p.Sounds), loop, state)
	}
	return w.Flush()
}

// PlaylistsShowCmd lists the sounds of a playlist
type PlaylistsShowCmd struct {
	Playlist string `arg:"" help:"Playlist id or name"`
}

// Run executes the show command
func (s *PlaylistsShowCmd) Run(cli *CLI) error {
	p, err := findPlaylist(cli.Context(), cli.Container, s.Playlist)
	if err != nil {
		return err
	}

	fmt.Fprintf(cli.Out(), "%s (%s)\n\n", p.Name, p.Mode)
	w := tabwriter.NewWriter(cli.Out(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tREPEAT\tPLAYING\tPATH")
	for _, id := range p.NaturalOrder() {
		sound, _ := p.Sound(id)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", sound.ID, sound.Name, onOff(sound.Repeat), yesNo(sound.Playing), sound.Path)
	}
	return w.Flush()
}

// PlaylistsAddCmd creates a playlist
type PlaylistsAddCmd struct {
	Mode string `help:"Playback mode: manual, sequential, shuffle or simultaneous" default:"sequential"`
	Name string `arg:"" help:"Name of the playlist"`
}

// Run executes the add command
func (a *PlaylistsAddCmd) Run(cli *CLI) error {
	mode, err := domain.ParsePlaybackMode(a.Mode)
	if err != nil {
		return err
	}
	p, err := cli.Container.Host.CreatePlaylist(cli.Context(), a.Name, mode)
	if err != nil {
		return err
	}
	logging.Logger.Info("Playlist created", "id", p.ID, "name", p.Name, "mode", p.Mode.String())
	fmt.Fprintf(cli.Out(), "Created %s (%s)\n", p.Name, p.ID)
	return nil
}

// PlaylistsDelCmd deletes a playlist
type PlaylistsDelCmd struct {
	Playlist string `arg:"" help:"Playlist id or name"`
}

// Run executes the del command
func (d *PlaylistsDelCmd) Run(cli *CLI) error {
	ctx := cli.Context()
	c := cli.Container
	p, err := findPlaylist(ctx, c, d.Playlist)
	if err != nil {
		return err
	}
	if err := c.Host.StopAll(ctx, p.ID); err != nil {
		logging.Logger.Warn("Failed to stop playlist before deleting it", "id", p.ID, "error", err)
	}
	if err := c.Repo.DeletePlaylist(ctx, p.ID); err != nil {
		return err
	}
	c.Hype.Reload()
	fmt.Fprintf(cli.Out(), "Deleted %s\n", p.Name)
	return nil
}

// PlaylistsModeCmd changes a playlist's playback mode
type PlaylistsModeCmd struct {
	Playlist string `arg:"" help:"Playlist id or name"`
	Mode     string `arg:"" help:"manual, sequential, shuffle or simultaneous"`
}

// Run executes the mode command
func (m *PlaylistsModeCmd) Run(cli *CLI) error {
	mode, err := domain.ParsePlaybackMode(m.Mode)
	if err != nil {
		return err
	}
	ctx := cli.Context()
	p, err := findPlaylist(ctx, cli.Container, m.Playlist)
	if err != nil {
		return err
	}
	if err := cli.Container.Repo.SetPlaylistMode(ctx, p.ID, mode); err != nil {
		return err
	}
	fmt.Fprintf(cli.Out(), "%s is now %s\n", p.Name, mode)
	return nil
}

// SoundsCmd manages the sounds of playlists
type SoundsCmd struct {
	Add    SoundsAddCmd    `cmd:"add" help:"Add a sound file to a playlist"`
	Del    SoundsDelCmd    `cmd:"del" help:"Remove a sound from a playlist"`
	Repeat SoundsRepeatCmd `cmd:"repeat" help:"Turn repeat on or off for a sound"`
}

// SoundsAddCmd adds a sound to a playlist
type SoundsAddCmd struct {
	Name     string `help:"Display name (defaults to the file name)"`
	Playlist string `arg:"" help:"Playlist id or name"`
	Path     string `arg:"" help:"Path of the audio file" type:"existingfile"`
	Repeat   bool   `help:"Repeat the sound until stopped"`
}

// Run executes the add command
func (a *SoundsAddCmd) Run(cli *CLI) error {
	ctx := cli.Context()
	p, err := findPlaylist(ctx, cli.Container, a.Playlist)
	if err != nil {
		return err
	}

	path, err := filepath.Abs(paths.ExpandPath(a.Path))
	if err != nil {
		return fmt.Errorf("invalid sound path: %w", err)
	}
	name := a.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	sound, err := cli.Container.Repo.AddSound(ctx, p.ID, domain.Sound{
		Name:   name,
		Path:   path,
		Repeat: a.Repeat,
	})
	if err != nil {
		return err
	}
	logging.Logger.Info("Sound added", "playlist_id", p.ID, "sound_id", sound.ID, "path", path)
	fmt.Fprintf(cli.Out(), "Added %s to %s (%s)\n", sound.Name, p.Name, domain.SoundRef{PlaylistID: p.ID, SoundID: sound.ID})
	return nil
}

// SoundsDelCmd removes a sound
type SoundsDelCmd struct {
	Playlist string `arg:"" help:"Playlist id or name"`
	Sound    string `arg:"" help:"Sound id or name"`
}

// Run executes the del command
func (d *SoundsDelCmd) Run(cli *CLI) error {
	ctx := cli.Context()
	p, err := findPlaylist(ctx, cli.Container, d.Playlist)
	if err != nil {
		return err
	}
	sound, err := findSound(p, d.Sound)
	if err != nil {
		return err
	}
	if err := cli.Container.Repo.DeleteSound(ctx, domain.SoundRef{PlaylistID: p.ID, SoundID: sound.ID}); err != nil {
		return err
	}
	fmt.Fprintf(cli.Out(), "Removed %s from %s\n", sound.Name, p.Name)
	return nil
}

// SoundsRepeatCmd toggles a sound's repeat flag
type SoundsRepeatCmd struct {
	Off      bool   `help:"Turn repeat off"`
	Playlist string `arg:"" help:"Playlist id or name"`
	Sound    string `arg:"" help:"Sound id or name"`
}

// Run executes the repeat command
func (r *SoundsRepeatCmd) Run(cli *CLI) error {
	ctx := cli.Context()
	p, err := findPlaylist(ctx, cli.Container, r.Playlist)
	if err != nil {
		return err
	}
	sound, err := findSound(p, r.Sound)
	if err != nil {
		return err
	}
	if err := cli.Container.Host.SetRepeat(ctx, domain.SoundRef{PlaylistID: p.ID, SoundID: sound.ID}, !r.Off); err != nil {
		return err
	}
	fmt.Fprintf(cli.Out(), "Repeat %s for %s\n", onOff(!r.Off), sound.Name)
	return nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
