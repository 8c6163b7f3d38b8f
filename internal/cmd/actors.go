package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/renato0307/maestro/internal/logging"
)

// ActorsCmd manages actors
type ActorsCmd struct {
	Add  ActorsAddCmd  `cmd:"add" help:"Add an actor"`
	Del  ActorsDelCmd  `cmd:"del" help:"Delete an actor and its hype track"`
	List ActorsListCmd `cmd:"list" help:"List actors and their hype tracks" default:"1"`
}

// ActorsListCmd lists actors
type ActorsListCmd struct{}

// Run executes the list command
func (a *ActorsListCmd) Run(cli *CLI) error {
	ctx := cli.Context()
	c := cli.Container

	actors, err := c.Repo.ListActors(ctx)
	if err != nil {
		return err
	}
	if len(actors) == 0 {
		fmt.Fprintln(cli.Out(), "No actors")
		return nil
	}

	w := tabwriter.NewWriter(cli.Out(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPLAYLIST\tTRACK")
	for _, actor := range actors {
		playlist, track := "-", "-"
		res, err := c.Hype.ResolveAssignment(ctx, actor.ID)
		if err != nil {
			logging.Logger.Warn("Failed to resolve hype track", "actor", actor.ID, "error", err)
		}
		if res != nil {
			if p, err := c.Host.Playlist(ctx, res.PlaylistID); err == nil {
				playlist = p.Name
				track = describeTrack(p, res.Track)
			}
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", actor.ID, actor.Name, playlist, track)
	}
	return w.Flush()
}

// ActorsAddCmd adds an actor
type ActorsAddCmd struct {
	Name string `arg:"" help:"Name of the actor"`
}

// Run executes the add command
func (a *ActorsAddCmd) Run(cli *CLI) error {
	actor, err := cli.Container.Repo.AddActor(cli.Context(), a.Name)
	if err != nil {
		return err
	}
	logging.Logger.Info("Actor added", "id", actor.ID, "name", actor.Name)
	fmt.Fprintf(cli.Out(), "Added %s (%s)\n", actor.Name, actor.ID)
	return nil
}

// ActorsDelCmd deletes an actor
type ActorsDelCmd struct {
	Actor string `arg:"" help:"Actor id or name"`
}

// Run executes the del command
func (a *ActorsDelCmd) Run(cli *CLI) error {
	ctx := cli.Context()
	actor, err := findActor(ctx, cli.Container, a.Actor)
	if err != nil {
		return err
	}
	if err := cli.Container.Repo.DeleteActor(ctx, actor.ID); err != nil {
		return err
	}
	logging.Logger.Info("Actor deleted", "id", actor.ID, "name", actor.Name)
	fmt.Fprintf(cli.Out(), "Deleted %s\n", actor.Name)
	return nil
}
