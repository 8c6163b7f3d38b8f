package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/renato0307/maestro/internal/adapters/ingest"
	"github.com/renato0307/maestro/internal/logging"
	"github.com/renato0307/maestro/internal/paths"
	"github.com/renato0307/maestro/internal/server"
)

// ServeCmd runs the cue daemon: it reads host events, plays cues and answers
// pre-update events with verdicts. The SSH server offers the watch screen and
// remote commands.
type ServeCmd struct {
	AuthorizedKeys string `help:"authorized_keys file for SSH clients (default ~/.ssh/authorized_keys)" type:"path"`
	Host           string `help:"SSH listen host (overrides settings)"`
	Inbox          string `help:"Follow this JSON-lines event file instead of reading stdin" type:"path"`
	NoSSH          bool   `help:"Do not start the SSH server" name:"no-ssh"`
	Port           int    `help:"SSH listen port (overrides settings)"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	if cli.remote {
		return errRemoteServe
	}

	ctx, stop := signal.NotifyContext(cli.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := cli.Container
	created, err := c.Bootstrapper.EnsurePlaylists(ctx)
	if err != nil {
		logging.Logger.Warn("Failed to create playlists", "error", err)
	}
	for _, name := range created {
		c.Notifier.Info(fmt.Sprintf("Created playlist %s", name))
	}

	g, gctx := errgroup.WithContext(ctx)

	pump := ingest.NewPump(c.Conductor, os.Stdout)
	if s.Inbox != "" {
		logging.Logger.Info("Following event inbox", "path", s.Inbox)
		g.Go(func() error {
			return ingest.NewFollower(s.Inbox, pump).Run(gctx)
		})
	} else {
		logging.Logger.Info("Reading events from stdin")
		// Reads on stdin cannot be cancelled; the bridge closing stdin ends the daemon
		go func() {
			defer stop()
			if err := pump.Run(gctx, os.Stdin); err != nil && !errors.Is(err, context.Canceled) {
				logging.Logger.Error("Event reader stopped", "error", err)
			}
		}()
		g.Go(func() error {
			<-gctx.Done()
			return nil
		})
	}

	if !s.NoSSH {
		srv, err := s.newServer(cli)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "SSH server listening on %s\n", srv.Address())
		g.Go(func() error {
			return srv.Run(gctx)
		})
	}

	err = g.Wait()
	logging.Logger.Info("Daemon stopped", "error", err)
	return err
}

func (s *ServeCmd) newServer(cli *CLI) (*server.Server, error) {
	host := s.Host
	port := s.Port
	if cli.settings != nil {
		if host == "" {
			host = cli.settings.Host()
		}
		if port == 0 {
			port = cli.settings.Port()
		}
	}
	if host == "" {
		host = "localhost"
	}

	authorizedKeys := s.AuthorizedKeys
	if authorizedKeys == "" {
		authorizedKeys = server.DefaultAuthorizedKeys()
	}

	c := cli.Container
	return server.NewServer(host, port, paths.GetSSHDir(), authorizedKeys,
		func(ctx context.Context) (tea.Model, func(), error) {
			model, release := c.WatchModel(ctx, false)
			return model, release, nil
		},
		c.RunRemote,
	)
}
