package server

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"

	"github.com/renato0307/maestro/internal/logging"
)

// CommandRunner runs one command line sent over SSH, writing its output to out
type CommandRunner func(ctx context.Context, args []string, out io.Writer) error

// commandMiddleware runs `ssh host <command>` sessions and leaves the rest
// to the interactive middlewares
func (s *Server) commandMiddleware() wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			args := sess.Command()
			if len(args) == 0 || s.runCommand == nil {
				next(sess)
				return
			}

			logging.Logger.Info("Running remote command", "user", sess.User(), "args", args)
			if err := s.runCommand(sess.Context(), args, sess); err != nil {
				logging.Logger.Warn("Remote command failed", "args", args, "error", err)
				fmt.Fprintf(sess.Stderr(), "Error: %v\n", err)
				_ = sess.Exit(1)
				return
			}
			_ = sess.Exit(0)
		}
	}
}
