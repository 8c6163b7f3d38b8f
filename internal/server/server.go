package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	wishlogging "github.com/charmbracelet/wish/logging"

	"github.com/renato0307/maestro/internal/logging"
)

const shutdownTimeout = 30 * time.Second

// Server serves the watch screen over SSH
type Server struct {
	address        string
	authorizedKeys string
	newModel       ModelFactory
	runCommand     CommandRunner
	wishServer     *ssh.Server
}

// NewServer creates the SSH server. The host key lives in sshDir and is
// created on first start; clients must be listed in authorizedKeys.
// Sessions with a command run it through runCommand, interactive sessions
// get the model built by newModel.
func NewServer(
	host string,
	port int,
	sshDir string,
	authorizedKeys string,
	newModel ModelFactory,
	runCommand CommandRunner,
) (*Server, error) {
	if err := os.MkdirAll(sshDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create SSH directory: %w", err)
	}

	s := &Server{
		address:        net.JoinHostPort(host, strconv.Itoa(port)),
		authorizedKeys: authorizedKeys,
		newModel:       newModel,
		runCommand:     runCommand,
	}

	// Middleware executes last to first
	wishServer, err := wish.NewServer(
		wish.WithAddress(s.address),
		wish.WithHostKeyPath(filepath.Join(sshDir, "id_ed25519")),
		wish.WithPublicKeyAuth(s.authorize),
		wish.WithMiddleware(
			bubbletea.Middleware(s.teaHandler),
			activeterm.Middleware(),
			s.commandMiddleware(),
			wishlogging.Middleware(),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH server: %w", err)
	}

	s.wishServer = wishServer
	return s, nil
}

// DefaultAuthorizedKeys returns ~/.ssh/authorized_keys
func DefaultAuthorizedKeys() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".ssh", "authorized_keys")
	}
	return filepath.Join(home, ".ssh", "authorized_keys")
}

// Address returns the host:port the server listens on
func (s *Server) Address() string {
	return s.address
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	logging.Logger.Info("Starting SSH server", "address", s.address)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.wishServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("SSH server error: %w", err)
	case <-ctx.Done():
	}

	logging.Logger.Info("Shutting down SSH server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.wishServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown SSH server: %w", err)
	}

	logging.Logger.Info("SSH server stopped")
	return nil
}
