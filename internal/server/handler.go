package server

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"

	"github.com/renato0307/maestro/internal/logging"
)

// ModelFactory builds the TUI of one SSH session. The returned function
// releases what the model holds and runs once the session ends.
type ModelFactory func(ctx context.Context) (tea.Model, func(), error)

// teaHandler creates a Bubbletea model for each SSH session
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	sessionID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	model, release, err := s.newModel(sess.Context())
	if err != nil {
		logging.Logger.Error("Failed to create model for SSH session", "error", err, "session_id", sessionID)
		return errorModel{err}, nil
	}

	go endSession(sess.Context(), sessionID, time.Now(), release)

	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

// endSession waits for the session to close and releases its model
func endSession(ctx context.Context, sessionID string, start time.Time, release func()) {
	<-ctx.Done()
	if release != nil {
		release()
	}
	logging.Logger.Info("SSH session ended",
		"session_id", sessionID,
		"duration", time.Since(start).String())
}

// errorModel shows an error and quits on the first message
type errorModel struct {
	err error
}

func (e errorModel) Init() tea.Cmd {
	return nil
}

func (e errorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return e, tea.Quit
}

func (e errorModel) View() string {
	return fmt.Sprintf("Error: %v\n", e.err)
}
