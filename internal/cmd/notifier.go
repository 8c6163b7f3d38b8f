package cmd

import (
	"fmt"
	"io"
	"sync"

	"github.com/renato0307/maestro/internal/logging"
	"github.com/renato0307/maestro/internal/ports"
	"github.com/renato0307/maestro/internal/theme"
)

// consoleNotifier prints transient messages to a terminal
type consoleNotifier struct {
	mu  sync.Mutex
	out io.Writer
}

var _ ports.Notifier = (*consoleNotifier)(nil)

func newConsoleNotifier(out io.Writer) *consoleNotifier {
	return &consoleNotifier{out: out}
}

func (n *consoleNotifier) Info(msg string) {
	logging.Logger.Info("Notification", "level", "info", "message", msg)
	n.print(theme.InfoStyle.Render("♪ " + msg))
}

func (n *consoleNotifier) Warn(msg string) {
	logging.Logger.Warn("Notification", "level", "warn", "message", msg)
	n.print(theme.WarnStyle.Render("! " + msg))
}

func (n *consoleNotifier) print(line string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintln(n.out, line)
}
