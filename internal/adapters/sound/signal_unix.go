//go:build !windows

package sound

import (
	"os"

	"golang.org/x/sys/unix"
)

// suspend stops the player process in place
func suspend(p *os.Process) error {
	return unix.Kill(p.Pid, unix.SIGSTOP)
}

// resume continues a stopped player process
func resume(p *os.Process) error {
	return unix.Kill(p.Pid, unix.SIGCONT)
}
