//go:build windows

package sound

import (
	"errors"
	"os"
)

// suspend is not available for console players on Windows
func suspend(p *os.Process) error {
	return errors.ErrUnsupported
}

// resume is not available for console players on Windows
func resume(p *os.Process) error {
	return errors.ErrUnsupported
}
