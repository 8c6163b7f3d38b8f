package harness

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

const defaultTimeout = 30 * time.Second

var (
	binary     string
	binaryErr  error
	binaryOnce sync.Once
)

// CommandResult holds what a maestro invocation printed and how it exited.
// ExitCode is -1 when the process timed out or could not start.
type CommandResult struct {
	ExitCode int
	Stderr   string
	Stdout   string
}

// BuildBinary compiles ./cmd into a temp directory, once per test run
func BuildBinary() (string, error) {
	binaryOnce.Do(func() {
		root, err := moduleRoot()
		if err != nil {
			binaryErr = err
			return
		}
		dir, err := os.MkdirTemp("", "maestro-integration-*")
		if err != nil {
			binaryErr = err
			return
		}
		binary = filepath.Join(dir, "maestro")

		build := exec.Command("go", "build", "-o", binary, "./cmd")
		build.Dir = root
		build.Stdout = os.Stdout
		build.Stderr = os.Stderr
		binaryErr = build.Run()
	})
	return binary, binaryErr
}

// CleanupBinary removes the directory BuildBinary created
func CleanupBinary() {
	if binary == "" {
		return
	}
	_ = os.RemoveAll(filepath.Dir(binary))
}

type runConfig struct {
	stdin   io.Reader
	timeout time.Duration
}

// RunCommand runs maestro with args inside env
func RunCommand(tb testing.TB, env *TestEnvironment, args ...string) CommandResult {
	tb.Helper()
	return run(tb, env, runConfig{timeout: defaultTimeout}, args)
}

// RunCommandWithInput runs maestro with input on stdin, the way a bridge
// script feeds the daemon
func RunCommandWithInput(tb testing.TB, env *TestEnvironment, input string, args ...string) CommandResult {
	tb.Helper()
	return run(tb, env, runConfig{stdin: strings.NewReader(input), timeout: defaultTimeout}, args)
}

func run(tb testing.TB, env *TestEnvironment, cfg runConfig, args []string) CommandResult {
	tb.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	proc := exec.CommandContext(ctx, binary, args...)
	proc.Env = env.Environ()
	proc.Stdin = cfg.stdin
	proc.Stdout = &stdout
	proc.Stderr = &stderr

	result := CommandResult{}
	err := proc.Run()

	var exitErr *exec.ExitError
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		tb.Logf("maestro %v timed out after %v", args, cfg.timeout)
		result.ExitCode = -1
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	case err != nil:
		tb.Logf("maestro %v did not run: %v", args, err)
		result.ExitCode = -1
	}

	result.Stdout = stdout.String()
	result.Stderr = stderr.String()
	return result
}

func moduleRoot() (string, error) {
	out, err := exec.Command("go", "env", "GOMOD").Output()
	if err != nil {
		return "", err
	}
	gomod := strings.TrimSpace(string(out))
	if gomod == "" || gomod == os.DevNull {
		return "", errors.New("not inside the maestro module")
	}
	return filepath.Dir(gomod), nil
}
