package harness

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertSuccess checks that maestro exited 0
func AssertSuccess(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.Zero(tb, result.ExitCode, "exit code %d\nstdout:\n%s\nstderr:\n%s",
		result.ExitCode, result.Stdout, result.Stderr)
}

// AssertFailure checks that maestro exited non-zero
func AssertFailure(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.NotZero(tb, result.ExitCode, "expected a failure\nstdout:\n%s", result.Stdout)
}

// AssertStdoutContains checks stdout for a substring
func AssertStdoutContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stdout, expected, "stdout:\n%s", result.Stdout)
}

// AssertStderrContains checks stderr for a substring
func AssertStderrContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stderr, expected, "stderr:\n%s", result.Stderr)
}

// Lines splits stdout into its non-blank lines
func Lines(result CommandResult) []string {
	var lines []string
	for _, l := range strings.Split(result.Stdout, "\n") {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
