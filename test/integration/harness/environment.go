package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated test environment with its own MAESTRO_HOME.
type TestEnvironment struct {
	MaestroHome string
	extraEnv    map[string]string
	tb          testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp MAESTRO_HOME.
// The temp directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	maestroHome := tb.TempDir()
	if err := os.MkdirAll(filepath.Join(maestroHome, "macros"), 0755); err != nil {
		tb.Fatalf("Failed to create macros directory: %v", err)
	}

	return &TestEnvironment{
		MaestroHome: maestroHome,
		extraEnv:    make(map[string]string),
		tb:          tb,
	}
}

// Environ returns environment variables configured for test isolation.
// It drops inherited MAESTRO_* variables before setting its own.
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+3+len(e.extraEnv))

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "MAESTRO_") {
			continue
		}
		if _, ok := e.extraEnv[key]; ok {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"MAESTRO_HOME="+e.MaestroHome,
		"MAESTRO_DEBUG=",
		"MAESTRO_IS_GM=true",
	)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	e.extraEnv[key] = value
}

// WriteMacro writes a tengo macro into the macros directory.
func (e *TestEnvironment) WriteMacro(name, source string) {
	e.tb.Helper()
	path := filepath.Join(e.MaestroHome, "macros", name+".tengo")
	if err := os.WriteFile(path, []byte(source), 0644); err != nil {
		e.tb.Fatalf("Failed to write macro %s: %v", name, err)
	}
}

// AudioFile creates an empty audio file for sounds to point at.
func (e *TestEnvironment) AudioFile(name string) string {
	e.tb.Helper()
	path := filepath.Join(e.tb.TempDir(), name)
	if err := os.WriteFile(path, nil, 0644); err != nil {
		e.tb.Fatalf("Failed to create audio file %s: %v", name, err)
	}
	return path
}
