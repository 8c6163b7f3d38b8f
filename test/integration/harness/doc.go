// Package harness provides utilities for integration testing the maestro CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - MAESTRO_HOME: Isolated per test (temp directory)
//   - MAESTRO_DEBUG: Disabled to reduce noise
//   - MAESTRO_IS_GM: The local user is game master
package harness
