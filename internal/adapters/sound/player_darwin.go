//go:build darwin

package sound

// commandsFor plays files on macOS using afplay
func commandsFor(path string) []playerCommand {
	return []playerCommand{
		{"afplay", []string{path}},
		{"ffplay", []string{"-nodisp", "-autoexit", "-loglevel", "quiet", path}},
	}
}
