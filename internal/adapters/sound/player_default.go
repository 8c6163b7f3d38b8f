//go:build !darwin && !linux && !windows

package sound

// commandsFor falls back to ffplay on other platforms
func commandsFor(path string) []playerCommand {
	return []playerCommand{
		{"ffplay", []string{"-nodisp", "-autoexit", "-loglevel", "quiet", path}},
	}
}
