//go:build linux

package sound

// commandsFor plays files on Linux using paplay (PulseAudio), ffplay or aplay (ALSA)
func commandsFor(path string) []playerCommand {
	return []playerCommand{
		{"paplay", []string{path}},
		{"ffplay", []string{"-nodisp", "-autoexit", "-loglevel", "quiet", path}},
		{"aplay", []string{"-q", path}},
	}
}
