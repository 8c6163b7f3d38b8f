//go:build windows

package sound

// commandsFor plays files on Windows using PowerShell's media player
func commandsFor(path string) []playerCommand {
	script := "$p = New-Object System.Media.SoundPlayer '" + path + "'; $p.PlaySync()"
	return []playerCommand{
		{"ffplay", []string{"-nodisp", "-autoexit", "-loglevel", "quiet", path}},
		{"powershell", []string{"-NoProfile", "-c", script}},
	}
}
