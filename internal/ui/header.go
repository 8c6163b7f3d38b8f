package ui

import (
	"fmt"

	"github.com/renato0307/maestro/internal/theme"
	"github.com/renato0307/maestro/internal/version"
)

// VersionInfo holds version information for display in UI headers.
// Populated by main.go from ldflags-injected values.
type VersionInfo struct {
	Commit    string
	Date      string
	GoVersion string
	Tagline   string
	Version   string
}

// DefaultVersionInfo is shown until SetVersionInfo is called
var DefaultVersionInfo = VersionInfo{
	Commit:    "unknown",
	Date:      "unknown",
	GoVersion: "unknown",
	Tagline:   version.Tagline,
	Version:   "dev",
}

var versionInfo = DefaultVersionInfo

// SetVersionInfo sets the version shown in headers (called from main.go)
func SetVersionInfo(info VersionInfo) {
	versionInfo = info
}

// renderHeader renders the app name, the tagline and an optional subtitle.
// Debug mode adds the build details next to the name.
func renderHeader(debug bool, subtitle string) string {
	header := theme.AppNameStyle.Render("Maestro")
	if debug {
		commit := versionInfo.Commit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		header += theme.VersionStyle.Render(fmt.Sprintf(" %s | %s | %s | %s",
			versionInfo.Version, commit, versionInfo.Date, versionInfo.GoVersion))
	}

	header += "\n" + theme.TaglineStyle.Render(versionInfo.Tagline)
	if subtitle != "" {
		header += "\n\n" + theme.SubtitleStyle.Render(subtitle)
	}
	return header + "\n"
}
