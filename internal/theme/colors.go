package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Playback state colors
const (
	ColorEnded      Color = "8" // Gray - ended or stopped
	ColorPaused     Color = "3" // Yellow - paused
	ColorPlaying    Color = "2" // Green - playing
	ColorSuppressed Color = "1" // Red - start suppressed at the end of a playlist
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
	ColorWarning   Color = "214" // Orange
)

// Accent colors
const (
	ColorSelected Color = "57"  // Purple background of the selected row
	ColorSpinner  Color = "205" // Pink
)
