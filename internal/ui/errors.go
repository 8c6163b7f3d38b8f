package ui

import (
	"strings"
	"unicode/utf8"
)

const (
	errorPrefix    = "Error: "
	maxErrorLines  = 2
	minErrorWidth  = 10
	truncationMark = "..."
)

// formatErrorForDisplay wraps an error to the terminal width and keeps at
// most maxErrorLines lines, marking the cut with "...".
func formatErrorForDisplay(err error, maxWidth int) string {
	if err == nil {
		return ""
	}

	words := strings.Fields(err.Error())
	if len(words) == 0 {
		return errorPrefix + "unknown error"
	}

	width := max(maxWidth, minErrorWidth)
	limit := max(width-utf8.RuneCountInString(errorPrefix), minErrorWidth)

	var lines []string
	var line strings.Builder
	truncated := false
	for i, word := range words {
		n := utf8.RuneCountInString(line.String())
		if n > 0 && n+1+utf8.RuneCountInString(word) > limit {
			lines = append(lines, line.String())
			line.Reset()
			limit = width
			if len(lines) == maxErrorLines {
				truncated = i < len(words)
				break
			}
		}
		if line.Len() > 0 {
			line.WriteString(" ")
		}
		line.WriteString(word)
	}
	if !truncated && line.Len() > 0 {
		lines = append(lines, line.String())
	}

	if truncated {
		last := []rune(lines[len(lines)-1])
		room := width - utf8.RuneCountInString(truncationMark)
		if len(last) > room {
			last = last[:room]
		}
		lines[len(lines)-1] = string(last) + truncationMark
	}

	return errorPrefix + strings.Join(lines, "\n")
}
