package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatErrorForDisplay(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		width     int
		expected  string
		lines     int
		truncated bool
	}{
		{name: "nil", err: nil, width: 80, expected: ""},
		{name: "short", err: errors.New("playlist not found"), width: 80, expected: "Error: playlist not found"},
		{name: "empty message", err: errors.New(""), width: 80, expected: "Error: unknown error"},
		{name: "wraps to two lines", err: errors.New("failed to play Fanfare from Hype Tracks"), width: 30, lines: 2},
		{name: "truncated", err: errors.New(strings.Repeat("word ", 40)), width: 20, lines: 2, truncated: true},
		{name: "tiny width", err: errors.New("a b"), width: 1, expected: "Error: a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatErrorForDisplay(tt.err, tt.width)
			if tt.expected != "" || tt.err == nil {
				assert.Equal(t, tt.expected, got)
				return
			}
			lines := strings.Split(got, "\n")
			assert.Len(t, lines, tt.lines)
			assert.True(t, strings.HasPrefix(got, errorPrefix))
			assert.Equal(t, tt.truncated, strings.HasSuffix(got, truncationMark))
		})
	}
}
