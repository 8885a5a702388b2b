package ui

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// FormatLine renders a comment's line number, or "?" when it is unknown
func FormatLine(line *int) string {
	if line == nil || *line == 0 {
		return "?"
	}
	return strconv.Itoa(*line)
}

// Preview flattens s onto one line and truncates it to width display cells
func Preview(s string, width int) string {
	flat := strings.Join(strings.Fields(s), " ")
	return runewidth.Truncate(flat, width, "...")
}
