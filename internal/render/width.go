package render

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

// ansiEscape matches all ANSI escape sequences including CSI (with private params),
// OSC, and single-char escapes.
var ansiEscape = regexp.MustCompile(`\x1b(?:[@-Z\\-_]|\[[0-9;?]*[ -/]*[@-~]|\][^\x07\x1b]*(?:\x07|\x1b\\))`)

// StripANSI removes all ANSI escape sequences from s.
func StripANSI(s string) string {
	return ansiEscape.ReplaceAllString(s, "")
}

// narrow measures block elements as single columns regardless of locale.
var narrow = &runewidth.Condition{StrictEmojiNeutral: true}

// Width returns the number of terminal columns line occupies once printed.
func Width(line string) int {
	return narrow.StringWidth(StripANSI(line))
}

// Bounds returns the widest line and the line count of rendered output.
// A trailing newline does not start a new line.
func Bounds(out string) (cols, lines int) {
	for _, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		if w := Width(line); w > cols {
			cols = w
		}
		lines++
	}
	return cols, lines
}
