// Package internal provides text layout and output encoding helpers for
// the htmlwriter serializer.
package internal

import (
	"strings"
	"unicode/utf8"
)

// Wrap breaks text into lines of at most width characters, splitting at
// space boundaries. Runs of whitespace collapse to a single space. A word
// longer than width is emitted on its own over-long line rather than
// broken mid-word. Width <= 0 disables wrapping.
func Wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}
	if width <= 0 {
		return []string{strings.Join(words, " ")}
	}

	var lines []string
	line := words[0]
	lineLen := utf8.RuneCountInString(line)
	for _, w := range words[1:] {
		wl := utf8.RuneCountInString(w)
		if lineLen+1+wl <= width {
			line += " " + w
			lineLen += 1 + wl
			continue
		}
		lines = append(lines, line)
		line = w
		lineLen = wl
	}
	return append(lines, line)
}
