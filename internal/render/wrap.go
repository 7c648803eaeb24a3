// Package render lays out book content for the console reading view.
package render

import (
	"strings"
	"unicode/utf8"
)

const (
	MaxLineWidth = 40
	FieldWidth   = 60
)

// Wrap splits content into paragraphs at newlines and greedily packs each
// paragraph's words into lines of at most maxWidth runes. Every line is
// centered in a fieldWidth field and each paragraph is followed by a blank
// line. A word longer than maxWidth is put on a line of its own.
func Wrap(content string, maxWidth, fieldWidth int) []string {
	var out []string
	for _, paragraph := range strings.Split(content, "\n") {
		for _, line := range pack(strings.Fields(paragraph), maxWidth) {
			out = append(out, Center(line, fieldWidth))
		}
		out = append(out, "")
	}
	return out
}

func pack(words []string, maxWidth int) []string {
	var (
		lines []string
		cur   strings.Builder
		n     int
	)
	for _, w := range words {
		wl := utf8.RuneCountInString(w)
		if n > 0 && n+1+wl > maxWidth {
			lines = append(lines, cur.String())
			cur.Reset()
			n = 0
		}
		if n > 0 {
			cur.WriteByte(' ')
			n++
		}
		cur.WriteString(w)
		n += wl
	}
	if n > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}

// Center pads s with spaces on both sides to width runes. Odd padding puts
// the extra space on the right. Strings at least width long are returned
// unchanged.
func Center(s string, width int) string {
	pad := width - utf8.RuneCountInString(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
