// Package textflow models how a block of text occupies vertical space on a
// fixed-width display by wrapping long lines and counting the fragments.
package textflow

import "strings"

// DefaultWidth is the assumed character width of a display line.
const DefaultWidth = 160

// Wrap greedily wraps a single line into fragments no longer than width.
// Words longer than width are broken at the width boundary, so every
// fragment fits. Runs of whitespace collapse to single spaces.
func Wrap(line string, width int) []string {
	if width <= 0 {
		width = DefaultWidth
	}

	words := strings.Fields(line)
	if len(words) == 0 {
		return nil
	}

	var fragments []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			fragments = append(fragments, current.String())
			current.Reset()
		}
	}

	for _, word := range words {
		// Break words that cannot fit on any line.
		for len(word) > width {
			flush()
			fragments = append(fragments, word[:width])
			word = word[width:]
		}
		if current.Len() == 0 {
			current.WriteString(word)
			continue
		}
		if current.Len()+1+len(word) > width {
			flush()
			current.WriteString(word)
			continue
		}
		current.WriteByte(' ')
		current.WriteString(word)
	}
	flush()

	return fragments
}

// count splits text on sep, wraps each resulting piece at width, and returns
// the number of display-line fragments. A piece that wraps to nothing (blank
// between separators) still occupies one display line.
func count(text, sep string, width int) int {
	if text == "" {
		return 0
	}

	n := 0
	for _, piece := range strings.Split(text, sep) {
		fragments := len(Wrap(piece, width))
		if fragments == 0 {
			fragments = 1
		}
		n += fragments
	}
	return n
}

// ScreenLines counts display lines for a text block, splitting on single
// newlines first. Used for gross code cell sizing.
func ScreenLines(text string, width int) int {
	return count(text, "\n", width)
}

// ScreenLinesParagraphs counts display lines splitting on paragraph
// boundaries (blank lines), matching how rendered markdown flows.
func ScreenLinesParagraphs(text string, width int) int {
	return count(text, "\n\n", width)
}
