// Package codecount classifies code cell lines as blank, comment, or source.
//
// Two strategies are provided: a tolerant line classifier that never fails,
// and a strict tree-sitter backed analyzer that understands multi-line
// strings but rejects syntactically invalid code. Classify applies the
// mandatory fallback policy between them and records which strategy ran.
package codecount

import "strings"

// Counts holds a line-composition breakdown for a code block.
// For any successful classification Total == Blank + Comment + Source.
type Counts struct {
	Total   int
	Blank   int
	Comment int
	Source  int
}

// Add accumulates another breakdown into this one.
func (c *Counts) Add(other Counts) {
	c.Total += other.Total
	c.Blank += other.Blank
	c.Comment += other.Comment
	c.Source += other.Source
}

// Method identifies which classification strategy produced a Result.
type Method string

const (
	// MethodStrict means the grammar-aware analyzer parsed the code.
	MethodStrict Method = "strict"
	// MethodFallback means the tolerant line classifier ran, either because
	// strict parsing failed or because the cell opened with a cell-wide
	// directive marker.
	MethodFallback Method = "fallback"
)

// Result pairs a breakdown with the strategy that produced it, making the
// fallback path a visible branch rather than a swallowed exception.
type Result struct {
	Counts Counts
	Method Method
}

// Tolerant classifies every line by pattern alone: blank if empty after
// trimming, comment if it starts with the comment marker, source otherwise.
// Leading and trailing blank lines are not counted as code lines. It never
// fails.
func Tolerant(code string) Counts {
	var counts Counts

	code = strings.TrimSpace(code)
	if code == "" {
		return counts
	}

	for _, line := range strings.Split(code, "\n") {
		counts.Add(ClassifyLine(line))
	}
	return counts
}

// ClassifyLine classifies a single line, returning a breakdown with
// Total == 1. Used directly when walking fenced code inside markdown.
func ClassifyLine(line string) Counts {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		return Counts{Total: 1, Blank: 1}
	case strings.HasPrefix(trimmed, "#"):
		return Counts{Total: 1, Comment: 1}
	default:
		return Counts{Total: 1, Source: 1}
	}
}

// Sanitize neutralizes interpreter-directive and shell-escape lines
// (`%` magics and `!` commands) by converting them to comments so the
// strict analyzer has a chance of parsing the rest of the cell. Directives
// on the right-hand side of an assignment still defeat it; Classify covers
// that with the fallback.
func Sanitize(code string) string {
	lines := strings.Split(code, "\n")
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if strings.HasPrefix(trimmed, "%") || strings.HasPrefix(trimmed, "!") {
			lines[i] = "#" + line
		}
	}
	return strings.Join(lines, "\n")
}

// Classify applies the two-tier policy: cells opening with a cell-wide
// directive marker go straight to the tolerant classifier; otherwise the
// code is sanitized and handed to the strict analyzer, falling back to
// tolerant classification when parsing fails.
func Classify(code string) Result {
	if strings.HasPrefix(code, "%%") {
		return Result{Counts: Tolerant(code), Method: MethodFallback}
	}

	counts, err := Strict(Sanitize(code))
	if err != nil {
		return Result{Counts: Tolerant(code), Method: MethodFallback}
	}
	return Result{Counts: counts, Method: MethodStrict}
}
