// Package metrics combines text-flow, readability, and code composition
// measurements into one immutable record per cell.
package metrics

import (
	"math"
	"strings"

	"github.com/phobologic/nbquality/internal/cells"
	"github.com/phobologic/nbquality/internal/codecount"
	"github.com/phobologic/nbquality/internal/mdscan"
	"github.com/phobologic/nbquality/internal/textflow"
	"github.com/phobologic/nbquality/internal/textstats"
)

// MarkdownFeatures are the structural counts for a markdown cell.
type MarkdownFeatures struct {
	Headers    int
	Paragraphs int
	CodeBlocks int
	// Code is the line breakdown of fenced code embedded in the cell.
	Code codecount.Counts
}

// CellMetric is the derived record for one cell, keyed by the owning
// document and the cell's ordinal.
type CellMetric struct {
	Ordinal int
	Type    cells.CellType

	ScreenLines    int
	ReadingSeconds float64
	ReadingMinutes int

	// Words is the markdown word count; zero for code cells.
	Words int
	// Stats and Markdown are populated for markdown cells only.
	Stats    *textstats.Stats
	Markdown *MarkdownFeatures

	// Code is populated for code cells (and invariantly satisfies
	// Total == Blank + Comment + Source); CodeMethod records whether the
	// strict analyzer or the tolerant fallback classified it.
	Code       codecount.Counts
	CodeMethod codecount.Method
}

// Computer derives CellMetrics under a fixed configuration.
type Computer struct {
	cfg Config
}

// NewComputer builds a Computer, filling unset Config fields with defaults.
func NewComputer(cfg Config) *Computer {
	return &Computer{cfg: cfg.normalize()}
}

// Config returns the effective configuration.
func (c *Computer) Config() Config {
	return c.cfg
}

// Cell computes the metric for one cell. The second return is false for
// cell types that produce no metric (raw and other cells are skipped
// without aborting the rest of the document).
func (c *Computer) Cell(cell cells.Cell) (CellMetric, bool) {
	switch cell.Type {
	case cells.Markdown:
		return c.markdown(cell), true
	case cells.Code:
		return c.code(cell), true
	default:
		return CellMetric{}, false
	}
}

// Document computes metrics for every measurable cell in order.
func (c *Computer) Document(doc *cells.Document) []CellMetric {
	var out []CellMetric
	for _, cell := range doc.Cells {
		if m, ok := c.Cell(cell); ok {
			out = append(out, m)
		}
	}
	return out
}

// Minutes converts a seconds estimate to whole minutes, rounding up.
// The ceiling is deliberate: reports prefer a conservative over-estimate.
func Minutes(seconds float64) int {
	return int(math.Ceil(seconds / 60))
}

func (c *Computer) markdown(cell cells.Cell) CellMetric {
	stats := textstats.Analyze(cell.Source)
	features := markdownFeatures(cell.Source)
	images := mdscan.Images(cell.Source)

	seconds := textstats.ReadingSeconds(stats.Words, len(images), c.cfg.ReadingRate)
	// Embedded code reads slower than prose: surcharge per fenced line.
	seconds += c.cfg.CodeLineSeconds * float64(features.Code.Source+features.Code.Comment)

	return CellMetric{
		Ordinal:        cell.Ordinal,
		Type:           cells.Markdown,
		ScreenLines:    textflow.ScreenLinesParagraphs(cell.Source, c.cfg.LineWidth),
		ReadingSeconds: seconds,
		ReadingMinutes: Minutes(seconds),
		Words:          stats.Words,
		Stats:          &stats,
		Markdown:       &features,
	}
}

func (c *Computer) code(cell cells.Cell) CellMetric {
	result := codecount.Classify(cell.Source)
	seconds := c.cfg.CodeLineSeconds * float64(result.Counts.Source+result.Counts.Comment)

	return CellMetric{
		Ordinal:        cell.Ordinal,
		Type:           cells.Code,
		ScreenLines:    textflow.ScreenLines(cell.Source, c.cfg.LineWidth),
		ReadingSeconds: seconds,
		ReadingMinutes: Minutes(seconds),
		Code:           result.Counts,
		CodeMethod:     result.Method,
	}
}

// markdownFeatures combines the parsed fenced-code blocks with a line walk
// over the prose: fence contents are classified line by line, headings and
// paragraph breaks are counted outside fences.
func markdownFeatures(source string) MarkdownFeatures {
	var f MarkdownFeatures

	for _, block := range mdscan.FencedCode(source) {
		f.CodeBlocks++
		if block == "" {
			continue
		}
		for _, line := range strings.Split(strings.TrimRight(block, "\n"), "\n") {
			f.Code.Add(codecount.ClassifyLine(line))
		}
	}

	inFence := false
	for _, line := range strings.Split(strings.TrimSpace(source), "\n") {
		switch {
		case strings.HasPrefix(strings.TrimSpace(line), "```"):
			inFence = !inFence
		case inFence:
			// Already classified above.
		case strings.HasPrefix(line, "#"):
			f.Headers++
		case strings.TrimSpace(line) == "":
			f.Paragraphs++
		}
	}
	return f
}
