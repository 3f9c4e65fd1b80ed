// Package profile walks a corpus path, profiles each document, and merges
// the results into per-document, per-directory, and corpus-wide reports.
package profile

import (
	"sort"

	"github.com/phobologic/nbquality/internal/metrics"
)

// Totals are the summed numeric fields rolled up at document, directory,
// and corpus level. Add is commutative and associative, so merge order
// never affects the result.
type Totals struct {
	Notebooks     int     `json:"nb_count"`
	MarkdownCells int     `json:"n_md_cells"`
	CodeCells     int     `json:"n_code_cells"`
	Words         int     `json:"n_words"`
	ScreenLines   int     `json:"n_screen_lines"`
	TotalCode     int     `json:"n_total_code_lines"`
	CodeLines     int     `json:"n_code_lines"`
	BlankCode     int     `json:"n_blank_code_lines"`
	CommentCode   int     `json:"n_single_line_comment_code_lines"`
	ReadingSecs   float64 `json:"reading_time_s"`
	ReadingMins   int     `json:"reading_time_mins"`
}

// Add merges another Totals into this one by field-wise summation.
func (t *Totals) Add(other Totals) {
	t.Notebooks += other.Notebooks
	t.MarkdownCells += other.MarkdownCells
	t.CodeCells += other.CodeCells
	t.Words += other.Words
	t.ScreenLines += other.ScreenLines
	t.TotalCode += other.TotalCode
	t.CodeLines += other.CodeLines
	t.BlankCode += other.BlankCode
	t.CommentCode += other.CommentCode
	t.ReadingSecs += other.ReadingSecs
	t.ReadingMins += other.ReadingMins
}

// ExecutionSummary reports whether a document's code cells were run, and
// whether their recorded execution order is linear.
type ExecutionSummary struct {
	CodeCells   int
	Executed    int
	AllExecuted bool
	InOrder     bool
}

// DocumentReport aggregates the cell metrics for one document. A document
// that failed to read yields a report with no cells.
type DocumentReport struct {
	Filename string
	Path     string
	Dir      string
	Cells    []metrics.CellMetric
	Totals   Totals
	Exec     ExecutionSummary
}

// DirectoryReport maps a directory path to the merged totals of every
// document found under it (excluded sub-paths removed). Rebuilt fresh on
// every run.
type DirectoryReport map[string]Totals

// Dirs returns the directory keys in lexicographic order.
func (d DirectoryReport) Dirs() []string {
	dirs := make([]string, 0, len(d))
	for k := range d {
		dirs = append(dirs, k)
	}
	sort.Strings(dirs)
	return dirs
}

// CorpusReport is the full result of one profiling run.
type CorpusReport struct {
	Root        string
	Documents   []DocumentReport
	Directories DirectoryReport
	Totals      Totals
}
