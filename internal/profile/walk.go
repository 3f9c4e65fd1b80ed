package profile

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/phobologic/nbquality/internal/cells"
	"github.com/phobologic/nbquality/internal/metrics"
)

// Walker profiles a single file or a directory tree. It owns the
// accumulating aggregate structures exclusively; documents are processed
// sequentially and merge order cannot affect totals.
type Walker struct {
	computer *metrics.Computer
	opts     cells.Options
	exclude  Excluder
	logger   *log.Logger
}

// NewWalker builds a Walker. A nil excluder falls back to DefaultExcluder;
// a nil logger discards diagnostics.
func NewWalker(computer *metrics.Computer, opts cells.Options, exclude Excluder, logger *log.Logger) *Walker {
	if exclude == nil {
		exclude = DefaultExcluder()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Walker{computer: computer, opts: opts, exclude: exclude, logger: logger}
}

// Files enumerates the document paths the walker would profile under root,
// in deterministic lexicographic order. A root that is itself a file is
// returned as-is.
func (w *Walker) Files(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("corpus path: %w", err)
	}
	if !info.IsDir() {
		return []string{root}, nil
	}

	exclude := IgnoreFileExcluder(root, w.exclude)

	var files []string
	err = filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			w.logger.Warn("skipping unreadable path", "path", path, "err", walkErr)
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}

		if entry.IsDir() {
			if path != root && exclude(rel) {
				return filepath.SkipDir
			}
			return nil
		}
		if exclude(rel) || !cells.Supported(path, w.opts) {
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking corpus: %w", err)
	}

	// WalkDir visits lexically, but sort anyway so enumeration order is an
	// explicit guarantee rather than an accident of traversal.
	sort.Strings(files)
	return files, nil
}

// Profile walks root (file or directory) and returns the merged corpus
// report. A document that fails to read is recorded as an empty report and
// the walk continues; only traversal-level failures abort.
func (w *Walker) Profile(root string) (*CorpusReport, error) {
	files, err := w.Files(root)
	if err != nil {
		return nil, err
	}

	report := &CorpusReport{
		Root:        root,
		Directories: make(DirectoryReport),
	}
	for _, path := range files {
		report.merge(w.document(path))
	}
	return report, nil
}

// Documents visits each readable, non-empty document under root in order.
// Read failures are logged and skipped.
func (w *Walker) Documents(root string, visit func(*cells.Document)) error {
	files, err := w.Files(root)
	if err != nil {
		return err
	}

	for _, path := range files {
		doc, err := cells.Read(path, w.opts)
		if err != nil {
			w.logger.Warn("failed to read document", "path", path, "err", err)
			continue
		}
		if doc.Empty() {
			continue
		}
		visit(doc)
	}
	return nil
}

// document profiles one file into a DocumentReport. Read failures yield an
// empty report plus a diagnostic.
func (w *Walker) document(path string) DocumentReport {
	report := DocumentReport{
		Filename: filepath.Base(path),
		Path:     path,
		Dir:      filepath.Dir(path),
	}

	doc, err := cells.Read(path, w.opts)
	if err != nil {
		w.logger.Warn("failed to read document", "path", path, "err", err)
		return report
	}
	if doc.Empty() {
		w.logger.Debug("no cells found", "path", path)
		return report
	}

	report.Cells = w.computer.Document(doc)
	report.Totals = documentTotals(report.Cells)
	report.Exec = executionSummary(doc)
	return report
}

// documentTotals sums cell metrics into document-level totals.
func documentTotals(cellMetrics []metrics.CellMetric) Totals {
	totals := Totals{Notebooks: 1}
	for _, m := range cellMetrics {
		switch m.Type {
		case cells.Markdown:
			totals.MarkdownCells++
			totals.Words += m.Words
			if m.Markdown != nil {
				totals.TotalCode += m.Markdown.Code.Total
			}
		case cells.Code:
			totals.CodeCells++
			totals.TotalCode += m.Code.Total
			totals.CodeLines += m.Code.Source
			totals.BlankCode += m.Code.Blank
			totals.CommentCode += m.Code.Comment
		}
		totals.ScreenLines += m.ScreenLines
		totals.ReadingSecs += m.ReadingSeconds
		totals.ReadingMins += m.ReadingMinutes
	}
	return totals
}

// executionSummary inspects code cell execution counts: were all cells
// run, and does the recorded order increase monotonically.
func executionSummary(doc *cells.Document) ExecutionSummary {
	var summary ExecutionSummary
	summary.InOrder = true

	last := 0
	for _, cell := range doc.Cells {
		if cell.Type != cells.Code {
			continue
		}
		summary.CodeCells++
		if cell.ExecutionCount == nil {
			continue
		}
		summary.Executed++
		if *cell.ExecutionCount < last {
			summary.InOrder = false
		}
		last = *cell.ExecutionCount
	}
	summary.AllExecuted = summary.CodeCells > 0 && summary.Executed == summary.CodeCells
	return summary
}

// merge folds one document report into the corpus aggregates. Key-grouped
// summation keeps the operation commutative and associative.
func (r *CorpusReport) merge(doc DocumentReport) {
	r.Documents = append(r.Documents, doc)

	dir := r.Directories[doc.Dir]
	dir.Add(doc.Totals)
	r.Directories[doc.Dir] = dir

	r.Totals.Add(doc.Totals)
}
