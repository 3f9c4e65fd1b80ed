// Package cells normalizes documents from their on-disk representations
// into a canonical ordered cell sequence. The primary format is the
// notebook JSON format (.ipynb); plain-text formats with cell markers
// (.md fenced markdown, .py percent scripts) are mapped onto the same
// model when enabled.
package cells

import (
	"os"
	"path/filepath"
	"strings"
)

// CellType enumerates the canonical cell kinds.
type CellType string

const (
	Markdown CellType = "markdown"
	Code     CellType = "code"
	Raw      CellType = "raw"
	Other    CellType = "other"
)

// Output is a captured execution output attached to a code cell. Only the
// stream name and text are retained; rich display payloads are dropped.
type Output struct {
	Name string
	Text string
}

// Cell is one unit of a document. Ordinal is the cell's position and is
// strictly increasing for the life of the Document. ExecutionCount is nil
// for cells that were never run.
type Cell struct {
	Type           CellType
	Source         string
	Ordinal        int
	ExecutionCount *int
	Outputs        []Output
}

// Document is an ordered cell sequence read from one source. It exists
// only for the duration of a profiling pass.
type Document struct {
	Path  string
	Cells []Cell
}

// Empty reports whether the document carries no cells. Callers treat an
// empty document as "skip, no data".
func (d *Document) Empty() bool {
	return d == nil || len(d.Cells) == 0
}

// Options controls format detection.
type Options struct {
	// TextFormats enables the plain-text representations (.md, .py)
	// alongside the primary notebook format.
	TextFormats bool
}

// Read loads and normalizes the document at path. Unsupported extensions
// and non-file paths yield an empty document with a nil error; a file that
// matches a supported format but cannot be decoded yields an error.
func Read(path string, opts Options) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return &Document{Path: path}, nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".ipynb":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		doc, err := FromJSON(data)
		if err != nil {
			return nil, err
		}
		doc.Path = path
		return doc, nil
	case ".md":
		if !opts.TextFormats {
			return &Document{Path: path}, nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return fromMarkdown(path, string(data)), nil
	case ".py":
		if !opts.TextFormats {
			return &Document{Path: path}, nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return fromPercentScript(path, string(data)), nil
	default:
		return &Document{Path: path}, nil
	}
}

// Extensions returns the file extensions the normalizer recognizes under
// the given options.
func Extensions(opts Options) []string {
	if opts.TextFormats {
		return []string{".ipynb", ".md", ".py"}
	}
	return []string{".ipynb"}
}

// Supported reports whether path has a recognized document extension.
func Supported(path string, opts Options) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions(opts) {
		if ext == e {
			return true
		}
	}
	return false
}
