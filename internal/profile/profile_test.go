package profile

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/phobologic/nbquality/internal/cells"
	"github.com/phobologic/nbquality/internal/metrics"
)

const tinyNotebook = `{
  "cells": [
    {"cell_type": "markdown", "source": "Some prose with five words."},
    {"cell_type": "code", "source": "x = 1\n# note", "execution_count": 1}
  ]
}`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func newTestWalker() *Walker {
	return NewWalker(metrics.NewComputer(metrics.Config{}), cells.Options{}, nil, nil)
}

func TestTotalsAddOrderIndependent(t *testing.T) {
	t.Parallel()

	parts := []Totals{
		{Notebooks: 1, Words: 10, ReadingSecs: 6, ReadingMins: 1},
		{Notebooks: 1, CodeCells: 3, CodeLines: 20, TotalCode: 25, BlankCode: 3, CommentCode: 2},
		{MarkdownCells: 4, ScreenLines: 50, ReadingSecs: 90.5, ReadingMins: 2},
	}

	var forward Totals
	for _, p := range parts {
		forward.Add(p)
	}

	r := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := append([]Totals(nil), parts...)
		r.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		var got Totals
		for _, p := range shuffled {
			got.Add(p)
		}
		if got != forward {
			t.Fatalf("merge order changed totals: %+v vs %+v", got, forward)
		}
	}
}

func TestFilesSortedAndFiltered(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "b.ipynb"), tinyNotebook)
	writeFile(t, filepath.Join(root, "a.ipynb"), tinyNotebook)
	writeFile(t, filepath.Join(root, "sub", "c.ipynb"), tinyNotebook)
	writeFile(t, filepath.Join(root, "notes.txt"), "not a document")

	files, err := newTestWalker().Files(root)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		filepath.Join(root, "a.ipynb"),
		filepath.Join(root, "b.ipynb"),
		filepath.Join(root, "sub", "c.ipynb"),
	}
	if len(files) != len(want) {
		t.Fatalf("got %d files %v, want %d", len(files), files, len(want))
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("files[%d] = %q, want %q", i, files[i], want[i])
		}
	}
}

func TestFilesSingleFileRoot(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	path := filepath.Join(root, "one.ipynb")
	writeFile(t, path, tinyNotebook)

	files, err := newTestWalker().Files(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 || files[0] != path {
		t.Errorf("Files(file) = %v, want just the file", files)
	}
}

func TestFilesSkipsExcludedDirs(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "keep.ipynb"), tinyNotebook)
	writeFile(t, filepath.Join(root, ".ipynb_checkpoints", "keep-checkpoint.ipynb"), tinyNotebook)
	writeFile(t, filepath.Join(root, "sub", ".git", "nb.ipynb"), tinyNotebook)
	writeFile(t, filepath.Join(root, "sub", "deep.ipynb"), tinyNotebook)

	files, err := newTestWalker().Files(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 {
		t.Fatalf("got %v, want keep.ipynb and sub/deep.ipynb only", files)
	}
}

func TestFilesHonorsIgnoreFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "keep.ipynb"), tinyNotebook)
	writeFile(t, filepath.Join(root, "drafts", "wip.ipynb"), tinyNotebook)
	writeFile(t, filepath.Join(root, IgnoreFileName), "drafts/\n")

	files, err := newTestWalker().Files(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 || filepath.Base(files[0]) != "keep.ipynb" {
		t.Errorf("got %v, want keep.ipynb only", files)
	}
}

func TestFilesMissingRoot(t *testing.T) {
	t.Parallel()

	if _, err := newTestWalker().Files(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatal("expected error for missing corpus path")
	}
}

func TestProfile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.ipynb"), tinyNotebook)
	writeFile(t, filepath.Join(root, "sub", "b.ipynb"), tinyNotebook)

	report, err := newTestWalker().Profile(root)
	if err != nil {
		t.Fatal(err)
	}

	if report.Root != root {
		t.Errorf("Root = %q, want %q", report.Root, root)
	}
	if len(report.Documents) != 2 {
		t.Fatalf("got %d documents, want 2", len(report.Documents))
	}
	if report.Totals.Notebooks != 2 {
		t.Errorf("Notebooks = %d, want 2", report.Totals.Notebooks)
	}
	if report.Totals.MarkdownCells != 2 || report.Totals.CodeCells != 2 {
		t.Errorf("cell totals = %d md / %d code, want 2/2", report.Totals.MarkdownCells, report.Totals.CodeCells)
	}
	if report.Totals.Words != 10 {
		t.Errorf("Words = %d, want 10", report.Totals.Words)
	}
	if report.Totals.CodeLines != 2 || report.Totals.CommentCode != 2 || report.Totals.TotalCode != 4 {
		t.Errorf("code totals = %+v", report.Totals)
	}

	// Per-directory totals must sum to the corpus totals.
	var summed Totals
	for _, dir := range report.Directories.Dirs() {
		summed.Add(report.Directories[dir])
	}
	if summed != report.Totals {
		t.Errorf("directory totals %+v != corpus totals %+v", summed, report.Totals)
	}
	if len(report.Directories) != 2 {
		t.Errorf("got %d directories, want 2", len(report.Directories))
	}
}

func TestProfileContinuesPastCorruptDocument(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "bad.ipynb"), "{not json")
	writeFile(t, filepath.Join(root, "good.ipynb"), tinyNotebook)

	report, err := newTestWalker().Profile(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(report.Documents) != 2 {
		t.Fatalf("got %d documents, want 2 (corrupt one recorded empty)", len(report.Documents))
	}
	if report.Totals.Notebooks != 1 {
		t.Errorf("Notebooks = %d, want 1; corrupt document should add nothing", report.Totals.Notebooks)
	}

	var bad DocumentReport
	for _, doc := range report.Documents {
		if doc.Filename == "bad.ipynb" {
			bad = doc
		}
	}
	if len(bad.Cells) != 0 || bad.Totals != (Totals{}) {
		t.Errorf("corrupt document report = %+v, want empty", bad)
	}
}

func TestDocumentsVisitsInOrder(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "b.ipynb"), tinyNotebook)
	writeFile(t, filepath.Join(root, "a.ipynb"), tinyNotebook)
	writeFile(t, filepath.Join(root, "empty.ipynb"), `{"cells": []}`)

	var visited []string
	err := newTestWalker().Documents(root, func(doc *cells.Document) {
		visited = append(visited, filepath.Base(doc.Path))
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(visited) != 2 || visited[0] != "a.ipynb" || visited[1] != "b.ipynb" {
		t.Errorf("visited = %v, want [a.ipynb b.ipynb]", visited)
	}
}

func TestExecutionSummary(t *testing.T) {
	t.Parallel()

	count := func(n int) *int { return &n }

	tests := []struct {
		name string
		doc  *cells.Document
		want ExecutionSummary
	}{
		{
			"all run in order",
			&cells.Document{Cells: []cells.Cell{
				{Type: cells.Code, ExecutionCount: count(1)},
				{Type: cells.Markdown},
				{Type: cells.Code, ExecutionCount: count(2)},
			}},
			ExecutionSummary{CodeCells: 2, Executed: 2, AllExecuted: true, InOrder: true},
		},
		{
			"out of order",
			&cells.Document{Cells: []cells.Cell{
				{Type: cells.Code, ExecutionCount: count(5)},
				{Type: cells.Code, ExecutionCount: count(2)},
			}},
			ExecutionSummary{CodeCells: 2, Executed: 2, AllExecuted: true, InOrder: false},
		},
		{
			"partially executed",
			&cells.Document{Cells: []cells.Cell{
				{Type: cells.Code, ExecutionCount: count(1)},
				{Type: cells.Code},
			}},
			ExecutionSummary{CodeCells: 2, Executed: 1, AllExecuted: false, InOrder: true},
		},
		{
			"no code cells",
			&cells.Document{Cells: []cells.Cell{{Type: cells.Markdown}}},
			ExecutionSummary{InOrder: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := executionSummary(tt.doc); got != tt.want {
				t.Errorf("executionSummary = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDefaultExcluder(t *testing.T) {
	t.Parallel()

	exclude := DefaultExcluder("custom")

	tests := []struct {
		rel  string
		want bool
	}{
		{"a/b/c.ipynb", false},
		{".ipynb_checkpoints", true},
		{"deep/.ipynb_checkpoints/nb.ipynb", true},
		{".git/objects/ab", true},
		{"__pycache__/x", true},
		{"custom/nb.ipynb", true},
		{"builds/nb.ipynb", false},
	}

	for _, tt := range tests {
		if got := exclude(tt.rel); got != tt.want {
			t.Errorf("exclude(%q) = %v, want %v", tt.rel, got, tt.want)
		}
	}
}
