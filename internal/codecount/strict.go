package codecount

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// ErrParse reports that the strict analyzer could not parse a code block.
// Callers recover by falling back to the tolerant classifier; the error is
// never surfaced beyond this package's Classify.
var ErrParse = errors.New("codecount: code does not parse")

// Strict classifies lines using a tree-sitter parse of the code. Whole-line
// comments and docstrings (expression statements that are bare string
// literals) count as comment lines, so multi-line documentation blocks are
// distinguished from executable source. A trailing comment on a source line
// leaves the line classified as source. Returns ErrParse when the grammar
// cannot fully parse the input.
func Strict(code string) (Counts, error) {
	var counts Counts

	code = strings.TrimSpace(code)
	if code == "" {
		return counts, nil
	}

	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	source := []byte(code)
	tree, err := parser.ParseCtx(context.Background(), nil, source)
	if err != nil {
		return counts, fmt.Errorf("parsing code: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return counts, ErrParse
	}

	lines := strings.Split(code, "\n")
	commentRows := make(map[int]bool)
	markCommentRows(root, lines, commentRows)

	counts.Total = len(lines)
	for i, line := range lines {
		switch {
		case commentRows[i]:
			counts.Comment++
		case strings.TrimSpace(line) == "":
			counts.Blank++
		default:
			counts.Source++
		}
	}
	return counts, nil
}

// markCommentRows records rows occupied by whole-line comments and
// docstrings.
func markCommentRows(node *sitter.Node, lines []string, rows map[int]bool) {
	switch {
	case node.Type() == "comment":
		// Only count the comment when nothing but whitespace precedes it.
		row := int(node.StartPoint().Row)
		col := int(node.StartPoint().Column)
		if row < len(lines) && col <= len(lines[row]) &&
			strings.TrimSpace(lines[row][:col]) == "" {
			rows[row] = true
		}
		return
	case isDocstring(node):
		for row := node.StartPoint().Row; row <= node.EndPoint().Row; row++ {
			rows[int(row)] = true
		}
		return
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		markCommentRows(node.Child(i), lines, rows)
	}
}

// isDocstring reports whether a node is an expression statement consisting
// of a single string literal.
func isDocstring(node *sitter.Node) bool {
	if node.Type() != "expression_statement" || node.NamedChildCount() != 1 {
		return false
	}
	return node.NamedChild(0).Type() == "string"
}
