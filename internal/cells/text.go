package cells

import "strings"

// fromMarkdown maps a fenced markdown file onto the cell model: fenced code
// blocks become code cells, the prose between them becomes markdown cells.
func fromMarkdown(path, content string) *Document {
	doc := &Document{Path: path}

	var buf []string
	inFence := false

	flush := func(kind CellType) {
		text := strings.TrimRight(strings.Join(buf, "\n"), "\n")
		buf = buf[:0]
		if strings.TrimSpace(text) == "" {
			return
		}
		doc.Cells = append(doc.Cells, Cell{
			Type:    kind,
			Source:  text,
			Ordinal: len(doc.Cells),
		})
	}

	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			if inFence {
				flush(Code)
			} else {
				flush(Markdown)
			}
			inFence = !inFence
			continue
		}
		buf = append(buf, line)
	}
	if inFence {
		flush(Code)
	} else {
		flush(Markdown)
	}

	return doc
}

// fromPercentScript maps a percent-format script onto the cell model.
// `# %%` opens a code cell, `# %% [markdown]` a markdown cell whose
// comment-prefixed lines are uncommented. Content before the first marker
// becomes a code cell.
func fromPercentScript(path, content string) *Document {
	doc := &Document{Path: path}

	var buf []string
	kind := Code

	flush := func() {
		text := strings.TrimRight(strings.Join(buf, "\n"), "\n")
		buf = buf[:0]
		if strings.TrimSpace(text) == "" {
			return
		}
		if kind == Markdown {
			text = stripCommentPrefix(text)
		}
		doc.Cells = append(doc.Cells, Cell{
			Type:    kind,
			Source:  text,
			Ordinal: len(doc.Cells),
		})
	}

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "# %%") || strings.HasPrefix(trimmed, "#%%") {
			flush()
			if strings.Contains(trimmed, "[markdown]") {
				kind = Markdown
			} else {
				kind = Code
			}
			continue
		}
		buf = append(buf, line)
	}
	flush()

	return doc
}

// stripCommentPrefix removes the leading `# ` comment markers that percent
// format uses to embed markdown in a script.
func stripCommentPrefix(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "# "):
			lines[i] = line[2:]
		case line == "#":
			lines[i] = ""
		}
	}
	return strings.Join(lines, "\n")
}
