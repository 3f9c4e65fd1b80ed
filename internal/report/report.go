// Package report fills text templates from aggregate report data. A field
// the template names but the data lacks is a hard error: a malformed
// report indicates a programming or configuration mismatch, and silently
// blanking it would be worse than failing.
package report

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/phobologic/nbquality/internal/profile"
)

// DirectoryTemplate is the default per-directory summary.
const DirectoryTemplate = `In directory ` + "`{{.path}}`" + ` there were {{.nb_count}} notebooks.

- total markdown wordcount {{.n_words}} words across {{.n_md_cells}} markdown cells
- total code line count of {{.n_total_code_lines}} lines of code across {{.n_code_cells}} code cells
  - {{.n_code_lines}} code lines, {{.n_single_line_comment_code_lines}} comment lines and {{.n_blank_code_lines}} blank lines

Estimated total reading time of {{.reading_time_mins}} minutes.
`

// Render executes tmpl against data, propagating any missing field as an
// error.
func Render(tmpl string, data map[string]any) (string, error) {
	t, err := template.New("report").Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("parsing report template: %w", err)
	}

	var sb strings.Builder
	if err := t.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("filling report template: %w", err)
	}
	return sb.String(), nil
}

// Feedstock flattens one directory's totals into the field map the
// templates consume.
func Feedstock(dir string, totals profile.Totals) map[string]any {
	return map[string]any{
		"path":                             dir,
		"nb_count":                         totals.Notebooks,
		"n_md_cells":                       totals.MarkdownCells,
		"n_code_cells":                     totals.CodeCells,
		"n_words":                          totals.Words,
		"n_screen_lines":                   totals.ScreenLines,
		"n_total_code_lines":               totals.TotalCode,
		"n_code_lines":                     totals.CodeLines,
		"n_blank_code_lines":               totals.BlankCode,
		"n_single_line_comment_code_lines": totals.CommentCode,
		"reading_time_s":                   totals.ReadingSecs,
		"reading_time_mins":                totals.ReadingMins,
	}
}

// Directories renders the template once per directory in lexicographic
// order, joined by blank lines.
func Directories(dirs profile.DirectoryReport, tmpl string) (string, error) {
	var parts []string
	for _, dir := range dirs.Dirs() {
		text, err := Render(tmpl, Feedstock(dir, dirs[dir]))
		if err != nil {
			return "", err
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, "\n"), nil
}
