package render

import (
	"fmt"
	"html/template"
	"io"
)

var tableTemplate = template.Must(template.New("table").Parse(`<table>
  <thead>
    <tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr>
  </thead>
  <tbody>
{{- range .Rows}}
    <tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{- end}}
  </tbody>
</table>
`))

// HTMLTable writes a tabular report artifact. Cell values are escaped by
// the template engine.
func HTMLTable(w io.Writer, headers []string, rows [][]string) error {
	data := struct {
		Headers []string
		Rows    [][]string
	}{headers, rows}

	if err := tableTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}
	return nil
}
