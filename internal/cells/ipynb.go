package cells

import (
	"encoding/json"
	"fmt"
	"strings"
)

// multilineString accepts the notebook convention of storing text either as
// a single string or as a list of line fragments.
type multilineString string

func (m *multilineString) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*m = multilineString(single)
		return nil
	}

	var parts []string
	if err := json.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("source is neither string nor string list: %w", err)
	}
	*m = multilineString(strings.Join(parts, ""))
	return nil
}

type rawOutput struct {
	Name string          `json:"name"`
	Text multilineString `json:"text"`
}

type rawCell struct {
	CellType       string          `json:"cell_type"`
	Source         multilineString `json:"source"`
	ExecutionCount *int            `json:"execution_count"`
	Outputs        []rawOutput     `json:"outputs"`
}

type rawNotebook struct {
	Cells []rawCell `json:"cells"`
}

// FromJSON normalizes an in-memory notebook JSON document, bypassing
// file-type detection entirely.
func FromJSON(data []byte) (*Document, error) {
	var nb rawNotebook
	if err := json.Unmarshal(data, &nb); err != nil {
		return nil, fmt.Errorf("decoding notebook: %w", err)
	}

	doc := &Document{}
	for i, rc := range nb.Cells {
		cell := Cell{
			Type:           cellType(rc.CellType),
			Source:         string(rc.Source),
			Ordinal:        i,
			ExecutionCount: rc.ExecutionCount,
		}
		for _, out := range rc.Outputs {
			cell.Outputs = append(cell.Outputs, Output{
				Name: out.Name,
				Text: string(out.Text),
			})
		}
		doc.Cells = append(doc.Cells, cell)
	}
	return doc, nil
}

func cellType(name string) CellType {
	switch name {
	case "markdown":
		return Markdown
	case "code":
		return Code
	case "raw":
		return Raw
	default:
		return Other
	}
}
