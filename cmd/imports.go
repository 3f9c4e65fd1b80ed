package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phobologic/nbquality/internal/cells"
	"github.com/phobologic/nbquality/internal/pyimports"
)

// newImportsCmd creates the imports subcommand: lists the packages loaded
// by each document's code cells.
func newImportsCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "imports [path]",
		Short: "List packages imported by each document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			return root.walker().Documents(args[0], func(doc *cells.Document) {
				var code []string
				for _, cell := range doc.Cells {
					if cell.Type == cells.Code {
						code = append(code, cell.Source)
					}
				}
				imports := pyimports.List(strings.Join(code, "\n"))
				if len(imports) == 0 {
					return
				}
				fmt.Fprintf(out, "%s: %s\n", doc.Path, strings.Join(imports, ", "))
			})
		},
	}
}
