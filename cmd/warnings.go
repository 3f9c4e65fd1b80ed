package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phobologic/nbquality/internal/cells"
)

// newWarningsCmd creates the warnings subcommand: scans executed code cell
// outputs for stderr streams.
func newWarningsCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "warnings [path]",
		Short: "List code cells that produced stderr output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			return root.walker().Documents(args[0], func(doc *cells.Document) {
				for _, cell := range doc.Cells {
					for _, output := range cell.Outputs {
						if output.Name != "stderr" {
							continue
						}
						// First line of the stream is enough to identify it.
						msg, _, _ := strings.Cut(output.Text, "\n")
						fmt.Fprintf(out, "%s cell %d: %s\n", doc.Path, cell.Ordinal+1, msg)
					}
				}
			})
		},
	}
}
