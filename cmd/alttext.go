package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phobologic/nbquality/internal/cells"
	"github.com/phobologic/nbquality/internal/mdscan"
)

// newAltTextCmd creates the alt-text subcommand: audits markdown cells for
// images missing alt text.
func newAltTextCmd(root *rootOptions) *cobra.Command {
	var all bool

	altTextCmd := &cobra.Command{
		Use:   "alt-text [path]",
		Short: "Report images missing alt text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			return root.walker().Documents(args[0], func(doc *cells.Document) {
				for _, cell := range doc.Cells {
					if cell.Type != cells.Markdown {
						continue
					}
					for _, img := range mdscan.Images(cell.Source) {
						missing := strings.TrimSpace(img.Alt) == ""
						if !missing && !all {
							continue
						}
						status := "ok"
						if missing {
							status = "MISSING ALT"
						}
						fmt.Fprintf(out, "%s cell %d: %s [%s]\n", doc.Path, cell.Ordinal+1, img.Src, status)
					}
				}
			})
		},
	}

	altTextCmd.Flags().BoolVar(&all, "all", false, "list every image, not just those missing alt text")
	return altTextCmd
}
