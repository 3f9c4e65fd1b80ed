package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phobologic/nbquality/internal/cells"
	"github.com/phobologic/nbquality/internal/linkcheck"
	"github.com/phobologic/nbquality/internal/mdscan"
)

// newLinksCmd creates the links subcommand: lists markdown links and
// optionally probes their targets for liveness.
func newLinksCmd(root *rootOptions) *cobra.Command {
	var (
		check   bool
		workers int
	)

	linksCmd := &cobra.Command{
		Use:   "links [path]",
		Short: "List links, optionally checking target liveness",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			seen := make(map[string]bool)
			var targets []string
			err := root.walker().Documents(args[0], func(doc *cells.Document) {
				for _, cell := range doc.Cells {
					if cell.Type != cells.Markdown {
						continue
					}
					for _, link := range mdscan.Links(cell.Source) {
						fmt.Fprintf(out, "%s cell %d: [%s](%s)\n", doc.Path, cell.Ordinal+1, link.Text, link.Href)
						if !seen[link.Href] {
							seen[link.Href] = true
							targets = append(targets, link.Href)
						}
					}
				}
			})
			if err != nil || !check {
				return err
			}

			checker := linkcheck.NewChecker(workers)
			for _, result := range checker.Check(cmd.Context(), targets) {
				switch {
				case result.Err != nil:
					fmt.Fprintf(out, "DEAD %s (%v)\n", result.URL, result.Err)
				case !result.OK:
					fmt.Fprintf(out, "DEAD %s (status %d)\n", result.URL, result.StatusCode)
				default:
					fmt.Fprintf(out, "OK   %s\n", result.URL)
				}
			}
			return nil
		},
	}

	linksCmd.Flags().BoolVar(&check, "check", false, "probe http(s) links for liveness")
	linksCmd.Flags().IntVar(&workers, "workers", 4, "concurrent liveness probes")
	return linksCmd
}
