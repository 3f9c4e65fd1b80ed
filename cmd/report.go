package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/phobologic/nbquality/internal/profile"
	"github.com/phobologic/nbquality/internal/render"
	"github.com/phobologic/nbquality/internal/report"
)

// newReportCmd creates the report subcommand: a per-directory quality
// summary, as templated text or an HTML table.
func newReportCmd(root *rootOptions) *cobra.Command {
	var (
		templateFile string
		html         bool
	)

	reportCmd := &cobra.Command{
		Use:   "report [path]",
		Short: "Generate a per-directory quality report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			corpus, err := root.walker().Profile(args[0])
			if err != nil {
				return err
			}

			if html {
				return writeHTMLReport(cmd, corpus.Directories)
			}

			tmpl := report.DirectoryTemplate
			if templateFile != "" {
				data, err := os.ReadFile(templateFile)
				if err != nil {
					return fmt.Errorf("reading template: %w", err)
				}
				tmpl = string(data)
			}

			text, err := report.Directories(corpus.Directories, tmpl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}

	reportCmd.Flags().StringVar(&templateFile, "template", "", "custom report template file")
	reportCmd.Flags().BoolVar(&html, "html", false, "emit an HTML table instead of templated text")
	return reportCmd
}

// writeHTMLReport renders the per-directory totals as an HTML table, one
// row per directory in lexicographic order.
func writeHTMLReport(cmd *cobra.Command, dirs profile.DirectoryReport) error {
	headers := []string{
		"directory", "notebooks", "markdown cells", "code cells",
		"words", "total code lines", "reading mins",
	}

	var rows [][]string
	for _, dir := range dirs.Dirs() {
		t := dirs[dir]
		rows = append(rows, []string{
			dir,
			strconv.Itoa(t.Notebooks),
			strconv.Itoa(t.MarkdownCells),
			strconv.Itoa(t.CodeCells),
			strconv.Itoa(t.Words),
			strconv.Itoa(t.TotalCode),
			strconv.Itoa(t.ReadingMins),
		})
	}
	return render.HTMLTable(cmd.OutOrStdout(), headers, rows)
}
