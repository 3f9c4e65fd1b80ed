package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/phobologic/nbquality/internal/layout"
	"github.com/phobologic/nbquality/internal/render"
)

type chartOptions struct {
	out        string
	ascii      bool
	base64     bool
	size       string
	gap        float64
	gapBoost   float64
	noGapColor bool
	vertical   bool
}

// newChartCmd creates the chart subcommand: a structural visualization of
// one or more documents as colored segment tracks.
func newChartCmd(root *rootOptions) *cobra.Command {
	opts := chartOptions{
		out:      "nbquality-chart.svg",
		size:     string(layout.ByScreenLines),
		gapBoost: 1,
	}

	chartCmd := &cobra.Command{
		Use:   "chart [path]",
		Short: "Render document structure as colored segment tracks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			size := layout.SizeBy(opts.size)
			if size != layout.ByScreenLines && size != layout.ByReadingTime {
				return fmt.Errorf("unsupported size selector %q, allowed: screen, time", opts.size)
			}

			corpus, err := root.walker().Profile(args[0])
			if err != nil {
				return err
			}

			tracks := make(map[string]layout.Track, len(corpus.Documents))
			var order []string
			for _, doc := range corpus.Documents {
				track := layout.CellSegments(doc, size)
				if len(track) == 0 {
					continue
				}
				label := doc.Path
				if rel, relErr := filepath.Rel(corpus.Root, doc.Path); relErr == nil && rel != "." {
					label = rel
				}
				tracks[label] = track
				order = append(order, label)
			}
			if len(tracks) == 0 {
				return fmt.Errorf("no documents to chart under %s", args[0])
			}

			layoutOpts := layout.Options{
				GapBoost: opts.gapBoost,
				GapColor: layout.DefaultGapColor,
				Vertical: opts.vertical,
			}
			if opts.noGapColor {
				layoutOpts.GapColor = ""
			}
			if cmd.Flags().Changed("gap") {
				layoutOpts.Gap = &opts.gap
			}

			plan := layout.Build(tracks, order, layoutOpts)

			if opts.ascii {
				fmt.Fprint(cmd.OutOrStdout(), render.ANSI(plan))
				return nil
			}
			if opts.base64 {
				fmt.Fprintln(cmd.OutOrStdout(), render.SVGBase64(plan))
				return nil
			}
			if err := render.WriteSVG(opts.out, plan); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "chart written to %s\n", opts.out)
			return nil
		},
	}

	flags := chartCmd.Flags()
	flags.StringVarP(&opts.out, "out", "o", opts.out, "output image path")
	flags.BoolVar(&opts.ascii, "ascii", false, "render to the terminal instead of a file")
	flags.BoolVar(&opts.base64, "base64", false, "print the chart as an embeddable data URI instead of a file")
	flags.StringVar(&opts.size, "size", opts.size, "segment sizing: screen or time")
	flags.Float64Var(&opts.gap, "gap", 0, "explicit inter-cell gap (overrides the computed one)")
	flags.Float64Var(&opts.gapBoost, "gap-boost", opts.gapBoost, "multiplier applied to the computed gap")
	flags.BoolVar(&opts.noGapColor, "no-gap-color", false, "suppress the neutral bars between cells")
	flags.BoolVar(&opts.vertical, "vertical", false, "draw tracks vertically")

	return chartCmd
}
