// Package cmd assembles the nbquality command tree.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/phobologic/nbquality/internal/cells"
	"github.com/phobologic/nbquality/internal/metrics"
	"github.com/phobologic/nbquality/internal/profile"
)

// Execute assembles the root command and runs it. version is injected by
// package main.
func Execute(version string) error {
	return newRootCmd(version).Execute()
}

// rootOptions carries the flags shared by every subcommand, resolved
// against an optional config file.
type rootOptions struct {
	configFile  string
	textFormats bool
	exclude     []string
	readingRate float64
	lineWidth   int
	verbose     bool

	logger *log.Logger
}

func newRootCmd(version string) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "nbquality",
		Short: "Profile notebook corpora: size, reading effort, code composition",
		Long: "nbquality profiles structured notebook documents across directory trees,\n" +
			"estimating reading time and code composition per cell, and renders compact\n" +
			"visual summaries of document structure.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.resolve(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "config file (default ./nbquality.yaml if present)")
	flags.BoolVar(&opts.textFormats, "text-formats", false, "also profile .md and .py text-format documents")
	flags.StringSliceVar(&opts.exclude, "exclude", nil, "additional directory names to exclude")
	flags.Float64Var(&opts.readingRate, "reading-rate", 0, "reading rate in words per minute (default 100)")
	flags.IntVar(&opts.lineWidth, "line-width", 0, "display width for screen-line counting (default 160)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug diagnostics")

	rootCmd.AddCommand(newChartCmd(opts))
	rootCmd.AddCommand(newReportCmd(opts))
	rootCmd.AddCommand(newImportsCmd(opts))
	rootCmd.AddCommand(newAltTextCmd(opts))
	rootCmd.AddCommand(newLinksCmd(opts))
	rootCmd.AddCommand(newWarningsCmd(opts))
	rootCmd.AddCommand(newVersionCmd(version))

	return rootCmd
}

// resolve layers the config file under the command-line flags and builds
// the shared logger. Flags that were set explicitly win over file values.
func (o *rootOptions) resolve(cmd *cobra.Command) error {
	o.logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
	if o.verbose {
		o.logger.SetLevel(log.DebugLevel)
	} else {
		o.logger.SetLevel(log.WarnLevel)
	}

	v := viper.New()
	if o.configFile != "" {
		v.SetConfigFile(o.configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
	} else {
		v.SetConfigName("nbquality")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return fmt.Errorf("reading config: %w", err)
			}
		}
	}

	flags := cmd.Flags()
	if !flags.Changed("reading-rate") && v.IsSet("reading_rate") {
		o.readingRate = v.GetFloat64("reading_rate")
	}
	if !flags.Changed("line-width") && v.IsSet("line_width") {
		o.lineWidth = v.GetInt("line_width")
	}
	if !flags.Changed("text-formats") && v.IsSet("text_formats") {
		o.textFormats = v.GetBool("text_formats")
	}
	if v.IsSet("exclude") {
		o.exclude = append(o.exclude, v.GetStringSlice("exclude")...)
	}
	return nil
}

// metricsConfig builds the explicit configuration struct threaded into the
// metric computer; unset values fall through to package defaults.
func (o *rootOptions) metricsConfig() metrics.Config {
	cfg := metrics.DefaultConfig()
	if o.readingRate > 0 {
		cfg.ReadingRate = o.readingRate
	}
	if o.lineWidth > 0 {
		cfg.LineWidth = o.lineWidth
	}
	return cfg
}

func (o *rootOptions) cellOptions() cells.Options {
	return cells.Options{TextFormats: o.textFormats}
}

// walker builds the corpus walker shared by the subcommands.
func (o *rootOptions) walker() *profile.Walker {
	computer := metrics.NewComputer(o.metricsConfig())
	excluder := profile.DefaultExcluder(o.exclude...)
	return profile.NewWalker(computer, o.cellOptions(), excluder, o.logger)
}
